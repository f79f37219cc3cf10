package session

import (
	"errors"
	"fmt"
)

// Screen identifies the view currently rendered.
type Screen string

const (
	ScreenLanding Screen = "landing"
	ScreenFilter  Screen = "filter"
	ScreenResults Screen = "results"
	ScreenProfile Screen = "profile"
)

// Trigger is a navigation event.
type Trigger string

const (
	TriggerContinue       Trigger = "continue"
	TriggerBack           Trigger = "back"
	TriggerProfile        Trigger = "profile"
	TriggerPredict        Trigger = "predict"
	TriggerSelectFavorite Trigger = "selectFavorite"
)

// ErrInvalidTransition is returned for (screen, trigger) pairs with no edge.
var ErrInvalidTransition = errors.New("invalid screen transition")

type edge struct {
	from    Screen
	trigger Trigger
}

var transitions = map[edge]Screen{
	{ScreenLanding, TriggerContinue}:       ScreenFilter,
	{ScreenLanding, TriggerProfile}:        ScreenProfile,
	{ScreenFilter, TriggerBack}:            ScreenLanding,
	{ScreenFilter, TriggerPredict}:         ScreenResults,
	{ScreenFilter, TriggerProfile}:         ScreenProfile,
	{ScreenResults, TriggerBack}:           ScreenFilter,
	{ScreenResults, TriggerProfile}:        ScreenProfile,
	{ScreenProfile, TriggerBack}:           ScreenLanding,
	{ScreenProfile, TriggerSelectFavorite}: ScreenFilter,
}

// Router is the screen state machine. Each entry into results bumps a visit
// counter that tags in-flight requests.
type Router struct {
	current Screen
	visits  uint64
}

// NewRouter starts on the landing screen.
func NewRouter() *Router {
	return &Router{current: ScreenLanding}
}

// Current returns the active screen.
func (r *Router) Current() Screen { return r.current }

// Visit returns the number of times results has been entered.
func (r *Router) Visit() uint64 { return r.visits }

// Can reports whether trigger has an edge from the current screen.
func (r *Router) Can(trigger Trigger) bool {
	_, ok := transitions[edge{r.current, trigger}]
	return ok
}

// Fire applies trigger, leaving state untouched when no edge exists.
func (r *Router) Fire(trigger Trigger) (Screen, error) {
	next, ok := transitions[edge{r.current, trigger}]
	if !ok {
		return r.current, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, trigger, r.current)
	}
	r.current = next
	if next == ScreenResults {
		r.visits++
	}
	return next, nil
}
