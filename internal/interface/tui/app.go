// Package tui is the Bubble Tea client over a session.Session.
package tui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yucatanweather/app/internal/domain/catalog"
	"github.com/yucatanweather/app/internal/domain/prediction"
	"github.com/yucatanweather/app/internal/domain/session"
	"github.com/yucatanweather/app/internal/interface/tui/termmap"
)

// ProfileTab selects which list the profile screen focuses.
type ProfileTab int

const (
	TabHistory ProfileTab = iota
	TabFavorites
)

type locationsMsg struct {
	list []catalog.Location
	err  error
}

type predictionMsg struct {
	token  uint64
	result prediction.Result
	err    error
}

// App is the Bubble Tea model. Session state lives behind the pointer and is
// only touched from Update.
type App struct {
	ctx    context.Context
	sess   *session.Session
	mapw   *termmap.Map
	logger *slog.Logger

	width  int
	height int

	cursor     int
	profileTab ProfileTab
	favCursor  int
	notice     string
	lastError  string

	spinner spinner.Model
	help    help.Model
	keys    KeyMap
	theme   Theme
}

// NewApp wires a session to the terminal client.
func NewApp(ctx context.Context, sess *session.Session, logger *slog.Logger) App {
	if logger == nil {
		logger = slog.Default()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return App{
		ctx:     ctx,
		sess:    sess,
		mapw:    termmap.New(48, 14),
		logger:  logger.With("component", "tui"),
		spinner: sp,
		help:    help.New(),
		keys:    DefaultKeyMap(),
		theme:   ThemeFor(sess.Preferences().Theme),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.fetchLocations())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.mapw.Resize(msg.Width/2, msg.Height/2)
		a.help.Width = msg.Width
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case locationsMsg:
		if err := a.sess.ApplyLocations(msg.list, msg.err); err != nil {
			a.lastError = err.Error()
		}
		a.clampCursor()
		a.syncMap()
		return a, nil

	case predictionMsg:
		a.sess.ApplyPrediction(msg.token, msg.result, msg.err)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.keys.Predict.SetEnabled(a.sess.Selection().CanPredict())
	a.notice = ""

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.mapw.Destroy()
		return a, tea.Quit
	case key.Matches(msg, a.keys.ToggleTheme):
		theme, err := a.sess.ToggleTheme(a.ctx)
		a.theme = ThemeFor(theme)
		a.report(err)
		return a, nil
	case key.Matches(msg, a.keys.ToggleLanguage):
		_, err := a.sess.ToggleLanguage(a.ctx)
		a.report(err)
		return a, nil
	case key.Matches(msg, a.keys.Profile) && a.sess.Screen() != session.ScreenProfile:
		a.transition(a.sess.OpenProfile())
		return a, nil
	case key.Matches(msg, a.keys.Back):
		a.transition(a.sess.Back())
		return a, nil
	}

	switch a.sess.Screen() {
	case session.ScreenLanding:
		if key.Matches(msg, a.keys.Continue) {
			a.transition(a.sess.Continue())
		}
	case session.ScreenFilter:
		return a.handleFilterKey(msg)
	case session.ScreenResults:
		if key.Matches(msg, a.keys.Favorite) {
			a.toggleFavorite()
		}
	case session.ScreenProfile:
		a.handleProfileKey(msg)
	}
	return a, nil
}

func (a App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := a.sess.Selection()
	for i, b := range a.keys.Places {
		if key.Matches(msg, b) && i < len(catalog.Categories) {
			a.report(sel.SelectPlace(catalog.Categories[i]))
			a.cursor = 0
			a.syncMap()
			return a, nil
		}
	}
	for i, b := range a.keys.Climates {
		if key.Matches(msg, b) && i < len(catalog.ClimateTags) {
			a.report(sel.SelectClimate(catalog.ClimateTags[i]))
			a.clampCursor()
			a.syncMap()
			return a, nil
		}
	}

	switch {
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(sel.Candidates())-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Choose):
		if len(sel.Candidates()) > 0 {
			a.mapw.Click(a.cursor)
		}
	case key.Matches(msg, a.keys.PrevDay):
		sel.SelectDate(sel.Date().AddDate(0, 0, -1))
	case key.Matches(msg, a.keys.NextDay):
		sel.SelectDate(sel.Date().AddDate(0, 0, 1))
	case key.Matches(msg, a.keys.Favorite):
		a.toggleFavorite()
	case key.Matches(msg, a.keys.Refresh):
		return a, a.fetchLocations()
	case key.Matches(msg, a.keys.Predict):
		if err := a.sess.Predict(a.ctx); err != nil {
			a.report(err)
			return a, nil
		}
		a.syncMap()
		return a, tea.Batch(a.fetchPrediction(), a.spinner.Tick)
	}
	return a, nil
}

func (a *App) handleProfileKey(msg tea.KeyMsg) {
	favorites := a.sess.Favorites()
	switch {
	case key.Matches(msg, a.keys.SwitchTab):
		if a.profileTab == TabHistory {
			a.profileTab = TabFavorites
		} else {
			a.profileTab = TabHistory
		}
		return
	}
	if a.profileTab != TabFavorites {
		return
	}
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.favCursor > 0 {
			a.favCursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.favCursor < len(favorites)-1 {
			a.favCursor++
		}
	case key.Matches(msg, a.keys.Choose):
		if len(favorites) == 0 {
			return
		}
		a.transition(a.sess.SelectFavorite(a.favCursor))
	}
}

func (a *App) toggleFavorite() {
	added, err := a.sess.ToggleFavorite(a.ctx)
	if errors.Is(err, session.ErrNoLocation) {
		a.lastError = labelsFor(a.sess.Preferences().Language).ChoosePlace
		return
	}
	a.report(err)
	if added {
		loc, _ := a.sess.Selection().Location()
		a.notice = loc.Name + " " + labelsFor(a.sess.Preferences().Language).Saved
	}
}

// transition records a router error and keeps the map bound to the filter
// screen only.
func (a *App) transition(err error) {
	a.report(err)
	a.clampCursor()
	a.syncMap()
}

func (a *App) report(err error) {
	if err == nil {
		a.lastError = ""
		return
	}
	a.logger.Debug("action rejected", "screen", a.sess.Screen(), "error", err)
	if errors.Is(err, session.ErrInvalidTransition) {
		return
	}
	a.lastError = err.Error()
}

func (a *App) syncMap() {
	onFilter := a.sess.Screen() == session.ScreenFilter
	switch {
	case onFilter && !a.mapw.Ready():
		a.sess.BindMap(a.mapw)
	case onFilter:
		a.mapw.SetMarkers(a.sess.Markers())
	case a.mapw.Ready():
		a.mapw.Destroy()
	}
}

func (a *App) clampCursor() {
	n := len(a.sess.Selection().Candidates())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	if f := len(a.sess.Favorites()); a.favCursor >= f {
		a.favCursor = max(f-1, 0)
	}
}

func (a App) fetchLocations() tea.Cmd {
	fetch := a.sess.BeginLocations()
	ctx := a.ctx
	return func() tea.Msg {
		list, err := fetch(ctx)
		return locationsMsg{list: list, err: err}
	}
}

func (a App) fetchPrediction() tea.Cmd {
	token, fetch := a.sess.BeginPrediction()
	ctx := a.ctx
	return func() tea.Msg {
		result, err := fetch(ctx)
		return predictionMsg{token: token, result: result, err: err}
	}
}

// Run starts the program on the alternate screen.
func Run(ctx context.Context, sess *session.Session, logger *slog.Logger) error {
	p := tea.NewProgram(NewApp(ctx, sess, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
