package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/yucatanweather/app/internal/domain/catalog"
	"github.com/yucatanweather/app/internal/domain/session"
	"github.com/yucatanweather/app/pkg/util"
)

func (a App) View() string {
	l := labelsFor(a.sess.Preferences().Language)
	var body string
	switch a.sess.Screen() {
	case session.ScreenLanding:
		body = a.viewLanding(l)
	case session.ScreenFilter:
		body = a.viewFilter(l)
	case session.ScreenResults:
		body = a.viewResults(l)
	case session.ScreenProfile:
		body = a.viewProfile(l)
	}

	parts := []string{body}
	if a.notice != "" {
		parts = append(parts, a.theme.SuccessStyle.Render(a.notice))
	}
	if a.lastError != "" {
		parts = append(parts, a.theme.ErrorStyle.Render("✗ "+a.lastError))
	}
	parts = append(parts, a.help.ShortHelpView(a.shortHelp()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a App) viewLanding(l labels) string {
	prefs := a.sess.Preferences()
	return lipgloss.JoinVertical(lipgloss.Left,
		a.theme.TitleStyle.Render(l.Title),
		a.theme.SubtitleStyle.Render(l.Tagline),
		"",
		a.theme.MutedStyle.Render(fmt.Sprintf("%s: %s · %s: %s", l.Theme, prefs.Theme, l.Language, prefs.Language)),
	)
}

func (a App) viewFilter(l labels) string {
	sel := a.sess.Selection()

	places := make([]string, 0, len(catalog.Categories))
	for i, c := range catalog.Categories {
		label := fmt.Sprintf("%d %s", i+1, l.Categories[c])
		places = append(places, a.chip(label, sel.Place() == c))
	}
	climates := make([]string, 0, len(catalog.ClimateTags))
	for _, t := range catalog.ClimateTags {
		climates = append(climates, a.chip(l.ClimateNames[t], sel.HasClimate(t)))
	}

	var list strings.Builder
	candidates := sel.Candidates()
	chosen, hasChosen := sel.Location()
	switch {
	case sel.Place() == "":
		list.WriteString(a.theme.MutedStyle.Render(l.ChoosePlace))
	case len(candidates) == 0:
		list.WriteString(a.theme.MutedStyle.Render(l.NoCandidates))
	}
	for i, loc := range candidates {
		prefix := "  "
		if i == a.cursor {
			prefix = a.theme.CursorStyle.Render("> ")
		}
		mark := " "
		if hasChosen && chosen.Name == loc.Name {
			mark = "●"
		}
		if a.sess.IsFavorite(loc.Name) {
			mark += "★"
		}
		fmt.Fprintf(&list, "%s%s %s\n", prefix, mark, loc.Name)
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		a.theme.SectionStyle.Render(l.Date)+" "+sel.Date().Format(util.DateLayout),
		a.theme.SectionStyle.Render(l.Place),
		lipgloss.JoinHorizontal(lipgloss.Top, places...),
		a.theme.SectionStyle.Render(l.Climate),
		lipgloss.JoinHorizontal(lipgloss.Top, climates...),
		a.theme.SectionStyle.Render(l.Locations),
		strings.TrimRight(list.String(), "\n"),
	)
	mapView := a.theme.MapStyle.Render(a.mapw.Render())
	title := a.theme.TitleStyle.Render(l.Title)
	if a.sess.LocationsStatus().Loading {
		title += "  " + a.spinner.View() + " " + a.theme.MutedStyle.Render(l.LoadingPlaces)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", mapView),
	)
}

func (a App) viewResults(l labels) string {
	sel := a.sess.Selection()
	loc, _ := sel.Location()
	header := lipgloss.JoinVertical(lipgloss.Left,
		a.theme.TitleStyle.Render(l.Results+" · "+loc.Name),
		a.theme.MutedStyle.Render(sel.Date().Format(util.DateLayout)),
	)

	status := a.sess.Status()
	result, ok := a.sess.Prediction()
	var values string
	switch {
	case status.Loading:
		values = a.spinner.View() + " " + l.Loading
	case status.Failed:
		values = a.theme.ErrorStyle.Render(l.Failed) + "\n" + a.theme.MutedStyle.Render(status.Message)
	case ok:
		rows := []string{
			fmt.Sprintf("%-12s %.1f °C", l.Temperature, result.Temperature),
			fmt.Sprintf("%-12s %.0f %%", l.Humidity, result.Humidity),
			fmt.Sprintf("%-12s %.1f km/h", l.Wind, result.WindSpeed),
			fmt.Sprintf("%-12s %.0f %%", l.Confidence, result.ConfidencePercent),
		}
		if result.Message != "" {
			rows = append(rows, a.theme.MutedStyle.Render(result.Message))
		}
		values = a.theme.PanelStyle.Render(strings.Join(rows, "\n"))
	}

	prefs := a.sess.Preferences()
	tag := a.displayClimate()
	parts := []string{
		header,
		a.theme.SectionStyle.Render(l.Climate) + " " + l.ClimateNames[tag],
		values,
	}
	if about, ok := catalog.Describe(loc.Name, catalog.Language(prefs.Language)); ok {
		parts = append(parts,
			a.theme.SectionStyle.Render(l.About),
			a.theme.PanelStyle.Width(a.contentWidth()-2).Render(about),
		)
	}
	parts = append(parts, RenderMarkdown(recommendationsMarkdown(l.Tips, tag, prefs.Language), a.contentWidth(), prefs.Theme))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// displayClimate prefers the predicted tag, then the first selected filter
// tag, then sunny.
func (a App) displayClimate() catalog.ClimateTag {
	if result, ok := a.sess.Prediction(); ok {
		if tag, err := catalog.ParseClimateTag(result.ClimateTag); err == nil {
			return tag
		}
	}
	if tags := a.sess.Selection().Climates(); len(tags) > 0 {
		return tags[0]
	}
	return catalog.Sunny
}

func (a App) viewProfile(l labels) string {
	history := a.sess.History()
	favorites := a.sess.Favorites()

	var hist strings.Builder
	if len(history) == 0 {
		hist.WriteString(a.theme.MutedStyle.Render(l.EmptyHistory))
	}
	for _, h := range history {
		fmt.Fprintf(&hist, "%s  %s", h.Date.Format(util.DateLayout), h.Location)
		if h.Climate != "" {
			fmt.Fprintf(&hist, " (%s)", h.Climate)
		}
		hist.WriteString("\n")
	}

	var favs strings.Builder
	if len(favorites) == 0 {
		favs.WriteString(a.theme.MutedStyle.Render(l.EmptyFavorites))
	}
	for i, f := range favorites {
		prefix := "  "
		if a.profileTab == TabFavorites && i == a.favCursor {
			prefix = a.theme.CursorStyle.Render("> ")
		}
		fmt.Fprintf(&favs, "%s★ %s\n", prefix, f.Name)
	}

	histTitle, favTitle := l.History, l.Favorites
	if a.profileTab == TabHistory {
		histTitle = a.theme.ActiveChip.Render(histTitle)
	} else {
		favTitle = a.theme.ActiveChip.Render(favTitle)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		a.theme.TitleStyle.Render(l.Profile),
		a.theme.SectionStyle.Render(histTitle),
		strings.TrimRight(hist.String(), "\n"),
		a.theme.SectionStyle.Render(favTitle),
		strings.TrimRight(favs.String(), "\n"),
	)
}

func (a App) chip(label string, active bool) string {
	if active {
		return a.theme.ActiveChip.Render(label)
	}
	return a.theme.ChipStyle.Render(label)
}

func (a App) contentWidth() int {
	if a.width <= 0 {
		return 80
	}
	return a.width
}

func (a App) shortHelp() []key.Binding {
	common := []key.Binding{a.keys.Back, a.keys.Profile, a.keys.ToggleTheme, a.keys.ToggleLanguage, a.keys.Quit}
	switch a.sess.Screen() {
	case session.ScreenLanding:
		return append([]key.Binding{a.keys.Continue}, common...)
	case session.ScreenFilter:
		predict := a.keys.Predict
		predict.SetEnabled(a.sess.Selection().CanPredict())
		return append([]key.Binding{a.keys.Places[0], a.keys.Climates[0], a.keys.Choose, a.keys.PrevDay, a.keys.NextDay, a.keys.Favorite, predict}, common...)
	case session.ScreenResults:
		return append([]key.Binding{a.keys.Favorite}, common...)
	default:
		return append([]key.Binding{a.keys.SwitchTab, a.keys.Choose}, common...)
	}
}
