package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/yucatanweather/app/internal/domain/catalog"
	"github.com/yucatanweather/app/internal/domain/collections"
	"github.com/yucatanweather/app/internal/domain/prediction"
	"github.com/yucatanweather/app/internal/domain/session"
	"github.com/yucatanweather/app/internal/infra/kvstore"
	"github.com/yucatanweather/app/pkg/logger"
)

type stubWeather struct{}

func (stubWeather) FetchLocations(context.Context) ([]catalog.Location, error) {
	return catalog.Default().All(), nil
}

func (stubWeather) FetchPrediction(context.Context, prediction.Criteria) (prediction.Result, error) {
	return prediction.Result{Temperature: 30, Humidity: 70, WindSpeed: 12, ClimateTag: "sunny", ConfidencePercent: 80}, nil
}

func newTestApp(t *testing.T) App {
	t.Helper()
	log := logger.Discard()
	sess, err := session.New(context.Background(), session.Deps{
		Collections: collections.NewService(kvstore.NewMemoryStore(), log),
		Weather:     stubWeather{},
		Catalog:     catalog.Default(),
		Logger:      log,
	}, session.Options{Today: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	app := NewApp(context.Background(), sess, log)
	app.width, app.height = 120, 40
	return app
}

func press(t *testing.T, app App, msgs ...tea.KeyMsg) App {
	t.Helper()
	for _, msg := range msgs {
		m, _ := app.Update(msg)
		app = m.(App)
	}
	return app
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestAppUpdate_ContinueBindsMap(t *testing.T) {
	app := press(t, newTestApp(t), enter)

	require.Equal(t, session.ScreenFilter, app.sess.Screen())
	require.True(t, app.mapw.Ready())
	markers := app.mapw.Markers()
	require.Len(t, markers, 7)
	require.True(t, markers[0].Selected)
	loc, ok := app.sess.Selection().Location()
	require.True(t, ok)
	require.Equal(t, "Chichén Itzá", loc.Name)

	app = press(t, app, esc)
	require.Equal(t, session.ScreenLanding, app.sess.Screen())
	require.False(t, app.mapw.Ready())
}

func TestAppUpdate_PredictDisabledWithoutLocation(t *testing.T) {
	app := press(t, newTestApp(t), enter, runes("1"))
	require.False(t, app.sess.Selection().CanPredict())

	app = press(t, app, runes("g"))
	require.Equal(t, session.ScreenFilter, app.sess.Screen())
	require.Empty(t, app.sess.History())

	app = press(t, app, tea.KeyMsg{Type: tea.KeyDown}, enter)
	loc, ok := app.sess.Selection().Location()
	require.True(t, ok)
	require.Equal(t, app.sess.Selection().Candidates()[1].Name, loc.Name)

	m, cmd := app.Update(runes("g"))
	app = m.(App)
	require.NotNil(t, cmd)
	require.Equal(t, session.ScreenResults, app.sess.Screen())
	require.Len(t, app.sess.History(), 1)
	require.True(t, app.sess.Status().Loading)
}

func TestAppUpdate_StalePredictionIgnored(t *testing.T) {
	app := press(t, newTestApp(t), enter, runes("g"))
	require.Equal(t, session.ScreenResults, app.sess.Screen())

	m, _ := app.Update(predictionMsg{token: 0, result: prediction.Result{Temperature: 1}})
	app = m.(App)
	_, ok := app.sess.Prediction()
	require.False(t, ok)

	m, _ = app.Update(predictionMsg{token: 1, result: prediction.Result{Temperature: 31.5, ClimateTag: "rainy"}})
	app = m.(App)
	res, ok := app.sess.Prediction()
	require.True(t, ok)
	require.Equal(t, 31.5, res.Temperature)
	require.Equal(t, catalog.Rainy, app.displayClimate())

	view := app.View()
	require.Contains(t, view, "Temperatura")
	require.Contains(t, view, "31.5")
}

func TestViewResults_DescribesLocationInActiveLanguage(t *testing.T) {
	app := press(t, newTestApp(t), enter, runes("g"))
	m, _ := app.Update(predictionMsg{token: 1, result: prediction.Result{ClimateTag: "sunny"}})
	app = m.(App)

	view := app.View()
	require.Contains(t, view, "Acerca del lugar")
	require.Contains(t, view, "Kukulkán")
	require.Contains(t, view, "protector")

	app = press(t, app, runes("l"))
	view = app.View()
	require.Contains(t, view, "About this place")
	require.Contains(t, view, "Kukulkan")
	require.Contains(t, view, "sunscreen")
}

func TestAppUpdate_LocationRefreshKeepsPredictionLoading(t *testing.T) {
	app := newTestApp(t)
	app.Init()
	require.True(t, app.sess.LocationsStatus().Loading)

	app = press(t, app, enter, runes("g"))
	require.True(t, app.sess.Status().Loading)

	m, _ := app.Update(locationsMsg{err: errors.New("connection refused")})
	app = m.(App)
	require.True(t, app.sess.Status().Loading)
	require.False(t, app.sess.Status().Failed)
	require.NotContains(t, app.View(), "No se pudo obtener la predicción")
	require.Contains(t, app.View(), "Cargando predicción")
}

func TestAppUpdate_PredictionFailureShown(t *testing.T) {
	app := press(t, newTestApp(t), enter, runes("g"))
	m, _ := app.Update(predictionMsg{token: 1, err: errors.New("status=503")})
	app = m.(App)
	require.True(t, app.sess.Status().Failed)
	require.Contains(t, app.View(), "No se pudo obtener la predicción")
}

func TestViewProfile_EmptyStates(t *testing.T) {
	app := press(t, newTestApp(t), runes("p"))
	require.Equal(t, session.ScreenProfile, app.sess.Screen())

	view := app.View()
	require.Contains(t, view, "No hay búsquedas recientes")
	require.Contains(t, view, "No tienes lugares favoritos")

	app = press(t, app, runes("l"))
	view = app.View()
	require.Contains(t, view, "No recent searches")
	require.Contains(t, view, "You have no favorite places")
}

func TestAppUpdate_FavoriteReopensFilter(t *testing.T) {
	app := press(t, newTestApp(t), enter, runes("f"))
	require.True(t, app.sess.IsFavorite("Chichén Itzá"))
	require.Contains(t, app.notice, "Chichén Itzá")

	app = press(t, app, runes("1"), runes("p"), tab, enter)
	require.Equal(t, session.ScreenFilter, app.sess.Screen())
	loc, ok := app.sess.Selection().Location()
	require.True(t, ok)
	require.Equal(t, "Chichén Itzá", loc.Name)
}

func TestAppUpdate_LocationsFailureKeepsCatalog(t *testing.T) {
	app := newTestApp(t)
	m, _ := app.Update(locationsMsg{err: errors.New("connection refused")})
	app = m.(App)
	require.NotEmpty(t, app.lastError)
	require.Equal(t, catalog.Default().Len(), app.sess.Catalog().Len())
}

func TestAppUpdate_ToggleTheme(t *testing.T) {
	app := press(t, newTestApp(t), runes("t"))
	require.Equal(t, collections.ThemeDark, app.sess.Preferences().Theme)
	require.Equal(t, DarkTheme().Primary, app.theme.Primary)
}

func TestRecommendationsMarkdown(t *testing.T) {
	md := recommendationsMarkdown("Tips", catalog.Rainy, collections.LanguageEN)
	require.Contains(t, md, "### Tips")
	require.Contains(t, md, "- Bring an umbrella or raincoat")
	md = recommendationsMarkdown("Recomendaciones", catalog.Rainy, collections.LanguageES)
	require.Contains(t, md, "- Lleva paraguas o impermeable")
	require.Empty(t, RenderMarkdown("  ", 40, collections.ThemeLight))
}
