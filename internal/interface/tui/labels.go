package tui

import (
	"github.com/yucatanweather/app/internal/domain/catalog"
	"github.com/yucatanweather/app/internal/domain/collections"
)

// labels are the strings needed to render state; full translations live
// outside this client.
type labels struct {
	Title, Tagline                       string
	Date, Place, Climate, Locations      string
	ChoosePlace, NoCandidates            string
	Results, Temperature, Humidity, Wind string
	Confidence, Tips, Loading, Failed    string
	LoadingPlaces, About                 string
	Profile, History, Favorites          string
	EmptyHistory, EmptyFavorites         string
	Theme, Language, Saved               string
	Categories                           map[catalog.Category]string
	ClimateNames                         map[catalog.ClimateTag]string
}

var catalogLabels = map[collections.Language]labels{
	collections.LanguageES: {
		Title:          "Clima Yucatán",
		Tagline:        "Predicción del clima para tus destinos",
		Date:           "Fecha",
		Place:          "Lugar",
		Climate:        "Clima",
		Locations:      "Ubicaciones",
		ChoosePlace:    "Selecciona un lugar",
		NoCandidates:   "Sin ubicaciones para este filtro",
		Results:        "Resultados",
		Temperature:    "Temperatura",
		Humidity:       "Humedad",
		Wind:           "Viento",
		Confidence:     "Confianza",
		Tips:           "Recomendaciones",
		Loading:        "Cargando predicción...",
		LoadingPlaces:  "Actualizando ubicaciones...",
		About:          "Acerca del lugar",
		Failed:         "No se pudo obtener la predicción",
		Profile:        "Perfil",
		History:        "Búsquedas recientes",
		Favorites:      "Lugares favoritos",
		EmptyHistory:   "No hay búsquedas recientes",
		EmptyFavorites: "No tienes lugares favoritos",
		Theme:          "Tema",
		Language:       "Idioma",
		Saved:          "guardado en favoritos",
		Categories: map[catalog.Category]string{
			catalog.Beaches:        "Playas",
			catalog.Archaeological: "Zonas arqueológicas",
			catalog.Mountains:      "Montañas",
			catalog.Cities:         "Ciudades",
		},
		ClimateNames: map[catalog.ClimateTag]string{
			catalog.Sunny:  "Soleado",
			catalog.Cloudy: "Nublado",
			catalog.Windy:  "Ventoso",
			catalog.Rainy:  "Lluvioso",
			catalog.Snowy:  "Nevado",
		},
	},
	collections.LanguageEN: {
		Title:          "Yucatán Weather",
		Tagline:        "Weather prediction for your destinations",
		Date:           "Date",
		Place:          "Place",
		Climate:        "Climate",
		Locations:      "Locations",
		ChoosePlace:    "Choose a place",
		NoCandidates:   "No locations match this filter",
		Results:        "Results",
		Temperature:    "Temperature",
		Humidity:       "Humidity",
		Wind:           "Wind",
		Confidence:     "Confidence",
		Tips:           "Recommendations",
		Loading:        "Loading prediction...",
		LoadingPlaces:  "Refreshing locations...",
		About:          "About this place",
		Failed:         "Could not fetch the prediction",
		Profile:        "Profile",
		History:        "Recent searches",
		Favorites:      "Favorite places",
		EmptyHistory:   "No recent searches",
		EmptyFavorites: "You have no favorite places",
		Theme:          "Theme",
		Language:       "Language",
		Saved:          "saved to favorites",
		Categories: map[catalog.Category]string{
			catalog.Beaches:        "Beaches",
			catalog.Archaeological: "Archaeological sites",
			catalog.Mountains:      "Mountains",
			catalog.Cities:         "Cities",
		},
		ClimateNames: map[catalog.ClimateTag]string{
			catalog.Sunny:  "Sunny",
			catalog.Cloudy: "Cloudy",
			catalog.Windy:  "Windy",
			catalog.Rainy:  "Rainy",
			catalog.Snowy:  "Snowy",
		},
	},
}

func labelsFor(lang collections.Language) labels {
	if l, ok := catalogLabels[lang]; ok {
		return l
	}
	return catalogLabels[collections.LanguageES]
}
