package catalog

// Language selects the text variant of catalog copy. Values match the
// persisted UI language.
type Language string

const (
	Spanish Language = "es"
	English Language = "en"
)

var recommendations = map[Language]map[ClimateTag][]string{
	Spanish: {
		Sunny:  {"Usa protector solar FPS 50+", "Lleva gafas de sol", "Viste ropa ligera y clara", "Mantente hidratado"},
		Rainy:  {"Lleva paraguas o impermeable", "Usa calzado antideslizante", "Protege tus dispositivos electrónicos"},
		Cloudy: {"Aún necesitas protector solar", "Lleva una chaqueta ligera"},
		Windy:  {"Usa ropa ajustada", "Lleva una chaqueta cortavientos", "Protege tus ojos del polvo"},
		Snowy:  {"Viste en capas", "Usa ropa térmica", "Protege extremidades del frío"},
	},
	English: {
		Sunny:  {"Use SPF 50+ sunscreen", "Bring sunglasses", "Wear light, bright clothing", "Stay hydrated"},
		Rainy:  {"Bring an umbrella or raincoat", "Wear non-slip footwear", "Protect your electronic devices"},
		Cloudy: {"You still need sunscreen", "Bring a light jacket"},
		Windy:  {"Wear fitted clothing", "Bring a windbreaker", "Protect your eyes from dust"},
		Snowy:  {"Dress in layers", "Wear thermal clothing", "Protect extremities from the cold"},
	},
}

// Recommendations returns travel tips for a climate tag in lang. Unknown
// languages read as Spanish.
func Recommendations(tag ClimateTag, lang Language) []string {
	byTag, ok := recommendations[lang]
	if !ok {
		byTag = recommendations[Spanish]
	}
	src := byTag[tag]
	out := make([]string, len(src))
	copy(out, src)
	return out
}
