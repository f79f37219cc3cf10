package catalog

// descriptions is keyed by location name so the served places payload stays
// {name, lat, lng, category, climates}.
var descriptions = map[string]map[Language]string{
	"Chichén Itzá": {
		Spanish: "Una de las Siete Maravillas del Mundo Moderno. Impresionante ciudad maya con la icónica pirámide de Kukulkán.",
		English: "One of the Seven Wonders of the Modern World. Impressive Mayan city with the iconic Kukulkan pyramid.",
	},
	"Uxmal": {
		Spanish: "Sitio arqueológico maya con la majestuosa Pirámide del Adivino y arquitectura Puuc excepcional.",
		English: "Mayan archaeological site with the majestic Pyramid of the Magician and exceptional Puuc architecture.",
	},
	"Cobá": {
		Spanish: "Antigua ciudad maya con la pirámide Nohoch Mul, una de las más altas de la península de Yucatán.",
		English: "Ancient Mayan city with the Nohoch Mul pyramid, one of the tallest in the Yucatan Peninsula.",
	},
	"Ek Balam": {
		Spanish: "Zona arqueológica maya conocida por sus impresionantes esculturas de estuco y la Acrópolis.",
		English: "Mayan archaeological zone known for its impressive stucco sculptures and the Acropolis.",
	},
	"Edzná": {
		Spanish: "Sitio maya con el impresionante Edificio de los Cinco Pisos y avanzados sistemas hidráulicos.",
		English: "Mayan site with the impressive Five-Story Building and advanced hydraulic systems.",
	},
	"Mayapán": {
		Spanish: "Última gran capital maya, conocida como la 'Bandera de los Mayas', con templos y murallas.",
		English: "Last great Mayan capital, known as the 'Banner of the Mayas', with temples and walls.",
	},
	"Tulum Ruinas": {
		Spanish: "Única ciudad maya amurallada junto al mar Caribe, con vistas espectaculares.",
		English: "Only walled Mayan city by the Caribbean Sea, with spectacular views.",
	},
	"Cancún": {
		Spanish: "Paraíso turístico con playas de arena blanca, aguas turquesas y vida nocturna vibrante.",
		English: "Tourist paradise with white sand beaches, turquoise waters and vibrant nightlife.",
	},
	"Playa del Carmen": {
		Spanish: "Destino costero con hermosas playas, la famosa Quinta Avenida y acceso a cenotes.",
		English: "Coastal destination with beautiful beaches, the famous Fifth Avenue and access to cenotes.",
	},
	"Tulum": {
		Spanish: "Pueblo bohemio con playas paradisíacas, cenotes místicos y ambiente relajado.",
		English: "Bohemian town with paradisiacal beaches, mystical cenotes and relaxed atmosphere.",
	},
	"Mérida": {
		Spanish: "Capital cultural de Yucatán, conocida como la 'Ciudad Blanca', con arquitectura colonial.",
		English: "Cultural capital of Yucatan, known as the 'White City', with colonial architecture.",
	},
	"Campeche": {
		Spanish: "Ciudad amurallada Patrimonio de la Humanidad con coloridas fachadas coloniales.",
		English: "Walled city World Heritage Site with colorful colonial facades.",
	},
	"Celestún": {
		Spanish: "Reserva natural famosa por sus flamencos rosados y manglares impresionantes.",
		English: "Natural reserve famous for its pink flamingos and impressive mangroves.",
	},
	"Isla Mujeres": {
		Spanish: "Isla paradisíaca con playas cristalinas, snorkel y ambiente caribeño relajado.",
		English: "Paradisiacal island with crystal clear beaches, snorkeling and relaxed Caribbean atmosphere.",
	},
	"Valladolid": {
		Spanish: "Pueblo mágico colonial con cenotes cercanos y arquitectura colorida tradicional.",
		English: "Colonial magical town with nearby cenotes and traditional colorful architecture.",
	},
	"Chetumal": {
		Spanish: "Capital de Quintana Roo, puerta a Belice y la Bahía de Chetumal.",
		English: "Capital of Quintana Roo, gateway to Belize and Chetumal Bay.",
	},
	"Puuc": {
		Spanish: "Región montañosa con arquitectura maya única y paisajes naturales impresionantes.",
		English: "Mountainous region with unique Mayan architecture and impressive natural landscapes.",
	},
	"Sierra Alta": {
		Spanish: "Zona montañosa con vegetación exuberante y vistas panorámicas de la península.",
		English: "Mountainous area with lush vegetation and panoramic views of the peninsula.",
	},
	"Cerro Benito Juárez": {
		Spanish: "Elevación natural con senderos y miradores para observar la región.",
		English: "Natural elevation with trails and viewpoints to observe the region.",
	},
	"Sierrita de Ticul": {
		Spanish: "Pequeña sierra con formaciones rocosas y biodiversidad única de la región.",
		English: "Small mountain range with rock formations and unique biodiversity of the region.",
	},
}

// Describe returns the description of the named location in lang, falling
// back to Spanish. Locations outside the bundled list have none.
func Describe(name string, lang Language) (string, bool) {
	byLang, ok := descriptions[name]
	if !ok {
		return "", false
	}
	if text, ok := byLang[lang]; ok {
		return text, true
	}
	text, ok := byLang[Spanish]
	return text, ok
}
