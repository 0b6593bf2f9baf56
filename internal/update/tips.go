package update

import "time"

var healthTips = []string{
	"💧 Drink plenty of water throughout the day to support digestion and prevent constipation.",
	"🥗 Include fiber-rich foods like vegetables, fruits, and whole grains in your diet for better digestive health.",
	"🚶 Regular physical activity helps improve blood circulation and promotes healing.",
	"🧘 Practice stress-reducing activities like meditation or yoga to support overall wellness.",
	"🌰 Eat foods rich in vitamins A, C, and E to promote tissue repair and healing.",
	"⏰ Maintain a regular eating schedule to keep your digestive system functioning smoothly.",
	"🥑 Include healthy fats from nuts, seeds, and avocados for better nutrient absorption.",
	"😴 Get 7-8 hours of quality sleep each night to support your body's natural healing processes.",
	"🌿 Try natural remedies like aloe vera juice or probiotic-rich foods for gut health.",
	"🚫 Avoid spicy, processed, and fried foods that can irritate the digestive system.",
}

// TipOfDay picks one tip per calendar day, stable across redraws.
func TipOfDay(now time.Time) string {
	return healthTips[now.YearDay()%len(healthTips)]
}
