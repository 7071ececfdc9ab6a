package panchang

import "github.com/phrazzld/kundli-api/internal/domain/chart"

// LuckyPoints are traditional associations of the Moon's nakshatra lord.
type LuckyPoints struct {
	FavourableDays  string `json:"favourable_days"`
	FavourableColor string `json:"favourable_color"`
	LuckyNumber     string `json:"lucky_number"`
	InspiringDeity  string `json:"inspiring_deity"`
	LuckyDirection  string `json:"lucky_direction"`
	LuckyLetter     string `json:"lucky_letter"`
	FavourableMetal string `json:"favourable_metal"`
}

var luckyByLord = map[chart.Body]LuckyPoints{
	chart.Sun:     {"Sunday", "Red", "1", "Shri Surya Dev", "East", "A, L, E", "Gold"},
	chart.Moon:    {"Monday", "White", "2", "Shri Chandra Dev", "North", "B, V, U", "Silver"},
	chart.Mars:    {"Tuesday", "Red", "9", "Shri Hanuman Ji", "South", "M, T, D", "Copper"},
	chart.Mercury: {"Wednesday", "Green", "5", "Shri Ganesh Ji", "North", "K, C, G", "Bronze"},
	chart.Jupiter: {"Thursday", "Yellow", "3", "Shri Brihaspati Dev", "North-East", "H, O, D", "Gold"},
	chart.Venus:   {"Friday", "White", "6", "Shri Shukra Dev", "South-East", "P, T, V", "Silver"},
	chart.Saturn:  {"Saturday", "Black", "8", "Shri Shani Dev", "West", "K, G, N", "Iron"},
	chart.Rahu:    {"Saturday", "Black", "4", "Shri Durga Mata", "South-West", "B, R, K", "Iron, Lead"},
	chart.Ketu:    {"Tuesday", "Brown", "7", "Shri Ganesh Ji", "North-West", "G, K, N", "Iron"},
}

// fallbackLucky is reported when the nakshatra lord is not known.
var fallbackLucky = LuckyPoints{
	FavourableDays:  "Friday, Wednesday and Saturday",
	FavourableColor: "Rose Pink",
	LuckyNumber:     "2,7",
	InspiringDeity:  "Shri Durga Mata",
	LuckyDirection:  "South, West",
	LuckyLetter:     "P, G, and Y",
	FavourableMetal: "Iron, Lead",
}

// Lucky returns the lucky points for a nakshatra lord.
func Lucky(lord chart.Body) LuckyPoints {
	if lp, ok := luckyByLord[lord]; ok {
		return lp
	}
	return fallbackLucky
}
