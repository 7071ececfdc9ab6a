// Package panchang derives the calendar and chart details reported next to
// a chart: tithi, nakshatra, karana and nithya yoga names, the lords of the
// key signs, the chara karakas and the lucky points keyed by the Moon's
// nakshatra lord.
package panchang

var tithiNames = [...]string{
	"Pratipada", "Dvitiya", "Tritiya", "Chaturthi", "Panchami", "Shashthi", "Saptami", "Ashtami",
	"Navami", "Dashami", "Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
	"Pratipada (Krishna)", "Dvitiya (Krishna)", "Tritiya (Krishna)", "Chaturthi (Krishna)", "Panchami (Krishna)",
	"Shashthi (Krishna)", "Saptami (Krishna)", "Ashtami (Krishna)", "Navami (Krishna)", "Dashami (Krishna)",
	"Ekadashi (Krishna)", "Dwadashi (Krishna)", "Trayodashi (Krishna)", "Chaturdashi (Krishna)", "Amavasya",
}

var nakshatraNames = [...]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashirsha", "Ardra", "Punarvasu", "Pushya", "Ashlesha",
	"Magha", "Purva Phalguni", "Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha", "Purva Bhadrapada",
	"Uttara Bhadrapada", "Revati",
}

var karanaNames = [...]string{
	"Bava", "Balava", "Kaulava", "Taitila", "Garaja", "Vanija", "Vishti", "Shakuni", "Chatushpada", "Naga", "Kimstughna",
}

var yogaNames = [...]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana", "Atiganda", "Sukarma", "Dhriti", "Shoola", "Ganda",
	"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra", "Siddhi", "Vyatipata", "Variyana", "Parigha", "Shiva",
	"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma", "Indra", "Vaidhriti",
}

func lookup(names []string, n int) string {
	if n < 1 || n > len(names) {
		return "Unknown"
	}
	return names[n-1]
}

// TithiName returns the name of tithi n (1..30).
func TithiName(n int) string { return lookup(tithiNames[:], n) }

// NakshatraName returns the name of nakshatra n (1..27).
func NakshatraName(n int) string { return lookup(nakshatraNames[:], n) }

// KaranaName returns the name of karana n (1..11).
func KaranaName(n int) string { return lookup(karanaNames[:], n) }

// YogaName returns the name of nithya yoga n (1..27).
func YogaName(n int) string { return lookup(yogaNames[:], n) }

// Paksha returns the lunar fortnight of tithi n.
func Paksha(n int) string {
	if n <= 15 {
		return "Shukla"
	}
	return "Krishna"
}
