package chart

import "slices"

// Whole-sign house groups.
var (
	Kendras   = []int{1, 4, 7, 10}
	Trikonas  = []int{1, 5, 9}
	Dusthanas = []int{6, 8, 12}
)

// House is one whole-sign house: the sign it covers and where it starts.
type House struct {
	Number         int     `json:"number"`
	Sign           Sign    `json:"sign"`
	StartLongitude float64 `json:"start_longitude"`
}

// HouseFrom counts whole places from house (or sign) a to b, inclusive of a,
// so HouseFrom(x, x) == 1 and the house opposite x is 7.
func HouseFrom(a, b int) int {
	return ((b-a)%12+12)%12 + 1
}

// RelativeHouse returns the house a body in bodySign occupies for an
// ascendant in ascSign.
func RelativeHouse(ascSign, bodySign Sign) int {
	return HouseFrom(int(ascSign), int(bodySign))
}

// HouseSign returns the sign covered by house n.
func HouseSign(ascSign Sign, n int) Sign {
	return ascSign.Add(n - 1)
}

// WholeSignHouses lays out all twelve houses for an ascendant sign.
func WholeSignHouses(ascSign Sign) [12]House {
	var hs [12]House
	for i := range hs {
		s := HouseSign(ascSign, i+1)
		hs[i] = House{Number: i + 1, Sign: s, StartLongitude: s.StartLongitude()}
	}
	return hs
}

// NextHouse and PrevHouse step around the wheel.
func NextHouse(h int) int { return h%12 + 1 }

func PrevHouse(h int) int { return (h+10)%12 + 1 }

// IsKendra reports whether h is an angular house.
func IsKendra(h int) bool { return slices.Contains(Kendras, h) }

// IsTrikona reports whether h is a trine house.
func IsTrikona(h int) bool { return slices.Contains(Trikonas, h) }

// IsDusthana reports whether h is a difficult house.
func IsDusthana(h int) bool { return slices.Contains(Dusthanas, h) }

// HouseNature names the group a house belongs to. Kendra wins over
// Trikona for the first house.
func HouseNature(h int) string {
	switch {
	case IsKendra(h):
		return "Kendra"
	case IsTrikona(h):
		return "Trikona"
	case IsDusthana(h):
		return "Dusthana"
	default:
		return "Neutral"
	}
}
