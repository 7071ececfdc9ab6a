package chart

import "math"

// Sign is a zodiac sign, 1 (Aries) through 12 (Pisces).
type Sign int

// Zodiac signs.
const (
	Aries Sign = iota + 1
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

const (
	// SignSpan is the width of one sign in degrees.
	SignSpan = 30.0
	// NavamshaSpan is one ninth of a sign, 3°20′.
	NavamshaSpan = 3.3333
)

var signNames = [...]string{
	"",
	"Mesha (Aries)", "Vrishabha (Taurus)", "Mithuna (Gemini)", "Karka (Cancer)",
	"Simha (Leo)", "Kanya (Virgo)", "Tula (Libra)", "Vrischika (Scorpio)",
	"Dhanu (Sagittarius)", "Makara (Capricorn)", "Kumbha (Aquarius)", "Meena (Pisces)",
}

var westernNames = [...]string{
	"", "Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Valid reports whether s is in [1, 12].
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

// Name returns the rashi name with its western equivalent, e.g. "Mesha (Aries)".
func (s Sign) Name() string {
	if !s.Valid() {
		return "Unknown"
	}
	return signNames[s]
}

// Western returns the western name of the sign.
func (s Sign) Western() string {
	if !s.Valid() {
		return "Unknown"
	}
	return westernNames[s]
}

// Add moves n signs forward (or backward for negative n) with wraparound.
func (s Sign) Add(n int) Sign {
	v := (int(s) - 1 + n) % 12
	if v < 0 {
		v += 12
	}
	return Sign(v + 1)
}

// Opposite returns the sign seven places away.
func (s Sign) Opposite() Sign {
	return s.Add(6)
}

// StartLongitude is the absolute longitude at which the sign begins.
func (s Sign) StartLongitude() float64 {
	return float64(s-1) * SignSpan
}

// Position is a longitude resolved into its sign and degree within the sign.
type Position struct {
	Longitude float64 `json:"longitude"`
	Sign      Sign    `json:"sign"`
	Degree    float64 `json:"degree"`
}

// NormalizeLongitude reduces lon into [0, 360).
func NormalizeLongitude(lon float64) float64 {
	l := math.Mod(lon, 360)
	if l < 0 {
		l += 360
	}
	// A tiny negative remainder can round up to exactly 360.
	if l >= 360 {
		l = 0
	}
	return l
}

// SignOf returns the sign containing lon. A longitude on a boundary belongs
// to the later sign.
func SignOf(lon float64) Sign {
	l := NormalizeLongitude(lon)
	return Sign(int(math.Floor(l/SignSpan)) + 1)
}

// Normalize resolves lon into a Position.
func Normalize(lon float64) Position {
	l := NormalizeLongitude(lon)
	s := SignOf(l)
	return Position{
		Longitude: l,
		Sign:      s,
		Degree:    l - s.StartLongitude(),
	}
}

// Navamsha returns the ninth-harmonic sign for a degree within sign. The
// sign is cut into nine segments of NavamshaSpan; the segment index counts
// forward from the first navamsha of the sign's element group.
func Navamsha(sign Sign, degree float64) Sign {
	segment := int(math.Floor(degree / NavamshaSpan))
	// 3.3333 is a truncation of 10/3, so the last sliver of a sign would
	// otherwise fall into a tenth segment.
	if segment > 8 {
		segment = 8
	}
	if segment < 0 {
		segment = 0
	}
	return Sign((int(sign-1)*9+segment)%12 + 1)
}

// KetuFrom returns the south node longitude for a given north node.
func KetuFrom(rahu float64) float64 {
	return NormalizeLongitude(rahu + 180)
}
