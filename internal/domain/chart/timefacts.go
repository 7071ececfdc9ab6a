package chart

import "math"

// NakshatraSpan is one of 27 lunar mansions, 13°20′.
const NakshatraSpan = 13.3333

// TimeFacts are calendar facts derived from the Sun and Moon longitudes.
type TimeFacts struct {
	// Tithi is the lunar day, 1..30. Tithis 1..15 are the waxing half.
	Tithi int `json:"tithi"`
	// Nakshatra is the Moon's lunar mansion, 1..27.
	Nakshatra int `json:"nakshatra"`
	// Charan is the quarter of the nakshatra, 1..4.
	Charan int `json:"charan"`
	// Karana is the half-tithi index, 1..11.
	Karana int `json:"karana"`
	// Yoga is the nithya yoga index, 1..27.
	Yoga int `json:"yoga"`
	// LunarPhase is the Moon's elongation from the Sun in [0, 360).
	LunarPhase float64 `json:"lunar_phase"`
}

// Waxing reports whether the tithi falls in the bright half (Shukla paksha).
func (tf TimeFacts) Waxing() bool {
	return tf.Tithi <= 15
}

// DeriveTimeFacts computes the time facts for a Sun and Moon longitude.
func DeriveTimeFacts(sun, moon float64) TimeFacts {
	sun = NormalizeLongitude(sun)
	moon = NormalizeLongitude(moon)
	phase := NormalizeLongitude(moon - sun)

	return TimeFacts{
		Tithi:      clampIndex(phase/12, 30),
		Nakshatra:  clampIndex(moon/NakshatraSpan, 27),
		Charan:     clampIndex(math.Mod(moon, NakshatraSpan)/NavamshaSpan, 4),
		Karana:     clampIndex(phase/6, 11),
		Yoga:       clampIndex(NormalizeLongitude(sun+moon)/NakshatraSpan, 27),
		LunarPhase: phase,
	}
}

// clampIndex turns a fractional position into a 1-based index no larger
// than max.
func clampIndex(v float64, max int) int {
	n := int(math.Floor(v)) + 1
	if n > max {
		return max
	}
	if n < 1 {
		return 1
	}
	return n
}
