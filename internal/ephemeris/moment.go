package ephemeris

import (
	"fmt"
	"math"
	"time"

	"github.com/phrazzld/kundli-api/internal/domain"
)

// Moment is an instant expressed both as a UTC time and as a Julian Day.
type Moment struct {
	UT        time.Time
	JulianDay float64
}

// JulianDay returns the Julian Day for a Gregorian calendar date at
// hourUT hours of Universal Time (Meeus, Astronomical Algorithms, ch. 7).
func JulianDay(year, month, day int, hourUT float64) float64 {
	if month <= 2 {
		year--
		month += 12
	}
	a := math.Floor(float64(year) / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(day) + b - 1524.5 + hourUT/24
}

// MomentFromTime converts t to UTC and computes its Julian Day.
func MomentFromTime(t time.Time) Moment {
	ut := t.UTC()
	hour := float64(ut.Hour()) +
		float64(ut.Minute())/60 +
		(float64(ut.Second())+float64(ut.Nanosecond())/1e9)/3600
	return Moment{
		UT:        ut,
		JulianDay: JulianDay(ut.Year(), int(ut.Month()), ut.Day(), hour),
	}
}

// MomentFromCivil builds the Universal Time moment for a local date
// ("YYYY-MM-DD"), clock time ("HH:MM") and offset from UTC in hours.
func MomentFromCivil(date, clock string, utcOffset float64) (Moment, error) {
	in := domain.BirthInput{Date: date, Time: clock, UTCOffset: utcOffset}
	ut, err := in.UniversalTime()
	if err != nil {
		return Moment{}, fmt.Errorf("%w: %w", ErrInvalidMoment, err)
	}
	return MomentFromTime(ut), nil
}
