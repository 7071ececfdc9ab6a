package domain

import (
	"fmt"
	"math"
	"time"
)

const (
	// DateLayout is the accepted birth date format.
	DateLayout = "2006-01-02"
	// TimeLayout is the accepted birth time format (24 hour clock).
	TimeLayout = "15:04"
)

// Gender is an optional free-form label echoed back in chart details.
type Gender string

// BirthInput is the moment and place a chart is cast for. Date and Time are
// local civil time at the birth place; UTCOffset is expressed in hours and
// may be fractional (e.g. 5.5 for IST).
type BirthInput struct {
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	UTCOffset float64 `json:"tz"`
	Name      string  `json:"name,omitempty"`
	Gender    Gender  `json:"gender,omitempty"`
}

// NewBirthInput creates a BirthInput and validates it.
func NewBirthInput(date, clock string, lat, lon, utcOffset float64) (*BirthInput, error) {
	in := &BirthInput{
		Date:      date,
		Time:      clock,
		Latitude:  lat,
		Longitude: lon,
		UTCOffset: utcOffset,
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}

// Validate checks that the birth input can be turned into a chart.
func (b *BirthInput) Validate() error {
	if _, err := time.Parse(DateLayout, b.Date); err != nil {
		return fmt.Errorf("%w: %w: %q", ErrValidation, ErrInvalidDate, b.Date)
	}
	if _, err := time.Parse(TimeLayout, b.Time); err != nil {
		return fmt.Errorf("%w: %w: %q", ErrValidation, ErrInvalidTime, b.Time)
	}
	if !inRange(b.Latitude, -90, 90) {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidLatitude)
	}
	if !inRange(b.Longitude, -180, 180) {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidLongitude)
	}
	if !inRange(b.UTCOffset, -12, 14) {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidUTCOffset)
	}
	return nil
}

// LocalTime returns the birth moment as wall-clock time in a fixed zone
// carrying the input's UTC offset.
func (b *BirthInput) LocalTime() (time.Time, error) {
	offset := int(math.Round(b.UTCOffset * 3600))
	loc := time.FixedZone(formatOffset(b.UTCOffset), offset)
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, b.Date+" "+b.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return t, nil
}

// UniversalTime returns the birth moment in UTC.
func (b *BirthInput) UniversalTime() (time.Time, error) {
	t, err := b.LocalTime()
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// OffsetLabel renders the UTC offset as "+05:30".
func (b *BirthInput) OffsetLabel() string {
	return formatOffset(b.UTCOffset)
}

func formatOffset(hours float64) string {
	sign := '+'
	if hours < 0 {
		sign = '-'
		hours = -hours
	}
	h := int(hours)
	m := int(math.Round((hours - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%c%02d:%02d", sign, h, m)
}

func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}
