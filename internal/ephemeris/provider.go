package ephemeris

import (
	"context"
	"fmt"

	"github.com/phrazzld/kundli-api/internal/domain/chart"
)

// HouseSystem is the one-letter house system code understood by the
// position service, e.g. 'A' for equal houses or 'P' for Placidus.
type HouseSystem byte

// Common house systems.
const (
	EqualHouses     HouseSystem = 'A'
	PlacidusHouses  HouseSystem = 'P'
	WholeSignHouses HouseSystem = 'W'
)

// ParseHouseSystem accepts a single-letter code.
func ParseHouseSystem(s string) (HouseSystem, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("house system must be one letter, got %q", s)
	}
	return HouseSystem(s[0]), nil
}

func (h HouseSystem) String() string { return string(rune(h)) }

// Provider answers position queries for a moment.
type Provider interface {
	// Longitude returns the sidereal longitude of b in degrees.
	Longitude(ctx context.Context, m Moment, b chart.Body) (float64, error)

	// AscendantAndCusps returns the sidereal ascendant and the twelve
	// house cusps for a latitude and longitude in degrees.
	AscendantAndCusps(ctx context.Context, m Moment, lat, lon float64, hs HouseSystem) (float64, [12]float64, error)
}

// equalCusps spaces twelve cusps 30° apart from the ascendant.
func equalCusps(asc float64) [12]float64 {
	var cusps [12]float64
	for i := range cusps {
		cusps[i] = chart.NormalizeLongitude(asc + float64(i)*chart.SignSpan)
	}
	return cusps
}
