package ephemeris

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/phrazzld/kundli-api/internal/domain/chart"
)

// Snapshot is the on-disk form of a StaticProvider.
type Snapshot struct {
	Ascendant  float64            `json:"ascendant"`
	Cusps      []float64          `json:"cusps,omitempty"`
	Longitudes map[string]float64 `json:"longitudes"`
}

// StaticProvider returns the same positions for every moment and place.
type StaticProvider struct {
	ascendant  float64
	cusps      [12]float64
	longitudes map[chart.Body]float64
}

var _ Provider = (*StaticProvider)(nil)

// NewStaticProvider creates a provider from literal values. A nil cusps
// slice yields equal houses from the ascendant.
func NewStaticProvider(ascendant float64, cusps []float64, longitudes map[chart.Body]float64) (*StaticProvider, error) {
	p := &StaticProvider{
		ascendant:  chart.NormalizeLongitude(ascendant),
		longitudes: make(map[chart.Body]float64, len(longitudes)),
	}
	switch len(cusps) {
	case 0:
		p.cusps = equalCusps(p.ascendant)
	case 12:
		copy(p.cusps[:], cusps)
	default:
		return nil, fmt.Errorf("%w: snapshot has %d cusps, want 12", ErrInvalidResponse, len(cusps))
	}
	for b, lon := range longitudes {
		p.longitudes[b] = lon
	}
	return p, nil
}

// LoadSnapshot reads a JSON snapshot. Body names are matched
// case-insensitively and unknown names are rejected.
func LoadSnapshot(path string) (*StaticProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: failed to parse snapshot %s: %v", ErrInvalidResponse, path, err)
	}
	lons := make(map[chart.Body]float64, len(snap.Longitudes))
	for name, lon := range snap.Longitudes {
		b, err := chart.ParseBody(name)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", path, err)
		}
		lons[b] = lon
	}
	return NewStaticProvider(snap.Ascendant, snap.Cusps, lons)
}

// Longitude implements Provider. Ketu is always Rahu + 180°, whatever the
// snapshot says.
func (p *StaticProvider) Longitude(_ context.Context, _ Moment, b chart.Body) (float64, error) {
	if b == chart.Ketu {
		if rahu, ok := p.longitudes[chart.Rahu]; ok && !math.IsNaN(rahu) {
			return chart.KetuFrom(rahu), nil
		}
		return 0, fmt.Errorf("%w: %s", ErrBodyUnavailable, b)
	}
	if lon, ok := p.longitudes[b]; ok && !math.IsNaN(lon) {
		return lon, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrBodyUnavailable, b)
}

// AscendantAndCusps implements Provider.
func (p *StaticProvider) AscendantAndCusps(context.Context, Moment, float64, float64, HouseSystem) (float64, [12]float64, error) {
	return p.ascendant, p.cusps, nil
}
