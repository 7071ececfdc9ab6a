package ephemeris

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/kundli-api/internal/domain/chart"
)

func TestStaticProvider(t *testing.T) {
	t.Parallel()

	p, err := NewStaticProvider(375, nil, map[chart.Body]float64{
		chart.Sun:  10,
		chart.Rahu: 70,
	})
	require.NoError(t, err)

	ctx := context.Background()
	asc, cusps, err := p.AscendantAndCusps(ctx, Moment{}, 0, 0, EqualHouses)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, asc, 1e-9)
	assert.InDelta(t, 15.0, cusps[0], 1e-9)
	assert.InDelta(t, 345.0, cusps[11], 1e-9)

	sun, err := p.Longitude(ctx, Moment{}, chart.Sun)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, sun, 1e-9)

	ketu, err := p.Longitude(ctx, Moment{}, chart.Ketu)
	require.NoError(t, err)
	assert.InDelta(t, 250.0, ketu, 1e-9)

	_, err = p.Longitude(ctx, Moment{}, chart.Pluto)
	assert.ErrorIs(t, err, ErrBodyUnavailable)
}

func TestStaticProviderDerivesKetu(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p, err := NewStaticProvider(0, nil, map[chart.Body]float64{
		chart.Rahu: 70,
		chart.Ketu: 12,
	})
	require.NoError(t, err)
	ketu, err := p.Longitude(ctx, Moment{}, chart.Ketu)
	require.NoError(t, err)
	assert.InDelta(t, 250.0, ketu, 1e-9, "snapshot Ketu is ignored")

	p, err = NewStaticProvider(0, nil, map[chart.Body]float64{chart.Ketu: 12})
	require.NoError(t, err)
	_, err = p.Longitude(ctx, Moment{}, chart.Ketu)
	assert.ErrorIs(t, err, ErrBodyUnavailable, "no Rahu, no Ketu")
}

func TestNewStaticProviderRejectsBadCusps(t *testing.T) {
	t.Parallel()

	_, err := NewStaticProvider(0, []float64{1, 2, 3}, nil)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestLoadSnapshot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{
		"ascendant": 100.5,
		"longitudes": {"sun": 10, "Moon": 100, "Rahu (Mean)": 70}
	}`), 0o600))

	p, err := LoadSnapshot(good)
	require.NoError(t, err)
	moon, err := p.Longitude(context.Background(), Moment{}, chart.Moon)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, moon, 1e-9)
	rahu, err := p.Longitude(context.Background(), Moment{}, chart.Rahu)
	require.NoError(t, err)
	assert.InDelta(t, 70.0, rahu, 1e-9)

	unknown := filepath.Join(dir, "unknown.json")
	require.NoError(t, os.WriteFile(unknown, []byte(`{"ascendant": 1, "longitudes": {"Vulcan": 3}}`), 0o600))
	_, err = LoadSnapshot(unknown)
	assert.ErrorIs(t, err, chart.ErrUnknownBody)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{`), 0o600))
	_, err = LoadSnapshot(broken)
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = LoadSnapshot(filepath.Join(dir, "absent.json"))
	assert.Error(t, err)
}

func TestParseHouseSystem(t *testing.T) {
	t.Parallel()

	hs, err := ParseHouseSystem("P")
	require.NoError(t, err)
	assert.Equal(t, PlacidusHouses, hs)
	assert.Equal(t, "P", hs.String())

	_, err = ParseHouseSystem("AB")
	assert.Error(t, err)
}
