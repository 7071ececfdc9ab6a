package chart

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLongitudes() map[Body]float64 {
	return map[Body]float64{
		Sun:     10,  // Aries, exalted
		Moon:    100, // Cancer, own sign
		Mars:    225, // Scorpio, own sign
		Mercury: 20,
		Jupiter: 95, // Cancer, exalted
		Venus:   340,
		Saturn:  5, // Aries, debilitated
		Rahu:    70,
		Ketu:    KetuFrom(70),
	}
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	c := Assemble(15, sampleLongitudes(), nil)

	assert.Equal(t, Aries, c.Ascendant().Sign)
	assert.InDelta(t, 15.0, c.Ascendant().Degree, 1e-9)
	assert.Equal(t, 9, c.Len())

	mars, ok := c.Body(Mars)
	require.True(t, ok)
	assert.Equal(t, Scorpio, mars.Sign)
	assert.Equal(t, 8, mars.House)
	assert.Equal(t, OwnSign, mars.Strength)

	sun, _ := c.Body(Sun)
	assert.Equal(t, Exalted, sun.Strength)
	assert.Equal(t, 1, sun.House)

	saturn, _ := c.Body(Saturn)
	assert.Equal(t, Debilitated, saturn.Strength)

	ketu, _ := c.Body(Ketu)
	assert.Equal(t, Sagittarius, ketu.Sign)
	assert.Equal(t, 9, ketu.House)

	assert.Equal(t, []Body{Sun, Mercury, Saturn}, c.InHouse(1))
	assert.Equal(t, Venus, c.HouseLord(7))
}

func TestAssembleHousesFollowAscendant(t *testing.T) {
	t.Parallel()

	// Ascendant in Capricorn: Aries bodies are in the 4th, not the 1st.
	c := Assemble(275, map[Body]float64{Sun: 10}, nil)
	assert.Equal(t, 4, c.House(Sun))

	houses := c.Houses()
	assert.Equal(t, Capricorn, houses[0].Sign)
	assert.Equal(t, Aries, houses[3].Sign)
}

func TestAssembleAscendantBoundary(t *testing.T) {
	t.Parallel()

	body := map[Body]float64{Mars: 225}
	before := Assemble(29.999, body, nil)
	after := Assemble(30.001, body, nil)

	assert.Equal(t, Aries, before.Ascendant().Sign)
	assert.Equal(t, Taurus, after.Ascendant().Sign)
	assert.Equal(t, 8, before.House(Mars))
	assert.Equal(t, 7, after.House(Mars))
}

func TestAssembleMissingAndMalformedBodies(t *testing.T) {
	t.Parallel()

	lons := sampleLongitudes()
	delete(lons, Venus)
	lons[Mercury] = math.NaN()
	lons[Jupiter] = math.Inf(1)
	lons[Body("Chiron")] = 42

	c := Assemble(0, lons, nil)

	assert.False(t, c.Has(Venus))
	assert.False(t, c.Has(Mercury))
	assert.False(t, c.Has(Jupiter))
	assert.False(t, c.Has(Body("Chiron")))
	assert.Equal(t, 6, c.Len())
	assert.Equal(t, 0, c.House(Venus))
	_, ok := c.Body(Venus)
	assert.False(t, ok)
}

func TestAssembleTimeFacts(t *testing.T) {
	t.Parallel()

	c := Assemble(0, map[Body]float64{Sun: 0, Moon: 180}, nil)
	tf, ok := c.TimeFacts()
	require.True(t, ok)
	assert.Equal(t, 16, tf.Tithi)
	assert.False(t, tf.Waxing())

	noMoon := Assemble(0, map[Body]float64{Sun: 0}, nil)
	_, ok = noMoon.TimeFacts()
	assert.False(t, ok)
}

func TestAssembleIsIdempotent(t *testing.T) {
	t.Parallel()

	a := Assemble(123.4, sampleLongitudes(), nil)
	b := Assemble(123.4, sampleLongitudes(), nil)

	if diff := cmp.Diff(a, b, cmp.AllowUnexported(Chart{}, Tables{})); diff != "" {
		t.Errorf("Assemble is not idempotent (-first +second):\n%s", diff)
	}
}

func TestChartAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	c := Assemble(0, sampleLongitudes(), nil)
	bodies := c.Bodies()
	bodies[0].House = 99

	sun, _ := c.Body(Sun)
	assert.Equal(t, 1, sun.House)
}

func TestChartMarshalJSON(t *testing.T) {
	t.Parallel()

	c := Assemble(0, map[Body]float64{Mars: 225, Sun: 10, Moon: 100}, nil)
	data, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded struct {
		Ascendant Position       `json:"ascendant"`
		Bodies    []BodyPosition `json:"bodies"`
		TimeFacts *TimeFacts     `json:"time_facts"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Len(t, decoded.Bodies, 3)
	assert.Equal(t, Sun, decoded.Bodies[0].Body)
	assert.Equal(t, Mars, decoded.Bodies[2].Body)
	assert.Equal(t, OwnSign, decoded.Bodies[2].Strength)
	assert.NotNil(t, decoded.TimeFacts)
	assert.Contains(t, string(data), `"strength":"Own Sign"`)
}
