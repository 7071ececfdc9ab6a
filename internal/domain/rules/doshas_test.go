package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/kundli-api/internal/domain/chart"
	"github.com/phrazzld/kundli-api/internal/platform/logger"
)

func evaluateDoshas(c *chart.Chart) []Finding {
	return NewEvaluator(nil, 1).Evaluate(context.Background(), Doshas(), c)
}

func TestDoshasCatalogue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "doshas", Doshas().Name())
	assert.Equal(t, 34, Doshas().Len())
	assert.Same(t, Doshas(), Doshas())
	assert.Equal(t, "Mangal Dosha (Kuja Dosha)", Doshas().Rules()[0].Name())
}

func TestDoshasMarsInEighth(t *testing.T) {
	t.Parallel()

	// Aries ascendant, Mars in Scorpio: Mars sits in the 8th house.
	c := build(15, map[chart.Body]float64{chart.Mars: 225})
	got := evaluateDoshas(c)

	assert.Equal(t, []string{
		"Mangal Dosha (Kuja Dosha)",
		"Pret Dosha",
		"Tara Dosha",
		"Mrityu Dosha",
		"Mars Dosha",
		"8th House Dosha",
		"Health Dosha",
	}, names(got))

	assert.Equal(t, Finding{
		Name:        "Mangal Dosha (Kuja Dosha)",
		Category:    MajorDosha,
		Description: "Mars in 8th house from Lagna",
		Level:       Moderate,
		Effects:     "Marriage delays, relationship issues, anger problems",
		Remedies:    "Wear red coral, perform Mangal puja, fast on Tuesdays",
	}, got[0])

	mars, ok := findByName(got, "Mars Dosha")
	require.True(t, ok)
	assert.Equal(t, "Mars in 8th house (Own Sign)", mars.Description)
}

func TestMangalSeverityByHouse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		house int
		level Level
	}{
		{1, Severe},
		{2, Moderate},
		{4, Mild},
		{7, Severe},
		{8, Moderate},
		{12, Moderate},
		{3, ""},
		{10, ""},
	}
	for _, tt := range tests {
		t.Run(Ordinal(tt.house), func(t *testing.T) {
			t.Parallel()
			got := evaluateDoshas(build(0, map[chart.Body]float64{chart.Mars: at(tt.house)}))
			f, ok := findByName(got, "Mangal Dosha (Kuja Dosha)")
			assert.Equal(t, tt.level != "", ok)
			assert.Equal(t, tt.level, f.Level)
		})
	}
}

func TestDoshaScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		asc         float64
		lons        map[chart.Body]float64
		finding     string
		description string
		level       Level
	}{
		{
			name:        "kaal sarp",
			lons:        hemmedLongitudes(),
			finding:     "Kaal Sarp Dosha",
			description: "All planets between Rahu and Ketu",
			level:       Severe,
		},
		{
			name:        "sade sati first phase",
			lons:        map[chart.Body]float64{chart.Moon: at(4), chart.Saturn: at(4) + 10},
			finding:     "Sade Sati",
			description: "Saturn in First Phase over Moon sign",
			level:       Moderate,
		},
		{
			name:        "sade sati across the wrap",
			lons:        map[chart.Body]float64{chart.Moon: at(12), chart.Saturn: at(1)},
			finding:     "Sade Sati",
			description: "Saturn in Second Phase over Moon sign",
			level:       Moderate,
		},
		{
			name:        "nadi from the moon's nakshatra lord",
			lons:        map[chart.Body]float64{chart.Sun: 0, chart.Moon: 10},
			finding:     "Nadi Dosha",
			description: "Moon in Ashwini nakshatra ruled by Ketu",
			level:       Moderate,
		},
		{
			name:        "gana uses the moon's sign",
			lons:        map[chart.Body]float64{chart.Moon: 70},
			finding:     "Gana Dosha",
			description: "Moon in Gemini, Rakshasa gana (aggressive temperament)",
			level:       Mild,
		},
		{
			name:        "bhakoot names the opposite sign",
			lons:        map[chart.Body]float64{chart.Moon: 70},
			finding:     "Bhakoot Dosha",
			description: "Moon in Gemini incompatible with Sagittarius",
			level:       Moderate,
		},
		{
			name: "enhanced pitra with three factors",
			lons: map[chart.Body]float64{
				chart.Sun:    190, // Libra, debilitated
				chart.Saturn: at(3),
				chart.Mars:   at(9),
			},
			finding:     "Enhanced Pitra Dosha",
			description: "Multiple factors: Malefic in 9th house, Weak Sun, Saturn aspects 9th house",
			level:       Severe,
		},
		{
			name:        "enhanced pitra with one factor",
			lons:        map[chart.Body]float64{chart.Mars: at(9)},
			finding:     "Enhanced Pitra Dosha",
			description: "Multiple factors: Malefic in 9th house",
			level:       Moderate,
		},
		{
			name:        "saturn debilitated in the 4th",
			asc:         270, // Capricorn rising puts Aries in the 4th
			lons:        map[chart.Body]float64{chart.Saturn: 5},
			finding:     "Saturn Dosha",
			description: "Saturn in 4th house (Debilitated)",
			level:       Moderate,
		},
		{
			name:        "rahu in the 7th is severe",
			lons:        map[chart.Body]float64{chart.Rahu: at(7)},
			finding:     "Rahu Dosha",
			description: "Rahu in 7th house",
			level:       Severe,
		},
		{
			name:        "sarpa needs both nodes",
			lons:        map[chart.Body]float64{chart.Rahu: at(1), chart.Ketu: at(7)},
			finding:     "Sarpa Dosha",
			description: "Rahu/Ketu in difficult houses",
			level:       Moderate,
		},
		{
			name:        "grahan",
			lons:        map[chart.Body]float64{chart.Sun: 10, chart.Moon: 20, chart.Rahu: 190},
			finding:     "Grahan Dosha",
			description: "Sun-Moon conjunction with Rahu (eclipse)",
			level:       Severe,
		},
		{
			name:        "kemadruma",
			lons:        map[chart.Body]float64{chart.Moon: at(4), chart.Sun: at(8)},
			finding:     "Kemadruma Dosha",
			description: "Moon without planets in adjacent houses",
			level:       Moderate,
		},
		{
			name:        "angarak",
			lons:        map[chart.Body]float64{chart.Mars: at(5), chart.Rahu: at(5) + 3},
			finding:     "Angarak Dosha",
			description: "Mars and Rahu in 5th house",
			level:       Severe,
		},
		{
			name:        "career names the malefic",
			lons:        map[chart.Body]float64{chart.Ketu: at(10)},
			finding:     "Career Dosha",
			description: "Ketu in 10th house (career house)",
			level:       Moderate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := evaluateDoshas(build(tt.asc, tt.lons))
			f, ok := findByName(got, tt.finding)
			require.True(t, ok, "findings: %v", names(got))
			assert.Equal(t, tt.description, f.Description)
			assert.Equal(t, tt.level, f.Level)
		})
	}
}

func TestDoshasAbsent(t *testing.T) {
	t.Parallel()

	got := evaluateDoshas(build(0, map[chart.Body]float64{chart.Mars: at(3), chart.Moon: at(4), chart.Sun: at(5)}))
	for _, name := range []string{"Mangal Dosha (Kuja Dosha)", "Sarpa Dosha", "Kemadruma Dosha", "Nadi Dosha"} {
		_, ok := findByName(got, name)
		assert.False(t, ok, name)
	}
}

func TestCompatibilityDoshasFollowMoonSign(t *testing.T) {
	t.Parallel()

	// Taurus rising, Moon in Cancer: 3rd house but not a Rakshasa sign.
	got := evaluateDoshas(build(40, map[chart.Body]float64{chart.Moon: 100}))
	_, ok := findByName(got, "Gana Dosha")
	assert.False(t, ok, "house 3 alone does not make Rakshasa gana")
	f, ok := findByName(got, "Bhakoot Dosha")
	require.True(t, ok)
	assert.Equal(t, "Moon in Cancer incompatible with Capricorn", f.Description)

	// Virgo rising, Moon in Aquarius: 6th house, yet the sign is outside the first six.
	got = evaluateDoshas(build(160, map[chart.Body]float64{chart.Moon: 310}))
	_, ok = findByName(got, "Gana Dosha")
	assert.True(t, ok)
	_, ok = findByName(got, "Bhakoot Dosha")
	assert.False(t, ok)
}

func TestCataloguesOnEmptyChart(t *testing.T) {
	t.Parallel()

	c := build(0, nil)
	e := NewEvaluator(nil, 4)
	assert.Empty(t, e.Evaluate(context.Background(), Doshas(), c))
	assert.Empty(t, e.Evaluate(context.Background(), Yogas(), c))
}

// Every rule in both catalogues renders cleanly on a spread of charts.
func TestCataloguesRenderWithoutErrors(t *testing.T) {
	t.Parallel()

	charts := []*chart.Chart{
		sampleChart(),
		build(0, hemmedLongitudes()),
		build(0, map[chart.Body]float64{chart.Sun: 190, chart.Venus: 130, chart.Moon: 10}),
		build(0, map[chart.Body]float64{chart.Sun: 0, chart.Moon: 125, chart.Mars: at(9)}),
		build(300, map[chart.Body]float64{chart.Venus: 340, chart.Jupiter: 250, chart.Mercury: 310}),
	}

	l, buf := logger.GetTestLogger(t)
	e := NewEvaluator(l, 4)
	total := 0
	for _, c := range charts {
		total += len(e.Evaluate(context.Background(), Doshas(), c))
		total += len(e.Evaluate(context.Background(), Yogas(), c))
	}

	assert.Positive(t, total)
	assert.Empty(t, buf.String())
}
