package panchang

import (
	"sort"
	"time"

	"github.com/phrazzld/kundli-api/internal/domain/chart"
)

// DashaSystem names the period system the karakas are read against.
const DashaSystem = "Vimshottari, Years = 365.25 Days"

// Astrological holds the lordships and karakas of a chart.
type Astrological struct {
	MoonSign      string     `json:"moon_sign,omitempty"`
	SunSign       string     `json:"sun_sign,omitempty"`
	Ascendant     string     `json:"ascendant"`
	AscendantLord chart.Body `json:"ascendant_lord"`
	MoonSignLord  chart.Body `json:"moon_sign_lord,omitempty"`
	SunSignLord   chart.Body `json:"sign_lord,omitempty"`
	NakshatraLord chart.Body `json:"nakshatra_lord,omitempty"`
	Charan        int        `json:"charan,omitempty"`
	AtmaKaraka    chart.Body `json:"atma_karaka,omitempty"`
	AmatyaKaraka  chart.Body `json:"amatya_karaka,omitempty"`
	DashaSystem   string     `json:"dasha_system"`
}

// Calendar holds the five limbs of the panchang at birth.
type Calendar struct {
	Weekday    string `json:"weekday"`
	LocalTime  string `json:"local_mean_time"`
	Nakshatra  string `json:"birth_star_nakshatra"`
	Tithi      string `json:"tithi_lunar_day"`
	Paksha     string `json:"paksha"`
	Karana     string `json:"karan"`
	NithyaYoga string `json:"nithya_yoga"`
}

// Details is everything derived for presentation next to a chart.
type Details struct {
	Astrological Astrological `json:"astrological_details"`
	Panchang     *Calendar    `json:"panchang_details,omitempty"`
	Lucky        *LuckyPoints `json:"lucky_points,omitempty"`
}

// Compute derives the details of c. local is the birth moment in the birth
// place's zone and feeds the weekday and clock time. The calendar and lucky
// points are omitted when the chart carries no time facts.
func Compute(c *chart.Chart, local time.Time) Details {
	tables := c.Tables()
	asc := c.Ascendant().Sign

	astro := Astrological{
		Ascendant:     asc.Name(),
		AscendantLord: tables.Lord(asc),
		DashaSystem:   DashaSystem,
	}
	if moon, ok := c.Body(chart.Moon); ok {
		astro.MoonSign = moon.Sign.Name()
		astro.MoonSignLord = tables.Lord(moon.Sign)
	}
	if sun, ok := c.Body(chart.Sun); ok {
		astro.SunSign = sun.Sign.Name()
		astro.SunSignLord = tables.Lord(sun.Sign)
	}
	astro.AtmaKaraka, astro.AmatyaKaraka = Karakas(c)

	d := Details{Astrological: astro}

	tf, ok := c.TimeFacts()
	if !ok {
		return d
	}
	lord := tables.NakshatraLord(tf.Nakshatra)
	d.Astrological.NakshatraLord = lord
	d.Astrological.Charan = tf.Charan
	d.Panchang = &Calendar{
		Weekday:    local.Weekday().String(),
		LocalTime:  local.Format("15:04:05"),
		Nakshatra:  NakshatraName(tf.Nakshatra),
		Tithi:      TithiName(tf.Tithi),
		Paksha:     Paksha(tf.Tithi),
		Karana:     KaranaName(tf.Karana),
		NithyaYoga: YogaName(tf.Yoga),
	}
	lp := Lucky(lord)
	d.Lucky = &lp
	return d
}

// Karakas returns the atma karaka and amatya karaka: the classical planets
// with the highest and second-highest degree within their sign. Both are
// empty when fewer than two classical planets are placed.
func Karakas(c *chart.Chart) (atma, amatya chart.Body) {
	var placed []chart.BodyPosition
	for _, b := range chart.Classical {
		if p, ok := c.Body(b); ok {
			placed = append(placed, p)
		}
	}
	if len(placed) < 2 {
		return "", ""
	}
	sort.SliceStable(placed, func(i, j int) bool {
		return placed[i].Degree > placed[j].Degree
	})
	return placed[0].Body, placed[1].Body
}
