package rules

import (
	"slices"

	"github.com/phrazzld/kundli-api/internal/domain/chart"
)

var (
	// Benefics are the natural benefics used by the combination rules.
	Benefics = []chart.Body{chart.Jupiter, chart.Venus, chart.Mercury}

	// Malefics are the bodies the affliction rules treat as malefic.
	Malefics = []chart.Body{chart.Saturn, chart.Mars, chart.Rahu, chart.Ketu}
)

func placed(c *chart.Chart, b chart.Body) (Hit, bool) {
	p, ok := c.Body(b)
	if !ok {
		return Hit{}, false
	}
	return Hit{Body: b, House: p.House, Strength: p.Strength}, true
}

// InHouses matches when b occupies one of houses.
func InHouses(b chart.Body, houses ...int) Match {
	return func(c *chart.Chart) (Hit, bool) {
		h, ok := placed(c, b)
		if !ok || !slices.Contains(houses, h.House) {
			return Hit{}, false
		}
		return h, true
	}
}

// WithStrength matches when b has one of the given dignities.
func WithStrength(b chart.Body, strengths ...chart.Strength) Match {
	return func(c *chart.Chart) (Hit, bool) {
		h, ok := placed(c, b)
		if !ok || !slices.Contains(strengths, h.Strength) {
			return Hit{}, false
		}
		return h, true
	}
}

// FirstInHouses tries bodies in order and reports the first one placed in
// one of houses.
func FirstInHouses(bodies []chart.Body, houses ...int) Match {
	return func(c *chart.Chart) (Hit, bool) {
		for _, b := range bodies {
			if h, ok := InHouses(b, houses...)(c); ok {
				return h, true
			}
		}
		return Hit{}, false
	}
}

// FirstByHouse walks houses in order and, for each, bodies in order,
// reporting the first body found.
func FirstByHouse(houses []int, bodies ...chart.Body) Match {
	return func(c *chart.Chart) (Hit, bool) {
		for _, house := range houses {
			for _, b := range bodies {
				if h, ok := InHouses(b, house)(c); ok {
					return h, true
				}
			}
		}
		return Hit{}, false
	}
}

// FirstWhere reports the first placed body, in canonical order, that
// satisfies pred.
func FirstWhere(pred func(p chart.BodyPosition) bool) Match {
	return func(c *chart.Chart) (Hit, bool) {
		for _, p := range c.Bodies() {
			if pred(p) {
				return Hit{Body: p.Body, House: p.House, Strength: p.Strength}, true
			}
		}
		return Hit{}, false
	}
}

// AnyInHouses matches when at least one of bodies occupies one of houses.
// A nil bodies slice means every placed body. The hit lists every body
// found, and Body and House describe the first.
func AnyInHouses(bodies []chart.Body, houses ...int) Match {
	return func(c *chart.Chart) (Hit, bool) {
		var hit Hit
		for _, p := range c.Bodies() {
			if bodies != nil && !slices.Contains(bodies, p.Body) {
				continue
			}
			if !slices.Contains(houses, p.House) {
				continue
			}
			if hit.Count == 0 {
				hit.Body, hit.House, hit.Strength = p.Body, p.House, p.Strength
			}
			hit.Bodies = append(hit.Bodies, p.Body)
			hit.Count++
		}
		return hit, hit.Count > 0
	}
}

// CountAtLeast matches when at least n placed bodies satisfy pred.
func CountAtLeast(n int, pred func(p chart.BodyPosition) bool) Match {
	return func(c *chart.Chart) (Hit, bool) {
		var hit Hit
		for _, p := range c.Bodies() {
			if pred(p) {
				hit.Bodies = append(hit.Bodies, p.Body)
				hit.Count++
			}
		}
		return hit, hit.Count >= n
	}
}

// Conjunct matches when a and b share a house.
func Conjunct(a, b chart.Body) Match {
	return func(c *chart.Chart) (Hit, bool) {
		if !c.Conjunct(a, b) {
			return Hit{}, false
		}
		return Hit{Body: a, House: c.House(a), Bodies: []chart.Body{a, b}}, true
	}
}

// Opposed matches when a and b are seven places apart.
func Opposed(a, b chart.Body) Match {
	return func(c *chart.Chart) (Hit, bool) {
		if !c.Opposed(a, b) {
			return Hit{}, false
		}
		return Hit{Body: a, House: c.House(a), Bodies: []chart.Body{a, b}}, true
	}
}

// Place matches when target sits exactly n places from the house of from,
// counting the house of from as the first.
func Place(from, target chart.Body, n int) Match {
	return func(c *chart.Chart) (Hit, bool) {
		if !c.Has(from, target) || chart.HouseFrom(c.House(from), c.House(target)) != n {
			return Hit{}, false
		}
		return Hit{Body: target, House: c.House(target), Bodies: []chart.Body{from, target}}, true
	}
}

// LordInOwnHouse matches when the lord of house n sits in house n.
func LordInOwnHouse(n int) Match {
	return func(c *chart.Chart) (Hit, bool) {
		return InHouses(c.HouseLord(n), n)(c)
	}
}

// All matches when every matcher matches. The hit is the first matcher's,
// with empty fields filled in from later hits.
func All(ms ...Match) Match {
	return func(c *chart.Chart) (Hit, bool) {
		var hit Hit
		for i, m := range ms {
			h, ok := m(c)
			if !ok {
				return Hit{}, false
			}
			if i == 0 {
				hit = h
				continue
			}
			hit = merge(hit, h)
		}
		return hit, len(ms) > 0
	}
}

// AnyOf reports the first matcher that matches.
func AnyOf(ms ...Match) Match {
	return func(c *chart.Chart) (Hit, bool) {
		for _, m := range ms {
			if h, ok := m(c); ok {
				return h, true
			}
		}
		return Hit{}, false
	}
}

// Labelled tags a matcher's hit with a phase label.
func Labelled(label string, m Match) Match {
	return func(c *chart.Chart) (Hit, bool) {
		h, ok := m(c)
		if !ok {
			return Hit{}, false
		}
		h.Phase = label
		return h, true
	}
}

func merge(dst, src Hit) Hit {
	if dst.Body == "" {
		dst.Body = src.Body
	}
	if dst.House == 0 {
		dst.House = src.House
	}
	if dst.Strength == "" {
		dst.Strength = src.Strength
	}
	if len(dst.Bodies) == 0 {
		dst.Bodies = src.Bodies
	}
	if len(dst.Signs) == 0 {
		dst.Signs = src.Signs
	}
	if dst.Count == 0 {
		dst.Count = src.Count
	}
	if len(dst.Factors) == 0 {
		dst.Factors = src.Factors
	}
	if dst.Phase == "" {
		dst.Phase = src.Phase
	}
	if dst.Tithi == 0 {
		dst.Tithi = src.Tithi
	}
	if dst.Nakshatra == 0 {
		dst.Nakshatra = src.Nakshatra
	}
	return dst
}

// Timed lifts a placement matcher into a timed one that also requires
// check to accept the time facts.
func Timed(m Match, check TimedMatch) TimedMatch {
	return func(c *chart.Chart, tf chart.TimeFacts) (Hit, bool) {
		h, ok := m(c)
		if !ok {
			return Hit{}, false
		}
		t, ok := check(c, tf)
		if !ok {
			return Hit{}, false
		}
		return merge(h, t), true
	}
}

// TithiIn matches when the tithi is one of tithis.
func TithiIn(tithis ...int) TimedMatch {
	return func(_ *chart.Chart, tf chart.TimeFacts) (Hit, bool) {
		if !slices.Contains(tithis, tf.Tithi) {
			return Hit{}, false
		}
		return Hit{Tithi: tf.Tithi, Nakshatra: tf.Nakshatra}, true
	}
}

// NakshatraIn matches when the Moon's nakshatra is one of ns.
func NakshatraIn(ns ...int) TimedMatch {
	return func(_ *chart.Chart, tf chart.TimeFacts) (Hit, bool) {
		if !slices.Contains(ns, tf.Nakshatra) {
			return Hit{}, false
		}
		return Hit{Tithi: tf.Tithi, Nakshatra: tf.Nakshatra}, true
	}
}

// NakshatraLordIn matches when the Moon's nakshatra is ruled by one of
// lords. The hit's Body is the ruling lord.
func NakshatraLordIn(lords ...chart.Body) TimedMatch {
	return func(c *chart.Chart, tf chart.TimeFacts) (Hit, bool) {
		lord := c.Tables().NakshatraLord(tf.Nakshatra)
		if !slices.Contains(lords, lord) {
			return Hit{}, false
		}
		return Hit{Body: lord, Tithi: tf.Tithi, Nakshatra: tf.Nakshatra}, true
	}
}
