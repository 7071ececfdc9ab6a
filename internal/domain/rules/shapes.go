package rules

import (
	"slices"

	"github.com/phrazzld/kundli-api/internal/domain/chart"
)

// SignExchange matches the first pair of bodies each occupying a sign ruled
// by the other.
func SignExchange() Match {
	return func(c *chart.Chart) (Hit, bool) {
		tables := c.Tables()
		bodies := c.Bodies()
		for i, a := range bodies {
			for _, b := range bodies[i+1:] {
				if tables.Lord(a.Sign) == b.Body && tables.Lord(b.Sign) == a.Body {
					return Hit{
						Body:   a.Body,
						House:  a.House,
						Bodies: []chart.Body{a.Body, b.Body},
						Signs:  []chart.Sign{a.Sign, b.Sign},
					}, true
				}
			}
		}
		return Hit{}, false
	}
}

// HemmedByNodes matches when every classical planet lies in the houses from
// the lower to the higher of the two nodes, inclusive. All seven classical
// planets and both nodes must be placed.
func HemmedByNodes() Match {
	return func(c *chart.Chart) (Hit, bool) {
		if !c.Has(chart.Rahu, chart.Ketu) || !c.Has(chart.Classical...) {
			return Hit{}, false
		}
		lo, hi := c.House(chart.Rahu), c.House(chart.Ketu)
		if lo > hi {
			lo, hi = hi, lo
		}
		for _, b := range chart.Classical {
			if h := c.House(b); h < lo || h > hi {
				return Hit{}, false
			}
		}
		return Hit{Bodies: slices.Clone(chart.Classical), Count: len(chart.Classical)}, true
	}
}

// OneHalf matches when every classical planet sits in houses 1-6 or every
// one sits in houses 7-12. All seven must be placed. Count is the number of
// them that are exalted or in their own sign.
func OneHalf() Match {
	return func(c *chart.Chart) (Hit, bool) {
		if !c.Has(chart.Classical...) {
			return Hit{}, false
		}
		lower, upper := true, true
		var hit Hit
		for _, b := range chart.Classical {
			p, _ := c.Body(b)
			if p.House > 6 {
				lower = false
			} else {
				upper = false
			}
			if p.Strength.Strong() {
				hit.Bodies = append(hit.Bodies, b)
				hit.Count++
			}
		}
		if !lower && !upper {
			return Hit{}, false
		}
		if lower {
			hit.Phase = "first"
		} else {
			hit.Phase = "second"
		}
		return hit, true
	}
}

// Unflanked matches when b is placed and no other body occupies the house
// on either side of it.
func Unflanked(b chart.Body) Match {
	return func(c *chart.Chart) (Hit, bool) {
		h, ok := placed(c, b)
		if !ok {
			return Hit{}, false
		}
		prev, next := chart.PrevHouse(h.House), chart.NextHouse(h.House)
		for _, p := range c.Bodies() {
			if p.Body != b && (p.House == prev || p.House == next) {
				return Hit{}, false
			}
		}
		return h, true
	}
}

// SaturnOverMoon matches when Saturn is in the Moon's house ("First
// Phase") or in a house adjacent to it ("Second Phase").
func SaturnOverMoon() Match {
	return func(c *chart.Chart) (Hit, bool) {
		if !c.Has(chart.Saturn, chart.Moon) {
			return Hit{}, false
		}
		sat, moon := c.House(chart.Saturn), c.House(chart.Moon)
		hit := Hit{Body: chart.Saturn, House: sat}
		switch sat {
		case moon:
			hit.Phase = "First Phase"
		case chart.PrevHouse(moon), chart.NextHouse(moon):
			hit.Phase = "Second Phase"
		default:
			return Hit{}, false
		}
		return hit, true
	}
}

// InSigns matches when b occupies one of signs.
func InSigns(b chart.Body, signs ...chart.Sign) Match {
	return func(c *chart.Chart) (Hit, bool) {
		p, ok := c.Body(b)
		if !ok || !slices.Contains(signs, p.Sign) {
			return Hit{}, false
		}
		return Hit{Body: b, House: p.House, Strength: p.Strength, Signs: []chart.Sign{p.Sign}}, true
	}
}

// OpposedSignPair matches when b is in one of signs and reports the sign
// opposite it as the second entry of Signs.
func OpposedSignPair(b chart.Body, signs ...chart.Sign) Match {
	return func(c *chart.Chart) (Hit, bool) {
		h, ok := InSigns(b, signs...)(c)
		if !ok {
			return Hit{}, false
		}
		h.Signs = append(h.Signs, h.Signs[0].Opposite())
		return h, true
	}
}

// InNavamsha matches when b's navamsha is sign.
func InNavamsha(b chart.Body, sign chart.Sign) Match {
	return func(c *chart.Chart) (Hit, bool) {
		p, ok := c.Body(b)
		if !ok || p.Navamsha != sign {
			return Hit{}, false
		}
		return Hit{Body: b, House: p.House, Strength: p.Strength, Signs: []chart.Sign{p.Navamsha}}, true
	}
}

// Friendly matches when b is listed as a friend of a.
func Friendly(a, b chart.Body) Match {
	return func(c *chart.Chart) (Hit, bool) {
		if !c.Tables().IsFriend(a, b) {
			return Hit{}, false
		}
		return Hit{Bodies: []chart.Body{a, b}}, true
	}
}

// Eclipsed matches a Sun-Moon conjunction with Rahu joining or opposing it.
func Eclipsed() Match {
	return All(
		Conjunct(chart.Sun, chart.Moon),
		AnyOf(Conjunct(chart.Sun, chart.Rahu), Opposed(chart.Sun, chart.Rahu)),
	)
}

// Factor is one named condition counted by Factors.
type Factor struct {
	Label string
	Match Match
}

// Factors matches when at least one factor holds. Count is the number that
// hold and Factors their labels, in order.
func Factors(fs ...Factor) Match {
	return func(c *chart.Chart) (Hit, bool) {
		var hit Hit
		for _, f := range fs {
			if _, ok := f.Match(c); ok {
				hit.Factors = append(hit.Factors, f.Label)
				hit.Count++
			}
		}
		return hit, hit.Count > 0
	}
}

// CountInHouses matches when at least n of bodies occupy one of houses.
// Bodies lists the ones found.
func CountInHouses(n int, bodies []chart.Body, houses ...int) Match {
	return func(c *chart.Chart) (Hit, bool) {
		var hit Hit
		for _, b := range bodies {
			p, ok := c.Body(b)
			if !ok || !slices.Contains(houses, p.House) {
				continue
			}
			hit.Count++
			hit.Bodies = append(hit.Bodies, b)
		}
		return hit, hit.Count >= n
	}
}

// AspectedBy matches when a casts an aspect on the house holding target.
// The hit describes target.
func AspectedBy(a, target chart.Body) Match {
	return func(c *chart.Chart) (Hit, bool) {
		if !c.AspectsBody(a, target) {
			return Hit{}, false
		}
		h, _ := placed(c, target)
		h.Bodies = []chart.Body{a, target}
		return h, true
	}
}

// WithStrengths records the dignity of each of the hit's bodies in Factors,
// in the same order.
func WithStrengths(m Match) Match {
	return func(c *chart.Chart) (Hit, bool) {
		h, ok := m(c)
		if !ok {
			return Hit{}, false
		}
		h.Factors = make([]string, 0, len(h.Bodies))
		for _, b := range h.Bodies {
			p, _ := c.Body(b)
			h.Factors = append(h.Factors, string(p.Strength))
		}
		return h, true
	}
}
