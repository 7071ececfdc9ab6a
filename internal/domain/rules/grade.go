package rules

import "github.com/phrazzld/kundli-api/internal/domain/chart"

// ByHouse grades by the hit's house, falling back when the house is not
// listed.
func ByHouse(levels map[int]Level, fallback Level) Grade {
	return func(_ *chart.Chart, h Hit) Level {
		if l, ok := levels[h.House]; ok {
			return l
		}
		return fallback
	}
}

// ByCount grades above when the hit's Count exceeds threshold.
func ByCount(threshold int, above, otherwise Level) Grade {
	return func(_ *chart.Chart, h Hit) Level {
		if h.Count > threshold {
			return above
		}
		return otherwise
	}
}

// ByStrength grades by the hit body's dignity.
func ByStrength(levels map[chart.Strength]Level, fallback Level) Grade {
	return func(_ *chart.Chart, h Hit) Level {
		if l, ok := levels[h.Strength]; ok {
			return l
		}
		return fallback
	}
}

// AnyExalted grades hi when any of bodies is exalted.
func AnyExalted(hi, lo Level, bodies ...chart.Body) Grade {
	return func(c *chart.Chart, _ Hit) Level {
		for _, b := range bodies {
			if p, ok := c.Body(b); ok && p.Strength == chart.Exalted {
				return hi
			}
		}
		return lo
	}
}

// StrongBodies grades hi when at least n of the hit's bodies are exalted
// or in their own sign.
func StrongBodies(n int, hi, lo Level) Grade {
	return func(c *chart.Chart, h Hit) Level {
		strong := 0
		for _, b := range h.Bodies {
			if p, ok := c.Body(b); ok && p.Strength.Strong() {
				strong++
			}
		}
		if strong >= n {
			return hi
		}
		return lo
	}
}
