package chart

import (
	"fmt"
	"slices"
	"strings"
)

// Body is a tracked celestial body or lunar node.
type Body string

// Tracked bodies.
const (
	Sun     Body = "Sun"
	Moon    Body = "Moon"
	Mars    Body = "Mars"
	Mercury Body = "Mercury"
	Jupiter Body = "Jupiter"
	Venus   Body = "Venus"
	Saturn  Body = "Saturn"
	Rahu    Body = "Rahu"
	Ketu    Body = "Ketu"
	Uranus  Body = "Uranus"
	Neptune Body = "Neptune"
	Pluto   Body = "Pluto"
)

var (
	// Classical is the seven visible planets.
	Classical = []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

	// Grahas is the classical seven plus both lunar nodes.
	Grahas = []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

	// Outer is the optional set of trans-Saturnian planets.
	Outer = []Body{Uranus, Neptune, Pluto}

	// AllBodies is every body a chart can hold, in canonical order.
	AllBodies = append(append([]Body{}, Grahas...), Outer...)
)

var bodyIndex = func() map[Body]int {
	m := make(map[Body]int, len(AllBodies))
	for i, b := range AllBodies {
		m[b] = i
	}
	return m
}()

// Valid reports whether b is one of the known bodies.
func (b Body) Valid() bool {
	_, ok := bodyIndex[b]
	return ok
}

// IsNode reports whether b is one of the lunar nodes.
func (b Body) IsNode() bool {
	return b == Rahu || b == Ketu
}

// Optional reports whether b is one of the outer planets a chart may
// legitimately lack.
func (b Body) Optional() bool {
	return slices.Contains(Outer, b)
}

// ParseBody resolves a body name case-insensitively. The ephemeris label
// "Rahu (Mean)" is accepted for Rahu and likewise for Ketu.
func ParseBody(name string) (Body, error) {
	n := strings.TrimSpace(name)
	n = strings.TrimSuffix(n, " (Mean)")
	for _, b := range AllBodies {
		if strings.EqualFold(string(b), n) {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBody, name)
}
