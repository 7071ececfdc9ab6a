package chart

import (
	"encoding/json"
	"math"
)

// BodyPosition is a body placed in the chart.
type BodyPosition struct {
	Body Body `json:"body"`
	Position
	House    int      `json:"house"`
	Strength Strength `json:"strength"`
	Navamsha Sign     `json:"navamsha"`
}

// Chart is an assembled natal chart. It is immutable: accessors return
// copies and nothing mutates a Chart after Assemble returns.
type Chart struct {
	ascendant Position
	bodies    map[Body]BodyPosition
	order     []Body
	timeFacts *TimeFacts
	tables    *Tables
}

// Assemble builds a chart from the ascendant longitude and body longitudes.
// Unknown bodies and non-finite longitudes are left out. A nil tables value
// uses DefaultTables.
func Assemble(ascendant float64, longitudes map[Body]float64, tables *Tables) *Chart {
	if tables == nil {
		tables = DefaultTables()
	}

	c := &Chart{
		ascendant: Normalize(ascendant),
		bodies:    make(map[Body]BodyPosition, len(longitudes)),
		tables:    tables,
	}

	for _, b := range AllBodies {
		lon, ok := longitudes[b]
		if !ok || math.IsNaN(lon) || math.IsInf(lon, 0) {
			continue
		}
		pos := Normalize(lon)
		c.bodies[b] = BodyPosition{
			Body:     b,
			Position: pos,
			House:    RelativeHouse(c.ascendant.Sign, pos.Sign),
			Strength: tables.Classify(b, pos.Sign),
			Navamsha: Navamsha(pos.Sign, pos.Degree),
		}
		c.order = append(c.order, b)
	}

	sun, okSun := c.bodies[Sun]
	moon, okMoon := c.bodies[Moon]
	if okSun && okMoon {
		tf := DeriveTimeFacts(sun.Longitude, moon.Longitude)
		c.timeFacts = &tf
	}
	return c
}

// Ascendant returns the ascendant position.
func (c *Chart) Ascendant() Position {
	return c.ascendant
}

// Tables returns the dignity tables the chart was classified with.
func (c *Chart) Tables() *Tables {
	return c.tables
}

// Body returns the placement of b, if present.
func (c *Chart) Body(b Body) (BodyPosition, bool) {
	p, ok := c.bodies[b]
	return p, ok
}

// Has reports whether every one of bs is present.
func (c *Chart) Has(bs ...Body) bool {
	for _, b := range bs {
		if _, ok := c.bodies[b]; !ok {
			return false
		}
	}
	return true
}

// House returns the house of b, or 0 when b is absent.
func (c *Chart) House(b Body) int {
	return c.bodies[b].House
}

// Bodies returns every placement in canonical order.
func (c *Chart) Bodies() []BodyPosition {
	out := make([]BodyPosition, 0, len(c.order))
	for _, b := range c.order {
		out = append(out, c.bodies[b])
	}
	return out
}

// Len returns the number of placed bodies.
func (c *Chart) Len() int {
	return len(c.order)
}

// InHouse returns the bodies in house h, in canonical order.
func (c *Chart) InHouse(h int) []Body {
	var out []Body
	for _, b := range c.order {
		if c.bodies[b].House == h {
			out = append(out, b)
		}
	}
	return out
}

// Houses returns the whole-sign house table for the ascendant.
func (c *Chart) Houses() [12]House {
	return WholeSignHouses(c.ascendant.Sign)
}

// HouseLord returns the lord of the sign covering house n.
func (c *Chart) HouseLord(n int) Body {
	return c.tables.Lord(HouseSign(c.ascendant.Sign, n))
}

// TimeFacts returns the derived calendar facts, present only when both the
// Sun and Moon are placed.
func (c *Chart) TimeFacts() (TimeFacts, bool) {
	if c.timeFacts == nil {
		return TimeFacts{}, false
	}
	return *c.timeFacts, true
}

type chartJSON struct {
	Ascendant Position       `json:"ascendant"`
	Bodies    []BodyPosition `json:"bodies"`
	TimeFacts *TimeFacts     `json:"time_facts,omitempty"`
}

// MarshalJSON renders the chart with bodies in canonical order.
func (c *Chart) MarshalJSON() ([]byte, error) {
	return json.Marshal(chartJSON{
		Ascendant: c.ascendant,
		Bodies:    c.Bodies(),
		TimeFacts: c.timeFacts,
	})
}
