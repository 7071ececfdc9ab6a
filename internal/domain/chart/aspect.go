package chart

// Aspects reports whether a body in house from casts a whole-sign aspect
// on house to. Every body aspects the 7th place from itself; Mars also the
// 4th and 8th, Jupiter the 5th and 9th, Saturn the 3rd and 10th.
func Aspects(body Body, from, to int) bool {
	d := HouseFrom(from, to)
	if d == 7 {
		return true
	}
	switch body {
	case Mars:
		return d == 4 || d == 8
	case Jupiter:
		return d == 5 || d == 9
	case Saturn:
		return d == 3 || d == 10
	}
	return false
}

// AspectedHouses lists the houses a body in house from aspects.
func AspectedHouses(body Body, from int) []int {
	var out []int
	for d := 2; d <= 12; d++ {
		to := (from+d-2)%12 + 1
		if Aspects(body, from, to) {
			out = append(out, to)
		}
	}
	return out
}

// Conjunct reports whether a and b occupy the same house.
func (c *Chart) Conjunct(a, b Body) bool {
	return c.Has(a, b) && c.House(a) == c.House(b)
}

// Opposed reports whether a and b sit seven places apart.
func (c *Chart) Opposed(a, b Body) bool {
	return c.Has(a, b) && HouseFrom(c.House(a), c.House(b)) == 7
}

// AspectsBody reports whether a casts an aspect on the house holding b.
func (c *Chart) AspectsBody(a, b Body) bool {
	return c.Has(a, b) && Aspects(a, c.House(a), c.House(b))
}

// AspectsHouse reports whether a casts an aspect on house h.
func (c *Chart) AspectsHouse(a Body, h int) bool {
	return c.Has(a) && Aspects(a, c.House(a), h)
}
