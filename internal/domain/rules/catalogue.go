package rules

import "slices"

// Catalogue is an ordered, immutable list of rules.
type Catalogue struct {
	name  string
	rules []Rule
}

// NewCatalogue creates a catalogue. Rules run and report in the order given.
func NewCatalogue(name string, rules ...Rule) *Catalogue {
	return &Catalogue{name: name, rules: slices.Clone(rules)}
}

// Name returns the catalogue name used in logs.
func (c *Catalogue) Name() string { return c.name }

// Len returns the number of rules.
func (c *Catalogue) Len() int { return len(c.rules) }

// Rules returns a copy of the rules in registration order.
func (c *Catalogue) Rules() []Rule { return slices.Clone(c.rules) }

// With returns a new catalogue with extra rules appended.
func (c *Catalogue) With(rules ...Rule) *Catalogue {
	return NewCatalogue(c.name, append(c.Rules(), rules...)...)
}
