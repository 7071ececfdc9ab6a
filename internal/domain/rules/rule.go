package rules

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/phrazzld/kundli-api/internal/domain/chart"
	"github.com/phrazzld/kundli-api/internal/domain/panchang"
)

// Kind tells the evaluator what a rule reads.
type Kind int

const (
	// ChartOnly rules read placements only.
	ChartOnly Kind = iota
	// NeedsTimeFacts rules also read the tithi or nakshatra.
	NeedsTimeFacts
)

func (k Kind) String() string {
	if k == NeedsTimeFacts {
		return "needs_time_facts"
	}
	return "chart_only"
}

// Hit is what a matcher reports about the placement that satisfied it.
// Descriptions and grades read from it.
type Hit struct {
	Body      chart.Body
	House     int
	Strength  chart.Strength
	Bodies    []chart.Body
	Signs     []chart.Sign
	Count     int
	Factors   []string
	Phase     string
	Tithi     int
	Nakshatra int
}

// Match inspects a chart and reports a hit.
type Match func(c *chart.Chart) (Hit, bool)

// TimedMatch also receives the chart's time facts.
type TimedMatch func(c *chart.Chart, tf chart.TimeFacts) (Hit, bool)

// Grade derives a level from the hit when it varies by placement.
type Grade func(c *chart.Chart, h Hit) Level

// Descriptor is the static half of a rule. Name and Description are
// text/template sources evaluated against the hit.
type Descriptor struct {
	Name        string
	Category    Category
	Level       Level
	Description string
	Effects     string
	Remedies    string
	Grade       Grade
}

// Rule is a descriptor bound to a matcher.
type Rule struct {
	desc  Descriptor
	kind  Kind
	match Match
	timed TimedMatch
	name  *template.Template
	text  *template.Template
}

var templateFuncs = template.FuncMap{
	"ord":       Ordinal,
	"join":      joinBodies,
	"nakshatra": panchang.NakshatraName,
	"tithi":     panchang.TithiName,
}

// ChartRule registers a rule that reads placements only.
func ChartRule(d Descriptor, m Match) Rule {
	r := newRule(d)
	r.kind = ChartOnly
	r.match = m
	return r
}

// TimedRule registers a rule that needs the chart's time facts.
func TimedRule(d Descriptor, m TimedMatch) Rule {
	r := newRule(d)
	r.kind = NeedsTimeFacts
	r.timed = m
	return r
}

// newRule parses the descriptor templates. Descriptors are compiled into the
// binary, so a malformed template is a programming error and panics.
func newRule(d Descriptor) Rule {
	return Rule{
		desc: d,
		name: template.Must(template.New("name").Funcs(templateFuncs).Parse(d.Name)),
		text: template.Must(template.New("description").Funcs(templateFuncs).Parse(d.Description)),
	}
}

// Name returns the rule's name template source.
func (r Rule) Name() string { return r.desc.Name }

// Kind reports whether the rule needs time facts.
func (r Rule) Kind() Kind { return r.kind }

// Apply runs the rule against c. It returns false when the rule does not
// fire, including when it needs time facts the chart does not carry.
func (r Rule) Apply(c *chart.Chart) (Finding, bool, error) {
	var (
		hit Hit
		ok  bool
	)
	switch r.kind {
	case NeedsTimeFacts:
		tf, present := c.TimeFacts()
		if !present {
			return Finding{}, false, nil
		}
		hit, ok = r.timed(c, tf)
	default:
		hit, ok = r.match(c)
	}
	if !ok {
		return Finding{}, false, nil
	}

	name, err := render(r.name, hit)
	if err != nil {
		return Finding{}, false, fmt.Errorf("render name of %q: %w", r.desc.Name, err)
	}
	text, err := render(r.text, hit)
	if err != nil {
		return Finding{}, false, fmt.Errorf("render description of %q: %w", r.desc.Name, err)
	}

	level := r.desc.Level
	if r.desc.Grade != nil {
		level = r.desc.Grade(c, hit)
	}

	return Finding{
		Name:        name,
		Category:    r.desc.Category,
		Description: text,
		Level:       level,
		Effects:     r.desc.Effects,
		Remedies:    r.desc.Remedies,
	}, true, nil
}

func render(t *template.Template, h Hit) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, h); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Ordinal renders n as "1st", "2nd", "3rd", "4th", ... "11th", "12th".
func Ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func joinBodies(bs []chart.Body) string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = string(b)
	}
	return strings.Join(parts, ", ")
}
