package chart

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// Strength is a body's dignity in the sign it occupies.
type Strength string

// Dignity classes, highest precedence first.
const (
	Exalted     Strength = "Exalted"
	Debilitated Strength = "Debilitated"
	OwnSign     Strength = "Own Sign"
	Neutral     Strength = "Neutral"
)

// Strong reports whether the dignity is Exalted or OwnSign.
func (s Strength) Strong() bool {
	return s == Exalted || s == OwnSign
}

//go:embed tables.yaml
var embeddedTables []byte

// tablesFile is the on-disk shape of the dignity tables.
type tablesFile struct {
	Exaltation     map[Body]Sign   `yaml:"exaltation"`
	Debilitation   map[Body]Sign   `yaml:"debilitation"`
	SignLords      map[Sign]Body   `yaml:"sign_lords"`
	Friends        map[Body][]Body `yaml:"friends"`
	Enemies        map[Body][]Body `yaml:"enemies"`
	NakshatraLords []Body          `yaml:"nakshatra_lords"`
}

// Tables holds the static per-body lookups. A Tables value is never modified
// after it is built and may be shared freely.
type Tables struct {
	exaltation     map[Body]Sign
	debilitation   map[Body]Sign
	lords          [13]Body
	friends        map[Body][]Body
	enemies        map[Body][]Body
	nakshatraLords []Body
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// DefaultTables returns the embedded dignity tables, parsed once.
func DefaultTables() *Tables {
	defaultOnce.Do(func() {
		t, err := ParseTables(embeddedTables)
		if err != nil {
			panic(fmt.Sprintf("chart: embedded tables: %v", err))
		}
		defaultTables = t
	})
	return defaultTables
}

// LoadTables reads an override tables file from path.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file %s: %w", path, err)
	}
	return ParseTables(data)
}

// ParseTables decodes and validates YAML dignity tables.
func ParseTables(data []byte) (*Tables, error) {
	var f tablesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTables, err)
	}

	for _, b := range Grahas {
		ex, ok := f.Exaltation[b]
		if !ok || !ex.Valid() {
			return nil, fmt.Errorf("%w: missing exaltation sign for %s", ErrInvalidTables, b)
		}
		deb, ok := f.Debilitation[b]
		if !ok || !deb.Valid() {
			return nil, fmt.Errorf("%w: missing debilitation sign for %s", ErrInvalidTables, b)
		}
		if deb != ex.Opposite() {
			return nil, fmt.Errorf("%w: debilitation of %s is not opposite its exaltation", ErrInvalidTables, b)
		}
	}

	t := &Tables{
		exaltation:   f.Exaltation,
		debilitation: f.Debilitation,
		friends:      f.Friends,
		enemies:      f.Enemies,
	}
	for s := Aries; s <= Pisces; s++ {
		lord, ok := f.SignLords[s]
		if !ok || !lord.Valid() {
			return nil, fmt.Errorf("%w: missing lord for sign %d", ErrInvalidTables, s)
		}
		t.lords[s] = lord
	}

	if len(f.NakshatraLords) != 9 {
		return nil, fmt.Errorf("%w: expected 9 nakshatra lords, got %d", ErrInvalidTables, len(f.NakshatraLords))
	}
	for _, b := range f.NakshatraLords {
		if !b.Valid() {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidTables, ErrUnknownBody, b)
		}
	}
	t.nakshatraLords = f.NakshatraLords

	for body, list := range f.Friends {
		for _, other := range list {
			if slices.Contains(f.Enemies[body], other) {
				return nil, fmt.Errorf("%w: %s lists %s as friend and enemy", ErrInvalidTables, body, other)
			}
		}
	}
	return t, nil
}

// Classify returns the dignity of body in sign. Precedence is
// Exalted > Debilitated > OwnSign > Neutral.
func (t *Tables) Classify(body Body, sign Sign) Strength {
	if ex, ok := t.exaltation[body]; ok && ex == sign {
		return Exalted
	}
	if deb, ok := t.debilitation[body]; ok && deb == sign {
		return Debilitated
	}
	if sign.Valid() && t.lords[sign] == body {
		return OwnSign
	}
	return Neutral
}

// Lord returns the ruler of sign, or "" for an invalid sign.
func (t *Tables) Lord(sign Sign) Body {
	if !sign.Valid() {
		return ""
	}
	return t.lords[sign]
}

// Exaltation returns the exaltation sign of body.
func (t *Tables) Exaltation(body Body) (Sign, bool) {
	s, ok := t.exaltation[body]
	return s, ok
}

// Debilitation returns the debilitation sign of body.
func (t *Tables) Debilitation(body Body) (Sign, bool) {
	s, ok := t.debilitation[body]
	return s, ok
}

// IsFriend reports whether b is listed as a friend of a.
func (t *Tables) IsFriend(a, b Body) bool {
	return slices.Contains(t.friends[a], b)
}

// IsEnemy reports whether b is listed as an enemy of a.
func (t *Tables) IsEnemy(a, b Body) bool {
	return slices.Contains(t.enemies[a], b)
}

// Relation names how a regards b: "Own" when they are the same body,
// otherwise "Friend", "Enemy" or "Neutral" from the friendship tables.
func (t *Tables) Relation(a, b Body) string {
	switch {
	case a == b:
		return "Own"
	case t.IsFriend(a, b):
		return "Friend"
	case t.IsEnemy(a, b):
		return "Enemy"
	default:
		return "Neutral"
	}
}

// NakshatraLord returns the ruler of nakshatra n (1..27).
func (t *Tables) NakshatraLord(n int) Body {
	if n < 1 || n > 27 {
		return ""
	}
	return t.nakshatraLords[(n-1)%len(t.nakshatraLords)]
}
