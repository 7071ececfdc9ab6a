package rules

// Level is the severity of an affliction or the strength of a combination.
// The two catalogues use different scales.
type Level string

// Affliction severities.
const (
	Mild     Level = "Mild"
	Moderate Level = "Moderate"
	Severe   Level = "Severe"
)

// Combination strengths. Moderate is shared with the affliction scale.
const (
	Weak             Level = "Weak"
	Strong           Level = "Strong"
	VeryStrong       Level = "Very Strong"
	Mixed            Level = "Mixed"
	Affliction       Level = "Affliction"
	StrongAffliction Level = "Strong Affliction"
)

// Category groups findings for presentation.
type Category string

// Affliction categories.
const (
	MajorDosha         Category = "Major Dosha"
	AncestralDosha     Category = "Ancestral Dosha"
	CurseDosha         Category = "Curse Dosha"
	CompatibilityDosha Category = "Compatibility Dosha"
	FamilyDosha        Category = "Family Dosha"
	SpiritualDosha     Category = "Spiritual Dosha"
	StarDosha          Category = "Star Dosha"
	DeathDosha         Category = "Death Dosha"
	MarriageDosha      Category = "Marriage Dosha"
	PlanetaryDosha     Category = "Planetary Dosha"
	HouseDosha         Category = "House Dosha"
	SpecialDosha       Category = "Special Dosha"
	ModernDosha        Category = "Modern Dosha"
)

// Combination categories.
const (
	RajYoga       Category = "Raj Yoga"
	DhanYoga      Category = "Dhan Yoga"
	VidyaYoga     Category = "Vidya Yoga"
	AyushYoga     Category = "Ayush Yoga"
	VivahYoga     Category = "Vivah Yoga"
	KarmaYoga     Category = "Karma Yoga"
	ForeignYoga   Category = "Foreign Yoga"
	SpiritualYoga Category = "Spiritual Yoga"
	SpecialYoga   Category = "Special Yoga"
	DoshaYoga     Category = "Dosha Yoga"
	TithiYoga     Category = "Tithi Yoga"
	HouseYoga     Category = "House Yoga"
	PlanetaryYoga Category = "Planetary Yoga"
	ModernYoga    Category = "Modern Yoga"
	StrengthYoga  Category = "Strength Yoga"
	NakshatraYoga Category = "Nakshatra Yoga"
)

// Finding is the output of one rule that fired. Findings are values and are
// never modified after they are produced.
type Finding struct {
	Name        string   `json:"name"`
	Category    Category `json:"type"`
	Description string   `json:"description"`
	Level       Level    `json:"level"`
	Effects     string   `json:"effects,omitempty"`
	Remedies    string   `json:"remedies,omitempty"`
}
