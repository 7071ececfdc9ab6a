package rules

import (
	"sync"

	"github.com/phrazzld/kundli-api/internal/domain/chart"
)

var (
	yogasOnce sync.Once
	yogas     *Catalogue
)

// Yogas returns the combination catalogue. It is built once and shared.
func Yogas() *Catalogue {
	yogasOnce.Do(func() {
		yogas = NewCatalogue("yogas", yogaRules()...)
	})
	return yogas
}

func exalted(p chart.BodyPosition) bool { return p.Strength == chart.Exalted }

func inKendra(p chart.BodyPosition) bool { return chart.IsKendra(p.House) }

// strong returns a plain Strong combination descriptor.
func strong(name string, cat Category, desc string) Descriptor {
	return Descriptor{Name: name, Category: cat, Level: Strong, Description: desc}
}

func yogaRules() []Rule {
	kendras := chart.Kendras
	wealth := []int{2, 5, 9, 11}

	return []Rule{
		// Royal, wealth and learning
		ChartRule(strong("Raja Yoga", RajYoga, "{{.Body}} in {{ord .House}} house (Kendra)"),
			FirstByHouse(kendras, Benefics...)),
		ChartRule(Descriptor{
			Name:        "{{.Body}} Mahapurusha Yoga",
			Category:    RajYoga,
			Level:       VeryStrong,
			Description: "{{.Body}} exalted in {{ord .House}} house",
		}, FirstWhere(func(p chart.BodyPosition) bool { return inKendra(p) && exalted(p) })),
		ChartRule(strong("{{index .Bodies 0}}-{{index .Bodies 1}} Parivartana Yoga", RajYoga,
			"Exchange between {{index .Bodies 0}} and {{index .Bodies 1}}"),
			SignExchange()),
		ChartRule(strong("{{.Body}} Dhana Yoga", DhanYoga, "{{.Body}} in {{ord .House}} house"),
			FirstInHouses([]chart.Body{chart.Jupiter, chart.Venus}, wealth...)),
		ChartRule(strong("Lakshmi Yoga", DhanYoga, "Venus in {{ord .House}} house"),
			InHouses(chart.Venus, 2, 4, 7, 9, 11)),
		ChartRule(strong("{{.Body}} Vidya Yoga", VidyaYoga, "{{.Body}} in {{ord .House}} house"),
			FirstInHouses([]chart.Body{chart.Mercury, chart.Jupiter}, 4, 5, 9)),
		ChartRule(Descriptor{
			Name:        "Saraswati Yoga",
			Category:    VidyaYoga,
			Level:       VeryStrong,
			Description: "Exalted Mercury in {{ord .House}} house",
		}, All(InHouses(chart.Mercury, 4, 5, 9), WithStrength(chart.Mercury, chart.Exalted))),

		// Longevity and marriage
		ChartRule(strong("Jupiter Ayushkar Yoga", AyushYoga, "Jupiter in 8th house"),
			InHouses(chart.Jupiter, 8)),
		ChartRule(Descriptor{
			Name:        "Amrit Yoga",
			Category:    AyushYoga,
			Level:       VeryStrong,
			Description: "Exalted Moon in {{ord .House}} house",
		}, All(InHouses(chart.Moon, kendras...), WithStrength(chart.Moon, chart.Exalted))),
		ChartRule(strong("Vivah Yoga", VivahYoga, "Venus in 7th house"),
			InHouses(chart.Venus, 7)),
		ChartRule(strong("Kalatra Yoga", VivahYoga, "{{.Body}} (7th lord) in 7th house"),
			LordInOwnHouse(7)),
		ChartRule(strong("Karma Yoga", KarmaYoga, "{{.Body}} (10th lord) in 10th house"),
			LordInOwnHouse(10)),
		ChartRule(strong("Paradesh Yoga", ForeignYoga, "Rahu in 12th house"),
			InHouses(chart.Rahu, 12)),
		ChartRule(strong("Sanyas Yoga", SpiritualYoga, "Saturn in 12th house"),
			InHouses(chart.Saturn, 12)),
		ChartRule(Descriptor{
			Name:        "Panch Mahapurush Yoga",
			Category:    SpecialYoga,
			Level:       VeryStrong,
			Description: "Multiple exalted planets: {{join .Bodies}}",
		}, CountAtLeast(3, exalted)),

		// Afflicting combinations
		ChartRule(Descriptor{
			Name:        "Kaal Sarp Yoga",
			Category:    DoshaYoga,
			Level:       StrongAffliction,
			Description: "All planets between Rahu and Ketu",
		}, HemmedByNodes()),
		ChartRule(Descriptor{
			Name:        "Mangal Dosha",
			Category:    DoshaYoga,
			Level:       Affliction,
			Description: "Mars in {{ord .House}} house",
		}, InHouses(chart.Mars, 1, 2, 4, 7, 8, 12)),
		TimedRule(Descriptor{
			Name:        "Gand Mool Yoga",
			Category:    NakshatraYoga,
			Level:       Affliction,
			Description: "Moon in {{nakshatra .Nakshatra}} nakshatra (Gand Mool)",
		}, NakshatraIn(1, 9, 10, 18, 19, 27)),

		// Lunar day
		ChartRule(strong("Amavasya Yoga", TithiYoga, "Sun and Moon in same house"),
			Conjunct(chart.Sun, chart.Moon)),
		ChartRule(strong("Purnima Yoga", TithiYoga, "Sun and Moon in opposite houses"),
			Opposed(chart.Sun, chart.Moon)),
		TimedRule(strong("Ekadashi Yoga", TithiYoga, "Born on {{tithi .Tithi}} (tithi {{.Tithi}})"),
			TithiIn(11, 26)),

		// Houses
		ChartRule(Descriptor{
			Name:        "First House Yoga",
			Category:    HouseYoga,
			Level:       Moderate,
			Description: "Planets in 1st house: {{join .Bodies}}",
		}, AnyInHouses(nil, 1)),
		ChartRule(strong("Second House Yoga", HouseYoga, "Jupiter in 2nd house (wealth)"),
			InHouses(chart.Jupiter, 2)),
		ChartRule(strong("Fourth House Yoga", HouseYoga, "Moon in 4th house (happiness)"),
			InHouses(chart.Moon, 4)),
		ChartRule(strong("Fifth House Yoga", HouseYoga, "Jupiter in 5th house (children)"),
			InHouses(chart.Jupiter, 5)),
		ChartRule(strong("Seventh House Yoga", HouseYoga, "Venus in 7th house (marriage)"),
			InHouses(chart.Venus, 7)),
		ChartRule(strong("Ninth House Yoga", HouseYoga, "Jupiter in 9th house (fortune)"),
			InHouses(chart.Jupiter, 9)),
		ChartRule(strong("Tenth House Yoga", HouseYoga, "Saturn in 10th house (career)"),
			InHouses(chart.Saturn, 10)),

		// Planetary pairs
		ChartRule(strong("Sun-Moon {{.Phase}} Yoga", PlanetaryYoga,
			`Sun and Moon in {{if eq .Phase "Conjunction"}}same house{{else}}opposite houses{{end}}`),
			AnyOf(
				Labelled("Conjunction", Conjunct(chart.Sun, chart.Moon)),
				Labelled("Opposition", Opposed(chart.Sun, chart.Moon)),
			)),
		ChartRule(strong("Sun-Jupiter Yoga", PlanetaryYoga, "Friendly Sun and Jupiter in same house"),
			All(Conjunct(chart.Sun, chart.Jupiter), Friendly(chart.Sun, chart.Jupiter))),
		ChartRule(strong("Venus-Jupiter Yoga", PlanetaryYoga, "Venus and Jupiter in same house"),
			Conjunct(chart.Venus, chart.Jupiter)),
		ChartRule(strong("Rahu-Ketu Opposition Yoga", PlanetaryYoga, "Rahu and Ketu in opposite houses"),
			Opposed(chart.Rahu, chart.Ketu)),

		// Special and modern
		ChartRule(Descriptor{
			Name:        "Akhand Samrajya Yoga",
			Category:    SpecialYoga,
			Level:       VeryStrong,
			Description: "All planets in one half of the chart",
		}, OneHalf()),
		ChartRule(strong("Sarvatobhadra Yoga", SpecialYoga, "Planets in kendras: {{join .Bodies}}"),
			CountAtLeast(3, inKendra)),
		ChartRule(strong("Foreign Education Yoga", ModernYoga, "Mercury in 4th and Rahu in 9th house"),
			All(InHouses(chart.Mercury, 4), InHouses(chart.Rahu, 9))),
		ChartRule(strong("Technology Yoga", ModernYoga, "Mercury and Uranus in same house"),
			Conjunct(chart.Mercury, chart.Uranus)),
		ChartRule(strong("Medicine Yoga", ModernYoga, "Mercury and Neptune in same house"),
			Conjunct(chart.Mercury, chart.Neptune)),
		ChartRule(Descriptor{
			Name:        "Multiple Exalted Yoga",
			Category:    StrengthYoga,
			Level:       VeryStrong,
			Description: "{{.Count}} planets exalted",
		}, CountAtLeast(2, exalted)),
		ChartRule(strong("Multiple Own Sign Yoga", StrengthYoga, "{{.Count}} planets in own signs"),
			CountAtLeast(2, func(p chart.BodyPosition) bool { return p.Strength == chart.OwnSign })),

		// Single placements
		ChartRule(strong("Kesari Yoga", RajYoga, "Jupiter in {{ord .House}} house from Lagna (kendra)"),
			InHouses(chart.Jupiter, kendras...)),
		ChartRule(strong("Sankha Yoga", RajYoga, "Venus in {{ord .House}} house from Lagna (kendra)"),
			InHouses(chart.Venus, kendras...)),
		ChartRule(strong("Vasumati Yoga", DhanYoga, "Venus in 2nd house from Lagna"),
			InHouses(chart.Venus, 2)),
		ChartRule(strong("Kubera Yoga", DhanYoga, "Jupiter in 11th house from Lagna"),
			InHouses(chart.Jupiter, 11)),
		ChartRule(strong("Budh-Aditya Yoga", VidyaYoga, "Mercury and Sun in same house"),
			Conjunct(chart.Mercury, chart.Sun)),
		ChartRule(Descriptor{
			Name:        "Guru-Chandal Yoga",
			Category:    SpecialYoga,
			Level:       Mixed,
			Description: "Jupiter and Rahu in same house",
		}, Conjunct(chart.Jupiter, chart.Rahu)),

		// Aspect and strength aware
		ChartRule(strong("Shankh Yoga", DhanYoga, "Venus in 2nd house with Jupiter's aspect"),
			All(InHouses(chart.Venus, 2), AspectedBy(chart.Jupiter, chart.Venus))),
		ChartRule(strong("Parvat Yoga", SpecialYoga, "Moon in 4th house with Mars' aspect"),
			All(InHouses(chart.Moon, 4), AspectedBy(chart.Mars, chart.Moon))),
		ChartRule(strong("Grahan Yoga", SpecialYoga, "Sun-Moon conjunction with Rahu"),
			Eclipsed()),
		ChartRule(Descriptor{
			Name:        "Chandal Yoga",
			Category:    SpecialYoga,
			Level:       Mixed,
			Description: "Jupiter and Rahu in same house",
		}, Conjunct(chart.Jupiter, chart.Rahu)),
		ChartRule(Descriptor{
			Name:        "Kemadruma Yoga",
			Category:    DoshaYoga,
			Level:       Affliction,
			Description: "Moon without planets in adjacent houses",
		}, Unflanked(chart.Moon)),
		ChartRule(Descriptor{
			Name:        "Gajakesari Yoga",
			Category:    RajYoga,
			Level:       VeryStrong,
			Description: "Jupiter and Moon in kendras with 7th aspect",
		}, All(
			InHouses(chart.Jupiter, kendras...),
			InHouses(chart.Moon, kendras...),
			AspectedBy(chart.Jupiter, chart.Moon),
		)),
		ChartRule(Descriptor{
			Name:        "Enhanced Budh-Aditya Yoga",
			Category:    VidyaYoga,
			Description: "Mercury-Sun conjunction (Mercury: {{index .Factors 0}}, Sun: {{index .Factors 1}})",
			Grade:       AnyExalted(VeryStrong, Strong, chart.Mercury, chart.Sun),
		}, WithStrengths(Conjunct(chart.Mercury, chart.Sun))),
		TimedRule(strong("Amrit Siddhi Yoga", SpecialYoga, "Moon in 4th house on Tithi {{.Tithi}}"),
			Timed(InHouses(chart.Moon, 4), TithiIn(1, 6, 11, 16, 21, 26))),
		ChartRule(strong("Parijat Yoga", SpecialYoga, "Venus in 6th house with Cancer navamsha"),
			All(InHouses(chart.Venus, 6), InNavamsha(chart.Venus, chart.Cancer))),
		ChartRule(Descriptor{
			Name:        "Enhanced Vasumati Yoga",
			Category:    DhanYoga,
			Description: "Venus in 2nd house ({{.Strength}})",
			Grade: ByStrength(map[chart.Strength]Level{
				chart.Exalted:     VeryStrong,
				chart.Debilitated: Weak,
			}, Strong),
		}, InHouses(chart.Venus, 2)),
		ChartRule(Descriptor{
			Name:        "Enhanced Rajalakshmi Yoga",
			Category:    DhanYoga,
			Description: "Multiple benefics in wealth houses: {{join .Bodies}}",
			Grade:       StrongBodies(2, VeryStrong, Strong),
		}, CountInHouses(2, Benefics, wealth...)),
		ChartRule(Descriptor{
			Name:        "Enhanced Akhand Samrajya Yoga",
			Category:    SpecialYoga,
			Description: "All planets in {{.Phase}} half with {{.Count}} strong planets",
			Grade:       ByCount(2, VeryStrong, Strong),
		}, OneHalf()),
	}
}
