package rules

import (
	"sync"

	"github.com/phrazzld/kundli-api/internal/domain/chart"
)

var (
	doshasOnce sync.Once
	doshas     *Catalogue
)

// Doshas returns the affliction catalogue. It is built once and shared.
func Doshas() *Catalogue {
	doshasOnce.Do(func() {
		doshas = NewCatalogue("doshas", doshaRules()...)
	})
	return doshas
}

// nodeSeverity grades planetary afflictions that are worst in the 1st,
// 7th and 8th houses.
var nodeSeverity = ByHouse(map[int]Level{1: Severe, 7: Severe, 8: Severe}, Moderate)

func doshaRules() []Rule {
	return []Rule{
		// Major
		ChartRule(Descriptor{
			Name:        "Mangal Dosha (Kuja Dosha)",
			Category:    MajorDosha,
			Description: "Mars in {{ord .House}} house from Lagna",
			Effects:     "Marriage delays, relationship issues, anger problems",
			Remedies:    "Wear red coral, perform Mangal puja, fast on Tuesdays",
			Grade: ByHouse(map[int]Level{
				1: Severe, 7: Severe,
				2: Moderate, 8: Moderate, 12: Moderate,
			}, Mild),
		}, InHouses(chart.Mars, 1, 2, 4, 7, 8, 12)),
		ChartRule(Descriptor{
			Name:        "Kaal Sarp Dosha",
			Category:    MajorDosha,
			Level:       Severe,
			Description: "All planets between Rahu and Ketu",
			Effects:     "Obstacles in life, delays, health issues, financial problems",
			Remedies:    "Wear snake ring, perform Kaal Sarp puja, donate to temples",
		}, HemmedByNodes()),
		ChartRule(Descriptor{
			Name:        "Guru Chandal Dosha",
			Category:    MajorDosha,
			Level:       Moderate,
			Description: "Jupiter and Rahu in same house",
			Effects:     "Confusion in decisions, religious conflicts, education issues",
			Remedies:    "Wear yellow sapphire, perform Jupiter puja, study religious texts",
		}, Conjunct(chart.Jupiter, chart.Rahu)),
		ChartRule(Descriptor{
			Name:        "Sade Sati",
			Category:    MajorDosha,
			Level:       Moderate,
			Description: "Saturn in {{.Phase}} over Moon sign",
			Effects:     "7.5 years of challenges, health issues, career obstacles",
			Remedies:    "Wear blue sapphire, perform Saturn puja, donate black items",
		}, SaturnOverMoon()),
		ChartRule(Descriptor{
			Name:        "Pitra Dosha",
			Category:    AncestralDosha,
			Level:       Moderate,
			Description: "Malefic planets in 9th house (father's house)",
			Effects:     "Ancestral curses, father-related issues, property disputes",
			Remedies:    "Perform Pitra puja, donate to Brahmins, visit holy places",
		}, AnyInHouses(Malefics, 9)),
		ChartRule(Descriptor{
			Name:        "Shrapit Dosha",
			Category:    CurseDosha,
			Level:       Severe,
			Description: "Rahu in {{ord .House}} house (house of enemies/death)",
			Effects:     "Curses, black magic effects, enemies, legal issues",
			Remedies:    "Perform Rahu puja, wear hessonite garnet, visit temples",
		}, InHouses(chart.Rahu, 6, 8, 12)),

		// Compatibility
		TimedRule(Descriptor{
			Name:        "Nadi Dosha",
			Category:    CompatibilityDosha,
			Level:       Moderate,
			Description: "Moon in {{nakshatra .Nakshatra}} nakshatra ruled by {{.Body}}",
			Effects:     "Marriage compatibility issues, health problems",
			Remedies:    "Perform nakshatra puja, wear appropriate gemstones",
		}, NakshatraLordIn(chart.Rahu, chart.Ketu)),
		ChartRule(Descriptor{
			Name:        "Gana Dosha",
			Category:    CompatibilityDosha,
			Level:       Mild,
			Description: "Moon in {{(index .Signs 0).Western}}, Rakshasa gana (aggressive temperament)",
			Effects:     "Temperament conflicts, relationship issues",
			Remedies:    "Practice meditation, perform moon puja",
		}, InSigns(chart.Moon, chart.Gemini, chart.Libra, chart.Aquarius)),
		ChartRule(Descriptor{
			Name:        "Bhakoot Dosha",
			Category:    CompatibilityDosha,
			Level:       Moderate,
			Description: "Moon in {{(index .Signs 0).Western}} incompatible with {{(index .Signs 1).Western}}",
			Effects:     "Marriage compatibility issues, relationship problems",
			Remedies:    "Perform compatibility puja, wear moon stone",
		}, OpposedSignPair(chart.Moon, chart.Aries, chart.Taurus, chart.Gemini, chart.Cancer, chart.Leo, chart.Virgo)),

		// Family and ancestral
		ChartRule(Descriptor{
			Name:        "Matri Dosha",
			Category:    FamilyDosha,
			Level:       Moderate,
			Description: "Malefic planets in 4th house (mother's house)",
			Effects:     "Mother-related issues, property problems, emotional instability",
			Remedies:    "Perform mother puja, donate to women, visit mother's temple",
		}, AnyInHouses(Malefics, 4)),
		ChartRule(Descriptor{
			Name:        "Enhanced Pitra Dosha",
			Category:    AncestralDosha,
			Description: `Multiple factors: {{range $i, $f := .Factors}}{{if $i}}, {{end}}{{$f}}{{end}}`,
			Effects:     "Ancestral curses, father issues, property disputes, legal problems",
			Remedies:    "Perform Pitra puja, donate to Brahmins, visit holy places, wear ruby",
			Grade:       ByCount(2, Severe, Moderate),
		}, Factors(
			Factor{Label: "Malefic in 9th house", Match: AnyInHouses(nil, 9)},
			Factor{Label: "Weak Sun", Match: WithStrength(chart.Sun, chart.Debilitated)},
			Factor{Label: "Saturn aspects 9th house", Match: InHouses(chart.Saturn, 3)},
		)),
		ChartRule(Descriptor{
			Name:        "Pret Dosha",
			Category:    SpiritualDosha,
			Level:       Severe,
			Description: "Malefic planets in 8th/12th houses (death/ghost houses)",
			Effects:     "Spirit possession, nightmares, fear, mental health issues",
			Remedies:    "Perform Pret puja, visit temples, wear protective gemstones",
		}, AnyInHouses(Malefics, 8, 12)),
		ChartRule(Descriptor{
			Name:        "Tara Dosha",
			Category:    StarDosha,
			Level:       Moderate,
			Description: "Malefic planets in 6th, 8th, or 12th houses",
			Effects:     "Health issues, enemies, obstacles, delays",
			Remedies:    "Perform Tara puja, wear appropriate gemstones, visit temples",
		}, AnyInHouses(nil, 6, 8, 12)),
		ChartRule(Descriptor{
			Name:        "Mrityu Dosha",
			Category:    DeathDosha,
			Level:       Severe,
			Description: "Malefic planets in 8th house (house of death)",
			Effects:     "Health issues, accidents, life-threatening situations",
			Remedies:    "Perform Mrityu puja, wear protective gemstones, visit temples",
		}, AnyInHouses(nil, 8)),
		ChartRule(Descriptor{
			Name:        "Kalatra Dosha",
			Category:    MarriageDosha,
			Level:       Moderate,
			Description: "Malefic planets in 7th house (spouse's house)",
			Effects:     "Marriage problems, spouse issues, relationship conflicts",
			Remedies:    "Perform marriage puja, wear diamond, visit Venus temple",
		}, AnyInHouses(Malefics, 7)),

		// Planetary
		ChartRule(Descriptor{
			Name:        "Saturn Dosha",
			Category:    PlanetaryDosha,
			Description: "Saturn in {{ord .House}} house ({{.Strength}})",
			Effects:     "Delays, obstacles, health issues, career problems",
			Remedies:    "Wear blue sapphire, perform Saturn puja, donate black items",
			Grade:       nodeSeverity,
		}, AnyOf(InHouses(chart.Saturn, 1, 2, 4, 7, 8, 12), WithStrength(chart.Saturn, chart.Debilitated))),
		ChartRule(Descriptor{
			Name:        "Rahu Dosha",
			Category:    PlanetaryDosha,
			Description: "Rahu in {{ord .House}} house",
			Effects:     "Confusion, illusions, foreign issues, mental problems",
			Remedies:    "Wear hessonite garnet, perform Rahu puja, visit temples",
			Grade:       nodeSeverity,
		}, InHouses(chart.Rahu, 1, 2, 4, 7, 8, 9, 12)),
		ChartRule(Descriptor{
			Name:        "Ketu Dosha",
			Category:    PlanetaryDosha,
			Description: "Ketu in {{ord .House}} house",
			Effects:     "Detachment, confusion, spiritual issues, health problems",
			Remedies:    "Wear cat's eye, perform Ketu puja, practice meditation",
			Grade:       nodeSeverity,
		}, InHouses(chart.Ketu, 1, 2, 4, 7, 8, 9, 12)),
		ChartRule(Descriptor{
			Name:        "Sun Dosha",
			Category:    PlanetaryDosha,
			Level:       Moderate,
			Description: "Sun in {{ord .House}} house ({{.Strength}})",
			Effects:     "Father issues, authority problems, eye problems",
			Remedies:    "Wear ruby, perform Sun puja, donate red items",
		}, AnyOf(InHouses(chart.Sun, 6, 8, 12), WithStrength(chart.Sun, chart.Debilitated))),
		ChartRule(Descriptor{
			Name:        "Mars Dosha",
			Category:    PlanetaryDosha,
			Level:       Moderate,
			Description: "Mars in {{ord .House}} house ({{.Strength}})",
			Effects:     "Anger issues, blood problems, accidents, conflicts",
			Remedies:    "Wear red coral, perform Mars puja, donate red items",
		}, AnyOf(InHouses(chart.Mars, 4, 6, 8, 12), WithStrength(chart.Mars, chart.Debilitated))),
		ChartRule(Descriptor{
			Name:        "Mercury Dosha",
			Category:    PlanetaryDosha,
			Level:       Moderate,
			Description: "Mercury in {{ord .House}} house ({{.Strength}})",
			Effects:     "Communication issues, nervous problems, skin issues",
			Remedies:    "Wear emerald, perform Mercury puja, donate green items",
		}, AnyOf(InHouses(chart.Mercury, 6, 8, 12), WithStrength(chart.Mercury, chart.Debilitated))),

		// House
		ChartRule(Descriptor{
			Name:        "8th House Dosha",
			Category:    HouseDosha,
			Level:       Severe,
			Description: "Planets in 8th house (house of death and obstacles)",
			Effects:     "Health issues, accidents, obstacles, delays",
			Remedies:    "Perform 8th house puja, wear protective gemstones",
		}, AnyInHouses(nil, 8)),
		ChartRule(Descriptor{
			Name:        "12th House Dosha",
			Category:    HouseDosha,
			Level:       Moderate,
			Description: "Planets in 12th house (house of losses)",
			Effects:     "Financial losses, expenses, foreign issues",
			Remedies:    "Perform 12th house puja, donate to charity",
		}, AnyInHouses(nil, 12)),
		ChartRule(Descriptor{
			Name:        "6th House Dosha",
			Category:    HouseDosha,
			Level:       Moderate,
			Description: "Planets in 6th house (house of enemies)",
			Effects:     "Enemies, health issues, legal problems",
			Remedies:    "Perform 6th house puja, wear protective gemstones",
		}, AnyInHouses(nil, 6)),

		// Special
		ChartRule(Descriptor{
			Name:        "Sarpa Dosha",
			Category:    SpecialDosha,
			Level:       Moderate,
			Description: "Rahu/Ketu in difficult houses",
			Effects:     "Snake-related fears, illusions, confusion",
			Remedies:    "Perform Sarpa puja, wear snake ring, visit temples",
		}, All(
			func(ch *chart.Chart) (Hit, bool) { return Hit{}, ch.Has(chart.Rahu, chart.Ketu) },
			FirstInHouses([]chart.Body{chart.Rahu, chart.Ketu}, 1, 4, 7, 8, 12),
		)),
		ChartRule(Descriptor{
			Name:        "Grahan Dosha",
			Category:    SpecialDosha,
			Level:       Severe,
			Description: "Sun-Moon conjunction with Rahu (eclipse)",
			Effects:     "Eclipse effects, confusion, health issues",
			Remedies:    "Perform Grahan puja, wear protective gemstones",
		}, Eclipsed()),
		ChartRule(Descriptor{
			Name:        "Kemadruma Dosha",
			Category:    SpecialDosha,
			Level:       Moderate,
			Description: "Moon without planets in adjacent houses",
			Effects:     "Mental instability, emotional issues, loneliness",
			Remedies:    "Perform Moon puja, wear pearl, practice meditation",
		}, Unflanked(chart.Moon)),
		ChartRule(Descriptor{
			Name:        "Angarak Dosha",
			Category:    SpecialDosha,
			Level:       Severe,
			Description: "Mars and Rahu in {{ord .House}} house",
			Effects:     "Anger, accidents, impulsive decisions, conflicts with siblings",
			Remedies:    "Perform Angarak shanti puja, recite Hanuman Chalisa, donate red lentils on Tuesdays",
		}, Conjunct(chart.Mars, chart.Rahu)),

		// Modern
		ChartRule(Descriptor{
			Name:        "Career Dosha",
			Category:    ModernDosha,
			Level:       Moderate,
			Description: "{{.Body}} in 10th house (career house)",
			Effects:     "Career obstacles, job issues, professional problems",
			Remedies:    "Perform career puja, wear appropriate gemstones",
		}, FirstInHouses(Malefics, 10)),
		ChartRule(Descriptor{
			Name:        "Health Dosha",
			Category:    ModernDosha,
			Level:       Moderate,
			Description: "Malefic planets in health houses (6th/8th)",
			Effects:     "Health issues, diseases, medical problems",
			Remedies:    "Perform health puja, wear protective gemstones, exercise",
		}, AnyInHouses(nil, 6, 8)),
		ChartRule(Descriptor{
			Name:        "Wealth Dosha",
			Category:    ModernDosha,
			Level:       Moderate,
			Description: "Malefic planets in wealth houses (2nd/11th)",
			Effects:     "Financial problems, wealth issues, money problems",
			Remedies:    "Perform wealth puja, wear yellow sapphire, donate to charity",
		}, AnyInHouses(nil, 2, 11)),
		ChartRule(Descriptor{
			Name:        "Education Dosha",
			Category:    ModernDosha,
			Level:       Moderate,
			Description: "Malefic planets in education houses (4th/5th)",
			Effects:     "Education problems, learning difficulties, academic issues",
			Remedies:    "Perform education puja, wear emerald, study regularly",
		}, AnyInHouses(nil, 4, 5)),
		ChartRule(Descriptor{
			Name:        "Travel Dosha",
			Category:    ModernDosha,
			Level:       Mild,
			Description: "Malefic planets in 12th house (travel house)",
			Effects:     "Travel problems, foreign issues, immigration problems",
			Remedies:    "Perform travel puja, wear appropriate gemstones",
		}, AnyInHouses(nil, 12)),
		ChartRule(Descriptor{
			Name:        "Legal Dosha",
			Category:    ModernDosha,
			Level:       Moderate,
			Description: "Malefic planets in 6th house (legal house)",
			Effects:     "Legal problems, court cases, disputes",
			Remedies:    "Perform legal puja, wear protective gemstones, consult lawyers",
		}, AnyInHouses(nil, 6)),
	}
}
