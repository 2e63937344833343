// Package report renders an evaluated recipe as a plain-text batch sheet:
// the ingredient table, the lye solution breakdown, property scores against
// their recommended ranges, suggested modifiers for out-of-range properties,
// optional colorant suggestions, and the fatty acid profile.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"saponify/internal/catalog"
	"saponify/models"
)

const gramsPerPound = 453.592

// Recommendation is one suggested modifier with a computed dose.
type Recommendation struct {
	Modifier string  `json:"modifier"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	ExtraLye float64 `json:"extra_lye,omitempty"`
	Reason   string  `json:"reason"`
}

// Options tune optional report sections.
type Options struct {
	// TargetColor, when set, appends colorant suggestions for that color.
	TargetColor string
}

// Build renders the batch sheet for an already evaluated recipe. It never
// recomputes chemistry; callers run chemistry.Evaluate first.
func Build(cat *catalog.Catalog, recipe *models.Recipe, opts Options) string {
	var b strings.Builder
	rule := strings.Repeat("=", 50)
	thin := strings.Repeat("-", 50)

	fmt.Fprintf(&b, "%s\nSOAP RECIPE: %s\n%s\n\n", rule, recipe.Name, rule)

	total := recipe.TotalOilWeight()
	fmt.Fprintf(&b, "OILS:\n%s\n", thin)
	for _, name := range sortedKeys(recipe.Oils) {
		weight := recipe.Oils[name]
		pct := 0.0
		if total > 0 {
			pct = weight / total * 100
		}
		fmt.Fprintf(&b, "%-30s %9.2f g (%5.1f%%)\n", name, weight, pct)
	}
	fmt.Fprintf(&b, "%-30s %9.2f g\n\n", "Total Oils", total)

	lyeLabel := "Sodium Hydroxide (NaOH)"
	if recipe.LyeType == "koh" {
		lyeLabel = "Potassium Hydroxide (KOH)"
	}
	fmt.Fprintf(&b, "LYE SOLUTION:\n%s\n", thin)
	fmt.Fprintf(&b, "%-30s %9.2f g\n", lyeLabel, recipe.LyeAmount)
	if recipe.LyeAdjustment > 0 {
		fmt.Fprintf(&b, "%-30s %9.2f g\n", "  + extra for modifiers", recipe.LyeAdjustment)
		fmt.Fprintf(&b, "%-30s %9.2f g\n", "  = total lye", recipe.TotalLye())
	}
	fmt.Fprintf(&b, "%-30s %9.2f g\n", "Water", recipe.WaterAmount)
	fmt.Fprintf(&b, "%-30s %8.1f %%\n", "Lye Concentration", recipe.LyeConcentration)
	fmt.Fprintf(&b, "%-30s %8.1f %%\n\n", "Superfat", recipe.SuperfatPercent)

	fmt.Fprintf(&b, "ADDITIVES:\n%s\n", thin)
	fmt.Fprintf(&b, "%-30s %9.2f g\n", "Fragrance/Essential Oil", recipe.FragranceAmount)
	if len(recipe.Modifiers) > 0 {
		b.WriteString("\nModifiers:\n")
		for _, name := range sortedKeys(recipe.Modifiers) {
			fmt.Fprintf(&b, "  %-28s %9.2f %s\n", name, recipe.Modifiers[name], modifierUnit(cat, name))
		}
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "SOAP PROPERTIES:\n%s\n", thin)
	for _, prop := range catalog.PropertyNames {
		value := recipe.Properties[prop]
		line := fmt.Sprintf("%-30s %8.1f", title(prop), value)
		if r, ok := cat.RecommendedRange(prop); ok {
			marker := "ok"
			if value < r.Min {
				marker = "low"
			} else if value > r.Max {
				marker = "high"
			}
			line += fmt.Sprintf("   [%g-%g] %s", r.Min, r.Max, marker)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	if recs := Recommendations(cat, recipe); len(recs) > 0 {
		fmt.Fprintf(&b, "SUGGESTED MODIFIERS:\n%s\n", rule)
		for _, rec := range recs {
			fmt.Fprintf(&b, "* %s: %.1f %s", strings.ToUpper(rec.Modifier), rec.Amount, rec.Unit)
			if rec.ExtraLye > 0 {
				fmt.Fprintf(&b, " + %.1f g extra lye", rec.ExtraLye)
			}
			fmt.Fprintf(&b, " - %s\n", rec.Reason)
		}
		b.WriteString("\n")
	}

	if opts.TargetColor != "" {
		fmt.Fprintf(&b, "NATURAL COLORANTS (%s):\n%s\n", opts.TargetColor, thin)
		colorants := cat.Colorants(opts.TargetColor)
		if len(colorants) == 0 {
			b.WriteString("No colorants on file for this color.\n")
		}
		for _, col := range colorants {
			fmt.Fprintf(&b, "* %s (%s): %s\n", col.Name, col.Usage, col.Notes)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "FATTY ACID PROFILE:\n%s\n", thin)
	for _, acid := range catalog.FattyAcidNames {
		if value, ok := recipe.FattyAcids[acid]; ok {
			fmt.Fprintf(&b, "%-30s %7.1f %%\n", title(acid), value)
		}
	}

	return b.String()
}

// Recommendations inspects the evaluated property scores and suggests
// modifiers with doses scaled to the batch. Thresholds target the soft edges
// of the recommended ranges rather than their hard bounds.
func Recommendations(cat *catalog.Catalog, recipe *models.Recipe) []Recommendation {
	total := recipe.TotalOilWeight()
	if total <= 0 {
		return nil
	}
	pounds := total / gramsPerPound
	props := recipe.Properties

	var recs []Recommendation
	add := func(modifier string, amount float64, unit, reason string, extraLye float64) {
		if _, ok := recipe.Modifiers[modifier]; ok {
			return
		}
		recs = append(recs, Recommendation{
			Modifier: modifier,
			Amount:   round1(amount),
			Unit:     unit,
			ExtraLye: round1(extraLye),
			Reason:   reason,
		})
	}

	if props[catalog.Hardness] < 35 {
		add("Sodium Lactate", total*0.02, "g", "adds hardness, faster unmolding", 0)
	}
	if props[catalog.Bubbly] < 20 {
		add("Sugar", total*0.02, "g", "boosts bubble production", 0)
	} else if props[catalog.Creamy] < 20 {
		add("Sugar", total*0.02, "g", "increases creamy lather", 0)
	}
	if props[catalog.Conditioning] < 50 {
		add("Colloidal Oatmeal", pounds, "tbsp", "soothing, gentle exfoliation", 0)
		add("Kaolin Clay", pounds, "tbsp", "silky feel and slip", 0)
	}
	if props[catalog.Iodine] > 65 {
		add("Vitamin E Oil", pounds, "tsp", "slows rancidity in high-iodine recipes", 0)
	}
	if props[catalog.Cleansing] > 18 {
		add("Bentonite Clay", pounds, "tbsp", "suits oily skin", 0)
	}

	// Always worth considering: chelation and, once hardness is fine, faster
	// unmolding.
	citric := total * 0.01
	add("Citric Acid", citric, "g", "chelating, extends shelf life", citric*0.6)
	if props[catalog.Hardness] >= 35 {
		add("Sodium Lactate", total*0.02, "g", "faster unmolding", 0)
	}
	add("Tussah Silk Fibers", pounds, "tsp", "silky luxurious feel", 0)

	return recs
}

func modifierUnit(cat *catalog.Catalog, name string) string {
	mod, ok := cat.Modifier(name)
	if !ok {
		return "g"
	}
	switch mod.UsageRateType {
	case catalog.UsageTablespoonsPerPound:
		return "tbsp"
	case catalog.UsagePercentOfOils:
		return "g"
	default:
		return ""
	}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
