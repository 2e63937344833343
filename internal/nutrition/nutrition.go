// Package nutrition aggregates nutrient vectors from weighted food mixtures
// and grades the result against daily intake bands. It is the meal-planning
// counterpart of the soap property aggregation: the same skip-unknown
// weighted sum over a static database, with a compliance report on top.
package nutrition

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"saponify/internal/chemistry"
)

// Ingredient is one meal component: a food name, an amount, and its unit.
// Unit defaults to grams when empty.
type Ingredient struct {
	Food   string  `json:"food"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit,omitempty"`
}

// Status grades one nutrient against its requirement band.
type Status struct {
	Nutrient        string  `json:"nutrient"`
	Actual          float64 `json:"actual"`
	Optimal         float64 `json:"optimal"`
	Min             float64 `json:"min"`
	Max             float64 `json:"max"`
	PercentOfTarget float64 `json:"percent_of_target"`
	Status          string  `json:"status"`
}

// Analysis is the full compliance report for one day of eating.
type Analysis struct {
	Compliant         []Status `json:"compliant"`
	Deficient         []Status `json:"deficient"`
	Excessive         []Status `json:"excessive"`
	CompliancePercent float64  `json:"compliance_percent"`
}

// Suggestion names a food that covers a nutrient gap and how much of it
// would close the gap entirely.
type Suggestion struct {
	Food        string  `json:"food"`
	Per100G     float64 `json:"per_100g"`
	GramsNeeded float64 `json:"grams_needed"`
}

const (
	statusOptimal   = "optimal"
	statusDeficient = "deficient"
	statusExcessive = "excessive"
)

var gramsPerUnit = map[string]float64{
	"g":    1,
	"kg":   1000,
	"oz":   28.35,
	"lb":   453.59,
	"ml":   1,
	"l":    1000,
	"tbsp": 15,
	"tsp":  5,
	"cup":  240,
}

// ToGrams converts an amount in the given unit to grams. An empty unit means
// grams. Unknown units are an error rather than a silent passthrough.
func ToGrams(amount float64, unit string) (float64, error) {
	if unit == "" {
		return amount, nil
	}
	factor, ok := gramsPerUnit[strings.ToLower(unit)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", chemistry.ErrInvalidParameter, unit)
	}
	return amount * factor, nil
}

// Calculator aggregates and grades nutrients against the built-in food
// database and requirement tables.
type Calculator struct {
	foods        map[string]Food
	requirements map[string]map[string]Requirement
}

// New builds a Calculator over the built-in tables.
func New() *Calculator {
	return &Calculator{foods: builtinFoods, requirements: builtinRequirements}
}

// Food looks up a food by name.
func (c *Calculator) Food(name string) (Food, bool) {
	f, ok := c.foods[name]
	return f, ok
}

// FoodNames returns the database's food names in sorted order.
func (c *Calculator) FoodNames() []string {
	names := make([]string, 0, len(c.foods))
	for name := range c.foods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Demographics returns the requirement table labels in sorted order.
func (c *Calculator) Demographics() []string {
	labels := make([]string, 0, len(c.requirements))
	for label := range c.requirements {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// MealNutrients sums the nutrient vectors of the ingredients, scaled by
// amount. Foods missing from the database are skipped, like unknown oils in
// the property aggregation. Unknown units fail the whole call.
func (c *Calculator) MealNutrients(ingredients []Ingredient) (map[string]float64, error) {
	totals := make(map[string]float64)
	for _, ing := range ingredients {
		food, ok := c.foods[ing.Food]
		if !ok {
			continue
		}
		grams, err := ToGrams(ing.Amount, ing.Unit)
		if err != nil {
			return nil, err
		}
		if grams <= 0 || food.ServingGrams <= 0 {
			continue
		}
		scale := grams / food.ServingGrams
		for key, value := range food.Nutrients {
			totals[key] += value * scale
		}
	}
	for key, value := range totals {
		totals[key] = round2(value)
	}
	return totals, nil
}

// AnalyzeCompliance grades daily nutrient totals against the requirement
// table for the demographic. An empty demographic uses DefaultDemographic;
// an unknown one is ErrInvalidParameter.
func (c *Calculator) AnalyzeCompliance(daily map[string]float64, demographic string) (Analysis, error) {
	if demographic == "" {
		demographic = DefaultDemographic
	}
	reqs, ok := c.requirements[demographic]
	if !ok {
		return Analysis{}, fmt.Errorf("%w: unknown demographic %q", chemistry.ErrInvalidParameter, demographic)
	}

	nutrients := make([]string, 0, len(reqs))
	for nutrient := range reqs {
		nutrients = append(nutrients, nutrient)
	}
	sort.Strings(nutrients)

	var analysis Analysis
	for _, nutrient := range nutrients {
		req := reqs[nutrient]
		min, max := req.bounds()
		actual := daily[nutrient]

		percent := 0.0
		if req.Optimal > 0 {
			percent = round1(actual / req.Optimal * 100)
		}
		status := Status{
			Nutrient:        nutrient,
			Actual:          round2(actual),
			Optimal:         req.Optimal,
			Min:             min,
			Max:             max,
			PercentOfTarget: percent,
		}

		switch {
		case actual < min:
			status.Status = statusDeficient
			analysis.Deficient = append(analysis.Deficient, status)
		case actual > max:
			status.Status = statusExcessive
			analysis.Excessive = append(analysis.Excessive, status)
		default:
			status.Status = statusOptimal
			analysis.Compliant = append(analysis.Compliant, status)
		}
	}

	total := len(nutrients)
	if total > 0 {
		analysis.CompliancePercent = round1(float64(len(analysis.Compliant)) / float64(total) * 100)
	}
	return analysis, nil
}

// SuggestFoods ranks database foods by how much of the nutrient they carry
// per 100 g, returning up to limit suggestions with the grams needed to
// cover amountNeeded. Foods with none of the nutrient are excluded.
func (c *Calculator) SuggestFoods(nutrient string, amountNeeded float64, limit int) []Suggestion {
	if amountNeeded <= 0 || limit <= 0 {
		return nil
	}

	var suggestions []Suggestion
	for _, food := range c.foods {
		if food.ServingGrams <= 0 {
			continue
		}
		per100 := food.Nutrients[nutrient] / food.ServingGrams * 100
		if per100 <= 0 {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Food:        food.Name,
			Per100G:     round2(per100),
			GramsNeeded: round1(amountNeeded / per100 * 100),
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Per100G != suggestions[j].Per100G {
			return suggestions[i].Per100G > suggestions[j].Per100G
		}
		return suggestions[i].Food < suggestions[j].Food
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
