// Package costing estimates raw-material cost for a batch. Money math uses
// shopspring/decimal so line items and totals stay exact to the cent.
package costing

import (
	"sort"

	"github.com/shopspring/decimal"

	"saponify/internal/catalog"
)

var gramsPerKilogram = decimal.NewFromInt(1000)

// LineItem is the cost contribution of a single oil.
type LineItem struct {
	Oil        string          `json:"oil"`
	Grams      float64         `json:"grams"`
	PricePerKG decimal.Decimal `json:"price_per_kg"`
	Cost       decimal.Decimal `json:"cost"`
}

// Estimate is the per-oil cost breakdown for a batch.
type Estimate struct {
	Lines []LineItem      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// ForBlend prices an oil-weight mapping against the catalog. Oils missing
// from the catalog, or without a configured price, are skipped the same way
// the property aggregation skips unknown oils. Line costs are rounded to
// cents before summing, matching how a supplier invoice would add up.
func ForBlend(cat *catalog.Catalog, weights map[string]float64) Estimate {
	names := make([]string, 0, len(weights))
	for name := range weights {
		names = append(names, name)
	}
	sort.Strings(names)

	estimate := Estimate{Total: decimal.Zero}
	for _, name := range names {
		oil, ok := cat.Oil(name)
		if !ok || oil.PricePerKG <= 0 {
			continue
		}
		grams := weights[name]
		if grams <= 0 {
			continue
		}

		price := decimal.NewFromFloat(oil.PricePerKG)
		cost := decimal.NewFromFloat(grams).Mul(price).Div(gramsPerKilogram).Round(2)
		estimate.Lines = append(estimate.Lines, LineItem{
			Oil:        name,
			Grams:      grams,
			PricePerKG: price,
			Cost:       cost,
		})
		estimate.Total = estimate.Total.Add(cost)
	}
	return estimate
}
