// Package chemistry implements the saponification math: lye and water
// amounts, fragrance, blended soap properties, fatty acid profiles, and the
// modifier engine. Every function is pure; the calculator only reads from
// the catalog it was built with.
package chemistry

import (
	"fmt"
	"math"
	"strings"

	"saponify/internal/catalog"
)

// LyeKind selects the saponification chemistry.
type LyeKind string

const (
	LyeNaOH LyeKind = "naoh"
	LyeKOH  LyeKind = "koh"
)

// ParseLyeKind normalizes a lye kind string. Blank defaults to NaOH.
func ParseLyeKind(value string) (LyeKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "naoh", "sodium hydroxide":
		return LyeNaOH, nil
	case "koh", "potassium hydroxide":
		return LyeKOH, nil
	default:
		return "", fmt.Errorf("%w: unknown lye kind %q", ErrInvalidParameter, value)
	}
}

// Calculator evaluates recipes against a fixed catalog.
type Calculator struct {
	catalog *catalog.Catalog
}

// New builds a Calculator backed by the given catalog.
func New(c *catalog.Catalog) *Calculator {
	return &Calculator{catalog: c}
}

// TotalWeight sums an oil weight mapping.
func TotalWeight(weights map[string]float64) float64 {
	total := 0.0
	for _, weight := range weights {
		total += weight
	}
	return total
}

// round2 rounds masses to 2 decimals and round1 rounds dimensionless
// property scores to 1 decimal. Rounding happens at the point of
// computation so downstream values build on the reported numbers.
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }

// LyeAmount returns the lye mass in grams required to saponify the given
// oils at the given superfat percentage. Every oil must exist in the
// catalog; an unknown name fails the whole calculation with ErrUnknownOil.
func (c *Calculator) LyeAmount(weights map[string]float64, superfatPercent float64, kind LyeKind) (float64, error) {
	if superfatPercent < 0 || superfatPercent > 100 {
		return 0, fmt.Errorf("%w: superfat percent %.2f outside [0, 100]", ErrInvalidParameter, superfatPercent)
	}

	total := 0.0
	for name, weight := range weights {
		if weight < 0 {
			return 0, fmt.Errorf("%w: negative weight %.2f for %q", ErrInvalidParameter, weight, name)
		}
		oil, ok := c.catalog.Oil(name)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownOil, name)
		}
		sap := oil.SapNaOH
		if kind == LyeKOH {
			sap = oil.SapKOH
		}
		total += weight * sap
	}

	total *= 1 - superfatPercent/100
	return round2(total), nil
}

// WaterAmount returns the water mass for a lye solution at the given
// concentration, derived from concentration = lye / (lye + water).
func (c *Calculator) WaterAmount(lyeWeight, concentrationPercent float64) (float64, error) {
	if concentrationPercent <= 0 || concentrationPercent >= 100 {
		return 0, fmt.Errorf("%w: lye concentration %.2f must be strictly between 0 and 100", ErrInvalidParameter, concentrationPercent)
	}
	if lyeWeight < 0 {
		return 0, fmt.Errorf("%w: negative lye weight %.2f", ErrInvalidParameter, lyeWeight)
	}
	return round2(lyeWeight * (100 - concentrationPercent) / concentrationPercent), nil
}

// Properties returns the weighted-average soap property vector for the
// blend. Oils missing from the catalog are silently excluded; a zero total
// weight yields an empty map.
func (c *Calculator) Properties(weights map[string]float64) map[string]float64 {
	return c.weightedAverage(weights, catalog.PropertyNames, func(oil catalog.Oil) map[string]float64 {
		return oil.Properties
	})
}

// FattyAcids returns the weighted-average fatty acid profile for the blend
// with the same skip-unknown semantics as Properties.
func (c *Calculator) FattyAcids(weights map[string]float64) map[string]float64 {
	return c.weightedAverage(weights, catalog.FattyAcidNames, func(oil catalog.Oil) map[string]float64 {
		return oil.FattyAcids
	})
}

func (c *Calculator) weightedAverage(weights map[string]float64, keys []string, vector func(catalog.Oil) map[string]float64) map[string]float64 {
	total := TotalWeight(weights)
	if total == 0 {
		return map[string]float64{}
	}

	sums := make(map[string]float64, len(keys))
	for name, weight := range weights {
		oil, ok := c.catalog.Oil(name)
		if !ok {
			continue
		}
		share := weight / total
		values := vector(oil)
		for _, key := range keys {
			sums[key] += values[key] * share
		}
	}

	out := make(map[string]float64, len(keys))
	for _, key := range keys {
		out[key] = round1(sums[key])
	}
	return out
}

// FragranceAmount returns the fragrance mass for the batch.
func (c *Calculator) FragranceAmount(totalOilWeight, fragrancePercent float64) (float64, error) {
	if fragrancePercent < 0 {
		return 0, fmt.Errorf("%w: fragrance percent %.2f must not be negative", ErrInvalidParameter, fragrancePercent)
	}
	return round2(totalOilWeight * fragrancePercent / 100), nil
}
