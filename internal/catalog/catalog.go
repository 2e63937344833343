// Package catalog provides the read-only oil, modifier, and colorant
// database together with the allocation profile used by the recipe
// generator. The built-in tables are loaded once at startup and can be
// extended or overridden by a JSON overlay file.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Oil describes a saponifiable fat or oil and its contribution to the
// finished bar. Property and fatty acid values follow the conventional
// soapmaking scales and are expressed per unit weight.
type Oil struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	SapNaOH     float64            `json:"sap_naoh"`
	SapKOH      float64            `json:"sap_koh"`
	PricePerKG  float64            `json:"price_per_kg,omitempty"`
	Properties  map[string]float64 `json:"properties"`
	FattyAcids  map[string]float64 `json:"fatty_acids"`
}

// UsageRateType describes how a modifier amount is interpreted.
type UsageRateType string

const (
	UsagePercentOfOils       UsageRateType = "percent_of_oils"
	UsageTablespoonsPerPound UsageRateType = "tablespoons_per_pound"
	UsageOther               UsageRateType = "other"
)

// Modifier describes a secondary additive such as citric acid or kaolin
// clay. LyeAdjustmentFactor is the extra grams of lye consumed per gram of
// modifier; zero means the additive does not react with the lye. Effects
// holds flat property boosts applied while the modifier is active.
type Modifier struct {
	Name                string             `json:"name"`
	Category            string             `json:"category"`
	Description         string             `json:"description,omitempty"`
	TypicalUsagePercent float64            `json:"typical_usage_percent"`
	MinPercent          float64            `json:"min_percent"`
	MaxPercent          float64            `json:"max_percent"`
	UsageRateType       UsageRateType      `json:"usage_rate_type"`
	LyeAdjustmentFactor float64            `json:"lye_adjustment_factor,omitempty"`
	DissolveIn          string             `json:"dissolve_in,omitempty"`
	Effects             map[string]float64 `json:"effects,omitempty"`
}

// Colorant is a natural colorant suggestion for a target soap color.
type Colorant struct {
	Name  string `json:"name"`
	Usage string `json:"usage"`
	Notes string `json:"notes,omitempty"`
}

// Range is an inclusive [Min, Max] window for a soap property.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Span returns the width of the range.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Normalize maps value into [0, 1] relative to the range. Values outside
// the range extrapolate; callers clamp where needed.
func (r Range) Normalize(value float64) float64 {
	if r.Span() == 0 {
		return 0
	}
	return (value - r.Min) / r.Span()
}

// Catalog is the immutable ingredient database handed to the calculator
// and the allocator. It is safe for concurrent reads.
type Catalog struct {
	oils       map[string]Oil
	modifiers  map[string]Modifier
	colorants  map[string][]Colorant
	ranges     map[string]Range
	allocation AllocationProfile
}

// Builtin returns a catalog backed only by the built-in tables.
func Builtin() *Catalog {
	c := &Catalog{
		oils:       make(map[string]Oil, len(builtinOils)),
		modifiers:  make(map[string]Modifier, len(builtinModifiers)),
		colorants:  make(map[string][]Colorant, len(builtinColorants)),
		ranges:     make(map[string]Range, len(recommendedRanges)),
		allocation: defaultAllocation,
	}
	for _, oil := range builtinOils {
		c.oils[oil.Name] = oil
	}
	for _, modifier := range builtinModifiers {
		c.modifiers[modifier.Name] = modifier
	}
	for color, entries := range builtinColorants {
		c.colorants[color] = append([]Colorant(nil), entries...)
	}
	for prop, r := range recommendedRanges {
		c.ranges[prop] = r
	}
	return c
}

// overlay is the on-disk shape accepted by Load. Every section is optional;
// entries replace built-ins with the same name.
type overlay struct {
	Oils      []Oil                 `json:"oils"`
	Modifiers []Modifier            `json:"modifiers"`
	Colorants map[string][]Colorant `json:"colorants"`
}

// Load builds the catalog from the built-in tables, merging the JSON overlay
// at path when one is configured. A blank path loads the built-ins only.
func Load(path string) (*Catalog, error) {
	c := Builtin()
	if strings.TrimSpace(path) == "" {
		return c, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog overlay: %w", err)
	}

	var ov overlay
	if err := json.Unmarshal(raw, &ov); err != nil {
		return nil, fmt.Errorf("decode catalog overlay: %w", err)
	}

	for _, oil := range ov.Oils {
		if strings.TrimSpace(oil.Name) == "" {
			return nil, fmt.Errorf("catalog overlay contains an oil without a name")
		}
		c.oils[oil.Name] = oil
	}
	for _, modifier := range ov.Modifiers {
		if strings.TrimSpace(modifier.Name) == "" {
			return nil, fmt.Errorf("catalog overlay contains a modifier without a name")
		}
		if modifier.UsageRateType == "" {
			modifier.UsageRateType = UsagePercentOfOils
		}
		c.modifiers[modifier.Name] = modifier
	}
	for color, entries := range ov.Colorants {
		c.colorants[strings.ToLower(color)] = append([]Colorant(nil), entries...)
	}

	return c, nil
}

// Oil looks up an oil by name.
func (c *Catalog) Oil(name string) (Oil, bool) {
	oil, ok := c.oils[name]
	return oil, ok
}

// Modifier looks up a modifier by name.
func (c *Catalog) Modifier(name string) (Modifier, bool) {
	modifier, ok := c.modifiers[name]
	return modifier, ok
}

// OilNames returns every oil name in sorted order.
func (c *Catalog) OilNames() []string {
	names := make([]string, 0, len(c.oils))
	for name := range c.oils {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ModifierNames returns every modifier name in sorted order.
func (c *Catalog) ModifierNames() []string {
	names := make([]string, 0, len(c.modifiers))
	for name := range c.modifiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Colorants returns the suggestions for a target color. Matching is
// case-insensitive; an unknown color returns an empty slice.
func (c *Catalog) Colorants(color string) []Colorant {
	return append([]Colorant(nil), c.colorants[strings.ToLower(strings.TrimSpace(color))]...)
}

// ColorNames returns the known target colors in sorted order.
func (c *Catalog) ColorNames() []string {
	names := make([]string, 0, len(c.colorants))
	for name := range c.colorants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RecommendedRange returns the recommended window for a property.
func (c *Catalog) RecommendedRange(property string) (Range, bool) {
	r, ok := c.ranges[property]
	return r, ok
}

// Ranges returns a copy of the recommended property windows.
func (c *Catalog) Ranges() map[string]Range {
	out := make(map[string]Range, len(c.ranges))
	for prop, r := range c.ranges {
		out[prop] = r
	}
	return out
}

// Allocation returns the allocation profile consumed by the generator.
func (c *Catalog) Allocation() AllocationProfile {
	return c.allocation
}
