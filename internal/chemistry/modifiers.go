package chemistry

import "saponify/internal/catalog"

// referenceOilMass is assumed when a modifier is activated before any oils
// have been weighed out.
const referenceOilMass = 1000.0

// LyeAdjustment returns the extra lye in grams consumed by the active
// modifiers. Modifiers without an adjustment factor, and names missing from
// the catalog, contribute nothing.
func (c *Calculator) LyeAdjustment(modifierAmounts map[string]float64) float64 {
	total := 0.0
	for name, amount := range modifierAmounts {
		modifier, ok := c.catalog.Modifier(name)
		if !ok || modifier.LyeAdjustmentFactor == 0 {
			continue
		}
		total += amount * modifier.LyeAdjustmentFactor
	}
	return round2(total)
}

// ModifierAmount returns the recommended amount for a modifier. For
// percent-of-oils modifiers the result is grams; for other rate types the
// raw usage value is returned unconverted and the caller interprets the
// unit. usagePercent overrides the modifier's typical usage when non-nil.
// An unknown modifier yields zero.
func (c *Calculator) ModifierAmount(name string, totalOilWeight float64, usagePercent *float64) float64 {
	modifier, ok := c.catalog.Modifier(name)
	if !ok {
		return 0
	}

	percent := modifier.TypicalUsagePercent
	if usagePercent != nil {
		percent = *usagePercent
	}

	if modifier.UsageRateType == catalog.UsagePercentOfOils {
		return round2(totalOilWeight * percent / 100)
	}
	return percent
}

// ApplyModifierEffects adds each active modifier's flat property boosts to
// the base property vector. Boosts are per presence, not scaled by amount;
// a modifier counts as active while its amount is positive.
func (c *Calculator) ApplyModifierEffects(baseProperties map[string]float64, modifierAmounts map[string]float64) map[string]float64 {
	adjusted := make(map[string]float64, len(baseProperties))
	for prop, value := range baseProperties {
		adjusted[prop] = value
	}

	for name, amount := range modifierAmounts {
		if amount <= 0 {
			continue
		}
		modifier, ok := c.catalog.Modifier(name)
		if !ok {
			continue
		}
		for prop, boost := range modifier.Effects {
			if _, ok := adjusted[prop]; !ok {
				continue
			}
			adjusted[prop] = round1(adjusted[prop] + boost)
		}
	}
	return adjusted
}

// ModifierSelection tracks which modifiers are active on the formulation
// being edited. A modifier is either inactive (absent, amount zero) or
// active with a positive amount; there are no other states.
type ModifierSelection struct {
	calculator *Calculator
	amounts    map[string]float64
}

// NewModifierSelection builds an empty selection bound to a calculator.
func NewModifierSelection(c *Calculator) *ModifierSelection {
	return &ModifierSelection{
		calculator: c,
		amounts:    make(map[string]float64),
	}
}

// Activate enables a modifier, defaulting its amount from the catalog's
// typical usage scaled by the current total oil mass (or a 1 kg reference
// batch when no oils are weighed yet). Re-activating an already active
// modifier keeps its current amount, so activation is idempotent.
func (s *ModifierSelection) Activate(name string, totalOilWeight float64) float64 {
	if current, ok := s.amounts[name]; ok && current > 0 {
		return current
	}

	reference := totalOilWeight
	if reference <= 0 {
		reference = referenceOilMass
	}

	amount := s.calculator.ModifierAmount(name, reference, nil)
	if amount <= 0 {
		return 0
	}
	s.amounts[name] = amount
	return amount
}

// SetAmount overrides the amount for an active modifier. A non-positive
// amount deactivates it.
func (s *ModifierSelection) SetAmount(name string, amount float64) {
	if amount <= 0 {
		delete(s.amounts, name)
		return
	}
	s.amounts[name] = amount
}

// Deactivate resets a modifier to inactive, removing it from every
// downstream sum.
func (s *ModifierSelection) Deactivate(name string) {
	delete(s.amounts, name)
}

// Active reports whether a modifier is currently active.
func (s *ModifierSelection) Active(name string) bool {
	return s.amounts[name] > 0
}

// Amounts returns a copy of the active modifier amounts.
func (s *ModifierSelection) Amounts() map[string]float64 {
	out := make(map[string]float64, len(s.amounts))
	for name, amount := range s.amounts {
		out[name] = amount
	}
	return out
}
