package chemistry

import (
	"fmt"

	"saponify/models"
)

// Evaluate computes every derived field of a recipe from its inputs and
// stamps the results onto it: lye amount and modifier adjustment, water for
// the configured lye concentration, fragrance, the effect-adjusted property
// vector, and the fatty acid profile.
//
// The recipe must contain at least one oil with positive weight; an empty
// or zero-sum selection fails with ErrEmptySelection before any field is
// touched.
func (c *Calculator) Evaluate(recipe *models.Recipe) error {
	if len(recipe.Oils) == 0 {
		return fmt.Errorf("%w: recipe has no oils", ErrEmptySelection)
	}
	if TotalWeight(recipe.Oils) <= 0 {
		return fmt.Errorf("%w: oil weights sum to zero", ErrEmptySelection)
	}

	kind, err := ParseLyeKind(recipe.LyeType)
	if err != nil {
		return err
	}

	lye, err := c.LyeAmount(recipe.Oils, recipe.SuperfatPercent, kind)
	if err != nil {
		return err
	}
	adjustment := c.LyeAdjustment(recipe.Modifiers)

	// Water dissolves the full lye charge, adjustment included.
	water, err := c.WaterAmount(lye+adjustment, recipe.LyeConcentration)
	if err != nil {
		return err
	}

	fragrance, err := c.FragranceAmount(TotalWeight(recipe.Oils), recipe.FragrancePercent)
	if err != nil {
		return err
	}

	recipe.LyeAmount = lye
	recipe.LyeAdjustment = adjustment
	recipe.WaterAmount = water
	recipe.FragranceAmount = fragrance
	recipe.Properties = c.ApplyModifierEffects(c.Properties(recipe.Oils), recipe.Modifiers)
	recipe.FattyAcids = c.FattyAcids(recipe.Oils)
	recipe.LyeType = string(kind)
	return nil
}
