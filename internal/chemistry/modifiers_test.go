package chemistry

import (
	"testing"

	"saponify/internal/catalog"
)

func TestLyeAdjustment(t *testing.T) {
	t.Parallel()

	c := newTestCalculator(t)

	tests := []struct {
		name    string
		amounts map[string]float64
		want    float64
	}{
		{"no modifiers", nil, 0},
		{"citric acid consumes lye", map[string]float64{"Citric Acid": 10}, 6},
		{"non-reactive modifier contributes nothing", map[string]float64{"Kaolin Clay": 15}, 0},
		{"unknown modifier contributes nothing", map[string]float64{"Stardust": 50}, 0},
		{"mixed", map[string]float64{"Citric Acid": 8, "Sugar": 20}, 4.8},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := c.LyeAdjustment(tt.amounts); got != tt.want {
				t.Fatalf("LyeAdjustment(%v) = %v, want %v", tt.amounts, got, tt.want)
			}
		})
	}
}

func TestModifierAmount(t *testing.T) {
	t.Parallel()

	c := newTestCalculator(t)

	// Citric acid: percent_of_oils, typical 1%.
	if got := c.ModifierAmount("Citric Acid", 800, nil); got != 8 {
		t.Fatalf("ModifierAmount(Citric Acid, 800) = %v, want 8", got)
	}

	custom := 2.5
	if got := c.ModifierAmount("Citric Acid", 800, &custom); got != 20 {
		t.Fatalf("ModifierAmount with override = %v, want 20", got)
	}

	// Kaolin clay is dosed in tablespoons per pound; the raw value comes
	// back unconverted.
	if got := c.ModifierAmount("Kaolin Clay", 800, nil); got != 1 {
		t.Fatalf("ModifierAmount(Kaolin Clay) = %v, want raw typical usage 1", got)
	}

	if got := c.ModifierAmount("Stardust", 800, nil); got != 0 {
		t.Fatalf("ModifierAmount(unknown) = %v, want 0", got)
	}
}

func TestApplyModifierEffects(t *testing.T) {
	t.Parallel()

	c := newTestCalculator(t)
	base := map[string]float64{
		catalog.Hardness:     40,
		catalog.Bubbly:       20,
		catalog.Conditioning: 55,
		catalog.Creamy:       25,
	}

	got := c.ApplyModifierEffects(base, map[string]float64{
		"Sugar":       16, // bubbly +3, conditioning +1
		"Kaolin Clay": 1,  // creamy +1, hardness +1
		"Honey":       0,  // inactive, amount zero
	})

	if got[catalog.Bubbly] != 23 {
		t.Errorf("bubbly = %v, want 23", got[catalog.Bubbly])
	}
	if got[catalog.Conditioning] != 56 {
		t.Errorf("conditioning = %v, want 56", got[catalog.Conditioning])
	}
	if got[catalog.Creamy] != 26 {
		t.Errorf("creamy = %v, want 26", got[catalog.Creamy])
	}
	if got[catalog.Hardness] != 41 {
		t.Errorf("hardness = %v, want 41", got[catalog.Hardness])
	}

	// The base map must not be mutated.
	if base[catalog.Bubbly] != 20 {
		t.Errorf("base map was mutated: %v", base)
	}
}

func TestModifierSelectionLifecycle(t *testing.T) {
	t.Parallel()

	c := newTestCalculator(t)
	selection := NewModifierSelection(c)

	if selection.Active("Citric Acid") {
		t.Fatal("modifier should start inactive")
	}

	// Activation defaults from typical usage: 1% of 800 g.
	amount := selection.Activate("Citric Acid", 800)
	if amount != 8 {
		t.Fatalf("Activate returned %v, want 8", amount)
	}
	if !selection.Active("Citric Acid") {
		t.Fatal("modifier should be active after Activate")
	}

	// Activating again is idempotent: the amount and the downstream lye
	// adjustment are unchanged.
	before := c.LyeAdjustment(selection.Amounts())
	if again := selection.Activate("Citric Acid", 800); again != 8 {
		t.Fatalf("re-Activate returned %v, want 8", again)
	}
	after := c.LyeAdjustment(selection.Amounts())
	if before != after {
		t.Fatalf("re-activation changed lye adjustment: %v vs %v", before, after)
	}

	selection.Deactivate("Citric Acid")
	if selection.Active("Citric Acid") {
		t.Fatal("modifier should be inactive after Deactivate")
	}
	if got := c.LyeAdjustment(selection.Amounts()); got != 0 {
		t.Fatalf("deactivated modifier still contributes adjustment: %v", got)
	}
}

func TestModifierSelectionReferenceMass(t *testing.T) {
	t.Parallel()

	c := newTestCalculator(t)
	selection := NewModifierSelection(c)

	// No oils weighed yet: default from the 1 kg reference batch.
	if got := selection.Activate("Sodium Lactate", 0); got != 20 {
		t.Fatalf("Activate with no oils = %v, want 20 (2%% of 1 kg)", got)
	}
}

func TestModifierSelectionSetAmount(t *testing.T) {
	t.Parallel()

	c := newTestCalculator(t)
	selection := NewModifierSelection(c)

	selection.Activate("Citric Acid", 800)
	selection.SetAmount("Citric Acid", 12)
	if got := selection.Amounts()["Citric Acid"]; got != 12 {
		t.Fatalf("SetAmount did not stick: %v", got)
	}

	selection.SetAmount("Citric Acid", 0)
	if selection.Active("Citric Acid") {
		t.Fatal("zero amount should deactivate the modifier")
	}

	if got := selection.Activate("Stardust", 800); got != 0 {
		t.Fatalf("unknown modifier activation = %v, want 0", got)
	}
	if selection.Active("Stardust") {
		t.Fatal("unknown modifier should not become active")
	}
}
