package allocator

import (
	"errors"
	"math"
	"testing"

	"saponify/internal/catalog"
	"saponify/internal/chemistry"
)

func newTestSolver(t *testing.T) *Solver {
	t.Helper()
	return New(catalog.Builtin())
}

func sumWeights(weights map[string]float64) float64 {
	total := 0.0
	for _, weight := range weights {
		total += weight
	}
	return total
}

func TestGenerateEmptySelection(t *testing.T) {
	t.Parallel()

	s := newTestSolver(t)
	got, err := s.Generate(Request{Oils: nil, TotalMass: 100})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestGenerateInvalidTotalMass(t *testing.T) {
	t.Parallel()

	s := newTestSolver(t)
	for _, total := range []float64{0, -10} {
		if _, err := s.Generate(Request{Oils: []string{"Olive Oil"}, TotalMass: total}); !errors.Is(err, chemistry.ErrInvalidParameter) {
			t.Fatalf("total %v: expected ErrInvalidParameter, got %v", total, err)
		}
	}
}

func TestGenerateUnknownTargetProperty(t *testing.T) {
	t.Parallel()

	s := newTestSolver(t)
	_, err := s.Generate(Request{
		Oils:      []string{"Olive Oil"},
		TotalMass: 100,
		Targets:   map[string]float64{"sparkle": 10},
	})
	if !errors.Is(err, chemistry.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestGenerateSingleOil(t *testing.T) {
	t.Parallel()

	s := newTestSolver(t)
	got, err := s.Generate(Request{Oils: []string{"Olive Oil"}, TotalMass: 100})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got["Olive Oil"] != 100 {
		t.Fatalf("single oil allocation = %v, want {Olive Oil: 100}", got)
	}
}

func TestGenerateTwoOilsBaseAndHard(t *testing.T) {
	t.Parallel()

	s := newTestSolver(t)
	got, err := s.Generate(Request{Oils: []string{"Coconut Oil", "Olive Oil"}, TotalMass: 100})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got["Olive Oil"] != 70 || got["Coconut Oil"] != 30 {
		t.Fatalf("base+hard split = %v, want 70/30 favoring the base oil", got)
	}
}

func TestGenerateTwoOilsSelectionOrder(t *testing.T) {
	t.Parallel()

	s := newTestSolver(t)

	// Two base oils: no base+hard pairing, so split 60/40 in selection order.
	got, err := s.Generate(Request{Oils: []string{"Sunflower Oil", "Olive Oil"}, TotalMass: 200})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got["Sunflower Oil"] != 120 || got["Olive Oil"] != 80 {
		t.Fatalf("60/40 split = %v, want Sunflower 120 / Olive 80", got)
	}
}

func TestGenerateThreeOils(t *testing.T) {
	t.Parallel()

	s := newTestSolver(t)

	got, err := s.Generate(Request{
		Oils:      []string{"Olive Oil", "Coconut Oil", "Castor Oil"},
		TotalMass: 1000,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got["Olive Oil"] != 500 || got["Coconut Oil"] != 300 || got["Castor Oil"] != 200 {
		t.Fatalf("base/hard/other split = %v, want 500/300/200", got)
	}
}

func TestGenerateThreeOilsEvenSplit(t *testing.T) {
	t.Parallel()

	s := newTestSolver(t)

	// No hard oil selected: equal thirds.
	got, err := s.Generate(Request{
		Oils:      []string{"Olive Oil", "Sunflower Oil", "Castor Oil"},
		TotalMass: 999,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	for _, name := range []string{"Olive Oil", "Sunflower Oil", "Castor Oil"} {
		if got[name] != 333 {
			t.Fatalf("even split = %v, want 333 each", got)
		}
	}
}

func TestGenerateDefaultSchedule(t *testing.T) {
	t.Parallel()

	s := newTestSolver(t)
	got, err := s.Generate(Request{
		Oils:      []string{"Olive Oil", "Sunflower Oil", "Coconut Oil", "Lard", "Castor Oil", "Argan Oil"},
		TotalMass: 1000,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	// base 45% across two oils, hard 30%, conditioning 18%, super fat 7%;
	// nothing is left for the specialty step.
	if got["Olive Oil"] != 225 || got["Sunflower Oil"] != 225 {
		t.Errorf("base oils = %v/%v, want 225 each", got["Olive Oil"], got["Sunflower Oil"])
	}
	if got["Coconut Oil"] != 300 {
		t.Errorf("Coconut Oil = %v, want 300", got["Coconut Oil"])
	}
	if got["Lard"] != 180 {
		t.Errorf("Lard = %v, want 180", got["Lard"])
	}
	if got["Castor Oil"] != 70 {
		t.Errorf("Castor Oil = %v, want 70", got["Castor Oil"])
	}
	if got["Argan Oil"] != 0 {
		t.Errorf("Argan Oil = %v, want 0 (schedule exhausted)", got["Argan Oil"])
	}
	if math.Abs(sumWeights(got)-1000) > 0.05 {
		t.Errorf("allocations sum to %v, want 1000", sumWeights(got))
	}
}

func TestGenerateTargeted(t *testing.T) {
	t.Parallel()

	s := newTestSolver(t)
	got, err := s.Generate(Request{
		Oils:      []string{"Olive Oil", "Coconut Oil", "Palm Oil", "Castor Oil"},
		TotalMass: 1000,
		Targets: map[string]float64{
			catalog.Hardness:     40,
			catalog.Cleansing:    15,
			catalog.Conditioning: 55,
			catalog.Bubbly:       25,
			catalog.Creamy:       30,
		},
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	want := map[string]float64{
		"Olive Oil":   459.33,
		"Coconut Oil": 287.41,
		"Palm Oil":    176.50,
		"Castor Oil":  76.75,
	}
	for name, weight := range want {
		if math.Abs(got[name]-weight) > 0.01 {
			t.Errorf("%s = %v, want %v", name, got[name], weight)
		}
	}
	if math.Abs(sumWeights(got)-1000) > 0.05 {
		t.Errorf("allocations sum to %v, want 1000", sumWeights(got))
	}
}

func TestGenerateTargetedPartialTargetsDefaultRest(t *testing.T) {
	t.Parallel()

	s := newTestSolver(t)
	explicit, err := s.Generate(Request{
		Oils:      []string{"Olive Oil", "Coconut Oil", "Palm Oil", "Castor Oil"},
		TotalMass: 1000,
		Targets: map[string]float64{
			catalog.Hardness:     40,
			catalog.Cleansing:    15,
			catalog.Conditioning: 55,
			catalog.Bubbly:       25,
			catalog.Creamy:       30,
		},
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	partial, err := s.Generate(Request{
		Oils:      []string{"Olive Oil", "Coconut Oil", "Palm Oil", "Castor Oil"},
		TotalMass: 1000,
		Targets:   map[string]float64{catalog.Hardness: 40},
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	for name := range explicit {
		if math.Abs(explicit[name]-partial[name]) > 0.01 {
			t.Errorf("%s: explicit defaults %v != implicit defaults %v", name, explicit[name], partial[name])
		}
	}
}

func TestGenerateTargetedHighCleansingRaisesCoconut(t *testing.T) {
	t.Parallel()

	s := newTestSolver(t)
	oils := []string{"Olive Oil", "Coconut Oil", "Palm Oil"}

	mild, err := s.Generate(Request{Oils: oils, TotalMass: 1000, Targets: map[string]float64{catalog.Cleansing: 12}})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	strong, err := s.Generate(Request{Oils: oils, TotalMass: 1000, Targets: map[string]float64{catalog.Cleansing: 22, catalog.Bubbly: 46}})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if strong["Coconut Oil"] <= mild["Coconut Oil"] {
		t.Fatalf("high cleansing target should raise the coconut share: mild %v, strong %v",
			mild["Coconut Oil"], strong["Coconut Oil"])
	}
}

func TestGenerateTargetedClampsFactors(t *testing.T) {
	t.Parallel()

	s := newTestSolver(t)
	oils := []string{"Olive Oil", "Coconut Oil", "Palm Oil"}

	atMax, err := s.Generate(Request{Oils: oils, TotalMass: 1000, Targets: map[string]float64{catalog.Cleansing: 22, catalog.Bubbly: 46}})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	beyondMax, err := s.Generate(Request{Oils: oils, TotalMass: 1000, Targets: map[string]float64{catalog.Cleansing: 90, catalog.Bubbly: 90}})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if math.Abs(atMax["Coconut Oil"]-beyondMax["Coconut Oil"]) > 0.01 {
		t.Fatalf("targets beyond the valid range must clamp: at max %v, beyond %v",
			atMax["Coconut Oil"], beyondMax["Coconut Oil"])
	}
}

func TestGenerateTargetedNoBaseCompensation(t *testing.T) {
	t.Parallel()

	s := newTestSolver(t)
	got, err := s.Generate(Request{
		Oils:      []string{"Coconut Oil", "Palm Oil", "Lard"},
		TotalMass: 1000,
		Targets:   map[string]float64{catalog.Hardness: 40},
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	// With no base oil the creamy fat is boosted hardest, the remaining
	// hard oil moderately, and the cleansing oil is damped.
	if !(got["Lard"] > got["Palm Oil"] && got["Palm Oil"] > got["Coconut Oil"]) {
		t.Fatalf("compensation ordering wrong: %v", got)
	}
	if math.Abs(sumWeights(got)-1000) > 0.05 {
		t.Fatalf("allocations sum to %v, want 1000", sumWeights(got))
	}
}

func TestGenerateSumsToTotalAcrossScenarios(t *testing.T) {
	t.Parallel()

	s := newTestSolver(t)
	scenarios := []Request{
		{Oils: []string{"Olive Oil"}, TotalMass: 100},
		{Oils: []string{"Olive Oil", "Coconut Oil"}, TotalMass: 100},
		{Oils: []string{"Olive Oil", "Coconut Oil", "Castor Oil"}, TotalMass: 100},
		{Oils: []string{"Olive Oil", "Coconut Oil", "Palm Oil", "Castor Oil", "Shea Butter"}, TotalMass: 1234.56},
		{Oils: []string{"Olive Oil", "Coconut Oil", "Palm Oil", "Castor Oil"}, TotalMass: 453.59,
			Targets: map[string]float64{catalog.Hardness: 50, catalog.Creamy: 40}},
		{Oils: []string{"Beef Tallow", "Coconut Oil"}, TotalMass: 800,
			Targets: map[string]float64{catalog.Conditioning: 60}},
	}

	for _, req := range scenarios {
		got, err := s.Generate(req)
		if err != nil {
			t.Fatalf("Generate(%v) returned error: %v", req.Oils, err)
		}
		if math.Abs(sumWeights(got)-req.TotalMass) > 0.05 {
			t.Errorf("Generate(%v) sums to %v, want %v", req.Oils, sumWeights(got), req.TotalMass)
		}
	}
}

func TestGenerateUncategorizedOilFallsThrough(t *testing.T) {
	t.Parallel()

	s := newTestSolver(t)

	// Two oils where one is uncategorized: plain 60/40 selection-order split.
	got, err := s.Generate(Request{Oils: []string{"Olive Oil", "Dragon Fat"}, TotalMass: 1000})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got["Olive Oil"] != 600 || got["Dragon Fat"] != 400 {
		t.Fatalf("uncategorized split = %v, want 600/400", got)
	}

	// In targeted mode uncategorized oils receive no allocation.
	targeted, err := s.Generate(Request{
		Oils:      []string{"Olive Oil", "Dragon Fat"},
		TotalMass: 1000,
		Targets:   map[string]float64{catalog.Hardness: 40},
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, ok := targeted["Dragon Fat"]; ok {
		t.Fatalf("targeted allocation should skip uncategorized oils: %v", targeted)
	}
	if math.Abs(sumWeights(targeted)-1000) > 0.05 {
		t.Fatalf("targeted allocations sum to %v, want 1000", sumWeights(targeted))
	}
}
