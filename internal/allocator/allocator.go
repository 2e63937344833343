// Package allocator turns a set of selected oils and a target property
// vector into concrete oil weights. It is the engine behind automatic
// recipe generation: oils are bucketed into functional categories, each
// category receives a mass share derived from the normalized targets, and
// the shares are renormalized so the batch comes out at exactly the
// requested total.
package allocator

import (
	"fmt"
	"math"

	"saponify/internal/catalog"
	"saponify/internal/chemistry"
)

// Request is the immutable input to Generate. Targets maps property names
// (hardness, cleansing, conditioning, bubbly, creamy) to desired values on
// the conventional soap scales; a nil or empty map selects the balanced
// default schedule instead of targeted allocation.
type Request struct {
	Oils      []string
	TotalMass float64
	Targets   map[string]float64
}

// defaultTargets fill in properties the caller did not constrain when at
// least one target is present. They describe a middle-of-the-road bar.
var defaultTargets = map[string]float64{
	catalog.Hardness:     40,
	catalog.Cleansing:    15,
	catalog.Conditioning: 55,
	catalog.Bubbly:       25,
	catalog.Creamy:       30,
}

// Solver allocates oil weights against a fixed catalog.
type Solver struct {
	catalog *catalog.Catalog
}

// New builds a Solver backed by the given catalog.
func New(c *catalog.Catalog) *Solver {
	return &Solver{catalog: c}
}

// Generate computes per-oil weights summing to req.TotalMass. An empty oil
// selection returns an empty map without error; callers are expected to
// guard. Weights are rounded to 2 decimals.
func (s *Solver) Generate(req Request) (map[string]float64, error) {
	if len(req.Oils) == 0 {
		return map[string]float64{}, nil
	}
	if req.TotalMass <= 0 {
		return nil, fmt.Errorf("%w: total mass %.2f must be positive", chemistry.ErrInvalidParameter, req.TotalMass)
	}
	for prop := range req.Targets {
		if _, ok := defaultTargets[prop]; !ok {
			return nil, fmt.Errorf("%w: unknown target property %q", chemistry.ErrInvalidParameter, prop)
		}
	}

	if len(req.Targets) > 0 {
		return s.generateTargeted(req), nil
	}
	return s.generateBalanced(req), nil
}

// buckets partitions the selection into primary categories, preserving
// selection order inside each bucket. The key cleansing oil is pulled out
// of the hard bucket and handled on its own.
type buckets struct {
	byCategory   map[catalog.Category][]string
	keyCleansing bool
}

func (s *Solver) bucketize(oils []string) buckets {
	profile := s.catalog.Allocation()
	b := buckets{byCategory: make(map[catalog.Category][]string)}
	for _, name := range oils {
		if name == profile.KeyCleansingOil {
			b.keyCleansing = true
			continue
		}
		category, ok := profile.CategoryOf(name)
		if !ok {
			continue
		}
		b.byCategory[category] = append(b.byCategory[category], name)
	}
	return b
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// factorFor resolves a window's driving factor: the largest normalized
// target among the properties it names, clamped into [0, 1] so shares stay
// inside the window's documented bounds.
func factorFor(window catalog.Window, factors map[string]float64) float64 {
	best := 0.0
	for i, prop := range window.Factors {
		f := factors[prop]
		if i == 0 || f > best {
			best = f
		}
	}
	return clamp01(best)
}

func (s *Solver) generateTargeted(req Request) map[string]float64 {
	profile := s.catalog.Allocation()
	b := s.bucketize(req.Oils)

	// Normalize targets into [0, 1] factors against the recommended
	// property ranges, defaulting unspecified properties.
	factors := make(map[string]float64, len(defaultTargets))
	for prop, def := range defaultTargets {
		value := def
		if v, ok := req.Targets[prop]; ok {
			value = v
		}
		r, ok := s.catalog.RecommendedRange(prop)
		if !ok {
			continue
		}
		factors[prop] = r.Normalize(value)
	}

	// Per-category shares as affine functions of the factors. Categories
	// with no selected oils take no share.
	shares := make(map[catalog.Category]float64, len(profile.Windows))
	for category, window := range profile.Windows {
		if len(b.byCategory[category]) == 0 {
			continue
		}
		shares[category] = window.Offset + factorFor(window, factors)*window.Span
	}

	keyShare := 0.0
	if b.keyCleansing {
		keyShare = profile.KeyCleansing.Offset + factorFor(profile.KeyCleansing, factors)*profile.KeyCleansing.Span
	}

	// Without a base oil the blend would be harsh: damp the cleansing oil
	// and push the creamy fats and the remaining hard oils up to cover the
	// missing conditioning.
	if len(b.byCategory[catalog.CategoryBase]) == 0 {
		keyShare *= profile.Compensation.KeyCleansing
		if share, ok := shares[catalog.CategoryConditioning]; ok {
			shares[catalog.CategoryConditioning] = share * profile.Compensation.Conditioning
		}
		if share, ok := shares[catalog.CategoryHard]; ok {
			shares[catalog.CategoryHard] = share * profile.Compensation.Hard
		}
	}

	totalShare := keyShare
	for _, share := range shares {
		totalShare += share
	}
	if totalShare == 0 {
		return map[string]float64{}
	}

	weights := make(map[string]float64, len(req.Oils))
	if b.keyCleansing {
		weights[profile.KeyCleansingOil] = req.TotalMass * keyShare / totalShare
	}
	for category, share := range shares {
		members := b.byCategory[category]
		per := req.TotalMass * share / totalShare / float64(len(members))
		for _, name := range members {
			weights[name] += per
		}
	}

	return rescaleToTotal(weights, req.TotalMass)
}

// generateBalanced produces a sensible recipe when the caller gave no
// property targets, using fixed splits for small selections and the default
// category schedule otherwise.
func (s *Solver) generateBalanced(req Request) map[string]float64 {
	total := req.TotalMass
	oils := req.Oils

	profile := s.catalog.Allocation()
	var base, hard []string
	for _, name := range oils {
		category, ok := profile.CategoryOf(name)
		if !ok {
			continue
		}
		switch category {
		case catalog.CategoryBase:
			base = append(base, name)
		case catalog.CategoryHard:
			hard = append(hard, name)
		}
	}

	weights := make(map[string]float64, len(oils))
	switch len(oils) {
	case 1:
		weights[oils[0]] = total

	case 2:
		if len(base) > 0 && len(hard) > 0 {
			weights[base[0]] = total * 0.70
			weights[hard[0]] = total * 0.30
		} else {
			weights[oils[0]] = total * 0.60
			weights[oils[1]] = total * 0.40
		}

	case 3:
		if len(base) > 0 && len(hard) > 0 {
			weights[base[0]] = total * 0.50
			weights[hard[0]] = total * 0.30
			for _, name := range oils {
				if name != base[0] && name != hard[0] {
					weights[name] = total * 0.20
					break
				}
			}
		} else {
			for _, name := range oils {
				weights[name] = total / 3
			}
		}

	default:
		weights = s.scheduleAllocation(oils, total)
	}

	return roundWeights(weights)
}

// scheduleAllocation walks the default category schedule in order, capping
// each step by the mass still unallocated, then spreads any leftover evenly
// across the allocated oils.
func (s *Solver) scheduleAllocation(oils []string, total float64) map[string]float64 {
	profile := s.catalog.Allocation()
	b := s.bucketize(oils)

	// The schedule treats the key cleansing oil as part of its category.
	if b.keyCleansing {
		category, ok := profile.CategoryOf(profile.KeyCleansingOil)
		if ok {
			b.byCategory[category] = append([]string{profile.KeyCleansingOil}, b.byCategory[category]...)
		}
	}

	weights := make(map[string]float64, len(oils))
	remaining := total
	for _, entry := range profile.DefaultSchedule {
		members := b.byCategory[entry.Category]
		if len(members) == 0 {
			continue
		}
		amount := math.Min(total*entry.Fraction, remaining)
		per := amount / float64(len(members))
		for _, name := range members {
			weights[name] += per
		}
		remaining -= amount
	}

	if remaining > 0.01 && len(weights) > 0 {
		per := remaining / float64(len(weights))
		for name := range weights {
			weights[name] += per
		}
	}

	return weights
}

// rescaleToTotal scales every weight so the sum equals total exactly,
// correcting the drift introduced by clamped category windows, then rounds.
func rescaleToTotal(weights map[string]float64, total float64) map[string]float64 {
	sum := 0.0
	for _, weight := range weights {
		sum += weight
	}
	if sum > 0 {
		factor := total / sum
		for name := range weights {
			weights[name] *= factor
		}
	}
	return roundWeights(weights)
}

func roundWeights(weights map[string]float64) map[string]float64 {
	for name, weight := range weights {
		weights[name] = math.Round(weight*100) / 100
	}
	return weights
}
