package catalog

// Category groups oils by the functional role they play during automatic
// recipe allocation. Each oil belongs to exactly one category.
type Category string

const (
	CategoryBase         Category = "base"
	CategoryHard         Category = "hard"
	CategorySuperFat     Category = "super_fat"
	CategoryConditioning Category = "conditioning"
	CategorySpecialty    Category = "specialty"
)

// Window is an affine share formula for one allocation category: the
// category's mass fraction is Offset + factor*Span, where factor is the
// largest normalized target factor named in Factors. The reachable share
// therefore stays inside [Offset, Offset+Span], which encodes the practical
// formulation limits for the category.
type Window struct {
	Offset  float64  `json:"offset"`
	Span    float64  `json:"span"`
	Factors []string `json:"factors"`
}

// ScheduleEntry is one step of the untargeted default allocation schedule.
// Entries run in order and later steps are capped by the mass still
// unallocated.
type ScheduleEntry struct {
	Category Category `json:"category"`
	Fraction float64  `json:"fraction"`
}

// Compensation rescales category shares when no base oil was selected, so
// the result is not under-conditioned and the cleansing oil does not
// dominate.
type Compensation struct {
	KeyCleansing float64 `json:"key_cleansing"`
	Conditioning float64 `json:"conditioning"`
	Hard         float64 `json:"hard"`
}

// AllocationProfile is the configuration consumed by the targeted recipe
// generator: category membership, per-category share windows, the dominant
// cleansing oil handled separately from the rest of the hard oils, the
// no-base compensation multipliers, and the untargeted default schedule.
type AllocationProfile struct {
	Categories      map[Category][]string `json:"categories"`
	KeyCleansingOil string                `json:"key_cleansing_oil"`
	Windows         map[Category]Window   `json:"windows"`
	KeyCleansing    Window                `json:"key_cleansing_window"`
	Compensation    Compensation          `json:"compensation"`
	DefaultSchedule []ScheduleEntry       `json:"default_schedule"`
}

// CategoryOf returns the primary allocation category for an oil, or false
// when the oil is not categorized.
func (p AllocationProfile) CategoryOf(name string) (Category, bool) {
	for category, members := range p.Categories {
		for _, member := range members {
			if member == name {
				return category, true
			}
		}
	}
	return "", false
}

// defaultAllocation mirrors decades of practical cold-process formulation
// limits. The window bounds are domain safety limits, not tuning knobs:
// e.g. the key cleansing oil is capped at half the batch to avoid a
// stripping bar, and specialty oils stay below 5%.
var defaultAllocation = AllocationProfile{
	Categories: map[Category][]string{
		CategoryBase: {
			"Olive Oil", "Sunflower Oil", "Sweet Almond Oil", "Rice Bran Oil",
			"Canola Oil", "Apricot Kernel Oil", "Avocado Oil", "Hazelnut Oil",
			"Macadamia Nut Oil",
		},
		CategoryHard: {
			"Coconut Oil", "Palm Oil", "Cocoa Butter", "Shea Butter",
			"Babassu Oil", "Beeswax", "Mango Butter",
		},
		CategorySuperFat: {"Castor Oil", "Jojoba Oil"},
		CategoryConditioning: {
			"Beef Tallow", "Lard", "Grapeseed Oil", "Hemp Seed Oil",
			"Safflower Oil",
		},
		CategorySpecialty: {"Argan Oil", "Neem Oil"},
	},
	KeyCleansingOil: "Coconut Oil",
	Windows: map[Category]Window{
		CategoryBase:         {Offset: 0.30, Span: 0.30, Factors: []string{Conditioning}}, // 30-60%
		CategoryHard:         {Offset: 0.10, Span: 0.15, Factors: []string{Hardness}},     // 10-25%
		CategoryConditioning: {Offset: 0.10, Span: 0.20, Factors: []string{Creamy}},       // 10-30%
		CategorySuperFat:     {Offset: 0.05, Span: 0.05, Factors: []string{Creamy}},       // 5-10%
		CategorySpecialty:    {Offset: 0.03, Span: 0.02, Factors: []string{Conditioning}}, // 3-5%
	},
	// The key cleansing oil drives both cleansing and bubbly lather, so its
	// share follows whichever of the two targets asks for more.
	KeyCleansing: Window{Offset: 0.15, Span: 0.35, Factors: []string{Cleansing, Bubbly}}, // 15-50%
	Compensation: Compensation{KeyCleansing: 0.6, Conditioning: 1.8, Hard: 1.5},
	DefaultSchedule: []ScheduleEntry{
		{Category: CategoryBase, Fraction: 0.45},
		{Category: CategoryHard, Fraction: 0.30},
		{Category: CategoryConditioning, Fraction: 0.18},
		{Category: CategorySuperFat, Fraction: 0.07},
		{Category: CategorySpecialty, Fraction: 0.05},
	},
}
