package nutrition

// Nutrient keys. Suffixes carry the unit so values never travel without one.
const (
	Calories      = "calories"
	ProteinG      = "protein_g"
	CarbohydrateG = "carbohydrates_g"
	FatG          = "fat_g"
	FiberG        = "fiber_g"
	Omega3G       = "omega3_g"
	VitaminCMG    = "vitaminC_mg"
	VitaminDIU    = "vitaminD_IU"
	FolateMCG     = "folate_B9_mcg"
	B12MCG        = "cobalamin_B12_mcg"
	CalciumMG     = "calcium_mg"
	IronMG        = "iron_mg"
	MagnesiumMG   = "magnesium_mg"
	PotassiumMG   = "potassium_mg"
	ZincMG        = "zinc_mg"
	SeleniumMCG   = "selenium_mcg"
	CholineMG     = "choline_mg"
)

// Food is one entry in the food database. Nutrients are per ServingGrams.
type Food struct {
	Name         string             `json:"name"`
	ServingGrams float64            `json:"serving_grams"`
	Animal       bool               `json:"animal"`
	Nutrients    map[string]float64 `json:"nutrients"`
}

// Requirement is the daily intake band for one nutrient. Min and Max of 0
// fall back to 80% and 150% of Optimal.
type Requirement struct {
	Optimal float64 `json:"optimal"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

func (r Requirement) bounds() (min, max float64) {
	min, max = r.Min, r.Max
	if min == 0 {
		min = r.Optimal * 0.8
	}
	if max == 0 {
		max = r.Optimal * 1.5
	}
	return min, max
}

func nut(cal, protein, carbs, fat, fiber float64, rest map[string]float64) map[string]float64 {
	m := map[string]float64{
		Calories:      cal,
		ProteinG:      protein,
		CarbohydrateG: carbs,
		FatG:          fat,
		FiberG:        fiber,
	}
	for k, v := range rest {
		m[k] = v
	}
	return m
}

// builtinFoods hold per-100g nutrient vectors for whole-food staples.
var builtinFoods = map[string]Food{
	"Eggs": {
		Name: "Eggs", ServingGrams: 100, Animal: true,
		Nutrients: nut(143, 12.6, 0.7, 9.5, 0, map[string]float64{
			VitaminDIU: 82, B12MCG: 0.89, CholineMG: 294, SeleniumMCG: 30.7, IronMG: 1.8, ZincMG: 1.3,
		}),
	},
	"Wild Salmon": {
		Name: "Wild Salmon", ServingGrams: 100, Animal: true,
		Nutrients: nut(182, 25.4, 0, 8.1, 0, map[string]float64{
			Omega3G: 2.2, VitaminDIU: 526, B12MCG: 3.2, SeleniumMCG: 36.5, PotassiumMG: 384, MagnesiumMG: 29,
		}),
	},
	"Sardines": {
		Name: "Sardines", ServingGrams: 100, Animal: true,
		Nutrients: nut(208, 24.6, 0, 11.5, 0, map[string]float64{
			Omega3G: 1.5, VitaminDIU: 193, B12MCG: 8.9, CalciumMG: 382, SeleniumMCG: 52.7, IronMG: 2.9,
		}),
	},
	"Beef Liver": {
		Name: "Beef Liver", ServingGrams: 100, Animal: true,
		Nutrients: nut(175, 26.5, 5.1, 4.7, 0, map[string]float64{
			B12MCG: 70.6, FolateMCG: 253, IronMG: 6.2, ZincMG: 5.3, CholineMG: 418, SeleniumMCG: 36.1,
		}),
	},
	"Spinach": {
		Name: "Spinach", ServingGrams: 100,
		Nutrients: nut(23, 2.9, 3.6, 0.4, 2.2, map[string]float64{
			VitaminCMG: 28.1, FolateMCG: 194, IronMG: 2.7, MagnesiumMG: 79, PotassiumMG: 558, CalciumMG: 99,
		}),
	},
	"Lentils": {
		Name: "Lentils", ServingGrams: 100,
		Nutrients: nut(116, 9, 20.1, 0.4, 7.9, map[string]float64{
			FolateMCG: 181, IronMG: 3.3, PotassiumMG: 369, ZincMG: 1.3, MagnesiumMG: 36,
		}),
	},
	"Oats": {
		Name: "Oats", ServingGrams: 100,
		Nutrients: nut(389, 16.9, 66.3, 6.9, 10.6, map[string]float64{
			IronMG: 4.7, MagnesiumMG: 177, ZincMG: 4, SeleniumMCG: 28.9,
		}),
	},
	"Almonds": {
		Name: "Almonds", ServingGrams: 100,
		Nutrients: nut(579, 21.2, 21.6, 49.9, 12.5, map[string]float64{
			MagnesiumMG: 270, CalciumMG: 269, ZincMG: 3.1, PotassiumMG: 733, IronMG: 3.7,
		}),
	},
	"Broccoli": {
		Name: "Broccoli", ServingGrams: 100,
		Nutrients: nut(34, 2.8, 6.6, 0.4, 2.6, map[string]float64{
			VitaminCMG: 89.2, FolateMCG: 63, PotassiumMG: 316, CalciumMG: 47,
		}),
	},
	"Sweet Potato": {
		Name: "Sweet Potato", ServingGrams: 100,
		Nutrients: nut(86, 1.6, 20.1, 0.1, 3, map[string]float64{
			PotassiumMG: 337, VitaminCMG: 2.4, MagnesiumMG: 25,
		}),
	},
	"Greek Yogurt": {
		Name: "Greek Yogurt", ServingGrams: 100, Animal: true,
		Nutrients: nut(97, 9, 3.9, 5, 0, map[string]float64{
			CalciumMG: 110, B12MCG: 0.75, ZincMG: 0.5, PotassiumMG: 141, SeleniumMCG: 9.7,
		}),
	},
	"Pumpkin Seeds": {
		Name: "Pumpkin Seeds", ServingGrams: 100,
		Nutrients: nut(559, 30.2, 10.7, 49.1, 6, map[string]float64{
			MagnesiumMG: 592, ZincMG: 7.8, IronMG: 8.8, PotassiumMG: 809, Omega3G: 0.1,
		}),
	},
}

// builtinRequirements are daily intake bands per demographic, keyed by the
// age range label.
var builtinRequirements = map[string]map[string]Requirement{
	"adult-25-50": {
		Calories:      {Optimal: 2200, Min: 1800, Max: 2800},
		ProteinG:      {Optimal: 90, Min: 60, Max: 160},
		CarbohydrateG: {Optimal: 250, Min: 130, Max: 350},
		FatG:          {Optimal: 80, Min: 50, Max: 120},
		FiberG:        {Optimal: 32, Min: 25, Max: 60},
		Omega3G:       {Optimal: 1.6, Min: 1.1, Max: 4},
		VitaminCMG:    {Optimal: 90, Min: 75, Max: 2000},
		VitaminDIU:    {Optimal: 800, Min: 600, Max: 4000},
		FolateMCG:     {Optimal: 400, Min: 320, Max: 1000},
		B12MCG:        {Optimal: 2.4, Min: 2, Max: 100},
		CalciumMG:     {Optimal: 1000, Min: 800, Max: 2500},
		IronMG:        {Optimal: 12, Min: 8, Max: 45},
		MagnesiumMG:   {Optimal: 400, Min: 310, Max: 750},
		PotassiumMG:   {Optimal: 3400, Min: 2600, Max: 6000},
		ZincMG:        {Optimal: 11, Min: 8, Max: 40},
		SeleniumMCG:   {Optimal: 55, Min: 45, Max: 400},
		CholineMG:     {Optimal: 500, Min: 425, Max: 3500},
	},
	"adult-51plus": {
		Calories:      {Optimal: 2000, Min: 1600, Max: 2600},
		ProteinG:      {Optimal: 100, Min: 70, Max: 160},
		CarbohydrateG: {Optimal: 230, Min: 130, Max: 320},
		FatG:          {Optimal: 75, Min: 45, Max: 110},
		FiberG:        {Optimal: 30, Min: 22, Max: 60},
		Omega3G:       {Optimal: 1.6, Min: 1.1, Max: 4},
		VitaminCMG:    {Optimal: 90, Min: 75, Max: 2000},
		VitaminDIU:    {Optimal: 1000, Min: 800, Max: 4000},
		FolateMCG:     {Optimal: 400, Min: 320, Max: 1000},
		B12MCG:        {Optimal: 2.6, Min: 2.4, Max: 100},
		CalciumMG:     {Optimal: 1200, Min: 1000, Max: 2500},
		IronMG:        {Optimal: 8, Min: 6, Max: 45},
		MagnesiumMG:   {Optimal: 420, Min: 320, Max: 750},
		PotassiumMG:   {Optimal: 3400, Min: 2600, Max: 6000},
		ZincMG:        {Optimal: 11, Min: 8, Max: 40},
		SeleniumMCG:   {Optimal: 55, Min: 45, Max: 400},
		CholineMG:     {Optimal: 550, Min: 425, Max: 3500},
	},
}

// DefaultDemographic is used when the caller does not name one.
const DefaultDemographic = "adult-25-50"
