package catalog

// The built-in tables below carry published saponification values and
// SoapCalc-style property contributions for the common cold-process oils.
// Prices are indicative bulk prices used by the cost estimator.

func props(hardness, cleansing, conditioning, bubbly, creamy, iodine, ins float64) map[string]float64 {
	return map[string]float64{
		Hardness:     hardness,
		Cleansing:    cleansing,
		Conditioning: conditioning,
		Bubbly:       bubbly,
		Creamy:       creamy,
		Iodine:       iodine,
		INS:          ins,
	}
}

func acids(lauric, myristic, palmitic, stearic, ricinoleic, oleic, linoleic, linolenic float64) map[string]float64 {
	return map[string]float64{
		"lauric":     lauric,
		"myristic":   myristic,
		"palmitic":   palmitic,
		"stearic":    stearic,
		"ricinoleic": ricinoleic,
		"oleic":      oleic,
		"linoleic":   linoleic,
		"linolenic":  linolenic,
	}
}

var builtinOils = []Oil{
	{
		Name:        "Olive Oil",
		Description: "The classic castile base; gentle, conditioning, slow to trace.",
		SapNaOH:     0.134, SapKOH: 0.188, PricePerKG: 9.50,
		Properties: props(17, 0, 82, 0, 17, 85, 105),
		FattyAcids: acids(0, 0, 14, 3, 0, 69, 12, 1),
	},
	{
		Name:        "Sunflower Oil",
		Description: "Light conditioning oil, high in linoleic acid.",
		SapNaOH:     0.134, SapKOH: 0.188, PricePerKG: 4.20,
		Properties: props(11, 0, 83, 0, 11, 133, 63),
		FattyAcids: acids(0, 0, 7, 4, 0, 16, 70, 1),
	},
	{
		Name:        "Sweet Almond Oil",
		Description: "Silky conditioning oil popular in facial bars.",
		SapNaOH:     0.136, SapKOH: 0.191, PricePerKG: 12.80,
		Properties: props(7, 0, 89, 0, 7, 99, 97),
		FattyAcids: acids(0, 0, 7, 2, 0, 71, 18, 0),
	},
	{
		Name:        "Rice Bran Oil",
		Description: "Olive substitute with a touch more hardness.",
		SapNaOH:     0.128, SapKOH: 0.179, PricePerKG: 5.10,
		Properties: props(24, 0, 72, 0, 24, 100, 87),
		FattyAcids: acids(0, 1, 22, 3, 0, 38, 34, 2),
	},
	{
		Name:        "Canola Oil",
		Description: "Budget conditioning oil; keep below a third of the batch.",
		SapNaOH:     0.124, SapKOH: 0.174, PricePerKG: 2.90,
		Properties: props(6, 0, 90, 0, 6, 110, 56),
		FattyAcids: acids(0, 0, 4, 2, 0, 61, 21, 9),
	},
	{
		Name:        "Apricot Kernel Oil",
		Description: "Light, quickly absorbed conditioning oil.",
		SapNaOH:     0.135, SapKOH: 0.189, PricePerKG: 14.00,
		Properties: props(6, 0, 91, 0, 6, 100, 91),
		FattyAcids: acids(0, 0, 6, 1, 0, 66, 27, 0),
	},
	{
		Name:        "Avocado Oil",
		Description: "Rich in unsaponifiables; a favorite for sensitive skin.",
		SapNaOH:     0.133, SapKOH: 0.186, PricePerKG: 11.30,
		Properties: props(22, 2, 70, 2, 20, 86, 99),
		FattyAcids: acids(0, 0, 20, 2, 0, 58, 12, 1),
	},
	{
		Name:        "Hazelnut Oil",
		Description: "Astringent conditioning oil, very high oleic.",
		SapNaOH:     0.136, SapKOH: 0.190, PricePerKG: 16.40,
		Properties: props(7, 0, 92, 0, 7, 97, 94),
		FattyAcids: acids(0, 0, 5, 2, 0, 75, 10, 0),
	},
	{
		Name:        "Macadamia Nut Oil",
		Description: "Buttery feel with palmitoleic richness.",
		SapNaOH:     0.139, SapKOH: 0.195, PricePerKG: 18.90,
		Properties: props(16, 0, 84, 0, 16, 76, 119),
		FattyAcids: acids(0, 1, 9, 5, 0, 59, 2, 0),
	},
	{
		Name:        "Coconut Oil",
		Description: "The workhorse cleanser; big fluffy lather, drying above half the batch.",
		SapNaOH:     0.183, SapKOH: 0.257, PricePerKG: 6.80,
		Properties: props(79, 67, 10, 67, 12, 10, 258),
		FattyAcids: acids(48, 19, 9, 3, 0, 8, 2, 0),
	},
	{
		Name:        "Palm Oil",
		Description: "Hardness and creamy stable lather without cleansing bite.",
		SapNaOH:     0.141, SapKOH: 0.199, PricePerKG: 4.50,
		Properties: props(49, 1, 49, 1, 48, 53, 145),
		FattyAcids: acids(0, 1, 44, 5, 0, 39, 10, 0),
	},
	{
		Name:        "Cocoa Butter",
		Description: "Brittle butter lending long-lasting hardness.",
		SapNaOH:     0.137, SapKOH: 0.192, PricePerKG: 13.70,
		Properties: props(61, 0, 38, 0, 61, 37, 157),
		FattyAcids: acids(0, 0, 28, 33, 0, 35, 3, 0),
	},
	{
		Name:        "Shea Butter",
		Description: "Skin-loving butter with a high unsaponifiable fraction.",
		SapNaOH:     0.128, SapKOH: 0.179, PricePerKG: 10.90,
		Properties: props(45, 0, 54, 0, 45, 59, 116),
		FattyAcids: acids(0, 0, 5, 40, 0, 48, 6, 0),
	},
	{
		Name:        "Babassu Oil",
		Description: "Coconut alternative with a gentler cleanse.",
		SapNaOH:     0.175, SapKOH: 0.245, PricePerKG: 9.20,
		Properties: props(70, 60, 25, 60, 10, 15, 230),
		FattyAcids: acids(50, 20, 11, 4, 0, 10, 0, 0),
	},
	{
		Name:        "Beeswax",
		Description: "Hardener only; keep under 3% or the lather suffers.",
		SapNaOH:     0.069, SapKOH: 0.097, PricePerKG: 15.50,
		Properties: props(84, 0, 0, 0, 0, 10, 84),
		FattyAcids: acids(0, 0, 0, 0, 0, 0, 0, 0),
	},
	{
		Name:        "Mango Butter",
		Description: "Smooth butter between shea and cocoa in feel.",
		SapNaOH:     0.137, SapKOH: 0.192, PricePerKG: 12.10,
		Properties: props(48, 0, 51, 0, 48, 45, 146),
		FattyAcids: acids(0, 0, 7, 42, 0, 45, 3, 0),
	},
	{
		Name:        "Castor Oil",
		Description: "Ricinoleic lather booster; 5-10% stabilizes bubbles.",
		SapNaOH:     0.128, SapKOH: 0.180, PricePerKG: 7.40,
		Properties: props(0, 0, 98, 90, 90, 86, 95),
		FattyAcids: acids(0, 0, 0, 0, 90, 4, 4, 0),
	},
	{
		Name:        "Jojoba Oil",
		Description: "Liquid wax; superfatting luxury that barely saponifies.",
		SapNaOH:     0.069, SapKOH: 0.097, PricePerKG: 24.60,
		Properties: props(11, 0, 44, 0, 11, 83, 11),
		FattyAcids: acids(0, 0, 0, 0, 0, 12, 0, 0),
	},
	{
		Name:        "Beef Tallow",
		Description: "Traditional creamy fat for hard, long-lived bars.",
		SapNaOH:     0.140, SapKOH: 0.197, PricePerKG: 3.80,
		Properties: props(58, 8, 40, 8, 50, 45, 147),
		FattyAcids: acids(2, 3, 28, 22, 0, 36, 3, 1),
	},
	{
		Name:        "Lard",
		Description: "Gentle creamy lather and conditioning on a budget.",
		SapNaOH:     0.138, SapKOH: 0.194, PricePerKG: 3.20,
		Properties: props(42, 1, 52, 1, 41, 57, 139),
		FattyAcids: acids(0, 1, 28, 13, 0, 46, 6, 0),
	},
	{
		Name:        "Grapeseed Oil",
		Description: "Very light linoleic oil; short shelf life in soap.",
		SapNaOH:     0.129, SapKOH: 0.181, PricePerKG: 5.60,
		Properties: props(8, 0, 91, 0, 8, 131, 66),
		FattyAcids: acids(0, 0, 8, 4, 0, 20, 68, 0),
	},
	{
		Name:        "Hemp Seed Oil",
		Description: "Deep green conditioning oil, very polyunsaturated.",
		SapNaOH:     0.138, SapKOH: 0.193, PricePerKG: 13.20,
		Properties: props(9, 0, 90, 0, 9, 165, 39),
		FattyAcids: acids(0, 0, 6, 2, 0, 12, 57, 21),
	},
	{
		Name:        "Safflower Oil",
		Description: "High-linoleic conditioning oil similar to sunflower.",
		SapNaOH:     0.136, SapKOH: 0.190, PricePerKG: 4.80,
		Properties: props(9, 0, 91, 0, 9, 145, 47),
		FattyAcids: acids(0, 0, 7, 2, 0, 15, 75, 0),
	},
	{
		Name:        "Argan Oil",
		Description: "Luxury finishing oil from the Moroccan argan nut.",
		SapNaOH:     0.136, SapKOH: 0.191, PricePerKG: 32.00,
		Properties: props(18, 0, 82, 0, 18, 95, 95),
		FattyAcids: acids(0, 0, 14, 4, 0, 46, 34, 0),
	},
	{
		Name:        "Neem Oil",
		Description: "Medicinal, strongly scented specialty oil.",
		SapNaOH:     0.139, SapKOH: 0.195, PricePerKG: 8.90,
		Properties: props(44, 2, 56, 2, 42, 72, 124),
		FattyAcids: acids(0, 2, 21, 16, 0, 46, 12, 0),
	},
}

var builtinModifiers = []Modifier{
	{
		Name:                "Citric Acid",
		Category:            "chelator",
		Description:         "Prevents soap scum and slows rancidity; consumes lye as it reacts.",
		TypicalUsagePercent: 1, MinPercent: 0.5, MaxPercent: 3,
		UsageRateType:       UsagePercentOfOils,
		LyeAdjustmentFactor: 0.6,
		DissolveIn:          "water",
		Effects:             map[string]float64{Hardness: 1, Conditioning: 1},
	},
	{
		Name:                "Sodium Lactate",
		Category:            "hardener",
		Description:         "Liquid salt that hardens bars and speeds unmolding.",
		TypicalUsagePercent: 2, MinPercent: 1, MaxPercent: 4,
		UsageRateType: UsagePercentOfOils,
		DissolveIn:    "cooled lye solution",
		Effects:       map[string]float64{Hardness: 2},
	},
	{
		Name:                "Sugar",
		Category:            "lather booster",
		Description:         "Boosts bubbly lather; too much overheats the batter.",
		TypicalUsagePercent: 2, MinPercent: 1, MaxPercent: 4,
		UsageRateType: UsagePercentOfOils,
		DissolveIn:    "water",
		Effects:       map[string]float64{Bubbly: 3, Conditioning: 1},
	},
	{
		Name:                "Honey",
		Category:            "lather booster",
		Description:         "Humectant sugars for lather and a warm color.",
		TypicalUsagePercent: 1, MinPercent: 0.5, MaxPercent: 3,
		UsageRateType: UsagePercentOfOils,
		DissolveIn:    "light oils before trace",
		Effects:       map[string]float64{Bubbly: 2, Conditioning: 2, Creamy: 1},
	},
	{
		Name:                "Silk Amino Acids",
		Category:            "luxury",
		Description:         "Hydrolyzed silk for a slippery, creamy feel.",
		TypicalUsagePercent: 0.5, MinPercent: 0.25, MaxPercent: 1,
		UsageRateType: UsagePercentOfOils,
		DissolveIn:    "water",
		Effects:       map[string]float64{Creamy: 3, Conditioning: 2},
	},
	{
		Name:                "Tussah Silk Fibers",
		Category:            "luxury",
		Description:         "Raw silk fibers dissolved in hot lye solution.",
		TypicalUsagePercent: 0.1, MinPercent: 0.05, MaxPercent: 0.5,
		UsageRateType: UsagePercentOfOils,
		DissolveIn:    "hot lye solution",
		Effects:       map[string]float64{Creamy: 2},
	},
	{
		Name:                "Colloidal Oatmeal",
		Category:            "exfoliant",
		Description:         "Finely ground oats for soothing, gentle exfoliation.",
		TypicalUsagePercent: 1, MinPercent: 1, MaxPercent: 2,
		UsageRateType: UsageTablespoonsPerPound,
		DissolveIn:    "a splash of reserved oils",
		Effects:       map[string]float64{Conditioning: 2},
	},
	{
		Name:                "Kaolin Clay",
		Category:            "clay",
		Description:         "Mild white clay; anchors fragrance and adds slip.",
		TypicalUsagePercent: 1, MinPercent: 0.5, MaxPercent: 2,
		UsageRateType: UsageTablespoonsPerPound,
		DissolveIn:    "water",
		Effects:       map[string]float64{Creamy: 1, Hardness: 1},
	},
	{
		Name:                "Bentonite Clay",
		Category:            "clay",
		Description:         "Absorbent clay favored in shaving bars for razor glide.",
		TypicalUsagePercent: 1, MinPercent: 0.5, MaxPercent: 2,
		UsageRateType: UsageTablespoonsPerPound,
		DissolveIn:    "water",
		Effects:       map[string]float64{Creamy: 2},
	},
	{
		Name:                "Vitamin E Oil",
		Category:            "antioxidant",
		Description:         "Tocopherol antioxidant that extends shelf life.",
		TypicalUsagePercent: 0.5, MinPercent: 0.25, MaxPercent: 1,
		UsageRateType: UsagePercentOfOils,
		DissolveIn:    "oils at trace",
		Effects:       map[string]float64{Conditioning: 1},
	},
}

var builtinColorants = map[string][]Colorant{
	"pink": {
		{Name: "Rose Clay", Usage: "1 tsp per pound of oils", Notes: "Dusty rose; disperse in water."},
		{Name: "Madder Root Powder", Usage: "1-2 tsp per pound of oils", Notes: "Deepens toward brick red at higher rates."},
	},
	"red": {
		{Name: "Madder Root Powder", Usage: "2 tsp per pound of oils"},
		{Name: "Moroccan Red Clay", Usage: "1 tsp per pound of oils", Notes: "Earthy brick red."},
	},
	"orange": {
		{Name: "Annatto Seed Infusion", Usage: "infuse 1 tbsp seeds per cup of oil", Notes: "Strain before use."},
		{Name: "Paprika", Usage: "1 tsp per pound of oils", Notes: "Can speckle; infuse for an even tone."},
	},
	"yellow": {
		{Name: "Annatto Seed Infusion", Usage: "light infusion", Notes: "Warm gold at low rates."},
		{Name: "Turmeric", Usage: "0.5-1 tsp per pound of oils", Notes: "Fades toward gold as the bar cures."},
	},
	"green": {
		{Name: "French Green Clay", Usage: "1 tsp per pound of oils"},
		{Name: "Spirulina Powder", Usage: "1 tsp per pound of oils", Notes: "Fades in sunlight."},
	},
	"blue": {
		{Name: "Indigo Powder", Usage: "0.5-1 tsp per pound of oils", Notes: "Add to the lye solution for even color."},
	},
	"purple": {
		{Name: "Alkanet Root Powder", Usage: "1-2 tsp per pound of oils", Notes: "Shifts with the pH of the batter."},
	},
	"brown": {
		{Name: "Cocoa Powder", Usage: "1 tbsp per pound of oils"},
		{Name: "Ground Coffee", Usage: "1 tbsp per pound of oils", Notes: "Adds exfoliation."},
	},
	"white": {
		{Name: "Titanium Dioxide", Usage: "1 tsp per pound of oils", Notes: "Disperse in oil to avoid streaks."},
	},
	"black": {
		{Name: "Activated Charcoal", Usage: "1-2 tsp per pound of oils", Notes: "Can gray the lather at high rates."},
	},
}
