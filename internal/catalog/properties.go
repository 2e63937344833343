package catalog

// Soap property names shared by the calculator, the allocator, and the
// report builder.
const (
	Hardness     = "hardness"
	Cleansing    = "cleansing"
	Conditioning = "conditioning"
	Bubbly       = "bubbly"
	Creamy       = "creamy"
	Iodine       = "iodine"
	INS          = "ins"
)

// PropertyNames lists every soap property in report order.
var PropertyNames = []string{Hardness, Cleansing, Conditioning, Bubbly, Creamy, Iodine, INS}

// TargetProperties lists the properties the allocator accepts as targets.
var TargetProperties = []string{Hardness, Cleansing, Conditioning, Bubbly, Creamy}

// FattyAcidNames lists the tracked fatty acids in report order.
var FattyAcidNames = []string{
	"lauric",
	"myristic",
	"palmitic",
	"stearic",
	"ricinoleic",
	"oleic",
	"linoleic",
	"linolenic",
}

// recommendedRanges are the conventional quality windows for a balanced
// bar. The five target properties double as the normalization ranges for
// the allocator's factor math.
var recommendedRanges = map[string]Range{
	Hardness:     {Min: 29, Max: 54},
	Cleansing:    {Min: 12, Max: 22},
	Conditioning: {Min: 44, Max: 69},
	Bubbly:       {Min: 14, Max: 46},
	Creamy:       {Min: 16, Max: 48},
	Iodine:       {Min: 41, Max: 70},
	INS:          {Min: 136, Max: 165},
}
