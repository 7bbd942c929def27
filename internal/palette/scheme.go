// Package palette holds the armor color scheme and planet weathering
// tables for the Stellar Descent marine retexture pipeline.
//
// All colors are RGB in the 0-1 range. The tables are fixed calibration
// data: marines share one standard-issue armor scheme, role markings use
// muted earth tones, and weathering accumulates per biome over the course
// of the campaign.
package palette

// Color is an RGB triple with each channel in [0,1].
type Color [3]float64

// Scheme is the standard-issue armor color scheme shared by all marines.
type Scheme struct {
	Name string `json:"name"`

	// Primary hardshell plates: dark warm brown-gunmetal that blends
	// with rocky arid terrain, volcanic ash, and station grime.
	PlateColor     Color   `json:"plate_color"`
	PlateMetallic  float64 `json:"plate_metallic"`
	PlateRoughness float64 `json:"plate_roughness"`

	// Under-armor joint mesh, near-black technical fabric.
	UndersuitColor     Color   `json:"undersuit_color"`
	UndersuitMetallic  float64 `json:"undersuit_metallic"`
	UndersuitRoughness float64 `json:"undersuit_roughness"`

	// Visor HUD, amber tactical display.
	VisorColor    Color   `json:"visor_color"`
	VisorEmission float64 `json:"visor_emission"`

	// Trim piping on armor edges.
	TrimColor Color `json:"trim_color"`

	// How far textures shift toward the scheme colors during retexture.
	DiffuseTintStrength  float64 `json:"diffuse_tint_strength"`
	EmissiveTintStrength float64 `json:"emissive_tint_strength"`
}

// Role describes one marine role's markings: shoulder trim and insignia
// colors, stripe count, and which armor variant the role wears.
type Role struct {
	Name          string
	ShoulderColor Color
	EmissiveColor Color
	StripeCount   int
	ArmorVariant  string
}

// ArmorScheme is the 7th Colonial Marine Regiment standard issue.
var ArmorScheme = Scheme{
	Name: "UNSC Stellar Descent - 7th Colonial Marine Regiment",

	PlateColor:     Color{0.14, 0.11, 0.08},
	PlateMetallic:  0.65,
	PlateRoughness: 0.42,

	UndersuitColor:     Color{0.06, 0.05, 0.04},
	UndersuitMetallic:  0.0,
	UndersuitRoughness: 0.85,

	VisorColor:    Color{0.75, 0.55, 0.08},
	VisorEmission: 2.5,

	TrimColor: Color{0.22, 0.20, 0.14},

	DiffuseTintStrength:  0.72,
	EmissiveTintStrength: 0.80,
}

// Roles maps role keys to their markings. All earth tones, no bright
// blues, silvers, or neon colors.
var Roles = map[string]Role{
	"marine_soldier": {
		Name:          "Private",
		ShoulderColor: Color{0.45, 0.35, 0.20},
		EmissiveColor: Color{0.45, 0.35, 0.20},
		StripeCount:   0,
		ArmorVariant:  "standard",
	},
	"marine_sergeant": {
		Name:          "Sergeant",
		ShoulderColor: Color{0.55, 0.40, 0.08},
		EmissiveColor: Color{0.55, 0.40, 0.08},
		StripeCount:   3,
		ArmorVariant:  "standard",
	},
	"marine_elite": {
		Name:          "Spec-Ops",
		ShoulderColor: Color{0.60, 0.15, 0.08},
		EmissiveColor: Color{0.60, 0.15, 0.08},
		StripeCount:   1,
		ArmorVariant:  "heavy",
	},
	"marine_crusader": {
		Name:          "Crusader",
		ShoulderColor: Color{0.50, 0.30, 0.12},
		EmissiveColor: Color{0.50, 0.30, 0.12},
		StripeCount:   2,
		ArmorVariant:  "heavy",
	},
}

// SourceGLB maps role keys to the original space-marines exported GLBs.
// The _a/_b/_c variants carry different texture sets; _a is the default.
var SourceGLB = map[string]string{
	"marine_soldier":  "soldier_a.glb",
	"marine_sergeant": "sargent_a.glb",
	"marine_elite":    "cyber_soldier_a.glb",
	"marine_crusader": "crusader_a.glb",
}

// RoleKeys returns the role keys in a stable order.
func RoleKeys() []string {
	return []string{"marine_soldier", "marine_sergeant", "marine_elite", "marine_crusader"}
}
