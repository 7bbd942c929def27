package texture

import "strings"

// Kind is the role a texture plays in a material.
type Kind string

const (
	KindDiffuse   Kind = "diffuse"
	KindEmissive  Kind = "emissive"
	KindNormal    Kind = "normal"
	KindAO        Kind = "ao"
	KindRoughness Kind = "roughness"
	KindMetallic  Kind = "metallic"
	KindUnknown   Kind = "unknown"
)

// classifyOrder fixes the priority: a name matching several categories
// takes the earliest one. Diffuse wins over normal, so a combined
// "DiffuseColor_Normal" bake still gets recolored.
var classifyOrder = []struct {
	kind     Kind
	keywords []string
}{
	{KindDiffuse, []string{"diffuse", "color", "basecolor", "albedo"}},
	{KindEmissive, []string{"emissive", "emission", "glow"}},
	{KindNormal, []string{"bump", "normal", "nrm"}},
	{KindAO, []string{"ao", "ambient", "occlusion"}},
	{KindRoughness, []string{"rough", "roughness"}},
	{KindMetallic, []string{"metal", "metallic", "metalness"}},
}

// Classify maps a texture name to its material role by case-insensitive
// substring match against filename conventions. Names matching nothing
// are KindUnknown; many textures are decorative or utility maps that
// are simply left alone.
func Classify(name string) Kind {
	lower := strings.ToLower(name)
	for _, c := range classifyOrder {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.kind
			}
		}
	}
	return KindUnknown
}
