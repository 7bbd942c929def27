package glb

import "github.com/qmuntal/gltf"

// ApplyPBR overrides metallic and roughness factors on every material,
// creating the PBR block where a material lacks one. Returns the number
// of materials touched.
func ApplyPBR(doc *gltf.Document, metallic, roughness float64) int {
	for _, mat := range doc.Materials {
		if mat.PBRMetallicRoughness == nil {
			mat.PBRMetallicRoughness = &gltf.PBRMetallicRoughness{}
		}
		mat.PBRMetallicRoughness.MetallicFactor = gltf.Float(float32(metallic))
		mat.PBRMetallicRoughness.RoughnessFactor = gltf.Float(float32(roughness))
	}
	return len(doc.Materials)
}

// ImagesByTexture maps each image index to the texture indices sourcing
// it, so per-image changes can be reported against material slots.
func ImagesByTexture(doc *gltf.Document) map[int][]int {
	refs := make(map[int][]int)
	for ti, tex := range doc.Textures {
		if tex.Source != nil {
			img := int(*tex.Source)
			refs[img] = append(refs[img], ti)
		}
	}
	return refs
}
