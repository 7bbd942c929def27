package texture

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		want Kind
	}{
		{"Marine_Albedo_2k", KindDiffuse},
		{"marine_BaseColor", KindDiffuse},
		{"visor_EMISSION", KindEmissive},
		{"helmet_glow_map", KindEmissive},
		{"armor_nrm", KindNormal},
		{"plate_Bump", KindNormal},
		{"suit_AmbientOcclusion", KindAO},
		{"plating_rough", KindRoughness},
		{"trim_Metalness", KindMetallic},
		{"LightmapUV", KindUnknown},
		{"", KindUnknown},
	}
	for _, c := range cases {
		if got := Classify(c.name); got != c.want {
			t.Errorf("Classify(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestClassifyPriority(t *testing.T) {
	// A name matching both diffuse and normal classifies by priority.
	if got := Classify("Character_DiffuseColor_Normal"); got != KindDiffuse {
		t.Errorf("Classify(DiffuseColor_Normal) = %q, want %q", got, KindDiffuse)
	}
	// Emissive beats normal too.
	if got := Classify("glow_bump"); got != KindEmissive {
		t.Errorf("Classify(glow_bump) = %q, want %q", got, KindEmissive)
	}
}
