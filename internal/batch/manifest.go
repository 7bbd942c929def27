package batch

import (
	"encoding/json"
	"os"

	"stellar-retexture/internal/palette"
)

// Manifest records what a retexture run produced, for the game's asset
// loader and for level designers mapping weathering onto shader params.
type Manifest struct {
	Pipeline       string                  `json:"pipeline"`
	ArmorScheme    string                  `json:"armor_scheme"`
	PlateColor     palette.Color           `json:"plate_color"`
	PlateMetallic  float64                 `json:"plate_metallic"`
	PlateRoughness float64                 `json:"plate_roughness"`
	Roles          map[string]ManifestRole `json:"roles"`

	// Present when the run targeted a specific campaign level.
	LevelPalette *palette.LevelPalette `json:"level_palette,omitempty"`
}

// ManifestRole describes one successfully retextured role.
type ManifestRole struct {
	Name          string        `json:"name"`
	Source        string        `json:"source"`
	Output        string        `json:"output"`
	EmissiveColor palette.Color `json:"emissive_color"`
}

// BuildManifest assembles the manifest from successful results. Level
// may be empty when the run is level-agnostic.
func BuildManifest(scheme palette.Scheme, results []Result, level string) Manifest {
	m := Manifest{
		Pipeline:       "stellar-retexture",
		ArmorScheme:    scheme.Name,
		PlateColor:     scheme.PlateColor,
		PlateMetallic:  scheme.PlateMetallic,
		PlateRoughness: scheme.PlateRoughness,
		Roles:          make(map[string]ManifestRole),
	}
	for _, r := range results {
		if !r.Success {
			continue
		}
		role := palette.Roles[r.Key]
		m.Roles[r.Key] = ManifestRole{
			Name:          role.Name,
			Source:        r.Source,
			Output:        r.Output,
			EmissiveColor: role.EmissiveColor,
		}
	}
	if level != "" {
		lp := palette.Default.PaletteFor(level)
		m.LevelPalette = &lp
	}
	return m
}

// WriteManifest writes retexture_manifest.json to the given path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
