package palette

// Weathering describes accumulated environmental damage for one biome
// layer, scaled by campaign progress. Values are returned by value and
// never alias the underlying table.
type Weathering struct {
	Description string `json:"description"`
	Tint        Color  `json:"tint"`

	// Coverage/strength scalars in [0,1].
	DirtIntensity    float64 `json:"dirt_intensity"`
	FrostBuildup     float64 `json:"frost_buildup"`
	ScratchIntensity float64 `json:"scratch_intensity"`
	EdgeWear         float64 `json:"edge_wear"`
	AcidBurns        float64 `json:"acid_burns"`

	// Cumulative battle damage, monotonically increasing with progress.
	BattleDamage float64 `json:"battle_damage"`
}

// Weathering intensity scaling: fresh drops already show baseline wear,
// full accumulation only at campaign end. These are calibration
// constants; the asset tables were tuned against them.
const (
	WeatherScaleFloor = 0.4
	WeatherScaleSlope = 0.6

	// BattleDamage reaches 60% coverage by endgame.
	BattleDamageSlope = 0.6

	// Progress assigned to levels missing from the campaign order.
	UnknownLevelProgress = 0.5

	// Layer used for levels missing from the level map.
	FallbackLayer = "surface"
)

// Table is the immutable weathering lookup data: base profiles per biome
// layer, the level→layer map, and the campaign level ordering.
type Table struct {
	Layers   map[string]Weathering
	LevelMap map[string]string
	Campaign []string
}

// Default is the Kepler-442b calibration table.
var Default = &Table{
	Layers: map[string]Weathering{
		// Frozen ice wastes
		"ice": {
			Description:      "Frost buildup on joints, ice crystal deposits in crevices",
			Tint:             Color{0.70, 0.82, 0.92},
			DirtIntensity:    0.10, // minimal, cold and clean
			FrostBuildup:     0.45,
			ScratchIntensity: 0.30, // ice abrasion
			EdgeWear:         0.20,
			AcidBurns:        0.0,
		},
		// Volcanic canyon
		"volcanic": {
			Description:      "Volcanic ash coating, heat discoloration, molten splatter",
			Tint:             Color{0.40, 0.25, 0.15},
			DirtIntensity:    0.55, // heavy ash deposits
			FrostBuildup:     0.0,
			ScratchIntensity: 0.40,
			EdgeWear:         0.45, // heat warping
			AcidBurns:        0.10,
		},
		// Alien hive organic tunnels
		"hive": {
			Description:      "Chitin acid burns, bio-luminescent residue, organic slime",
			Tint:             Color{0.25, 0.35, 0.18},
			DirtIntensity:    0.50, // bio residue
			FrostBuildup:     0.0,
			ScratchIntensity: 0.35,
			EdgeWear:         0.30,
			AcidBurns:        0.55, // chitin acid pitting
		},
		// Human station / industrial
		"station": {
			Description:      "Hydraulic fluid, lubricant stains, concrete dust, sparks",
			Tint:             Color{0.30, 0.28, 0.25},
			DirtIntensity:    0.35,
			FrostBuildup:     0.0,
			ScratchIntensity: 0.50, // metal-on-metal combat
			EdgeWear:         0.45,
			AcidBurns:        0.05,
		},
		// Rocky arid surface between outposts
		"surface": {
			Description:      "Alien dust, fine grit abrasion, UV fading",
			Tint:             Color{0.45, 0.38, 0.30},
			DirtIntensity:    0.45,
			FrostBuildup:     0.0,
			ScratchIntensity: 0.35,
			EdgeWear:         0.30,
			AcidBurns:        0.08,
		},
	},

	LevelMap: map[string]string{
		"anchor-station":   "station",
		"landfall":         "surface", // fresh drop onto planet surface
		"fob-delta":        "station",
		"southern-ice":     "ice",
		"canyon-run":       "volcanic",
		"hive-assault":     "hive",
		"mining-depths":    "station",
		"brothers-in-arms": "surface",
		"the-breach":       "hive",
		"extraction":       "surface",
		"final-escape":     "station",
	},

	Campaign: []string{
		"landfall",         // Mission 1, fresh armor
		"anchor-station",   // Mission 2
		"fob-delta",        // Mission 3
		"southern-ice",     // Mission 4
		"canyon-run",       // Mission 5
		"hive-assault",     // Mission 6
		"mining-depths",    // Mission 7
		"brothers-in-arms", // Mission 8
		"the-breach",       // Mission 9
		"extraction",       // Mission 10
		"final-escape",     // Mission 11, battle-scarred veterans
	},
}

// CampaignProgress reports how far through the campaign a level is, 0.0
// for the first mission through 1.0 for the last. Levels not in the
// campaign order map to UnknownLevelProgress; tables evolve independently
// of code, so unknown identifiers are tolerated rather than rejected.
func (t *Table) CampaignProgress(levelID string) float64 {
	for i, id := range t.Campaign {
		if id == levelID {
			n := len(t.Campaign) - 1
			if n < 1 {
				n = 1
			}
			return float64(i) / float64(n)
		}
	}
	return UnknownLevelProgress
}

// WeatheringFor returns the weathering for a level at the given campaign
// progress. Intensities scale linearly from 40% at progress 0 to 100% at
// progress 1; the tint is not scaled. The result is a fresh copy.
func (t *Table) WeatheringFor(levelID string, progress float64) Weathering {
	layerName, ok := t.LevelMap[levelID]
	if !ok {
		layerName = FallbackLayer
	}
	w := t.Layers[layerName]

	scale := WeatherScaleFloor + WeatherScaleSlope*progress
	w.DirtIntensity *= scale
	w.FrostBuildup *= scale
	w.ScratchIntensity *= scale
	w.EdgeWear *= scale
	w.AcidBurns *= scale

	w.BattleDamage = progress * BattleDamageSlope

	return w
}

// Weathering looks up a level's weathering using its campaign position
// for progress.
func (t *Table) Weathering(levelID string) Weathering {
	return t.WeatheringFor(levelID, t.CampaignProgress(levelID))
}

// LevelPalette bundles everything the host needs to shade one level's
// marines: the armor scheme, scaled weathering, and campaign progress.
type LevelPalette struct {
	Level            string     `json:"level"`
	Armor            Scheme     `json:"armor"`
	Weathering       Weathering `json:"weathering"`
	CampaignProgress float64    `json:"campaign_progress"`
}

// PaletteFor returns the complete armor + weathering palette for a level.
func (t *Table) PaletteFor(levelID string) LevelPalette {
	return LevelPalette{
		Level:            levelID,
		Armor:            ArmorScheme,
		Weathering:       t.Weathering(levelID),
		CampaignProgress: t.CampaignProgress(levelID),
	}
}
