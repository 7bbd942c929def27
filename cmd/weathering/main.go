// weathering prints the armor + weathering palette for campaign levels
// as JSON, for mapping onto shader parameters on the host side.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"stellar-retexture/internal/palette"
)

func main() {
	level := flag.String("level", "", "Campaign level id (default: all levels in campaign order)")
	progress := flag.Float64("progress", -1, "Override campaign progress in [0,1] (default: level's campaign position)")
	flag.Parse()

	var palettes []palette.LevelPalette
	if *level != "" {
		palettes = []palette.LevelPalette{levelPalette(*level, *progress)}
	} else {
		for _, id := range palette.Default.Campaign {
			palettes = append(palettes, levelPalette(id, *progress))
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	var err error
	if len(palettes) == 1 {
		err = enc.Encode(palettes[0])
	} else {
		err = enc.Encode(palettes)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func levelPalette(id string, progress float64) palette.LevelPalette {
	if progress < 0 {
		return palette.Default.PaletteFor(id)
	}
	return palette.LevelPalette{
		Level:            id,
		Armor:            palette.ArmorScheme,
		Weathering:       palette.Default.WeatheringFor(id, progress),
		CampaignProgress: progress,
	}
}
