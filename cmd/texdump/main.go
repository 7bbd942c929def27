// texdump extracts the textures embedded in a glTF/GLB file to WebP
// images, optionally previewing the tint a role would receive so the
// palette can be judged without a full pipeline run.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"

	"stellar-retexture/internal/glb"
	"stellar-retexture/internal/palette"
	"stellar-retexture/internal/texture"
	"stellar-retexture/internal/tint"
)

func main() {
	in := flag.String("in", "", "glTF/GLB file to dump")
	out := flag.String("out", "texdump", "Output directory for WebP files")
	role := flag.String("role", "", "Preview tint for this role (marine_soldier, marine_sergeant, ...)")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Usage: texdump -in model.glb [-out dir] [-role marine_soldier]")
		os.Exit(1)
	}

	var roleDef palette.Role
	if *role != "" {
		var ok bool
		if roleDef, ok = palette.Roles[*role]; !ok {
			fmt.Fprintf(os.Stderr, "Unknown role %q\n", *role)
			os.Exit(1)
		}
	}

	doc, err := glb.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(*out, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dumped, skipped := 0, 0
	for i, img := range doc.Images {
		name := img.Name
		if name == "" {
			name = fmt.Sprintf("image_%d", i)
		}
		kind := texture.Classify(name)

		data, err := glb.ImageData(doc, img)
		if err != nil {
			fmt.Printf("  skip %-30s %v\n", name, err)
			skipped++
			continue
		}
		decoded, err := texture.Decode(data)
		if err != nil {
			fmt.Printf("  skip %-30s %v\n", name, err)
			skipped++
			continue
		}

		if *role != "" {
			switch kind {
			case texture.KindDiffuse:
				decoded = preview(decoded, palette.ArmorScheme.PlateColor, palette.ArmorScheme.DiffuseTintStrength)
			case texture.KindEmissive:
				decoded = preview(decoded, roleDef.EmissiveColor, palette.ArmorScheme.EmissiveTintStrength)
			}
		}

		outPath := filepath.Join(*out, name+".webp")
		f, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := nativewebp.Encode(f, decoded, nil); err != nil {
			f.Close()
			fmt.Fprintf(os.Stderr, "Error: WebP encode %s: %v\n", name, err)
			os.Exit(1)
		}
		f.Close()

		b := decoded.Bounds()
		fmt.Printf("  %-10s %-30s %dx%d -> %s\n", kind, name, b.Dx(), b.Dy(), outPath)
		dumped++
	}

	fmt.Printf("Dumped %d textures (%d skipped)\n", dumped, skipped)
}

func preview(img *image.NRGBA, target palette.Color, strength float64) *image.NRGBA {
	out, err := tint.Apply(tint.FromNRGBA(img), [3]float64(target), strength)
	if err != nil {
		return img
	}
	return out.ToNRGBA()
}
