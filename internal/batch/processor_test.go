package batch

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"

	"stellar-retexture/internal/glb"
	"stellar-retexture/internal/palette"
	"stellar-retexture/internal/texture"
)

// saveMarineGLB writes a GLB with one solid-white embedded diffuse
// texture and one embedded normal map.
func saveMarineGLB(t *testing.T, path string, texSize int) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, texSize, texSize))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		t.Fatal(err)
	}
	payload := pngBuf.Bytes()

	doc := gltf.NewDocument()
	doc.Buffers = []*gltf.Buffer{{}}
	for i := 0; i < 2; i++ {
		start := len(doc.Buffers[0].Data)
		doc.Buffers[0].Data = append(doc.Buffers[0].Data, payload...)
		doc.BufferViews = append(doc.BufferViews, &gltf.BufferView{
			Buffer:     0,
			ByteOffset: uint32(start),
			ByteLength: uint32(len(payload)),
		})
	}
	doc.Buffers[0].ByteLength = uint32(len(doc.Buffers[0].Data))
	doc.Images = []*gltf.Image{
		{Name: "marine_diffuse", MimeType: "image/png", BufferView: gltf.Index(0)},
		{Name: "marine_normal", MimeType: "image/png", BufferView: gltf.Index(1)},
	}
	doc.Textures = []*gltf.Texture{
		{Source: gltf.Index(0)},
		{Source: gltf.Index(1)},
	}
	doc.Materials = []*gltf.Material{{
		Name: "armor",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorTexture: &gltf.TextureInfo{Index: 0},
		},
	}}

	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatalf("save test GLB: %v", err)
	}
}

func soldierJob() Job {
	return Job{
		Key:        "marine_soldier",
		Role:       palette.Roles["marine_soldier"],
		SourceFile: "soldier_a.glb",
	}
}

func TestRunRetexturesEmbedded(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	saveMarineGLB(t, filepath.Join(srcDir, "soldier_a.glb"), 8)

	cfg := Config{
		SourceDir: srcDir,
		OutputDir: outDir,
		Scheme:    palette.ArmorScheme,
		Workers:   2,
	}
	results := Run(cfg, []Job{soldierJob()})
	if len(results) != 1 {
		t.Fatalf("got %d results", len(results))
	}
	r := results[0]
	if !r.Success {
		t.Fatalf("run failed: %s", r.Error)
	}
	if r.TintedDiffuse != 1 || r.Kept != 1 {
		t.Errorf("TintedDiffuse = %d, Kept = %d, want 1 and 1", r.TintedDiffuse, r.Kept)
	}

	outPath := filepath.Join(outDir, "marine_soldier.glb")
	doc, err := glb.Open(outPath)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}

	// Diffuse got darker toward the plate color; the normal map is
	// untouched white.
	data, err := glb.ImageData(doc, doc.Images[0])
	if err != nil {
		t.Fatal(err)
	}
	tinted, err := texture.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if tinted.Pix[0] >= 200 {
		t.Errorf("diffuse red channel = %d, want tinted below 200", tinted.Pix[0])
	}
	if tinted.Pix[3] != 255 {
		t.Errorf("diffuse alpha = %d, want 255", tinted.Pix[3])
	}

	data, err = glb.ImageData(doc, doc.Images[1])
	if err != nil {
		t.Fatal(err)
	}
	kept, err := texture.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if kept.Pix[0] != 255 {
		t.Errorf("normal map changed: red = %d, want 255", kept.Pix[0])
	}

	// PBR overrides applied to all materials.
	pbr := doc.Materials[0].PBRMetallicRoughness
	if pbr.MetallicFactor == nil || *pbr.MetallicFactor != 0.65 {
		t.Error("metallic factor not applied")
	}
	if pbr.RoughnessFactor == nil || *pbr.RoughnessFactor != 0.42 {
		t.Error("roughness factor not applied")
	}
}

func TestRunMaxTextureSize(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	saveMarineGLB(t, filepath.Join(srcDir, "soldier_a.glb"), 64)

	cfg := Config{
		SourceDir:      srcDir,
		OutputDir:      outDir,
		Scheme:         palette.ArmorScheme,
		MaxTextureSize: 16,
		Workers:        1,
	}
	results := Run(cfg, []Job{soldierJob()})
	if !results[0].Success {
		t.Fatalf("run failed: %s", results[0].Error)
	}

	doc, err := glb.Open(filepath.Join(outDir, "marine_soldier.glb"))
	if err != nil {
		t.Fatal(err)
	}
	for i, img := range doc.Images {
		data, err := glb.ImageData(doc, img)
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := texture.Decode(data)
		if err != nil {
			t.Fatal(err)
		}
		if b := decoded.Bounds(); b.Dx() > 16 || b.Dy() > 16 {
			t.Errorf("image %d still %dx%d, want ≤16", i, b.Dx(), b.Dy())
		}
	}
}

func TestRunDryRun(t *testing.T) {
	srcDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")
	saveMarineGLB(t, filepath.Join(srcDir, "soldier_a.glb"), 8)

	cfg := Config{
		SourceDir: srcDir,
		OutputDir: outDir,
		Scheme:    palette.ArmorScheme,
		Workers:   1,
		DryRun:    true,
	}
	results := Run(cfg, []Job{soldierJob()})
	if !results[0].Success {
		t.Fatalf("dry run failed: %s", results[0].Error)
	}
	if _, err := os.Stat(filepath.Join(outDir, "marine_soldier.glb")); !os.IsNotExist(err) {
		t.Error("dry run wrote output file")
	}
}

func TestRunMissingSource(t *testing.T) {
	cfg := Config{
		SourceDir: t.TempDir(),
		OutputDir: t.TempDir(),
		Scheme:    palette.ArmorScheme,
		Workers:   1,
	}
	results := Run(cfg, []Job{soldierJob()})
	if results[0].Success {
		t.Fatal("run succeeded with missing source")
	}
	if results[0].Error == "" {
		t.Error("missing source produced no error message")
	}
}

func TestJobs(t *testing.T) {
	jobs, err := Jobs("")
	if err != nil {
		t.Fatalf("Jobs() error = %v", err)
	}
	if len(jobs) != len(palette.RoleKeys()) {
		t.Errorf("Jobs() = %d jobs, want %d", len(jobs), len(palette.RoleKeys()))
	}

	jobs, err = Jobs("marine_elite")
	if err != nil {
		t.Fatalf("Jobs(marine_elite) error = %v", err)
	}
	if len(jobs) != 1 || jobs[0].SourceFile != "cyber_soldier_a.glb" {
		t.Errorf("Jobs(marine_elite) = %+v", jobs)
	}

	if _, err := Jobs("marine_wizard"); err == nil {
		t.Error("Jobs(unknown role) = nil error")
	}
}
