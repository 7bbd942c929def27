package batch

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"stellar-retexture/internal/glb"
	"stellar-retexture/internal/logger"
	"stellar-retexture/internal/palette"
	"stellar-retexture/internal/postprocess"
	"stellar-retexture/internal/texture"
	"stellar-retexture/internal/tint"
)

// Config holds all shared resources for a batch run.
type Config struct {
	SourceDir      string
	OutputDir      string
	Textures       *texture.Cache // resolves external glTF texture URIs; may be nil
	Scheme         palette.Scheme
	MaxTextureSize int
	Workers        int
	DryRun         bool
}

// Job is one role's retexture work item.
type Job struct {
	Key        string
	Role       palette.Role
	SourceFile string
}

// Result holds the outcome of processing one role.
type Result struct {
	Key            string
	Source         string
	Output         string
	Success        bool
	TintedDiffuse  int
	TintedEmissive int
	Kept           int
	Error          string
}

// Jobs builds the work list from the role tables, restricted to one
// role when roleKey is non-empty.
func Jobs(roleKey string) ([]Job, error) {
	keys := palette.RoleKeys()
	if roleKey != "" {
		if _, ok := palette.Roles[roleKey]; !ok {
			return nil, fmt.Errorf("batch: unknown role %q (want one of %s)",
				roleKey, strings.Join(keys, ", "))
		}
		keys = []string{roleKey}
	}
	jobs := make([]Job, len(keys))
	for i, k := range keys {
		jobs[i] = Job{Key: k, Role: palette.Roles[k], SourceFile: palette.SourceGLB[k]}
	}
	return jobs, nil
}

// Run processes all jobs using a worker pool.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					logger.Log.Info("progress",
						zap.Int64("done", p),
						zap.Int("total", total),
						zap.Duration("elapsed", time.Since(start)))
				}
			}
		}
	}()

	// Worker pool
	jobChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(cfg Config, job Job) Result {
	res := Result{
		Key:    job.Key,
		Source: job.SourceFile,
		Output: job.Key + ".glb",
	}
	fail := func(err error) Result {
		res.Error = err.Error()
		return res
	}

	srcPath := filepath.Join(cfg.SourceDir, job.SourceFile)
	if _, err := os.Stat(srcPath); os.IsNotExist(err) {
		return fail(fmt.Errorf("source not found: %s", job.SourceFile))
	}

	doc, err := glb.Open(srcPath)
	if err != nil {
		return fail(err)
	}

	log := logger.Log.With(zap.String("role", job.Key))
	log.Info("imported",
		zap.Int("meshes", len(doc.Meshes)),
		zap.Int("materials", len(doc.Materials)),
		zap.Int("images", len(doc.Images)))

	for i, img := range doc.Images {
		kind := texture.Classify(imageName(img.Name, img.URI))

		var target palette.Color
		var strength float64
		tinted := false
		switch kind {
		case texture.KindDiffuse:
			target, strength, tinted = cfg.Scheme.PlateColor, cfg.Scheme.DiffuseTintStrength, true
		case texture.KindEmissive:
			target, strength, tinted = job.Role.EmissiveColor, cfg.Scheme.EmissiveTintStrength, true
		}

		if err := retexImage(cfg, doc, i, target, strength, tinted, log); err != nil {
			return fail(fmt.Errorf("image %s: %w", imageName(img.Name, img.URI), err))
		}
		switch {
		case tinted && kind == texture.KindDiffuse:
			res.TintedDiffuse++
			log.Debug("tinted diffuse", zap.String("image", imageName(img.Name, img.URI)))
		case tinted:
			res.TintedEmissive++
			log.Debug("tinted emissive", zap.String("image", imageName(img.Name, img.URI)))
		default:
			res.Kept++
			log.Debug("kept", zap.String("kind", string(kind)), zap.String("image", imageName(img.Name, img.URI)))
		}
	}

	glb.ApplyPBR(doc, cfg.Scheme.PlateMetallic, cfg.Scheme.PlateRoughness)
	glb.Compact(doc)

	outPath := filepath.Join(cfg.OutputDir, res.Output)
	if cfg.DryRun {
		log.Info("dry run, skipping export", zap.String("output", outPath))
		res.Success = true
		return res
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fail(err)
	}
	if err := glb.Save(doc, outPath); err != nil {
		return fail(err)
	}

	res.Success = true
	return res
}

// retexImage tints and/or resizes one document image in place. Images
// held in external files are decoded through the texture cache and the
// processed copies written under the output directory so the exported
// document stays self-contained.
func retexImage(cfg Config, doc *gltf.Document, idx int, target palette.Color, strength float64, tinted bool, log *zap.Logger) error {
	img := doc.Images[idx]

	data, err := glb.ImageData(doc, img)
	switch {
	case err == nil:
		if !tinted && cfg.MaxTextureSize <= 0 {
			return nil
		}
		decoded, err := texture.Decode(data)
		if err != nil {
			return err
		}
		processed, changed, err := processPixels(cfg, decoded, target, strength, tinted)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		return glb.ReplaceImage(doc, idx, encodePNG(processed), "image/png")

	case errors.Is(err, glb.ErrExternalImage):
		return retexExternal(cfg, doc, idx, target, strength, tinted, log)

	default:
		return err
	}
}

// retexExternal handles an image referenced by URI rather than embedded
// bytes: tinted textures are rewritten, untouched ones copied through.
func retexExternal(cfg Config, doc *gltf.Document, idx int, target palette.Color, strength float64, tinted bool, log *zap.Logger) error {
	img := doc.Images[idx]
	if cfg.Textures == nil {
		log.Warn("no texture dir configured, leaving external reference", zap.String("uri", img.URI))
		return nil
	}
	srcPath, ok := cfg.Textures.Path(img.URI)
	if !ok {
		log.Warn("external texture not found", zap.String("uri", img.URI))
		return nil
	}

	stem := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	relOut := filepath.Join("textures", stem+".png")
	absOut := filepath.Join(cfg.OutputDir, relOut)

	if !tinted && cfg.MaxTextureSize <= 0 {
		// Copy through unchanged so relative references survive.
		if !cfg.DryRun {
			if err := copyFile(srcPath, filepath.Join(cfg.OutputDir, "textures", filepath.Base(srcPath))); err != nil {
				return err
			}
		}
		img.URI = filepath.ToSlash(filepath.Join("textures", filepath.Base(srcPath)))
		return nil
	}

	decoded := cfg.Textures.Resolve(img.URI)
	if decoded == nil {
		return fmt.Errorf("decode external texture %s", srcPath)
	}
	processed, _, err := processPixels(cfg, decoded, target, strength, tinted)
	if err != nil {
		return err
	}
	if !cfg.DryRun {
		if err := os.MkdirAll(filepath.Dir(absOut), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(absOut, encodePNG(processed), 0644); err != nil {
			return err
		}
	}
	img.URI = filepath.ToSlash(relOut)
	img.MimeType = "image/png"
	return nil
}

// processPixels runs the tint and size constraint over one decoded
// texture. The bool reports whether anything changed.
func processPixels(cfg Config, img *image.NRGBA, target palette.Color, strength float64, tinted bool) (*image.NRGBA, bool, error) {
	out := img
	if tinted {
		buf, err := tint.Apply(tint.FromNRGBA(out), [3]float64(target), strength)
		if err != nil {
			return nil, false, err
		}
		out = buf.ToNRGBA()
	}
	resized := postprocess.ConstrainSize(out, cfg.MaxTextureSize)
	changed := tinted || resized != out
	return resized, changed, nil
}

func encodePNG(img *image.NRGBA) []byte {
	var buf bytes.Buffer
	// Encoding to memory cannot fail short of OOM.
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}

// imageName picks a human-readable identifier for an image record.
func imageName(name, uri string) string {
	if name != "" {
		return name
	}
	if uri != "" && !strings.HasPrefix(uri, "data:") {
		return filepath.Base(uri)
	}
	return "(unnamed)"
}
