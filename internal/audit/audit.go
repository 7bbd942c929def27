// Package audit sanity-checks exported glTF/GLB assets: geometry
// presence, world-space scale, UV and material coverage. Exports from
// different art packs arrive with wildly different unit scales, and a
// model that renders as a speck (or a mountain) in-engine is cheaper to
// catch here than in playtesting.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/qmuntal/gltf"

	"stellar-retexture/internal/glb"
)

// Audit statuses, ordered from healthy to broken.
const (
	StatusOK           = "OK"
	StatusWarning      = "WARNING"
	StatusTiny         = "TINY"
	StatusNoGeometry   = "NO_GEOMETRY"
	StatusImportFailed = "IMPORT_FAILED"
)

// Report is the audit result for one asset file.
type Report struct {
	File          string     `json:"file"`
	Filename      string     `json:"filename,omitempty"`
	FileSizeKB    float64    `json:"file_size_kb,omitempty"`
	Status        string     `json:"status"`
	Error         string     `json:"error,omitempty"`
	ObjectCount   int        `json:"object_count,omitempty"`
	TotalVerts    int        `json:"total_verts,omitempty"`
	TotalFaces    int        `json:"total_faces,omitempty"`
	BBoxSize      [3]float64 `json:"bbox_size,omitempty"`
	MaxDimension  float64    `json:"max_dimension,omitempty"`
	HasUVs        bool       `json:"has_uvs"`
	MaterialCount int        `json:"material_count"`
	Materials     []string   `json:"materials,omitempty"`
	TextureImages int        `json:"texture_images"`
	Warnings      []string   `json:"warnings,omitempty"`
}

// File audits a single glTF/GLB file.
func File(path string) Report {
	rep := Report{File: path, Filename: filepath.Base(path)}

	if info, err := os.Stat(path); err == nil {
		rep.FileSizeKB = float64(info.Size()) / 1024.0
		rep.FileSizeKB = float64(int(rep.FileSizeKB*10+0.5)) / 10.0
	}

	doc, err := glb.Open(path)
	if err != nil {
		rep.Status = StatusImportFailed
		rep.Error = err.Error()
		return rep
	}

	if len(doc.Meshes) == 0 {
		rep.Status = StatusNoGeometry
		rep.ObjectCount = len(doc.Nodes)
		return rep
	}

	rep.ObjectCount = len(doc.Nodes)
	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if posIdx, ok := prim.Attributes[gltf.POSITION]; ok && int(posIdx) < len(doc.Accessors) {
				rep.TotalVerts += int(doc.Accessors[posIdx].Count)
			}
			if _, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
				rep.HasUVs = true
			}
			rep.TotalFaces += primitiveFaces(doc, prim)
		}
	}

	rep.MaterialCount = len(doc.Materials)
	for _, mat := range doc.Materials {
		rep.Materials = append(rep.Materials, mat.Name)
	}
	rep.TextureImages = len(glb.ImagesByTexture(doc))

	bounds, ok := glb.WorldBounds(doc)
	if ok {
		size := bounds.Size()
		rep.BBoxSize = [3]float64{size[0], size[1], size[2]}
		rep.MaxDimension = bounds.MaxDimension()
	}

	rep.Status = StatusOK
	switch {
	case ok && rep.MaxDimension < 0.01:
		rep.Status = StatusTiny
		rep.Warnings = append(rep.Warnings,
			fmt.Sprintf("Max dimension is %.6f - model appears tiny", rep.MaxDimension))
	case ok && rep.MaxDimension < 0.1:
		rep.Warnings = append(rep.Warnings,
			fmt.Sprintf("Small model: max dimension %.4f", rep.MaxDimension))
	case ok && rep.MaxDimension > 100:
		rep.Warnings = append(rep.Warnings,
			fmt.Sprintf("Large model: max dimension %.2f", rep.MaxDimension))
	}
	if !rep.HasUVs {
		rep.Warnings = append(rep.Warnings, "No UV maps found")
	}
	if rep.MaterialCount == 0 {
		rep.Warnings = append(rep.Warnings, "No materials assigned")
	}
	if rep.TotalVerts < 10 {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("Very low vertex count: %d", rep.TotalVerts))
	}
	if len(rep.Warnings) > 0 && rep.Status == StatusOK {
		rep.Status = StatusWarning
	}

	return rep
}

// primitiveFaces estimates the triangle count of one primitive.
func primitiveFaces(doc *gltf.Document, prim *gltf.Primitive) int {
	if prim.Indices != nil && int(*prim.Indices) < len(doc.Accessors) {
		return int(doc.Accessors[*prim.Indices].Count) / 3
	}
	if posIdx, ok := prim.Attributes[gltf.POSITION]; ok && int(posIdx) < len(doc.Accessors) {
		return int(doc.Accessors[posIdx].Count) / 3
	}
	return 0
}

// Dir audits every glTF/GLB file under dir, sorted by path.
func Dir(dir string) ([]Report, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".glb" || ext == ".gltf" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("audit: walk %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("audit: no glTF/GLB files under %s", dir)
	}
	sort.Strings(files)

	reports := make([]Report, len(files))
	for i, f := range files {
		reports[i] = File(f)
	}
	return reports, nil
}

// WriteReport writes the audit reports as indented JSON.
func WriteReport(path string, reports []Report) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
