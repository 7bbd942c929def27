package glb

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/qmuntal/gltf"
)

func docWithEmbeddedImage(payload []byte) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Buffers = []*gltf.Buffer{{
		ByteLength: uint32(len(payload)),
		Data:       append([]byte(nil), payload...),
	}}
	doc.BufferViews = []*gltf.BufferView{{
		Buffer:     0,
		ByteOffset: 0,
		ByteLength: uint32(len(payload)),
	}}
	doc.Images = []*gltf.Image{{
		Name:       "plate_diffuse",
		MimeType:   "image/png",
		BufferView: gltf.Index(0),
	}}
	return doc
}

func TestImageDataFromBufferView(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	doc := docWithEmbeddedImage(payload)
	got, err := ImageData(doc, doc.Images[0])
	if err != nil {
		t.Fatalf("ImageData() error = %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("ImageData() = %v, want %v", got, payload)
	}
}

func TestImageDataFromDataURI(t *testing.T) {
	payload := []byte{9, 9, 9, 1}
	doc := gltf.NewDocument()
	img := &gltf.Image{
		URI: "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload),
	}
	got, err := ImageData(doc, img)
	if err != nil {
		t.Fatalf("ImageData() error = %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("ImageData() = %v, want %v", got, payload)
	}
}

func TestImageDataExternal(t *testing.T) {
	doc := gltf.NewDocument()
	img := &gltf.Image{URI: "textures/marine_albedo.png"}
	_, err := ImageData(doc, img)
	if !errors.Is(err, ErrExternalImage) {
		t.Errorf("ImageData(external) error = %v, want ErrExternalImage", err)
	}
}

func TestReplaceImageAndCompact(t *testing.T) {
	doc := docWithEmbeddedImage([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	replacement := []byte{42, 43, 44}

	if err := ReplaceImage(doc, 0, replacement, "image/png"); err != nil {
		t.Fatalf("ReplaceImage() error = %v", err)
	}
	got, err := ImageData(doc, doc.Images[0])
	if err != nil {
		t.Fatalf("ImageData() after replace: %v", err)
	}
	if !bytes.Equal(got, replacement) {
		t.Errorf("ImageData() = %v, want %v", got, replacement)
	}

	// The old payload is still in the buffer until compaction.
	if len(doc.Buffers[0].Data) <= len(replacement) {
		t.Fatalf("buffer unexpectedly compacted already: %d bytes", len(doc.Buffers[0].Data))
	}

	// Drop the stale original view, then compact.
	doc.BufferViews = doc.BufferViews[1:]
	*doc.Images[0].BufferView--
	Compact(doc)

	if got := len(doc.Buffers[0].Data); got != len(replacement) {
		t.Errorf("compacted buffer = %d bytes, want %d", got, len(replacement))
	}
	got, err = ImageData(doc, doc.Images[0])
	if err != nil {
		t.Fatalf("ImageData() after compact: %v", err)
	}
	if !bytes.Equal(got, replacement) {
		t.Errorf("ImageData() after compact = %v, want %v", got, replacement)
	}
}

func TestCompactAlignsViews(t *testing.T) {
	doc := gltf.NewDocument()
	doc.Buffers = []*gltf.Buffer{{ByteLength: 10, Data: []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}}}
	doc.BufferViews = []*gltf.BufferView{
		{Buffer: 0, ByteOffset: 0, ByteLength: 3},
		{Buffer: 0, ByteOffset: 3, ByteLength: 7},
	}
	Compact(doc)
	if doc.BufferViews[1].ByteOffset%4 != 0 {
		t.Errorf("second view offset = %d, want 4-byte aligned", doc.BufferViews[1].ByteOffset)
	}
	data, err := viewBytes(doc, doc.BufferViews[1])
	if err != nil {
		t.Fatalf("viewBytes error: %v", err)
	}
	if !bytes.Equal(data, []byte{4, 5, 6, 7, 8, 9, 10}) {
		t.Errorf("second view data = %v", data)
	}
}

func TestReplaceImageBadIndex(t *testing.T) {
	doc := gltf.NewDocument()
	if err := ReplaceImage(doc, 0, []byte{1}, "image/png"); err == nil {
		t.Error("ReplaceImage() on empty doc: want error, got nil")
	}
}

func TestApplyPBR(t *testing.T) {
	doc := gltf.NewDocument()
	doc.Materials = []*gltf.Material{
		{Name: "plates", PBRMetallicRoughness: &gltf.PBRMetallicRoughness{}},
		{Name: "visor"}, // no PBR block yet
	}
	n := ApplyPBR(doc, 0.65, 0.42)
	if n != 2 {
		t.Fatalf("ApplyPBR() = %d, want 2", n)
	}
	for _, mat := range doc.Materials {
		pbr := mat.PBRMetallicRoughness
		if pbr == nil || pbr.MetallicFactor == nil || pbr.RoughnessFactor == nil {
			t.Fatalf("material %q missing PBR factors", mat.Name)
		}
		if *pbr.MetallicFactor != 0.65 || *pbr.RoughnessFactor != 0.42 {
			t.Errorf("material %q factors = %v/%v, want 0.65/0.42",
				mat.Name, *pbr.MetallicFactor, *pbr.RoughnessFactor)
		}
	}
}

func TestImagesByTexture(t *testing.T) {
	doc := gltf.NewDocument()
	doc.Textures = []*gltf.Texture{
		{Source: gltf.Index(0)},
		{Source: gltf.Index(0)},
		{Source: gltf.Index(2)},
		{},
	}
	refs := ImagesByTexture(doc)
	if len(refs[0]) != 2 || len(refs[2]) != 1 {
		t.Errorf("ImagesByTexture() = %v", refs)
	}
}
