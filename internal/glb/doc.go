// Package glb reads and rewrites glTF/GLB asset files: extracting and
// replacing embedded textures, overriding PBR material values, and
// measuring world-space geometry bounds.
package glb

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
)

// Open loads a glTF or GLB document. Relative buffer resources are
// resolved against the file's directory.
func Open(path string) (*gltf.Document, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("glb: open %s: %w", path, err)
	}
	return doc, nil
}

// Save writes the document, binary for .glb paths and JSON otherwise.
func Save(doc *gltf.Document, path string) error {
	var err error
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("glb: save %s: %w", path, err)
	}
	return nil
}

// viewBytes returns the byte range a buffer view covers.
func viewBytes(doc *gltf.Document, view *gltf.BufferView) ([]byte, error) {
	if int(view.Buffer) >= len(doc.Buffers) {
		return nil, fmt.Errorf("glb: buffer view references buffer %d of %d", view.Buffer, len(doc.Buffers))
	}
	buf := doc.Buffers[view.Buffer]
	end := int(view.ByteOffset) + int(view.ByteLength)
	if end > len(buf.Data) {
		return nil, fmt.Errorf("glb: buffer view [%d:%d] exceeds buffer data (%d bytes)",
			view.ByteOffset, end, len(buf.Data))
	}
	return buf.Data[view.ByteOffset:end], nil
}
