package glb

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/qmuntal/gltf"
)

// ErrExternalImage marks an image stored as an external file reference
// rather than inside the document. The caller resolves those against a
// texture directory index.
var ErrExternalImage = errors.New("glb: image references an external file")

// ImageData extracts the encoded bytes of an image, from its buffer view
// or embedded data URI.
func ImageData(doc *gltf.Document, img *gltf.Image) ([]byte, error) {
	if img.BufferView != nil {
		if int(*img.BufferView) >= len(doc.BufferViews) {
			return nil, fmt.Errorf("glb: image %q references view %d of %d",
				img.Name, *img.BufferView, len(doc.BufferViews))
		}
		return viewBytes(doc, doc.BufferViews[*img.BufferView])
	}
	if strings.HasPrefix(img.URI, "data:") {
		comma := strings.IndexByte(img.URI, ',')
		if comma < 0 || !strings.Contains(img.URI[:comma], ";base64") {
			return nil, fmt.Errorf("glb: image %q has unsupported data URI", img.Name)
		}
		data, err := base64.StdEncoding.DecodeString(img.URI[comma+1:])
		if err != nil {
			return nil, fmt.Errorf("glb: image %q data URI: %w", img.Name, err)
		}
		return data, nil
	}
	if img.URI != "" {
		return nil, fmt.Errorf("%w: %s", ErrExternalImage, img.URI)
	}
	return nil, fmt.Errorf("glb: image %q has no buffer view or URI", img.Name)
}

// ReplaceImage swaps an image's payload for new encoded bytes, appending
// them to the binary buffer and repointing the image's view. Stale bytes
// from the old view remain in the buffer until Compact runs.
func ReplaceImage(doc *gltf.Document, idx int, data []byte, mimeType string) error {
	if idx < 0 || idx >= len(doc.Images) {
		return fmt.Errorf("glb: image index %d of %d", idx, len(doc.Images))
	}
	view := appendView(doc, data)
	img := doc.Images[idx]
	img.BufferView = gltf.Index(view)
	img.MimeType = mimeType
	img.URI = ""
	return nil
}

// appendView appends data to buffer 0 on a 4-byte alignment and returns
// the index of a new buffer view covering it.
func appendView(doc *gltf.Document, data []byte) uint32 {
	if len(doc.Buffers) == 0 {
		doc.Buffers = append(doc.Buffers, &gltf.Buffer{})
	}
	buf := doc.Buffers[0]
	for len(buf.Data)%4 != 0 {
		buf.Data = append(buf.Data, 0)
	}
	offset := uint32(len(buf.Data))
	buf.Data = append(buf.Data, data...)
	buf.ByteLength = uint32(len(buf.Data))

	doc.BufferViews = append(doc.BufferViews, &gltf.BufferView{
		Buffer:     0,
		ByteOffset: offset,
		ByteLength: uint32(len(data)),
	})
	return uint32(len(doc.BufferViews) - 1)
}
