package glb

import "github.com/qmuntal/gltf"

// Compact rebuilds the document's binary data into a single buffer
// holding only the ranges live buffer views cover. Replacing embedded
// textures leaves their old bytes orphaned in the buffer; without this
// pass every retexture run would grow the output by the size of the
// original textures.
func Compact(doc *gltf.Document) {
	if len(doc.BufferViews) == 0 {
		doc.Buffers = nil
		return
	}

	// Extract every range before touching any view, so a malformed view
	// leaves the document untouched.
	ranges := make([][]byte, len(doc.BufferViews))
	for i, view := range doc.BufferViews {
		data, err := viewBytes(doc, view)
		if err != nil {
			return
		}
		ranges[i] = data
	}

	var packed []byte
	for i, view := range doc.BufferViews {
		for len(packed)%4 != 0 {
			packed = append(packed, 0)
		}
		view.Buffer = 0
		view.ByteOffset = uint32(len(packed))
		packed = append(packed, ranges[i]...)
	}

	doc.Buffers = []*gltf.Buffer{{
		ByteLength: uint32(len(packed)),
		Data:       packed,
	}}
}
