package glb

import (
	"math"
	"testing"

	"github.com/qmuntal/gltf"
)

// boundsDoc builds a document with one unit-cube primitive (bounds from
// accessor min/max, no vertex data needed) under the given node.
func boundsDoc(node *gltf.Node) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Accessors = []*gltf.Accessor{{
		ComponentType: gltf.ComponentFloat,
		Type:          gltf.AccessorVec3,
		Count:         8,
		Min:           []float32{0, 0, 0},
		Max:           []float32{1, 1, 1},
	}}
	doc.Meshes = []*gltf.Mesh{{
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]uint32{gltf.POSITION: 0},
		}},
	}}
	node.Mesh = gltf.Index(0)
	doc.Nodes = []*gltf.Node{node}
	doc.Scenes[0].Nodes = []uint32{0}
	return doc
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestWorldBoundsIdentity(t *testing.T) {
	doc := boundsDoc(&gltf.Node{})
	b, ok := WorldBounds(doc)
	if !ok {
		t.Fatal("WorldBounds() found no geometry")
	}
	if !near(b.MaxDimension(), 1.0) {
		t.Errorf("MaxDimension() = %v, want 1", b.MaxDimension())
	}
}

func TestWorldBoundsTranslated(t *testing.T) {
	doc := boundsDoc(&gltf.Node{Translation: [3]float32{10, 0, 0}})
	b, ok := WorldBounds(doc)
	if !ok {
		t.Fatal("WorldBounds() found no geometry")
	}
	if !near(b.Min[0], 10) || !near(b.Max[0], 11) {
		t.Errorf("X bounds = [%v, %v], want [10, 11]", b.Min[0], b.Max[0])
	}
}

func TestWorldBoundsScaled(t *testing.T) {
	doc := boundsDoc(&gltf.Node{Scale: [3]float32{3, 1, 1}})
	b, ok := WorldBounds(doc)
	if !ok {
		t.Fatal("WorldBounds() found no geometry")
	}
	if !near(b.MaxDimension(), 3.0) {
		t.Errorf("MaxDimension() = %v, want 3", b.MaxDimension())
	}
}

func TestWorldBoundsNested(t *testing.T) {
	doc := boundsDoc(&gltf.Node{Translation: [3]float32{0, 5, 0}})
	// Wrap the mesh node in a parent that doubles scale.
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Scale:    [3]float32{2, 2, 2},
		Children: []uint32{0},
	})
	doc.Scenes[0].Nodes = []uint32{1}

	b, ok := WorldBounds(doc)
	if !ok {
		t.Fatal("WorldBounds() found no geometry")
	}
	if !near(b.Min[1], 10) || !near(b.Max[1], 12) {
		t.Errorf("Y bounds = [%v, %v], want [10, 12]", b.Min[1], b.Max[1])
	}
}

func TestWorldBoundsMatrixNode(t *testing.T) {
	// Column-major affine matrix translating by (0, 0, 7).
	doc := boundsDoc(&gltf.Node{Matrix: [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 7, 1,
	}})
	b, ok := WorldBounds(doc)
	if !ok {
		t.Fatal("WorldBounds() found no geometry")
	}
	if !near(b.Min[2], 7) || !near(b.Max[2], 8) {
		t.Errorf("Z bounds = [%v, %v], want [7, 8]", b.Min[2], b.Max[2])
	}
}

func TestWorldBoundsNoGeometry(t *testing.T) {
	doc := gltf.NewDocument()
	if _, ok := WorldBounds(doc); ok {
		t.Error("WorldBounds(empty) = ok, want none")
	}
}
