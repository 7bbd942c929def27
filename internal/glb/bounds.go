package glb

import (
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"stellar-retexture/internal/mathutil"
)

// Bounds is a world-space axis-aligned bounding box.
type Bounds struct {
	Min mathutil.Vec3
	Max mathutil.Vec3
}

// Size returns the box extents per axis.
func (b Bounds) Size() mathutil.Vec3 {
	return b.Max.Sub(b.Min)
}

// MaxDimension returns the largest extent.
func (b Bounds) MaxDimension() float64 {
	return b.Size().MaxComponent()
}

// WorldBounds computes the document's world-space bounding box by
// walking the node hierarchy and transforming each mesh primitive's
// position bounds. Returns false when the document has no positioned
// geometry.
func WorldBounds(doc *gltf.Document) (Bounds, bool) {
	b := Bounds{
		Min: mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max: mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
	found := false

	roots := sceneRoots(doc)
	for _, root := range roots {
		walkNode(doc, root, mathutil.Mat4Identity(), &b, &found)
	}
	return b, found
}

// sceneRoots returns the default scene's root nodes, or every node when
// the document declares no scenes (legal glTF, the node list is then the
// displayable set).
func sceneRoots(doc *gltf.Document) []uint32 {
	if len(doc.Scenes) > 0 {
		scene := 0
		if doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes) {
			scene = int(*doc.Scene)
		}
		return doc.Scenes[scene].Nodes
	}
	roots := make([]uint32, len(doc.Nodes))
	for i := range doc.Nodes {
		roots[i] = uint32(i)
	}
	return roots
}

func walkNode(doc *gltf.Document, idx uint32, parent mathutil.Mat4, b *Bounds, found *bool) {
	if int(idx) >= len(doc.Nodes) {
		return
	}
	node := doc.Nodes[idx]
	world := mathutil.Mat4Mul(parent, localMatrix(node))

	if node.Mesh != nil && int(*node.Mesh) < len(doc.Meshes) {
		for _, prim := range doc.Meshes[*node.Mesh].Primitives {
			lo, hi, ok := primitiveBounds(doc, prim)
			if !ok {
				continue
			}
			accumulateBox(world, lo, hi, b)
			*found = true
		}
	}

	for _, child := range node.Children {
		walkNode(doc, child, world, b, found)
	}
}

// localMatrix builds a node's local transform. Nodes carry either an
// explicit column-major matrix or a TRS triple; zero values mean the
// glTF defaults. Components widen to float64 at this boundary since
// the document stores float32.
func localMatrix(n *gltf.Node) mathutil.Mat4 {
	if n.Matrix != ([16]float32{}) {
		var cm [16]float64
		for i, v := range n.Matrix {
			cm[i] = float64(v)
		}
		m := mathutil.FromColumnMajor(cm)
		if !m.IsIdentity() {
			return m
		}
	}
	r := n.Rotation
	if r == ([4]float32{}) {
		r = [4]float32{0, 0, 0, 1}
	}
	s := n.Scale
	if s == ([3]float32{}) {
		s = [3]float32{1, 1, 1}
	}
	t := n.Translation
	return mathutil.FromTRS(
		mathutil.Vec3{float64(t[0]), float64(t[1]), float64(t[2])},
		mathutil.Quat{float64(r[0]), float64(r[1]), float64(r[2]), float64(r[3])},
		mathutil.Vec3{float64(s[0]), float64(s[1]), float64(s[2])},
	)
}

// primitiveBounds returns a primitive's local-space position bounds,
// preferring the accessor's declared min/max and scanning vertex data
// only when an exporter omitted them.
func primitiveBounds(doc *gltf.Document, prim *gltf.Primitive) (lo, hi mathutil.Vec3, ok bool) {
	accIdx, exists := prim.Attributes[gltf.POSITION]
	if !exists || int(accIdx) >= len(doc.Accessors) {
		return lo, hi, false
	}
	acc := doc.Accessors[accIdx]

	if len(acc.Min) == 3 && len(acc.Max) == 3 {
		return mathutil.Vec3{float64(acc.Min[0]), float64(acc.Min[1]), float64(acc.Min[2])},
			mathutil.Vec3{float64(acc.Max[0]), float64(acc.Max[1]), float64(acc.Max[2])}, true
	}

	positions, err := modeler.ReadPosition(doc, acc, nil)
	if err != nil || len(positions) == 0 {
		return lo, hi, false
	}
	lo = mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range positions {
		v := mathutil.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return lo, hi, true
}

// accumulateBox transforms the 8 corners of a local box into world space
// and folds them into the running bounds.
func accumulateBox(world mathutil.Mat4, lo, hi mathutil.Vec3, b *Bounds) {
	for i := 0; i < 8; i++ {
		corner := mathutil.Vec3{lo[0], lo[1], lo[2]}
		if i&1 != 0 {
			corner[0] = hi[0]
		}
		if i&2 != 0 {
			corner[1] = hi[1]
		}
		if i&4 != 0 {
			corner[2] = hi[2]
		}
		w := world.MulPoint(corner)
		b.Min = b.Min.Min(w)
		b.Max = b.Max.Max(w)
	}
}
