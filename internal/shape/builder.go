package shape

import (
	"github.com/chewxy/math32"

	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/dimension"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/texture"
)

// UnitsPerCm converts user-facing centimeters to scene units. Rendering only;
// the data model and UI never see scene units.
const UnitsPerCm float32 = 0.1

// Bag handle proportions, relative to the bag body.
const (
	handleArcSegments   = 12
	handleArcRadiusFrac = 0.18  // of width
	handleThicknessFrac = 0.025 // of width
	handleSupportFrac   = 0.1   // of height
	handleOffsetFrac    = 0.25  // of depth, each side
)

// Build maps shape kind, dimensions and the current face bindings to a
// renderable model, centered at the origin. Face keys in bound that are not
// valid for the kind are ignored; bound faces with no texture fall back to the
// default material at draw time, so bound only matters to callers inspecting
// the result.
func Build(kind Kind, dims dimension.Dimensions, bound map[texture.FaceKey]bool) Model {
	switch kind {
	case Sphere:
		return buildSphere(dims)
	case Bag:
		return buildBag(dims)
	default:
		return buildCube(dims)
	}
}

func buildCube(dims dimension.Dimensions) Model {
	w := float32(dims.Width) * UnitsPerCm
	h := float32(dims.Height) * UnitsPerCm
	d := float32(dims.Depth) * UnitsPerCm
	return Model{
		Kind:   Cube,
		Parts:  boxFaces(w, h, d, nil),
		Bottom: -h / 2,
	}
}

func buildSphere(dims dimension.Dimensions) Model {
	dia := float32(dims.Diameter) * UnitsPerCm
	return Model{
		Kind: Sphere,
		Parts: []Part{{
			Prim:  PrimSphere,
			Face:  texture.FaceMap,
			Scale: [3]float32{dia, dia, dia},
		}},
		Bottom: -dia / 2,
	}
}

func buildBag(dims dimension.Dimensions) Model {
	w := float32(dims.Width) * UnitsPerCm
	h := float32(dims.Height) * UnitsPerCm
	d := float32(dims.Depth) * UnitsPerCm
	// A bag's top is open and never carries a texture, whatever the map says.
	parts := boxFaces(w, h, d, map[texture.FaceKey]bool{texture.FaceTop: true})
	zOff := d * handleOffsetFrac
	parts = append(parts, handleAssembly(w, h, zOff)...)
	parts = append(parts, handleAssembly(w, h, -zOff)...)
	return Model{Kind: Bag, Parts: parts, Bottom: -h / 2}
}

// boxFaces emits the six faces of a w×h×d box in canonical binding order
// (right, left, top, bottom, front, back). Faces listed in untextured keep an
// empty Face key and always render with the default material.
func boxFaces(w, h, d float32, untextured map[texture.FaceKey]bool) []Part {
	faces := []Part{
		{Face: texture.FaceRight, Center: [3]float32{w / 2, 0, 0}, Scale: [3]float32{h, 1, d}, Axis: [3]float32{0, 0, 1}, AngleDeg: -90},
		{Face: texture.FaceLeft, Center: [3]float32{-w / 2, 0, 0}, Scale: [3]float32{h, 1, d}, Axis: [3]float32{0, 0, 1}, AngleDeg: 90},
		{Face: texture.FaceTop, Center: [3]float32{0, h / 2, 0}, Scale: [3]float32{w, 1, d}},
		{Face: texture.FaceBottom, Center: [3]float32{0, -h / 2, 0}, Scale: [3]float32{w, 1, d}, Axis: [3]float32{1, 0, 0}, AngleDeg: 180},
		{Face: texture.FaceFront, Center: [3]float32{0, 0, d / 2}, Scale: [3]float32{w, 1, h}, Axis: [3]float32{1, 0, 0}, AngleDeg: 90},
		{Face: texture.FaceBack, Center: [3]float32{0, 0, -d / 2}, Scale: [3]float32{w, 1, h}, Axis: [3]float32{1, 0, 0}, AngleDeg: -90},
	}
	for i := range faces {
		faces[i].Prim = PrimQuad
		if untextured[faces[i].Face] {
			faces[i].Face = ""
		}
	}
	return faces
}

// handleAssembly builds one carrying handle at the top center of a bag,
// offset along the depth axis: two straight supports rising from the top face
// and a half-circle arc joining them, approximated by straight strut segments.
func handleAssembly(w, h, zOff float32) []Part {
	radius := w * handleArcRadiusFrac
	thick := w * handleThicknessFrac
	support := h * handleSupportFrac
	topY := h / 2
	arcY := topY + support

	parts := make([]Part, 0, handleArcSegments+2)
	step := math32.Pi / handleArcSegments
	chord := 2 * radius * math32.Sin(step/2)
	for i := 0; i < handleArcSegments; i++ {
		mid := (float32(i) + 0.5) * step
		parts = append(parts, Part{
			Prim: PrimStrut,
			Center: [3]float32{
				radius * math32.Cos(mid),
				arcY + radius*math32.Sin(mid),
				zOff,
			},
			Scale:    [3]float32{thick, chord, thick},
			Axis:     [3]float32{0, 0, 1},
			AngleDeg: mid * 180 / math32.Pi,
		})
	}
	for _, x := range []float32{radius, -radius} {
		parts = append(parts, Part{
			Prim:   PrimStrut,
			Center: [3]float32{x, topY + support/2, zOff},
			Scale:  [3]float32{thick, support, thick},
		})
	}
	return parts
}
