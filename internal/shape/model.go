package shape

import (
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/texture"
)

// Prim is the mesh primitive a part is rendered with. The renderer keeps one
// cached mesh per primitive: a unit quad in the XZ plane facing +Y, a unit
// sphere (radius 0.5), and a unit strut (cylinder, radius 0.5, height 1,
// centered at the origin after the renderer's base offset).
type Prim int

const (
	PrimQuad Prim = iota
	PrimSphere
	PrimStrut
)

// Part is one renderable piece of a model: a primitive plus the transform that
// places it, and the face key whose texture it carries. An empty Face means
// the part always uses the fixed untextured material (handles, bag top).
//
// Transform order is scale, then rotate about Axis by AngleDeg, then translate
// to Center. All values are in scene units.
type Part struct {
	Prim     Prim
	Face     texture.FaceKey
	Center   [3]float32
	Scale    [3]float32
	Axis     [3]float32
	AngleDeg float32
}

// Model is the renderable output of Build: parts in draw order plus the lowest
// Y extent of the main body, which positions the contact-shadow plane. For box
// shapes the first six parts are the faces in canonical binding order:
// right, left, top, bottom, front, back.
type Model struct {
	Kind   Kind
	Parts  []Part
	Bottom float32
}

// FaceOrder is the canonical binding order for box faces. The renderer's
// per-face material slots are filled positionally from this order, so it must
// not change.
var FaceOrder = []texture.FaceKey{
	texture.FaceRight, texture.FaceLeft,
	texture.FaceTop, texture.FaceBottom,
	texture.FaceFront, texture.FaceBack,
}
