package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// shadowPlane is a ground-plane proxy: a quad carrying a radial gradient so a
// soft shadow sits under the object without a physical floor. The quad tracks
// the model's bottom extent each frame.
type shadowPlane struct {
	tex   rl.Texture2D
	mesh  rl.Mesh
	mtl   rl.Material
	ready bool
}

const (
	shadowTexSize = 256
	// Shadow quad side relative to the object's largest horizontal extent.
	shadowSpread = 2.2
	// Lift above the ground position to avoid z-fighting with the bottom face.
	shadowLift = 0.002
)

func (p *shadowPlane) ensure() {
	if p.ready {
		return
	}
	img := rl.GenImageGradientRadial(shadowTexSize, shadowTexSize, 0,
		rl.NewColor(0, 0, 0, 110), rl.NewColor(0, 0, 0, 0))
	p.tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(p.tex, rl.FilterBilinear)
	p.mesh = rl.GenMeshPlane(1, 1, 1, 1)
	p.mtl = rl.LoadMaterialDefault()
	rl.SetMaterialTexture(&p.mtl, rl.MapAlbedo, p.tex)
	p.ready = true
}

// draw renders the contact shadow at ground level y with the given horizontal
// extent (scene units).
func (p *shadowPlane) draw(y, extent float32) {
	p.ensure()
	side := extent * shadowSpread
	if side <= 0 {
		return
	}
	scale := rl.MatrixScale(side, 1, side)
	trans := rl.MatrixTranslate(0, y+shadowLift, 0)
	rl.DrawMesh(p.mesh, p.mtl, rl.MatrixMultiply(scale, trans))
}
