// Package scene assembles camera, lighting, environment, the current shape
// model and the contact-shadow plane into one renderable frame, and exposes
// the screenshot capture operation.
package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/session"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/shape"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/texture"
)

// Orbit control tuning.
const (
	orbitSensitivity = 0.005
	panSensitivity   = 0.002
	zoomStep         = 0.1
	minDistance      = 0.4
	maxDistance      = 60
	// Vertical orbit clamp: never below the horizon plane, never fully
	// vertical (gimbal).
	minPitch = 0.03
	maxPitch = 1.52
)

// Composer renders the session state. It re-derives the shape model from the
// state every frame; the mapping is cheap enough that no diffing is needed.
type Composer struct {
	Camera rl.Camera3D

	state  *session.State
	mats   *materialCache
	env    environment
	shadow shadowPlane

	// Orbit state; Camera.Position is derived from these every frame.
	yaw, pitch, dist float32

	// GPU copies of bound texture resources, keyed by resource ID. Entries
	// die with their resource via the manager's release hook.
	gpuTex map[uint64]rl.Texture2D
}

// New wires a composer to the session. The release hook keeps the GPU texture
// cache in lockstep with the resource manager: every released resource
// unloads its GPU copy exactly once.
func New(state *session.State, baseColor rl.Color, envPath string) *Composer {
	c := &Composer{
		state:  state,
		mats:   newMaterialCache(baseColor),
		yaw:    0.7,
		pitch:  0.5,
		dist:   3,
		gpuTex: make(map[uint64]rl.Texture2D),
	}
	c.Camera.Target = rl.NewVector3(0, 0, 0)
	c.Camera.Up = rl.NewVector3(0, 1, 0)
	c.Camera.Fovy = 45
	c.Camera.Projection = rl.CameraPerspective
	c.env.findPath(envPath)
	state.Textures.OnRelease(func(res *texture.Resource) {
		if tex, ok := c.gpuTex[res.ID()]; ok {
			rl.UnloadTexture(tex)
			delete(c.gpuTex, res.ID())
		}
	})
	return c
}

// EnvironmentLoaded reports whether an environment image is available.
func (c *Composer) EnvironmentLoaded() bool { return c.env.loaded }

// Update runs camera controls once per frame: left-drag orbits, middle-drag
// pans, wheel zooms. The vertical orbit angle is clamped above the horizon.
func (c *Composer) Update() {
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		d := rl.GetMouseDelta()
		c.yaw -= d.X * orbitSensitivity
		c.pitch += d.Y * orbitSensitivity
	}
	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		d := rl.GetMouseDelta()
		right := rl.NewVector3(math32.Cos(c.yaw), 0, -math32.Sin(c.yaw))
		c.Camera.Target.X -= d.X * right.X * c.dist * panSensitivity
		c.Camera.Target.Z -= d.X * right.Z * c.dist * panSensitivity
		c.Camera.Target.Y += d.Y * c.dist * panSensitivity
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.dist *= 1 - wheel*zoomStep
	}
	c.pitch = clamp(c.pitch, minPitch, maxPitch)
	c.dist = clamp(c.dist, minDistance, maxDistance)

	t := c.Camera.Target
	c.Camera.Position = rl.NewVector3(
		t.X+c.dist*math32.Cos(c.pitch)*math32.Sin(c.yaw),
		t.Y+c.dist*math32.Sin(c.pitch),
		t.Z+c.dist*math32.Cos(c.pitch)*math32.Cos(c.yaw),
	)
}

// Draw renders one frame of the current session state.
func (c *Composer) Draw() {
	c.env.ensureLoaded()
	c.drawWorld()
}

// drawWorld is the single render path, shared by the live frame and capture so
// the exported image can never diverge from what Draw would show.
func (c *Composer) drawWorld() {
	model := c.state.Model()
	c.mats.setFrame(c.Camera.Position, c.env.loaded, c.state.EnvironmentVisible)

	rl.BeginMode3D(c.Camera)
	if c.state.EnvironmentVisible {
		c.env.draw(c.Camera.Position)
	}
	c.shadow.draw(model.Bottom, c.horizontalExtent())
	for _, part := range model.Parts {
		c.mats.drawPart(part, c.resolveTexture(part.Face))
	}
	rl.EndMode3D()
}

// resolveTexture returns the GPU texture for the resource bound to face,
// uploading it on first use. Nil when the face is untexturable or unbound.
func (c *Composer) resolveTexture(face texture.FaceKey) *rl.Texture2D {
	if face == "" {
		return nil
	}
	res := c.state.Textures.Bound(face)
	if res == nil || res.Img == nil {
		return nil
	}
	if tex, ok := c.gpuTex[res.ID()]; ok {
		return &tex
	}
	img := rl.NewImageFromImage(res.Img)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if !rl.IsTextureValid(tex) {
		return nil
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	c.gpuTex[res.ID()] = tex
	return &tex
}

// horizontalExtent is the object's largest footprint dimension in scene units;
// it sizes the contact shadow.
func (c *Composer) horizontalExtent() float32 {
	d := c.state.Dims
	if c.state.Kind == shape.Sphere {
		return float32(d.Diameter) * shape.UnitsPerCm
	}
	w := float32(d.Width)
	if float32(d.Depth) > w {
		w = float32(d.Depth)
	}
	return w * shape.UnitsPerCm
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
