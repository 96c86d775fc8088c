package texture

import (
	"fmt"
	"image"
)

// Resource is one decoded image bound to a face. PixelW/PixelH are the natural
// dimensions of the source image, recorded before any downscaling, so aspect
// ratios always reflect what the user uploaded.
type Resource struct {
	Face   FaceKey
	Source string // filename or URL, used in logs only
	Img    *image.NRGBA
	PixelW int
	PixelH int

	id       uint64
	released bool
}

// ID is a session-unique handle identity, stable for the life of the resource.
func (r *Resource) ID() uint64 { return r.id }

// Aspect returns the natural width:height ratio.
func (r *Resource) Aspect() float64 {
	return float64(r.PixelW) / float64(r.PixelH)
}

// Manager owns the face-key to resource mapping for one session. At most one
// resource is bound per face; replacing or removing a binding releases the old
// resource exactly once, and only after a replacement decoded successfully.
//
// All calls happen on the UI thread. Release hooks let the renderer drop any
// GPU-side copy of a resource the moment its handle dies.
type Manager struct {
	bound     map[FaceKey]*Resource
	nextID    uint64
	onRelease []func(*Resource)
}

func NewManager() *Manager {
	return &Manager{bound: make(map[FaceKey]*Resource)}
}

// OnRelease registers fn to be called exactly once per released resource.
func (m *Manager) OnRelease(fn func(*Resource)) {
	m.onRelease = append(m.onRelease, fn)
}

// Bind decodes data and binds the result to face, replacing any previous
// binding. The previous resource is released only after the new one is valid,
// so a decode failure leaves the old binding untouched.
func (m *Manager) Bind(face FaceKey, source string, data []byte) (*Resource, error) {
	if !Valid(face) {
		return nil, fmt.Errorf("texture: unknown face %q", face)
	}
	img, w, h, err := decode(data)
	if err != nil {
		return nil, err
	}
	m.nextID++
	res := &Resource{Face: face, Source: source, Img: img, PixelW: w, PixelH: h, id: m.nextID}
	if old := m.bound[face]; old != nil {
		m.release(old)
	}
	m.bound[face] = res
	return res, nil
}

// Unbind releases the resource bound to face. No-op when nothing is bound.
func (m *Manager) Unbind(face FaceKey) {
	if old := m.bound[face]; old != nil {
		m.release(old)
		delete(m.bound, face)
	}
}

// ResetAll unbinds every face. Safe to call repeatedly; the second call finds
// nothing to release.
func (m *Manager) ResetAll() {
	for face, res := range m.bound {
		m.release(res)
		delete(m.bound, face)
	}
}

// Bound returns the resource bound to face, or nil.
func (m *Manager) Bound(face FaceKey) *Resource {
	return m.bound[face]
}

// BoundFaces returns the set of faces that currently have a resource.
func (m *Manager) BoundFaces() map[FaceKey]bool {
	out := make(map[FaceKey]bool, len(m.bound))
	for face := range m.bound {
		out[face] = true
	}
	return out
}

// Len returns the number of bound faces.
func (m *Manager) Len() int { return len(m.bound) }

func (m *Manager) release(r *Resource) {
	if r.released {
		return
	}
	r.released = true
	r.Img = nil
	for _, fn := range m.onRelease {
		fn(r)
	}
}
