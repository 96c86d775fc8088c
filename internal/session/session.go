// Package session owns the single mutable state of a configurator session:
// active shape, dimensions, face texture bindings, and environment mode. All
// mutation happens on the UI thread; async work (remote probes) only touches
// the session through a completed batch applied here, guarded by per-face
// epochs so a late result never clobbers a newer user edit.
package session

import (
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/dimension"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/remote"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/shape"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/texture"
)

// State is the session aggregate. Create one per session with New; the UI
// layer owns the instance and its lifetime.
type State struct {
	Kind               shape.Kind
	Dims               dimension.Dimensions
	Textures           *texture.Manager
	EnvironmentVisible bool

	epochs map[texture.FaceKey]uint64
}

// New returns a session showing a default cube. Starting dimensions come from
// the cube's shape definition.
func New() *State {
	def, _ := shape.LoadDefinition(shape.Cube)
	return &State{
		Kind:     shape.Cube,
		Dims:     def.StartingDimensions(),
		Textures: texture.NewManager(),
		epochs:   make(map[texture.FaceKey]uint64),
	}
}

// SetShape switches the active shape. Switching releases every bound texture;
// dimensions are kept so values survive a round trip between shapes. Setting
// the current shape again is a no-op.
func (s *State) SetShape(kind shape.Kind) {
	if kind == s.Kind {
		return
	}
	s.Kind = kind
	s.Textures.ResetAll()
	s.bumpAll()
}

// SetDimension applies a direct user edit. Invalid values are rejected and the
// field keeps its prior value.
func (s *State) SetDimension(field dimension.Field, value float64) error {
	return s.Dims.Set(field, value)
}

// BindTexture decodes data and binds it to face, then re-derives the one
// dimension that face drives (front/back width, left/right depth; height is
// the anchor and never changes). Only the bound face's pair is touched, so a
// manual edit to the other pair survives the bind.
func (s *State) BindTexture(face texture.FaceKey, source string, data []byte) (*texture.Resource, error) {
	res, err := s.Textures.Bind(face, source, data)
	if err != nil {
		return nil, err
	}
	s.epochs[face]++
	s.rederivePair(face)
	return res, nil
}

// RemoveTexture unbinds face. Dimensions are not re-derived on removal; the
// last derived values stand.
func (s *State) RemoveTexture(face texture.FaceKey) {
	s.Textures.Unbind(face)
	s.epochs[face]++
}

// ResetTextures unbinds every face. Idempotent; a second call releases
// nothing.
func (s *State) ResetTextures() {
	s.Textures.ResetAll()
	s.bumpAll()
}

// ToggleEnvironment flips whether the environment backdrop is drawn.
func (s *State) ToggleEnvironment() {
	s.EnvironmentVisible = !s.EnvironmentVisible
}

// Model derives the current renderable model. Cheap enough to recompute
// wholesale every frame; no diffing.
func (s *State) Model() shape.Model {
	return shape.Build(s.Kind, s.Dims, s.Textures.BoundFaces())
}

// Epochs snapshots the per-face epoch counters. Taken before starting async
// work and passed back to ApplyRemoteBatch.
func (s *State) Epochs() map[texture.FaceKey]uint64 {
	out := make(map[texture.FaceKey]uint64, len(s.epochs))
	for face, e := range s.epochs {
		out[face] = e
	}
	return out
}

// ApplyRemoteBatch merges a completed probe batch in one update. Faces the
// user touched since the snapshot was taken are skipped (last committed state
// wins), as are results that fail to decode. Width/depth derivation runs once
// over the merged state with the usual priority rule.
func (s *State) ApplyRemoteBatch(batch []remote.Result, snapshot map[texture.FaceKey]uint64) {
	for _, r := range batch {
		if s.epochs[r.Face] != snapshot[r.Face] {
			continue
		}
		if _, err := s.Textures.Bind(r.Face, r.Source, r.Data); err != nil {
			continue
		}
		s.epochs[r.Face]++
	}
	s.rederive()
}

// rederive runs the full two-pair derivation. Used only for batch merges,
// where every face in the batch was just committed.
func (s *State) rederive() {
	s.applyRatios(texture.FaceFront, texture.FaceBack, texture.FaceLeft, texture.FaceRight)
}

// rederivePair re-derives only the pair containing face, honoring the usual
// priority within it. Faces outside the side pairs derive nothing.
func (s *State) rederivePair(face texture.FaceKey) {
	switch face {
	case texture.FaceFront, texture.FaceBack:
		s.applyRatios(texture.FaceFront, texture.FaceBack)
	case texture.FaceLeft, texture.FaceRight:
		s.applyRatios(texture.FaceLeft, texture.FaceRight)
	}
}

func (s *State) applyRatios(faces ...texture.FaceKey) {
	ratios := make(map[texture.FaceKey]float64)
	for _, face := range faces {
		if res := s.Textures.Bound(face); res != nil {
			ratios[face] = res.Aspect()
		}
	}
	s.Dims.ApplyAspectRatios(ratios)
}

func (s *State) bumpAll() {
	for _, face := range texture.Faces {
		s.epochs[face]++
	}
}
