package session

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/remote"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/shape"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/texture"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func newState(t *testing.T) *State {
	t.Chdir(t.TempDir()) // no shape definition files: built-in 10 cm defaults
	return New()
}

func TestShapeSwitchReleasesEverythingOnce(t *testing.T) {
	s := newState(t)
	var releases int
	s.Textures.OnRelease(func(*texture.Resource) { releases++ })

	_, err := s.BindTexture(texture.FaceFront, "f.png", pngBytes(t, 10, 10))
	require.NoError(t, err)
	_, err = s.BindTexture(texture.FaceLeft, "l.png", pngBytes(t, 10, 10))
	require.NoError(t, err)

	s.SetShape(shape.Sphere)
	assert.Equal(t, shape.Sphere, s.Kind)
	assert.Zero(t, s.Textures.Len())
	assert.Equal(t, 2, releases)

	// Same-shape set is a no-op and must not double-release.
	s.SetShape(shape.Sphere)
	assert.Equal(t, 2, releases)
}

func TestShapeSwitchKeepsDimensions(t *testing.T) {
	s := newState(t)
	require.NoError(t, s.SetDimension("width", 25))
	s.SetShape(shape.Bag)
	assert.Equal(t, 25.0, s.Dims.Width)
}

func TestResetTexturesIdempotent(t *testing.T) {
	s := newState(t)
	var releases int
	s.Textures.OnRelease(func(*texture.Resource) { releases++ })
	_, err := s.BindTexture(texture.FaceMap, "m.png", pngBytes(t, 4, 4))
	require.NoError(t, err)

	s.ResetTextures()
	s.ResetTextures()
	assert.Equal(t, 1, releases)
	assert.Zero(t, s.Textures.Len())
}

func TestCubeFrontUploadDerivesWidth(t *testing.T) {
	// End-to-end: cube at 10/10/10/10, front texture with 2:1 aspect.
	s := newState(t)
	_, err := s.BindTexture(texture.FaceFront, "front.png", pngBytes(t, 400, 200))
	require.NoError(t, err)

	assert.Equal(t, 20.0, s.Dims.Width)
	assert.Equal(t, 10.0, s.Dims.Height)
	assert.Equal(t, 10.0, s.Dims.Depth)
	assert.Equal(t, 10.0, s.Dims.Diameter)
}

func TestFrontPriorityOverBackEitherOrder(t *testing.T) {
	front := pngBytes(t, 400, 200) // ratio 2
	back := pngBytes(t, 300, 200)  // ratio 1.5

	s := newState(t)
	_, err := s.BindTexture(texture.FaceBack, "b.png", back)
	require.NoError(t, err)
	assert.Equal(t, 15.0, s.Dims.Width, "back alone derives width")
	_, err = s.BindTexture(texture.FaceFront, "f.png", front)
	require.NoError(t, err)
	assert.Equal(t, 20.0, s.Dims.Width, "front takes over")

	s2 := newState(t)
	_, err = s2.BindTexture(texture.FaceFront, "f.png", front)
	require.NoError(t, err)
	_, err = s2.BindTexture(texture.FaceBack, "b.png", back)
	require.NoError(t, err)
	assert.Equal(t, 20.0, s2.Dims.Width, "front still wins when back arrives later")
}

func TestBindDerivesOnlyItsOwnPair(t *testing.T) {
	s := newState(t)
	_, err := s.BindTexture(texture.FaceFront, "f.png", pngBytes(t, 400, 200))
	require.NoError(t, err)
	require.Equal(t, 20.0, s.Dims.Width)

	// Manual width edit, then a bind on the depth pair: the edit must stand.
	require.NoError(t, s.SetDimension("width", 30))
	_, err = s.BindTexture(texture.FaceLeft, "l.png", pngBytes(t, 100, 200))
	require.NoError(t, err)
	assert.Equal(t, 30.0, s.Dims.Width, "left bind must not re-derive width")
	assert.Equal(t, 5.0, s.Dims.Depth)

	// And the mirror case: a depth edit survives a front-pair bind.
	require.NoError(t, s.SetDimension("depth", 7))
	_, err = s.BindTexture(texture.FaceBack, "b.png", pngBytes(t, 300, 200))
	require.NoError(t, err)
	assert.Equal(t, 7.0, s.Dims.Depth, "back bind must not re-derive depth")
	assert.Equal(t, 20.0, s.Dims.Width, "its own pair re-derives, front winning")
}

func TestBindOutsideSidePairsDerivesNothing(t *testing.T) {
	s := newState(t)
	require.NoError(t, s.SetDimension("width", 12))
	_, err := s.BindTexture(texture.FaceTop, "t.png", pngBytes(t, 400, 100))
	require.NoError(t, err)
	assert.Equal(t, 12.0, s.Dims.Width)
	assert.Equal(t, 10.0, s.Dims.Depth)
}

func TestRemoveDoesNotRederive(t *testing.T) {
	s := newState(t)
	_, err := s.BindTexture(texture.FaceFront, "f.png", pngBytes(t, 400, 200))
	require.NoError(t, err)
	require.Equal(t, 20.0, s.Dims.Width)

	s.RemoveTexture(texture.FaceFront)
	assert.Equal(t, 20.0, s.Dims.Width, "last derived value stands after removal")
}

func TestInvalidUploadLeavesFaceUnbound(t *testing.T) {
	s := newState(t)
	_, err := s.BindTexture(texture.FaceFront, "junk", []byte("not an image"))
	assert.ErrorIs(t, err, texture.ErrImageDecode)
	assert.Nil(t, s.Textures.Bound(texture.FaceFront))
	assert.Equal(t, 10.0, s.Dims.Width)
}

func TestApplyRemoteBatch(t *testing.T) {
	// End-to-end: only Back.png (1.5) and Right.png (0.8) exist.
	s := newState(t)
	snapshot := s.Epochs()
	batch := []remote.Result{
		{Face: texture.FaceBack, Source: "Back.png", Data: pngBytes(t, 300, 200)},
		{Face: texture.FaceRight, Source: "Right.png", Data: pngBytes(t, 160, 200)},
	}
	s.ApplyRemoteBatch(batch, snapshot)

	assert.Equal(t, 15.0, s.Dims.Width)
	assert.Equal(t, 8.0, s.Dims.Depth)
	assert.Equal(t, 10.0, s.Dims.Height)
	assert.NotNil(t, s.Textures.Bound(texture.FaceBack))
	assert.NotNil(t, s.Textures.Bound(texture.FaceRight))
	for _, face := range []texture.FaceKey{texture.FaceFront, texture.FaceLeft, texture.FaceTop, texture.FaceBottom, texture.FaceMap} {
		assert.Nil(t, s.Textures.Bound(face))
	}
}

func TestApplyRemoteBatchSkipsStaleFaces(t *testing.T) {
	s := newState(t)
	snapshot := s.Epochs()

	// User rebinds front while the probe is in flight.
	user, err := s.BindTexture(texture.FaceFront, "user.png", pngBytes(t, 100, 100))
	require.NoError(t, err)

	s.ApplyRemoteBatch([]remote.Result{
		{Face: texture.FaceFront, Source: "Front.png", Data: pngBytes(t, 300, 100)},
		{Face: texture.FaceLeft, Source: "Left.png", Data: pngBytes(t, 50, 100)},
	}, snapshot)

	assert.Same(t, user, s.Textures.Bound(texture.FaceFront), "late probe result must not clobber the user's binding")
	assert.NotNil(t, s.Textures.Bound(texture.FaceLeft), "untouched faces still merge")
	assert.Equal(t, 10.0, s.Dims.Width, "width derives from the user's front texture")
	assert.Equal(t, 5.0, s.Dims.Depth)
}

func TestApplyRemoteBatchSkipsUndecodable(t *testing.T) {
	s := newState(t)
	s.ApplyRemoteBatch([]remote.Result{
		{Face: texture.FaceFront, Source: "Front.png", Data: []byte("corrupt")},
	}, s.Epochs())
	assert.Nil(t, s.Textures.Bound(texture.FaceFront))
}

func TestModelFollowsState(t *testing.T) {
	s := newState(t)
	require.NoError(t, s.SetDimension("diameter", 10))
	s.SetShape(shape.Sphere)
	m := s.Model()
	require.Len(t, m.Parts, 1)
	assert.InDelta(t, 1.0, m.Parts[0].Scale[0], 1e-6, "10 cm diameter is 1 scene unit (radius 0.5)")
}

func TestToggleEnvironment(t *testing.T) {
	s := newState(t)
	assert.False(t, s.EnvironmentVisible)
	s.ToggleEnvironment()
	assert.True(t, s.EnvironmentVisible)
	s.ToggleEnvironment()
	assert.False(t, s.EnvironmentVisible)
}
