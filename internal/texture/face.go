package texture

// FaceKey names one mappable surface of a shape. The box shapes use the six
// directional keys; the sphere uses only FaceMap (a single wrap-around slot).
type FaceKey string

const (
	FaceFront  FaceKey = "front"
	FaceBack   FaceKey = "back"
	FaceLeft   FaceKey = "left"
	FaceRight  FaceKey = "right"
	FaceTop    FaceKey = "top"
	FaceBottom FaceKey = "bottom"
	FaceMap    FaceKey = "map"
)

// Faces is the full face-key vocabulary.
var Faces = []FaceKey{FaceFront, FaceBack, FaceLeft, FaceRight, FaceTop, FaceBottom, FaceMap}

// Valid reports whether f is part of the face-key vocabulary.
func Valid(f FaceKey) bool {
	for _, k := range Faces {
		if k == f {
			return true
		}
	}
	return false
}
