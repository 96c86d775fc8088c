package shape

import "fmt"

// Kind is the closed set of product shapes. It decides which face keys are
// meaningful and which geometry builder runs.
type Kind int

const (
	Cube Kind = iota
	Sphere
	Bag
)

var kindNames = map[Kind]string{Cube: "cube", Sphere: "sphere", Bag: "bag"}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a user-facing name to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, n := range kindNames {
		if n == s {
			return k, nil
		}
	}
	return Cube, fmt.Errorf("shape: unknown kind %q (want cube, sphere or bag)", s)
}
