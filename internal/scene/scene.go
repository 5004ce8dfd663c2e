package scene

import (
	"fmt"
	"math"

	"github.com/san-kum/galileo/internal/vector"
)

// Builtin vector names present in every scene: the origin and the canonical basis.
const (
	Origin = "o"
	BasisI = "i"
	BasisJ = "j"
	BasisK = "k"
)

var builtins = []struct {
	name string
	v    vector.Vec3d
}{
	{Origin, vector.Vec3d{}},
	{BasisI, vector.V3(1.0, 0, 0)},
	{BasisJ, vector.V3(0, 1.0, 0)},
	{BasisK, vector.V3(0, 0, 1.0)},
}

// Named is a scene vector together with its name.
type Named struct {
	Name  string
	Value vector.Vec3d
}

// Arrow is a segment drawn from one named vector to another.
type Arrow struct {
	From, To string
	Color    Color
}

// Scene holds named vectors and the arrows drawn between them. Vectors are
// kept in declaration order.
type Scene struct {
	Name    string
	Arrows  []Arrow
	vectors map[string]vector.Vec3d
	order   []string
}

func New(name string) *Scene {
	s := &Scene{
		Name:    name,
		vectors: make(map[string]vector.Vec3d),
	}
	for _, b := range builtins {
		s.vectors[b.name] = b.v
	}
	return s
}

func IsBuiltin(name string) bool {
	for _, b := range builtins {
		if b.name == name {
			return true
		}
	}
	return false
}

// Define adds a new named vector.
func (s *Scene) Define(name string, v vector.Vec3d) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := s.vectors[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateVector, name)
	}
	if !v.IsFinite() {
		return fmt.Errorf("%w: %s = %v", ErrNonFinite, name, v)
	}
	s.vectors[name] = v
	s.order = append(s.order, name)
	return nil
}

// Set replaces the value of a vector defined with Define.
func (s *Scene) Set(name string, v vector.Vec3d) error {
	if IsBuiltin(name) {
		return fmt.Errorf("%w: %q is builtin", ErrDuplicateVector, name)
	}
	if _, ok := s.vectors[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVector, name)
	}
	if !v.IsFinite() {
		return fmt.Errorf("%w: %s = %v", ErrNonFinite, name, v)
	}
	s.vectors[name] = v
	return nil
}

func (s *Scene) Lookup(name string) (vector.Vec3d, error) {
	v, ok := s.vectors[name]
	if !ok {
		return vector.Vec3d{}, fmt.Errorf("%w: %q", ErrUnknownVector, name)
	}
	return v, nil
}

// Connect adds an arrow between two existing vectors.
func (s *Scene) Connect(from, to string, c Color) error {
	for _, n := range []string{from, to} {
		if _, ok := s.vectors[n]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownVector, n)
		}
	}
	s.Arrows = append(s.Arrows, Arrow{From: from, To: to, Color: c})
	return nil
}

// Segment resolves an arrow to its tail and head positions.
func (s *Scene) Segment(a Arrow) (tail, head vector.Vec3d) {
	return s.vectors[a.From], s.vectors[a.To]
}

// Vectors returns the user defined vectors in declaration order.
func (s *Scene) Vectors() []Named {
	out := make([]Named, 0, len(s.order))
	for _, n := range s.order {
		out = append(out, Named{Name: n, Value: s.vectors[n]})
	}
	return out
}

// Extent is the largest magnitude among all vectors, at least 1.
func (s *Scene) Extent() float64 {
	ext := 1.0
	for _, v := range s.vectors {
		ext = math.Max(ext, v.Magnitude())
	}
	return ext
}

// ColorOf returns the color of the first arrow pointing at name.
func (s *Scene) ColorOf(name string) (Color, bool) {
	for _, a := range s.Arrows {
		if a.To == name {
			return a.Color, true
		}
	}
	return Color{}, false
}
