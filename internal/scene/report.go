package scene

import (
	"math"

	"github.com/san-kum/galileo/internal/vector"
)

// VectorReport summarizes a single vector.
type VectorReport struct {
	Name      string
	Value     vector.Vec3d
	Magnitude float64
	// Unit is the normalized direction; zero and Valid=false for the zero vector.
	Unit  vector.Vec3d
	Valid bool
}

// PairReport holds the products of two vectors.
type PairReport struct {
	A, B  string
	Dot   float64
	Cross vector.Vec3d
	// Angle in radians, NaN when either vector is zero.
	Angle float64
}

type Report struct {
	Vectors []VectorReport
	Pairs   []PairReport
}

// Analyze computes per-vector and pairwise quantities for every user vector.
func Analyze(s *Scene) Report {
	named := s.Vectors()
	rep := Report{
		Vectors: make([]VectorReport, 0, len(named)),
		Pairs:   make([]PairReport, 0, len(named)*(len(named)-1)/2),
	}

	for _, n := range named {
		vr := VectorReport{Name: n.Name, Value: n.Value, Magnitude: n.Value.Magnitude()}
		if vr.Magnitude > 0 {
			vr.Unit, vr.Valid = n.Value.Normalize(), true
		}
		rep.Vectors = append(rep.Vectors, vr)
	}

	for i := 0; i < len(named); i++ {
		for j := i + 1; j < len(named); j++ {
			a, b := named[i].Value, named[j].Value
			rep.Pairs = append(rep.Pairs, PairReport{
				A:     named[i].Name,
				B:     named[j].Name,
				Dot:   a.Dot(b),
				Cross: vector.Cross(a, b),
				Angle: angle(a, b),
			})
		}
	}

	return rep
}

func angle(a, b vector.Vec3d) float64 {
	den := a.Magnitude() * b.Magnitude()
	if den == 0 {
		return math.NaN()
	}
	c := a.Dot(b) / den
	return math.Acos(math.Max(-1, math.Min(1, c)))
}
