package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/galileo/internal/vector"
)

func TestBuiltins(t *testing.T) {
	s := New("test")

	tests := []struct {
		name string
		want vector.Vec3d
	}{
		{Origin, vector.Vec3d{}},
		{BasisI, vector.V3(1.0, 0, 0)},
		{BasisJ, vector.V3(0, 1.0, 0)},
		{BasisK, vector.V3(0, 0, 1.0)},
	}

	for _, tt := range tests {
		got, err := s.Lookup(tt.name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if len(s.Vectors()) != 0 {
		t.Error("builtins should not be listed as user vectors")
	}
}

func TestDefine(t *testing.T) {
	s := New("test")

	if err := s.Define("v", vector.V3(2.0, 3, 5)); err != nil {
		t.Fatal(err)
	}
	if err := s.Define("v", vector.V3(1.0, 1, 1)); !errors.Is(err, ErrDuplicateVector) {
		t.Errorf("duplicate define: got %v, want ErrDuplicateVector", err)
	}
	if err := s.Define("i", vector.V3(1.0, 1, 1)); !errors.Is(err, ErrDuplicateVector) {
		t.Errorf("builtin redefine: got %v, want ErrDuplicateVector", err)
	}
	if err := s.Define("", vector.Vec3d{}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("empty name: got %v, want ErrEmptyName", err)
	}
	if err := s.Define("bad", vector.V3(math.NaN(), 0, 0)); !errors.Is(err, ErrNonFinite) {
		t.Errorf("NaN vector: got %v, want ErrNonFinite", err)
	}
}

func TestSet(t *testing.T) {
	s := New("test")
	_ = s.Define("v", vector.V3(1.0, 0, 0))

	if err := s.Set("v", vector.V3(0, 2.0, 0)); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.Lookup("v"); got != vector.V3(0, 2.0, 0) {
		t.Errorf("after Set, v = %v", got)
	}
	if err := s.Set("k", vector.Vec3d{}); !errors.Is(err, ErrDuplicateVector) {
		t.Errorf("Set builtin: got %v", err)
	}
	if err := s.Set("missing", vector.Vec3d{}); !errors.Is(err, ErrUnknownVector) {
		t.Errorf("Set missing: got %v", err)
	}
}

func TestConnect(t *testing.T) {
	s := New("test")
	_ = s.Define("v", vector.V3(2.0, 3, 5))

	if err := s.Connect(Origin, "v", Color{}); err != nil {
		t.Fatal(err)
	}
	if err := s.Connect("v", "nowhere", Color{}); !errors.Is(err, ErrUnknownVector) {
		t.Errorf("Connect unknown: got %v", err)
	}
	if len(s.Arrows) != 1 {
		t.Fatalf("expected 1 arrow, got %d", len(s.Arrows))
	}

	tail, head := s.Segment(s.Arrows[0])
	if tail != (vector.Vec3d{}) || head != vector.V3(2.0, 3, 5) {
		t.Errorf("Segment = %v -> %v", tail, head)
	}
}

func TestExtent(t *testing.T) {
	s := New("test")
	if got := s.Extent(); got != 1 {
		t.Errorf("empty scene extent = %v, want 1", got)
	}
	_ = s.Define("far", vector.V3(0, 3.0, 4))
	if got := s.Extent(); got != 5 {
		t.Errorf("extent = %v, want 5", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"", Color{0, 0, 0, 255}, false},
		{"Red", palette["red"], false},
		{"#ff8000", Color{255, 128, 0, 255}, false},
		{"#zzzzzz", Color{}, true},
		{"chartreuse", Color{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrUnknownColor", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if hex := (Color{255, 128, 0, 255}).Hex(); hex != "#ff8000" {
		t.Errorf("Hex() = %s", hex)
	}
}

func TestAnalyze(t *testing.T) {
	s := New("test")
	_ = s.Define("a", vector.V3(1.0, 0, 0))
	_ = s.Define("b", vector.V3(0, 2.0, 0))
	_ = s.Define("z", vector.Vec3d{})

	rep := Analyze(s)
	if len(rep.Vectors) != 3 {
		t.Fatalf("expected 3 vector reports, got %d", len(rep.Vectors))
	}
	if len(rep.Pairs) != 3 {
		t.Fatalf("expected 3 pair reports, got %d", len(rep.Pairs))
	}

	if rep.Vectors[1].Unit != vector.V3(0, 1.0, 0) || !rep.Vectors[1].Valid {
		t.Errorf("unit of b = %v", rep.Vectors[1].Unit)
	}
	if rep.Vectors[2].Valid {
		t.Error("zero vector should not have a valid unit")
	}

	ab := rep.Pairs[0]
	if ab.Dot != 0 || ab.Cross != vector.V3(0, 0, 2.0) {
		t.Errorf("a,b pair = %+v", ab)
	}
	if math.Abs(ab.Angle-math.Pi/2) > 1e-12 {
		t.Errorf("angle(a, b) = %v, want pi/2", ab.Angle)
	}
	if !math.IsNaN(rep.Pairs[1].Angle) {
		t.Errorf("angle with zero vector = %v, want NaN", rep.Pairs[1].Angle)
	}
}
