package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/galileo/internal/scene"
	"github.com/san-kum/galileo/internal/vector"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Window.Title != "Galileo" {
		t.Errorf("expected title Galileo, got %s", cfg.Window.Title)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Spin.Dt <= 0 {
		t.Error("spin dt should be positive")
	}
}

func TestDefaultScene(t *testing.T) {
	s, err := DefaultConfig().BuildScene("galileo")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		want vector.Vec3d
	}{
		{"v", vector.V3(2.0, 3, 5)},
		{"w", vector.V3(3.0, 2, 1)},
		{"d", vector.V3(1.0, -1, -4)},
	}

	for _, tt := range tests {
		got, err := s.Lookup(tt.name)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}

	if len(s.Arrows) != 6 {
		t.Errorf("expected 6 arrows, got %d", len(s.Arrows))
	}
}

func TestPresetsBuild(t *testing.T) {
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			cfg := GetPreset(name)
			if cfg == nil {
				t.Fatal("expected preset, got nil")
			}
			if cfg.Preset != name {
				t.Errorf("Preset = %q, want %q", cfg.Preset, name)
			}
			if _, err := cfg.BuildScene(name); err != nil {
				t.Errorf("BuildScene: %v", err)
			}
		})
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestCrossPreset(t *testing.T) {
	s, err := GetPreset("cross").BuildScene("cross")
	if err != nil {
		t.Fatal(err)
	}
	axb, _ := s.Lookup("axb")
	if axb != vector.V3(1.0, -2, 4) {
		t.Errorf("axb = %v, want vec3(1, -2, 4)", axb)
	}
	n, _ := s.Lookup("n")
	if d := n.Magnitude() - 1; d > 1e-12 || d < -1e-12 {
		t.Errorf("|n| = %v, want 1", n.Magnitude())
	}
}

func TestPlanePresetPromotes2D(t *testing.T) {
	s, err := GetPreset("plane").BuildScene("plane")
	if err != nil {
		t.Fatal(err)
	}
	p, _ := s.Lookup("p")
	if p != vector.V3(3.0, 1, 0) {
		t.Errorf("p = %v, want vec3(3, 1, 0)", p)
	}
	n, _ := s.Lookup("n")
	if n != vector.V3(0, 0, 5.0) {
		t.Errorf("n = %v, want vec3(0, 0, 5)", n)
	}
}

func TestBuildSceneErrors(t *testing.T) {
	tests := []struct {
		name    string
		vectors []VectorConfig
		arrows  []ArrowConfig
		want    error
	}{
		{
			name:    "forward reference",
			vectors: []VectorConfig{{Name: "a", Terms: []TermConfig{{"b", 1}}}, {Name: "b", Value: []float64{1, 0, 0}}},
			want:    scene.ErrUnknownVector,
		},
		{
			name:    "two definitions",
			vectors: []VectorConfig{{Name: "a", Value: []float64{1, 0, 0}, Cross: []string{"i", "j"}}},
			want:    ErrDefinition,
		},
		{
			name:    "no definition",
			vectors: []VectorConfig{{Name: "a"}},
			want:    ErrDefinition,
		},
		{
			name:    "bad components",
			vectors: []VectorConfig{{Name: "a", Value: []float64{1, 2, 3, 4}}},
			want:    ErrComponents,
		},
		{
			name:    "cross arity",
			vectors: []VectorConfig{{Name: "a", Cross: []string{"i"}}},
			want:    ErrDefinition,
		},
		{
			name:    "normalize zero",
			vectors: []VectorConfig{{Name: "a", Cross: []string{"i", "i"}, Normalize: true}},
			want:    ErrNormalizeZero,
		},
		{
			name:    "duplicate",
			vectors: []VectorConfig{{Name: "k", Value: []float64{1, 0}}},
			want:    scene.ErrDuplicateVector,
		},
		{
			name:   "bad color",
			arrows: []ArrowConfig{{From: "o", To: "i", Color: "mauve"}},
			want:   scene.ErrUnknownColor,
		},
		{
			name:   "dangling arrow",
			arrows: []ArrowConfig{{From: "o", To: "x"}},
			want:   scene.ErrUnknownVector,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Vectors, cfg.Arrows = tt.vectors, tt.arrows
			_, err := cfg.BuildScene("test")
			if !errors.Is(err, tt.want) {
				t.Errorf("BuildScene() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuildSceneNamesFailingVector(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Vectors = []VectorConfig{{Name: "k", Value: []float64{1, 0}}}
	cfg.Arrows = nil
	_, err := cfg.BuildScene("test")
	if err == nil || !strings.HasPrefix(err.Error(), `vector "k": `) {
		t.Errorf("error should name the vector, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")

	cfg := GetPreset("cross")
	cfg.Window.Title = "round trip"
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Window.Title != "round trip" {
		t.Errorf("title = %q", loaded.Window.Title)
	}
	if len(loaded.Vectors) != len(cfg.Vectors) {
		t.Errorf("vectors = %d, want %d", len(loaded.Vectors), len(cfg.Vectors))
	}
	if loaded.Spin.Vector != "a" {
		t.Errorf("spin vector = %q, want a", loaded.Spin.Vector)
	}
}

func TestLoadPresetOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := "preset: plane\nwindow:\n  title: overlay\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Title != "overlay" {
		t.Errorf("title = %q, want overlay", cfg.Window.Title)
	}
	if cfg.Window.Width != DefaultWidth {
		t.Errorf("width = %d, want default %d", cfg.Window.Width, DefaultWidth)
	}
	if len(cfg.Vectors) != 4 || cfg.Vectors[0].Name != "p" {
		t.Errorf("expected plane vectors, got %+v", cfg.Vectors)
	}
}

func TestLoadUnknownPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("preset: nope\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Load() error = %v, want ErrUnknownPreset", err)
	}
}
