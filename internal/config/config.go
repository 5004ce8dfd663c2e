package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/galileo/internal/scene"
	"github.com/san-kum/galileo/internal/vector"
)

const (
	DefaultTitle   = "Galileo"
	DefaultWidth   = 1280
	DefaultHeight  = 720
	DefaultFPS     = 60
	DefaultFovy    = 45.0
	DefaultSlices  = 100
	DefaultSpacing = 1.0
	DefaultDt      = 0.01
	DefaultRate    = 1.0
)

type Config struct {
	Preset  string         `yaml:"preset,omitempty"`
	Window  WindowConfig   `yaml:"window"`
	Camera  CameraConfig   `yaml:"camera"`
	Grid    GridConfig     `yaml:"grid"`
	Spin    SpinConfig     `yaml:"spin"`
	Vectors []VectorConfig `yaml:"vectors"`
	Arrows  []ArrowConfig  `yaml:"arrows"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
}

type CameraConfig struct {
	Position []float64 `yaml:"position,flow"`
	Target   []float64 `yaml:"target,flow"`
	Up       []float64 `yaml:"up,flow"`
	Fovy     float64   `yaml:"fovy"`
}

type GridConfig struct {
	Slices  int     `yaml:"slices"`
	Spacing float64 `yaml:"spacing"`
}

// SpinConfig drives the rotation of one scene vector about an axis.
type SpinConfig struct {
	Vector     string    `yaml:"vector"`
	Axis       []float64 `yaml:"axis,flow"`
	Rate       float64   `yaml:"rate"`
	Integrator string    `yaml:"integrator"`
	Dt         float64   `yaml:"dt"`
	Duration   float64   `yaml:"duration"`
}

// VectorConfig defines a scene vector. Exactly one of Value, Terms or Cross
// must be set. Value accepts 2 or 3 components, a 2D value lies in z=0.
type VectorConfig struct {
	Name      string       `yaml:"name"`
	Value     []float64    `yaml:"value,omitempty,flow"`
	Terms     []TermConfig `yaml:"terms,omitempty"`
	Cross     []string     `yaml:"cross,omitempty,flow"`
	Normalize bool         `yaml:"normalize,omitempty"`
}

// TermConfig is one scaled vector in a linear combination.
type TermConfig struct {
	Of    string  `yaml:"of"`
	Scale float64 `yaml:"scale"`
}

type ArrowConfig struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Color string `yaml:"color,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  DefaultTitle,
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
		},
		Camera: CameraConfig{
			Position: []float64{10, 10, 10},
			Target:   []float64{0, 0, 0},
			Up:       []float64{0, 1, 0},
			Fovy:     DefaultFovy,
		},
		Grid: GridConfig{Slices: DefaultSlices, Spacing: DefaultSpacing},
		Spin: SpinConfig{
			Vector:     "v",
			Axis:       []float64{0, 1, 0},
			Rate:       DefaultRate,
			Integrator: "rk4",
			Dt:         DefaultDt,
			Duration:   2 * math.Pi,
		},
		Vectors: galileoVectors(),
		Arrows:  galileoArrows(),
	}
}

// Load reads a YAML config. A preset named in the file seeds the defaults
// before the file's own values are applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if head.Preset != "" {
		if cfg = GetPreset(head.Preset); cfg == nil {
			return nil, fmt.Errorf("%s: %w: %q", path, ErrUnknownPreset, head.Preset)
		}
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Vec3 converts a 2 or 3 element slice into a vector.
func Vec3(c []float64) (vector.Vec3d, error) {
	switch len(c) {
	case 2:
		return vector.V2(c[0], c[1]).Extend(0), nil
	case 3:
		return vector.V3(c[0], c[1], c[2]), nil
	default:
		return vector.Vec3d{}, fmt.Errorf("%w: want 2 or 3 components, got %d", ErrComponents, len(c))
	}
}

// BuildScene resolves the vector and arrow definitions in order. Each vector
// may only refer to builtins and vectors defined before it.
func (c *Config) BuildScene(name string) (*scene.Scene, error) {
	s := scene.New(name)

	for _, vc := range c.Vectors {
		v, err := c.resolve(s, vc)
		if err != nil {
			return nil, fmt.Errorf("vector %q: %w", vc.Name, err)
		}
		if vc.Normalize {
			if v.Magnitude() == 0 {
				return nil, fmt.Errorf("vector %q: %w", vc.Name, ErrNormalizeZero)
			}
			v = v.Normalize()
		}
		if err := s.Define(vc.Name, v); err != nil {
			return nil, fmt.Errorf("vector %q: %w", vc.Name, err)
		}
	}

	for _, ac := range c.Arrows {
		col, err := scene.ParseColor(ac.Color)
		if err != nil {
			return nil, fmt.Errorf("arrow %s->%s: %w", ac.From, ac.To, err)
		}
		if err := s.Connect(ac.From, ac.To, col); err != nil {
			return nil, fmt.Errorf("arrow %s->%s: %w", ac.From, ac.To, err)
		}
	}

	return s, nil
}

func (c *Config) resolve(s *scene.Scene, vc VectorConfig) (vector.Vec3d, error) {
	set := 0
	if vc.Value != nil {
		set++
	}
	if len(vc.Terms) > 0 {
		set++
	}
	if len(vc.Cross) > 0 {
		set++
	}
	if set != 1 {
		return vector.Vec3d{}, ErrDefinition
	}

	switch {
	case vc.Value != nil:
		return Vec3(vc.Value)
	case len(vc.Terms) > 0:
		var sum vector.Vec3d
		for _, t := range vc.Terms {
			v, err := s.Lookup(t.Of)
			if err != nil {
				return vector.Vec3d{}, err
			}
			sum.AddAssign(v.Scale(t.Scale))
		}
		return sum, nil
	default:
		if len(vc.Cross) != 2 {
			return vector.Vec3d{}, fmt.Errorf("%w: cross takes 2 operands, got %d", ErrDefinition, len(vc.Cross))
		}
		a, err := s.Lookup(vc.Cross[0])
		if err != nil {
			return vector.Vec3d{}, err
		}
		b, err := s.Lookup(vc.Cross[1])
		if err != nil {
			return vector.Vec3d{}, err
		}
		return vector.Cross(a, b), nil
	}
}
