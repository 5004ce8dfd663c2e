package config

import "sort"

// Presets maps a preset name to a constructor. Each call returns a fresh
// config so callers may modify it.
var Presets = map[string]func() *Config{
	"galileo": DefaultConfig,
	"basis":   basisPreset,
	"cross":   crossPreset,
	"plane":   planePreset,
}

func GetPreset(name string) *Config {
	mk, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := mk()
	cfg.Preset = name
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for n := range Presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func axisArrows() []ArrowConfig {
	return []ArrowConfig{
		{From: "o", To: "i", Color: "red"},
		{From: "o", To: "j", Color: "green"},
		{From: "o", To: "k", Color: "blue"},
	}
}

// v = 2i + 3j + 5k, w = 3i + 2j + k and the difference d = w - v drawn from
// the tip of v.
func galileoVectors() []VectorConfig {
	return []VectorConfig{
		{Name: "v", Terms: []TermConfig{{"i", 2}, {"j", 3}, {"k", 5}}},
		{Name: "w", Terms: []TermConfig{{"i", 3}, {"j", 2}, {"k", 1}}},
		{Name: "d", Terms: []TermConfig{{"w", 1}, {"v", -1}}},
	}
}

func galileoArrows() []ArrowConfig {
	return append([]ArrowConfig{
		{From: "o", To: "v", Color: "black"},
		{From: "o", To: "w", Color: "black"},
		{From: "v", To: "w", Color: "red"},
	}, axisArrows()...)
}

func basisPreset() *Config {
	cfg := DefaultConfig()
	cfg.Camera.Position = []float64{3, 3, 3}
	cfg.Vectors = nil
	cfg.Arrows = axisArrows()
	cfg.Spin.Vector = ""
	return cfg
}

func crossPreset() *Config {
	cfg := DefaultConfig()
	cfg.Camera.Position = []float64{6, 6, 6}
	cfg.Vectors = []VectorConfig{
		{Name: "a", Terms: []TermConfig{{"i", 2}, {"j", 1}}},
		{Name: "b", Terms: []TermConfig{{"j", 2}, {"k", 1}}},
		{Name: "axb", Cross: []string{"a", "b"}},
		{Name: "n", Cross: []string{"a", "b"}, Normalize: true},
	}
	cfg.Arrows = append([]ArrowConfig{
		{From: "o", To: "a", Color: "orange"},
		{From: "o", To: "b", Color: "purple"},
		{From: "o", To: "axb", Color: "black"},
		{From: "o", To: "n", Color: "gray"},
	}, axisArrows()...)
	cfg.Spin.Vector = "a"
	cfg.Spin.Axis = []float64{0, 0, 1}
	return cfg
}

func planePreset() *Config {
	cfg := DefaultConfig()
	cfg.Camera.Position = []float64{2, 2, 12}
	cfg.Camera.Target = []float64{2, 2, 0}
	cfg.Vectors = []VectorConfig{
		{Name: "p", Value: []float64{3, 1}},
		{Name: "q", Value: []float64{1, 2}},
		{Name: "r", Terms: []TermConfig{{"p", 1}, {"q", 1}}},
		{Name: "n", Cross: []string{"p", "q"}},
	}
	cfg.Arrows = []ArrowConfig{
		{From: "o", To: "p", Color: "blue"},
		{From: "o", To: "q", Color: "green"},
		{From: "p", To: "r", Color: "gray"},
		{From: "q", To: "r", Color: "gray"},
		{From: "o", To: "n", Color: "red"},
	}
	cfg.Spin.Vector = "p"
	cfg.Spin.Axis = []float64{0, 0, 1}
	return cfg
}
