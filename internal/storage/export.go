package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/galileo/internal/motion"
)

type TrajectoryData struct {
	Vector     string       `json:"vector"`
	Integrator string       `json:"integrator"`
	Dt         float64      `json:"dt"`
	Duration   float64      `json:"duration"`
	Steps      int          `json:"steps"`
	Drift      float64      `json:"drift"`
	Times      []float64    `json:"times"`
	States     [][3]float64 `json:"states"`
}

func newTrajectory(vec, integrator string, cfg motion.Config, result *motion.Result) TrajectoryData {
	data := TrajectoryData{
		Vector:     vec,
		Integrator: integrator,
		Dt:         cfg.Dt,
		Duration:   cfg.Duration,
		Steps:      len(result.Times),
		Drift:      result.Drift,
		Times:      result.Times,
		States:     make([][3]float64, len(result.States)),
	}
	for i, s := range result.States {
		data.States[i] = [3]float64{s.X, s.Y, s.Z}
	}
	return data
}

// WriteTrajectory encodes a spin run as indented JSON.
func WriteTrajectory(w io.Writer, vec, integrator string, cfg motion.Config, result *motion.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newTrajectory(vec, integrator, cfg, result))
}

func ExportTrajectory(path, vec, integrator string, cfg motion.Config, result *motion.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteTrajectory(file, vec, integrator, cfg, result)
}
