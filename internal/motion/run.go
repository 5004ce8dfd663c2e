package motion

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/galileo/internal/vector"
)

func validate(cfg Config) error {
	if cfg.Dt <= 0 || cfg.Duration <= 0 {
		return fmt.Errorf("%w: dt=%g duration=%g", ErrInvalidStep, cfg.Dt, cfg.Duration)
	}
	return nil
}

// Run integrates sys from x0 for cfg.Duration. On cancellation the partial
// result is returned together with the context error.
func Run(ctx context.Context, sys System, integ Integrator, x0 vector.Vec3d, cfg Config) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	steps := int(math.Round(cfg.Duration / cfg.Dt))
	result := &Result{
		States: make([]vector.Vec3d, 0, steps+1),
		Times:  make([]float64, 0, steps+1),
	}

	x, t := x0, 0.0
	m0 := x0.Magnitude()
	result.States = append(result.States, x)
	result.Times = append(result.Times, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		x = integ.Step(sys, x, t, cfg.Dt)
		t += cfg.Dt

		if !x.IsFinite() {
			return result, &StepError{Step: i, Time: t, Wrapped: ErrDiverged}
		}
		if m0 != 0 {
			result.Drift = math.Max(result.Drift, math.Abs(x.Magnitude()-m0)/m0)
		}

		result.States = append(result.States, x)
		result.Times = append(result.Times, t)
	}

	return result, nil
}

// Magnitudes returns |X| for every recorded state.
func (r *Result) Magnitudes() []float64 {
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		out[i] = s.Magnitude()
	}
	return out
}
