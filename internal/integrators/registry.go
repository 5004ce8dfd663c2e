package integrators

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/galileo/internal/motion"
)

var ErrUnknown = errors.New("integrators: unknown integrator")

var registry = map[string]func() motion.Integrator{
	"euler":    func() motion.Integrator { return NewEuler() },
	"midpoint": func() motion.Integrator { return NewMidpoint() },
	"rk4":      func() motion.Integrator { return NewRK4() },
}

func New(name string) (motion.Integrator, error) {
	mk, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return mk(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
