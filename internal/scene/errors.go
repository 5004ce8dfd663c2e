package scene

import "errors"

// Domain errors for scene construction.
var (
	// ErrUnknownVector indicates a reference to a vector that was never defined.
	ErrUnknownVector = errors.New("scene: unknown vector")

	// ErrDuplicateVector indicates a name defined twice, or a builtin redefined.
	ErrDuplicateVector = errors.New("scene: vector already defined")

	// ErrNonFinite indicates a vector with NaN or Inf components.
	ErrNonFinite = errors.New("scene: vector is not finite (NaN or Inf detected)")

	// ErrUnknownColor indicates a color that is neither a palette name nor #rrggbb.
	ErrUnknownColor = errors.New("scene: unknown color")

	// ErrEmptyName indicates a vector without a name.
	ErrEmptyName = errors.New("scene: vector name is empty")
)
