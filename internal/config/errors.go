package config

import "errors"

var (
	ErrUnknownPreset = errors.New("config: unknown preset")
	ErrComponents    = errors.New("config: bad component count")
	ErrDefinition    = errors.New("config: vector needs exactly one of value, terms or cross")
	ErrNormalizeZero = errors.New("config: cannot normalize the zero vector")
)
