package stego

import "errors"

// Sentinel error kinds, surfaced unchanged by the façade and mapped
// to CLI exit codes by internal/cli.
var (
	ErrSecretTooLarge  = errors.New("secret too large for cover capacity")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrWavRead         = errors.New("malformed wav or unsupported dtype")
	ErrFileNotFound    = errors.New("input file not found")
	ErrOutputExists    = errors.New("output file exists")
)
