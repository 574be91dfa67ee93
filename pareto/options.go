// SPDX-License-Identifier: MIT
// Package pareto: functional configuration for New.
//
// Design goals:
//   - Deterministic: options apply left to right; the last WithShape wins.
//   - Fail at construction, not at option creation: an invalid value is
//     recorded and New reports every invalid field at once.

package pareto

// Defaults used when an option is absent.
const (
	// DefaultShape is the shape parameter a of a Distribution built without WithShape.
	DefaultShape = 1.0

	// DefaultScale is the scale parameter b of a Distribution built without WithScale.
	DefaultScale = 1.0
)

// Option configures a Distribution at construction time.
type Option func(*settings)

// settings is the resolved configuration plus any validation failures.
type settings struct {
	shape float64
	scale float64
	errs  []error
}

// WithShape sets the shape parameter a. Non-positive, NaN or infinite
// values make New fail with ErrInvalidParameter.
func WithShape(v float64) Option {
	return func(s *settings) {
		if err := validateParameter(paramShape, v); err != nil {
			s.errs = append(s.errs, err)
			return
		}
		s.shape = v
	}
}

// WithScale sets the scale parameter b. Non-positive, NaN or infinite
// values make New fail with ErrInvalidParameter.
func WithScale(v float64) Option {
	return func(s *settings) {
		if err := validateParameter(paramScale, v); err != nil {
			s.errs = append(s.errs, err)
			return
		}
		s.scale = v
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) settings {
	s := settings{shape: DefaultShape, scale: DefaultScale}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return s
}
