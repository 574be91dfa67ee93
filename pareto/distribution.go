// SPDX-License-Identifier: MIT
//
// File: distribution.go
// Role: The stateful handle over the pure factories.
// Policy:
//   - (shape, scale) is the only mutable state; factories and Apply stay pure.
//   - Every read works on one consistent snapshot taken under the read lock.
//   - A rejected setter leaves the stored value untouched.

package pareto

import (
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/lvstat/elementwise"
)

// Distribution is a Pareto(shape, scale) distribution with mutable
// parameters.
//
// The zero value is ready to use and behaves as Pareto(DefaultShape,
// DefaultScale); an unset field reads as its default.
//
// Concurrency:
//   - mu guards shape and scale; setters take the write lock, every other
//     method takes the read lock once and works on the snapshot.
//   - Evaluators returned by PDF/CDF/Quantile/MGF are immutable values and
//     may be shared freely across goroutines.
type Distribution struct {
	mu    sync.RWMutex
	shape float64 // a > 0, finite; 0 only in the zero value
	scale float64 // b > 0, finite; 0 only in the zero value
}

// New creates a Distribution with shape = scale = 1 unless overridden by
// WithShape / WithScale.
//
// Implementation:
//   - Stage 1: Apply options left to right over the defaults.
//   - Stage 2: If any option carried an invalid value, aggregate all of them
//     into one error; no Distribution is returned.
//
// Errors:
//   - ErrInvalidParameter (possibly several, joined) for non-positive, NaN or
//     infinite parameters. Match with errors.Is.
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func New(opts ...Option) (*Distribution, error) {
	s := gatherOptions(opts)
	if len(s.errs) > 0 {
		var merr *multierror.Error
		for _, err := range s.errs {
			merr = multierror.Append(merr, err)
		}
		return nil, fmt.Errorf("pareto.New: %w", merr.ErrorOrNil())
	}

	return &Distribution{shape: s.shape, scale: s.scale}, nil
}

// params returns a consistent (shape, scale) snapshot, substituting the
// defaults for fields the zero value left unset.
func (d *Distribution) params() (a, b float64) {
	d.mu.RLock()
	a, b = d.shape, d.scale
	d.mu.RUnlock()

	if a == 0 {
		a = DefaultShape
	}
	if b == 0 {
		b = DefaultScale
	}

	return a, b
}

// Params returns the current (shape, scale) pair.
func (d *Distribution) Params() (shape, scale float64) {
	return d.params()
}

// Shape returns the current shape parameter a.
func (d *Distribution) Shape() float64 {
	a, _ := d.params()
	return a
}

// SetShape replaces the shape parameter and returns the handle for chaining.
//
// Behavior highlights:
//   - Validation happens before the lock is taken; a rejected value never
//     reaches the stored field.
//   - Evaluators obtained earlier keep their old snapshot.
//
// Errors:
//   - ErrInvalidParameter if v is not a positive finite number. The stored
//     shape is unchanged and the returned handle is nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func (d *Distribution) SetShape(v float64) (*Distribution, error) {
	if err := validateParameter(paramShape, v); err != nil {
		return nil, fmt.Errorf("SetShape: %w", err)
	}
	d.mu.Lock()
	d.shape = v
	d.mu.Unlock()

	return d, nil
}

// Scale returns the current scale parameter b.
func (d *Distribution) Scale() float64 {
	_, b := d.params()
	return b
}

// SetScale replaces the scale parameter and returns the handle for chaining.
// Same contract as SetShape.
func (d *Distribution) SetScale(v float64) (*Distribution, error) {
	if err := validateParameter(paramScale, v); err != nil {
		return nil, fmt.Errorf("SetScale: %w", err)
	}
	d.mu.Lock()
	d.scale = v
	d.mu.Unlock()

	return d, nil
}

// Support returns the closed-open interval [scale, +Inf).
func (d *Distribution) Support() Interval {
	_, b := d.params()
	return supportOf(b)
}

// Mean returns +Inf for shape <= 1, else a·b/(a-1).
func (d *Distribution) Mean() float64 {
	return meanOf(d.params())
}

// Variance returns +Inf for 0.5 < shape <= 2, (b/(a-1))²·a/(a-2) for
// shape > 2, and NaN otherwise.
func (d *Distribution) Variance() float64 {
	return varianceOf(d.params())
}

// Median returns b·2^(1/a).
func (d *Distribution) Median() float64 {
	return medianOf(d.params())
}

// Mode returns the scale parameter.
func (d *Distribution) Mode() float64 {
	_, b := d.params()
	return b
}

// Skewness returns 2(1+a)/(a-3)·√((a-2)/a) for shape > 3, else NaN.
func (d *Distribution) Skewness() float64 {
	a, _ := d.params()
	return skewnessOf(a)
}

// ExKurtosis returns the excess kurtosis
// 6(a³+a²-6a-2) / (a(a-3)(a-4)) for shape > 4, else NaN.
func (d *Distribution) ExKurtosis() float64 {
	a, _ := d.params()
	return exKurtosisOf(a)
}

// Entropy returns ln(b/a) + 1/a + 1.
func (d *Distribution) Entropy() float64 {
	return entropyOf(d.params())
}

// PDF returns the density bound to the current parameters.
func (d *Distribution) PDF() PDF {
	return NewPDF(d.params())
}

// CDF returns the CDF bound to the current parameters.
func (d *Distribution) CDF() CDF {
	return NewCDF(d.params())
}

// Quantile returns the quantile function bound to the current parameters.
func (d *Distribution) Quantile() Quantile {
	return NewQuantile(d.params())
}

// MGF returns the moment generating function bound to the current parameters.
func (d *Distribution) MGF() MGF {
	return NewMGF(d.params())
}

// ApplyPDF evaluates the density over a scalar, sequence or grid.
//
// Errors:
//   - ErrInvalidInput if in is not a valid shape.
//
// Complexity:
//   - Time O(n), Space O(n) for the result.
func (d *Distribution) ApplyPDF(in elementwise.Value) (elementwise.Value, error) {
	return apply("ApplyPDF", d.PDF(), in)
}

// ApplyCDF evaluates the CDF over a scalar, sequence or grid.
func (d *Distribution) ApplyCDF(in elementwise.Value) (elementwise.Value, error) {
	return apply("ApplyCDF", d.CDF(), in)
}

// ApplyQuantile evaluates the quantile function over a scalar, sequence or grid.
func (d *Distribution) ApplyQuantile(in elementwise.Value) (elementwise.Value, error) {
	return apply("ApplyQuantile", d.Quantile(), in)
}

// ApplyMGF evaluates the MGF over a scalar, sequence or grid.
func (d *Distribution) ApplyMGF(in elementwise.Value) (elementwise.Value, error) {
	return apply("ApplyMGF", d.MGF(), in)
}

// apply runs the applicator and tags failures with the calling method.
func apply(op string, f elementwise.Evaluator, in elementwise.Value) (elementwise.Value, error) {
	out, err := elementwise.Apply(f, in)
	if err != nil {
		return elementwise.Value{}, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
