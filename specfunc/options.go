// SPDX-License-Identifier: MIT

package specfunc

// Tail selects which side of the integral IncompleteGamma evaluates.
//
//   - Upper: Γ(s, x) = ∫_x^∞ t^(s-1) e^(-t) dt
//   - Lower: γ(s, x) = ∫_0^x t^(s-1) e^(-t) dt
type Tail int

const (
	// Upper selects the upper tail Γ(s, x). This is the default.
	Upper Tail = iota

	// Lower selects the lower tail γ(s, x).
	Lower
)

// String returns "upper" or "lower".
func (t Tail) String() string {
	if t == Lower {
		return "lower"
	}

	return "upper"
}

// Defaults mirror what the Pareto MGF needs: non-regularized upper tail.
const (
	DefaultRegularized = false
	DefaultTail        = Upper
)

// Option configures a single IncompleteGamma evaluation.
type Option func(*options)

type options struct {
	regularized bool
	tail        Tail
}

// WithRegularized divides the result by Γ(s) when on.
func WithRegularized(on bool) Option {
	return func(o *options) { o.regularized = on }
}

// WithTail picks the tail to integrate. Values other than Upper and Lower
// fall back to Upper.
func WithTail(t Tail) Option {
	return func(o *options) {
		if t != Lower {
			t = Upper
		}
		o.tail = t
	}
}

// gatherOptions applies opts left to right over the defaults.
func gatherOptions(opts []Option) options {
	o := options{regularized: DefaultRegularized, tail: DefaultTail}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
