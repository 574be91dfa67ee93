// SPDX-License-Identifier: MIT

package pareto

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Config is the plain-object form of the construction options.
// A nil field means "use the default".
type Config struct {
	Shape *float64 `mapstructure:"shape" yaml:"shape,omitempty"`
	Scale *float64 `mapstructure:"scale" yaml:"scale,omitempty"`
}

// Options converts the present fields into Options for New.
func (c Config) Options() []Option {
	var opts []Option
	if c.Shape != nil {
		opts = append(opts, WithShape(*c.Shape))
	}
	if c.Scale != nil {
		opts = append(opts, WithScale(*c.Scale))
	}

	return opts
}

// NewFromMap builds a Distribution from an untyped configuration, the form
// produced by decoding YAML or JSON.
//
// Accepted inputs:
//   - nil: all defaults
//   - map[string]any, map[string]float64, map[string]int: keys "shape" and
//     "scale" (case-insensitive); other keys are ignored
//   - Config or *Config
//
// Errors:
//   - ErrInvalidConstruction if cfg is none of the above.
//   - ErrInvalidParameter if shape or scale is present but null,
//     non-numeric, non-positive, NaN or infinite.
func NewFromMap(cfg any) (*Distribution, error) {
	var c Config

	switch t := cfg.(type) {
	case nil:
		return New()
	case Config:
		c = t
	case *Config:
		if t != nil {
			c = *t
		}
	case map[string]any:
		for k, v := range t {
			if v != nil {
				continue
			}
			for _, key := range []string{paramShape, paramScale} {
				if strings.EqualFold(k, key) {
					return nil, fmt.Errorf("pareto.NewFromMap: %s is null: %w", k, ErrInvalidParameter)
				}
			}
		}
		if err := decodeConfig(t, &c); err != nil {
			return nil, err
		}
	case map[string]float64, map[string]int:
		if err := decodeConfig(t, &c); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("pareto.NewFromMap(%T): %w", cfg, ErrInvalidConstruction)
	}

	d, err := New(c.Options()...)
	if err != nil {
		return nil, fmt.Errorf("pareto.NewFromMap: %w", err)
	}

	return d, nil
}

// decodeConfig fills c from a map. Numbers of any Go kind convert; strings,
// bools and nested values do not.
func decodeConfig(in any, c *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  c,
		TagName: "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("pareto.NewFromMap: %w", err)
	}
	if err := dec.Decode(in); err != nil {
		return fmt.Errorf("pareto.NewFromMap: %w: %v", ErrInvalidParameter, err)
	}

	return nil
}
