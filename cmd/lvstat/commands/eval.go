// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/katalvlaran/lvstat/elementwise"
	"github.com/katalvlaran/lvstat/pareto"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// ErrUnknownFunction is returned when eval is asked for a function it does not know.
	ErrUnknownFunction = errors.New("unknown function")

	// ErrNoInput is returned when eval gets neither values nor --input.
	ErrNoInput = errors.New("no input values")

	// ErrAmbiguousInput is returned when eval gets both values and --input.
	ErrAmbiguousInput = errors.New("values and --input are mutually exclusive")
)

type applyFunc func(*pareto.Distribution, elementwise.Value) (elementwise.Value, error)

var evalFuncs = map[string]applyFunc{
	"pdf":      (*pareto.Distribution).ApplyPDF,
	"cdf":      (*pareto.Distribution).ApplyCDF,
	"quantile": (*pareto.Distribution).ApplyQuantile,
	"mgf":      (*pareto.Distribution).ApplyMGF,
}

func functionNames() []string {
	names := make([]string, 0, len(evalFuncs))
	for name := range evalFuncs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// EvalReport is the YAML form of an eval run.
type EvalReport struct {
	Function string  `yaml:"function"`
	Shape    float64 `yaml:"shape"`
	Scale    float64 `yaml:"scale"`
	Kind     string  `yaml:"kind"`
	Input    any     `yaml:"input"`
	Result   any     `yaml:"result"`
}

// NewEvalCmd evaluates one function over values given on the command line
// or over a YAML document.
func NewEvalCmd(o *rootOptions) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "eval <pdf|cdf|quantile|mgf> [values...]",
		Short: "Evaluate pdf, cdf, quantile or mgf element-wise",
		Long: `Evaluate one function over a scalar, a sequence or a grid.

A single value is a scalar and several values form a sequence. --input
reads a YAML number, list or list of equal-length rows (a grid); the
result keeps the input shape.`,
		Example: `  lvstat eval cdf 3 6 12 --shape 2 --scale 3
  lvstat eval quantile 0.5 0.9 -o table
  lvstat eval mgf --shape 1 -- -1 -0.5
  echo '[[3, 4], [5, 6]]' | lvstat eval pdf --input - --shape 2 --scale 3`,
		ValidArgs: functionNames(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: want one of %v", ErrUnknownFunction, functionNames())
			}
			if _, ok := evalFuncs[args[0]]; !ok {
				return fmt.Errorf("%w %q: want one of %v", ErrUnknownFunction, args[0], functionNames())
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name, fn := args[0], evalFuncs[args[0]]

			in, err := evalInput(args[1:], inputPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			d, err := o.distribution(cmd)
			if err != nil {
				return err
			}

			out, err := fn(d, in)
			if err != nil {
				return err
			}
			o.logger.Debug("evaluated",
				zap.String("function", name),
				zap.Stringer("kind", out.Kind()),
				zap.Int("len", out.Len()))

			output, _ := parseOutput(o.output)
			if output == OutputTable {
				return renderEvalTable(name, in, out, cmd.OutOrStdout())
			}
			a, b := d.Params()

			return RenderYAML(EvalReport{
				Function: name,
				Shape:    a,
				Scale:    b,
				Kind:     out.Kind().String(),
				Input:    in.Interface(),
				Result:   out.Interface(),
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "YAML file with a number, a list or a list of rows; - reads stdin")

	return cmd
}

// evalInput turns the positional values or the --input document into a Value.
func evalInput(values []string, inputPath string, stdin io.Reader) (elementwise.Value, error) {
	switch {
	case inputPath != "" && len(values) > 0:
		return elementwise.Value{}, ErrAmbiguousInput
	case inputPath != "":
		raw, err := readInput(inputPath, stdin)
		if err != nil {
			return elementwise.Value{}, err
		}
		return elementwise.Classify(raw)
	case len(values) == 0:
		return elementwise.Value{}, ErrNoInput
	}

	xs := make([]float64, len(values))
	for i, s := range values {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return elementwise.Value{}, fmt.Errorf("value %q: %w", s, elementwise.ErrInvalidInput)
		}
		xs[i] = x
	}
	if len(xs) == 1 {
		return elementwise.Scalar(xs[0]), nil
	}

	return elementwise.Sequence(xs), nil
}

func renderEvalTable(name string, in, out elementwise.Value, w io.Writer) error {
	switch out.Kind() {
	case elementwise.KindScalar:
		return RenderTable([]string{"x", name}, [][]string{{formatFloat(in.Float()), formatFloat(out.Float())}}, w)
	case elementwise.KindSequence:
		xs, ys := in.Slice(), out.Slice()
		rows := make([][]string, len(ys))
		for i := range ys {
			rows[i] = []string{formatFloat(xs[i]), formatFloat(ys[i])}
		}
		return RenderTable([]string{"x", name}, rows, w)
	default:
		g := out.Grid()
		header := make([]string, g.Cols()+1)
		header[0] = name
		for j := 0; j < g.Cols(); j++ {
			header[j+1] = strconv.Itoa(j)
		}
		rows := make([][]string, 0, g.Rows())
		for i, r := range g.ToRows() {
			rows = append(rows, append([]string{strconv.Itoa(i)}, formatRow(r)...))
		}
		return RenderTable(header, rows, w)
	}
}
