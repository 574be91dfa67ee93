// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewMomentsCmd prints every closed-form summary of the distribution.
func NewMomentsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "moments",
		Aliases: []string{"m", "summary"},
		Short:   "Print mean, variance, median, mode, skewness, kurtosis and entropy",
		Example: `  lvstat moments --shape 5 --scale 10
  lvstat moments -c pareto.yaml -o table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := o.distribution(cmd)
			if err != nil {
				return err
			}
			m := d.Summary()
			o.logger.Debug("moments", zap.Float64("mean", m.Mean), zap.Float64("variance", m.Variance))

			output, _ := parseOutput(o.output)
			if output == OutputYAML {
				return RenderYAML(m, cmd.OutOrStdout())
			}

			rows := [][]string{
				{"shape", formatFloat(m.Shape)},
				{"scale", formatFloat(m.Scale)},
				{"support", m.Support.String()},
				{"mean", formatFloat(m.Mean)},
				{"variance", formatFloat(m.Variance)},
				{"median", formatFloat(m.Median)},
				{"mode", formatFloat(m.Mode)},
				{"skewness", formatFloat(m.Skewness)},
				{"ekurtosis", formatFloat(m.ExKurtosis)},
				{"entropy", formatFloat(m.Entropy)},
			}

			return RenderTable([]string{"moment", "value"}, rows, cmd.OutOrStdout())
		},
	}
}
