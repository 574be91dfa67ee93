// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// OutputType selects how results are printed.
type OutputType string

const (
	OutputYAML  OutputType = "yaml"
	OutputTable OutputType = "table"
)

// ErrUnknownOutput is returned for an --output value other than yaml or table.
var ErrUnknownOutput = errors.New("unknown output format")

func parseOutput(s string) (OutputType, error) {
	switch t := OutputType(s); t {
	case OutputYAML, OutputTable:
		return t, nil
	default:
		return "", fmt.Errorf("%w %q (want %s or %s)", ErrUnknownOutput, s, OutputYAML, OutputTable)
	}
}

// RenderYAML writes obj as a YAML document. NaN and ±Inf become .nan / ±.inf.
func RenderYAML(obj any, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(obj); err != nil {
		return err
	}

	return enc.Close()
}

// RenderTable writes rows under header as an ASCII table.
func RenderTable(header []string, rows [][]string, w io.Writer) error {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	t.AppendBulk(rows)
	t.Render()

	return nil
}

// formatFloat prints the shortest exact form: 0.75, 1e-09, NaN, +Inf.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatRow(vs []float64) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = formatFloat(v)
	}

	return out
}
