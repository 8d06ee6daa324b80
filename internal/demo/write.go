package demo

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Write renders res to w. Text output prints one "metric(variant)=value"
// line per variant, grouped by metric, with THD-diff to two decimals. The
// MSE group is printed only when withMSE is set; YAML always carries it.
func Write(w io.Writer, res Result, format Format, withMSE bool) error {
	switch format {
	case FormatText:
		return writeText(w, res, withMSE)
	case FormatYAML:
		return writeYAML(w, res)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, res Result, withMSE bool) error {
	full := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	twoDecimals := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

	groups := []struct {
		metric string
		value  func(VariantReport) float64
		format func(float64) string
		skip   bool
	}{
		{"snr", func(v VariantReport) float64 { return v.SNR }, full, false},
		{"psnr", func(v VariantReport) float64 { return v.PSNR }, full, false},
		{"mse", func(v VariantReport) float64 { return v.MSE }, full, !withMSE},
		{"thd_diff", func(v VariantReport) float64 { return v.THDDiff }, twoDecimals, false},
	}

	for _, g := range groups {
		if g.skip {
			continue
		}

		for _, v := range res.Variants {
			if _, err := fmt.Fprintf(w, "%s(%s)=%s\n", g.metric, v.Name, g.format(g.value(v))); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

func writeYAML(w io.Writer, res Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("demo: encode yaml: %w", err)
	}

	return enc.Close()
}
