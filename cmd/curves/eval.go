package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocurves/pkg/curves"
	"github.com/philipparndt/gocurves/pkg/report"
)

var (
	evalT      float64
	evalFormat string
)

var evalCmd = &cobra.Command{
	Use:   "eval <circle|ellipse|helix> <params...>",
	Short: "Evaluate a single curve",
	Long: `Evaluate one curve at t and print its point and first derivative.

  circle  <radius>
  ellipse <a> <b>
  helix   <radius> <step>`,
	Example: `  curves eval circle 2 --t 0
  curves eval helix 1.5 0.25 --t 3.14159`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseCurve(args[0], args[1:])
		if err != nil {
			return err
		}
		format, err := report.ParseFormat(evalFormat)
		if err != nil {
			return err
		}
		return report.Write(cmd.OutOrStdout(), format, fmt.Sprintf("t = %g", evalT), report.Evaluate([]curves.Curve{c}, evalT))
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().Float64Var(&evalT, "t", math.Pi/4, "Curve parameter to evaluate at")
	evalCmd.Flags().StringVarP(&evalFormat, "format", "f", report.Plain.String(), "Output format (plain, table, markdown)")
}

// parseCurve builds a curve of the named kind from its textual parameters.
func parseCurve(kind string, args []string) (curves.Curve, error) {
	params := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid parameter %q: %w", arg, err)
		}
		params[i] = v
	}

	want := func(n int) error {
		if len(params) != n {
			return fmt.Errorf("%s takes %d parameter(s), got %d", kind, n, len(params))
		}
		return nil
	}

	switch strings.ToLower(kind) {
	case "circle":
		if err := want(1); err != nil {
			return nil, err
		}
		c, err := curves.NewCircle(params[0])
		if err != nil {
			return nil, err
		}
		return c, nil
	case "ellipse":
		if err := want(2); err != nil {
			return nil, err
		}
		e, err := curves.NewEllipse(params[0], params[1])
		if err != nil {
			return nil, err
		}
		return e, nil
	case "helix":
		if err := want(2); err != nil {
			return nil, err
		}
		h, err := curves.NewHelix(params[0], params[1])
		if err != nil {
			return nil, err
		}
		return h, nil
	default:
		return nil, fmt.Errorf("unknown curve %q (want circle, ellipse or helix)", kind)
	}
}
