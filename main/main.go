package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/phil-mansfield/splinterp"
	"github.com/phil-mansfield/splinterp/io"
	"github.com/phil-mansfield/splinterp/math/interpolate"
)

type options struct {
	k, der        int
	config, plot  string
	exampleConfig bool
	verbose       bool
}

func newRootCommand() *cobra.Command {
	opt := &options{}

	cmd := &cobra.Command{
		Use:   "splinterp [flags] filename x",
		Short: "Evaluate a spline fit to a table at a point.",
		Long: `splinterp reads a whitespace-separated table, fits an interpolating
spline to its first and third columns and prints the value of the spline at x
with four decimal places.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opt.exampleConfig {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opt, args)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(
		&opt.k, "k", "k", interpolate.DefaultDegree,
		"Degree of the spline. Must be in the range [1, 5].",
	)
	flags.IntVar(
		&opt.der, "der", 0,
		"Order of the derivative to evaluate. 0 evaluates the spline itself.",
	)
	flags.StringVar(
		&opt.config, "config", "",
		"Configuration file for [Interpolate] mode. Flags which are set "+
			"explicitly override its values.",
	)
	flags.BoolVar(
		&opt.exampleConfig, "example-config", false,
		"Prints an example configuration file to stdout.",
	)
	flags.StringVar(
		&opt.plot, "plot", "",
		"Also saves a plot of the fit to this file. Needs matplotlib.",
	)
	flags.BoolVarP(
		&opt.verbose, "verbose", "v", false,
		"Logs information about the fit to stderr.",
	)

	return cmd
}

func run(cmd *cobra.Command, opt *options, args []string) error {
	out := cmd.OutOrStdout()
	if opt.exampleConfig {
		fmt.Fprintln(out, io.ExampleInterpolateFile)
		return nil
	}

	fname := args[0]
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return errors.Errorf("x = '%s' is not a number", args[1])
	}

	con, err := readConfig(cmd, opt)
	if err != nil {
		return err
	}

	f, err := splinterp.FitFile(fname, con)
	if err != nil {
		return err
	}

	if opt.verbose {
		log.Printf(
			"Fit a degree %d spline with %d knots to %d points from %s.",
			f.Spline.Degree(), len(f.Spline.Knots()), len(f.Xs), fname,
		)
	}

	y := f.Eval(x)
	fmt.Fprintf(out, "%.4f\n", y)

	if opt.plot != "" {
		splinterp.Plot(opt.plot, f, []float64{x}, []float64{y})
	}
	return nil
}

// readConfig starts from the config file, if any, and applies the flags the
// user set explicitly.
func readConfig(
	cmd *cobra.Command, opt *options,
) (*io.InterpolateConfig, error) {
	con := &io.DefaultInterpolateWrapper().Interpolate
	if opt.config != "" {
		var err error
		con, err = splinterp.ReadConfig(opt.config)
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("k") {
		con.Degree = opt.k
	}
	if cmd.Flags().Changed("der") {
		con.Derivative = opt.der
	}
	return con, nil
}

// positionalNumbers moves the positional arguments behind a "--" so that a
// negative x isn't read as a cluster of shorthand flags. Flag values stay
// with their flags, so "-k -1" still sets k.
func positionalNumbers(cmd *cobra.Command, args []string) []string {
	flags, positional := []string{}, []string{}

loop:
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			break loop
		case isNumber(arg) || arg == "-" || !strings.HasPrefix(arg, "-"):
			positional = append(positional, arg)
		default:
			flags = append(flags, arg)
			if takesValue(cmd, arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		}
	}

	if len(positional) == 0 {
		return flags
	}
	return append(append(flags, "--"), positional...)
}

func isNumber(arg string) bool {
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

// takesValue reports whether the flag arg needs the next argument as its
// value. Only the last letter of a shorthand cluster can take one.
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	flags := cmd.Flags()
	if strings.HasPrefix(arg, "--") {
		f := flags.Lookup(arg[2:])
		return f != nil && f.NoOptDefVal == ""
	}
	f := flags.ShorthandLookup(arg[len(arg)-1:])
	return f != nil && f.NoOptDefVal == ""
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("splinterp: ")

	cmd := newRootCommand()
	cmd.SetArgs(positionalNumbers(cmd, os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		log.Fatal(err.Error())
	}
}
