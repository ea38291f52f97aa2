package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zoobzio/resval"
	"go.uber.org/zap"
)

// sizeFunc is a sizing method of resval.Engine.
type sizeFunc func(*resval.Engine, float64) resval.Result

func newValueCmd(flags *engineFlags) *cobra.Command {
	var standard float64

	cmd := &cobra.Command{
		Use:   "value [size]",
		Short: "Scale a design-time size to the device",
		Long: `Scales a size designed against the standard screen height to the
selected device. With --for the size is scaled against that height instead
of the configured one.

Example:
  resval value 50 --device pixel-5
  resval value 50 --for 720`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn := (*resval.Engine).ResValue
			if cmd.Flags().Changed("for") {
				fn = func(e *resval.Engine, size float64) resval.Result {
					return e.ResValueFor(size, standard)
				}
			}
			return runSize(cmd, flags, args[0], fn)
		},
	}
	cmd.Flags().Float64Var(&standard, "for", 0, "Standard screen height to scale against")
	return cmd
}

func newPercentCmd(flags *engineFlags, name, short string, fn sizeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [percentage]",
		Short: short,
		Long:  short + ". Percentages outside 0..100 are clamped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSize(cmd, flags, args[0], fn)
		},
	}
}

func newSizeCmd(flags *engineFlags, name, short string, fn sizeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [size]",
		Short: short,
		Long:  short + " against the configured standard screen height.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSize(cmd, flags, args[0], fn)
		},
	}
}

// runSize parses arg, computes it with fn on a fresh engine and prints the
// value. Warnings go to stderr and the log; the value is printed regardless.
func runSize(cmd *cobra.Command, flags *engineFlags, arg string, fn sizeFunc) error {
	size, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", arg, err)
	}

	e, err := flags.engine(cmd)
	if err != nil {
		return err
	}
	defer e.Stop()

	r := fn(e, size)
	if r.Warning != nil {
		logger.Warn("value degraded",
			zap.String("command", cmd.Name()),
			zap.Float64("input", size),
			zap.String("code", string(r.Warning.Code)),
		)
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", r.Warning)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(r.Value, 'f', -1, 64))
	return nil
}
