// Command resval computes responsive sizes for reference devices and
// previews them live in the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/resval"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	// Drain pending signal hooks before exiting.
	capitan.Shutdown()
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	flags := &engineFlags{}

	root := &cobra.Command{
		Use:   "resval",
		Short: "Responsive sizing for mobile layouts",
		Long: `resval converts design-time pixel sizes into values for a device screen.

Sizes are expressed against a standard screen height (812, the iPhone X,
unless configured) and scaled to the selected device, accounting for the
status bar on notched and Android devices.

Configuration is read, in order, from RESVAL_* environment variables,
the --config file and the command line flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger == nil {
				config := zap.NewProductionConfig()
				if verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				var err error
				logger, err = config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
			}
			bridgeSignals(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.register(root)

	root.AddCommand(
		newValueCmd(flags),
		newPercentCmd(flags, "wp", "Width percentage of the screen", (*resval.Engine).WP),
		newPercentCmd(flags, "hp", "Height percentage of the screen", (*resval.Engine).HP),
		newSizeCmd(flags, "fs", "Scaled font size", (*resval.Engine).FS),
		newSizeCmd(flags, "spacing", "Scaled spacing", (*resval.Engine).Spacing),
		newSizeCmd(flags, "radius", "Scaled border radius", (*resval.Engine).Radius),
		newInfoCmd(flags),
		newDevicesCmd(),
		newWatchCmd(flags),
		newPreviewCmd(),
		newVersionCmd(),
	)
	return root
}
