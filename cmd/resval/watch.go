package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/zoobzio/resval"
	"github.com/zoobzio/resval/pkg/file"
	"go.uber.org/zap"
)

// reporter prints a line of sample values each time the engine follows a
// dimension change.
type reporter struct {
	resval.NoOpMetricsProvider

	mu     sync.Mutex
	out    io.Writer
	engine *resval.Engine
	sample float64
}

func (r *reporter) OnDimensionsChanged(_, to resval.Dimensions) {
	r.report(to)
}

func (r *reporter) OnWarning(code resval.Code) {
	logger.Debug("warning recorded", zap.String("code", string(code)))
}

func (r *reporter) report(d resval.Dimensions) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "%s %s  value(%s)=%s  wp(50)=%s  hp(50)=%s\n",
		d, d.Orientation(),
		formatValue(r.sample),
		formatValue(r.engine.ResValue(r.sample).Value),
		formatValue(r.engine.WP(50).Value),
		formatValue(r.engine.HP(50).Value),
	)
}

func newWatchCmd(flags *engineFlags) *cobra.Command {
	var (
		path     string
		sample   float64
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow a dimensions file and print scaled values",
		Long: `Watches a JSON or YAML file holding {"width": W, "height": H} and prints
scaled values every time it changes. Emulators and preview tools write the
file; the platform and notch come from --device and the override flags.

Example:
  resval watch --file screen.json --device pixel-5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := flags.resolveDevice(cmd)
			if err != nil {
				return err
			}

			provider := file.New(path)
			rep := &reporter{out: cmd.OutOrStdout(), sample: sample}
			e := resval.New(provider).
				Codec(provider.Codec()).
				Platform(d.Platform).
				Probe(resval.StaticProbe(d.Notch)).
				Debounce(debounce).
				Metrics(rep)
			rep.engine = e

			if err := flags.configure(cmd, e); err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := e.Start(ctx); err != nil {
				return err
			}
			defer e.Stop()

			logger.Info("watching dimensions", zap.String("file", path))
			rep.report(e.Tracked())

			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "Dimensions file to watch")
	cmd.Flags().Float64Var(&sample, "sample", 16, "Design-time size to report")
	cmd.Flags().DurationVar(&debounce, "debounce", 0, "Coalesce changes arriving within this window")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
