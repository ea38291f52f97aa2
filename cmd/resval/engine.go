package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zoobzio/resval"
	"go.uber.org/zap"
)

// engineFlags describe the screen and configuration a command sizes against.
type engineFlags struct {
	device         string
	width          float64
	height         float64
	os             string
	statusBar      float64
	notch          bool
	standardHeight float64
	noCache        bool
	config         string
}

func (f *engineFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.device, "device", "d", resval.IPhoneX.Name,
		"Reference device ("+strings.Join(resval.DeviceNames(), ", ")+")")
	pf.Float64Var(&f.width, "width", 0, "Override the screen width")
	pf.Float64Var(&f.height, "height", 0, "Override the screen height")
	pf.StringVar(&f.os, "os", "", "Override the platform OS (ios, android)")
	pf.Float64Var(&f.statusBar, "status-bar", 0, "Platform-reported status bar height (android)")
	pf.BoolVar(&f.notch, "notch", false, "Override whether the device has a notch")
	pf.Float64Var(&f.standardHeight, "standard-height", 0, "Standard screen height sizes are designed against")
	pf.BoolVar(&f.noCache, "no-cache", false, "Disable value caching")
	pf.StringVarP(&f.config, "config", "c", "", "Options file (JSON or YAML)")
}

// resolveDevice applies the override flags to the selected preset.
func (f *engineFlags) resolveDevice(cmd *cobra.Command) (resval.Device, error) {
	d, ok := resval.LookupDevice(f.device)
	if !ok {
		return resval.Device{}, fmt.Errorf("unknown device %q (known: %s)",
			f.device, strings.Join(resval.DeviceNames(), ", "))
	}

	flags := cmd.Flags()
	if f.width > 0 {
		d.Dimensions.Width = f.width
	}
	if f.height > 0 {
		d.Dimensions.Height = f.height
	}
	if flags.Changed("os") {
		d.Platform.OS = strings.ToLower(f.os)
	}
	if flags.Changed("status-bar") {
		d.Platform.StatusBarHeight = f.statusBar
	}
	if flags.Changed("notch") {
		d.Notch = f.notch
	}
	if !d.Dimensions.Valid() {
		return resval.Device{}, fmt.Errorf("invalid screen size %s", d.Dimensions)
	}
	return d, nil
}

// options collects configuration in precedence order: environment, file, flags.
func (f *engineFlags) options(cmd *cobra.Command) ([]resval.Options, error) {
	fromEnv, err := resval.OptionsFromEnv()
	if err != nil {
		return nil, err
	}
	opts := []resval.Options{fromEnv}

	if f.config != "" {
		data, err := os.ReadFile(f.config)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		fromFile, err := resval.LoadOptions(data, resval.CodecFor(filepath.Ext(f.config)))
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f.config, err)
		}
		opts = append(opts, fromFile)
	}

	var fromFlags resval.Options
	if cmd.Flags().Changed("standard-height") {
		fromFlags = fromFlags.WithStandardScreenHeight(f.standardHeight)
	}
	if f.noCache {
		fromFlags = fromFlags.WithCaching(false)
	}
	return append(opts, fromFlags), nil
}

// configure applies every options layer to e.
func (f *engineFlags) configure(cmd *cobra.Command, e *resval.Engine) error {
	opts, err := f.options(cmd)
	if err != nil {
		return err
	}
	for _, o := range opts {
		if err := e.Configure(o); err != nil {
			return err
		}
	}
	return nil
}

// engine builds and starts a sync-mode engine showing the selected device.
// The caller stops it.
func (f *engineFlags) engine(cmd *cobra.Command) (*resval.Engine, error) {
	d, err := f.resolveDevice(cmd)
	if err != nil {
		return nil, err
	}
	e, _ := d.Engine()
	if err := f.configure(cmd, e); err != nil {
		return nil, err
	}
	if err := e.Start(cmd.Context()); err != nil {
		return nil, err
	}
	logger.Debug("engine ready",
		zap.String("device", d.Name),
		zap.Stringer("dimensions", d.Dimensions),
		zap.String("os", d.Platform.OS),
		zap.Bool("notch", d.Notch),
	)
	return e, nil
}
