package resval

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// DefaultStandardScreenHeight is the reference height (iPhone X) used as
// the scaling denominator when nothing else is configured.
const DefaultStandardScreenHeight = 812

// EnvPrefix prefixes the environment variables read by OptionsFromEnv.
const EnvPrefix = "RESVAL_"

// validate is the shared validator instance.
var validate = validator.New()

// Config is the active engine configuration.
type Config struct {
	// StandardScreenHeight is the design-time screen height that base
	// sizes are expressed against.
	StandardScreenHeight float64 `json:"standard_screen_height" yaml:"standard_screen_height" validate:"gt=0"`

	// EnableCaching memoizes computed values until the next dimension
	// change or reconfiguration.
	EnableCaching bool `json:"enable_caching" yaml:"enable_caching"`
}

// DefaultConfig returns the configuration a new engine starts with.
func DefaultConfig() Config {
	return Config{
		StandardScreenHeight: DefaultStandardScreenHeight,
		EnableCaching:        true,
	}
}

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// Options is a partial configuration update. Nil fields keep their
// current value.
type Options struct {
	StandardScreenHeight *float64 `json:"standard_screen_height,omitempty" yaml:"standard_screen_height,omitempty" env:"STANDARD_SCREEN_HEIGHT"`
	EnableCaching        *bool    `json:"enable_caching,omitempty" yaml:"enable_caching,omitempty" env:"ENABLE_CACHING"`
}

// WithStandardScreenHeight returns a copy of o with the standard height set.
func (o Options) WithStandardScreenHeight(h float64) Options {
	o.StandardScreenHeight = &h
	return o
}

// WithCaching returns a copy of o with caching toggled.
func (o Options) WithCaching(enabled bool) Options {
	o.EnableCaching = &enabled
	return o
}

// merge applies o on top of c.
func (o Options) merge(c Config) Config {
	if o.StandardScreenHeight != nil {
		c.StandardScreenHeight = *o.StandardScreenHeight
	}
	if o.EnableCaching != nil {
		c.EnableCaching = *o.EnableCaching
	}
	return c
}

// LoadOptions decodes a partial configuration document.
func LoadOptions(data []byte, codec Codec) (Options, error) {
	var o Options
	if err := codec.Unmarshal(data, &o); err != nil {
		return Options{}, fmt.Errorf("decode options: %w", err)
	}
	return o, nil
}

// OptionsFromEnv reads RESVAL_STANDARD_SCREEN_HEIGHT and
// RESVAL_ENABLE_CACHING. Unset variables leave the field nil.
func OptionsFromEnv() (Options, error) {
	var o Options
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		return Options{}, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}
