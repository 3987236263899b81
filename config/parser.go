// Package config contains the configuration of a pedstats run.
package config

import (
	"encoding/json"
	"net/url"
	"os"

	"github.com/larpix/pedstats/internal/model"
	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
)

// Config is the configuration of a single run. Build a fresh instance for
// each run using [New] or [ReadConfig]; instances are not shared.
type Config struct {
	// InputFile is the dataset to read.
	InputFile string `json:"-"`

	// OutputFile is where to write the JSON report.
	OutputFile string `json:"-"`

	// ControllerConfig is accepted for compatibility with the DAQ
	// scripts and otherwise ignored.
	ControllerConfig string `json:"-"`

	// Channels contains the channels to process. A nil value means
	// every channel of the chip.
	Channels []int `json:"channels"`

	// DisabledChannels contains the channels to skip.
	DisabledChannels []int `json:"disabled_channels"`

	// RequireWeather makes a weather failure fatal.
	RequireWeather bool `json:"require_weather"`

	Weather Weather `json:"weather"`
}

// New returns a new config with default settings.
func New() *Config {
	c := &Config{}
	c.Default()
	return c
}

// ReadConfig reads the configuration from the path
func ReadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(model.ErrInvalidConfig, "reading config: %s", err.Error())
	}

	c, err := ParseConfig(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	return c, nil
}

// ParseConfig returns config from JSON bytes. Comments and trailing
// commas are allowed.
func ParseConfig(b []byte) (*Config, error) {
	b, err := hujson.Standardize(b)
	if err != nil {
		return nil, errors.Wrapf(model.ErrInvalidConfig, "parsing hujson: %s", err.Error())
	}

	var c Config
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrapf(model.ErrInvalidConfig, "parsing json: %s", err.Error())
	}

	c.Default()

	if err := c.validateSettings(); err != nil {
		return nil, errors.Wrap(err, "validating")
	}

	return &c, nil
}

// Default fills the unset settings with their default values.
func (c *Config) Default() {
	defaults := defaultWeather()
	if c.Weather.BaseURL == "" {
		c.Weather.BaseURL = defaults.BaseURL
	}
	if c.Weather.City == "" {
		c.Weather.City = defaults.City
	}
	if c.Weather.TimeoutSeconds == 0 {
		c.Weather.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if c.Weather.APIKey == "" {
		c.Weather.APIKey = os.Getenv(EnvAPIKey)
	}
}

// Validate validates the config of a run.
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return errors.Wrap(model.ErrInvalidConfig, "no input file")
	}
	if c.OutputFile == "" {
		return errors.Wrap(model.ErrInvalidConfig, "no output file")
	}
	return c.validateSettings()
}

// validateSettings validates the settings that may come from a file.
func (c *Config) validateSettings() error {
	if err := validateChannels(c.Channels); err != nil {
		return errors.Wrap(err, "channels")
	}
	if err := validateChannels(c.DisabledChannels); err != nil {
		return errors.Wrap(err, "disabled_channels")
	}
	if c.Weather.TimeoutSeconds < 0 {
		return errors.Wrap(model.ErrInvalidConfig, "negative weather timeout")
	}
	if _, err := url.Parse(c.Weather.BaseURL); err != nil {
		return errors.Wrapf(model.ErrInvalidConfig, "weather base URL: %s", err.Error())
	}
	return nil
}
