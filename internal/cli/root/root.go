// Package root contains the root command and its flags.
package root

import (
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/joho/godotenv"
	"github.com/larpix/pedstats/config"
	"github.com/larpix/pedstats/internal/log/handlers/cli"
	"github.com/larpix/pedstats/internal/version"
)

// Cmd is the root command
var Cmd = kingpin.New("pedstats", "Compute the pedestal statistics of a LArPix tile.")

// CmdFlags contains the flags of the root command.
var CmdFlags = AddFlags(Cmd)

// DotEnvFile is the file from which we load the environment if present.
const DotEnvFile = ".env"

// Flags contains the command line flags.
type Flags struct {
	ConfigFile       string
	InputFile        string
	OutputFile       string
	ControllerConfig string
	Channels         string
	DisabledChannels string
	City             string
	APIKey           string
	WeatherTimeout   time.Duration
	RequireWeather   bool
	Verbose          bool
}

// AddFlags registers the command line flags with app.
func AddFlags(app *kingpin.Application) *Flags {
	f := &Flags{}
	app.Flag("config", "Set a custom config file path").Short('c').StringVar(&f.ConfigFile)
	app.Flag("input_file", "Dataset containing the pedestal packets").Required().StringVar(&f.InputFile)
	app.Flag("output_file", "Where to write the JSON report").Required().StringVar(&f.OutputFile)
	app.Flag("controller_config", "Controller configuration (ignored)").StringVar(&f.ControllerConfig)
	app.Flag("channels", "JSON list of channels to process (default: all 64)").StringVar(&f.Channels)
	app.Flag("disabled_channels", "JSON list of channels to skip (default: [])").StringVar(&f.DisabledChannels)
	app.Flag("city", "City whose weather annotates the report").StringVar(&f.City)
	app.Flag("weather_api_key", "Weather API key (default: $"+config.EnvAPIKey+")").StringVar(&f.APIKey)
	app.Flag("weather_timeout", "Timeout of the weather request").DurationVar(&f.WeatherTimeout)
	app.Flag("require_weather", "Fail if the weather is not available").BoolVar(&f.RequireWeather)
	app.Flag("verbose", "Enable verbose log output.").Short('v').BoolVar(&f.Verbose)
	return f
}

// Config returns the run configuration: the config file, if any, with
// the command line flags applied on top of it.
func (f *Flags) Config() (*config.Config, error) {
	cfg := config.New()
	if f.ConfigFile != "" {
		log.Debugf("Reading config file from %s", f.ConfigFile)
		c, err := config.ReadConfig(f.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	cfg.InputFile = f.InputFile
	cfg.OutputFile = f.OutputFile
	cfg.ControllerConfig = f.ControllerConfig
	if f.Channels != "" {
		channels, err := config.ParseChannelList(f.Channels)
		if err != nil {
			return nil, err
		}
		cfg.Channels = channels
	}
	if f.DisabledChannels != "" {
		channels, err := config.ParseChannelList(f.DisabledChannels)
		if err != nil {
			return nil, err
		}
		cfg.DisabledChannels = channels
	}
	if f.City != "" {
		cfg.Weather.City = f.City
	}
	if f.APIKey != "" {
		cfg.Weather.APIKey = f.APIKey
	}
	if f.WeatherTimeout > 0 {
		cfg.Weather.SetTimeout(f.WeatherTimeout)
	}
	if f.RequireWeather {
		cfg.RequireWeather = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDotEnv loads the environment from path when it exists.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	log.Debugf("Loading environment from %s", path)
	return godotenv.Load(path)
}

func init() {
	Cmd.PreAction(func(ctx *kingpin.ParseContext) error {
		log.SetHandler(cli.Default)
		if CmdFlags.Verbose {
			log.SetLevel(log.DebugLevel)
			log.Debugf("pedstats version %s", version.Version)
		}
		return loadDotEnv(DotEnvFile)
	})
}
