// Package pedstats runs the pedestal statistics procedure: it fetches the
// ambient weather, loads the dataset, computes the statistics of each
// enabled channel, and writes the JSON report.
package pedstats

import (
	"context"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/larpix/pedstats/config"
	"github.com/larpix/pedstats/internal/dataset"
	"github.com/larpix/pedstats/internal/model"
	"github.com/larpix/pedstats/internal/pedestal"
	"github.com/larpix/pedstats/internal/report"
	"github.com/larpix/pedstats/internal/weather"
	"github.com/pkg/errors"
)

var _ model.WeatherFetcher = &weather.Client{}

// Runner runs the procedure. The zero value is invalid; please, make
// sure you initialize all the fields marked as MANDATORY or use [NewRunner].
type Runner struct {
	// Config is the MANDATORY run configuration.
	Config *config.Config

	// Logger is the MANDATORY logger.
	Logger model.Logger

	// TimeNow is the MANDATORY function returning the current time.
	TimeNow func() time.Time

	// Weather is the MANDATORY weather fetcher.
	Weather model.WeatherFetcher
}

// NewRunner creates a [*Runner] fetching the weather as described by the
// weather settings of cfg.
func NewRunner(cfg *config.Config, logger model.Logger) *Runner {
	logger = model.ValidLoggerOrDefault(logger)
	client := weather.NewClient(cfg.Weather.APIKey, logger)
	client.BaseURL = cfg.Weather.BaseURL
	client.Timeout = cfg.Weather.Timeout()
	client.HTTPClient = &http.Client{Timeout: client.Timeout}
	return &Runner{
		Config:  cfg,
		Logger:  logger,
		TimeNow: time.Now,
		Weather: client,
	}
}

// Result is the result of a run.
type Result struct {
	// Packets is the number of data packets in the dataset.
	Packets int

	// Report is the report we wrote.
	Report *report.Report

	// Statistics contains the statistics of each processed channel.
	Statistics []*model.ChannelStatistics

	// Weather is the weather reading or nil if unknown.
	Weather *model.WeatherReading

	// WeatherError is the reason why Weather is nil.
	WeatherError error
}

// Run runs the procedure and returns the result. A report is written if
// and only if this function succeeds.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	cfg := r.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r.Logger.Infof("Pedestal statistics generated from file %s", cfg.InputFile)
	if cfg.ControllerConfig != "" {
		r.Logger.Debugf("ignoring controller config %s", cfg.ControllerConfig)
	}
	now := r.TimeNow()

	reading, weatherErr := r.Weather.FetchCurrentWeather(ctx, cfg.Weather.City)
	if weatherErr != nil {
		if cfg.RequireWeather {
			return nil, errors.Wrap(weatherErr, "fetching weather")
		}
		r.Logger.Warnf("cannot fetch weather, reporting it as unknown: %s", weatherErr.Error())
		reading = nil
	}

	records, err := dataset.Load(cfg.InputFile)
	if err != nil {
		return nil, err
	}
	r.Logger.Infof("loaded %s data packets", humanize.Comma(int64(len(records))))

	channels := pedestal.Channels(cfg.Channels, cfg.DisabledChannels)
	r.Logger.Debugf("processing %d channels", len(channels))
	var cs []*model.ChannelStatistics
	for _, channel := range channels {
		entry, err := pedestal.Compute(records, channel)
		if err != nil {
			return nil, err
		}
		r.Logger.Debugf("channel %d: mean %.3f sigma %.3f over %d samples",
			channel, entry.Mean, entry.Stdev, entry.Samples)
		cs = append(cs, entry)
	}

	rep, err := report.Build(cfg.InputFile, now, reading, cs)
	if err != nil {
		return nil, err
	}
	if err := report.Write(rep, cfg.OutputFile); err != nil {
		return nil, err
	}
	r.Logger.Infof("report written to %s", cfg.OutputFile)

	result := &Result{
		Packets:      len(records),
		Report:       rep,
		Statistics:   cs,
		Weather:      reading,
		WeatherError: weatherErr,
	}
	return result, nil
}
