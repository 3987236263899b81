// Package run contains the action of the root command.
package run

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/larpix/pedstats/config"
	"github.com/larpix/pedstats/internal/cli/root"
	"github.com/larpix/pedstats/internal/model"
	"github.com/larpix/pedstats/internal/pedstats"
	"github.com/larpix/pedstats/internal/report"
)

func init() {
	root.Cmd.Action(func(_ *kingpin.ParseContext) error {
		_, err := Main(context.Background(), root.CmdFlags, log.Log)
		return err
	})
}

// Main runs the procedure configured by flags and logs a summary.
func Main(ctx context.Context, flags *root.Flags, logger log.Interface) (*pedstats.Result, error) {
	cfg, err := flags.Config()
	if err != nil {
		return nil, err
	}
	result, err := pedstats.NewRunner(cfg, logger).Run(ctx)
	if err != nil {
		return nil, err
	}
	logSummary(logger, cfg, result)
	return result, nil
}

func logSummary(logger log.Interface, cfg *config.Config, result *pedstats.Result) {
	logger.WithFields(log.Fields{
		"type":        "table",
		"input_file":  cfg.InputFile,
		"output_file": cfg.OutputFile,
		"city":        cfg.Weather.City,
		"weather":     model.ErrorToStringOrOK(result.WeatherError),
	}).Info("")
	logger.WithFields(log.Fields{
		"type":  "section_title",
		"title": "Pedestal statistics",
	}).Info("")
	for idx, entry := range result.Statistics {
		logger.WithFields(log.Fields{
			"type":        "channel_row",
			"channel":     entry.ChannelID,
			"mean":        entry.Mean,
			"sigma":       entry.Stdev,
			"index":       idx,
			"total_count": len(result.Statistics),
		}).Info("")
	}
	fields := log.Fields{
		"type":     "run_summary",
		"packets":  result.Packets,
		"channels": len(result.Statistics),
		"temp":     nil,
		"humidity": nil,
	}
	if result.Weather != nil {
		fields["temp"] = result.Weather.Temperature
		fields["humidity"] = result.Weather.Humidity
	}
	if mean, found := result.Report.Get(report.KeyMeanADC); found {
		fields["mean"] = mean
	}
	if stdev, found := result.Report.Get(report.KeyTotalStdev); found {
		fields["total_stdev"] = stdev
	}
	logger.WithFields(fields).Info("")
}
