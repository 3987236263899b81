package main

import (
	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/larpix/pedstats/config"
	"github.com/larpix/pedstats/internal/dataset"
	"github.com/spf13/cobra"
)

// newRootCommand returns the pedgen command logging using logger.
func newRootCommand(logger log.Interface) *cobra.Command {
	var (
		output   string
		channels string
	)
	gen := NewGenerator()
	cmd := &cobra.Command{
		Use:   "pedgen",
		Short: "Writes a synthetic pedestal dataset (HDF5, or SQLite for .db files)",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			list, err := config.ParseChannelList(channels)
			if err != nil {
				return err
			}
			if list != nil {
				gen.Channels = list
			}
			if err := gen.Validate(); err != nil {
				return err
			}
			records := gen.Generate()
			if err := dataset.Write(output, records); err != nil {
				return err
			}
			logger.WithFields(log.Fields{
				"container": dataset.ContainerForPath(output).String(),
				"packets":   humanize.Comma(int64(len(records))),
			}).Infof("wrote %s", output)
			for _, summary := range Summarize(records) {
				logger.WithFields(log.Fields{
					"channel": summary.ChannelID,
					"mean":    summary.Mean,
					"sigma":   summary.Stdev,
				}).Debug("generated")
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "pedestal.h5", "path of the dataset to write")
	flags.StringVar(&channels, "channels", "null", "JSON list of channels to generate, null for all")
	flags.IntVar(&gen.PacketsPerChannel, "packets-per-channel", gen.PacketsPerChannel, "data packets per channel")
	flags.Float64Var(&gen.Mean, "mean", gen.Mean, "mean dataword")
	flags.Float64Var(&gen.Sigma, "sigma", gen.Sigma, "dataword standard deviation")
	flags.Uint64Var(&gen.Seed, "seed", gen.Seed, "random seed")
	return cmd
}
