// Package pedestal computes the pedestal statistics of the channels of
// a LArPix tile from the data packets of a dataset.
package pedestal

import (
	"fmt"

	"github.com/larpix/pedstats/internal/model"
	"github.com/montanaflynn/stats"
)

// Datawords returns the datawords of the packets of the given channel,
// converted to floating point, in dataset order.
func Datawords(records []model.PacketRecord, channelID int) []float64 {
	var out []float64
	for _, record := range records {
		if int(record.ChannelID) == channelID {
			out = append(out, float64(record.Dataword))
		}
	}
	return out
}

// Compute computes the statistics of the given channel. The variance and
// the standard deviation use the n-1 denominator, so the channel needs at
// least two samples or this function fails with [model.ErrInsufficientData].
func Compute(records []model.PacketRecord, channelID int) (*model.ChannelStatistics, error) {
	values := Datawords(records, channelID)
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: channel %d has %d samples", model.ErrInsufficientData, channelID, len(values))
	}
	data := stats.Float64Data(values)
	mean, err := data.Mean()
	if err != nil {
		return nil, err
	}
	variance, err := stats.SampleVariance(data)
	if err != nil {
		return nil, err
	}
	stdev, err := stats.StandardDeviationSample(data)
	if err != nil {
		return nil, err
	}
	cs := &model.ChannelStatistics{
		ChannelID: channelID,
		Samples:   len(values),
		Mean:      mean,
		Stdev:     stdev,
		Variance:  variance,
	}
	return cs, nil
}

// Channels returns the channels to process: the enabled channels, or every
// channel when enabled is nil, minus the disabled ones. The order of enabled
// is preserved and duplicates are removed.
func Channels(enabled, disabled []int) []int {
	if enabled == nil {
		enabled = make([]int, model.NumChannels)
		for idx := range enabled {
			enabled[idx] = idx
		}
	}
	skip := make(map[int]bool)
	for _, channel := range disabled {
		skip[channel] = true
	}
	out := []int{}
	for _, channel := range enabled {
		if skip[channel] {
			continue
		}
		skip[channel] = true
		out = append(out, channel)
	}
	return out
}
