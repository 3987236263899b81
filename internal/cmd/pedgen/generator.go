package main

import (
	"errors"
	"math"

	"github.com/larpix/pedstats/internal/model"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// PacketTypeTimestamp is the type of the packets we interleave with
// the data packets.
const PacketTypeTimestamp = 4

// Generator generates synthetic pedestal packets. Use [NewGenerator] to
// get a generator with sensible defaults.
type Generator struct {
	// Channels contains the channels to generate.
	Channels []int

	// PacketsPerChannel is the number of data packets of each channel.
	PacketsPerChannel int

	// Mean is the mean dataword.
	Mean float64

	// Sigma is the standard deviation of the datawords.
	Sigma float64

	// Seed seeds the random source.
	Seed uint64
}

// NewGenerator creates a new [*Generator].
func NewGenerator() *Generator {
	channels := make([]int, model.NumChannels)
	for idx := range channels {
		channels[idx] = idx
	}
	return &Generator{
		Channels:          channels,
		PacketsPerChannel: 100,
		Mean:              80,
		Sigma:             2,
		Seed:              1,
	}
}

// Validate returns an error if the generator settings are invalid.
func (g *Generator) Validate() error {
	if g.PacketsPerChannel < 2 {
		return errors.New("pedgen: need at least two packets per channel")
	}
	if g.Sigma < 0 {
		return errors.New("pedgen: negative sigma")
	}
	if g.Mean < 0 || g.Mean > math.MaxUint8 {
		return errors.New("pedgen: mean out of the dataword range")
	}
	return nil
}

// Generate returns the packets. Each round contains one data packet per
// channel followed by a timestamp packet. Datawords are drawn from a
// normal distribution, rounded and clamped to 0..255.
func (g *Generator) Generate() []model.PacketRecord {
	dist := distuv.Normal{
		Mu:    g.Mean,
		Sigma: g.Sigma,
		Src:   rand.NewSource(g.Seed),
	}
	out := make([]model.PacketRecord, 0, g.PacketsPerChannel*(len(g.Channels)+1))
	for round := 0; round < g.PacketsPerChannel; round++ {
		for _, channel := range g.Channels {
			out = append(out, model.PacketRecord{
				PacketType: model.PacketTypeData,
				ChannelID:  uint8(channel),
				Dataword:   clampDataword(dist.Rand()),
			})
		}
		out = append(out, model.PacketRecord{PacketType: PacketTypeTimestamp})
	}
	return out
}

// clampDataword rounds value to the closest valid dataword.
func clampDataword(value float64) uint8 {
	value = math.Round(value)
	switch {
	case value < 0:
		return 0
	case value > math.MaxUint8:
		return math.MaxUint8
	default:
		return uint8(value)
	}
}

// Summarize returns the sample statistics of the data packets of
// each channel, ordered by channel.
func Summarize(records []model.PacketRecord) []*model.ChannelStatistics {
	var values [model.NumChannels][]float64
	for _, record := range records {
		if record.IsData() && int(record.ChannelID) < model.NumChannels {
			values[record.ChannelID] = append(values[record.ChannelID], float64(record.Dataword))
		}
	}
	var out []*model.ChannelStatistics
	for channel, samples := range values {
		if len(samples) <= 0 {
			continue
		}
		mean, stdev := stat.MeanStdDev(samples, nil)
		out = append(out, &model.ChannelStatistics{
			ChannelID: channel,
			Samples:   len(samples),
			Mean:      mean,
			Stdev:     stdev,
			Variance:  stdev * stdev,
		})
	}
	return out
}
