package report

import (
	"fmt"
	"math"
	"time"

	"github.com/larpix/pedstats/internal/model"
	"github.com/montanaflynn/stats"
)

// Report keys.
const (
	KeyInputFile  = "input file"
	KeyTime       = "time"
	KeyTemp       = "temp"
	KeyHumidity   = "humidity"
	KeyMeanADC    = "mean adc reading"
	KeyTotalStdev = "total stdev"
)

// TimeFormat is the layout of the time entry (YYYY_MM_DD_HH_MM_SS).
const TimeFormat = "2006_01_02_15_04_05"

// MeanKey returns the key of the mean of channel.
func MeanKey(channel int) string {
	return fmt.Sprintf("mean_%d", channel)
}

// SigmaKey returns the key of the standard deviation of channel.
func SigmaKey(channel int) string {
	return fmt.Sprintf("sigma_%d", channel)
}

// TileStatistics returns the whole tile statistics: the mean of the
// per-channel means and the square root of the sum of the per-channel
// standard deviations. The latter is not a pooled standard deviation;
// we keep it because existing analyses consume this value.
func TileStatistics(cs []*model.ChannelStatistics) (mean, totalStdev float64, err error) {
	if len(cs) <= 0 {
		return 0, 0, model.ErrEmptyChannelSet
	}
	var means, stdevs stats.Float64Data
	for _, entry := range cs {
		means = append(means, entry.Mean)
		stdevs = append(stdevs, entry.Stdev)
	}
	if mean, err = means.Mean(); err != nil {
		return 0, 0, err
	}
	sum, err := stdevs.Sum()
	if err != nil {
		return 0, 0, err
	}
	return mean, math.Sqrt(sum), nil
}

// Build assembles the report of a run. A nil weather reading means that
// the weather is unknown, which we emit as null temp and humidity. Build
// fails with [model.ErrEmptyChannelSet] when cs is empty.
func Build(inputPath string, timestamp time.Time, weather *model.WeatherReading,
	cs []*model.ChannelStatistics) (*Report, error) {
	tileMean, tileStdev, err := TileStatistics(cs)
	if err != nil {
		return nil, err
	}

	r := &Report{}
	r.Set(KeyInputFile, inputPath)
	r.Set(KeyTime, timestamp.Format(TimeFormat))
	if weather != nil {
		r.Set(KeyTemp, weather.Temperature)
		r.Set(KeyHumidity, weather.Humidity)
	} else {
		r.Set(KeyTemp, nil)
		r.Set(KeyHumidity, nil)
	}
	for _, entry := range cs {
		r.Set(MeanKey(entry.ChannelID), entry.Mean)
		r.Set(SigmaKey(entry.ChannelID), entry.Stdev)
	}
	r.Set(KeyMeanADC, tileMean)
	r.Set(KeyTotalStdev, tileStdev)
	return r, nil
}
