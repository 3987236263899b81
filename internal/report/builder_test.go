package report

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/larpix/pedstats/internal/model"
)

// sampleStatistics returns statistics for channels 0 and 1.
func sampleStatistics() []*model.ChannelStatistics {
	return []*model.ChannelStatistics{{
		ChannelID: 0,
		Samples:   4,
		Mean:      100,
		Stdev:     4,
		Variance:  16,
	}, {
		ChannelID: 1,
		Samples:   4,
		Mean:      50,
		Stdev:     5,
		Variance:  25,
	}}
}

var sampleTime = time.Date(2021, 4, 7, 13, 5, 9, 0, time.UTC)

func TestBuild(t *testing.T) {
	t.Run("with weather", func(t *testing.T) {
		weather := &model.WeatherReading{Temperature: 288.7, Humidity: 63}
		r, err := Build("tile-3.h5", sampleTime, weather, sampleStatistics())
		if err != nil {
			t.Fatal(err)
		}
		expect := []Entry{
			{Key: "input file", Value: "tile-3.h5"},
			{Key: "time", Value: "2021_04_07_13_05_09"},
			{Key: "temp", Value: 288.7},
			{Key: "humidity", Value: 63.0},
			{Key: "mean_0", Value: 100.0},
			{Key: "sigma_0", Value: 4.0},
			{Key: "mean_1", Value: 50.0},
			{Key: "sigma_1", Value: 5.0},
			{Key: "mean adc reading", Value: 75.0},
			{Key: "total stdev", Value: 3.0},
		}
		if diff := cmp.Diff(expect, r.Entries()); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("without weather", func(t *testing.T) {
		r, err := Build("tile-3.h5", sampleTime, nil, sampleStatistics())
		if err != nil {
			t.Fatal(err)
		}
		for _, key := range []string{KeyTemp, KeyHumidity} {
			value, found := r.Get(key)
			if !found || value != nil {
				t.Fatal("expected nil", key, value)
			}
		}
	})

	t.Run("with an empty channel set", func(t *testing.T) {
		r, err := Build("tile-3.h5", sampleTime, nil, nil)
		if !errors.Is(err, model.ErrEmptyChannelSet) {
			t.Fatal("unexpected error", err)
		}
		if r != nil {
			t.Fatal("expected nil report")
		}
	})
}

func TestTileStatistics(t *testing.T) {
	cs := []*model.ChannelStatistics{
		{ChannelID: 0, Mean: 80, Stdev: 1.5},
		{ChannelID: 1, Mean: 90, Stdev: 2.5},
		{ChannelID: 2, Mean: 85, Stdev: 5},
	}
	mean, total, err := TileStatistics(cs)
	if err != nil {
		t.Fatal(err)
	}
	if mean != 85 {
		t.Fatal("unexpected mean", mean)
	}
	if math.Abs(total-3) > 1e-12 {
		t.Fatal("unexpected total stdev", total)
	}
}

func TestKeys(t *testing.T) {
	if MeanKey(0) != "mean_0" || MeanKey(63) != "mean_63" {
		t.Fatal("unexpected mean key")
	}
	if SigmaKey(7) != "sigma_7" {
		t.Fatal("unexpected sigma key")
	}
}
