package pedestal

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/larpix/pedstats/internal/model"
)

// recordsFor returns data packets for channel carrying the given datawords.
func recordsFor(channel uint8, datawords ...uint8) (out []model.PacketRecord) {
	for _, dataword := range datawords {
		out = append(out, model.PacketRecord{ChannelID: channel, Dataword: dataword})
	}
	return
}

func TestCompute(t *testing.T) {
	cases := []struct {
		name    string
		records []model.PacketRecord
		channel int
		expect  *model.ChannelStatistics
	}{{
		name:    "constant input yields zero spread",
		records: recordsFor(5, 10, 10, 10),
		channel: 5,
		expect: &model.ChannelStatistics{
			ChannelID: 5,
			Samples:   3,
			Mean:      10,
			Stdev:     0,
			Variance:  0,
		},
	}, {
		name:    "the sample estimator uses n-1",
		records: recordsFor(0, 1, 2, 3, 4),
		channel: 0,
		expect: &model.ChannelStatistics{
			ChannelID: 0,
			Samples:   4,
			Mean:      2.5,
			Stdev:     math.Sqrt(5.0 / 3.0),
			Variance:  5.0 / 3.0,
		},
	}, {
		name: "other channels are ignored",
		records: append(
			recordsFor(1, 50, 51, 49, 50),
			recordsFor(0, 100, 102, 98, 100)...,
		),
		channel: 0,
		expect: &model.ChannelStatistics{
			ChannelID: 0,
			Samples:   4,
			Mean:      100,
			Stdev:     math.Sqrt(8.0 / 3.0),
			Variance:  8.0 / 3.0,
		},
	}}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Compute(tc.records, tc.channel)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.expect, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Fatal(diff)
			}
		})
	}

	t.Run("the stdev of 1, 2, 3, 4 is about 1.291", func(t *testing.T) {
		got, err := Compute(recordsFor(3, 1, 2, 3, 4), 3)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got.Stdev-1.291) > 1e-3 {
			t.Fatal("unexpected stdev", got.Stdev)
		}
	})
}

func TestComputeWithInsufficientData(t *testing.T) {
	cases := map[string][]model.PacketRecord{
		"with no records":           nil,
		"with a single sample":      recordsFor(7, 80),
		"with samples of other chs": recordsFor(8, 80, 81, 82),
	}
	for name, records := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Compute(records, 7)
			if !errors.Is(err, model.ErrInsufficientData) {
				t.Fatal("unexpected error", err)
			}
			if got != nil {
				t.Fatal("expected nil statistics")
			}
		})
	}
}

func TestDatawords(t *testing.T) {
	records := append(recordsFor(2, 9, 8), recordsFor(4, 1)...)
	records = append(records, recordsFor(2, 7)...)
	if diff := cmp.Diff([]float64{9, 8, 7}, Datawords(records, 2)); diff != "" {
		t.Fatal(diff)
	}
	if got := Datawords(records, 63); len(got) != 0 {
		t.Fatal("expected no datawords", got)
	}
}

func TestChannels(t *testing.T) {
	all := make([]int, model.NumChannels)
	for idx := range all {
		all[idx] = idx
	}

	cases := []struct {
		name     string
		enabled  []int
		disabled []int
		expect   []int
	}{{
		name:   "defaults to every channel",
		expect: all,
	}, {
		name:     "removes the disabled channels",
		disabled: all[2:],
		expect:   []int{0, 1},
	}, {
		name:     "honours the enabled channels",
		enabled:  []int{9, 3, 5},
		disabled: []int{5},
		expect:   []int{9, 3},
	}, {
		name:    "removes duplicates",
		enabled: []int{3, 3, 1, 3},
		expect:  []int{3, 1},
	}, {
		name:     "may yield an empty set",
		enabled:  []int{1},
		disabled: []int{1},
		expect:   []int{},
	}, {
		name:    "an empty enabled list selects nothing",
		enabled: []int{},
		expect:  []int{},
	}}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.expect, Channels(tc.enabled, tc.disabled)); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
