package config

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/larpix/pedstats/internal/model"
)

func TestParseChannelList(t *testing.T) {
	cases := []struct {
		input  string
		expect []int
	}{{
		input:  "[0, 1, 2]",
		expect: []int{0, 1, 2},
	}, {
		input:  "[]",
		expect: []int{},
	}, {
		input:  "[63]",
		expect: []int{63},
	}, {
		input:  "null",
		expect: nil,
	}}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseChannelList(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.expect, got); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestParseChannelListFailures(t *testing.T) {
	for _, input := range []string{"", "[1,", "{}", `["1"]`, "[1.5]", "[64]", "[-1]"} {
		t.Run(input, func(t *testing.T) {
			got, err := ParseChannelList(input)
			if !errors.Is(err, model.ErrInvalidConfig) {
				t.Fatal("unexpected error", err)
			}
			if got != nil {
				t.Fatal("expected nil channels")
			}
		})
	}
}
