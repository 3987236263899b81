package config

import (
	"encoding/json"

	"github.com/larpix/pedstats/internal/model"
	"github.com/pkg/errors"
)

// ParseChannelList parses a JSON-encoded list of channels such
// as "[0, 1, 2]". Each channel must be in 0..63. The "null" list yields
// a nil slice, which selects every channel.
func ParseChannelList(s string) ([]int, error) {
	var channels []int
	if err := json.Unmarshal([]byte(s), &channels); err != nil {
		return nil, errors.Wrapf(model.ErrInvalidConfig, "channel list %q: %s", s, err.Error())
	}
	if err := validateChannels(channels); err != nil {
		return nil, err
	}
	return channels, nil
}

// validateChannels ensures each channel exists.
func validateChannels(channels []int) error {
	for _, channel := range channels {
		if channel < 0 || channel >= model.NumChannels {
			return errors.Wrapf(model.ErrInvalidConfig, "channel %d out of range", channel)
		}
	}
	return nil
}
