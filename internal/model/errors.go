package model

import "errors"

// The following errors classify the failures of a pedstats run. Stages wrap
// them with additional context, so callers should use errors.Is to match.
var (
	// ErrWeatherService indicates that fetching the ambient weather failed.
	ErrWeatherService = errors.New("weather service error")

	// ErrDatasetOpen indicates that the input dataset could not be opened
	// or does not have the expected layout.
	ErrDatasetOpen = errors.New("cannot open dataset")

	// ErrInsufficientData indicates that a channel has fewer than two samples.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrEmptyChannelSet indicates that no channel was processed.
	ErrEmptyChannelSet = errors.New("empty channel set")

	// ErrWrite indicates that the report could not be written.
	ErrWrite = errors.New("cannot write report")

	// ErrInvalidConfig indicates an invalid command line or config file.
	ErrInvalidConfig = errors.New("invalid configuration")
)
