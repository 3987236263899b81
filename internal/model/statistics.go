package model

// ChannelStatistics contains the pedestal statistics of a single channel.
type ChannelStatistics struct {
	// ChannelID is the channel these statistics refer to.
	ChannelID int

	// Samples is the number of datawords used to compute the statistics.
	Samples int

	// Mean is the arithmetic mean of the datawords.
	Mean float64

	// Stdev is the sample standard deviation (n-1 denominator).
	Stdev float64

	// Variance is the sample variance (n-1 denominator).
	Variance float64
}
