package mocks

import (
	"context"

	"github.com/larpix/pedstats/internal/model"
)

// WeatherFetcher allows mocking a weather fetcher.
type WeatherFetcher struct {
	MockFetchCurrentWeather func(ctx context.Context, city string) (*model.WeatherReading, error)
}

var _ model.WeatherFetcher = &WeatherFetcher{}

// FetchCurrentWeather calls MockFetchCurrentWeather.
func (wf *WeatherFetcher) FetchCurrentWeather(ctx context.Context, city string) (*model.WeatherReading, error) {
	return wf.MockFetchCurrentWeather(ctx, city)
}
