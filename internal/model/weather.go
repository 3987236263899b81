package model

import "context"

// WeatherReading contains the ambient conditions at the time of a run.
type WeatherReading struct {
	// Temperature is the temperature in Kelvin.
	Temperature float64

	// Humidity is the relative humidity in percent.
	Humidity float64
}

// WeatherFetcher fetches the current weather of a city.
type WeatherFetcher interface {
	FetchCurrentWeather(ctx context.Context, city string) (*WeatherReading, error)
}
