package config

import (
	"time"

	"github.com/larpix/pedstats/internal/weather"
)

// EnvAPIKey is the environment variable holding the weather API key.
const EnvAPIKey = "OPENWEATHER_API_KEY"

// Weather settings
type Weather struct {
	APIKey         string  `json:"api_key"`
	BaseURL        string  `json:"base_url"`
	City           string  `json:"city"`
	TimeoutSeconds float64 `json:"timeout_seconds"`
}

// Timeout returns the weather timeout as a time.Duration.
func (w *Weather) Timeout() time.Duration {
	return time.Duration(w.TimeoutSeconds * float64(time.Second))
}

// SetTimeout sets the weather timeout.
func (w *Weather) SetTimeout(d time.Duration) {
	w.TimeoutSeconds = d.Seconds()
}

// defaultWeather returns the default weather settings.
func defaultWeather() Weather {
	return Weather{
		APIKey:         "",
		BaseURL:        weather.DefaultBaseURL,
		City:           weather.DefaultCity,
		TimeoutSeconds: weather.DefaultTimeout.Seconds(),
	}
}
