package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/larpix/pedstats/internal/model"
	"github.com/larpix/pedstats/internal/model/mocks"
)

// newTestClient returns a client using the given test server.
func newTestClient(server *httptest.Server) *Client {
	client := NewClient("deadbeef", model.DiscardLogger)
	client.BaseURL = server.URL + "/data/2.5/weather"
	client.HTTPClient = server.Client()
	return client
}

func TestFetchCurrentWeather(t *testing.T) {
	t.Run("on success", func(t *testing.T) {
		var (
			gotquery map[string][]string
			gotpath  string
			mu       sync.Mutex
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			gotquery = r.URL.Query()
			gotpath = r.URL.Path
			mu.Unlock()
			w.Write([]byte(`{"cod":200,"name":"Philadelphia","main":{"temp":293.15,"humidity":41}}`))
		}))
		defer server.Close()

		reading, err := newTestClient(server).FetchCurrentWeather(context.Background(), "Philadelphia")
		if err != nil {
			t.Fatal(err)
		}

		expect := &model.WeatherReading{Temperature: 293.15, Humidity: 41}
		if diff := cmp.Diff(expect, reading); diff != "" {
			t.Fatal(diff)
		}

		defer mu.Unlock()
		mu.Lock()
		if gotpath != "/data/2.5/weather" {
			t.Fatal("unexpected path", gotpath)
		}
		expectQuery := map[string][]string{"appid": {"deadbeef"}, "q": {"Philadelphia"}}
		if diff := cmp.Diff(expectQuery, gotquery); diff != "" {
			t.Fatal(diff)
		}
	})

	cases := []struct {
		name    string
		status  int
		body    string
		delay   time.Duration
		timeout time.Duration
	}{{
		name:   "when cod is a 404 string",
		status: http.StatusOK,
		body:   `{"cod":"404","message":"city not found"}`,
	}, {
		name:   "when cod is a 404 number",
		status: http.StatusOK,
		body:   `{"cod":404,"message":"city not found"}`,
	}, {
		name:   "when the HTTP status is 404",
		status: http.StatusNotFound,
		body:   `{"cod":"404","message":"city not found"}`,
	}, {
		name:   "when the API key is rejected",
		status: http.StatusUnauthorized,
		body:   `{"cod":401,"message":"Invalid API key"}`,
	}, {
		name:   "when the body is not JSON",
		status: http.StatusOK,
		body:   `<html></html>`,
	}, {
		name:   "when the body is null",
		status: http.StatusOK,
		body:   `null`,
	}, {
		name:   "when main is missing",
		status: http.StatusOK,
		body:   `{"cod":200}`,
	}, {
		name:   "when humidity is missing",
		status: http.StatusOK,
		body:   `{"cod":200,"main":{"temp":290.0}}`,
	}, {
		name:    "when the server is too slow",
		status:  http.StatusOK,
		body:    `{"cod":200,"main":{"temp":290.0,"humidity":50}}`,
		delay:   500 * time.Millisecond,
		timeout: 50 * time.Millisecond,
	}}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tc.delay > 0 {
					select {
					case <-time.After(tc.delay):
					case <-r.Context().Done():
						return
					}
				}
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := newTestClient(server)
			if tc.timeout > 0 {
				client.Timeout = tc.timeout
			}

			reading, err := client.FetchCurrentWeather(context.Background(), "Atlantis")
			t.Log(err)
			if !errors.Is(err, model.ErrWeatherService) {
				t.Fatal("unexpected error", err)
			}
			if reading != nil {
				t.Fatal("expected nil reading")
			}
		})
	}

	t.Run("the timeout is reported as a deadline", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		client := newTestClient(server)
		client.Timeout = 20 * time.Millisecond

		_, err := client.FetchCurrentWeather(context.Background(), "Philadelphia")
		if !errors.Is(err, model.ErrWeatherService) {
			t.Fatal("unexpected error", err)
		}
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatal("expected a deadline error", err)
		}
	})

	t.Run("without an API key", func(t *testing.T) {
		client := NewClient("", nil)
		_, err := client.FetchCurrentWeather(context.Background(), "Philadelphia")
		if !errors.Is(err, model.ErrWeatherService) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("with an invalid base URL", func(t *testing.T) {
		client := NewClient("deadbeef", nil)
		client.BaseURL = "\t"
		_, err := client.FetchCurrentWeather(context.Background(), "Philadelphia")
		if !errors.Is(err, model.ErrWeatherService) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("when the server is unreachable the key is not in the error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		client := newTestClient(server)
		client.APIKey = "s3cr3tkey"
		server.Close()
		_, err := client.FetchCurrentWeather(context.Background(), "Philadelphia")
		if !errors.Is(err, model.ErrWeatherService) {
			t.Fatal("unexpected error", err)
		}
		if strings.Contains(err.Error(), "s3cr3tkey") {
			t.Fatal("the API key leaked into the error", err)
		}
	})

	t.Run("when the transport fails", func(t *testing.T) {
		expected := errors.New("mocked error")
		client := NewClient("deadbeef", nil)
		client.HTTPClient = &mocks.HTTPClient{
			MockDo: func(req *http.Request) (*http.Response, error) {
				return nil, expected
			},
		}
		resp, err := client.FetchCurrentWeather(context.Background(), "Philadelphia")
		if !errors.Is(err, model.ErrWeatherService) || !errors.Is(err, expected) {
			t.Fatal("unexpected error", err)
		}
		if resp != nil {
			t.Fatal("expected nil response")
		}
	})
}
