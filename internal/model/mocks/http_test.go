package mocks

import (
	"errors"
	"net/http"
	"testing"
)

func TestHTTPClient(t *testing.T) {
	t.Run("Do", func(t *testing.T) {
		expected := errors.New("mocked error")
		c := &HTTPClient{
			MockDo: func(req *http.Request) (*http.Response, error) {
				return nil, expected
			},
		}
		resp, err := c.Do(&http.Request{})
		if !errors.Is(err, expected) {
			t.Fatal("unexpected error", err)
		}
		if resp != nil {
			t.Fatal("expected nil response")
		}
	})

	t.Run("CloseIdleConnections", func(t *testing.T) {
		var called bool
		c := &HTTPClient{
			MockCloseIdleConnections: func() {
				called = true
			},
		}
		c.CloseIdleConnections()
		if !called {
			t.Fatal("not called")
		}
	})
}
