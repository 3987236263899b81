package model

import "net/http"

// HTTPClient is the HTTP client used to talk to remote services. It is
// implemented by *http.Client.
type HTTPClient interface {
	// Do sends the request and returns the response.
	Do(req *http.Request) (*http.Response, error)

	// CloseIdleConnections closes idle connections.
	CloseIdleConnections()
}
