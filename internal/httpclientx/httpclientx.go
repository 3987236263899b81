// Package httpclientx contains extensions to more easily invoke HTTP APIs.
package httpclientx

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ErrRequestFailed indicates that the server returned >= 400.
type ErrRequestFailed struct {
	// StatusCode is the status code that failed.
	StatusCode int
}

var _ error = &ErrRequestFailed{}

// Error implements error.
func (err *ErrRequestFailed) Error() string {
	return fmt.Sprintf("httpclientx: request failed: %s", http.StatusText(err.StatusCode))
}

// maxResponseBodySize is the maximum body size we read.
const maxResponseBodySize = 1 << 22

// do sends the given request and returns the raw response body. The
// returned body is always non-nil on success.
func do(ctx context.Context, req *http.Request, config *Config) ([]byte, error) {
	// optionally assign the User-Agent header
	if config.UserAgent != "" {
		req.Header.Set("User-Agent", config.UserAgent)
	}

	// say that we're accepting gzip encoded bodies
	req.Header.Set("Accept-Encoding", "gzip")

	// get the response
	resp, err := config.Client.Do(req)

	// handle the case of failure, omitting the query string from the
	// error since it may contain API keys
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			uerr.URL = urlWithoutQuery(req.URL)
		}
		return nil, err
	}

	// make sure we close the response body
	defer resp.Body.Close()

	// handle the case of HTTP error
	if resp.StatusCode != 200 {
		return nil, &ErrRequestFailed{resp.StatusCode}
	}

	// make sure we handle the gzip content encoding
	var baseReader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzreader, err := gzip.NewReader(baseReader)
		if err != nil {
			return nil, err
		}
		defer gzreader.Close()
		baseReader = gzreader
	}

	// read the whole body
	rawrespbody, err := io.ReadAll(io.LimitReader(baseReader, maxResponseBodySize))

	// log the response body for debugging purposes, omitting the query
	// string since it may contain API keys
	config.Logger.Debugf("httpclientx: %s %s: raw response body: %s",
		req.Method, urlWithoutQuery(req.URL), string(rawrespbody))

	// handle the case of failure
	if err != nil {
		return nil, err
	}

	// make sure the body is never nil on success
	if rawrespbody == nil {
		rawrespbody = []byte{}
	}

	return rawrespbody, nil
}

// urlWithoutQuery returns URL as a string without the query.
func urlWithoutQuery(URL *url.URL) string {
	out := *URL
	out.RawQuery = ""
	out.ForceQuery = false
	return out.String()
}
