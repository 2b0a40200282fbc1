// Package infra provides shared infrastructure components used across
// the application, currently the common outbound HTTP helper.
package infra

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// userAgent identifies newsense to upstream feed servers.
const userAgent = "newsense/1.0 (+https://github.com/shrishail07/newsense)"

// httpClient is shared by all outbound requests. Per-call deadlines come
// from the request context, not a client-level timeout.
var httpClient = &http.Client{}

// DoGet issues a GET request with the given extra headers and returns the
// response body and status code. Non-2xx responses are returned as errors
// with the body already closed. The caller must close the body on success.
func DoGet(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request %s: %w", url, err)
	}

	req.Header.Set("User-Agent", userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, resp.StatusCode, fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}

	return resp.Body, resp.StatusCode, nil
}
