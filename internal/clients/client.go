// Package clients holds the typed JSON HTTP clients the gateway and stats
// service use to talk to their collaborators. Every call carries a context
// and an explicit transport timeout; there are no retries anywhere, a failed
// call fails the enclosing operation.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const DefaultTimeout = 10 * time.Second

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// doJSON executes a JSON request and decodes a 2xx response body into out.
// Non-2xx statuses are returned to the caller for classification; only
// transport-level failures produce an error.
func doJSON(ctx context.Context, httpClient *http.Client, method string, url string, header http.Header, body any, out any) (int, error) {
	var payload *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	} else {
		payload = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}

	response, err := httpClient.Do(request)
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return response.StatusCode, nil
	}
	if out != nil {
		if err := json.NewDecoder(response.Body).Decode(out); err != nil {
			return response.StatusCode, fmt.Errorf("decode response body: %w", err)
		}
	}
	return response.StatusCode, nil
}
