package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxLoggedBody caps how much of an upstream error body is kept in the error.
const maxLoggedBody = 512

// mapHTTPError converts a non-2xx response into an [ErrUpstreamStatus] that
// carries the status and a truncated body. The result is for logs only.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxLoggedBody {
		body = body[:maxLoggedBody] + "..."
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", ErrUpstreamStatus, resp.StatusCode(), body)
}
