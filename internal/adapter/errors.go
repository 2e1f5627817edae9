package adapter

import "errors"

var (
	// ErrUpstreamStatus means the upstream answered with a non-2xx status.
	ErrUpstreamStatus = errors.New("upstream returned error status")

	// ErrUpstreamUnavailable means no answer was received: timeout, DNS
	// failure, refused connection or an open circuit breaker.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrMalformedUpstreamResponse means a 2xx body without
	// choices[0].message.content.
	ErrMalformedUpstreamResponse = errors.New("malformed upstream response")
)

// Log values for the upstream_error field.
const (
	KindUpstreamStatus      = "upstream_status"
	KindUpstreamUnavailable = "upstream_unavailable"
	KindMalformedResponse   = "malformed_upstream_response"
	KindUnknown             = "unknown"
)

// ErrorKind names the failure class of err for logging.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrUpstreamStatus):
		return KindUpstreamStatus
	case errors.Is(err, ErrUpstreamUnavailable):
		return KindUpstreamUnavailable
	case errors.Is(err, ErrMalformedUpstreamResponse):
		return KindMalformedResponse
	default:
		return KindUnknown
	}
}
