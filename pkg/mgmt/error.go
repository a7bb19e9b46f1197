package mgmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// ErrInvalidArgument is matched by errors returned when a required argument is missing.
var ErrInvalidArgument = errors.New("mgmt: invalid argument")

// An ArgumentError is returned before any network action when a required argument is missing.
type ArgumentError struct {
	Name string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("'%s' cannot be null!", e.Name)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// A RateLimit holds the rate limit headers sent along a 429 response.
type RateLimit struct {
	Limit     int64
	Remaining int64
	Reset     time.Time
}

// An APIError reprensents an HTTP error returned by the management API.
type APIError struct {
	StatusCode int        `json:"statusCode"`
	Err        string     `json:"error"`
	Message    string     `json:"message"`
	ErrorCode  string     `json:"errorCode"`
	RateLimit  *RateLimit `json:"-"`
}

func parseAPIError(res *http.Response) error {
	apierr := &APIError{}

	payload, err := io.ReadAll(res.Body)
	if err == nil && len(payload) > 0 {
		// The body is not always JSON (e.g. errors from a proxy).
		if err = json.Unmarshal(payload, apierr); err != nil {
			apierr.Message = string(payload)
		}
	}

	apierr.StatusCode = res.StatusCode
	if apierr.Err == "" {
		apierr.Err = http.StatusText(res.StatusCode)
	}
	if apierr.Message == "" {
		apierr.Message = apierr.Err
	}

	if res.StatusCode == http.StatusTooManyRequests {
		apierr.RateLimit = &RateLimit{
			Limit:     headerInt(res.Header, "X-RateLimit-Limit"),
			Remaining: headerInt(res.Header, "X-RateLimit-Remaining"),
		}
		if reset := headerInt(res.Header, "X-RateLimit-Reset"); reset > 0 {
			apierr.RateLimit.Reset = time.Unix(reset, 0)
		}
	}

	return apierr
}

func headerInt(h http.Header, key string) int64 {
	v, err := strconv.ParseInt(h.Get(key), 10, 64)
	if err != nil {
		return -1
	}
	return v
}

func (e *APIError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("request failed with status code %d (%s): %s", e.StatusCode, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("request failed with status code %d: %s", e.StatusCode, e.Message)
}

// IsRateLimited returns true if the request has been rejected because of the rate limit.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}
