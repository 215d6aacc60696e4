package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict, http.StatusPreconditionFailed:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return fmt.Errorf("%w: http %d: %s", ErrRemoteUnreachable, resp.StatusCode(), body)
	default:
		if resp.StatusCode() >= http.StatusInternalServerError {
			return fmt.Errorf("%w: http %d: %s", ErrRemoteUnreachable, resp.StatusCode(), body)
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// isPushRejected reports whether git refused a push because the remote
// branch moved.
func isPushRejected(stderr string) bool {
	s := strings.ToLower(stderr)
	return strings.Contains(s, "rejected") ||
		strings.Contains(s, "non-fast-forward") ||
		strings.Contains(s, "fetch first")
}

// isMissingPath reports whether git show failed because the path or ref
// does not exist yet.
func isMissingPath(stderr string) bool {
	s := strings.ToLower(stderr)
	return strings.Contains(s, "does not exist") ||
		strings.Contains(s, "exists on disk, but not in") ||
		strings.Contains(s, "invalid object name") ||
		strings.Contains(s, "unknown revision")
}
