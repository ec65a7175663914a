package adapter

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// maxStatusBody caps how much of a non-envelope body ends up in an error.
const maxStatusBody = 200

// statusErrors maps the statuses a todos backend or its proxy is known to
// answer with onto their sentinels.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// statusError returns nil for a 2xx response. Otherwise it returns the
// status sentinel, or a generic error for unmapped statuses, with a short
// excerpt of the body.
func statusError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	excerpt := bodyExcerpt(resp.Body())
	if excerpt == "" {
		excerpt = http.StatusText(code)
	}

	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w (status %d): %s", sentinel, code, excerpt)
	}
	return fmt.Errorf("unexpected status %d: %s", code, excerpt)
}

func bodyExcerpt(body []byte) string {
	text := strings.Join(strings.Fields(string(body)), " ")
	if utf8.RuneCountInString(text) <= maxStatusBody {
		return text
	}
	return string([]rune(text)[:maxStatusBody]) + "..."
}
