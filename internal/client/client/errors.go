package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrUnavailable = errors.New("server unavailable")

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status   int
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return e.Messages[0]
	}
	return fmt.Sprintf("unexpected status %d %s", e.Status, http.StatusText(e.Status))
}

// Messages decodes a message field that is either a string or a list of
// strings. Anything else decodes to an empty list without failing.
type Messages []string

func (m *Messages) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*m = nil
		if strings.TrimSpace(one) != "" {
			*m = Messages{one}
		}
		return nil
	}

	var many []any
	if err := json.Unmarshal(b, &many); err == nil {
		out := make(Messages, 0, len(many))
		for _, v := range many {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		*m = out
		return nil
	}

	*m = nil
	return nil
}

// errorEnvelope is the error body the API sends with non-2xx statuses.
type errorEnvelope struct {
	Message Messages `json:"message"`
}

func parseAPIError(status int, body []byte) *APIError {
	e := &APIError{Status: status}
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		e.Messages = env.Message
	}
	return e
}

// UserMessage picks the text to show for err: the first server message when
// there is one, otherwise fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && len(apiErr.Messages) > 0 {
		return apiErr.Messages[0]
	}
	return fallback
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
