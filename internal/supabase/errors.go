package supabase

import (
	"errors"
	"fmt"
)

// ErrFetch is the single error kind the dashboard models. Transport failures,
// remote error payloads and undecodable responses all wrap it.
var ErrFetch = errors.New("remote fetch failed")

// APIError mirrors the PostgREST error payload.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "no message"
	}
	if e.Code != "" {
		return fmt.Sprintf("api returned status %d (%s): %s", e.Status, e.Code, msg)
	}
	return fmt.Sprintf("api returned status %d: %s", e.Status, msg)
}

func fetchErr(table string, err error) error {
	if table == "" {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrFetch, table, err)
}
