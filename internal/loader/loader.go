// Package loader runs a one-shot fetch and folds its outcome into a tagged
// result, so every view handles loading, data, fallback and empty states the
// same way.
package loader

import (
	"context"

	"go.uber.org/zap"
)

// State tags a Result.
type State int

const (
	Loading State = iota
	Success
	Fallback
	Empty
	// Canceled means the owning view went away before the fetch finished.
	// Callers must discard the result.
	Canceled
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Fallback:
		return "fallback"
	case Empty:
		return "empty"
	case Canceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Result is the outcome of a load. Data is only set for Success and Fallback.
// Err keeps the fetch failure for diagnostics; it is never shown to users.
type Result[T any] struct {
	State State
	Data  []T
	Err   error
}

// Pending returns the result a view holds while its fetch is outstanding.
func Pending[T any]() Result[T] {
	return Result[T]{State: Loading}
}

// IsLoading reports whether the fetch is still outstanding.
func (r Result[T]) IsLoading() bool {
	return r.State == Loading
}

// Rows returns the data to display. Empty and Loading return nil.
func (r Result[T]) Rows() []T {
	switch r.State {
	case Success, Fallback:
		return r.Data
	default:
		return nil
	}
}

// Query fetches all rows of a resource.
type Query[T any] func(ctx context.Context) ([]T, error)

// Policy decides what a view shows when the fetch yields nothing usable.
type Policy[T any] struct {
	// Resource names the fetched table in log entries.
	Resource string
	// Fallback replaces failed or empty fetches. Nil selects the empty state.
	Fallback []T
}

// WithFallback builds a policy that substitutes data on failure or no rows.
func WithFallback[T any](resource string, data []T) Policy[T] {
	return Policy[T]{Resource: resource, Fallback: data}
}

// EmptyOnFailure builds a policy that shows the empty state on failure or no rows.
func EmptyOnFailure[T any](resource string) Policy[T] {
	return Policy[T]{Resource: resource}
}

// Load runs query once and applies policy. It never returns a bare error:
// failures are logged and folded into Fallback or Empty.
func Load[T any](ctx context.Context, log *zap.Logger, query Query[T], policy Policy[T]) Result[T] {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("table", policy.Resource))

	if err := ctx.Err(); err != nil {
		return Result[T]{State: Canceled, Err: err}
	}

	rows, err := query(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		// Late results for a view that no longer exists are dropped even if
		// the query happened to succeed.
		return Result[T]{State: Canceled, Err: ctxErr}
	}

	if err != nil {
		if len(policy.Fallback) > 0 {
			log.Warn("using fallback data", zap.Error(err))
			return Result[T]{State: Fallback, Data: cloneRows(policy.Fallback), Err: err}
		}
		log.Error("fetch failed", zap.Error(err))
		return Result[T]{State: Empty, Err: err}
	}

	if len(rows) == 0 {
		if len(policy.Fallback) > 0 {
			log.Warn("no rows returned, using fallback data")
			return Result[T]{State: Fallback, Data: cloneRows(policy.Fallback)}
		}
		log.Debug("no rows returned")
		return Result[T]{State: Empty}
	}

	log.Debug("loaded rows", zap.Int("rows", len(rows)))
	return Result[T]{State: Success, Data: rows}
}

func cloneRows[T any](rows []T) []T {
	dup := make([]T, len(rows))
	copy(dup, rows)
	return dup
}
