package resilience

import (
	"context"
	"errors"
	"net"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

// IsTransient reports whether err is a failure that may clear on its own:
// anything marked [domain.ErrUnavailable] or a network error. Cancellation
// and deadline errors are never transient, even though a deadline also
// satisfies [net.Error].
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, domain.ErrUnavailable) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// countsAsFailure is the breaker and retry classifier. It adds deadline
// errors to the transient set so a timed-out inner operation is retried.
func countsAsFailure(err error) bool {
	return IsTransient(err) || errors.Is(err, context.DeadlineExceeded)
}
