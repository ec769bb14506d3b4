// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"time"

	"aperture/internal/models"
)

// queryTimeout bounds every store call so a stalled database turns into an
// UNAVAILABLE response instead of a hung request.
const queryTimeout = 5 * time.Second

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

// storeError maps a database error onto the AppError taxonomy. Deadline and
// connection failures become UNAVAILABLE (503); anything else is INTERNAL.
func storeError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return models.NewUnavailableError(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return models.NewUnavailableError(err)
	}
	return models.NewInternalError(err)
}
