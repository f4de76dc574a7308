// Package errors holds the sync error taxonomy shared by the transport and
// the coordinator. Import it as apperrors.
package errors

import (
	"errors"
	"fmt"

	"github.com/iudanet/mdkeeper/internal/models"
)

// Transient failures. The item stays queued and is retried on the next drain.
var (
	ErrTransient = errors.New("transient transport failure")
)

// Fatal failures. The drain aborts and the coordinator enters the error state.
var (
	ErrUnauthorized  = errors.New("authorization revoked")
	ErrQuotaExceeded = errors.New("quota exceeded")
	ErrEntityGone    = errors.New("entity permanently gone")
	ErrRejected      = errors.New("request rejected by server")
)

// Local failures.
var (
	ErrStorageFull = errors.New("local storage full")
)

// VersionConflictError is returned by a push when the server holds a
// different version than the expected one.
type VersionConflictError struct {
	Server          models.Entity
	ExpectedVersion int64
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("version conflict on %s %s: expected %d, server has %d",
		e.Server.Type, e.Server.ID, e.ExpectedVersion, e.Server.SyncVersion)
}

// IsFatal reports whether err belongs to a non-recoverable class.
func IsFatal(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrQuotaExceeded) ||
		errors.Is(err, ErrEntityGone) ||
		errors.Is(err, ErrRejected)
}

// AsVersionConflict unwraps a VersionConflictError from err.
func AsVersionConflict(err error) (*VersionConflictError, bool) {
	var vc *VersionConflictError
	if errors.As(err, &vc) {
		return vc, true
	}
	return nil, false
}
