// Package remote defines the contract with the external list-tracking
// service that holds canonical account state. The rest of the application
// consumes this interface only; local state stays authoritative until a push
// succeeds.
package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/Acizza/anup/pkg/series"
)

// ErrNeedConnection is returned by operations that require network access
// when running against the offline service.
var ErrNeedConnection = errors.New("not available offline")

// ErrNeedAuthentication is returned when an operation requires an access
// token and none was configured.
var ErrNeedAuthentication = errors.New("access token required")

// Error describes a failure reported by the remote service itself, as
// opposed to a transport failure.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("remote service error (code %d): %s", e.Code, e.Message)
}

// Service is the remote collaborator. Implementations must be safe for
// concurrent use; the sync engine calls them from its own goroutine.
type Service interface {
	// SearchInfoByName finds series whose title resembles name.
	SearchInfoByName(ctx context.Context, name string) ([]series.Info, error)
	// SearchInfoByID fetches the info for a known series id.
	SearchInfoByID(ctx context.Context, id int32) (series.Info, error)
	// GetListEntry fetches the account's entry for a series. A nil entry
	// with a nil error means the account has no entry for it yet.
	GetListEntry(ctx context.Context, id int32) (*series.Entry, error)
	// UpdateListEntry pushes the entry's progress, score, status, rewatch
	// count and dates to the account.
	UpdateListEntry(ctx context.Context, entry *series.Entry) error
	// IsOffline reports whether the service never touches the network.
	IsOffline() bool
}
