package storage

import (
	"context"

	"github.com/tvasilyev/rosterbook/internal/model"
)

// RecordStore defines the interface for roster persistence. The backing
// medium is selected at startup; all implementations store the full
// roster as a single document and the username independently of it.
type RecordStore interface {
	// LoadRoster retrieves the persisted roster.
	// Returns model.ErrRosterNotFound when nothing has been stored yet.
	LoadRoster(ctx context.Context) (model.Roster, error)

	// SaveRoster serializes and stores the complete roster, replacing
	// whatever was stored before. The remote medium may return
	// model.ErrRevisionConflict when its revision token is stale.
	SaveRoster(ctx context.Context, roster model.Roster) error

	// LoadUsername retrieves the stored current username.
	// Returns model.ErrUsernameNotFound when nothing has been stored yet.
	LoadUsername(ctx context.Context) (string, error)

	// SaveUsername stores the current username.
	SaveUsername(ctx context.Context, username string) error
}
