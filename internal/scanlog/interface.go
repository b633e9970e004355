package scanlog

import (
	"context"

	"scanner-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Append writes one log entry for a campaign scan. Entries are never
	// updated or deleted. Each appended entry is also published to the
	// scan log exchange, best effort.
	Append(ctx context.Context, input AppendInput) (model.ScanLog, error)
	// List returns a campaign's log entries, newest first.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	// ListSessions groups a campaign's logs into scan sessions. Sessions
	// are derived at read time; nothing is stored.
	ListSessions(ctx context.Context, sc model.Scope, input ListSessionsInput) ([]model.ScanSession, error)
}
