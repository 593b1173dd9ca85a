package ports

import (
	"context"

	"fonebridge/internal/core/domain"

	"github.com/shopspring/decimal"
)

// LedgerRepository defines persistence operations for the local
// credits/reputation ledger.
type LedgerRepository interface {
	// EnsureWallet inserts the wallet and a zero-valued state row if
	// absent. No-op when the address already exists; safe under
	// concurrent calls for the same address (upsert, never
	// read-then-write).
	EnsureWallet(ctx context.Context, addr string) error
	// ApplyDelta ensures the wallet exists, then atomically increments
	// credits and reputation by the given deltas (any sign) in a single
	// additive update.
	ApplyDelta(ctx context.Context, addr string, credits decimal.Decimal, reputation int64) error
	// GetState returns zero-valued defaults when no row exists.
	GetState(ctx context.Context, addr string) (*domain.UserState, error)
	// RecordMissionCompletion appends the history row and applies its
	// deltas inside one transaction. The ID and CreatedAt fields of mc
	// are populated on success.
	RecordMissionCompletion(ctx context.Context, mc *domain.MissionCompletion) error
	// ListMissionCompletions returns the history for an address,
	// newest first.
	ListMissionCompletions(ctx context.Context, addr string) ([]domain.MissionCompletion, error)
}
