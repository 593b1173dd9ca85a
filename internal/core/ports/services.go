package ports

import (
	"context"

	"fonebridge/internal/core/domain"

	"github.com/shopspring/decimal"
)

// FoneGateway is the single point of contact with the remote wallet
// node. Call returns the remote response as an opaque JSON value (the
// remote contract is outside this system's control). Errors carry a
// sanitized message that never contains the node URL or the API key.
type FoneGateway interface {
	Call(ctx context.Context, method, path string, body interface{}) (interface{}, error)
	Configured() bool
}

// CompleteMissionInput carries one mission completion to record.
type CompleteMissionInput struct {
	Addr       string
	MissionID  string
	Report     *string
	Reward     decimal.Decimal
	Reputation int64
}

// LedgerService exposes the local bookkeeping operations.
type LedgerService interface {
	// RegisterWallet idempotently registers an address. Safe to call
	// for addresses that already exist.
	RegisterWallet(ctx context.Context, addr string) error
	// GetState returns the current balances, zero-valued for addresses
	// never seen before.
	GetState(ctx context.Context, addr string) (*domain.UserState, error)
	// CompleteMission appends a history row and applies its deltas.
	CompleteMission(ctx context.Context, in CompleteMissionInput) error
	// ListMissions returns the completion history, newest first.
	ListMissions(ctx context.Context, addr string) ([]domain.MissionCompletion, error)
}
