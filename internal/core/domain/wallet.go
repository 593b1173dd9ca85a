package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is the local registration of an address known to the remote
// Fone network. The address is opaque; nothing about the remote
// wallet (keys, on-network balance) is stored here.
type Wallet struct {
	Addr      string    `json:"addr"`
	CreatedAt time.Time `json:"created_at"`
}

// UserState holds the application-level balances for one address.
// Rows are created lazily on first reference and mutated only by
// additive deltas, never overwritten wholesale.
type UserState struct {
	Addr       string          `json:"addr"`
	Credits    decimal.Decimal `json:"credits"`
	Reputation int64           `json:"reputation"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ZeroState returns the state of a never-seen address.
func ZeroState(addr string) *UserState {
	return &UserState{
		Addr:       addr,
		Credits:    decimal.Zero,
		Reputation: 0,
	}
}
