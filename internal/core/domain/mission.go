package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MissionCompletion is an immutable audit record of a rewarded
// mission. Repeats of the same mission id are allowed; the ledger
// deliberately performs no de-duplication, so replaying a completion
// appends a second row and applies the deltas again.
type MissionCompletion struct {
	ID         int64           `json:"id"`
	Addr       string          `json:"addr"`
	MissionID  string          `json:"mission_id"`
	Report     *string         `json:"report,omitempty"`
	Reward     decimal.Decimal `json:"reward"`
	Reputation int64           `json:"reputation"`
	CreatedAt  time.Time       `json:"created_at"`
}
