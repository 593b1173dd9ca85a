package dto

import (
	"time"

	"fonebridge/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ImportWalletRequest is the body for POST /api/fone/wallet/import.
type ImportWalletRequest struct {
	PrivateKey string `json:"privateKey" binding:"required"`
}

// SendTransactionRequest is the body for POST /api/fone/transaction/send.
// Amount is accepted as any JSON value and coerced to a number before
// forwarding; clients send both numbers and numeric strings.
type SendTransactionRequest struct {
	PrivateKey string      `json:"privateKey" binding:"required"`
	Recipient  string      `json:"recipient" binding:"required"`
	Amount     interface{} `json:"amount" binding:"required"`
	Message    *string     `json:"message,omitempty"`
}

// CompleteMissionRequest is the body for POST /api/app/mission/completed.
// Reward and reputation default to zero when absent.
type CompleteMissionRequest struct {
	Addr       string      `json:"addr" binding:"required"`
	MissionID  string      `json:"missionId" binding:"required"`
	Reward     interface{} `json:"reward,omitempty"`
	Reputation int64       `json:"reputation,omitempty"`
	Report     *string     `json:"report,omitempty"`
}

// UserStateResponse is the body for GET /api/app/user/:addr/state.
type UserStateResponse struct {
	Addr       string          `json:"addr"`
	Credits    decimal.Decimal `json:"credits"`
	Reputation int64           `json:"reputation"`
}

// OkResponse acknowledges a successful write.
type OkResponse struct {
	OK bool `json:"ok"`
}

// MissionResponse is one history row in a mission list.
type MissionResponse struct {
	ID         int64           `json:"id"`
	MissionID  string          `json:"missionId"`
	Report     *string         `json:"report,omitempty"`
	Reward     decimal.Decimal `json:"reward"`
	Reputation int64           `json:"reputation"`
	CreatedAt  string          `json:"createdAt"`
}

// MissionListResponse is the body for GET /api/app/user/:addr/missions.
type MissionListResponse struct {
	Addr     string            `json:"addr"`
	Missions []MissionResponse `json:"missions"`
}

// HealthResponse is the body for GET /api/health. The three
// dependency flags are computed independently.
type HealthResponse struct {
	OK             bool   `json:"ok"`
	FoneConfigured bool   `json:"foneConfigured"`
	DBConfigured   bool   `json:"dbConfigured"`
	DBOk           bool   `json:"dbOk"`
	Message        string `json:"message"`
}

// ToMissionResponse converts a domain record for the wire.
func ToMissionResponse(mc domain.MissionCompletion) MissionResponse {
	return MissionResponse{
		ID:         mc.ID,
		MissionID:  mc.MissionID,
		Report:     mc.Report,
		Reward:     mc.Reward,
		Reputation: mc.Reputation,
		CreatedAt:  mc.CreatedAt.UTC().Format(time.RFC3339),
	}
}
