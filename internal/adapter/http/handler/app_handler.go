package handler

import (
	"fonebridge/internal/adapter/http/dto"
	"fonebridge/internal/core/ports"
	"fonebridge/pkg/apperror"
	"fonebridge/pkg/response"

	"github.com/gin-gonic/gin"
)

// AppHandler serves the local ledger endpoints.
type AppHandler struct {
	ledger ports.LedgerService // nil = no database configured
}

// NewAppHandler creates a new AppHandler.
func NewAppHandler(ledger ports.LedgerService) *AppHandler {
	return &AppHandler{ledger: ledger}
}

// GetUserState handles GET /api/app/user/:addr/state. Unknown
// addresses return zero balances, not an error.
func (h *AppHandler) GetUserState(c *gin.Context) {
	if h.ledger == nil {
		response.Error(c, apperror.ErrDatabaseNotConfigured())
		return
	}

	state, err := h.ledger.GetState(c.Request.Context(), c.Param("addr"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.UserStateResponse{
		Addr:       state.Addr,
		Credits:    state.Credits,
		Reputation: state.Reputation,
	})
}

// CompleteMission handles POST /api/app/mission/completed.
func (h *AppHandler) CompleteMission(c *gin.Context) {
	if h.ledger == nil {
		response.Error(c, apperror.ErrDatabaseNotConfigured())
		return
	}

	var req dto.CompleteMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(bindErrorMessage(err, "addr and missionId are required")))
		return
	}
	dto.SanitizeStruct(&req)

	reward, err := dto.CoerceDecimal(req.Reward)
	if err != nil {
		response.Error(c, apperror.Validation("reward must be a number"))
		return
	}

	err = h.ledger.CompleteMission(c.Request.Context(), ports.CompleteMissionInput{
		Addr:       req.Addr,
		MissionID:  req.MissionID,
		Report:     req.Report,
		Reward:     reward,
		Reputation: req.Reputation,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.OkResponse{OK: true})
}

// ListMissions handles GET /api/app/user/:addr/missions.
func (h *AppHandler) ListMissions(c *gin.Context) {
	if h.ledger == nil {
		response.Error(c, apperror.ErrDatabaseNotConfigured())
		return
	}

	addr := c.Param("addr")
	completions, err := h.ledger.ListMissions(c.Request.Context(), addr)
	if err != nil {
		response.Error(c, err)
		return
	}

	missions := make([]dto.MissionResponse, 0, len(completions))
	for _, mc := range completions {
		missions = append(missions, dto.ToMissionResponse(mc))
	}

	response.OK(c, dto.MissionListResponse{Addr: addr, Missions: missions})
}
