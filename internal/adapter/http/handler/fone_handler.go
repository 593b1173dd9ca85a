package handler

import (
	"net/http"
	"net/url"

	"fonebridge/internal/adapter/http/dto"
	"fonebridge/internal/core/ports"
	"fonebridge/pkg/apperror"
	"fonebridge/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// FoneHandler proxies wallet and transaction operations to the remote
// Fone node. Remote responses are forwarded verbatim; the only local
// work is input validation and opportunistic wallet registration.
type FoneHandler struct {
	gateway ports.FoneGateway
	ledger  ports.LedgerService // nil = no database configured
	log     zerolog.Logger
}

// NewFoneHandler creates a new FoneHandler.
func NewFoneHandler(gateway ports.FoneGateway, ledger ports.LedgerService, log zerolog.Logger) *FoneHandler {
	return &FoneHandler{gateway: gateway, ledger: ledger, log: log}
}

// CreateWallet handles POST /api/fone/wallet/create.
func (h *FoneHandler) CreateWallet(c *gin.Context) {
	result, err := h.gateway.Call(c.Request.Context(), http.MethodPost, "/wallet/create", nil)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.registerReturnedAddress(c, result)
	response.OK(c, result)
}

// ImportWallet handles POST /api/fone/wallet/import.
func (h *FoneHandler) ImportWallet(c *gin.Context) {
	var req dto.ImportWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(bindErrorMessage(err, "privateKey is required")))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.gateway.Call(c.Request.Context(), http.MethodPost, "/wallet/import", gin.H{
		"privateKey": req.PrivateKey,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.registerReturnedAddress(c, result)
	response.OK(c, result)
}

// GetBalance handles GET /api/fone/wallet/:addr/balance.
func (h *FoneHandler) GetBalance(c *gin.Context) {
	addr := c.Param("addr")
	result, err := h.gateway.Call(c.Request.Context(), http.MethodGet, "/wallet/"+url.PathEscape(addr)+"/balance", nil)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// GetTransactions handles GET /api/fone/wallet/:addr/transactions.
func (h *FoneHandler) GetTransactions(c *gin.Context) {
	addr := c.Param("addr")
	result, err := h.gateway.Call(c.Request.Context(), http.MethodGet, "/wallet/"+url.PathEscape(addr)+"/transactions", nil)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// SendTransaction handles POST /api/fone/transaction/send. The
// amount is coerced to a number and validated before any remote call.
func (h *FoneHandler) SendTransaction(c *gin.Context) {
	var req dto.SendTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(bindErrorMessage(err, "privateKey, recipient and amount are required")))
		return
	}
	dto.SanitizeStruct(&req)

	amount, err := dto.CoerceFloat(req.Amount)
	if err != nil {
		response.Error(c, apperror.Validation("amount must be a number"))
		return
	}

	body := gin.H{
		"privateKey": req.PrivateKey,
		"recipient":  req.Recipient,
		"amount":     amount,
	}
	if req.Message != nil && *req.Message != "" {
		body["message"] = *req.Message
	}

	result, err := h.gateway.Call(c.Request.Context(), http.MethodPost, "/transaction/send", body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// registerReturnedAddress best-effort records an address returned by
// wallet create/import. A bookkeeping failure never fails the proxy
// call; the address stays known to the remote network and gets
// registered locally on first mission completion instead.
func (h *FoneHandler) registerReturnedAddress(c *gin.Context, result interface{}) {
	if h.ledger == nil {
		return
	}
	obj, ok := result.(map[string]interface{})
	if !ok {
		return
	}
	addr, ok := obj["address"].(string)
	if !ok || addr == "" {
		return
	}
	if err := h.ledger.RegisterWallet(c.Request.Context(), addr); err != nil {
		h.log.Warn().Err(err).Str("addr", addr).Msg("failed to register proxied wallet locally")
	}
}
