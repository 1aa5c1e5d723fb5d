package handler

import (
	"context"
	"fmt"
	"net/http"

	model "bid-sniper/internal/models"
	"bid-sniper/services/sniper/helpers"
	"bid-sniper/utils"

	"github.com/gin-gonic/gin"
)

type SniperServiceInterface interface {
	ScheduleAll(ctx context.Context) ([]model.Auction, error)
	CancelAllPending() int
	CloseAllSessions() int
	PendingCount() int
}

type SniperHandler struct {
	service SniperServiceInterface
}

func NewSniperHandler(service SniperServiceInterface) *SniperHandler {
	return &SniperHandler{service: service}
}

// ScheduleAllHandler handles POST /bids/schedule. The response is the
// reloaded auction collection; individual bid failures only show up in the
// event feed and logs.
func (h *SniperHandler) ScheduleAllHandler(c *gin.Context) {
	auctions, err := h.service.ScheduleAll(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ScheduleAllHandler: scheduling pass failed", map[string]any{"error": err.Error()})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "scheduling pass completed")
	helpers.LogSuccess("ScheduleAllHandler", "scheduling pass completed", map[string]any{
		"auctions": len(auctions),
		"pending":  h.service.PendingCount(),
	})
}

// CancelAllPendingHandler handles POST /bids/cancel
func (h *SniperHandler) CancelAllPendingHandler(c *gin.Context) {
	cancelled := h.service.CancelAllPending()

	resp := helpers.StatusResponse{
		Message: fmt.Sprintf("cancelled %d pending bids", cancelled),
		Count:   cancelled,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "pending bids cancelled")
	helpers.LogSuccess("CancelAllPendingHandler", "pending bids cancelled", map[string]any{"count": cancelled})
}

// CloseAllSessionsHandler handles POST /sessions/close
func (h *SniperHandler) CloseAllSessionsHandler(c *gin.Context) {
	closed := h.service.CloseAllSessions()

	resp := helpers.StatusResponse{
		Message: fmt.Sprintf("closed %d sessions", closed),
		Count:   closed,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "sessions closed")
	helpers.LogSuccess("CloseAllSessionsHandler", "sessions closed", map[string]any{"count": closed})
}

// PendingHandler handles GET /bids/pending
func (h *SniperHandler) PendingHandler(c *gin.Context) {
	pending := h.service.PendingCount()

	resp := helpers.StatusResponse{
		Message: fmt.Sprintf("%d bids pending", pending),
		Count:   pending,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "pending bids counted")
}
