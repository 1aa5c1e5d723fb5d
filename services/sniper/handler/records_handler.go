package handler

import (
	"fmt"
	"io"
	"net/http"

	model "bid-sniper/internal/models"
	"bid-sniper/services/sniper/helpers"
	"bid-sniper/utils"

	"github.com/gin-gonic/gin"
)

type RecordsServiceInterface interface {
	ListAccounts() ([]model.Account, error)
	CreateAccount(username, password string) (model.Account, error)
	UpdateAccount(id int, username, password string) (model.Account, error)
	DeleteAccount(id int) error
	ListAuctions() ([]model.Auction, error)
	CreateAuction(auction model.Auction) (model.Auction, error)
	UpdateAuction(auction model.Auction) (model.Auction, error)
	DeleteAuction(id int) error
	ImportAuctions(r io.Reader) (int, error)
}

type RecordsHandler struct {
	service RecordsServiceInterface
}

func NewRecordsHandler(service RecordsServiceInterface) *RecordsHandler {
	return &RecordsHandler{service: service}
}

// ListAccountsHandler handles GET /accounts
func (h *RecordsHandler) ListAccountsHandler(c *gin.Context) {
	accounts, err := h.service.ListAccounts()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListAccountsHandler: failed to list accounts", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.AccountsToResponse(accounts), "accounts retrieved successfully")
}

// CreateAccountHandler handles POST /accounts
func (h *RecordsHandler) CreateAccountHandler(c *gin.Context) {
	var req helpers.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAccountHandler", err)
		return
	}

	account, err := h.service.CreateAccount(req.Username, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAccountHandler: failed to create account", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.AccountToResponse(account), "account created successfully")
	helpers.LogSuccess("CreateAccountHandler", "account created successfully", map[string]any{
		"account_id": account.ID,
		"username":   account.Username,
	})
}

// UpdateAccountHandler handles PUT /accounts/:id
func (h *RecordsHandler) UpdateAccountHandler(c *gin.Context) {
	id, err := helpers.ParseIDParam(c)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	var req helpers.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAccountHandler", err)
		return
	}

	account, err := h.service.UpdateAccount(id, req.Username, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateAccountHandler: failed to update account", map[string]any{
			"account_id": id,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.AccountToResponse(account), "account updated successfully")
	helpers.LogSuccess("UpdateAccountHandler", "account updated successfully", map[string]any{
		"account_id": account.ID,
		"username":   account.Username,
	})
}

// DeleteAccountHandler handles DELETE /accounts/:id
func (h *RecordsHandler) DeleteAccountHandler(c *gin.Context) {
	id, err := helpers.ParseIDParam(c)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	if err := h.service.DeleteAccount(id); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteAccountHandler: failed to delete account", map[string]any{
			"account_id": id,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "account deleted successfully")
	helpers.LogSuccess("DeleteAccountHandler", "account deleted successfully", map[string]any{"account_id": id})
}

// ListAuctionsHandler handles GET /auctions
func (h *RecordsHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListAuctions()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListAuctionsHandler: failed to list auctions", map[string]any{"error": err.Error()})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// CreateAuctionHandler handles POST /auctions
func (h *RecordsHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auction, err := helpers.AuctionFromRequest(req)
	if err == nil {
		auction, err = h.service.CreateAuction(auction)
	}
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"external_ref": req.ExternalRef,
			"error":        err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id":   auction.ID,
		"external_ref": auction.ExternalRef,
	})
}

// UpdateAuctionHandler handles PUT /auctions/:id
func (h *RecordsHandler) UpdateAuctionHandler(c *gin.Context) {
	id, err := helpers.ParseIDParam(c)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	var req helpers.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}

	auction, err := helpers.AuctionFromRequest(req)
	if err == nil {
		auction.ID = id
		auction, err = h.service.UpdateAuction(auction)
	}
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateAuctionHandler: failed to update auction", map[string]any{
			"auction_id": id,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction updated successfully")
	helpers.LogSuccess("UpdateAuctionHandler", "auction updated successfully", map[string]any{
		"auction_id":   auction.ID,
		"external_ref": auction.ExternalRef,
	})
}

// DeleteAuctionHandler handles DELETE /auctions/:id
func (h *RecordsHandler) DeleteAuctionHandler(c *gin.Context) {
	id, err := helpers.ParseIDParam(c)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	if err := h.service.DeleteAuction(id); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteAuctionHandler: failed to delete auction", map[string]any{
			"auction_id": id,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auction deleted successfully")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{"auction_id": id})
}

// ImportAuctionsHandler handles POST /auctions/import with a CSV request body
func (h *RecordsHandler) ImportAuctionsHandler(c *gin.Context) {
	imported, err := h.service.ImportAuctions(c.Request.Body)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ImportAuctionsHandler: import failed", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ImportResponse{Imported: imported}, "auctions imported successfully")
	helpers.LogSuccess("ImportAuctionsHandler", "auctions imported successfully", map[string]any{"imported": imported})
}
