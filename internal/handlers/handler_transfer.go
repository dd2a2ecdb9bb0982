package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
	"github.com/SscSPs/money_transfer_app/internal/dto"
	"github.com/SscSPs/money_transfer_app/internal/middleware"
)

// transferHandler handles HTTP requests related to transfers.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

// RegisterTransferRoutes registers routes related to transfers.
func RegisterTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := &transferHandler{transferService: transferService}

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.GET("", h.listTransfers)
	}
}

// createTransfer godoc
// @Summary Transfer money between two accounts
// @Description Checks run in order: distinct accounts, source exists, destination exists, destination currency, source funds
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Malformed request"
// @Failure 403 {object} map[string]string "Transfer rejected"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to perform transfer"
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransfer", slog.String("error", err.Error()))
		c.JSON(bindErrorStatus(err), gin.H{"error": "Malformed request: " + err.Error()})
		return
	}

	transferReq, err := req.ToTransferRequest()
	if err != nil {
		respondServiceError(c, logger, err, "Failed to perform transfer")
		return
	}

	transfer, err := h.transferService.Transfer(c.Request.Context(), transferReq)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to perform transfer")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}

// listTransfers godoc
// @Summary List transfers
// @Description Lists transfers newest first; accountId restricts the list to transfers sent from that account
// @Tags transfers
// @Produce  json
// @Param   accountId query int false "Source account ID"
// @Success 200 {object} dto.ListTransfersResponse
// @Failure 400 {object} map[string]string "Invalid account ID"
// @Failure 500 {object} map[string]string "Failed to list transfers"
// @Router /transfers [get]
func (h *transferHandler) listTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransfersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransfers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var (
		transfers []domain.Transfer
		err       error
	)
	if params.AccountID != nil {
		transfers, err = h.transferService.ListTransfersByAccount(c.Request.Context(), *params.AccountID)
	} else {
		transfers, err = h.transferService.ListAllTransfers(c.Request.Context())
	}
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transfers")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransfersResponse{Transfers: dto.ToListTransferResponse(transfers)})
}
