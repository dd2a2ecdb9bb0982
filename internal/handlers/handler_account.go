package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
	"github.com/SscSPs/money_transfer_app/internal/dto"
	"github.com/SscSPs/money_transfer_app/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// RegisterAccountRoutes registers routes related to accounts.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.PUT("/:accountID/holder", h.updateHolder)
		accounts.PUT("/:accountID/status", h.updateStatus)
		accounts.PUT("/:accountID/balance/credit", h.creditAccount)
		accounts.PUT("/:accountID/balance/debit", h.debitAccount)
	}
}

// parseAccountID reads the :accountID path parameter, answering 400 when it is not a number.
func parseAccountID(c *gin.Context, logger *slog.Logger) (int64, bool) {
	raw := c.Param("accountID")
	accountID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Warn("Invalid account ID in path", slog.String("account_id", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID: " + raw})
		return 0, false
	}
	return accountID, true
}

// createAccount godoc
// @Summary Create a new account
// @Description Opens a new ACTIVE account with an initial balance
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 422 {object} map[string]string "Unsupported currency"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(bindErrorStatus(err), gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	balance, err := req.Balance.ToMoney()
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create account")
		return
	}

	logger.Info("Received request to create account", slog.String("currency", string(balance.Currency)))

	account, err := h.accountService.CreateAccount(c.Request.Context(), req.AccountHolder, balance)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists all accounts newest first, optionally filtered by status
// @Tags accounts
// @Produce  json
// @Param   status query string false "ACTIVE or INACTIVE"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} map[string]string "Invalid status filter"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var filter *domain.AccountStatus
	if params.Status != "" {
		status, err := domain.ParseAccountStatus(params.Status)
		if err != nil {
			logger.Warn("Invalid status filter", slog.String("status", params.Status))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status filter can only be ACTIVE or INACTIVE"})
			return
		}
		filter = &status
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves an ACTIVE account; inactive accounts are reported as not found
// @Tags accounts
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid account ID"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseAccountID(c, logger)
	if !ok {
		return
	}

	account, err := h.accountService.GetVisibleAccount(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateHolder godoc
// @Summary Rename the account holder
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Param   request body dto.UpdateHolderRequest true "New holder"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found or inactive"
// @Failure 500 {object} map[string]string "Failed to update account"
// @Router /accounts/{accountID}/holder [put]
func (h *accountHandler) updateHolder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseAccountID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateHolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateHolder", slog.String("error", err.Error()))
		c.JSON(bindErrorStatus(err), gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.ApplyUpdate(c.Request.Context(), accountID, domain.NewHolderUpdate(req.AccountHolder))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateStatus godoc
// @Summary Activate or deactivate an account
// @Description Works on inactive accounts too, so an account can be reactivated
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Param   request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Unknown status"
// @Failure 500 {object} map[string]string "Failed to update account"
// @Router /accounts/{accountID}/status [put]
func (h *accountHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseAccountID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateStatus", slog.String("error", err.Error()))
		c.JSON(bindErrorStatus(err), gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	status, err := domain.ParseAccountStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accountService.ApplyUpdate(c.Request.Context(), accountID, domain.NewStatusUpdate(status))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// creditAccount godoc
// @Summary Credit an account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Param   request body dto.MoneyRequest true "Amount to credit"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Currency mismatch"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to update balance"
// @Router /accounts/{accountID}/balance/credit [put]
func (h *accountHandler) creditAccount(c *gin.Context) {
	h.adjustBalance(c, domain.Credit)
}

// debitAccount godoc
// @Summary Debit an account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Param   request body dto.MoneyRequest true "Amount to debit"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Currency mismatch or insufficient funds"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to update balance"
// @Router /accounts/{accountID}/balance/debit [put]
func (h *accountHandler) debitAccount(c *gin.Context) {
	h.adjustBalance(c, domain.Debit)
}

func (h *accountHandler) adjustBalance(c *gin.Context, direction domain.BalanceDirection) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseAccountID(c, logger)
	if !ok {
		return
	}

	var req dto.MoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for balance update", slog.String("error", err.Error()))
		c.JSON(bindErrorStatus(err), gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	amount, err := req.ToMoney()
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update balance")
		return
	}

	account, err := h.accountService.AdjustBalance(c.Request.Context(), accountID, amount, direction)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
