package handler

import (
	"net/http"
	"strconv"

	"go-finance-assistant/internal/commons/response"
	"go-finance-assistant/internal/params"
	"go-finance-assistant/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type LedgerHandler interface {
	CreateWallet(c *gin.Context)
	ListWallets(c *gin.Context)
	PatchWallet(c *gin.Context)

	CreateTransaction(c *gin.Context)
	ListTransactions(c *gin.Context)
	PatchTransaction(c *gin.Context)
	DeleteTransaction(c *gin.Context)

	CreateInvestment(c *gin.Context)
	ListInvestments(c *gin.Context)
	PatchInvestment(c *gin.Context)
	DeleteInvestment(c *gin.Context)

	CreateDebt(c *gin.Context)
	ListDebts(c *gin.Context)
	PatchDebt(c *gin.Context)
	DeleteDebt(c *gin.Context)
}

type LedgerHandlerImpl struct {
	usecase   usecase.LedgerUsecase
	logger    *logrus.Logger
	validator *validator.Validate
}

func NewLedgerHandler(usecase usecase.LedgerUsecase, logger *logrus.Logger, validator *validator.Validate) LedgerHandler {
	return &LedgerHandlerImpl{
		usecase:   usecase,
		logger:    logger,
		validator: validator,
	}
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  false,
			"message": "Invalid id parameter",
		})
		return 0, false
	}
	return id, true
}

func (h *LedgerHandlerImpl) CreateWallet(c *gin.Context) {
	var req params.CreateWalletRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	walletResp, custErr := h.usecase.CreateWallet(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.CreatedSuccessWithPayload(walletResp)
	c.JSON(resp.StatusCode, resp)
}

func (h *LedgerHandlerImpl) ListWallets(c *gin.Context) {
	wallets, custErr := h.usecase.ListWallets(c.Request.Context())
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Wallets retrieved successfully", wallets)
	c.JSON(resp.StatusCode, resp)
}

func (h *LedgerHandlerImpl) PatchWallet(c *gin.Context) {
	var patch params.WalletPatch
	if !bindAndValidate(c, h.validator, &patch) {
		return
	}

	if custErr := h.usecase.PatchWallet(c.Request.Context(), c.Param("name"), &patch); custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccess()
	c.JSON(resp.StatusCode, resp)
}

func (h *LedgerHandlerImpl) CreateTransaction(c *gin.Context) {
	var req params.CreateTransactionRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	txResp, custErr := h.usecase.CreateTransaction(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.CreatedSuccessWithPayload(txResp)
	c.JSON(resp.StatusCode, resp)
}

func (h *LedgerHandlerImpl) ListTransactions(c *gin.Context) {
	transactions, custErr := h.usecase.ListTransactions(c.Request.Context())
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Transactions retrieved successfully", transactions)
	c.JSON(resp.StatusCode, resp)
}

func (h *LedgerHandlerImpl) PatchTransaction(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var patch params.TransactionPatch
	if !bindAndValidate(c, h.validator, &patch) {
		return
	}

	if custErr := h.usecase.PatchTransaction(c.Request.Context(), id, &patch); custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccess()
	c.JSON(resp.StatusCode, resp)
}

func (h *LedgerHandlerImpl) DeleteTransaction(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if custErr := h.usecase.DeleteTransaction(c.Request.Context(), id); custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Transaction deleted successfully", nil)
	c.JSON(resp.StatusCode, resp)
}

func (h *LedgerHandlerImpl) CreateInvestment(c *gin.Context) {
	var req params.CreateInvestmentRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	invResp, custErr := h.usecase.CreateInvestment(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.CreatedSuccessWithPayload(invResp)
	c.JSON(resp.StatusCode, resp)
}

func (h *LedgerHandlerImpl) ListInvestments(c *gin.Context) {
	investments, custErr := h.usecase.ListInvestments(c.Request.Context())
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Investments retrieved successfully", investments)
	c.JSON(resp.StatusCode, resp)
}

func (h *LedgerHandlerImpl) PatchInvestment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var patch params.InvestmentPatch
	if !bindAndValidate(c, h.validator, &patch) {
		return
	}

	if custErr := h.usecase.PatchInvestment(c.Request.Context(), id, &patch); custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccess()
	c.JSON(resp.StatusCode, resp)
}

func (h *LedgerHandlerImpl) DeleteInvestment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if custErr := h.usecase.DeleteInvestment(c.Request.Context(), id); custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Investment deleted successfully", nil)
	c.JSON(resp.StatusCode, resp)
}

func (h *LedgerHandlerImpl) CreateDebt(c *gin.Context) {
	var req params.CreateDebtRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	debtResp, custErr := h.usecase.CreateDebt(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.CreatedSuccessWithPayload(debtResp)
	c.JSON(resp.StatusCode, resp)
}

func (h *LedgerHandlerImpl) ListDebts(c *gin.Context) {
	debts, custErr := h.usecase.ListDebts(c.Request.Context())
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Debts retrieved successfully", debts)
	c.JSON(resp.StatusCode, resp)
}

func (h *LedgerHandlerImpl) PatchDebt(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var patch params.DebtPatch
	if !bindAndValidate(c, h.validator, &patch) {
		return
	}

	if custErr := h.usecase.PatchDebt(c.Request.Context(), id, &patch); custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccess()
	c.JSON(resp.StatusCode, resp)
}

func (h *LedgerHandlerImpl) DeleteDebt(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if custErr := h.usecase.DeleteDebt(c.Request.Context(), id); custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Debt deleted successfully", nil)
	c.JSON(resp.StatusCode, resp)
}
