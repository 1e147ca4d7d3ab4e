package handler

import (
	"go-finance-assistant/internal/commons/response"
	"go-finance-assistant/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ReportHandler interface {
	Summary(c *gin.Context)
	TransactionsRange(c *gin.Context)
	Visualize(c *gin.Context)
}

type ReportHandlerImpl struct {
	analysis  usecase.AnalysisUsecase
	visualize usecase.VisualizeUsecase
	logger    *logrus.Logger
}

func NewReportHandler(analysis usecase.AnalysisUsecase, visualize usecase.VisualizeUsecase, logger *logrus.Logger) ReportHandler {
	return &ReportHandlerImpl{
		analysis:  analysis,
		visualize: visualize,
		logger:    logger,
	}
}

func (h *ReportHandlerImpl) Summary(c *gin.Context) {
	summary, custErr := h.analysis.FinancialSummary(c.Request.Context())
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Financial summary generated successfully", summary)
	c.JSON(resp.StatusCode, resp)
}

func (h *ReportHandlerImpl) TransactionsRange(c *gin.Context) {
	period := c.Query("period")
	wallet := c.Query("wallet")

	points, custErr := h.analysis.TransactionsRange(c.Request.Context(), period, wallet)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Transactions range retrieved successfully", points)
	c.JSON(resp.StatusCode, resp)
}

func (h *ReportHandlerImpl) Visualize(c *gin.Context) {
	period := c.Query("period")
	wallet := c.Query("wallet")

	fig, custErr := h.visualize.VisualizeTransactions(c.Request.Context(), period, wallet)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.CreatedSuccessWithPayload(fig)
	c.JSON(resp.StatusCode, resp)
}
