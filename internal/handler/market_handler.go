package handler

import (
	"go-finance-assistant/internal/commons/response"
	"go-finance-assistant/internal/params"
	"go-finance-assistant/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type MarketHandler interface {
	TopCrypto(c *gin.Context)
	CryptoQuote(c *gin.Context)
	TopStocks(c *gin.Context)
	StockDetail(c *gin.Context)
	Overview(c *gin.Context)
	CompareAssets(c *gin.Context)
	SuggestPortfolio(c *gin.Context)
}

type MarketHandlerImpl struct {
	usecase   usecase.MarketUsecase
	logger    *logrus.Logger
	validator *validator.Validate
}

func NewMarketHandler(usecase usecase.MarketUsecase, logger *logrus.Logger, validator *validator.Validate) MarketHandler {
	return &MarketHandlerImpl{
		usecase:   usecase,
		logger:    logger,
		validator: validator,
	}
}

func (h *MarketHandlerImpl) TopCrypto(c *gin.Context) {
	listings, custErr := h.usecase.TopCrypto(c.Request.Context())
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Top cryptocurrencies retrieved successfully", listings)
	c.JSON(resp.StatusCode, resp)
}

func (h *MarketHandlerImpl) CryptoQuote(c *gin.Context) {
	detail, custErr := h.usecase.CryptoQuote(c.Request.Context(), c.Param("symbol"))
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Cryptocurrency quote retrieved successfully", detail)
	c.JSON(resp.StatusCode, resp)
}

func (h *MarketHandlerImpl) TopStocks(c *gin.Context) {
	listings, custErr := h.usecase.TopStocks(c.Request.Context())
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Top stocks retrieved successfully", listings)
	c.JSON(resp.StatusCode, resp)
}

func (h *MarketHandlerImpl) StockDetail(c *gin.Context) {
	detail, custErr := h.usecase.StockDetail(c.Request.Context(), c.Param("symbol"))
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Stock detail retrieved successfully", detail)
	c.JSON(resp.StatusCode, resp)
}

func (h *MarketHandlerImpl) Overview(c *gin.Context) {
	overview, custErr := h.usecase.Overview(c.Request.Context())
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Market overview retrieved successfully", overview)
	c.JSON(resp.StatusCode, resp)
}

func (h *MarketHandlerImpl) CompareAssets(c *gin.Context) {
	var req params.CompareAssetsRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	comparisons, custErr := h.usecase.CompareAssets(c.Request.Context(), req.Assets)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Assets compared successfully", comparisons)
	c.JSON(resp.StatusCode, resp)
}

func (h *MarketHandlerImpl) SuggestPortfolio(c *gin.Context) {
	var req params.PortfolioRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	portfolio := h.usecase.SuggestPortfolio(&req)

	resp := response.GeneralSuccessCustomMessageAndPayload("Portfolio suggestion generated successfully", portfolio)
	c.JSON(resp.StatusCode, resp)
}
