package handler

import (
	"go-finance-assistant/internal/commons/response"
	"go-finance-assistant/internal/params"
	"go-finance-assistant/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type CorpusHandler interface {
	Create(c *gin.Context)
	Delete(c *gin.Context)
	List(c *gin.Context)
	Info(c *gin.Context)
	AddDocuments(c *gin.Context)
	DeleteDocument(c *gin.Context)
	Query(c *gin.Context)
}

type CorpusHandlerImpl struct {
	usecase   usecase.CorpusUsecase
	logger    *logrus.Logger
	validator *validator.Validate
}

func NewCorpusHandler(usecase usecase.CorpusUsecase, logger *logrus.Logger, validator *validator.Validate) CorpusHandler {
	return &CorpusHandlerImpl{
		usecase:   usecase,
		logger:    logger,
		validator: validator,
	}
}

func (h *CorpusHandlerImpl) Create(c *gin.Context) {
	var req params.CreateCorpusRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	corpus, custErr := h.usecase.CreateCorpus(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.CreatedSuccessWithPayload(corpus)
	c.JSON(resp.StatusCode, resp)
}

func (h *CorpusHandlerImpl) Delete(c *gin.Context) {
	if custErr := h.usecase.DeleteCorpus(c.Request.Context(), c.Param("name")); custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Corpus deleted successfully", nil)
	c.JSON(resp.StatusCode, resp)
}

func (h *CorpusHandlerImpl) List(c *gin.Context) {
	corpora, custErr := h.usecase.ListCorpora(c.Request.Context())
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Corpora retrieved successfully", corpora)
	c.JSON(resp.StatusCode, resp)
}

func (h *CorpusHandlerImpl) Info(c *gin.Context) {
	info, custErr := h.usecase.CorpusInfo(c.Request.Context(), c.Param("name"))
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Corpus info retrieved successfully", info)
	c.JSON(resp.StatusCode, resp)
}

func (h *CorpusHandlerImpl) AddDocuments(c *gin.Context) {
	var req params.AddDocumentsRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	result, custErr := h.usecase.AddDocuments(c.Request.Context(), c.Param("name"), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.CreatedSuccessWithPayload(result)
	c.JSON(resp.StatusCode, resp)
}

func (h *CorpusHandlerImpl) DeleteDocument(c *gin.Context) {
	if custErr := h.usecase.DeleteDocument(c.Request.Context(), c.Param("name"), c.Param("documentId")); custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Document deleted successfully", nil)
	c.JSON(resp.StatusCode, resp)
}

func (h *CorpusHandlerImpl) Query(c *gin.Context) {
	var req params.CorpusQueryRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	result, custErr := h.usecase.Query(c.Request.Context(), c.Param("name"), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Corpus queried successfully", result)
	c.JSON(resp.StatusCode, resp)
}
