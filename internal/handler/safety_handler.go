package handler

import (
	"go-finance-assistant/internal/commons/response"
	"go-finance-assistant/internal/params"
	"go-finance-assistant/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type SafetyHandler interface {
	Classify(c *gin.Context)
}

type SafetyHandlerImpl struct {
	usecase   usecase.SafetyUsecase
	logger    *logrus.Logger
	validator *validator.Validate
}

func NewSafetyHandler(usecase usecase.SafetyUsecase, logger *logrus.Logger, validator *validator.Validate) SafetyHandler {
	return &SafetyHandlerImpl{
		usecase:   usecase,
		logger:    logger,
		validator: validator,
	}
}

func (h *SafetyHandlerImpl) Classify(c *gin.Context) {
	var req params.ClassifyRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	result, custErr := h.usecase.ClassifyText(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Text classified successfully", result)
	c.JSON(resp.StatusCode, resp)
}
