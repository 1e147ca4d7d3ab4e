package handler

import (
	"go-finance-assistant/internal/commons/response"
	"go-finance-assistant/internal/params"
	"go-finance-assistant/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type PlannerHandler interface {
	BudgetPlan(c *gin.Context)
	SetGoal(c *gin.Context)
	EvaluateProgress(c *gin.Context)
}

type PlannerHandlerImpl struct {
	usecase   usecase.PlannerUsecase
	logger    *logrus.Logger
	validator *validator.Validate
}

func NewPlannerHandler(usecase usecase.PlannerUsecase, logger *logrus.Logger, validator *validator.Validate) PlannerHandler {
	return &PlannerHandlerImpl{
		usecase:   usecase,
		logger:    logger,
		validator: validator,
	}
}

func (h *PlannerHandlerImpl) BudgetPlan(c *gin.Context) {
	var req params.BudgetPlanRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	plan := h.usecase.BudgetPlan(&req)

	resp := response.GeneralSuccessCustomMessageAndPayload("Budget plan generated successfully", plan)
	c.JSON(resp.StatusCode, resp)
}

func (h *PlannerHandlerImpl) SetGoal(c *gin.Context) {
	var req params.SetGoalRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	goal := h.usecase.SetGoal(&req)

	resp := response.CreatedSuccessWithPayload(goal)
	c.JSON(resp.StatusCode, resp)
}

func (h *PlannerHandlerImpl) EvaluateProgress(c *gin.Context) {
	var req params.EvaluateProgressRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	progress, custErr := h.usecase.EvaluateProgress(&req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Goal progress evaluated successfully", progress)
	c.JSON(resp.StatusCode, resp)
}
