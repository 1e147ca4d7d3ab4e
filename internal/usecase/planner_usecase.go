package usecase

import (
	"math"
	"time"

	"go-finance-assistant/internal/commons/response"
	"go-finance-assistant/internal/params"

	"github.com/sirupsen/logrus"
)

type PlannerUsecase interface {
	BudgetPlan(req *params.BudgetPlanRequest) *params.BudgetPlanResponse
	SetGoal(req *params.SetGoalRequest) *params.SetGoalResponse
	EvaluateProgress(req *params.EvaluateProgressRequest) (*params.ProgressResponse, *response.CustomError)
}

type PlannerUsecaseImpl struct {
	logger *logrus.Logger
}

func NewPlannerUsecase(logger *logrus.Logger) PlannerUsecase {
	return &PlannerUsecaseImpl{logger: logger}
}

// BudgetPlan allocates income with the 50/30/20 rule, then shifts wants and
// essentials equally toward a saving target when one is set above the
// default 20% band.
func (u *PlannerUsecaseImpl) BudgetPlan(req *params.BudgetPlanRequest) *params.BudgetPlanResponse {
	income := req.TotalIncome
	available := math.Max(income-req.TotalExpenses, 0)

	essentials := income * 0.5
	wants := income * 0.3
	savings := income * 0.2

	if req.SavingTarget != nil && *req.SavingTarget > savings {
		diff := *req.SavingTarget - savings
		wants -= diff / 2
		essentials -= diff / 2
		savings = *req.SavingTarget
	}

	return &params.BudgetPlanResponse{
		TotalIncome: income,
		SuggestedAllocation: params.BudgetAllocation{
			Essentials: round2(essentials),
			Wants:      round2(wants),
			Savings:    round2(savings),
		},
		ExpectedRemaining: round2(available),
		Notes:             "Plan based on 50/30/20 rule, adjusted for goals if provided.",
	}
}

func (u *PlannerUsecaseImpl) SetGoal(req *params.SetGoalRequest) *params.SetGoalResponse {
	goal := params.GoalDetails{
		GoalType:     req.GoalType,
		TargetAmount: req.TargetAmount,
		Period:       req.Period,
		StartDate:    time.Now().UTC().Format("2006-01-02"),
		Status:       "active",
	}

	u.logger.WithFields(logrus.Fields{
		"goal_type": goal.GoalType,
		"target":    goal.TargetAmount,
		"period":    goal.Period,
	}).Info("Financial goal set")

	return &params.SetGoalResponse{
		Message:     "Goal set successfully: " + goal.GoalType,
		GoalDetails: goal,
	}
}

func (u *PlannerUsecaseImpl) EvaluateProgress(req *params.EvaluateProgressRequest) (*params.ProgressResponse, *response.CustomError) {
	target := req.Goal.TargetAmount
	if target <= 0 {
		return nil, response.BadRequestError("goal target amount must be positive")
	}

	progress := math.Min(req.TotalSavings/target*100, 100)

	status := "moderate"
	switch {
	case progress >= 70:
		status = "on track"
	case progress < 40:
		status = "behind schedule"
	}

	advice := "Great progress, keep it up!"
	if progress < 50 {
		advice = "Increase savings rate to meet target faster."
	}

	return &params.ProgressResponse{
		GoalType:        req.Goal.GoalType,
		TargetAmount:    target,
		CurrentSavings:  req.TotalSavings,
		ProgressPercent: round2(progress),
		Status:          status,
		Advice:          advice,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
