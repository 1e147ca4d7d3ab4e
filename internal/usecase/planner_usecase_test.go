package usecase_test

import (
	"testing"

	"go-finance-assistant/internal/params"
	"go-finance-assistant/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func setupPlannerTest(t *testing.T) usecase.PlannerUsecase {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return usecase.NewPlannerUsecase(logger)
}

func TestBudgetPlan_FiftyThirtyTwenty(t *testing.T) {
	uc := setupPlannerTest(t)

	plan := uc.BudgetPlan(&params.BudgetPlanRequest{
		TotalIncome:   10000,
		TotalExpenses: 4000,
	})

	assert.Equal(t, 5000.0, plan.SuggestedAllocation.Essentials)
	assert.Equal(t, 3000.0, plan.SuggestedAllocation.Wants)
	assert.Equal(t, 2000.0, plan.SuggestedAllocation.Savings)
	assert.Equal(t, 6000.0, plan.ExpectedRemaining)
}

func TestBudgetPlan_SavingTargetShiftsAllocation(t *testing.T) {
	uc := setupPlannerTest(t)

	target := 3000.0
	plan := uc.BudgetPlan(&params.BudgetPlanRequest{
		TotalIncome:  10000,
		SavingTarget: &target,
	})

	// The extra 1000 above the 20% band comes half from wants, half from
	// essentials.
	assert.Equal(t, 3000.0, plan.SuggestedAllocation.Savings)
	assert.Equal(t, 2500.0, plan.SuggestedAllocation.Wants)
	assert.Equal(t, 4500.0, plan.SuggestedAllocation.Essentials)
}

func TestBudgetPlan_ExpensesAboveIncome(t *testing.T) {
	uc := setupPlannerTest(t)

	plan := uc.BudgetPlan(&params.BudgetPlanRequest{
		TotalIncome:   1000,
		TotalExpenses: 1500,
	})

	assert.Equal(t, 0.0, plan.ExpectedRemaining)
}

func TestSetGoal(t *testing.T) {
	uc := setupPlannerTest(t)

	resp := uc.SetGoal(&params.SetGoalRequest{
		GoalType:     "saving",
		TargetAmount: 5000,
		Period:       "6 months",
	})

	assert.Equal(t, "Goal set successfully: saving", resp.Message)
	assert.Equal(t, "active", resp.GoalDetails.Status)
	assert.NotEmpty(t, resp.GoalDetails.StartDate)
}

func TestEvaluateProgress_Statuses(t *testing.T) {
	uc := setupPlannerTest(t)

	tests := []struct {
		name     string
		savings  float64
		target   float64
		percent  float64
		status   string
	}{
		{"on track", 800, 1000, 80, "on track"},
		{"moderate", 500, 1000, 50, "moderate"},
		{"behind", 200, 1000, 20, "behind schedule"},
		{"capped at hundred", 1500, 1000, 100, "on track"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.EvaluateProgress(&params.EvaluateProgressRequest{
				TotalSavings: tt.savings,
				Goal:         params.GoalDetails{GoalType: "saving", TargetAmount: tt.target},
			})

			assert.Nil(t, err)
			assert.Equal(t, tt.percent, resp.ProgressPercent)
			assert.Equal(t, tt.status, resp.Status)
		})
	}
}

func TestEvaluateProgress_InvalidTarget(t *testing.T) {
	uc := setupPlannerTest(t)

	resp, err := uc.EvaluateProgress(&params.EvaluateProgressRequest{
		TotalSavings: 100,
		Goal:         params.GoalDetails{GoalType: "saving", TargetAmount: 0},
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 400, err.StatusCode)
}

func TestEvaluateProgress_AdviceThreshold(t *testing.T) {
	uc := setupPlannerTest(t)

	behind, err := uc.EvaluateProgress(&params.EvaluateProgressRequest{
		TotalSavings: 400,
		Goal:         params.GoalDetails{GoalType: "saving", TargetAmount: 1000},
	})
	assert.Nil(t, err)
	assert.Equal(t, "Increase savings rate to meet target faster.", behind.Advice)

	ahead, err := uc.EvaluateProgress(&params.EvaluateProgressRequest{
		TotalSavings: 600,
		Goal:         params.GoalDetails{GoalType: "saving", TargetAmount: 1000},
	})
	assert.Nil(t, err)
	assert.Equal(t, "Great progress, keep it up!", ahead.Advice)
}
