package params

type BudgetPlanRequest struct {
	TotalIncome   float64  `json:"total_income" validate:"gte=0"`
	TotalExpenses float64  `json:"total_expenses" validate:"gte=0"`
	SavingTarget  *float64 `json:"saving_target,omitempty" validate:"omitempty,gte=0"`
}

type BudgetAllocation struct {
	Essentials float64 `json:"essentials"`
	Wants      float64 `json:"wants"`
	Savings    float64 `json:"savings"`
}

type BudgetPlanResponse struct {
	TotalIncome         float64          `json:"total_income"`
	SuggestedAllocation BudgetAllocation `json:"suggested_allocation"`
	ExpectedRemaining   float64          `json:"expected_remaining"`
	Notes               string           `json:"notes"`
}

type SetGoalRequest struct {
	GoalType     string  `json:"goal_type" validate:"required,oneof=saving investment debt_reduction"`
	TargetAmount float64 `json:"target_amount" validate:"required,gt=0"`
	Period       string  `json:"period" validate:"required,max=50"`
}

type GoalDetails struct {
	GoalType     string  `json:"goal_type"`
	TargetAmount float64 `json:"target_amount"`
	Period       string  `json:"period"`
	StartDate    string  `json:"start_date"`
	Status       string  `json:"status"`
}

type SetGoalResponse struct {
	Message     string      `json:"message"`
	GoalDetails GoalDetails `json:"goal_details"`
}

type EvaluateProgressRequest struct {
	TotalSavings float64     `json:"total_savings" validate:"gte=0"`
	Goal         GoalDetails `json:"goal" validate:"required"`
}

type ProgressResponse struct {
	GoalType        string  `json:"goal_type"`
	TargetAmount    float64 `json:"target_amount"`
	CurrentSavings  float64 `json:"current_savings"`
	ProgressPercent float64 `json:"progress_percent"`
	Status          string  `json:"status"`
	Advice          string  `json:"advice"`
}
