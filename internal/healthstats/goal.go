package healthstats

import "time"

type WeightGoal struct {
	ID             int        `json:"id"`
	StartWeightKg  float64    `json:"startWeightKg"`
	TargetWeightKg float64    `json:"targetWeightKg"`
	StartDate      time.Time  `json:"startDate"`
	TargetDate     *time.Time `json:"targetDate,omitempty"`
	WeeklyGoalKg   *float64   `json:"weeklyGoalKg,omitempty"`
	IsActive       bool       `json:"isActive"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type SetGoalRequest struct {
	StartWeight  float64    `json:"startWeight"`
	TargetWeight float64    `json:"targetWeight"`
	StartDate    time.Time  `json:"startDate"`
	TargetDate   *time.Time `json:"targetDate,omitempty"`
	WeeklyGoal   *float64   `json:"weeklyGoal,omitempty"`
}

func (r SetGoalRequest) ToGoal() (*WeightGoal, error) {
	if r.StartWeight <= 0 {
		return nil, &ValidationError{Field: "startWeight", Reason: "must be a positive number"}
	}
	if r.TargetWeight <= 0 {
		return nil, &ValidationError{Field: "targetWeight", Reason: "must be a positive number"}
	}
	if r.StartDate.IsZero() {
		return nil, &ValidationError{Field: "startDate", Reason: "missing"}
	}
	return &WeightGoal{
		StartWeightKg:  r.StartWeight,
		TargetWeightKg: r.TargetWeight,
		StartDate:      r.StartDate.UTC(),
		TargetDate:     r.TargetDate,
		WeeklyGoalKg:   r.WeeklyGoal,
		IsActive:       true,
	}, nil
}
