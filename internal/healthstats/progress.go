package healthstats

import "time"

type GoalProgress struct {
	GoalID              int        `json:"goalId"`
	StartWeight         float64    `json:"startWeight"`
	TargetWeight        float64    `json:"targetWeight"`
	CurrentWeight       float64    `json:"currentWeight"`
	WeightLost          float64    `json:"weightLost"`
	WeightRemaining     float64    `json:"weightRemaining"`
	ProgressPercentage  float64    `json:"progressPercentage"`
	DaysSinceStart      int        `json:"daysSinceStart"`
	ProjectedCompletion *time.Time `json:"projectedCompletion,omitempty"`
	WeeklyGoal          *float64   `json:"weeklyGoal,omitempty"`
	IsOnTrack           *bool      `json:"isOnTrack,omitempty"`
}

// ComputeGoalProgress combines the active goal with the most recent
// measurement. The on-track determination is made only when the goal
// carries a weekly rate target, otherwise it is omitted.
func ComputeGoalProgress(
	goal *WeightGoal,
	latest *WeightMeasurement,
	now time.Time,
) *GoalProgress {
	totalToLose := goal.StartWeightKg - goal.TargetWeightKg
	lost := goal.StartWeightKg - latest.WeightKg

	progressPercentage := 0.0
	if totalToLose > 0 {
		progressPercentage = clamp(lost/totalToLose*100, 0, 100)
	}

	daysSinceStart := int(now.Sub(goal.StartDate).Hours() / 24)

	progress := &GoalProgress{
		GoalID:              goal.ID,
		StartWeight:         goal.StartWeightKg,
		TargetWeight:        goal.TargetWeightKg,
		CurrentWeight:       latest.WeightKg,
		WeightLost:          lost,
		WeightRemaining:     latest.WeightKg - goal.TargetWeightKg,
		ProgressPercentage:  progressPercentage,
		DaysSinceStart:      daysSinceStart,
		ProjectedCompletion: goal.TargetDate,
		WeeklyGoal:          goal.WeeklyGoalKg,
	}

	if goal.WeeklyGoalKg != nil {
		expectedProgress := float64(daysSinceStart) / 7 * *goal.WeeklyGoalKg
		onTrack := progressPercentage >= expectedProgress
		progress.IsOnTrack = &onTrack
	}

	return progress
}
