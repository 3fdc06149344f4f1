package healthstats

import (
	"time"
)

const (
	// ProjectionAlgorithm is a versioning contract for downstream
	// consumers; bump it whenever the formula changes.
	ProjectionAlgorithm = "linear_regression_v1"

	MinProjectionSamples = 7
	DefaultHorizonDays   = 30
	plateauThresholdKg   = 0.5
	trendRateThresholdKg = 0.1
)

type ProjectedPoint struct {
	Date              time.Time `json:"date"`
	ProjectedWeightKg float64   `json:"projectedWeightKg"`
	Confidence        float64   `json:"confidence"`
	DailyRate         float64   `json:"dailyRate"`
	DaysFromNow       int       `json:"daysFromNow"`
}

type ProjectionResult struct {
	CurrentWeight float64          `json:"currentWeight"`
	DailyRate     float64          `json:"dailyRate"`
	Confidence    float64          `json:"confidence"`
	Projections   []ProjectedPoint `json:"projections"`
	Algorithm     string           `json:"algorithm"`
}

// ComputeProjections extrapolates a linear weight trend over the given
// horizon from measurements ordered oldest first. The daily rate comes
// from the first and last sample, and the confidence score from the
// population variance of all sample weights. Projected weights are
// clamped at 0.
func ComputeProjections(
	measurements []WeightMeasurement,
	horizonDays int,
	now time.Time,
) (*ProjectionResult, error) {
	if len(measurements) < MinProjectionSamples {
		return nil, &InsufficientDataError{
			Required: MinProjectionSamples,
			Actual:   len(measurements),
		}
	}
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	first := measurements[0]
	last := measurements[len(measurements)-1]

	totalDays := last.Timestamp.Sub(first.Timestamp).Hours() / 24
	// loss is positive
	totalChange := first.WeightKg - last.WeightKg

	dailyRate := 0.0
	if totalDays > 0 {
		dailyRate = totalChange / totalDays
	}

	confidence := clamp(1-weightVariance(measurements)/100, 0.1, 0.95)

	currentWeight := last.WeightKg
	projections := make([]ProjectedPoint, 0, horizonDays)
	for i := 1; i <= horizonDays; i++ {
		projectedWeight := currentWeight - dailyRate*float64(i)
		if projectedWeight < 0 {
			projectedWeight = 0
		}
		projections = append(projections, ProjectedPoint{
			Date:              dateOnly(now.AddDate(0, 0, i)),
			ProjectedWeightKg: projectedWeight,
			Confidence:        confidence,
			DailyRate:         dailyRate,
			DaysFromNow:       i,
		})
	}

	return &ProjectionResult{
		CurrentWeight: currentWeight,
		DailyRate:     dailyRate,
		Confidence:    confidence,
		Projections:   projections,
		Algorithm:     ProjectionAlgorithm,
	}, nil
}

// weightVariance is the population variance of the sample weights.
func weightVariance(measurements []WeightMeasurement) float64 {
	sum := 0.0
	for _, m := range measurements {
		sum += m.WeightKg
	}
	mean := sum / float64(len(measurements))

	sqDiffSum := 0.0
	for _, m := range measurements {
		diff := m.WeightKg - mean
		sqDiffSum += diff * diff
	}
	return sqDiffSum / float64(len(measurements))
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
