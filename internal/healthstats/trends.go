package healthstats

import (
	"math"
	"strconv"
	"time"
)

const (
	TrendGaining          = "gaining"
	TrendLosing           = "losing"
	TrendStable           = "stable"
	TrendNoChange         = "no_change"
	TrendInsufficientData = "insufficient_data"
)

var movingAverageWindows = []int{7, 14, 30}

type Plateau struct {
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	DurationDays int       `json:"durationDays"`
	WeightChange float64   `json:"weightChange"`
}

type TrendAnalysis struct {
	PeriodDays     int                  `json:"periodDays"`
	MovingAverages map[string][]float64 `json:"movingAverages"`
	Plateaus       []Plateau            `json:"plateaus"`
	OverallTrend   string               `json:"overallTrend"`
	DataPoints     int                  `json:"dataPoints"`
	AnalysisDate   time.Time            `json:"analysisDate"`
}

// AnalyzeTrends runs moving averages, plateau detection and trend
// classification over measurements ordered oldest first.
func AnalyzeTrends(
	measurements []WeightMeasurement,
	periodDays int,
	now time.Time,
) (*TrendAnalysis, error) {
	if len(measurements) == 0 {
		return nil, ErrNoData
	}

	movingAverages := make(map[string][]float64, len(movingAverageWindows))
	for _, window := range movingAverageWindows {
		// a nil slice marshals to JSON null, marking the window
		// as not computable with the samples at hand
		movingAverages[strconv.Itoa(window)] = MovingAverage(measurements, window)
	}

	return &TrendAnalysis{
		PeriodDays:     periodDays,
		MovingAverages: movingAverages,
		Plateaus:       DetectPlateaus(measurements),
		OverallTrend:   ClassifyTrend(measurements),
		DataPoints:     len(measurements),
		AnalysisDate:   now.UTC(),
	}, nil
}

// MovingAverage returns the simple arithmetic means over each sliding
// window position, oldest first, or nil if there are fewer samples
// than the window size.
func MovingAverage(measurements []WeightMeasurement, window int) []float64 {
	if len(measurements) < window {
		return nil
	}
	averages := make([]float64, 0, len(measurements)-window+1)
	for i := 0; i+window <= len(measurements); i++ {
		sum := 0.0
		for _, m := range measurements[i : i+window] {
			sum += m.WeightKg
		}
		averages = append(averages, sum/float64(window))
	}
	return averages
}

// DetectPlateaus records one interval per consecutive sample pair whose
// weight change is below the plateau threshold. Adjacent qualifying
// pairs are deliberately not merged into longer runs, consumers depend
// on the pair granularity.
func DetectPlateaus(measurements []WeightMeasurement) []Plateau {
	plateaus := make([]Plateau, 0)
	for i := 1; i < len(measurements); i++ {
		change := measurements[i].WeightKg - measurements[i-1].WeightKg
		if math.Abs(change) < plateauThresholdKg {
			plateaus = append(plateaus, Plateau{
				StartDate:    measurements[i-1].Timestamp,
				EndDate:      measurements[i].Timestamp,
				DurationDays: 1,
				WeightChange: change,
			})
		}
	}
	return plateaus
}

// ClassifyTrend classifies the overall direction from the first and
// last sample.
func ClassifyTrend(measurements []WeightMeasurement) string {
	if len(measurements) < 2 {
		return TrendInsufficientData
	}

	first := measurements[0]
	last := measurements[len(measurements)-1]
	elapsedDays := last.Timestamp.Sub(first.Timestamp).Hours() / 24
	if elapsedDays == 0 {
		return TrendNoChange
	}

	dailyRate := (last.WeightKg - first.WeightKg) / elapsedDays
	switch {
	case dailyRate > trendRateThresholdKg:
		return TrendGaining
	case dailyRate < -trendRateThresholdKg:
		return TrendLosing
	default:
		return TrendStable
	}
}

// ConsistencyScore is the percentage of consecutive sample pairs whose
// weight change stays within the plateau threshold, a stability proxy.
// It is 0 for fewer than 2 samples.
func ConsistencyScore(measurements []WeightMeasurement) float64 {
	if len(measurements) < 2 {
		return 0
	}
	consistentPairs := 0
	for i := 1; i < len(measurements); i++ {
		change := math.Abs(measurements[i].WeightKg - measurements[i-1].WeightKg)
		if change <= plateauThresholdKg {
			consistentPairs++
		}
	}
	return float64(consistentPairs) / float64(len(measurements)-1) * 100
}
