package healthstats

import (
	"math"
	"strings"
	"time"
)

const (
	UnitKg = "kg"
	UnitLb = "lb"

	lbToKg = 0.453592

	// DefaultSource marks measurements submitted manually,
	// as opposed to ones pushed by a scale integration.
	DefaultSource = "manual"
)

type WeightMeasurement struct {
	ID                int       `json:"id"`
	WeightKg          float64   `json:"weightKg"`
	BodyFatPercentage *float64  `json:"bodyFatPercentage,omitempty"`
	MuscleMassKg      *float64  `json:"muscleMassKg,omitempty"`
	WaterPercentage   *float64  `json:"waterPercentage,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
	Source            string    `json:"source"`
}

type AddMeasurementRequest struct {
	Weight            float64   `json:"weight"`
	Unit              string    `json:"unit"`
	Timestamp         time.Time `json:"timestamp"`
	BodyFatPercentage *float64  `json:"bodyFatPercentage,omitempty"`
	MuscleMassKg      *float64  `json:"muscleMassKg,omitempty"`
	WaterPercentage   *float64  `json:"waterPercentage,omitempty"`
	Source            string    `json:"source,omitempty"`
}

// NormalizeToKg converts a weight value to kilograms.
// Pounds are converted, kilograms pass through unchanged.
func NormalizeToKg(value float64, unit string) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0, &ValidationError{Field: "weight", Reason: "must be a positive number"}
	}
	switch strings.ToLower(unit) {
	case UnitKg:
		return value, nil
	case UnitLb:
		return value * lbToKg, nil
	default:
		return 0, &ValidationError{Field: "unit", Reason: "must be kg or lb"}
	}
}

// ToMeasurement validates the request and returns the measurement
// to persist, with the weight normalized to kilograms.
func (r AddMeasurementRequest) ToMeasurement() (*WeightMeasurement, error) {
	if r.Unit == "" {
		return nil, &ValidationError{Field: "unit", Reason: "missing"}
	}
	if r.Timestamp.IsZero() {
		return nil, &ValidationError{Field: "timestamp", Reason: "missing"}
	}

	weightKg, err := NormalizeToKg(r.Weight, r.Unit)
	if err != nil {
		return nil, err
	}

	source := r.Source
	if source == "" {
		source = DefaultSource
	}

	return &WeightMeasurement{
		WeightKg:          weightKg,
		BodyFatPercentage: r.BodyFatPercentage,
		MuscleMassKg:      r.MuscleMassKg,
		WaterPercentage:   r.WaterPercentage,
		Timestamp:         r.Timestamp.UTC(),
		Source:            source,
	}, nil
}
