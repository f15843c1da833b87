package training

import "github.com/sstent/workoutstats/internal/models"

const (
	runCalorieCoeff1 = 18
	runCalorieCoeff2 = 20
)

// Running is a running workout.
type Running struct {
	*Training
}

// NewRunning builds a running calculator from the step count, duration in hours and weight in kg.
func NewRunning(steps int, durationHours, weightKg float64) (*Running, error) {
	if err := validateDuration(durationHours); err != nil {
		return nil, err
	}

	record := models.ActivityRecord{
		ActionCount:   steps,
		DurationHours: durationHours,
		WeightKg:      weightKg,
	}
	return &Running{Training: NewTraining("Running", stepLength, record)}, nil
}

func (r *Running) Calories() (float64, error) {
	speed := r.MeanSpeed()
	// float64 conversions keep the products from being fused into FMA instructions
	calories := (float64(runCalorieCoeff1*speed) - runCalorieCoeff2) *
		r.record.WeightKg / mInKm * (r.record.DurationHours * minInHour)
	return calories, nil
}
