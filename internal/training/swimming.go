package training

import "github.com/sstent/workoutstats/internal/models"

const (
	// strokeLength is the distance covered by one stroke, in meters
	strokeLength = 1.38

	swimCalorieCoeff1 = 1.1
	swimCalorieCoeff2 = 2
)

// Swimming is a pool swimming workout.
type Swimming struct {
	*Training
}

// NewSwimming builds a swimming calculator. poolLength is in meters, laps is
// the number of pool lengths swum.
func NewSwimming(strokes int, durationHours, weightKg, poolLengthM float64, laps int) (*Swimming, error) {
	if err := validateDuration(durationHours); err != nil {
		return nil, err
	}

	record := models.ActivityRecord{
		ActionCount:   strokes,
		DurationHours: durationHours,
		WeightKg:      weightKg,
		PoolLengthM:   poolLengthM,
		PoolLaps:      laps,
	}
	return &Swimming{Training: NewTraining("Swimming", strokeLength, record)}, nil
}

// MeanSpeed is derived from the pool lengths, not the stroke count.
func (s *Swimming) MeanSpeed() float64 {
	return s.record.PoolLengthM * float64(s.record.PoolLaps) / mInKm / s.record.DurationHours
}

func (s *Swimming) Calories() (float64, error) {
	return (s.MeanSpeed() + swimCalorieCoeff1) * swimCalorieCoeff2 * s.record.WeightKg, nil
}
