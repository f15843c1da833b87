package training

import (
	"fmt"
	"math"

	"github.com/sstent/workoutstats/internal/models"
)

const (
	walkCalorieCoeff1 = 0.035
	walkCalorieCoeff2 = 0.029
)

// SportsWalking is a race walking workout.
type SportsWalking struct {
	*Training
}

// NewSportsWalking builds a walking calculator. height is in cm.
func NewSportsWalking(steps int, durationHours, weightKg, heightCm float64) (*SportsWalking, error) {
	if err := validateDuration(durationHours); err != nil {
		return nil, err
	}
	if heightCm == 0 || math.IsNaN(heightCm) {
		return nil, fmt.Errorf("%w: height must be a non-zero number, got %v", ErrInvalidData, heightCm)
	}

	record := models.ActivityRecord{
		ActionCount:   steps,
		DurationHours: durationHours,
		WeightKg:      weightKg,
		HeightCm:      heightCm,
	}
	return &SportsWalking{Training: NewTraining("SportsWalking", stepLength, record)}, nil
}

// Calories uses a floored speed²/height ratio, so only whole multiples of the
// height contribute to the second term.
func (w *SportsWalking) Calories() (float64, error) {
	speed := w.MeanSpeed()
	weight := w.record.WeightKg
	ratio := floorDiv(float64(speed*speed), w.record.HeightCm)
	calories := (float64(walkCalorieCoeff1*weight) + float64(ratio*walkCalorieCoeff2*weight)) *
		(w.record.DurationHours * minInHour)
	return calories, nil
}

// floorDiv divides x by y rounding toward negative infinity. The quotient is
// derived from the remainder, since math.Floor(x/y) is off by one when x/y
// rounds up to an integer.
func floorDiv(x, y float64) float64 {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return math.Copysign(0, x/y)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor += 1
	}
	return floor
}
