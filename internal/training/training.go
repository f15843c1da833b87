// Package training computes distance, speed and calories for the supported workout types.
package training

import (
	"errors"
	"fmt"

	"github.com/sstent/workoutstats/internal/models"
)

const (
	mInKm     = 1000
	minInHour = 60

	// stepLength is the distance covered by one step, in meters
	stepLength = 0.65
)

var (
	// ErrUnknownWorkout is returned when no calculator is registered for a workout code.
	ErrUnknownWorkout = errors.New("unknown workout code")
	// ErrInvalidData is returned when the supplied readings cannot build a calculator.
	ErrInvalidData = errors.New("invalid workout data")
)

// NotImplementedError reports a calculator without its own calories formula.
type NotImplementedError struct {
	Workout string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("calories calculation is not implemented for %s", e.Workout)
}

// Calculator derives workout statistics from an activity record.
type Calculator interface {
	Name() string
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	Calories() (float64, error)
}

// Training is the shared base of all calculators. Variants embed it and
// provide their own Calories.
type Training struct {
	name       string
	stepLength float64
	record     models.ActivityRecord
}

// NewTraining builds a base calculator. It has no calories formula of its own.
func NewTraining(name string, stepLength float64, record models.ActivityRecord) *Training {
	return &Training{
		name:       name,
		stepLength: stepLength,
		record:     record,
	}
}

func (t *Training) Name() string {
	return t.name
}

// Duration returns the workout duration in hours.
func (t *Training) Duration() float64 {
	return t.record.DurationHours
}

// Record returns a copy of the readings the calculator was built from.
func (t *Training) Record() models.ActivityRecord {
	return t.record
}

// Distance returns the covered distance in km.
func (t *Training) Distance() float64 {
	return float64(t.record.ActionCount) * t.stepLength / mInKm
}

// MeanSpeed returns the average speed in km/h.
func (t *Training) MeanSpeed() float64 {
	return t.Distance() / t.record.DurationHours
}

func (t *Training) Calories() (float64, error) {
	return 0, &NotImplementedError{Workout: t.name}
}

// Summarize computes every statistic of c into a Report.
func Summarize(c Calculator) (models.Report, error) {
	calories, err := c.Calories()
	if err != nil {
		return models.Report{}, fmt.Errorf("failed to calculate calories: %w", err)
	}

	return models.Report{
		WorkoutType:   c.Name(),
		DurationHours: c.Duration(),
		DistanceKm:    c.Distance(),
		MeanSpeedKmh:  c.MeanSpeed(),
		Calories:      calories,
	}, nil
}
