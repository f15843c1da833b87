// Package report renders workout summaries for display.
package report

import (
	"fmt"

	"github.com/sstent/workoutstats/internal/models"
)

const messageFormat = "Workout type: %s; Duration: %.3f h.; Distance: %.3f km; " +
	"Avg speed: %.3f km/h; Calories burned: %.3f."

// Message formats r as a single line with three decimals per value.
func Message(r models.Report) string {
	return fmt.Sprintf(messageFormat,
		r.WorkoutType, r.DurationHours, r.DistanceKm, r.MeanSpeedKmh, r.Calories)
}
