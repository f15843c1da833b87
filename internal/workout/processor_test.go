package workout_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/sstent/workoutstats/internal/parser"
	"github.com/sstent/workoutstats/internal/training"
	"github.com/sstent/workoutstats/internal/workout"
)

const (
	swimmingLine = "Workout type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; Avg speed: 1.000 km/h; Calories burned: 336.000."
	runningLine  = "Workout type: Running; Duration: 1.000 h.; Distance: 9.750 km; Avg speed: 9.750 km/h; Calories burned: 699.750."
	walkingLine  = "Workout type: SportsWalking; Duration: 1.000 h.; Distance: 5.850 km; Avg speed: 5.850 km/h; Calories burned: 157.500."
)

func TestProcessor_SamplePackages(t *testing.T) {
	var out bytes.Buffer
	p := workout.NewProcessor(training.DefaultDispatcher(), &out)

	summary, err := p.Run(parser.SamplePackages())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Processed)
	assert.Equal(t, 0, summary.Skipped)
	assert.NoError(t, summary.SkipErrors)

	assert.Equal(t, swimmingLine+"\n"+runningLine+"\n"+walkingLine+"\n", out.String())
}

func TestProcessor_SkipsInvalidData(t *testing.T) {
	var out bytes.Buffer
	p := workout.NewProcessor(training.DefaultDispatcher(), &out)

	summary, err := p.Run([]parser.Package{
		{Code: "SWM", Data: []any{720, 1, 80}},
		{Code: "RUN", Data: []any{15000, 1, 75}},
		{Code: "WLK", Data: []any{9000, "1", 75, 180}},
		{Code: "WLK", Data: []any{9000, 1, 75, 180}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 2, summary.Skipped)

	skipErrors := multierr.Errors(summary.SkipErrors)
	require.Len(t, skipErrors, 2)
	for _, skipErr := range skipErrors {
		assert.ErrorIs(t, skipErr, training.ErrInvalidData)
	}
	assert.Contains(t, skipErrors[0].Error(), "package 0")
	assert.Contains(t, skipErrors[1].Error(), "package 2")

	assert.Equal(t, runningLine+"\n"+walkingLine+"\n", out.String())
}

func TestProcessor_UnknownCodeStopsBatch(t *testing.T) {
	var out bytes.Buffer
	p := workout.NewProcessor(training.DefaultDispatcher(), &out)

	summary, err := p.Run([]parser.Package{
		{Code: "RUN", Data: []any{15000, 1, 75}},
		{Code: "XYZ", Data: []any{1, 2, 3}},
		{Code: "WLK", Data: []any{9000, 1, 75, 180}},
	})
	require.ErrorIs(t, err, training.ErrUnknownWorkout)
	assert.Contains(t, err.Error(), "package 1")
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, runningLine+"\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestProcessor_WriteError(t *testing.T) {
	p := workout.NewProcessor(training.DefaultDispatcher(), failingWriter{})

	summary, err := p.Run(parser.SamplePackages())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "disk full"))
	assert.Equal(t, 0, summary.Processed)
}

func TestProcessor_Empty(t *testing.T) {
	var out bytes.Buffer
	summary, err := workout.NewProcessor(training.DefaultDispatcher(), &out).Run(nil)
	require.NoError(t, err)
	assert.Equal(t, workout.Summary{}, summary)
	assert.Empty(t, out.String())
}
