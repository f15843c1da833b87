package training

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Workout codes reported by the trackers.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

// Factory builds a calculator from positional readings. Fields names the
// readings in the order they are expected.
type Factory struct {
	Fields []string
	Build  func(values []float64) (Calculator, error)
}

// Dispatcher maps workout codes to calculator factories.
type Dispatcher struct {
	factories map[string]Factory
}

// NewDispatcher validates the code table and returns a Dispatcher using it.
func NewDispatcher(factories map[string]Factory) (*Dispatcher, error) {
	if len(factories) == 0 {
		return nil, fmt.Errorf("no workout factories registered")
	}

	table := make(map[string]Factory, len(factories))
	for code, factory := range factories {
		if strings.TrimSpace(code) == "" {
			return nil, fmt.Errorf("empty workout code")
		}
		if factory.Build == nil {
			return nil, fmt.Errorf("workout %s has no build function", code)
		}
		if len(factory.Fields) == 0 {
			return nil, fmt.Errorf("workout %s has no fields", code)
		}
		table[code] = factory
	}

	return &Dispatcher{factories: table}, nil
}

// DefaultDispatcher returns a Dispatcher for running, walking and swimming.
func DefaultDispatcher() *Dispatcher {
	d, err := NewDispatcher(map[string]Factory{
		CodeSwimming: {
			Fields: []string{"strokes", "duration", "weight", "pool_length", "pool_laps"},
			Build: func(v []float64) (Calculator, error) {
				strokes, err := wholeNumber("strokes", v[0])
				if err != nil {
					return nil, err
				}
				laps, err := wholeNumber("pool_laps", v[4])
				if err != nil {
					return nil, err
				}
				return NewSwimming(strokes, v[1], v[2], v[3], laps)
			},
		},
		CodeRunning: {
			Fields: []string{"steps", "duration", "weight"},
			Build: func(v []float64) (Calculator, error) {
				steps, err := wholeNumber("steps", v[0])
				if err != nil {
					return nil, err
				}
				return NewRunning(steps, v[1], v[2])
			},
		},
		CodeWalking: {
			Fields: []string{"steps", "duration", "weight", "height"},
			Build: func(v []float64) (Calculator, error) {
				steps, err := wholeNumber("steps", v[0])
				if err != nil {
					return nil, err
				}
				return NewSportsWalking(steps, v[1], v[2], v[3])
			},
		},
	})
	if err != nil {
		panic(err)
	}
	return d
}

// Codes returns the registered workout codes in sorted order.
func (d *Dispatcher) Codes() []string {
	codes := make([]string, 0, len(d.factories))
	for code := range d.factories {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Dispatch builds the calculator registered for code from positional data.
// Unknown codes fail with ErrUnknownWorkout, malformed data with ErrInvalidData.
func (d *Dispatcher) Dispatch(code string, data []any) (Calculator, error) {
	factory, ok := d.factories[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkout, code)
	}

	if len(data) != len(factory.Fields) {
		return nil, fmt.Errorf("%w: %s expects %d values (%s), got %d",
			ErrInvalidData, code, len(factory.Fields), strings.Join(factory.Fields, ", "), len(data))
	}

	values := make([]float64, len(data))
	for i, raw := range data {
		value, err := toNumber(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s: %v", ErrInvalidData, code, factory.Fields[i], err)
		}
		values[i] = value
	}

	calc, err := factory.Build(values)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s calculator: %w", code, err)
	}
	return calc, nil
}

func toNumber(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("expected a finite number, got %v", f)
	}
	return f, nil
}

func wholeNumber(field string, v float64) (int, error) {
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrInvalidData, field, v)
	}
	return int(v), nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// validateDuration guards every speed calculation, which divides by the duration.
func validateDuration(durationHours float64) error {
	if !positive(durationHours) {
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidData, durationHours)
	}
	return nil
}
