package parser

import "github.com/sstent/workoutstats/internal/training"

// SamplePackages returns the built-in demo readings, one per workout type.
func SamplePackages() []Package {
	return []Package{
		{Code: training.CodeSwimming, Data: []any{720, 1, 80, 25, 40}},
		{Code: training.CodeRunning, Data: []any{15000, 1, 75}},
		{Code: training.CodeWalking, Data: []any{9000, 1, 75, 180}},
	}
}
