// Package parser reads workout packages from the supported input media.
package parser

import (
	"errors"
	"fmt"
	"os"
)

// ErrUnsupportedFile is returned when no parser handles an input file.
var ErrUnsupportedFile = errors.New("unsupported file type")

// Package is one workout reported by a tracker: a workout code and its
// readings in positional order.
type Package struct {
	Code string
	Data []any
}

// Athlete holds the body measurements used when the input does not carry them.
type Athlete struct {
	WeightKg float64
	HeightCm float64
}

type Parser interface {
	ParseFile(filename string) ([]Package, error)
	ParseData(data []byte) ([]Package, error)
}

func parseFile(p Parser, filename string) ([]Package, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	packages, err := p.ParseData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return packages, nil
}
