package parser

import (
	"bytes"
	"fmt"

	"github.com/tormoder/fit"

	"github.com/sstent/workoutstats/internal/training"
)

const (
	invalidUint32 = 0xFFFFFFFF
	invalidUint16 = 0xFFFF

	msInHour      = 3600 * 1000
	cmInM         = 100
	stepsInStride = 2
)

// FITParser turns the sessions of a FIT activity file into packages.
type FITParser struct {
	athlete Athlete
}

func NewFITParser(athlete Athlete) *FITParser {
	return &FITParser{athlete: athlete}
}

func (p *FITParser) ParseFile(filename string) ([]Package, error) {
	return parseFile(p, filename)
}

func (p *FITParser) ParseData(data []byte) ([]Package, error) {
	fitFile, err := fit.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode FIT file: %w", err)
	}

	activity, err := fitFile.Activity()
	if err != nil {
		return nil, fmt.Errorf("failed to get activity from FIT: %w", err)
	}

	return p.packagesFromActivity(activity)
}

// packagesFromActivity maps each running, walking or swimming session to a
// package. Sessions of other sports are left out.
func (p *FITParser) packagesFromActivity(activity *fit.ActivityFile) ([]Package, error) {
	if len(activity.Sessions) == 0 {
		return nil, fmt.Errorf("no sessions found in FIT file")
	}

	var packages []Package
	for _, session := range activity.Sessions {
		if session == nil {
			continue
		}

		duration := sessionHours(session)
		cycles := float64(0)
		if session.TotalCycles != invalidUint32 {
			cycles = float64(session.TotalCycles)
		}

		switch session.Sport {
		case fit.SportRunning:
			packages = append(packages, Package{
				Code: training.CodeRunning,
				Data: []any{cycles * stepsInStride, duration, p.athlete.WeightKg},
			})
		case fit.SportWalking:
			packages = append(packages, Package{
				Code: training.CodeWalking,
				Data: []any{cycles * stepsInStride, duration, p.athlete.WeightKg, p.athlete.HeightCm},
			})
		case fit.SportSwimming:
			poolLength := float64(0)
			if session.PoolLength != invalidUint16 {
				poolLength = float64(session.PoolLength) / cmInM
			}
			lengths := float64(0)
			if session.NumActiveLengths != invalidUint16 {
				lengths = float64(session.NumActiveLengths)
			}
			packages = append(packages, Package{
				Code: training.CodeSwimming,
				Data: []any{cycles, duration, p.athlete.WeightKg, poolLength, lengths},
			})
		}
	}

	if len(packages) == 0 {
		return nil, fmt.Errorf("no running, walking or swimming sessions found in FIT file")
	}
	return packages, nil
}

// sessionHours prefers timer time, which excludes pauses, over elapsed time.
func sessionHours(session *fit.SessionMsg) float64 {
	ms := session.TotalTimerTime
	if ms == invalidUint32 {
		ms = session.TotalElapsedTime
	}
	if ms == invalidUint32 {
		return 0
	}
	return float64(ms) / msInHour
}
