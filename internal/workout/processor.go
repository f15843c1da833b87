// Package workout runs batches of tracker packages through the calculators.
package workout

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/sstent/workoutstats/internal/parser"
	"github.com/sstent/workoutstats/internal/report"
	"github.com/sstent/workoutstats/internal/training"
)

// Summary describes the outcome of one batch.
type Summary struct {
	Processed int
	Skipped   int
	// SkipErrors holds the reason of every skipped package.
	SkipErrors error
}

type Processor struct {
	dispatcher *training.Dispatcher
	out        io.Writer
}

func NewProcessor(dispatcher *training.Dispatcher, out io.Writer) *Processor {
	return &Processor{
		dispatcher: dispatcher,
		out:        out,
	}
}

// Run writes one report line per package, in order. Packages with invalid data
// are skipped; an unknown workout code or a failed write stops the batch.
func (p *Processor) Run(packages []parser.Package) (Summary, error) {
	var summary Summary

	for i, pkg := range packages {
		line, err := p.process(pkg)
		if errors.Is(err, training.ErrInvalidData) {
			log.WithFields(log.Fields{
				"index": i,
				"code":  pkg.Code,
			}).Warnf("invalid workout code or supplied data: %v", err)
			summary.Skipped++
			summary.SkipErrors = multierr.Append(summary.SkipErrors, fmt.Errorf("package %d: %w", i, err))
			continue
		}
		if err != nil {
			return summary, fmt.Errorf("package %d: %w", i, err)
		}

		if _, err := fmt.Fprintln(p.out, line); err != nil {
			return summary, fmt.Errorf("failed to write report: %w", err)
		}
		summary.Processed++
		log.Debugf("processed package %d (%s)", i, pkg.Code)
	}

	return summary, nil
}

func (p *Processor) process(pkg parser.Package) (string, error) {
	calc, err := p.dispatcher.Dispatch(pkg.Code, pkg.Data)
	if err != nil {
		return "", err
	}

	r, err := training.Summarize(calc)
	if err != nil {
		return "", err
	}
	return report.Message(r), nil
}
