package detector

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
)

// defaultConcurrency bounds the number of frameworks evaluated at once
const defaultConcurrency = 8

// Detector evaluates the framework table of a registry against project evidence
type Detector struct {
	registry    *capability.Registry
	concurrency int
}

// Option configures a Detector
type Option func(*Detector)

// WithConcurrency sets how many frameworks are evaluated in parallel.
// Values below one make detection sequential.
func WithConcurrency(n int) Option {
	return func(d *Detector) {
		if n < 1 {
			n = 1
		}
		d.concurrency = n
	}
}

// New creates a detector for the given registry
func New(registry *capability.Registry, opts ...Option) *Detector {
	d := &Detector{
		registry:    registry,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect returns every framework with at least one matching file or package
// indicator. Failed lookups are recorded in Result.Errors and never abort the
// pass; only context cancellation returns an error.
func (d *Detector) Detect(ctx context.Context, ev Evidence) (Result, error) {
	var result Result

	prod, err := ev.Dependencies(SectionProduction)
	if err != nil {
		result.Errors = append(result.Errors, &EvidenceError{Indicator: "package.json dependencies", Err: err})
		prod = nil
	}
	dev, err := ev.Dependencies(SectionDevelopment)
	if err != nil {
		result.Errors = append(result.Errors, &EvidenceError{Indicator: "package.json devDependencies", Err: err})
		dev = nil
	}

	frameworks := d.registry.Frameworks()
	matches := make([]*Match, len(frameworks))
	errs := make([][]error, len(frameworks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)

	for i, fw := range frameworks {
		if !fw.Detectable() {
			continue
		}
		i, fw := i, fw
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, ok, lookupErrs := evaluate(fw, ev, prod, dev)
			if ok {
				matches[i] = &m
			}
			errs[i] = lookupErrs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("detection cancelled: %w", err)
	}

	for i := range frameworks {
		result.Errors = append(result.Errors, errs[i]...)
		if matches[i] != nil {
			result.Matches = append(result.Matches, *matches[i])
		}
	}

	return result, nil
}

func evaluate(fw capability.Framework, ev Evidence, prod, dev map[string]string) (Match, bool, []error) {
	return newDetectionBuilder(fw.ID, ev).
		CheckAnyFile(fw.FileIndicators).
		CheckDependency(prod, fw.PackageIndicators.Dependencies, "dependencies").
		CheckDependency(dev, fw.PackageIndicators.DevDependencies, "devDependencies").
		CheckEitherDependency(prod, dev, fw.PackageIndicators.Either).
		Build()
}
