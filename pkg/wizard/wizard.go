// Package wizard runs one setup pass: it detects the project's frameworks,
// resolves and validates the feature selection with the user, and renders the
// resulting configuration.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/detector"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/emit"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/features"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/selection"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/validation"
)

// ErrEmptySelection is returned when the user confirmed no features while at
// least one is required.
var ErrEmptySelection = errors.New("no features selected")

// Options configures a Wizard. Registry and Prompter are required.
type Options struct {
	Registry        *capability.Registry
	Prompter        selection.Prompter
	Store           selection.Store
	CorePackages    []string
	ExtraIgnores    []string
	Indent          string
	RequireNonEmpty bool
	Concurrency     int
	Logger          *log.Logger
}

// Wizard orchestrates a run. It holds no state between runs.
type Wizard struct {
	opts     Options
	detector *detector.Detector
	logger   *log.Logger
}

// New creates a wizard from opts
func New(opts Options) *Wizard {
	if opts.Registry == nil {
		opts.Registry = capability.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var detOpts []detector.Option
	if opts.Concurrency > 0 {
		detOpts = append(detOpts, detector.WithConcurrency(opts.Concurrency))
	}

	return &Wizard{
		opts:     opts,
		detector: detector.New(opts.Registry, detOpts...),
		logger:   logger,
	}
}

// Inspection is what the wizard learns about a project without asking the user.
type Inspection struct {
	Detection      detector.Result
	AutoDetected   []capability.FeatureID
	PackageManager detector.PackageManager
}

// Inspect detects frameworks and aggregates the features they imply.
func (w *Wizard) Inspect(ctx context.Context, ev detector.Evidence) (Inspection, error) {
	return w.inspect(ctx, ev, w.logger)
}

func (w *Wizard) inspect(ctx context.Context, ev detector.Evidence, logger *log.Logger) (Inspection, error) {
	result, err := w.detector.Detect(ctx, ev)
	if err != nil {
		return Inspection{}, err
	}
	for _, evErr := range result.Errors {
		logger.Warn("evidence lookup failed", "error", evErr)
	}
	for _, m := range result.Matches {
		logger.Debug("framework detected", "framework", m.Framework, "signals", m.Signals)
	}

	// Lookup failures were already recorded by the detector.
	prod, _ := ev.Dependencies(detector.SectionProduction)
	dev, _ := ev.Dependencies(detector.SectionDevelopment)

	return Inspection{
		Detection:      result,
		AutoDetected:   features.Aggregate(w.opts.Registry, result.Frameworks(), prod, dev),
		PackageManager: detector.DetectPackageManager(ev),
	}, nil
}

// Report is the outcome of a successful run.
type Report struct {
	RunID          string
	Inspection     Inspection
	Selection      selection.Selection
	Attempts       int
	Ignores        []string
	Scripts        []emit.Script
	InstallCommand string
	Artifact       emit.Artifact
}

// Run performs Detect, Aggregate, Resolve, Validate, Dependency resolution and
// Emit. An invalid selection is handed back to the prompter for correction
// until it validates or the prompter aborts.
func (w *Wizard) Run(ctx context.Context, ev detector.Evidence) (*Report, error) {
	runID := uuid.NewString()
	logger := w.logger.With("run", runID)

	inspection, err := w.inspect(ctx, ev, logger)
	if err != nil {
		return nil, err
	}
	return w.complete(ctx, runID, logger, inspection)
}

// Complete runs the remaining stages for an inspection obtained from Inspect.
func (w *Wizard) Complete(ctx context.Context, inspection Inspection) (*Report, error) {
	runID := uuid.NewString()
	return w.complete(ctx, runID, w.logger.With("run", runID), inspection)
}

func (w *Wizard) complete(ctx context.Context, runID string, logger *log.Logger, inspection Inspection) (*Report, error) {
	detected := inspection.Detection.Frameworks()
	logger.Info("detection finished", "frameworks", len(detected), "features", len(inspection.AutoDetected))

	saved := w.loadSaved(logger)

	resolver := selection.NewResolver(w.opts.Registry, w.opts.Prompter, selection.WithRequired(w.opts.RequireNonEmpty))
	sel, err := resolver.Resolve(ctx, saved, inspection.AutoDetected)
	if err != nil {
		return nil, err
	}
	for _, warning := range sel.Warnings {
		logger.Warn("saved selection discarded", "error", warning)
	}

	attempts := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run cancelled: %w", err)
		}
		if sel.IsEmpty() {
			if w.opts.RequireNonEmpty {
				return nil, ErrEmptySelection
			}
			logger.Warn("continuing with an empty selection")
		}

		result := validation.Validate(w.opts.Registry, sel.Features, detected)
		if result.Valid() {
			break
		}
		logger.Warn("feature selection rejected", "reasons", result.Reasons, "attempt", attempts)

		sel, err = resolver.Reselect(ctx, sel, result.Reasons)
		if err != nil {
			return nil, errors.Join(result.Err(), err)
		}
		attempts++
	}

	emitter := &emit.Emitter{
		Registry:     w.opts.Registry,
		CorePackages: w.opts.CorePackages,
		Indent:       w.opts.Indent,
	}
	ignores := emit.IgnorePatterns(w.opts.Registry, detected, w.opts.ExtraIgnores)
	artifact, err := emitter.Emit(sel.Features, ignores)
	if err != nil {
		return nil, fmt.Errorf("failed to render configuration: %w", err)
	}
	logger.Info("configuration rendered", "features", len(sel.Features), "dependencies", len(artifact.Dependencies))

	return &Report{
		RunID:          runID,
		Inspection:     inspection,
		Selection:      sel,
		Attempts:       attempts,
		Ignores:        ignores,
		Scripts:        emit.Scripts(w.opts.Registry, detected),
		InstallCommand: inspection.PackageManager.AddCommand(artifact.Dependencies),
		Artifact:       artifact,
	}, nil
}

func (w *Wizard) loadSaved(logger *log.Logger) []capability.FeatureID {
	if w.opts.Store == nil {
		return nil
	}
	saved, err := w.opts.Store.Load()
	if err != nil {
		logger.Warn("ignoring unreadable saved selection", "error", err)
		return nil
	}
	if saved != nil {
		logger.Debug("saved selection loaded", "features", len(saved))
	}
	return saved
}
