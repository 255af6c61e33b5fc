package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/haikal/internal/logging"
)

// Processor handles one discovered file. Implementations must be safe for
// concurrent use.
type Processor interface {
	Process(ctx context.Context, path string) (*FileResult, error)
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx context.Context, path string) (*FileResult, error)

// Process calls fn.
func (fn ProcessorFunc) Process(ctx context.Context, path string) (*FileResult, error) {
	return fn(ctx, path)
}

// Runner fans discovered files out to a Processor.
type Runner struct {
	Processor Processor
}

// New creates a Runner around p.
func New(p Processor) *Runner {
	return &Runner{Processor: p}
}

// Run discovers files and processes them with a bounded worker pool.
// Outcomes are returned in discovery order regardless of completion order.
// A per-file failure is recorded on its outcome and does not stop the run.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	logger.Debug("run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldViolations, result.Stats.ViolationsTotal,
	)
	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		if ctx.Err() != nil {
			return
		}

		outcome := FileOutcome{Path: path}
		outcome.Result, outcome.Error = r.Processor.Process(logging.WithFields(ctx, logging.FieldPath, path), path)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
