package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/gomdbuild/pkg/fsutil"
	"github.com/yaklabco/gomdbuild/pkg/inspect"
)

// Run discovers Markdown files under opts.Paths and inspects them with at
// most opts.Jobs concurrent workers. Outcomes are returned in path order. A
// file that cannot be read or parsed is recorded in its outcome and does not
// stop the run; cancellation does.
func Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	flavor := opts.effectiveFlavor()
	result := newResult(flavor, len(files))
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	// Inspectors are reused across files but never shared between goroutines.
	inspectors := sync.Pool{New: func() any { return inspect.New(flavor) }}

	outcomes := make([]FileOutcome, len(files))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			inspector, _ := inspectors.Get().(*inspect.Inspector)
			defer inspectors.Put(inspector)

			outcomes[i] = inspectFile(groupCtx, inspector, path)
			return groupCtx.Err()
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result, nil
}

func inspectFile(ctx context.Context, inspector *inspect.Inspector, path string) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	outcome.Report, outcome.Error = inspector.Inspect(ctx, content)
	return outcome
}
