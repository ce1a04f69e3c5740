package compare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"perfcmp/internal/proc"
)

// Runner runs one labeled version end to end and assembles its metrics.
type Runner interface {
	RunVersion(ctx context.Context, v VersionSpec) (Metrics, error)
}

// VersionRunner implements Runner: it builds the version, runs it under
// a time bound, scrapes timing metrics out of the captured stdout and
// measures wall clock and cache size itself.
type VersionRunner struct {
	Exec      proc.Executor
	BuildArgs []string // argv of the build step
	RunArgs   []string // argv of the run step
	Timeout   time.Duration
	Out       io.Writer // progress and failure diagnostics
}

// RunVersion returns nil Metrics when the build or run step fails; the
// captured error stream is written to Out so the operator sees why.
func (r *VersionRunner) RunVersion(ctx context.Context, v VersionSpec) (Metrics, error) {
	fmt.Fprintf(r.Out, "\nRunning %s version...\n", v.Label)
	fmt.Fprintln(r.Out, strings.Repeat("=", 50))

	fmt.Fprintf(r.Out, "Building %s...\n", v.Label)
	build, err := r.Exec.Run(ctx, v.Dir, r.BuildArgs[0], r.BuildArgs[1:]...)
	if err != nil || build.ExitCode != 0 {
		fmt.Fprintf(r.Out, "Build failed for %s:\n%s\n", v.Label, build.Stderr)
		if err == nil {
			err = fmt.Errorf("build exited with status %d", build.ExitCode)
		}
		return nil, fmt.Errorf("build failed for %s: %w", v.Label, err)
	}

	runCtx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	run, err := r.Exec.Run(runCtx, v.Dir, r.RunArgs[0], r.RunArgs[1:]...)
	if err != nil || run.ExitCode != 0 {
		if errors.Is(err, context.DeadlineExceeded) {
			fmt.Fprintf(r.Out, "Execution timed out for %s after %s\n", v.Label, r.Timeout)
		} else {
			fmt.Fprintf(r.Out, "Execution failed for %s:\n%s\n", v.Label, run.Stderr)
		}
		if err == nil {
			err = fmt.Errorf("run exited with status %d", run.ExitCode)
		}
		return nil, fmt.Errorf("run failed for %s: %w", v.Label, err)
	}

	timings := ExtractTimings(run.Stdout)
	timings[MetricTotalExecution] = run.Elapsed.Seconds()

	if size, ok := CacheSizeMB(v.CacheDir); ok {
		timings[MetricCacheSize] = size
	}

	return timings, nil
}
