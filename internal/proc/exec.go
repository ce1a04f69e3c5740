package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// StepResult captures everything the caller needs to know about one
// completed external step.
type StepResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Elapsed  time.Duration
}

// Executor runs a single external build or run step to completion.
// Implementations must honor context cancellation and deadlines.
type Executor interface {
	Run(ctx context.Context, dir string, name string, args ...string) (StepResult, error)
}

// execCommandContext allows mocking of exec.CommandContext for testing.
var execCommandContext = exec.CommandContext

// CommandExecutor implements Executor using os/exec.
type CommandExecutor struct{}

// Run executes name with args in dir, capturing stdout and stderr
// separately. The returned StepResult is populated even when an error
// is returned, so callers can surface the captured error stream.
func (CommandExecutor) Run(ctx context.Context, dir string, name string, args ...string) (StepResult, error) {
	var stdout, stderr bytes.Buffer

	cmd := execCommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()

	res := StepResult{
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
		Elapsed: time.Since(start),
	}

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded || errors.Is(err, context.DeadlineExceeded) {
			res.ExitCode = -1
			return res, fmt.Errorf("step timed out after %s: %w", res.Elapsed.Round(time.Second), context.DeadlineExceeded)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, fmt.Errorf("step exited with status %d", res.ExitCode)
		}
		res.ExitCode = -1
		return res, fmt.Errorf("failed to start step: %w", err)
	}

	return res, nil
}
