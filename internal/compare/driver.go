package compare

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Driver sequences the full comparison: optional cache clear, one run
// per labeled version, ratio report, unconditional persist. Strictly
// sequential; the two versions are never run concurrently so they do
// not contend for resources.
type Driver struct {
	Runner    Runner
	Original  VersionSpec
	Optimized VersionSpec
	Store     Store
	Out       io.Writer
}

// ClearCaches removes both cache directories if present. Idempotent;
// a missing directory is not an error.
func (d *Driver) ClearCaches() error {
	fmt.Fprintln(d.Out, "Clearing caches...")
	for _, v := range []VersionSpec{d.Original, d.Optimized} {
		if v.CacheDir == "" {
			continue
		}
		if _, err := os.Stat(v.CacheDir); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to inspect cache %s: %w", v.CacheDir, err)
		}
		if err := os.RemoveAll(v.CacheDir); err != nil {
			return fmt.Errorf("failed to clear cache %s: %w", v.CacheDir, err)
		}
		fmt.Fprintf(d.Out, "  - %s cache cleared\n", v.Label)
	}
	return nil
}

// Run executes the linear sequence and returns the assembled record.
// A build or run failure for one label leaves that label's metrics
// empty and the sequence continues; the record is persisted no matter
// what was gathered.
func (d *Driver) Run(ctx context.Context, clearFirst bool) (Comparison, error) {
	result := Comparison{Original: Metrics{}, Optimized: Metrics{}}

	if clearFirst {
		if err := d.ClearCaches(); err != nil {
			return result, err
		}
	}

	if m, err := d.Runner.RunVersion(ctx, d.Original); err != nil {
		slog.Warn("run yielded no result", "label", d.Original.Label, "error", err)
	} else {
		result.Original = m
	}

	// Clear again so the second run starts as cold as the first.
	if clearFirst {
		if err := d.ClearCaches(); err != nil {
			return result, err
		}
	}

	if m, err := d.Runner.RunVersion(ctx, d.Optimized); err != nil {
		slog.Warn("run yielded no result", "label", d.Optimized.Label, "error", err)
	} else {
		result.Optimized = m
	}

	if len(result.Original) > 0 && len(result.Optimized) > 0 {
		RenderReport(d.Out, BuildReport(result))
	}

	if err := d.Store.Save(result); err != nil {
		return result, fmt.Errorf("failed to save results: %w", err)
	}
	fmt.Fprintf(d.Out, "\nDetailed results saved to: %s\n", d.Store.Path())

	return result, nil
}
