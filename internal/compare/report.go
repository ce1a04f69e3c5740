package compare

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Row is one metric's line in the comparison report.
type Row struct {
	Name      string
	Key       string
	Original  float64
	Optimized float64
	Ratio     float64 // set only when both sides are strictly positive
	Framing   string  // "faster" or "smaller"
}

// BuildReport derives per-metric ratios from a comparison. A ratio is
// computed only when both sides report a strictly positive value; a
// metric absent on both sides is omitted entirely.
func BuildReport(c Comparison) []Row {
	var rows []Row
	for _, m := range displayMetrics {
		orig := c.Original[m.Key]
		opt := c.Optimized[m.Key]
		if orig <= 0 && opt <= 0 {
			continue
		}

		row := Row{
			Name:      m.Name,
			Key:       m.Key,
			Original:  orig,
			Optimized: opt,
		}
		if orig > 0 && opt > 0 {
			row.Ratio = orig / opt
			// For size, smaller is better; the ratio stays
			// original/optimized either way.
			if m.Key == MetricCacheSize {
				row.Framing = "smaller"
			} else {
				row.Framing = "faster"
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// RenderReport writes the fixed-width comparison table.
func RenderReport(w io.Writer, rows []Row) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "PERFORMANCE COMPARISON RESULTS")
	fmt.Fprintln(w, strings.Repeat("=", 60))

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tORIGINAL\tOPTIMIZED\tSPEEDUP")
	for _, r := range rows {
		orig := "N/A"
		if r.Original > 0 {
			orig = fmt.Sprintf("%.3f", r.Original)
		}
		opt := "N/A"
		if r.Optimized > 0 {
			opt = fmt.Sprintf("%.3f", r.Optimized)
		}
		speedup := "N/A"
		if r.Ratio > 0 {
			speedup = fmt.Sprintf("%.2fx %s", r.Ratio, r.Framing)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, orig, opt, speedup)
	}
	tw.Flush()
}
