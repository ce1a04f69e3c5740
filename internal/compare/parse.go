package compare

import (
	"bufio"
	"log/slog"
	"strconv"
	"strings"
)

// ExtractTimings scans program output line-by-line for the recognized
// timing markers and returns whatever metrics it could parse. A line
// that matches a marker but carries no parseable number is skipped with
// a warning; one malformed metric never fails the run.
func ExtractTimings(output string) Metrics {
	timings := Metrics{}
	scanner := bufio.NewScanner(strings.NewReader(output))

	for scanner.Scan() {
		line := scanner.Text()
		lower := strings.ToLower(line)

		for _, m := range timingMarkers {
			if !strings.Contains(lower, m.Marker) {
				continue
			}
			val, ok := parseTimingValue(line)
			if !ok {
				slog.Warn("skipping malformed timing line", "metric", m.Key, "line", strings.TrimSpace(line))
				break
			}
			timings[m.Key] = val
			break
		}
	}

	return timings
}

// parseTimingValue extracts the number from a marker line of the form
// "<label text>: <number> <units...>": the token immediately after the
// last colon and before the first whitespace.
func parseTimingValue(line string) (float64, bool) {
	idx := strings.LastIndex(line, ":")
	if idx < 0 || idx == len(line)-1 {
		return 0, false
	}
	fields := strings.Fields(line[idx+1:])
	if len(fields) == 0 {
		return 0, false
	}
	val, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	return val, true
}
