package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfcmp/internal/compare"
	"perfcmp/internal/history"
)

type fixedHistoryStore struct {
	entries []history.Entry
	limit   int
}

func (s *fixedHistoryStore) Close() error                      { return nil }
func (s *fixedHistoryStore) Append(c compare.Comparison) error { return nil }
func (s *fixedHistoryStore) Recent(limit int) ([]history.Entry, error) {
	s.limit = limit
	if limit < len(s.entries) {
		return s.entries[:limit], nil
	}
	return s.entries, nil
}

func TestHistoryCmd_ListsRuns(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	store := &fixedHistoryStore{
		entries: []history.Entry{
			{
				ID:        2,
				CreatedAt: time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
				Results: compare.Comparison{
					Original:  compare.Metrics{compare.MetricTotalExecution: 60},
					Optimized: compare.Metrics{compare.MetricTotalExecution: 30},
				},
			},
			{
				ID:        1,
				CreatedAt: time.Date(2026, 8, 19, 9, 0, 0, 0, time.UTC),
				Results: compare.Comparison{
					Original:  compare.Metrics{},
					Optimized: compare.Metrics{compare.MetricTotalExecution: 28},
				},
			},
		},
	}

	orig := newHistoryStore
	newHistoryStore = func(path string) (history.Store, error) { return store, nil }
	t.Cleanup(func() { newHistoryStore = orig })

	cmd := newHistoryCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "2026-08-20 10:30:00")
	assert.Contains(t, out, "2.00x")
	assert.Contains(t, out, "N/A", "one-sided runs show N/A")
	assert.Equal(t, 10, store.limit, "default limit is 10")
}

func TestHistoryCmd_Empty(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	orig := newHistoryStore
	newHistoryStore = func(path string) (history.Store, error) { return &fixedHistoryStore{}, nil }
	t.Cleanup(func() { newHistoryStore = orig })

	cmd := newHistoryCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "No recorded runs.")
}

func TestHistoryCmd_Limit(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	store := &fixedHistoryStore{}
	orig := newHistoryStore
	newHistoryStore = func(path string) (history.Store, error) { return store, nil }
	t.Cleanup(func() { newHistoryStore = orig })

	cmd := newHistoryCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"--limit", "3"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 3, store.limit)
}
