package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/cckdebug/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:     time.Second,
		Players:      4,
		TotalUpdates: 60,
		Cache:        overlay.CacheStats{Fields: 10, Redraws: 25, Skips: 75},
		Systems:      []overlay.SystemStats{{Name: "Menu", ExecutionCount: 60}},
	}
	assert.InDelta(t, 0.75, r.SkipRatio(), 1e-9)

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Players:** 4")
	assert.Contains(t, out, "**Skips:** 75 (75.0%)")
	assert.Contains(t, out, "**Menu:**")
	assert.NotContains(t, out, "GC Pause")
}
