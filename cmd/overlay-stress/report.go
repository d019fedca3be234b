package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/cckdebug/overlay"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Players    int
	Spawnables int
	Rate       float64
	Seed       uint64

	// Results
	TotalUpdates    int64
	TotalTime       time.Duration
	UpdateTime      Stats
	Cache           overlay.CacheStats
	PageSwitches    int
	SubPageSwitches int
	ToggleFlips     int
	Systems         []overlay.SystemStats
	GCPauseMetrics  bool
	MemStatsStart   runtime.MemStats
	MemStatsEnd     runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// SkipRatio is the share of field writes the cache suppressed.
func (r *Report) SkipRatio() float64 {
	total := r.Cache.Redraws + r.Cache.Skips
	if total == 0 {
		return 0
	}
	return float64(r.Cache.Skips) / float64(total)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Overlay Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Players:** {{.Players}}
- **Spawnables:** {{.Spawnables}}
- **Change Rate:** {{printf "%.2f" .Rate}}
- **Seed:** {{.Seed}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{range .Systems}}
- **{{.Name}}:** avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{- end}}

## Field Cache
- **Cached Fields:** {{.Cache.Fields}} (+{{.Cache.ParamFields}} formatted)
- **Redraws:** {{.Cache.Redraws}}
- **Skips:** {{.Cache.Skips}} ({{pct .SkipRatio}})

## Interaction
- **Page Switches:** {{.PageSwitches}}
- **Sub-page Switches:** {{.SubPageSwitches}}
- **Toggle Flips:** {{.ToggleFlips}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v*100)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
