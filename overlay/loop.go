package overlay

import (
	"context"
	"reflect"
	"time"
)

// System is advanced once per frame by a Loop.
type System interface {
	Execute(frame *Frame)
}

// LoopStats provides statistics about loop execution.
type LoopStats struct {
	Frames  int64
	Time    float64
	Systems []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
}

type systemTiming struct {
	name  string
	count int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

// Loop runs systems in registration order, one frame at a time, and flushes
// the shared Commands buffer at the end of every frame.
type Loop struct {
	commands *Commands
	systems  []System
	timings  []*systemTiming
	frames   int64
	time     float64
}

// NewLoop creates a loop flushing commands after each frame.
func NewLoop(commands *Commands) *Loop {
	return &Loop{commands: commands}
}

// Commands returns the buffer flushed at the end of each frame.
func (l *Loop) Commands() *Commands {
	return l.commands
}

// Register appends a system.
func (l *Loop) Register(system System) {
	l.systems = append(l.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	l.timings = append(l.timings, &systemTiming{
		name: systemType.Name(),
		min:  time.Duration(1<<63 - 1),
	})
}

// Once advances all systems by one frame of dt seconds.
func (l *Loop) Once(dt float64) {
	l.frames++
	l.time += dt
	frame := &Frame{
		Number:    l.frames,
		DeltaTime: dt,
		Time:      l.time,
		Commands:  l.commands,
	}

	for i, system := range l.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		timing := l.timings[i]
		timing.count++
		timing.last = duration
		timing.total += duration
		timing.min = min(timing.min, duration)
		timing.max = max(timing.max, duration)
	}

	l.commands.Flush()
}

// Run advances the loop at the given interval until ctx is cancelled.
func (l *Loop) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			l.Once(dt)
		}
	}
}

// Stats returns per-system execution statistics.
func (l *Loop) Stats() LoopStats {
	stats := LoopStats{
		Frames:  l.frames,
		Time:    l.time,
		Systems: make([]SystemStats, len(l.timings)),
	}
	for i, timing := range l.timings {
		var avg time.Duration
		if timing.count > 0 {
			avg = timing.total / time.Duration(timing.count)
		}
		minDuration := timing.min
		if timing.count == 0 {
			minDuration = 0
		}
		stats.Systems[i] = SystemStats{
			Name:           timing.name,
			ExecutionCount: timing.count,
			MinDuration:    minDuration,
			MaxDuration:    timing.max,
			AvgDuration:    avg,
			LastDuration:   timing.last,
		}
	}
	return stats
}
