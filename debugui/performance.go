package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cckdebug/overlay"
)

// Stats is implemented by *overlay.Loop.
type Stats interface {
	Stats() overlay.LoopStats
}

// PerformanceStats shows frame times of the loop, per-system durations and
// the field cache hit rate.
type PerformanceStats struct {
	loop  Stats
	cache *overlay.FieldCache

	historyFrames int
	frameHistory  []float32
	frameIndex    int
	lastTime      float64
}

func NewPerformanceStats(loop Stats, cache *overlay.FieldCache, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		loop:          loop,
		cache:         cache,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (ps *PerformanceStats) Render() {
	stats := ps.loop.Stats()
	ps.frameHistory[ps.frameIndex] = float32(stats.Time-ps.lastTime) * 1000
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	ps.lastTime = stats.Time

	imgui.SetNextWindowPosV(imgui.NewVec2(440, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 300), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if ps.cache != nil {
		cache := ps.cache.Stats()
		imgui.Text(fmt.Sprintf("Cached Fields: %d (+%d formatted)", cache.Fields, cache.ParamFields))
		if total := cache.Redraws + cache.Skips; total > 0 {
			ratio := float32(cache.Skips) / float32(total)
			imgui.ProgressBarV(ratio, imgui.NewVec2(-1, 0), fmt.Sprintf("%.1f%% skipped", ratio*100))
		}
	}

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, s := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(s.Name)
				imgui.TableNextColumn()
				imgui.Text(s.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
