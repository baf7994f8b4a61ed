package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"balls/internal/scene"
)

const (
	fontSize   = 16
	padding    = 8
	lineHeight = fontSize + 4
	// updateInterval: only refresh the FPS/Mem/stats text every N frames to reduce allocations.
	updateInterval = 15
	// logLines is how many recent log lines the log overlay shows.
	logLines = 6
)

var logColor = rl.NewColor(200, 200, 200, 200)

// Debug draws optional overlays: FPS and heap (top-right), scene stats (top-left) and
// recent log lines (bottom-left). All overlays are off by default.
type Debug struct {
	ShowFPS   bool
	ShowStats bool
	ShowLog   bool

	frameCount uint32
	fpsText    string
	memText    string
	statsText  string
	memStats   runtime.MemStats
}

// New returns a Debug with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders the enabled overlays. Call last in the draw callback.
func (d *Debug) Draw(st scene.Stats, lines []string) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 || d.frameCount == 1

	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	if d.ShowFPS {
		if update {
			runtime.ReadMemStats(&d.memStats)
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		y := int32(padding)
		for _, text := range []string{d.fpsText, d.memText} {
			w := rl.MeasureText(text, fontSize)
			rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
			y += lineHeight
		}
	}

	if d.ShowStats {
		if update || d.statsText == "" {
			d.statsText = st.String()
		}
		rl.DrawText(d.statsText, padding, padding, fontSize, rl.Yellow)
	}

	if d.ShowLog && len(lines) > 0 {
		if len(lines) > logLines {
			lines = lines[len(lines)-logLines:]
		}
		y := screenH - padding - int32(len(lines))*lineHeight
		for _, line := range lines {
			rl.DrawText(line, padding, y, fontSize-4, logColor)
			y += lineHeight
		}
	}
}
