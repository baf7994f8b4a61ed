package graphics

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"balls/internal/clock"
	"balls/internal/event"
	"balls/internal/input"
	"balls/internal/render"
	"balls/internal/vec"
)

// Window describes the window and the physics tick cadence.
type Window struct {
	Width     int
	Height    int
	Title     string
	TargetFPS int
	Tick      time.Duration
}

// Run opens the window and runs the main loop until handle reports quit. Each frame it
// turns pointer changes into events, then emits the ticks that fell due, then clears the
// target and calls draw. Closing the window sends event.Quit. unload, if set, runs while
// the GL context still exists so GPU resources can be freed.
func Run(w Window, handle func(event.Event) (quit bool), draw func(render.Target), unload func()) {
	rl.SetConfigFlags(rl.FlagVsyncHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()
	if unload != nil {
		defer unload()
	}
	rl.SetTargetFPS(int32(w.TargetFPS))

	target := render.Target{Width: int32(w.Width), Height: int32(w.Height), Background: rl.Black}
	ticker := clock.NewTicker(w.Tick)
	ticker.Start(now())
	defer ticker.Stop()

	prev := poll()
	for {
		if rl.WindowShouldClose() {
			handle(event.Quit{})
			return
		}
		cur := poll()
		for _, ev := range input.Diff(prev, cur) {
			if handle(ev) {
				return
			}
		}
		prev = cur

		n := ticker.Due(now())
		first := ticker.Seq() - uint64(n)
		for i := 1; i <= n; i++ {
			if handle(event.Tick{Seq: first + uint64(i)}) {
				return
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(target.Background)
		draw(target)
		rl.EndDrawing()
	}
}

func now() time.Duration {
	return time.Duration(rl.GetTime() * float64(time.Second))
}

func poll() input.State {
	p := rl.GetMousePosition()
	return input.State{
		Pos: vec.New(float64(p.X), float64(p.Y)),
		Down: [3]bool{
			rl.IsMouseButtonDown(rl.MouseButtonLeft),
			rl.IsMouseButtonDown(rl.MouseButtonMiddle),
			rl.IsMouseButtonDown(rl.MouseButtonRight),
		},
	}
}
