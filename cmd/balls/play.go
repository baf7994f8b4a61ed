package main

import (
	"fmt"
	"image/color"
	"io"
	"math/rand"
	"time"

	"balls/internal/config"
	"balls/internal/debug"
	"balls/internal/event"
	"balls/internal/graphics"
	"balls/internal/logger"
	"balls/internal/physics"
	"balls/internal/render"
	"balls/internal/scene"
	"balls/internal/sprite"
)

var ballColor = color.NRGBA{R: 230, G: 60, B: 50, A: 255}

// newScene loads the ball sprite (or draws one) and scatters cfg.Balls.Count balls.
func newScene(cfg config.Config, log *logger.Logger) *scene.Scene {
	spr := loadSprite(cfg.Balls, log)
	seed := cfg.Balls.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	surface := physics.Size{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}
	spawns := scene.RandomSpawns(cfg.Balls.Count, surface, cfg.Balls.MinSpeed, cfg.Balls.MaxSpeed, spr, rand.New(rand.NewSource(seed)))
	log.Info("scene ready", "balls", len(spawns), "seed", seed, "sprite", spr.Name)
	return scene.New(scene.Options{
		Surface: surface,
		Gravity: cfg.Physics.Gravity,
		Spin:    cfg.Balls.Spin,
		Log:     log,
	}, spawns)
}

func loadSprite(b config.Balls, log *logger.Logger) *sprite.Sprite {
	if b.Sprite != "" {
		spr, err := sprite.Load(b.Sprite, b.Diameter)
		if err == nil {
			return spr
		}
		log.Warn("falling back to a drawn ball", "error", err)
	}
	return sprite.Procedural(b.Diameter, ballColor)
}

func play(cfg config.Config, log *logger.Logger) error {
	scn := newScene(cfg, log)
	rend := render.New()
	dbg := debug.New()
	dbg.ShowFPS = cfg.Debug.ShowFPS
	dbg.ShowStats = cfg.Debug.ShowStats
	dbg.ShowLog = cfg.Debug.ShowLog

	draw := func(t render.Target) {
		rend.Draw(t, scn.Snapshot())
		dbg.Draw(scn.Stats(), log.Lines())
	}
	graphics.Run(graphics.Window{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		TargetFPS: cfg.Window.TargetFPS,
		Tick:      cfg.Physics.Tick,
	}, scn.Handle, draw, rend.Unload)

	st := scn.Stats()
	log.Info("bye", "ticks", st.Ticks, "bounces", st.Bounces)
	return nil
}

// simulate steps a scene without a window and fails if a ball ever leaves the surface.
func simulate(cfg config.Config, log *logger.Logger, ticks int, out io.Writer) error {
	scn := newScene(cfg, log)
	surface := scn.Surface()
	for i := 1; i <= ticks; i++ {
		scn.Handle(event.Tick{Seq: uint64(i)})
		for _, b := range scn.Bodies() {
			if !inside(b, surface) {
				return fmt.Errorf("tick %d: ball %d left the surface at (%.2f, %.2f)", i, b.ID, b.Position.X, b.Position.Y)
			}
		}
	}
	scn.Handle(event.Quit{})
	fmt.Fprintln(out, scn.Stats())
	return nil
}

// inside allows for bodies larger than the surface, which Clamp pins to the trailing edge.
func inside(b *physics.Body, s physics.Size) bool {
	const eps = 1e-9
	okX := b.Position.X >= min(b.HalfExtent.X, s.Width-b.HalfExtent.X)-eps && b.Position.X <= s.Width-b.HalfExtent.X+eps
	okY := b.Position.Y >= min(b.HalfExtent.Y, s.Height-b.HalfExtent.Y)-eps && b.Position.Y <= s.Height-b.HalfExtent.Y+eps
	return okX && okY
}
