package scene

import (
	"fmt"

	"github.com/jinzhu/copier"

	"balls/internal/drag"
	"balls/internal/event"
	"balls/internal/logger"
	"balls/internal/physics"
	"balls/internal/sprite"
	"balls/internal/vec"
)

// Options configures a Scene.
type Options struct {
	Surface physics.Size
	Gravity float64
	Spin    bool           // rotate sprites by one degree per tick
	Log     *logger.Logger // nil logs nothing
}

// Spawn describes one ball at setup.
type Spawn struct {
	Position vec.Vec2
	Velocity vec.Vec2
	Sprite   *sprite.Sprite
	Dir      int // spin direction, +1 counterclockwise or -1 clockwise
}

// look is the per-body sprite state; indexed like bodies.
type look struct {
	sprite *sprite.Sprite
	turn   int // 0..360, advanced once per tick while spinning
	dir    int
	frame  *sprite.Frame
}

// Scene owns the balls and steps them: pointer events go to the drag controller, ticks
// advance, spin, clamp and collide every body. Bodies are stored in an arena indexed by ID.
type Scene struct {
	opts     Options
	bodies   []*physics.Body
	looks    []look
	contacts *physics.ContactTracker
	drag     *drag.Controller
	log      *logger.Logger
	ticks    uint64
	bounces  int
}

// New builds a scene with one body per spawn, in order. The body ID is the spawn index.
func New(opts Options, spawns []Spawn) *Scene {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	s := &Scene{
		opts:     opts,
		bodies:   make([]*physics.Body, 0, len(spawns)),
		looks:    make([]look, 0, len(spawns)),
		contacts: physics.NewContactTracker(),
		drag:     drag.New(),
		log:      log,
	}
	for i, sp := range spawns {
		if sp.Sprite == nil {
			panic(fmt.Sprintf("scene: spawn %d has no sprite", i))
		}
		dir := sp.Dir
		if dir == 0 {
			dir = 1
		}
		f := sp.Sprite.Frame(0)
		b := physics.NewBody(physics.ID(i), sp.Position, sp.Velocity, float64(f.Width), float64(f.Height))
		s.bodies = append(s.bodies, b)
		s.looks = append(s.looks, look{sprite: sp.Sprite, dir: dir, frame: f})
	}
	return s
}

// Handle dispatches one event and reports whether the loop should stop.
func (s *Scene) Handle(ev event.Event) (quit bool) {
	held, _ := s.drag.Held()
	consumed := s.drag.Handle(ev, s.bodies)
	switch e := ev.(type) {
	case event.Tick:
		s.Step()
	case event.ButtonDown:
		if consumed {
			id, _ := s.drag.Held()
			s.log.Info("ball picked up", "ball", int(id), "x", e.Pos.X, "y", e.Pos.Y)
		}
	case event.ButtonUp:
		if consumed {
			v := s.bodies[held].Velocity
			s.log.Info("ball released", "ball", int(held), "vx", v.X, "vy", v.Y)
		}
	case event.Motion:
	case event.Quit:
		return true
	default:
		panic(fmt.Sprintf("scene: unhandled event %T", ev))
	}
	return false
}

// Step runs one physics tick: advance every body, spin the sprites, keep every body inside
// the surface, then bounce pairs whose masks start touching.
func (s *Scene) Step() {
	s.ticks++
	for _, b := range s.bodies {
		b.Advance(s.opts.Gravity)
	}
	if s.opts.Spin {
		for i := range s.looks {
			s.spin(i)
		}
	}
	for _, b := range s.bodies {
		b.ClampTo(s.opts.Surface)
	}
	if n := s.contacts.Step(s.bodies, s); n > 0 {
		s.bounces += n
		s.log.Debug("bounce", "tick", s.ticks, "pairs", n)
	}
}

func (s *Scene) spin(i int) {
	l := &s.looks[i]
	l.turn++
	if l.turn > 360 {
		l.turn = 1
	}
	l.frame = l.sprite.Frame(l.dir * l.turn)
	s.bodies[i].SetSize(float64(l.frame.Width), float64(l.frame.Height))
}

// Overlap tests the current sprite masks of a and b, aligned on their rects' top-left pixels.
func (s *Scene) Overlap(a, b *physics.Body) bool {
	ax, ay := a.TopLeft()
	bx, by := b.TopLeft()
	return s.looks[a.ID].frame.Mask.Overlap(s.looks[b.ID].frame.Mask, bx-ax, by-ay)
}

// Bodies returns the arena. Callers must not reorder it.
func (s *Scene) Bodies() []*physics.Body {
	return s.bodies
}

// Surface returns the bounds bodies are kept inside.
func (s *Scene) Surface() physics.Size {
	return s.opts.Surface
}

// Frame returns the sprite frame currently shown for body id.
func (s *Scene) Frame(id physics.ID) *sprite.Frame {
	return s.looks[id].frame
}

// BodyState is a copy of one body's state for drawing.
type BodyState struct {
	ID         physics.ID
	Position   vec.Vec2
	Velocity   vec.Vec2
	HalfExtent vec.Vec2
	Active     bool
	Frame      *sprite.Frame
}

// Snapshot copies the current body states in arena order.
func (s *Scene) Snapshot() []BodyState {
	out := make([]BodyState, len(s.bodies))
	for i, b := range s.bodies {
		if err := copier.Copy(&out[i], b); err != nil {
			panic(fmt.Sprintf("scene: snapshot body %d: %v", b.ID, err))
		}
		out[i].Frame = s.looks[i].frame
	}
	return out
}

// Stats summarizes the run so far.
type Stats struct {
	Balls    int
	Ticks    uint64
	Bounces  int
	Contacts int
	Dragging bool
	Held     physics.ID
}

// Stats returns tick and bounce counters and the drag state.
func (s *Scene) Stats() Stats {
	id, held := s.drag.Held()
	return Stats{
		Balls:    len(s.bodies),
		Ticks:    s.ticks,
		Bounces:  s.bounces,
		Contacts: s.contacts.Len(),
		Dragging: held,
		Held:     id,
	}
}

func (st Stats) String() string {
	held := "-"
	if st.Dragging {
		held = fmt.Sprintf("#%d", st.Held)
	}
	return fmt.Sprintf("balls %d  ticks %d  bounces %d  contacts %d  held %s",
		st.Balls, st.Ticks, st.Bounces, st.Contacts, held)
}
