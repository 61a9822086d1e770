package breakout

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// maxCatchUpTicks bounds how many fixed ticks a single frame may run.
const maxCatchUpTicks = 8

// Params holds the physics constants of a session, derived from config.
type Params struct {
	BallStart    core.Vec2
	BallVelocity core.Vec2
	BallRadius   float64

	PaddleSpeed float64
	PaddleMinX  float64
	PaddleMaxX  float64

	Tick time.Duration
}

// NewParams derives simulation parameters from a configuration.
func NewParams(cfg config.BreakoutConfig) Params {
	dir := core.V2(cfg.Ball.DirectionX, cfg.Ball.DirectionY).Normalize()
	inset := cfg.Arena.WallThickness/2 + cfg.Paddle.Width/2 + cfg.Paddle.Padding

	return Params{
		BallStart:    core.V2(cfg.Ball.StartX, cfg.Ball.StartY),
		BallVelocity: dir.Scale(cfg.Ball.Speed),
		BallRadius:   cfg.Ball.Diameter / 2,
		PaddleSpeed:  cfg.Paddle.Speed,
		PaddleMinX:   cfg.Arena.Left + inset,
		PaddleMaxX:   cfg.Arena.Right - inset,
		Tick:         time.Second / time.Duration(cfg.Gameplay.TickHz),
	}
}

// Session is the score and lives bookkeeping of one game.
type Session struct {
	Score int
	Lives int
}

// Simulate runs one fixed tick of dt seconds: integrate velocities, move the
// paddle, then resolve collisions. Notifications are returned, not dispatched.
func Simulate(w *World, s *Session, p Params, in core.InputFrame, dt float64) TickResult {
	applyVelocity(w, dt)
	movePaddle(w, p, in, dt)
	return checkCollisions(w, s, p)
}

func applyVelocity(w *World, dt float64) {
	w.Each(func(e *Entity) {
		if e.HasVelocity {
			e.Pos = e.Pos.Add(e.Vel.Scale(dt))
		}
	})
}

func movePaddle(w *World, p Params, in core.InputFrame, dt float64) {
	paddle := w.Single(KindPaddle)

	direction := 0.0
	if in.IsHeld(core.ActionLeft) {
		direction--
	}
	if in.IsHeld(core.ActionRight) {
		direction++
	}

	x := paddle.Pos.X + direction*p.PaddleSpeed*dt
	paddle.Pos.X = core.ClampF(x, p.PaddleMinX, p.PaddleMaxX)
}

// colliders returns every static collider in resolution order:
// bricks in spawn order, then the paddle, then walls left, right, bottom, top.
func colliders(w *World) []*Entity {
	var out []*Entity
	for _, kind := range []Kind{KindBrick, KindPaddle} {
		for _, e := range w.ByKind(kind) {
			if e.Collider {
				out = append(out, e)
			}
		}
	}

	var walls []*Entity
	for _, e := range w.ByKind(KindWall) {
		if e.Collider {
			walls = append(walls, e)
		}
	}
	sort.SliceStable(walls, func(i, j int) bool { return walls[i].Wall < walls[j].Wall })
	return append(out, walls...)
}

func checkCollisions(w *World, s *Session, p Params) TickResult {
	var res TickResult
	ball := w.Single(KindBall)

	for _, c := range colliders(w) {
		side, ok := core.ClassifyCollision(ball.Circle(), c.Box())
		if !ok {
			continue
		}

		res.Events = append(res.Events, Event{Kind: EventCollision, Collider: c.Kind, Lives: s.Lives, Score: s.Score})

		if c.Kind == KindBrick {
			w.Despawn(c.ID)
			s.Score++
			if w.Count(KindBrick) == 0 {
				res.Outcome = OutcomeWin
				return res
			}
		}

		if c.Deadly {
			if s.Lives == 0 {
				res.Events = append(res.Events, Event{Kind: EventGameOver, Score: s.Score})
				res.Outcome = OutcomeGameOver
				return res
			}

			ball.Pos = p.BallStart
			ball.Vel = p.BallVelocity
			s.Lives--
			res.Events = append(res.Events, Event{Kind: EventLostLife, Lives: s.Lives, Score: s.Score})
		}

		// The side was taken before a reset, so a served ball heading down
		// leaves the floor hit going up.
		ball.Vel = Reflect(ball.Vel, side)
	}

	return res
}

// Reflect flips the velocity component facing the hit side, but only while
// the ball is still moving into the collider.
func Reflect(v core.Vec2, side core.Side) core.Vec2 {
	switch side {
	case core.SideLeft:
		if v.X > 0 {
			v.X = -v.X
		}
	case core.SideRight:
		if v.X < 0 {
			v.X = -v.X
		}
	case core.SideTop:
		if v.Y < 0 {
			v.Y = -v.Y
		}
	case core.SideBottom:
		if v.Y > 0 {
			v.Y = -v.Y
		}
	}
	return v
}
