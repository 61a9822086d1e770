package breakout

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

const tickSecs = 1.0 / 64

// testArena spawns the default arena into a fresh world.
func testArena(t *testing.T) (*World, Params, *Entity, *Entity) {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	w := NewWorld()
	var owned Owned
	p := NewParams(cfg)
	ballID, paddleID := spawnArena(w, &owned, cfg, NewLayout(cfg), p)

	ball, _ := w.Get(ballID)
	paddle, _ := w.Get(paddleID)
	return w, p, ball, paddle
}

// keepOneBrick despawns every brick except the first and returns it.
func keepOneBrick(w *World) *Entity {
	bricks := w.ByKind(KindBrick)
	for _, b := range bricks[1:] {
		w.Despawn(b.ID)
	}
	return bricks[0]
}

func hold(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func eventKinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func sameKinds(a, b []EventKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewParams(t *testing.T) {
	p := NewParams(config.DefaultBreakoutConfig())

	if p.BallStart != core.V2(0, -50) || p.BallRadius != 15 {
		t.Errorf("ball start=%v radius=%v", p.BallStart, p.BallRadius)
	}
	if math.Abs(p.BallVelocity.Len()-400) > 1e-9 || p.BallVelocity.X <= 0 || p.BallVelocity.Y >= 0 {
		t.Errorf("BallVelocity = %v, expected 400 units/s down-right", p.BallVelocity)
	}
	if p.PaddleMinX != -375 || p.PaddleMaxX != 375 {
		t.Errorf("paddle bounds = [%v, %v], expected [-375, 375]", p.PaddleMinX, p.PaddleMaxX)
	}
	if p.Tick != 15625000 {
		t.Errorf("Tick = %v, expected 15.625ms", p.Tick)
	}
}

func TestReflectGuard(t *testing.T) {
	tests := []struct {
		side     core.Side
		in, want core.Vec2
	}{
		{core.SideLeft, core.V2(3, 1), core.V2(-3, 1)},
		{core.SideLeft, core.V2(-3, 1), core.V2(-3, 1)}, // already leaving
		{core.SideRight, core.V2(-3, 1), core.V2(3, 1)},
		{core.SideRight, core.V2(3, 1), core.V2(3, 1)},
		{core.SideTop, core.V2(1, -3), core.V2(1, 3)},
		{core.SideTop, core.V2(1, 3), core.V2(1, 3)},
		{core.SideBottom, core.V2(1, 3), core.V2(1, -3)},
		{core.SideBottom, core.V2(1, -3), core.V2(1, -3)},
	}

	for _, tc := range tests {
		if got := Reflect(tc.in, tc.side); got != tc.want {
			t.Errorf("Reflect(%v, %v) = %v, expected %v", tc.in, tc.side, got, tc.want)
		}
	}
}

func TestReflectNeverFlipsTwice(t *testing.T) {
	sides := []core.Side{core.SideLeft, core.SideRight, core.SideTop, core.SideBottom}
	rng := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 500; i++ {
		v := core.V2(rng.Float64()*800-400, rng.Float64()*800-400)
		for _, side := range sides {
			once := Reflect(v, side)
			if twice := Reflect(once, side); twice != once {
				t.Fatalf("Reflect(%v, %v) flipped again: %v -> %v", v, side, once, twice)
			}
		}
	}
}

func TestMovingAwayIsNotReflected(t *testing.T) {
	w, p, ball, paddle := testArena(t)
	paddle.Pos.X = -300
	s := &Session{Lives: 3}

	// Overlapping the top wall's bottom face while already heading down.
	ball.Pos = core.V2(0, 295-5)
	ball.Vel = core.V2(0, -400)
	keepOneBrick(w).Pos = core.V2(-300, 100)

	res := Simulate(w, s, p, core.NewInputFrame(), tickSecs)
	if len(res.Events) != 1 || res.Events[0].Collider != KindWall {
		t.Fatalf("events = %+v, expected one wall collision", res.Events)
	}
	if ball.Vel != core.V2(0, -400) {
		t.Errorf("velocity = %v, ball moving away must not be reflected", ball.Vel)
	}
}

func TestWallBounce(t *testing.T) {
	w, p, ball, _ := testArena(t)
	s := &Session{Lives: 3}

	// Heading into the right wall.
	ball.Pos = core.V2(445-15-2, 0)
	ball.Vel = core.V2(400, 100)

	res := Simulate(w, s, p, core.NewInputFrame(), tickSecs)
	if !sameKinds(eventKinds(res.Events), []EventKind{EventCollision}) {
		t.Fatalf("events = %v", eventKinds(res.Events))
	}
	if ball.Vel != core.V2(-400, 100) {
		t.Errorf("velocity = %v, expected (-400, 100)", ball.Vel)
	}
}

func TestPaddleBounce(t *testing.T) {
	w, p, ball, paddle := testArena(t)
	s := &Session{Lives: 3}

	ball.Pos = core.V2(paddle.Pos.X, paddle.Pos.Y+10+15+2)
	ball.Vel = core.V2(0, -400)

	res := Simulate(w, s, p, core.NewInputFrame(), tickSecs)
	if len(res.Events) != 1 || res.Events[0].Collider != KindPaddle {
		t.Fatalf("events = %+v, expected one paddle collision", res.Events)
	}
	if ball.Vel.Y != 400 {
		t.Errorf("vy = %v, expected 400", ball.Vel.Y)
	}
}

func TestBrickHit(t *testing.T) {
	w, p, ball, _ := testArena(t)
	s := &Session{Score: 4, Lives: 3}

	target := w.ByKind(KindBrick)[3]
	before := w.Count(KindBrick)
	ball.Pos = target.Pos.Sub(core.V2(0, 15+15-1))
	ball.Vel = core.V2(0, 400)

	res := Simulate(w, s, p, core.NewInputFrame(), tickSecs)
	if res.Outcome != OutcomeNone {
		t.Fatalf("Outcome = %v, expected none", res.Outcome)
	}
	if s.Score != 5 {
		t.Errorf("Score = %d, expected 5", s.Score)
	}
	if w.Count(KindBrick) != before-1 {
		t.Errorf("bricks = %d, expected %d", w.Count(KindBrick), before-1)
	}
	if _, ok := w.Get(target.ID); ok {
		t.Error("hit brick was not despawned")
	}
	if ball.Vel.Y != -400 {
		t.Errorf("vy = %v, expected -400 after hitting the brick's bottom", ball.Vel.Y)
	}
}

// Ball near the floor heading down with one life left: the life is spent,
// the ball is served again and the floor hit still reflects the serve.
func TestScenarioLoseLife(t *testing.T) {
	w, p, ball, paddle := testArena(t)
	paddle.Pos.X = -300
	s := &Session{Score: 2, Lives: 1}

	ball.Pos = core.V2(0, -280)
	ball.Vel = core.V2(0, -400)

	res := Simulate(w, s, p, core.NewInputFrame(), tickSecs)

	if res.Outcome != OutcomeNone {
		t.Fatalf("Outcome = %v, expected the game to continue", res.Outcome)
	}
	if s.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", s.Lives)
	}
	served := core.V2(p.BallVelocity.X, -p.BallVelocity.Y)
	if ball.Pos != p.BallStart || ball.Vel != served {
		t.Errorf("ball = %v / %v, expected serve %v / %v", ball.Pos, ball.Vel, p.BallStart, served)
	}
	if ball.Vel.Y <= 0 {
		t.Errorf("served ball heads down: %v", ball.Vel)
	}
	if !sameKinds(eventKinds(res.Events), []EventKind{EventCollision, EventLostLife}) {
		t.Errorf("events = %v", eventKinds(res.Events))
	}
	if res.Events[1].Lives != 0 || s.Score != 2 {
		t.Errorf("LostLife event = %+v, score = %d", res.Events[1], s.Score)
	}
}

// Same as above with no lives left: game over, ball stays where it is.
func TestScenarioGameOver(t *testing.T) {
	w, p, ball, paddle := testArena(t)
	paddle.Pos.X = -300
	s := &Session{Lives: 0}

	ball.Pos = core.V2(0, -280)
	ball.Vel = core.V2(0, -400)

	res := Simulate(w, s, p, core.NewInputFrame(), tickSecs)

	if res.Outcome != OutcomeGameOver {
		t.Fatalf("Outcome = %v, expected game over", res.Outcome)
	}
	if s.Lives != 0 {
		t.Errorf("Lives = %d, must never go negative", s.Lives)
	}
	if ball.Pos != core.V2(0, -280-400*tickSecs) {
		t.Errorf("ball was moved to %v, expected no reset", ball.Pos)
	}
	if !sameKinds(eventKinds(res.Events), []EventKind{EventCollision, EventGameOver}) {
		t.Errorf("events = %v", eventKinds(res.Events))
	}
}

// Destroying the only brick left wins in the same tick.
func TestScenarioLastBrickWins(t *testing.T) {
	w, p, ball, _ := testArena(t)
	s := &Session{Score: 55, Lives: 3}

	last := keepOneBrick(w)
	ball.Pos = last.Pos.Sub(core.V2(0, 15+15-1))
	ball.Vel = core.V2(0, 400)

	res := Simulate(w, s, p, core.NewInputFrame(), tickSecs)

	if res.Outcome != OutcomeWin {
		t.Fatalf("Outcome = %v, expected win", res.Outcome)
	}
	if s.Score != 56 {
		t.Errorf("Score = %d, expected 56", s.Score)
	}
	if w.Count(KindBrick) != 0 {
		t.Errorf("bricks left = %d", w.Count(KindBrick))
	}
}

// The last brick and the deadly wall are touched in the same tick with no
// lives left. Bricks are resolved before walls, so the brick clear wins.
func TestLastBrickBeatsDeadlyWallSameTick(t *testing.T) {
	w, p, ball, paddle := testArena(t)
	paddle.Pos.X = -300
	s := &Session{Lives: 0}

	last := keepOneBrick(w)
	last.Pos = core.V2(200, -280)
	ball.Pos = core.V2(200, -282)
	ball.Vel = core.V2(0, -400)

	res := Simulate(w, s, p, core.NewInputFrame(), tickSecs)

	if res.Outcome != OutcomeWin {
		t.Fatalf("Outcome = %v, expected win to take precedence", res.Outcome)
	}
	if s.Score != 1 {
		t.Errorf("Score = %d, expected 1", s.Score)
	}
	for _, ev := range res.Events {
		if ev.Kind == EventGameOver {
			t.Error("GameOver must not be emitted once the board is cleared")
		}
	}
}

// Holding left for one second at 500 units/s from x=0 would reach -500;
// the paddle stops at the left bound instead.
func TestScenarioPaddleClamp(t *testing.T) {
	w, p, ball, paddle := testArena(t)
	s := &Session{Lives: 3}
	ball.Vel = core.Vec2{}

	Simulate(w, s, p, hold(core.ActionLeft), 0.25)
	if paddle.Pos.X != -125 {
		t.Fatalf("after 0.25s paddle x = %v, expected -125", paddle.Pos.X)
	}

	paddle.Pos.X = 0
	Simulate(w, s, p, hold(core.ActionLeft), 1)
	// -450 + 10/2 + 120/2 + 10
	if paddle.Pos.X != -375 {
		t.Errorf("paddle x = %v, expected -375", paddle.Pos.X)
	}

	paddle.Pos.X = 0
	Simulate(w, s, p, hold(core.ActionRight), 1)
	if paddle.Pos.X != 375 {
		t.Errorf("paddle x = %v, expected 375", paddle.Pos.X)
	}

	Simulate(w, s, p, hold(core.ActionLeft, core.ActionRight), 1)
	if paddle.Pos.X != 375 {
		t.Errorf("opposite keys should cancel, paddle x = %v", paddle.Pos.X)
	}
}

func TestJustPressedDoesNotMovePaddle(t *testing.T) {
	w, p, ball, paddle := testArena(t)
	ball.Vel = core.Vec2{}

	in := core.InputFrame{Actions: map[core.Action]bool{core.ActionLeft: true}}
	Simulate(w, &Session{Lives: 3}, p, in, 0.5)
	if paddle.Pos.X != 0 {
		t.Errorf("paddle moved to %v without the key being held", paddle.Pos.X)
	}
}

// Random play never decreases the score or drives lives negative.
func TestScoreAndLivesInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		w, p, _, _ := testArena(t)
		s := &Session{Lives: 3}
		rng := rand.New(rand.NewPCG(seed, seed*31))

		var in core.InputFrame
		for tick := 0; tick < 64*120; tick++ {
			if tick%16 == 0 {
				switch rng.IntN(3) {
				case 0:
					in = hold(core.ActionLeft)
				case 1:
					in = hold(core.ActionRight)
				default:
					in = core.NewInputFrame()
				}
			}

			prevScore, prevLives := s.Score, s.Lives
			res := Simulate(w, s, p, in, tickSecs)

			if s.Score < prevScore {
				t.Fatalf("seed %d tick %d: score went down %d -> %d", seed, tick, prevScore, s.Score)
			}
			if s.Lives < 0 || s.Lives > prevLives {
				t.Fatalf("seed %d tick %d: lives %d -> %d", seed, tick, prevLives, s.Lives)
			}
			if res.Outcome == OutcomeGameOver && prevLives != 0 {
				t.Fatalf("seed %d: game over with %d lives left", seed, prevLives)
			}
			if res.Outcome != OutcomeNone {
				break
			}
		}
	}
}
