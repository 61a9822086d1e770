package breakout

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a flat summary of the game for determinism checks and logs.
type Snapshot struct {
	Ticks           uint64
	App             AppKind
	Phase           Phase
	Score           int
	Lives           int
	BallX, BallY    float64
	BallVX, BallVY  float64
	PaddleX         float64
	BricksRemaining int
	Entities        int
}

// Snapshot returns the current game state as a Snapshot.
// Ball and paddle fields are zero outside the game screen.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Ticks: g.ticks,
		App:   g.App(),
		Phase: g.Phase(),
		Score: g.session.Score,
		Lives: g.session.Lives,
	}
	if g.world == nil {
		return snap
	}

	snap.Entities = g.world.Len()
	snap.BricksRemaining = g.world.Count(KindBrick)

	if s, ok := g.state.(*GameScreen); ok {
		if ball, ok := g.world.Get(s.ball); ok {
			snap.BallX, snap.BallY = ball.Pos.X, ball.Pos.Y
			snap.BallVX, snap.BallVY = ball.Vel.X, ball.Vel.Y
		}
		if paddle, ok := g.world.Get(s.paddle); ok {
			snap.PaddleX = paddle.Pos.X
		}
	}
	return snap
}

// Hash returns an FNV-1a hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:]) //nolint:errcheck // hash.Hash never returns an error
	}

	put(snap.Ticks)
	put(uint64(snap.App))   //#nosec G115 -- hash computation
	put(uint64(snap.Phase)) //#nosec G115 -- hash computation
	put(uint64(snap.Score)) //#nosec G115 -- hash computation
	put(uint64(snap.Lives)) //#nosec G115 -- hash computation
	put(math.Float64bits(snap.BallX))
	put(math.Float64bits(snap.BallY))
	put(math.Float64bits(snap.BallVX))
	put(math.Float64bits(snap.BallVY))
	put(math.Float64bits(snap.PaddleX))
	put(uint64(snap.BricksRemaining)) //#nosec G115 -- hash computation
	put(uint64(snap.Entities))        //#nosec G115 -- hash computation

	return h.Sum64()
}
