package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/tilechase/status"
)

// gameStats caches registry pointers so the hot paths write atomics directly
type gameStats struct {
	score      []*atomic.Int64
	misses     *atomic.Int64
	live       *atomic.Int64
	moves      *atomic.Int64
	shuffles   *atomic.Int64
	eaten      *atomic.Int64
	stolen     *atomic.Int64
	catches    *atomic.Int64
	corrupted  *atomic.Int64
	restarts   *atomic.Int64
	paused     *atomic.Int64
	over       *atomic.Int64
	heat       *status.AtomicFloat
	progress   *status.AtomicFloat
	baseSpeed  *status.AtomicFloat
	agentSpeed [NumRoles]*status.AtomicFloat
	agentMoves [NumRoles]*atomic.Int64
	language   *status.AtomicString
}

func newGameStats(reg *status.Registry, players int) *gameStats {
	s := &gameStats{
		misses:    reg.Ints.Get("game.misses"),
		live:      reg.Ints.Get("game.live"),
		moves:     reg.Ints.Get("game.moves"),
		shuffles:  reg.Ints.Get("game.shuffles"),
		eaten:     reg.Ints.Get("game.targets.eaten"),
		stolen:    reg.Ints.Get("game.targets.stolen"),
		catches:   reg.Ints.Get("game.runner.catches"),
		corrupted: reg.Ints.Get("game.corrupted"),
		restarts:  reg.Ints.Get("game.restarts"),
		paused:    reg.Ints.Get("game.paused"),
		over:      reg.Ints.Get("game.over"),
		heat:      reg.Floats.Get("game.heat"),
		progress:  reg.Floats.Get("game.progress"),
		baseSpeed: reg.Floats.Get("game.speed"),
		language:  reg.Strings.Get("game.language"),
	}
	for i := 0; i < players; i++ {
		s.score = append(s.score, reg.Ints.Get(fmt.Sprintf("player.%d.score", i+1)))
	}
	for r := Role(0); r < NumRoles; r++ {
		s.agentSpeed[r] = reg.Floats.Get("agent." + r.String() + ".speed")
		s.agentMoves[r] = reg.Ints.Get("agent." + r.String() + ".moves")
	}
	return s
}

// publish writes the whole per-game state after a restart
func (g *Game) publish() {
	s := g.stats
	for i, p := range g.players {
		s.score[i].Store(int64(p.Score))
	}
	s.misses.Store(int64(g.misses))
	s.live.Store(int64(len(g.live)))
	s.eaten.Store(0)
	s.stolen.Store(0)
	s.catches.Store(0)
	s.corrupted.Store(0)
	s.moves.Store(0)
	s.paused.Store(0)
	s.over.Store(0)
	s.heat.Set(g.heat)
	s.language.Store(g.lang.Name())
	for r := Role(0); r < NumRoles; r++ {
		s.agentMoves[r].Store(0)
		s.agentSpeed[r].Set(0)
	}
}
