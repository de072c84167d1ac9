package snake

import (
	"errors"
	"sync"
	"testing"

	"github.com/vovakirdan/purple-snake/internal/config"
	"github.com/vovakirdan/purple-snake/internal/core"
	"github.com/vovakirdan/purple-snake/internal/storage"
)

// memStore is an in-memory HighScoreStore that records writes.
type memStore struct {
	high   int
	writes []int
	err    error
}

func (m *memStore) HighScore() (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.high, nil
}

func (m *memStore) RaiseHighScore(score int) error {
	if m.err != nil {
		return m.err
	}
	if score > m.high {
		m.high = score
		m.writes = append(m.writes, score)
	}
	return nil
}

func newTestGame(t *testing.T, seed int64) (*Game, *memStore) {
	t.Helper()
	store := &memStore{}
	g := New(config.DefaultSnakeConfig(), store)
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	return g, store
}

func bodyEqual(a, b []Cell) bool {
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

func TestFirstTick(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Start()

	g.Step()

	want := []Cell{{X: 5, Y: 10}, {X: 4, Y: 10}}
	if !bodyEqual(g.Body(), want) {
		t.Errorf("Body after first tick = %v, expected %v", g.Body(), want)
	}
	if g.Score() != 0 {
		t.Errorf("Score = %d, expected 0", g.Score())
	}
	if g.State().GameOver {
		t.Error("Game should not be over after the first tick")
	}
}

func TestResetIsIdle(t *testing.T) {
	g, _ := newTestGame(t, 1)

	if g.Delay() != 0 {
		t.Errorf("Delay() before Start = %v, expected 0", g.Delay())
	}
	if g.Direction() != DirUp {
		t.Errorf("Idle direction = %v, expected up", g.Direction())
	}
	if g.Running() {
		t.Error("Game should not run before Start")
	}

	before := g.Snapshot()
	g.Step()
	after := g.Snapshot()

	if after.Tick != before.Tick || !bodyEqual(after.Body, before.Body) {
		t.Error("Step before Start should not change the game")
	}
	if after.State != StateIdle {
		t.Errorf("State = %s, expected idle", after.State)
	}
}

func TestStartResetsEverything(t *testing.T) {
	g, _ := newTestGame(t, 7)
	g.Start()

	// Play a little and dirty every field
	g.SetDirection(DirDown)
	for range 3 {
		g.Step()
	}
	g.score = 9
	g.gameOver = true
	g.delay = 0
	g.apple = Cell{X: 0, Y: 0}

	g.Start()

	if !bodyEqual(g.Body(), []Cell{{X: 4, Y: 10}, {X: 4, Y: 10}}) {
		t.Errorf("Body after Start = %v", g.Body())
	}
	if g.Apple() != (Cell{X: 14, Y: 10}) {
		t.Errorf("Apple after Start = %v", g.Apple())
	}
	if g.Direction() != DirRight {
		t.Errorf("Direction after Start = %v, expected right", g.Direction())
	}
	if g.Score() != 0 {
		t.Errorf("Score after Start = %d, expected 0", g.Score())
	}
	if g.State().GameOver {
		t.Error("GameOver should be false after Start")
	}
	if g.Delay() != g.Config().Timing.TickDelay() {
		t.Errorf("Delay after Start = %v, expected %v", g.Delay(), g.Config().Timing.TickDelay())
	}
}

func TestMoveWithoutEating(t *testing.T) {
	g, _ := newTestGame(t, 3)
	g.Start()
	g.snake = []Cell{{X: 8, Y: 8}, {X: 7, Y: 8}, {X: 6, Y: 8}}
	g.apple = Cell{X: 0, Y: 0}

	dirs := []Direction{DirRight, DirDown, DirDown, DirLeft, DirUp}
	for i, d := range dirs {
		old := g.Body()
		g.SetDirection(d)
		g.Step()
		now := g.Body()

		if len(now) != len(old) {
			t.Fatalf("tick %d: length %d, expected %d", i, len(now), len(old))
		}
		if now[0] != old[0].Add(d) {
			t.Errorf("tick %d: head %v, expected %v", i, now[0], old[0].Add(d))
		}
		// Body shifts by one: the old tail is gone
		if !bodyEqual(now[1:], old[:len(old)-1]) {
			t.Errorf("tick %d: body %v does not follow %v", i, now, old)
		}
	}
	if g.State().GameOver {
		t.Error("Snake should still be alive")
	}
}

func TestEatApple(t *testing.T) {
	g, _ := newTestGame(t, 4)
	g.Start()
	g.snake = []Cell{{X: 5, Y: 5}, {X: 4, Y: 5}}
	g.apple = Cell{X: 6, Y: 5}

	result := g.Step()

	if len(g.Body()) != 3 {
		t.Errorf("Length after eating = %d, expected 3", len(g.Body()))
	}
	if g.Score() != 1 {
		t.Errorf("Score after eating = %d, expected 1", g.Score())
	}
	if g.Body()[0] != (Cell{X: 6, Y: 5}) {
		t.Errorf("Head = %v, expected (6,5)", g.Body()[0])
	}
	a := g.Apple()
	if a.X < 0 || a.X >= 20 || a.Y < 0 || a.Y >= 20 {
		t.Errorf("New apple %v is outside the grid", a)
	}
	if len(result.Events) != 1 || result.Events[0] != core.EventAppleEaten {
		t.Errorf("Events = %v, expected [apple]", result.Events)
	}
	if result.State.Score != 1 {
		t.Errorf("StepResult score = %d, expected 1", result.State.Score)
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		head Cell
		dir  Direction
	}{
		{"left wall", Cell{X: 0, Y: 10}, DirLeft},
		{"right wall", Cell{X: 19, Y: 10}, DirRight},
		{"top wall", Cell{X: 10, Y: 0}, DirUp},
		{"bottom wall", Cell{X: 10, Y: 19}, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame(t, 5)
			g.Start()
			g.snake = []Cell{tc.head, tc.head}
			g.SetDirection(tc.dir)

			result := g.Step()

			if !g.State().GameOver {
				t.Fatal("Game should be over after leaving the grid")
			}
			if g.Delay() != 0 {
				t.Errorf("Delay after game over = %v, expected 0", g.Delay())
			}
			if len(result.Events) != 1 || result.Events[0] != core.EventGameOver {
				t.Errorf("Events = %v, expected [gameover]", result.Events)
			}

			// No further ticks without a restart
			snap := g.Snapshot()
			g.Step()
			if g.Snapshot().Tick != snap.Tick {
				t.Error("Step after game over should do nothing")
			}
		})
	}
}

func TestEdgeCellsAreInsideGrid(t *testing.T) {
	g, _ := newTestGame(t, 5)
	g.Start()
	g.snake = []Cell{{X: 18, Y: 19}}
	g.SetDirection(DirRight)

	g.Step() // (19,19) is the last valid cell

	if g.State().GameOver {
		t.Error("Moving onto (19,19) should not end the game")
	}
}

func TestSelfCollision(t *testing.T) {
	g, _ := newTestGame(t, 6)
	g.Start()

	// Head at (5,5) moving right into (6,5), which is part of the body
	g.snake = []Cell{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	g.SetDirection(DirRight)

	g.Step()

	if !g.State().GameOver {
		t.Error("Game should be over after self collision")
	}
}

func TestTailCellCollides(t *testing.T) {
	g, _ := newTestGame(t, 6)
	g.Start()

	// Moving into the cell the tail is about to leave still collides:
	// the check runs against the body before this tick.
	g.snake = []Cell{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
	}
	g.SetDirection(DirRight)

	g.Step()

	if !g.State().GameOver {
		t.Error("Moving into the current tail cell should collide")
	}
}

func TestReverseIntoNeck(t *testing.T) {
	g, _ := newTestGame(t, 8)
	g.Start()
	g.Step() // body [(5,10),(4,10)]

	g.SetDirection(DirLeft)
	if g.Direction() != DirLeft {
		t.Fatal("Reversal should be accepted immediately")
	}
	g.Step()

	if !g.State().GameOver {
		t.Error("Reversing into the neck should collide")
	}
}

func TestInitialDuplicateCellsMoveApart(t *testing.T) {
	g, _ := newTestGame(t, 8)
	g.Start()

	// First tick from [(4,10),(4,10)] reversed to the left must not collide
	g.SetDirection(DirLeft)
	g.Step()

	if g.State().GameOver {
		t.Error("First tick away from the stacked start cells should not collide")
	}
	if !bodyEqual(g.Body(), []Cell{{X: 3, Y: 10}, {X: 4, Y: 10}}) {
		t.Errorf("Body = %v", g.Body())
	}
}

func TestLastKeyWins(t *testing.T) {
	g, _ := newTestGame(t, 9)
	g.Start()

	g.HandleAction(core.ActionUp)
	g.HandleAction(core.ActionLeft)
	g.HandleAction(core.ActionDown)
	g.Step()

	if head := g.Body()[0]; head != (Cell{X: 4, Y: 11}) {
		t.Errorf("Head = %v, expected (4,11): only the last key counts", head)
	}
}

func TestHandleAction(t *testing.T) {
	g, _ := newTestGame(t, 10)

	if g.HandleAction(core.ActionQuit) {
		t.Error("Quit is not a game action")
	}
	if g.HandleAction(core.ActionNone) {
		t.Error("None is not a game action")
	}
	if !g.HandleAction(core.ActionStart) || !g.Running() {
		t.Error("Start should start the game")
	}
	if !g.HandleAction(core.ActionUp) || g.Direction() != DirUp {
		t.Error("Up should set the direction")
	}
}

func TestCollisionTickStillEats(t *testing.T) {
	g, store := newTestGame(t, 11)
	g.Start()
	g.snake = []Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}
	g.apple = Cell{X: 6, Y: 5} // Apple spawned under the body
	g.score = 2

	g.SetDirection(DirRight)
	result := g.Step()

	if !g.State().GameOver {
		t.Fatal("Game should be over")
	}
	if g.Score() != 3 {
		t.Errorf("Score = %d, expected 3: the apple is eaten on the colliding tick", g.Score())
	}
	if len(g.Body()) != 5 {
		t.Errorf("Length = %d, expected 5: the grown body is kept", len(g.Body()))
	}
	// The stored best is written before the apple counts
	if store.high != 2 {
		t.Errorf("Stored high score = %d, expected 2", store.high)
	}

	want := []core.Event{core.EventGameOver, core.EventAppleEaten}
	if len(result.Events) != len(want) || result.Events[0] != want[0] || result.Events[1] != want[1] {
		t.Errorf("Events = %v, expected %v", result.Events, want)
	}
}

func TestHighScoreWrittenOnlyWhenBeaten(t *testing.T) {
	g, store := newTestGame(t, 12)
	store.high = 5

	// Score 3 < 5: no write
	g.Start()
	g.score = 3
	g.snake = []Cell{{X: 0, Y: 0}}
	g.SetDirection(DirUp)
	g.Step()

	if len(store.writes) != 0 {
		t.Errorf("Writes = %v, expected none for a lower score", store.writes)
	}

	// Equal score: still no write
	g.Start()
	g.score = 5
	g.snake = []Cell{{X: 0, Y: 0}}
	g.SetDirection(DirUp)
	g.Step()

	if len(store.writes) != 0 {
		t.Errorf("Writes = %v, expected none for an equal score", store.writes)
	}

	// Score 7 > 5: written
	g.Start()
	g.score = 7
	g.snake = []Cell{{X: 0, Y: 0}}
	g.SetDirection(DirUp)
	result := g.Step()

	if len(store.writes) != 1 || store.writes[0] != 7 {
		t.Errorf("Writes = %v, expected [7]", store.writes)
	}
	if result.State.HighScore != 7 || g.HighScore() != 7 {
		t.Errorf("HighScore = %d, expected 7", g.HighScore())
	}
}

func TestHighScoreMonotonic(t *testing.T) {
	g, store := newTestGame(t, 13)

	prev := 0
	for _, score := range []int{4, 2, 9, 9, 1, 12, 0} {
		g.Start()
		g.score = score
		g.snake = []Cell{{X: 19, Y: 3}}
		g.SetDirection(DirRight)
		g.Step()

		if store.high < prev {
			t.Fatalf("High score dropped from %d to %d", prev, store.high)
		}
		prev = store.high
	}
	if store.high != 12 {
		t.Errorf("Final high score = %d, expected 12", store.high)
	}
}

func TestHighScoreStoreFailure(t *testing.T) {
	g, store := newTestGame(t, 14)
	store.err = errors.New("disk on fire")

	if g.HighScore() != 0 {
		t.Errorf("HighScore() with a failing store = %d, expected 0", g.HighScore())
	}

	g.Start()
	g.score = 3
	g.snake = []Cell{{X: 0, Y: 0}}
	g.SetDirection(DirLeft)
	result := g.Step()

	if !g.State().GameOver {
		t.Fatal("Game should still end")
	}
	if !errors.Is(result.Err, store.err) {
		t.Errorf("StepResult.Err = %v, expected the storage failure", result.Err)
	}
	if len(store.writes) != 0 {
		t.Errorf("Writes = %v, expected none", store.writes)
	}
}

// gatedKV holds every SetIfGreater call until n callers have arrived, so
// games ending together really overlap.
type gatedKV struct {
	*storage.Memory
	arrived sync.WaitGroup
}

func (g *gatedKV) SetIfGreater(key string, value int) (bool, error) {
	g.arrived.Done()
	g.arrived.Wait()
	return g.Memory.SetIfGreater(key, value)
}

func TestConcurrentGameOversKeepBest(t *testing.T) {
	for _, order := range [][]int{{10, 7}, {7, 10}} {
		kv := &gatedKV{Memory: storage.NewMemory()}
		kv.arrived.Add(len(order))
		shared := storage.NewHighScore(kv, "snakeScore")

		var wg sync.WaitGroup
		for i, score := range order {
			g := New(config.DefaultSnakeConfig(), shared)
			g.Reset(core.RuntimeConfig{Seed: int64(i + 1)})
			g.Start()
			g.score = score
			g.snake = []Cell{{X: 0, Y: 0}}
			g.SetDirection(DirUp)

			wg.Add(1)
			go func() {
				defer wg.Done()
				if result := g.Step(); result.Err != nil {
					t.Errorf("Step() error: %v", result.Err)
				}
			}()
		}
		wg.Wait()

		high, err := shared.HighScore()
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if high != 10 {
			t.Errorf("Scores %v ended together: high score = %d, expected 10", order, high)
		}
	}
}

func TestNilStore(t *testing.T) {
	g := New(config.DefaultSnakeConfig(), nil)
	g.Reset(core.DefaultConfig())
	g.Start()
	g.snake = []Cell{{X: 0, Y: 0}}
	g.SetDirection(DirLeft)

	result := g.Step()
	if result.Err != nil || g.HighScore() != 0 {
		t.Error("A game without a store should still run")
	}
}

func TestAppleSpawnWithinBounds(t *testing.T) {
	g, _ := newTestGame(t, 15)
	g.Start()

	seen := make(map[Cell]bool)
	for range 2000 {
		c := g.randomCell()
		if c.X < 0 || c.X >= 20 || c.Y < 0 || c.Y >= 20 {
			t.Fatalf("randomCell() = %v, outside the 20x20 grid", c)
		}
		seen[c] = true
	}
	// Uniform over 400 cells: 2000 draws cover most of them
	if len(seen) < 300 {
		t.Errorf("randomCell() covered only %d of 400 cells", len(seen))
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1, _ := newTestGame(t, 12345)
	g2, _ := newTestGame(t, 12345)
	g1.Start()
	g2.Start()

	moves := map[int]core.Action{3: core.ActionDown, 6: core.ActionRight, 9: core.ActionUp}
	for i := range 12 {
		if a, ok := moves[i]; ok {
			g1.HandleAction(a)
			g2.HandleAction(a)
		}
		// Keep the apple in reach so the RNG gets used
		g1.apple = g1.snake[0].Add(g1.direction)
		g2.apple = g2.snake[0].Add(g2.direction)
		g1.Step()
		g2.Step()
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Tick != snap2.Tick || snap1.Score != snap2.Score {
		t.Errorf("Tick/score mismatch: %d/%d vs %d/%d", snap1.Tick, snap1.Score, snap2.Tick, snap2.Score)
	}
	if !bodyEqual(snap1.Body, snap2.Body) {
		t.Errorf("Body mismatch: %v vs %v", snap1.Body, snap2.Body)
	}
	if snap1.AppleX != snap2.AppleX || snap1.AppleY != snap2.AppleY {
		t.Errorf("Apple mismatch: (%d,%d) vs (%d,%d)", snap1.AppleX, snap1.AppleY, snap2.AppleX, snap2.AppleY)
	}
}

func TestDirectionString(t *testing.T) {
	tests := map[Direction]string{
		DirUp:          "up",
		DirDown:        "down",
		DirLeft:        "left",
		DirRight:       "right",
		{DX: 2, DY: 2}: "unknown",
	}
	for d, want := range tests {
		if d.String() != want {
			t.Errorf("%v.String() = %q, expected %q", d, d.String(), want)
		}
	}
}
