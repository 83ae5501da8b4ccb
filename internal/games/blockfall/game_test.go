package blockfall

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// fixedConfig disables difficulty so gravity stays at the base period.
func fixedConfig() config.BlockfallConfig {
	cfg := config.DefaultBlockfallConfig()
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 0
	return cfg
}

func newTestGame(t *testing.T, g *Game, cfg config.BlockfallConfig, seed int64) (*Game, *engine.MemoryHighScores) {
	t.Helper()
	keeper := &engine.MemoryHighScores{}
	g.SetConfig(cfg)
	g.SetHighScores(keeper)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g, keeper
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestAwaitsStart(t *testing.T) {
	g, _ := newTestGame(t, New(), fixedConfig(), 1)

	for range 100 {
		step(g, core.ActionLeft, core.ActionDown)
	}

	snap := g.Snapshot()
	if snap.State != engine.StateAwaitingStart {
		t.Fatalf("State = %v, expected AwaitingStart", snap.State)
	}
	if snap.HasPiece {
		t.Error("no piece should spawn before start")
	}
}

func TestConfirmStarts(t *testing.T) {
	for _, action := range []core.Action{core.ActionConfirm, core.ActionJump} {
		g, _ := newTestGame(t, New(), fixedConfig(), 1)
		step(g, action)

		snap := g.Snapshot()
		if snap.State != engine.StateActive || !snap.HasPiece {
			t.Errorf("%v should start the game, got %+v", action, snap)
		}
		if snap.Piece.Position.Row != 0 {
			t.Errorf("piece should spawn at row 0, got %d", snap.Piece.Position.Row)
		}
	}
}

func TestGravity(t *testing.T) {
	g, _ := newTestGame(t, New(), fixedConfig(), 7)
	if g.DropTicks() != 30 {
		t.Fatalf("DropTicks() = %d, expected 30 at 60 tps and 500 ms", g.DropTicks())
	}

	step(g, core.ActionConfirm) // the start tick counts toward the first drop
	for range 28 {
		step(g)
	}
	if row := g.Snapshot().Piece.Position.Row; row != 0 {
		t.Fatalf("piece fell early, row = %d", row)
	}

	step(g)
	if row := g.Snapshot().Piece.Position.Row; row != 1 {
		t.Errorf("piece should fall one row after 30 ticks, row = %d", row)
	}
}

func TestMoveLeft(t *testing.T) {
	g, _ := newTestGame(t, New(), fixedConfig(), 3)
	step(g, core.ActionConfirm)
	col := g.Snapshot().Piece.Position.Col

	step(g, core.ActionLeft)
	if got := g.Snapshot().Piece.Position.Col; got != col-1 {
		t.Errorf("Col = %d, expected %d", got, col-1)
	}

	step(g, core.ActionRight)
	if got := g.Snapshot().Piece.Position.Col; got != col {
		t.Errorf("Col = %d, expected %d", got, col)
	}
}

func TestMoveCooldown(t *testing.T) {
	cfg := fixedConfig()
	cfg.Timing.MoveCooldownMs = 100 // 6 ticks at 60 tps
	g, _ := newTestGame(t, New(), cfg, 3)
	step(g, core.ActionConfirm)
	col := g.Snapshot().Piece.Position.Col

	step(g, core.ActionLeft)
	step(g, core.ActionLeft)
	if got := g.Snapshot().Piece.Position.Col; got != col-1 {
		t.Fatalf("second move inside the cooldown should be dropped, Col = %d", got)
	}

	for range 5 {
		step(g)
	}
	step(g, core.ActionLeft)
	if got := g.Snapshot().Piece.Position.Col; got != col-2 {
		t.Errorf("move after the cooldown should apply, Col = %d, expected %d", got, col-2)
	}
}

func TestPause(t *testing.T) {
	g, _ := newTestGame(t, New(), fixedConfig(), 5)
	step(g, core.ActionConfirm)
	step(g, core.ActionPause)

	before := g.Snapshot()
	if !before.Paused || !g.State().Paused {
		t.Fatal("game should be paused")
	}
	for range 100 {
		step(g, core.ActionDown)
	}
	after := g.Snapshot()
	if after.Piece != before.Piece || after.Board != before.Board {
		t.Error("paused game should not change")
	}

	step(g, core.ActionPause)
	if g.Snapshot().Paused {
		t.Error("second pause should resume")
	}
}

func TestPauseIgnoredBeforeStart(t *testing.T) {
	g, _ := newTestGame(t, New(), fixedConfig(), 5)
	step(g, core.ActionPause)
	if g.Snapshot().Paused {
		t.Error("pause should only apply to an active game")
	}
}

// barGameOver plays the bar variant on a 4x6 board until it ends. Each bar
// locks one row higher than the last, so the fourth lock ends the game.
func barGameOver(t *testing.T) (*Game, *engine.MemoryHighScores) {
	t.Helper()
	cfg := fixedConfig()
	cfg.Board = config.BoardConfig{Rows: 4, Cols: 6}
	g, keeper := newTestGame(t, NewBar(), cfg, 1)

	step(g, core.ActionConfirm)
	for range 100 {
		if step(g, core.ActionDown).State.GameOver {
			return g, keeper
		}
	}
	t.Fatal("game never ended")
	return nil, nil
}

func TestGameOver(t *testing.T) {
	g, keeper := barGameOver(t)

	st := g.State()
	if st.Score != 0 || st.LastScore != 40 {
		t.Errorf("Score/LastScore = %d/%d, expected 0/40", st.Score, st.LastScore)
	}
	if st.Pieces != 4 || st.Lines != 0 {
		t.Errorf("Pieces/Lines = %d/%d, expected 4/0", st.Pieces, st.Lines)
	}
	if keeper.Best != 40 || st.HighScore != 40 {
		t.Errorf("high score = %d (state %d), expected 40", keeper.Best, st.HighScore)
	}
	if !strings.Contains(g.Snapshot().Board, "......") || strings.ContainsAny(g.Snapshot().Board, "#*") {
		t.Errorf("board should be empty after game over:\n%s", g.Snapshot().Board)
	}

	// Movement stays ignored until the player starts again.
	step(g, core.ActionDown)
	if !g.State().GameOver {
		t.Fatal("motions must not leave the Over state")
	}

	step(g, core.ActionConfirm)
	st = g.State()
	if st.GameOver || st.Pieces != 0 || st.Score != 0 {
		t.Errorf("start after game over should begin a fresh session, got %+v", st)
	}
}

func TestRestart(t *testing.T) {
	g, _ := newTestGame(t, New(), fixedConfig(), 9)
	step(g, core.ActionConfirm)
	for range 40 {
		step(g, core.ActionDown)
	}
	if g.State().Pieces == 0 {
		t.Fatal("expected at least one lock before restarting")
	}

	step(g, core.ActionRestart)
	snap := g.Snapshot()
	if snap.State != engine.StateActive || snap.Pieces != 0 || snap.Score != 0 {
		t.Errorf("restart should give a fresh active session, got %+v", snap)
	}
	if snap.Piece.Position.Row != 0 {
		t.Errorf("restart should spawn at row 0, got %d", snap.Piece.Position.Row)
	}
}

func TestDeterminism(t *testing.T) {
	script := func(i int) []core.Action {
		switch i % 7 {
		case 0:
			return []core.Action{core.ActionLeft}
		case 2:
			return []core.Action{core.ActionRotate}
		case 3:
			return []core.Action{core.ActionDown}
		case 5:
			return []core.Action{core.ActionRight, core.ActionDown}
		}
		return nil
	}

	g1, _ := newTestGame(t, New(), fixedConfig(), 12345)
	g2, _ := newTestGame(t, New(), fixedConfig(), 12345)
	step(g1, core.ActionConfirm)
	step(g2, core.ActionConfirm)

	for i := range 600 {
		step(g1, script(i)...)
		step(g2, script(i)...)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestDifficultySpeedsGravity(t *testing.T) {
	cfg := config.DefaultBlockfallConfig()
	cfg.Difficulty = config.DifficultyConfig{
		Enabled:     true,
		Progression: config.ProgressionConfig{Type: "time", MaxAt: 60},
		Scaling:     config.ScalingConfig{SpeedMultiplier: 1.0},
	}
	g, _ := newTestGame(t, New(), cfg, 1)
	step(g, core.ActionConfirm)

	if g.DropTicks() != 30 {
		t.Fatalf("DropTicks() at start = %d, expected 30", g.DropTicks())
	}

	// Paused ticks do not count toward progression.
	step(g, core.ActionPause)
	for range 100 {
		step(g)
	}
	if g.DropTicks() != 30 {
		t.Errorf("DropTicks() after paused ticks = %d, expected 30", g.DropTicks())
	}

	step(g, core.ActionPause)
	for range 58 {
		step(g)
	}
	if g.DropTicks() != 15 {
		t.Errorf("DropTicks() at full speed = %d, expected 15", g.DropTicks())
	}
}

func TestInvalidBoardFallsBack(t *testing.T) {
	cfg := fixedConfig()
	cfg.Board = config.BoardConfig{Rows: 2, Cols: 2} // too small for the I piece
	g, _ := newTestGame(t, New(), cfg, 1)

	if g.Engine().Rows() != 20 || g.Engine().Cols() != 10 {
		t.Errorf("expected the stock 20x10 well, got %dx%d", g.Engine().Rows(), g.Engine().Cols())
	}
	if !errors.Is(g.ConfigErr(), engine.ErrInvalidConfig) {
		t.Errorf("ConfigErr = %v, expected ErrInvalidConfig", g.ConfigErr())
	}
	if g.CheckConfig() == nil {
		t.Error("CheckConfig should reject a 2x2 board")
	}

	// The pinned config is kept, so the next reset still reports it.
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 2})
	if g.ConfigErr() == nil {
		t.Error("ConfigErr cleared by a second reset")
	}
}

func TestCheckBoard(t *testing.T) {
	narrow := func(rows, cols int) config.BlockfallConfig {
		cfg := fixedConfig()
		cfg.Board = config.BoardConfig{Rows: rows, Cols: cols}
		return cfg
	}
	tests := []struct {
		name    string
		cfg     config.BlockfallConfig
		catalog string
		wantErr bool
	}{
		{"stock classic", fixedConfig(), config.CatalogClassic, false},
		{"stock bar", fixedConfig(), config.CatalogBar, false},
		{"config catalog", fixedConfig(), "", false},
		{"classic three wide", narrow(20, 3), config.CatalogClassic, true},
		{"bar five wide", narrow(20, 5), config.CatalogBar, true},
		{"bar six wide", narrow(20, 6), config.CatalogBar, false},
		{"classic one row", narrow(1, 10), config.CatalogClassic, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBoard(tt.cfg, tt.catalog)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckBoard = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, engine.ErrInvalidConfig) {
				t.Errorf("error %v should wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestCheckBoardRejectsBadConfig(t *testing.T) {
	cfg := fixedConfig()
	cfg.Timing.DropIntervalMs = 0
	if err := CheckBoard(cfg, ""); err == nil {
		t.Error("CheckBoard should run the config's own validation")
	}
}

func TestNarrowBarGameFallsBack(t *testing.T) {
	cfg := fixedConfig()
	cfg.Board.Cols = 5
	g := NewBar()
	g.SetConfig(cfg)
	if err := g.CheckConfig(); !errors.Is(err, engine.ErrInvalidConfig) {
		t.Fatalf("CheckConfig = %v, expected ErrInvalidConfig", err)
	}
	g, _ = newTestGame(t, g, cfg, 1)
	if g.Engine() == nil || g.Engine().Cols() != 10 {
		t.Fatal("a bar game on a five-wide board should fall back to the stock well")
	}
	if g.DebugState() == "" {
		t.Error("DebugState is empty")
	}
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(t, New(), fixedConfig(), 2)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"┌", "ENTER to start", "Score  0", "Best   0"} {
		if !strings.Contains(out, want) {
			t.Errorf("render before start missing %q:\n%s", want, out)
		}
	}

	step(g, core.ActionConfirm)
	screen.Clear()
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "[]") {
		t.Errorf("render should draw the active piece:\n%s", out)
	}
	if strings.Contains(out, "ENTER to start") {
		t.Error("start banner should disappear once active")
	}

	p, _ := g.Engine().Piece()
	found := false
	for y := range screen.Height() {
		for x := range screen.Width() {
			if c := screen.GetCell(x, y); c.Rune == '[' && c.Color == p.Color {
				found = true
			}
		}
	}
	if !found {
		t.Error("ephemeral cells should use the piece color")
	}
}

func TestRenderGameOverBanner(t *testing.T) {
	g, _ := barGameOver(t)
	screen := core.NewScreen(60, 20)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "score 40") {
		t.Errorf("game over banner missing:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(t, New(), fixedConfig(), 2)
	screen := core.NewScreen(20, 5)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Errorf("expected a size warning:\n%s", screen.String())
	}
}

func TestRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{GameID, "Blockfall"},
		{BarGameID, "Blockfall (Bar)"},
	}
	for _, tc := range tests {
		g, err := registry.Create(tc.id)
		if err != nil {
			t.Fatalf("Create(%q): %v", tc.id, err)
		}
		if g.ID() != tc.id || g.Title() != tc.title {
			t.Errorf("game %q = %q/%q", tc.id, g.ID(), g.Title())
		}
		if info, ok := registry.Lookup(tc.id); !ok || info.Description == "" {
			t.Errorf("game %q should be listed with a description, got %+v", tc.id, info)
		}
	}
}

func TestKeeperFactory(t *testing.T) {
	keeper := &engine.MemoryHighScores{Best: 99}
	var asked string
	SetHighScores(func(id string) engine.HighScoreKeeper {
		asked = id
		return keeper
	})
	t.Cleanup(func() { SetHighScores(nil) })

	g := NewBar()
	g.SetConfig(fixedConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	if asked != BarGameID {
		t.Errorf("factory asked for %q, expected %q", asked, BarGameID)
	}
	if g.State().HighScore != 99 {
		t.Errorf("HighScore = %d, expected 99", g.State().HighScore)
	}
}
