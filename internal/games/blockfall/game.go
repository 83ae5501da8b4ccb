// Package blockfall hosts the falling-block engine as an arcade game: it maps
// platform actions to motions, drives gravity from the tick loop and draws the
// well into a core.Screen.
package blockfall

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Registered game IDs.
const (
	GameID    = "blockfall"
	BarGameID = "blockfall_bar"
)

// KeeperFactory builds the high-score collaborator for a game ID.
type KeeperFactory func(gameID string) engine.HighScoreKeeper

// Process-wide settings applied by the CLI before games are created.
var (
	settingsMu       sync.RWMutex
	configPath       string
	difficultyPreset config.DifficultyPreset
	keeperFactory    KeeperFactory
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	switch p := config.DifficultyPreset(preset); p {
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		difficultyPreset = p
	default:
		difficultyPreset = ""
	}
}

// SetHighScores installs the factory used to persist best scores.
// A nil factory keeps scores in memory only.
func SetHighScores(f KeeperFactory) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	keeperFactory = f
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(BarGameID, func() registry.Game {
		return NewBar()
	})
}

// Game adapts an engine.Engine to registry.Game.
type Game struct {
	id      string
	title   string
	desc    string
	catalog string // fixed catalog name; empty uses pieces.catalog

	cfg       config.BlockfallConfig
	cfgSet    bool
	configErr error // why the last Reset used the stock config
	keeper    engine.HighScoreKeeper

	eng        *engine.Engine
	difficulty *config.DifficultyManager

	tick         uint64
	sessionTicks int // active ticks since the current session started
	baseDrop     int // gravity period in ticks before difficulty scaling
	dropCounter  int
	moveCooldown int // ticks between accepted moves, 0 = unthrottled
	cooldownLeft int
	paused       bool
	last         engine.Result

	screenW int
	screenH int
}

// New creates the classic seven-piece game. Its catalog follows pieces.catalog.
func New() *Game {
	return &Game{id: GameID, title: "Blockfall", desc: "the seven tetrominoes (catalog from config)"}
}

// NewBar creates the single-bar variant.
func NewBar() *Game {
	return &Game{id: BarGameID, title: "Blockfall (Bar)", desc: "a single four-cell bar", catalog: config.CatalogBar}
}

// SetConfig pins the configuration instead of loading it on Reset.
func (g *Game) SetConfig(cfg config.BlockfallConfig) {
	g.cfg = cfg
	g.cfgSet = true
}

// SetHighScores pins the high-score collaborator for this game.
func (g *Game) SetHighScores(k engine.HighScoreKeeper) {
	g.keeper = k
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Description returns a one-line summary for listings.
func (g *Game) Description() string { return g.desc }

// Reset builds a fresh engine waiting for the player to start.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH

	if g.keeper == nil {
		settingsMu.RLock()
		f := keeperFactory
		settingsMu.RUnlock()
		if f != nil {
			g.keeper = f(g.id)
		}
		if g.keeper == nil {
			g.keeper = &engine.MemoryHighScores{}
		}
	}

	cfg, err := g.loadConfig()
	if err == nil {
		err = g.checkConfig(cfg)
	}
	g.configErr = err
	if err != nil {
		cfg = g.defaultConfig()
	}
	eng, err := g.newEngine(cfg, rt.Seed)
	if err != nil {
		// checkConfig passed or cfg is the stock config, which fits both catalogs.
		panic(fmt.Sprintf("blockfall: %s: %v", g.id, err))
	}

	g.eng = eng
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.baseDrop = rt.TicksFor(cfg.Timing.DropIntervalMs)
	g.moveCooldown = 0
	if cfg.Timing.MoveCooldownMs > 0 {
		g.moveCooldown = rt.TicksFor(cfg.Timing.MoveCooldownMs)
	}
	g.tick = 0
	g.paused = false
	g.last = engine.Result{}
	g.resetTimers()
}

// loadConfig returns the pinned config or loads one from disk with the
// difficulty preset applied.
func (g *Game) loadConfig() (config.BlockfallConfig, error) {
	if g.cfgSet {
		return g.cfg, nil
	}

	settingsMu.RLock()
	path, preset := configPath, difficultyPreset
	settingsMu.RUnlock()

	cfg, err := config.LoadBlockfall(path)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		config.ApplyBlockfallPreset(&cfg, preset)
	}
	return cfg, nil
}

func (g *Game) defaultConfig() config.BlockfallConfig {
	cfg := config.DefaultBlockfallConfig()
	settingsMu.RLock()
	preset := difficultyPreset
	settingsMu.RUnlock()
	if preset != "" {
		config.ApplyBlockfallPreset(&cfg, preset)
	}
	return cfg
}

// catalogName is the piece set this game plays with under cfg.
func (g *Game) catalogName(cfg config.BlockfallConfig) string {
	if g.catalog != "" {
		return g.catalog
	}
	return cfg.Pieces.Catalog
}

func (g *Game) checkConfig(cfg config.BlockfallConfig) error {
	if err := CheckBoard(cfg, g.catalogName(cfg)); err != nil {
		return fmt.Errorf("%s: %w", g.id, err)
	}
	return nil
}

func (g *Game) newEngine(cfg config.BlockfallConfig, seed int64) (*engine.Engine, error) {
	catalog, err := engine.CatalogByName(g.catalogName(cfg))
	if err != nil {
		return nil, err
	}
	return engine.New(engine.Config{
		Rows:         cfg.Board.Rows,
		Cols:         cfg.Board.Cols,
		ScorePerLock: cfg.Scoring.PerLock,
		Seed:         seed,
	}, engine.WithCatalog(catalog), engine.WithHighScores(g.keeper))
}

// CheckConfig reports whether the settings Reset would load give a playable
// well. Hosts call it before starting a game; Reset itself falls back to the
// stock config and records the problem in ConfigErr.
func (g *Game) CheckConfig() error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	return g.checkConfig(cfg)
}

// ConfigErr returns why the last Reset fell back to the stock config, or nil.
func (g *Game) ConfigErr() error { return g.configErr }

// CheckBoard validates cfg and checks that every shape of the named catalog
// fits the configured board.
func CheckBoard(cfg config.BlockfallConfig, catalogName string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	catalog, err := engine.CatalogByName(catalogName)
	if err != nil {
		return err
	}
	if err := catalog.Validate(cfg.Board.Rows, cfg.Board.Cols); err != nil {
		if catalogName == "" {
			catalogName = config.CatalogClassic
		}
		return fmt.Errorf("config: board %dx%d is too small for the %s pieces: %w",
			cfg.Board.Rows, cfg.Board.Cols, catalogName, err)
	}
	return nil
}

func (g *Game) resetTimers() {
	g.sessionTicks = 0
	g.dropCounter = 0
	g.cooldownLeft = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) && g.eng.IsActive() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionRestart):
		g.eng.Restart()
		g.resetTimers()
	case in.Has(core.ActionConfirm) || in.Has(core.ActionJump):
		if !g.eng.IsActive() {
			g.eng.Start()
			g.resetTimers()
		}
	}

	if !g.eng.IsActive() {
		return core.StepResult{State: g.State()}
	}
	g.sessionTicks++

	g.processInput(in)

	g.dropCounter++
	if g.dropCounter >= g.DropTicks() {
		g.dropCounter = 0
		g.apply(engine.MotionDown)
	}

	return core.StepResult{State: g.State()}
}

// processInput turns movement actions into motions, honoring the cooldown.
func (g *Game) processInput(in core.InputFrame) {
	if g.cooldownLeft > 0 {
		g.cooldownLeft--
		return
	}

	moved := false
	for _, km := range []struct {
		action core.Action
		motion engine.Motion
	}{
		{core.ActionLeft, engine.MotionLeft},
		{core.ActionRight, engine.MotionRight},
		{core.ActionRotate, engine.MotionRotate},
		{core.ActionDown, engine.MotionDown},
	} {
		if in.Has(km.action) {
			g.apply(km.motion)
			moved = true
		}
	}
	if moved {
		g.cooldownLeft = g.moveCooldown
	}
}

func (g *Game) apply(m engine.Motion) {
	res := g.eng.ApplyMotion(m)
	if res.Outcome != engine.OutcomeIgnored {
		g.last = res
	}
}

// DropTicks returns the current gravity period in ticks.
func (g *Game) DropTicks() int {
	return g.difficulty.DropTicks(g.baseDrop, config.Progress{
		Score: g.eng.Score(),
		Lines: g.eng.Stats().LinesCleared,
		Ticks: g.sessionTicks,
	})
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *engine.Engine { return g.eng }

// State returns the current game state.
func (g *Game) State() core.GameState {
	stats := g.eng.Stats()
	return core.GameState{
		Score:     g.eng.Score(),
		LastScore: g.eng.LastScore(),
		HighScore: g.keeper.HighScore(),
		Lines:     stats.LinesCleared,
		Pieces:    stats.PiecesLocked,
		Waiting:   g.eng.IsAwaitingStart(),
		GameOver:  g.eng.IsOver(),
		Paused:    g.paused,
	}
}

// DebugState returns a one-line summary for logs.
func (g *Game) DebugState() string {
	st := g.State()
	return fmt.Sprintf("tick=%d state=%s score=%d lines=%d pieces=%d drop=%d",
		g.tick, g.eng.State(), st.Score, st.Lines, st.Pieces, g.DropTicks())
}
