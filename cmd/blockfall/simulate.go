package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagSimInterval time.Duration
	flagSimMoves    time.Duration
	flagSimTimeout  time.Duration
	flagSimRecord   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with random moves",
	Long: `Play one game without a terminal UI. Gravity runs on a timer in its
own goroutine while random moves race against it, until the well fills up.

The board before the last lock and a summary are printed at the end.
With --verbose every lock is logged.

Examples:
  blockfall simulate
  blockfall simulate --seed 42 --catalog bar
  blockfall simulate --interval 1ms --moves 500us -v
  blockfall simulate --record`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagSimInterval, "interval", 2*time.Millisecond, "Gravity interval")
	simulateCmd.Flags().DurationVar(&flagSimMoves, "moves", time.Millisecond, "Interval between random moves (0 disables them)")
	simulateCmd.Flags().DurationVar(&flagSimTimeout, "timeout", time.Minute, "Give up after this long")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record the session in the scores database")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	simulateCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Piece catalog: classic, bar (overrides the config)")
}

func runSimulate(cmd *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "simulate")

	cfg, err := config.LoadBlockfall(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagCatalog != "" {
		cfg.Pieces.Catalog = flagCatalog
	}
	if err := blockfall.CheckBoard(cfg, cfg.Pieces.Catalog); err != nil {
		fail("%v", err)
	}
	catalog, err := engine.CatalogByName(cfg.Pieces.Catalog)
	if err != nil {
		fail("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gameID := blockfall.GameID
	if cfg.Pieces.Catalog == config.CatalogBar {
		gameID = blockfall.BarGameID
	}

	var keeper engine.HighScoreKeeper = engine.NopHighScores{}
	var store *storage.Store
	if flagSimRecord {
		store = openStore(logger)
		if store != nil {
			defer store.Close()
			keeper = storage.NewHighScoreKeeper(store, gameID, logger)
		}
	}

	eng, err := engine.New(engine.Config{
		Rows:         cfg.Board.Rows,
		Cols:         cfg.Board.Cols,
		ScorePerLock: cfg.Scoring.PerLock,
		Seed:         seed,
	}, engine.WithCatalog(catalog), engine.WithHighScores(keeper))
	if err != nil {
		fail("%v", err)
	}

	dropper, err := blockfall.NewAutoDropper(eng, flagSimInterval)
	if err != nil {
		fail("%v", err)
	}

	var (
		mu        sync.Mutex
		lastBoard string
	)
	dropper.OnResult(func(res engine.Result) {
		if res.Outcome != engine.OutcomeLocked && res.Outcome != engine.OutcomeGameOver {
			return
		}
		logger.Debug("lock", "outcome", res.Outcome, "lines", res.LinesCleared, "score", res.Score)
		if res.Outcome == engine.OutcomeLocked {
			mu.Lock()
			lastBoard = eng.Board().String()
			mu.Unlock()
		}
	})

	ctx, cancel := context.WithTimeout(cmd.Context(), flagSimTimeout)
	defer cancel()

	logger.Info("simulation started", "seed", seed, "catalog", cfg.Pieces.Catalog,
		"board", fmt.Sprintf("%dx%d", cfg.Board.Rows, cfg.Board.Cols))
	eng.Start()
	started := time.Now()

	moveCtx, stopMoves := context.WithCancel(ctx)
	var wg sync.WaitGroup
	if flagSimMoves > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			randomMoves(moveCtx, eng, seed, flagSimMoves)
		}()
	}

	runErr := dropper.Run(ctx)
	stopMoves()
	wg.Wait()

	if errors.Is(runErr, context.DeadlineExceeded) {
		logger.Warn("simulation timed out", "after", flagSimTimeout)
	} else if runErr != nil {
		fail("%v", runErr)
	}

	stats := eng.Stats()
	score := eng.LastScore()
	if !eng.IsOver() {
		score = eng.Score()
	}
	logger.Info("simulation finished",
		"score", score,
		"lines", stats.LinesCleared,
		"pieces", stats.PiecesLocked,
		"elapsed", time.Since(started).Round(time.Millisecond),
	)

	if store != nil && score > 0 {
		if _, err := store.SaveSession(storage.Session{
			GameID: gameID,
			Score:  score,
			Lines:  stats.LinesCleared,
			Pieces: stats.PiecesLocked,
		}); err != nil {
			logger.Warn("cannot record session", "err", err)
		}
	}

	mu.Lock()
	board := lastBoard
	mu.Unlock()
	if board != "" {
		fmt.Println(board)
		fmt.Println()
	}
	fmt.Printf("score %d  lines %d  pieces %d\n", score, stats.LinesCleared, stats.PiecesLocked)
	for id, n := range stats.ByShape {
		if shape, err := eng.Catalog().Shape(id); err == nil {
			logger.Debug("shape", "name", shape.Name(), "locked", n)
		}
	}
}

// randomMoves sends random lateral moves and rotations until ctx is done.
func randomMoves(ctx context.Context, eng *engine.Engine, seed int64, every time.Duration) {
	rng := rand.New(rand.NewSource(seed))
	motions := []engine.Motion{engine.MotionLeft, engine.MotionRight, engine.MotionRotate}

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			eng.ApplyMotion(motions[rng.Intn(len(motions))])
		}
	}
}
