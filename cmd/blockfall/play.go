package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagCatalog    string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing blockfall.

Controls:
  Left/Right, A/D, H/L  - Move
  Up, W, K              - Rotate
  Down, S, J            - Drop one row
  Enter/Space           - Start
  P                     - Pause
  R                     - Restart
  Esc/B                 - Back (before start, paused or after game over)
  Ctrl+S                - Screenshot
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Start at lowest speed, progresses to max
  normal - Start at 30% speed-up, progresses to max
  hard   - Start at 70% speed-up, progresses to max
  fixed  - No progression, stays at config's initial level

Catalogs:
  classic - the seven tetrominoes
  bar     - a single four-cell bar

Examples:
  blockfall play
  blockfall play blockfall_bar
  blockfall play --catalog bar
  blockfall play --difficulty hard
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Piece catalog: classic, bar (selects the game variant)")
}

// resolveGameID picks the game from the argument and --catalog.
func resolveGameID(args []string, catalog string) (string, error) {
	switch catalog {
	case "":
	case config.CatalogBar:
		return blockfall.BarGameID, nil
	case config.CatalogClassic:
		return blockfall.GameID, nil
	default:
		return "", fmt.Errorf("unknown catalog %q (classic, bar)", catalog)
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return blockfall.GameID, nil
}

// applyGameSettings hands CLI flags to the games before they are created.
func applyGameSettings() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	blockfall.SetConfigPath(flagConfig)
	blockfall.SetDifficultyPreset(flagDifficulty)
	return nil
}

// terminalConfig sizes the runtime config from the controlling terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID, err := resolveGameID(args, flagCatalog)
	if err != nil {
		fail("%v", err)
	}
	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'blockfall list' to see available games.", gameID)
	}
	if err := applyGameSettings(); err != nil {
		fail("%v", err)
	}
	if err := checkGames(gameID); err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store := openStore(logger)
	useHighScores(store, logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	runErr := tui.Run(game, store, logger, terminalConfig())

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
