// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall list              - List available games
//	blockfall play [game]       - Play a game (default: blockfall)
//	blockfall menu              - Start menu to pick games interactively
//	blockfall serve             - Start SSH server for remote play
//	blockfall scores [game]     - Show high scores
//	blockfall simulate          - Run a headless game and print the result
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.blockfall/scores.db)
//	--verbose          - Log at debug level
//	--log-file <path>  - Write logs to a file while the TUI is running
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle in your terminal",
	Long: `Blockfall drops pieces into a well; steer and rotate them to fill rows.
Full rows are cleared, and every locked piece scores.

Available commands:
  list      - Show all available games
  play      - Play directly
  menu      - Interactive game picker menu
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run a headless game

Examples:
  blockfall play
  blockfall play --catalog bar --difficulty hard
  blockfall menu
  blockfall serve --ssh :2222
  blockfall scores blockfall
  blockfall simulate --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger creates a logger honoring --verbose.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// tuiLogger returns a logger for full-screen modes. The alt screen owns the
// terminal, so output goes to --log-file or nowhere.
func tuiLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(io.Discard, "blockfall"), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f, "blockfall"), func() { f.Close() }, nil
}

// openStore opens the scores database. Play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// useHighScores persists best scores in store for every game created
// from now on.
func useHighScores(store *storage.Store, logger *log.Logger) {
	if store == nil {
		blockfall.SetHighScores(nil)
		return
	}
	blockfall.SetHighScores(func(gameID string) engine.HighScoreKeeper {
		return storage.NewHighScoreKeeper(store, gameID, logger)
	})
}

// configChecker is implemented by games that can vet their settings before
// they are reset.
type configChecker interface {
	CheckConfig() error
}

// checkGames reports the first game among ids whose current settings
// cannot start a game. No ids means every registered game.
func checkGames(ids ...string) error {
	if len(ids) == 0 {
		for _, info := range registry.List() {
			ids = append(ids, info.ID)
		}
	}
	for _, id := range ids {
		g, err := registry.Create(id)
		if err != nil {
			return err
		}
		if c, ok := g.(configChecker); ok {
			if err := c.CheckConfig(); err != nil {
				return err
			}
		}
	}
	return nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
