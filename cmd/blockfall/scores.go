package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the best sessions for a game, or a summary of every game
when no game is given.

Examples:
  blockfall scores
  blockfall scores blockfall
  blockfall scores blockfall_bar --limit 20
  blockfall scores blockfall --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all sessions and the best score of the game")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			store.Close()
			fail("--clear needs a game")
		}
		printSummary(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		store.Close()
		fail("unknown game %q\nRun 'blockfall list' to see available games.", gameID)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return
	}

	printTop(store, gameID)
}

func printTop(store *storage.Store, gameID string) {
	game, err := registry.Create(gameID)
	if err != nil {
		store.Close()
		fail("creating game: %v", err)
	}

	sessions, err := store.TopSessions(gameID, flagLimit)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blockfall play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Lines", "Pieces", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "-----", "------", "----")
	for i, s := range sessions {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %s\n",
			i+1, s.Score, s.Lines, s.Pieces, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.HighScore(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}

func printSummary(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		store.Close()
		fail("%v", err)
	}
	if len(stats) == 0 {
		fmt.Println("No games played yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %-6s  %s\n", "Game", "Games", "Best", "Average", "Lines", "Last played")
	for _, id := range ids {
		gs := stats[id]
		fmt.Printf("  %-16s  %-6d  %-8d  %-8.1f  %-6d  %s\n",
			id, gs.GamesCount, gs.HighScore, gs.AvgScore, gs.TotalLines, gs.LastPlayed.Format("2006-01-02 15:04"))
	}
}
