package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestHighScoreKeeperLoadsAndRaises(t *testing.T) {
	store := openTestStore(t)
	store.SetHighScore("blockfall", 40)

	k := NewHighScoreKeeper(store, "blockfall", log.New(&bytes.Buffer{}))
	if k.HighScore() != 40 {
		t.Fatalf("keeper should load stored best, got %d", k.HighScore())
	}

	k.SaveHighScore(30)
	if k.HighScore() != 40 {
		t.Errorf("lower score should be ignored, got %d", k.HighScore())
	}

	k.SaveHighScore(50)
	if k.HighScore() != 50 {
		t.Errorf("cached best = %d, expected 50", k.HighScore())
	}
	if high, _ := store.HighScore("blockfall"); high != 50 {
		t.Errorf("stored best = %d, expected 50", high)
	}
}

func TestHighScoreKeeperLogsFailedSave(t *testing.T) {
	store := openTestStore(t)
	var buf bytes.Buffer
	k := NewHighScoreKeeper(store, "blockfall", log.New(&buf))

	store.Close()
	k.SaveHighScore(10)

	if k.HighScore() != 10 {
		t.Errorf("cache should advance even when the save fails, got %d", k.HighScore())
	}
	if !strings.Contains(buf.String(), "cannot save high score") {
		t.Errorf("expected a warning, got %q", buf.String())
	}
}
