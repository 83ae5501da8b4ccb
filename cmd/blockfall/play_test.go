package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

func TestResolveGameID(t *testing.T) {
	tests := []struct {
		args    []string
		catalog string
		want    string
		wantErr bool
	}{
		{nil, "", blockfall.GameID, false},
		{[]string{blockfall.BarGameID}, "", blockfall.BarGameID, false},
		{nil, "bar", blockfall.BarGameID, false},
		{[]string{blockfall.BarGameID}, "classic", blockfall.GameID, false},
		{nil, "pentomino", "", true},
	}

	for _, tc := range tests {
		got, err := resolveGameID(tc.args, tc.catalog)
		if (err != nil) != tc.wantErr {
			t.Errorf("resolveGameID(%v, %q) error = %v, wantErr %v", tc.args, tc.catalog, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("resolveGameID(%v, %q) = %q, expected %q", tc.args, tc.catalog, got, tc.want)
		}
	}
}

func useConfigFile(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	blockfall.SetConfigPath(path)
	t.Cleanup(func() { blockfall.SetConfigPath("") })
}

func TestCheckGames(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		ids     []string
		wantErr bool
	}{
		{"stock board", "board: {rows: 20, cols: 10}\n", nil, false},
		{"classic three wide", "board: {rows: 20, cols: 3}\n", []string{blockfall.GameID}, true},
		{"bar five wide", "board: {rows: 20, cols: 5}\n", []string{blockfall.BarGameID}, true},
		{"bar six wide", "board: {rows: 20, cols: 6}\npieces: {catalog: bar}\n", []string{blockfall.GameID, blockfall.BarGameID}, false},
		{"any game too narrow", "board: {rows: 20, cols: 5}\n", nil, true},
		{"unparsable file", "board: [\n", []string{blockfall.GameID}, true},
		{"unknown game", "board: {rows: 20, cols: 10}\n", []string{"pong"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			useConfigFile(t, tc.yaml)
			err := checkGames(tc.ids...)
			if (err != nil) != tc.wantErr {
				t.Errorf("checkGames(%v) error = %v, wantErr %v", tc.ids, err, tc.wantErr)
			}
		})
	}
}
