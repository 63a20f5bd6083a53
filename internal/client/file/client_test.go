package file

import (
	"os"
	"path/filepath"
	"testing"
	"twitch_prediction_manager/internal/models"
)

func writePlayer(t *testing.T, fc *FileClient, position int, content string) {
	t.Helper()
	path := fc.PlayerNamePath(position)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReadPlayerName(t *testing.T) {
	fc := NewFileClient(t.TempDir())
	writePlayer(t, fc, 1, "  Mang0\n")
	writePlayer(t, fc, 2, "Zain")

	tests := []struct {
		name     string
		position int
		want     string
	}{
		{name: "player one trimmed", position: 1, want: "Mang0"},
		{name: "player two", position: 2, want: "Zain"},
		{name: "position zero", position: 0, want: models.PlaceholderPlayerName},
		{name: "position three", position: 3, want: models.PlaceholderPlayerName},
		{name: "negative position", position: -1, want: models.PlaceholderPlayerName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fc.ReadPlayerName(tt.position); got != tt.want {
				t.Errorf("ReadPlayerName(%d) = %q, want %q", tt.position, got, tt.want)
			}
		})
	}
}

func TestReadPlayerNameMissingFile(t *testing.T) {
	fc := NewFileClient(filepath.Join(t.TempDir(), "does-not-exist"))

	for _, position := range []int{1, 2} {
		if got := fc.ReadPlayerName(position); got != models.PlaceholderPlayerName {
			t.Errorf("ReadPlayerName(%d) = %q, want placeholder", position, got)
		}
	}
}

func TestReadPlayerNameEmptyFile(t *testing.T) {
	fc := NewFileClient(t.TempDir())
	writePlayer(t, fc, 1, " \n\t")

	if got := fc.ReadPlayerName(1); got != models.PlaceholderPlayerName {
		t.Errorf("ReadPlayerName(1) = %q, want placeholder", got)
	}
}

func TestReadPlayerNameRereadsFile(t *testing.T) {
	fc := NewFileClient(t.TempDir())
	writePlayer(t, fc, 2, "Hbox")

	if got := fc.ReadPlayerName(2); got != "Hbox" {
		t.Fatalf("first read = %q, want Hbox", got)
	}

	writePlayer(t, fc, 2, "Cody")

	if got := fc.ReadPlayerName(2); got != "Cody" {
		t.Errorf("reload = %q, want Cody", got)
	}
}

func TestPlayerNamePath(t *testing.T) {
	fc := NewFileClient("/tsh")

	want := filepath.Join("/tsh", "out", "score", "1", "team", "2", "player", "1", "mergedOnlyName.txt")
	if got := fc.PlayerNamePath(2); got != want {
		t.Errorf("PlayerNamePath(2) = %q, want %q", got, want)
	}
}
