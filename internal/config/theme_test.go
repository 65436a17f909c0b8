package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestEmbeddedThemeMatchesDefault(t *testing.T) {
	got, err := ParseTheme(defaultThemeYAML)
	if err != nil {
		t.Fatalf("ParseTheme(embedded) error = %v", err)
	}
	want := DefaultTheme()
	for _, v := range []int{0, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096} {
		if got.TileStyle(v) != want.TileStyle(v) {
			t.Errorf("TileStyle(%d) = %+v, want %+v", v, got.TileStyle(v), want.TileStyle(v))
		}
	}
}

func TestTileStyle(t *testing.T) {
	theme := DefaultTheme()
	tests := []struct {
		value int
		want  core.Style
	}{
		{0, theme.Empty.Style()},
		{2, core.Style{Fg: 236, Bg: 230}},
		{2048, core.Style{Fg: core.ColorWhite, Bg: 141}},
		{4096, theme.Overflow.Style()},
		{131072, theme.Overflow.Style()},
	}
	for _, tt := range tests {
		if got := theme.TileStyle(tt.value); got != tt.want {
			t.Errorf("TileStyle(%d) = %+v, want %+v", tt.value, got, tt.want)
		}
	}
}

func TestParseThemePartial(t *testing.T) {
	theme, err := ParseTheme([]byte("name: mono\noverflow: { fg: 1, bg: 2 }\n"))
	if err != nil {
		t.Fatalf("ParseTheme() error = %v", err)
	}
	if theme.Name != "mono" {
		t.Errorf("Name = %q", theme.Name)
	}
	if theme.TileStyle(8192) != (core.Style{Fg: 1, Bg: 2}) {
		t.Errorf("overflow not applied: %+v", theme.TileStyle(8192))
	}
	if theme.TileStyle(2) != DefaultTheme().TileStyle(2) {
		t.Error("missing tiles should keep defaults")
	}
}

func TestParseThemeRejectsBadTile(t *testing.T) {
	tests := []string{
		"tiles:\n  3: { fg: 1, bg: 2 }\n",
		"tiles:\n  0: { fg: 1, bg: 2 }\n",
		"tiles: [1, 2]\n",
		"board: {fg: 999}\n",
	}
	for _, doc := range tests {
		if _, err := ParseTheme([]byte(doc)); err == nil {
			t.Errorf("ParseTheme(%q) expected error", doc)
		}
	}
}

func TestLoadThemeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("name: custom\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme() error = %v", err)
	}
	if theme.Name != "custom" {
		t.Errorf("Name = %q, want custom", theme.Name)
	}

	if _, err := LoadTheme(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom theme")
	}
}

func TestLoadThemeFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	theme, err := LoadTheme("")
	if err != nil {
		t.Fatalf("LoadTheme() error = %v", err)
	}
	if theme.Name != "classic" {
		t.Errorf("Name = %q, want classic", theme.Name)
	}
}
