package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/core"
)

//go:embed defaults/theme.yaml
var defaultThemeYAML []byte

// Colors is a foreground/background pair in ANSI 256-color codes.
type Colors struct {
	Fg core.Color `yaml:"fg"`
	Bg core.Color `yaml:"bg"`
}

// Style converts the pair to a screen style.
func (c Colors) Style() core.Style {
	return core.Style{Fg: c.Fg, Bg: c.Bg}
}

// Theme maps tile values to colors.
type Theme struct {
	Name     string         `yaml:"name"`
	Board    Colors         `yaml:"board"`    // grid lines
	Empty    Colors         `yaml:"empty"`    // empty cells
	Tiles    map[int]Colors `yaml:"tiles"`    // keyed by tile value
	Overflow Colors         `yaml:"overflow"` // tiles without their own entry
}

// TileStyle returns the style for a cell holding value (0 = empty).
func (t Theme) TileStyle(value int) core.Style {
	if value == 0 {
		return t.Empty.Style()
	}
	if c, ok := t.Tiles[value]; ok {
		return c.Style()
	}
	return t.Overflow.Style()
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		Name:  "classic",
		Board: Colors{Fg: core.ColorGray},
		Empty: Colors{Fg: core.ColorGray, Bg: 252},
		Tiles: map[int]Colors{
			2:    {Fg: 236, Bg: 230},
			4:    {Fg: 236, Bg: 229},
			8:    {Fg: core.ColorWhite, Bg: 215},
			16:   {Fg: core.ColorWhite, Bg: 209},
			32:   {Fg: core.ColorWhite, Bg: 210},
			64:   {Fg: core.ColorWhite, Bg: 203},
			128:  {Fg: 236, Bg: 120},
			256:  {Fg: core.ColorWhite, Bg: 77},
			512:  {Fg: core.ColorWhite, Bg: 111},
			1024: {Fg: core.ColorWhite, Bg: 69},
			2048: {Fg: core.ColorWhite, Bg: 141},
		},
		Overflow: Colors{Fg: core.ColorWhite, Bg: 93},
	}
}

// ParseTheme decodes a theme document. Keys missing from data keep the
// values of the default theme.
func ParseTheme(data []byte) (Theme, error) {
	theme := DefaultTheme()
	theme.Tiles = nil

	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Theme{}, err
	}
	if theme.Tiles == nil {
		theme.Tiles = DefaultTheme().Tiles
	}
	for value := range theme.Tiles {
		if value < 2 || value&(value-1) != 0 {
			return Theme{}, fmt.Errorf("tile %d is not a power of two", value)
		}
	}
	return theme, nil
}

// LoadTheme loads the tile palette.
// Search order: customPath -> ~/.t2048/theme.yaml -> ./configs/theme.yaml -> embedded default
func LoadTheme(customPath string) (Theme, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTheme(), fmt.Errorf("config: failed to read theme %s: %w", customPath, err)
		}
		theme, err := ParseTheme(data)
		if err != nil {
			return DefaultTheme(), fmt.Errorf("config: failed to parse theme %s: %w", customPath, err)
		}
		return theme, nil
	}

	if userPath := userFilePath("theme.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if theme, err := ParseTheme(data); err == nil {
				return theme, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "theme.yaml")); err == nil {
		if theme, err := ParseTheme(data); err == nil {
			return theme, nil
		}
	}

	theme, err := ParseTheme(defaultThemeYAML)
	if err != nil {
		return DefaultTheme(), nil // Fallback to hardcoded if embed fails
	}
	return theme, nil
}

// userFilePath returns a path under ~/.t2048, or empty if home is unavailable.
func userFilePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, name)
}
