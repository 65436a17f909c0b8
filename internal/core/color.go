package core

// Color is an ANSI 256-color palette index. ColorDefault leaves the
// terminal's own color in place.
type Color uint8

// Palette entries used by the game chrome. Tile colors come from the theme.
const (
	ColorDefault Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorWhite   Color = 15
	ColorGray    Color = 245
	ColorDim     Color = 240
)

// Style is the foreground/background pair of a screen cell.
type Style struct {
	Fg Color
	Bg Color
}

// Plain is the style of untouched cells.
var Plain = Style{}
