package core

// Color identifies the foreground color of a screen cell as an ANSI 256-color
// code. The zero value means "terminal default" (no style); code 0 is plain
// black in the ANSI palette, which no game element uses, so reserving it
// costs nothing.
type Color uint8

// Predefined colors for common game elements.
const (
	ColorDefault       Color = 0
	ColorRed           Color = 1
	ColorGreen         Color = 2
	ColorYellow        Color = 3
	ColorBlue          Color = 4
	ColorMagenta       Color = 5
	ColorCyan          Color = 6
	ColorWhite         Color = 7
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
	ColorOrange        Color = 208
	ColorGray          Color = 245
)

// Color256 returns the Color for a raw ANSI 256-color code.
// Used by games that need shades outside the named palette, such as
// the 6x6x6 color cube (codes 16-231).
func Color256(code uint8) Color {
	return Color(code)
}

// CubeColor returns the ANSI code for a color-cube entry with channel
// values r, g, b in [0, 5].
func CubeColor(r, g, b int) Color {
	r = Clamp(r, 0, 5)
	g = Clamp(g, 0, 5)
	b = Clamp(b, 0, 5)
	return Color(16 + 36*r + 6*g + b)
}
