package columnlayout

import "github.com/gdamore/tcell/v2"

// clipScreen drops every cell written outside its rectangle, so content
// offset past a viewport edge is cut off there.
type clipScreen struct {
	tcell.Screen
	x, y, width, height int
}

func newClipScreen(screen tcell.Screen, x, y, width, height int) *clipScreen {
	return &clipScreen{Screen: screen, x: x, y: y, width: width, height: height}
}

func (s *clipScreen) contains(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

// SetContent implements tcell.Screen.
func (s *clipScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	if s.contains(x, y) {
		s.Screen.SetContent(x, y, primary, combining, style)
	}
}
