package help

import "github.com/gdamore/tcell/v2"

// Styles holds the styles of a help line.
type Styles struct {
	KeyStyle       tcell.Style
	DescStyle      tcell.Style
	SeparatorStyle tcell.Style
	EllipsisStyle  tcell.Style
}

// DefaultStyles returns dim keys and separators with normal descriptions.
func DefaultStyles() Styles {
	dim := tcell.StyleDefault.Dim(true)
	return Styles{
		KeyStyle:       dim,
		DescStyle:      tcell.StyleDefault,
		SeparatorStyle: dim,
		EllipsisStyle:  dim,
	}
}
