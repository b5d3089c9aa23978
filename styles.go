package columnlayout

import "github.com/gdamore/tcell/v2"

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	ContrastBackgroundColor  tcell.Color // Background color for contrasting elements.
	BorderColor              tcell.Color // Box borders.
	FocusBorderColor         tcell.Color // Borders of the column under the keyboard.
	HeldBorderColor          tcell.Color // Borders of a card being rearranged.
	TitleColor               tcell.Color // Box titles.
	GraphicsColor            tcell.Color // Scroll indicators.
	PrimaryTextColor         tcell.Color // Primary text.
	SecondaryTextColor       tcell.Color // Secondary text (e.g. footers).
}

// Styles defines the theme for applications. The default is a black
// background with white text and a few accent colors.
var Styles = Theme{
	PrimitiveBackgroundColor: tcell.ColorBlack,
	ContrastBackgroundColor:  tcell.ColorNavy,
	BorderColor:              tcell.ColorWhite,
	FocusBorderColor:         tcell.ColorAqua,
	HeldBorderColor:          tcell.ColorYellow,
	TitleColor:               tcell.ColorWhite,
	GraphicsColor:            tcell.ColorGray,
	PrimaryTextColor:         tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorYellow,
}
