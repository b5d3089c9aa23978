package columnlayout

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// Box implements the Primitive interface with an empty background and optional
// elements such as a border, a title and a footer. Box itself does not hold any
// content but serves as the base of all other primitives, which embed it and
// keep their content within its inner rectangle.
type Box struct {
	// The position of the rect.
	x, y, width, height int

	// The inner rect reserved for the box's content. If innerX is negative,
	// the rect is undefined and must be calculated.
	innerX, innerY, innerWidth, innerHeight int

	// Border padding.
	paddingTop, paddingBottom, paddingLeft, paddingRight int

	backgroundColor tcell.Color

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title          string
	titleStyle     tcell.Style
	titleAlignment Alignment

	footer          string
	footerStyle     tcell.Style
	footerAlignment Alignment

	hasFocus bool

	// dirty indicates whether this primitive needs to be redrawn.
	dirty atomic.Bool

	// dirtyParent is notified when this primitive transitions from clean to
	// dirty so containers can be dirtied without scanning all children.
	dirtyParent atomic.Pointer[Box]

	focus, blur func()
}

// NewBox returns a Box without a border.
func NewBox() *Box {
	b := &Box{
		width:           15,
		height:          10,
		innerX:          -1, // Mark as uninitialized.
		backgroundColor: Styles.PrimitiveBackgroundColor,

		borderStyle: tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		borderSet:   BorderSetRound(),

		titleStyle:      tcell.StyleDefault.Foreground(Styles.TitleColor).Background(Styles.PrimitiveBackgroundColor),
		titleAlignment:  AlignmentCenter,
		footerStyle:     tcell.StyleDefault.Foreground(Styles.SecondaryTextColor).Background(Styles.PrimitiveBackgroundColor),
		footerAlignment: AlignmentRight,
	}
	b.dirty.Store(true)
	return b
}

// SetBorderPadding sets the size of the borders around the box content.
func (b *Box) SetBorderPadding(top, bottom, left, right int) *Box {
	if b.paddingTop != top || b.paddingBottom != bottom || b.paddingLeft != left || b.paddingRight != right {
		b.paddingTop, b.paddingBottom, b.paddingLeft, b.paddingRight = top, bottom, left, right
		b.innerX = -1
		b.MarkDirty()
	}
	return b
}

// GetRect returns the current position of the rectangle, x, y, width, and
// height.
func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

// GetInnerRect returns the position of the inner rectangle (x, y, width,
// height), without the border and without any padding. Width and height values
// clamp to 0.
func (b *Box) GetInnerRect() (int, int, int, int) {
	if b.innerX >= 0 {
		return b.innerX, b.innerY, b.innerWidth, b.innerHeight
	}

	x, y, width, height := b.GetRect()
	if b.title != "" || b.borders.Has(BordersTop) {
		y++
		height--
	}
	if b.footer != "" || b.borders.Has(BordersBottom) {
		height--
	}
	if b.borders.Has(BordersLeft) {
		x++
		width--
	}
	if b.borders.Has(BordersRight) {
		width--
	}

	x += b.paddingLeft
	y += b.paddingTop
	width -= b.paddingLeft + b.paddingRight
	height -= b.paddingTop + b.paddingBottom

	b.innerX, b.innerY, b.innerWidth, b.innerHeight = x, y, max(width, 0), max(height, 0)
	return b.innerX, b.innerY, b.innerWidth, b.innerHeight
}

// SetRect sets a new position of the primitive.
func (b *Box) SetRect(x, y, width, height int) {
	if b.x != x || b.y != y || b.width != width || b.height != height {
		b.x, b.y, b.width, b.height = x, y, width, height
		b.innerX = -1
		b.MarkDirty()
	}
}

// IsDirty returns whether this primitive needs redrawing.
func (b *Box) IsDirty() bool {
	return b.dirty.Load()
}

// MarkDirty marks this primitive, and the container it is bound to, as
// needing a redraw.
func (b *Box) MarkDirty() {
	if b.dirty.Swap(true) {
		return
	}
	if parent := b.dirtyParent.Load(); parent != nil {
		parent.MarkDirty()
	}
}

// MarkClean marks this primitive as clean.
func (b *Box) MarkClean() {
	b.dirty.Store(false)
}

func (b *Box) setDirtyParent(parent *Box) {
	if parent == nil || parent == b {
		return
	}
	b.dirtyParent.Store(parent)
}

func (b *Box) clearDirtyParent(parent *Box) {
	if parent == nil {
		return
	}
	b.dirtyParent.CompareAndSwap(parent, nil)
}

type dirtyParentSetter interface {
	setDirtyParent(parent *Box)
	clearDirtyParent(parent *Box)
}

func bindDirtyParent(child Primitive, parent *Box) {
	if setter, ok := child.(dirtyParentSetter); ok && parent != nil {
		setter.setDirtyParent(parent)
	}
}

func unbindDirtyParent(child Primitive, parent *Box) {
	if setter, ok := child.(dirtyParentSetter); ok && parent != nil {
		setter.clearDirtyParent(parent)
	}
}

// InputHandler ignores key events.
func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

// MouseHandler takes the focus on a left click inside the box.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return nil, SetFocusCommand{Target: b}
	}
	return nil, nil
}

// InRect returns true if the given coordinate is within the bounds of the box's
// rectangle.
func (b *Box) InRect(x, y int) bool {
	rectX, rectY, width, height := b.GetRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// InInnerRect returns true if the given coordinate is within the box's inner
// rectangle.
func (b *Box) InInnerRect(x, y int) bool {
	rectX, rectY, width, height := b.GetInnerRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// SetBackgroundColor sets the box's background color.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	if b.backgroundColor != color {
		b.backgroundColor = color
		b.borderStyle = b.borderStyle.Background(color)
		b.titleStyle = b.titleStyle.Background(color)
		b.footerStyle = b.footerStyle.Background(color)
		b.MarkDirty()
	}
	return b
}

// GetBackgroundColor returns the box's background color.
func (b *Box) GetBackgroundColor() tcell.Color {
	return b.backgroundColor
}

// GetBorders returns the borders.
func (b *Box) GetBorders() Borders {
	return b.borders
}

// SetBorders sets which borders to draw.
func (b *Box) SetBorders(flag Borders) *Box {
	if b.borders != flag {
		b.borders = flag
		b.innerX = -1
		b.MarkDirty()
	}
	return b
}

// SetBorderSet sets the glyphs of the border.
func (b *Box) SetBorderSet(borderSet BorderSet) *Box {
	if b.borderSet != borderSet {
		b.borderSet = borderSet
		b.MarkDirty()
	}
	return b
}

// SetBorderColor sets the border's foreground color.
func (b *Box) SetBorderColor(color tcell.Color) *Box {
	return b.SetBorderStyle(b.borderStyle.Foreground(color))
}

// SetBorderStyle sets the box's border style.
func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	if b.borderStyle != style {
		b.borderStyle = style
		b.MarkDirty()
	}
	return b
}

// GetTitle returns the box's current title.
func (b *Box) GetTitle() string {
	return b.title
}

// SetTitle sets the box's title.
func (b *Box) SetTitle(title string) *Box {
	if b.title != title {
		b.title = title
		b.innerX = -1
		b.MarkDirty()
	}
	return b
}

// SetTitleAlignment sets the alignment of the title.
func (b *Box) SetTitleAlignment(alignment Alignment) *Box {
	if b.titleAlignment != alignment {
		b.titleAlignment = alignment
		b.MarkDirty()
	}
	return b
}

// GetFooter returns the box's current footer.
func (b *Box) GetFooter() string {
	return b.footer
}

// SetFooter sets the box's footer.
func (b *Box) SetFooter(footer string) *Box {
	if b.footer != footer {
		b.footer = footer
		b.innerX = -1
		b.MarkDirty()
	}
	return b
}

// Draw draws this primitive onto the screen.
func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws the box frame for a primitive p embedding it.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	if b.width <= 0 || b.height <= 0 {
		return
	}

	fill(screen, b.x, b.y, b.width, b.height, tcell.StyleDefault.Background(b.backgroundColor))

	if b.borders != BordersNone && b.width >= 2 && b.height >= 2 {
		b.drawBorder(screen)
	}

	if b.title != "" && b.width >= 4 {
		b.drawCaption(screen, b.title, b.y, b.titleAlignment, b.titleStyle)
	}
	if b.footer != "" && b.width >= 4 {
		b.drawCaption(screen, b.footer, b.y+b.height-1, b.footerAlignment, b.footerStyle)
	}

	b.innerX = -1
	b.GetInnerRect()
}

func (b *Box) drawBorder(screen tcell.Screen) {
	right, bottom := b.x+b.width-1, b.y+b.height-1
	if b.borders.Has(BordersTop) {
		for x := b.x + 1; x < right; x++ {
			setCell(screen, x, b.y, b.borderSet.Top, b.borderStyle)
		}
	}
	if b.borders.Has(BordersBottom) {
		for x := b.x + 1; x < right; x++ {
			setCell(screen, x, bottom, b.borderSet.Bottom, b.borderStyle)
		}
	}
	if b.borders.Has(BordersLeft) {
		for y := b.y + 1; y < bottom; y++ {
			setCell(screen, b.x, y, b.borderSet.Left, b.borderStyle)
		}
	}
	if b.borders.Has(BordersRight) {
		for y := b.y + 1; y < bottom; y++ {
			setCell(screen, right, y, b.borderSet.Right, b.borderStyle)
		}
	}

	corners := []struct {
		edges Borders
		x, y  int
		glyph string
	}{
		{BordersTop | BordersLeft, b.x, b.y, b.borderSet.TopLeft},
		{BordersTop | BordersRight, right, b.y, b.borderSet.TopRight},
		{BordersBottom | BordersLeft, b.x, bottom, b.borderSet.BottomLeft},
		{BordersBottom | BordersRight, right, bottom, b.borderSet.BottomRight},
	}
	for _, corner := range corners {
		if b.borders&corner.edges == corner.edges {
			setCell(screen, corner.x, corner.y, corner.glyph, b.borderStyle)
		}
	}
}

// drawCaption prints a title or footer on row y, ending with an ellipsis
// when it does not fit.
func (b *Box) drawCaption(screen tcell.Screen, text string, y int, alignment Alignment, style tcell.Style) {
	start, end, _ := printWithStyle(screen, text, b.x+1, y, 0, b.width-2, alignment, style, false)
	printed := end - start
	if printed > 0 && len(text)-printed > 0 {
		xEllipsis := b.x + b.width - 2
		if alignment == AlignmentRight {
			xEllipsis = b.x + 1
		}
		setCell(screen, xEllipsis, y, SemigraphicsHorizontalEllipsis, style)
	}
}

// SetFocusFunc sets a callback function which is invoked when this primitive
// receives focus. Set to nil to remove the callback function.
func (b *Box) SetFocusFunc(callback func()) *Box {
	b.focus = callback
	return b
}

// SetBlurFunc sets a callback function which is invoked when this primitive
// loses focus. Set to nil to remove the callback function.
func (b *Box) SetBlurFunc(callback func()) *Box {
	b.blur = callback
	return b
}

// Focus is called when this primitive directly receives focus.
func (b *Box) Focus(delegate func(p Primitive)) {
	if !b.hasFocus {
		b.hasFocus = true
		b.MarkDirty()
	}
	if b.focus != nil {
		b.focus()
	}
}

// Blur is called when this primitive directly loses focus.
func (b *Box) Blur() {
	if b.hasFocus {
		b.hasFocus = false
		b.MarkDirty()
	}
	if b.blur != nil {
		b.blur()
	}
}

// HasFocus returns whether or not this primitive has focus.
func (b *Box) HasFocus() bool {
	return b.hasFocus
}
