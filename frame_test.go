package columnlayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrame_SplitsRect(t *testing.T) {
	main, footer := NewBox(), NewBox()
	frame := NewFrame(main, footer, 1)
	frame.SetRect(0, 0, 10, 5)

	x, y, width, height := main.GetRect()
	assert.Equal(t, []int{0, 0, 10, 4}, []int{x, y, width, height})
	x, y, width, height = footer.GetRect()
	assert.Equal(t, []int{0, 4, 10, 1}, []int{x, y, width, height})
}

func TestFrame_WithoutFooter(t *testing.T) {
	main := NewBox()
	frame := NewFrame(main, nil, 3)
	frame.SetRect(0, 0, 10, 5)

	_, _, _, height := main.GetRect()
	assert.Equal(t, 5, height)
}

func TestFrame_FocusGoesToMain(t *testing.T) {
	main, footer := NewBox(), NewBox()
	frame := NewFrame(main, footer, 1)

	app := NewApplication().SetRoot(frame)

	assert.Same(t, main, app.GetFocus())
	assert.True(t, frame.HasFocus())
	assert.False(t, footer.HasFocus())
}

func TestFrame_RoutesMouseByPosition(t *testing.T) {
	main, footer := NewBox(), NewBox()
	frame := NewFrame(main, footer, 1)
	frame.SetRect(0, 0, 10, 5)

	_, cmd := frame.MouseHandler(MouseLeftDown, mouseAt(3, 4))
	assert.Equal(t, SetFocusCommand{Target: footer}, cmd)

	_, cmd = frame.MouseHandler(MouseLeftDown, mouseAt(3, 1))
	assert.Equal(t, SetFocusCommand{Target: main}, cmd)
}

func TestFrame_DirtyAggregatesChildren(t *testing.T) {
	main, footer := NewBox(), NewBox()
	frame := NewFrame(main, footer, 1)
	frame.MarkClean()
	assert.False(t, frame.IsDirty())

	footer.SetTitle("help")
	assert.True(t, frame.IsDirty())
}
