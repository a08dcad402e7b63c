package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sketchpad/internal/board"
	"Sketchpad/internal/config"
	"Sketchpad/internal/state"
)

func newTestBoard(t *testing.T) *board.Board {
	t.Helper()
	cfg := config.Default()
	cfg.WindowWidth, cfg.WindowHeight = 100, 80
	cfg.CanvasScale = 1
	cfg.ExportDir = t.TempDir()
	b, err := board.New(cfg)
	require.NoError(t, err)
	return b
}

func mouse(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestBoardWidget_MinSizeMatchesSurface(t *testing.T) {
	test.NewTempApp(t)
	w := NewBoardWidget(newTestBoard(t))
	assert.Equal(t, fyne.NewSize(100, 80), w.MinSize())
}

func TestBoardWidget_Gesture(t *testing.T) {
	test.NewTempApp(t)
	b := newTestBoard(t)
	w := NewBoardWidget(b)
	before := b.Snapshot()

	w.MouseDown(mouse(10, 40))
	assert.True(t, b.Dragging())
	w.Dragged(drag(50, 40))
	w.Dragged(drag(90, 40))
	w.MouseUp(mouse(90, 40))
	w.DragEnd()

	assert.False(t, b.Dragging())
	assert.True(t, b.CanUndo())
	assert.False(t, b.Snapshot().Equal(before))
}

func TestBoardWidget_SecondaryButtonIgnored(t *testing.T) {
	test.NewTempApp(t)
	b := newTestBoard(t)
	w := NewBoardWidget(b)

	ev := mouse(10, 10)
	ev.Button = desktop.MouseButtonSecondary
	w.MouseDown(ev)
	assert.False(t, b.Dragging())
}

func TestBoardWidget_DragOffSurfaceFinishes(t *testing.T) {
	test.NewTempApp(t)
	b := newTestBoard(t)
	b.Tools().SetTool(state.ToolSquare)
	w := NewBoardWidget(b)

	w.MouseDown(mouse(10, 10))
	w.Dragged(drag(50, 50))
	w.Dragged(drag(150, 50))
	assert.False(t, b.Dragging())
}

func TestBoardWidget_MouseOutFinishes(t *testing.T) {
	test.NewTempApp(t)
	b := newTestBoard(t)
	w := NewBoardWidget(b)

	w.MouseIn(mouse(5, 5))
	w.MouseDown(mouse(5, 5))
	w.MouseMoved(mouse(60, 60))
	w.MouseOut()
	assert.False(t, b.Dragging())
	assert.True(t, b.CanUndo())
}

func TestToolbar_BindsControls(t *testing.T) {
	a := test.NewTempApp(t)
	b := newTestBoard(t)
	win := a.NewWindow("test")
	tb := NewToolbar(b, win)

	test.Tap(tb.tools[state.ToolCircle])
	assert.Equal(t, state.ToolCircle, b.Tools().Tool())
	assert.Equal(t, widget.HighImportance, tb.tools[state.ToolCircle].Importance)
	assert.Equal(t, widget.MediumImportance, tb.tools[state.ToolBrush].Importance)

	tb.size.OnChanged(20)
	assert.Equal(t, 20.0, b.Tools().Width())
	assert.Equal(t, "20 px", tb.sizeVal.Text)

	test.Tap(tb.fill)
	assert.True(t, b.Tools().Fill())

	tb.setColor(color.NRGBA{B: 255, A: 255})
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, b.Tools().Color())
	assert.Equal(t, "#0000ff", tb.hex.Text)
}

func TestToolbar_HexEntry(t *testing.T) {
	a := test.NewTempApp(t)
	b := newTestBoard(t)
	tb := NewToolbar(b, a.NewWindow("test"))

	tb.hex.SetText("#0f0")
	tb.hex.OnSubmitted(tb.hex.Text)
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, b.Tools().Color())
	assert.Equal(t, "#00ff00", tb.hex.Text)
	assert.Equal(t, color.Color(color.NRGBA{G: 255, A: 255}), tb.current.FillColor)

	tb.hex.SetText("green")
	tb.hex.OnSubmitted(tb.hex.Text)
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, b.Tools().Color(), "bad input keeps the colour")
	assert.Equal(t, "#00ff00", tb.hex.Text)
}

func TestToolbar_HistoryButtons(t *testing.T) {
	a := test.NewTempApp(t)
	b := newTestBoard(t)
	tb := NewToolbar(b, a.NewWindow("test"))
	assert.True(t, tb.undo.Disabled())
	assert.True(t, tb.redo.Disabled())

	b.PointerDown(10, 10)
	b.PointerMove(40, 40)
	b.PointerUp(40, 40)
	assert.False(t, tb.undo.Disabled())

	test.Tap(tb.undo)
	assert.False(t, b.CanUndo())
	assert.True(t, tb.undo.Disabled())
	assert.False(t, tb.redo.Disabled())

	test.Tap(tb.redo)
	assert.True(t, b.CanUndo())
	assert.True(t, tb.redo.Disabled())
}
