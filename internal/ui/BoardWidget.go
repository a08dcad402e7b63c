package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"Sketchpad/internal/board"
)

// BoardWidget shows the board's raster and feeds it pointer events.
// Widget coordinates are surface coordinates: the image is drawn unscaled at the origin.
type BoardWidget struct {
	widget.BaseWidget
	board *board.Board
	last  fyne.Position
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(b *board.Board) *BoardWidget {
	w := &BoardWidget{board: b}
	w.ExtendBaseWidget(w)
	b.OnChange(w.Refresh)
	return w
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.last = e.Position
	w.board.PointerDown(coords(e.Position))
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.last = e.Position
	w.board.PointerUp(coords(e.Position))
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	w.track(e.Position)
}

func (w *BoardWidget) DragEnd() {
	w.board.PointerUp(coords(w.last))
}

func (w *BoardWidget) MouseIn(e *desktop.MouseEvent) {
	w.last = e.Position
}

func (w *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	w.track(e.Position)
}

func (w *BoardWidget) MouseOut() {
	w.board.PointerLeave(coords(w.last))
}

// track forwards a move, or finishes the gesture once the pointer is off the surface.
func (w *BoardWidget) track(pos fyne.Position) {
	w.last = pos
	if !w.inside(pos) {
		w.board.PointerLeave(coords(pos))
		return
	}
	w.board.PointerMove(coords(pos))
}

func (w *BoardWidget) inside(pos fyne.Position) bool {
	width, height := w.board.Size()
	return pos.X >= 0 && pos.Y >= 0 && pos.X < float32(width) && pos.Y < float32(height)
}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return newBoardRenderer(w)
}

func coords(p fyne.Position) (float64, float64) {
	return float64(p.X), float64(p.Y)
}
