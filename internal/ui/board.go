package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

type boardRenderer struct {
	widget *BoardWidget
	image  *canvas.Image
}

func newBoardRenderer(w *BoardWidget) *boardRenderer {
	img := canvas.NewImageFromImage(w.board.Image())
	img.FillMode = canvas.ImageFillOriginal
	img.ScaleMode = canvas.ImageScalePixels
	return &boardRenderer{widget: w, image: img}
}

func (r *boardRenderer) size() fyne.Size {
	width, height := r.widget.board.Size()
	return fyne.NewSize(float32(width), float32(height))
}

func (r *boardRenderer) Layout(fyne.Size) {
	r.image.Move(fyne.NewPos(0, 0))
	r.image.Resize(r.size())
}

func (r *boardRenderer) MinSize() fyne.Size { return r.size() }

func (r *boardRenderer) Refresh() {
	r.image.Image = r.widget.board.Image()
	r.image.Refresh()
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}

func (r *boardRenderer) Destroy() {}
