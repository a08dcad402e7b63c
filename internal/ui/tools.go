package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"Sketchpad/internal/board"
	"Sketchpad/internal/state"
)

var palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 255, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 255, A: 255}, // Yellow
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar binds each control to exactly one tool-state mutation or board operation.
type Toolbar struct {
	board  *board.Board
	window fyne.Window

	tools   map[state.Tool]*widget.Button
	current *canvas.Rectangle
	hex     *widget.Entry
	size    *widget.Slider
	sizeVal *widget.Label
	fill    *widget.Check
	undo    *widget.Button
	redo    *widget.Button

	content fyne.CanvasObject
}

var toolLabels = map[state.Tool]string{
	state.ToolBrush:    "Brush",
	state.ToolEraser:   "Eraser",
	state.ToolTriangle: "Triangle",
	state.ToolSquare:   "Square",
	state.ToolCircle:   "Circle",
}

// NewToolbar builds the controls for b. win parents the dialogs.
func NewToolbar(b *board.Board, win fyne.Window) *Toolbar {
	t := &Toolbar{board: b, window: win, tools: make(map[state.Tool]*widget.Button)}

	toolBox := container.NewHBox()
	for _, tool := range state.AllTools {
		btn := widget.NewButton(toolLabels[tool], func() { t.selectTool(tool) })
		t.tools[tool] = btn
		toolBox.Add(btn)
	}

	// --- Color Palette ---
	t.current = canvas.NewRectangle(b.Tools().Color())
	t.current.SetMinSize(fyne.NewSize(28, 28))
	colorBox := container.NewHBox(t.current)
	for _, c := range palette {
		colorBox.Add(newColorSwatch(c, t.setColor))
	}
	colorBox.Add(widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), t.pickColor))
	t.hex = widget.NewEntry()
	t.hex.SetPlaceHolder("#rrggbb")
	t.hex.SetText(state.HexColor(b.Tools().Color()))
	t.hex.OnSubmitted = t.setHex
	colorBox.Add(container.New(layout.NewGridWrapLayout(fyne.NewSize(90, 35)), t.hex))

	// --- Stroke Width Slider ---
	t.sizeVal = widget.NewLabel("")
	t.size = widget.NewSlider(state.MinStrokeWidth, state.MaxStrokeWidth)
	t.size.Step = 1
	t.size.SetValue(b.Tools().Width())
	t.size.OnChanged = t.setWidth
	t.setWidth(t.size.Value)
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.size)

	t.fill = widget.NewCheck("Fill", b.Tools().SetFill)
	t.fill.SetChecked(b.Tools().Fill())

	t.undo = widget.NewButtonWithIcon("", theme.ContentUndoIcon(), t.Undo)
	t.redo = widget.NewButtonWithIcon("", theme.ContentRedoIcon(), t.Redo)
	actions := container.NewHBox(
		t.undo,
		t.redo,
		widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), t.Clear),
		widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() { savePNG(b, win) }),
		widget.NewButtonWithIcon("PDF", theme.DocumentPrintIcon(), func() { savePDF(b, win) }),
	)

	// --- Assemble everything ---
	t.content = container.NewHBox(
		widget.NewLabel("Tool:"),
		toolBox,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		t.sizeVal,
		t.fill,
		widget.NewSeparator(),
		actions,
		layout.NewSpacer(),
	)

	b.OnChange(t.refreshHistory)
	t.selectTool(b.Tools().Tool())
	t.refreshHistory()
	return t
}

// Object is the toolbar's canvas object for layout.
func (t *Toolbar) Object() fyne.CanvasObject { return t.content }

func (t *Toolbar) Undo()  { t.board.Undo() }
func (t *Toolbar) Redo()  { t.board.Redo() }
func (t *Toolbar) Clear() { t.board.Clear() }

func (t *Toolbar) selectTool(tool state.Tool) {
	t.board.Tools().SetTool(tool)
	for k, btn := range t.tools {
		if k == t.board.Tools().Tool() {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

func (t *Toolbar) setColor(c color.Color) {
	t.board.Tools().SetColor(c)
	t.showColor()
}

// setHex applies a typed colour. Bad input is logged and the field reverts.
func (t *Toolbar) setHex(text string) {
	if err := t.board.Tools().SetHexColor(text); err != nil {
		logrus.WithError(err).Warn("ignoring colour")
	}
	t.showColor()
}

func (t *Toolbar) showColor() {
	c := t.board.Tools().Color()
	t.current.FillColor = c
	t.current.Refresh()
	t.hex.SetText(state.HexColor(c))
}

func (t *Toolbar) setWidth(w float64) {
	t.board.Tools().SetWidth(w)
	t.sizeVal.SetText(formatWidth(t.board.Tools().Width()))
}

func (t *Toolbar) pickColor() {
	picker := dialog.NewColorPicker("Stroke color", "Pick a color", t.setColor, t.window)
	picker.Advanced = true
	picker.SetColor(t.board.Tools().Color())
	picker.Show()
}

func (t *Toolbar) refreshHistory() {
	setEnabled(t.undo, t.board.CanUndo())
	setEnabled(t.redo, t.board.CanRedo())
}

func formatWidth(w float64) string {
	return fmt.Sprintf("%.0f px", w)
}

func setEnabled(btn *widget.Button, on bool) {
	if on {
		btn.Enable()
	} else {
		btn.Disable()
	}
}
