package state

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
)

var (
	ErrUnknownTool  = errors.New("unknown tool")
	ErrInvalidColor = errors.New("invalid color")
)

// Tool is the active drawing tool. Exactly one is active at a time.
type Tool int

const (
	ToolBrush Tool = iota
	ToolEraser
	ToolTriangle
	ToolSquare
	ToolCircle
)

// AllTools lists the tools in toolbar order.
var AllTools = []Tool{ToolBrush, ToolEraser, ToolTriangle, ToolSquare, ToolCircle}

var toolNames = map[Tool]string{
	ToolBrush:    "brush",
	ToolEraser:   "eraser",
	ToolTriangle: "triangle",
	ToolSquare:   "square",
	ToolCircle:   "circle",
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

// IsShape reports whether the tool draws a previewed shape rather than a freehand stroke.
func (t Tool) IsShape() bool {
	return t == ToolTriangle || t == ToolSquare || t == ToolCircle
}

// ParseTool maps a tool name back to its Tool.
func ParseTool(name string) (Tool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range toolNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownTool)
}

// Bounds of a stroke width.
const (
	MinStrokeWidth = 1.0
	MaxStrokeWidth = 50.0
)

// Tools is the mutable tool selection shared by the UI controls and the drawing code.
type Tools struct {
	tool  Tool
	color color.NRGBA
	width float64
	fill  bool
}

// NewTools returns a brush selection with the given colour and width.
func NewTools(c color.Color, width float64, fill bool) *Tools {
	t := &Tools{tool: ToolBrush, fill: fill}
	t.SetColor(c)
	t.SetWidth(width)
	return t
}

func (t *Tools) Tool() Tool         { return t.tool }
func (t *Tools) Color() color.NRGBA { return t.color }
func (t *Tools) Width() float64     { return t.width }
func (t *Tools) Fill() bool         { return t.fill }
func (t *Tools) SetFill(fill bool)  { t.fill = fill }

// SetTool selects a tool. Values outside the enum are ignored.
func (t *Tools) SetTool(tool Tool) {
	if _, ok := toolNames[tool]; ok {
		t.tool = tool
	}
}

// SetColor stores c as an opaque NRGBA colour.
func (t *Tools) SetColor(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xff
	t.color = n
}

// SetHexColor parses and stores a "#rrggbb" colour.
func (t *Tools) SetHexColor(hex string) error {
	c, err := ParseHexColor(hex)
	if err != nil {
		return err
	}
	t.SetColor(c)
	return nil
}

// SetWidth stores the stroke width, clamped to [MinStrokeWidth, MaxStrokeWidth].
// NaN falls back to MinStrokeWidth.
func (t *Tools) SetWidth(w float64) {
	if math.IsNaN(w) {
		w = MinStrokeWidth
	}
	t.width = min(max(w, MinStrokeWidth), MaxStrokeWidth)
}

// StrokeColor is the colour the active tool paints with. The eraser paints background.
func (t *Tools) StrokeColor(background color.Color) color.Color {
	if t.tool == ToolEraser {
		return background
	}
	return t.color
}

// ParseHexColor accepts "#rgb" and "#rrggbb" (the leading '#' is optional).
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	var rgb [3]uint8
	for i := range rgb {
		hi, ok1 := hexDigit(hex[2*i])
		lo, ok2 := hexDigit(hex[2*i+1])
		if !ok1 || !ok2 {
			return color.NRGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
		}
		rgb[i] = hi<<4 | lo
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
}

// HexColor formats c as "#rrggbb".
func HexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
