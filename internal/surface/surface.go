// Package surface is the fixed-size raster the sketchpad draws on.
//
// Every operation rasterises immediately into the pixel buffer; nothing is
// kept in vector form. The only way back to an earlier state is Restore.
package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// ErrSnapshotMismatch is returned by Restore for a snapshot of another size.
var ErrSnapshotMismatch = errors.New("snapshot does not match surface size")

// ErrEmptyPolygon is returned when a polygon has fewer than two points.
var ErrEmptyPolygon = errors.New("polygon needs at least two points")

// Point is a surface-local coordinate.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Rect is an axis-aligned rectangle given by its origin and size.
// Width and Height may be negative; drawing normalises them.
type Rect struct {
	X, Y, W, H float64
}

// Normalize returns the same rectangle with a non-negative width and height.
func (r Rect) Normalize() Rect {
	if r.W < 0 {
		r.X, r.W = r.X+r.W, -r.W
	}
	if r.H < 0 {
		r.Y, r.H = r.Y+r.H, -r.H
	}
	return r
}

// Style is the paint applied by a single draw call.
type Style struct {
	Color color.Color
	Width float64
}

// Surface owns the pixel buffer and the gg context that rasterises into it.
// It is not safe for concurrent use.
type Surface struct {
	width, height int
	background    color.Color

	pixmap *gg.Pixmap
	dc     *gg.Context

	pathOpen bool
	last     Point
}

// New allocates a width x height surface cleared to background.
func New(width, height int, background color.Color) *Surface {
	width, height = max(width, 1), max(height, 1)
	pm := gg.NewPixmap(width, height)
	s := &Surface{
		width:      width,
		height:     height,
		background: background,
		pixmap:     pm,
		dc:         gg.NewContext(width, height, gg.WithPixmap(pm)),
	}
	s.dc.SetLineJoin(gg.LineJoinRound)
	s.Clear()
	return s
}

func (s *Surface) Size() (int, int)        { return s.width, s.height }
func (s *Surface) Background() color.Color { return s.background }

// Clear fills the whole buffer with the background colour and drops any open path.
func (s *Surface) Clear() {
	s.dc.ClearPath()
	s.pathOpen = false
	s.dc.ClearWithColor(gg.FromColor(s.background))
}

// BeginPath starts a freehand stroke at p.
func (s *Surface) BeginPath(p Point) {
	s.pathOpen = true
	s.last = p
}

// StrokeLineTo extends the open path to p and strokes the new segment at once.
// Without an open path it starts one at p.
func (s *Surface) StrokeLineTo(p Point, st Style) error {
	if !s.pathOpen {
		s.BeginPath(p)
	}
	from := s.last
	s.last = p

	s.apply(st)
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.MoveTo(from.X, from.Y)
	s.dc.LineTo(p.X, p.Y)
	return s.dc.Stroke()
}

// EndPath closes the freehand stroke.
func (s *Surface) EndPath() {
	s.pathOpen = false
}

// PathOpen reports whether a freehand stroke is in progress.
func (s *Surface) PathOpen() bool { return s.pathOpen }

func (s *Surface) FillRect(r Rect, st Style) error {
	s.rect(r, st)
	return s.dc.Fill()
}

func (s *Surface) StrokeRect(r Rect, st Style) error {
	s.rect(r, st)
	return s.dc.Stroke()
}

func (s *Surface) FillArc(center Point, radius float64, st Style) error {
	s.arc(center, radius, st)
	return s.dc.Fill()
}

func (s *Surface) StrokeArc(center Point, radius float64, st Style) error {
	s.arc(center, radius, st)
	return s.dc.Stroke()
}

func (s *Surface) FillPolygon(points []Point, st Style) error {
	if err := s.polygon(points, st); err != nil {
		return err
	}
	return s.dc.Fill()
}

func (s *Surface) StrokePolygon(points []Point, st Style) error {
	if err := s.polygon(points, st); err != nil {
		return err
	}
	return s.dc.Stroke()
}

func (s *Surface) apply(st Style) {
	c := st.Color
	if c == nil {
		c = color.Black
	}
	s.dc.ClearPath()
	s.dc.SetColor(c)
	s.dc.SetLineWidth(max(st.Width, 1))
	s.dc.SetLineCap(gg.LineCapButt)
}

func (s *Surface) rect(r Rect, st Style) {
	s.apply(st)
	r = r.Normalize()
	s.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
}

func (s *Surface) arc(center Point, radius float64, st Style) {
	s.apply(st)
	s.dc.DrawCircle(center.X, center.Y, max(radius, 0))
}

func (s *Surface) polygon(points []Point, st Style) error {
	if len(points) < 2 {
		return fmt.Errorf("%d points: %w", len(points), ErrEmptyPolygon)
	}
	s.apply(st)
	s.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	return nil
}

// At returns the pixel at (x, y). Out-of-range coordinates read as transparent.
func (s *Surface) At(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return color.NRGBA{}
	}
	i := (y*s.width + x) * 4
	d := s.pixmap.Data()
	return color.NRGBA{R: d[i], G: d[i+1], B: d[i+2], A: d[i+3]}
}

// Image copies the current buffer into a new image.
func (s *Surface) Image() *image.RGBA {
	return s.pixmap.ToImage()
}

// EncodePNG writes the full buffer as a PNG image.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}
