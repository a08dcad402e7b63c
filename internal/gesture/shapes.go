package gesture

import (
	"math"

	"Sketchpad/internal/state"
	"Sketchpad/internal/surface"
)

// TriangleVertices returns the triangle spanned by a drag from a to b.
// The apex sits at a+(dx/2, -dy): it points away from the vertical drag direction.
func TriangleVertices(a, b surface.Point) [3]surface.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	return [3]surface.Point{a, a.Add(dx, 0), a.Add(dx/2, -dy)}
}

// SquareRect is the rectangle from a to b. The sides are not forced equal.
func SquareRect(a, b surface.Point) surface.Rect {
	return surface.Rect{X: a.X, Y: a.Y, W: b.X - a.X, H: b.Y - a.Y}
}

// CircleFor centers the circle on the drag box and sizes it by half the box diagonal.
func CircleFor(a, b surface.Point) (surface.Point, float64) {
	w, h := b.X-a.X, b.Y-a.Y
	return a.Add(w/2, h/2), math.Hypot(w, h) / 2
}

// drawShape renders tool's shape for a drag from a to b. In preview mode only
// the outline is drawn; finalize fills first when fill is set, then strokes.
func drawShape(s *surface.Surface, tool state.Tool, a, b surface.Point, st surface.Style, fill, finalize bool) error {
	fill = fill && finalize
	switch tool {
	case state.ToolTriangle:
		v := TriangleVertices(a, b)
		pts := v[:]
		if fill {
			if err := s.FillPolygon(pts, st); err != nil {
				return err
			}
		}
		return s.StrokePolygon(pts, st)
	case state.ToolSquare:
		r := SquareRect(a, b)
		if fill {
			if err := s.FillRect(r, st); err != nil {
				return err
			}
		}
		return s.StrokeRect(r, st)
	case state.ToolCircle:
		c, r := CircleFor(a, b)
		if fill {
			if err := s.FillArc(c, r, st); err != nil {
				return err
			}
		}
		return s.StrokeArc(c, r, st)
	}
	return nil
}
