// Package plot computes the geometry of one frame of the waveform. It has
// no drawing dependency; the view turns a Frame into draw calls.
package plot

import (
	"fmt"
	"image/color"
	"trading_game/internal/game/bias"
	"trading_game/internal/game/session"
)

const (
	VerticalDivisions   = 10
	HorizontalDivisions = 6

	MarkerRadius    = 8.0
	IndicatorRadius = 6.0
	CurveWidth      = 3.0
	ZeroLineWidth   = 2.0
	DashLength      = 5.0
)

// Viewport maps function space onto a W x H canvas.
type Viewport struct {
	Width  float64
	Height float64
}

// NewViewport from integer canvas size.
func NewViewport(w, h int) Viewport {
	return Viewport{Width: float64(w), Height: float64(h)}
}

// X maps pixel column i to the function coordinate at animation time t.
func (v Viewport) X(i, t float64) float64 {
	return i/v.Width*session.Span + t
}

// PixelX is the inverse of X.
func (v Viewport) PixelX(x, t float64) float64 {
	return (x - t) / session.Span * v.Width
}

// PixelY maps a value to a canvas row; +-2 spans the canvas.
func (v Viewport) PixelY(y float64) float64 {
	return v.Height/2 - y*v.Height/4
}

// ZeroY is the row of y = 0.
func (v Viewport) ZeroY() float64 {
	return v.Height / 2
}

// ContainsX reports whether a pixel column is on the canvas.
func (v Viewport) ContainsX(px float64) bool {
	return px >= 0 && px <= v.Width
}

type Point struct {
	X, Y float64
}

type Segment struct {
	From, To Point
}

// Column is a one pixel wide fill between the zero line and the curve.
type Column struct {
	X     float64
	Top   float64
	Bot   float64
	Above bool
}

type Label struct {
	Text string
	At   Point
}

type Circle struct {
	Center Point
	Radius float64
	Fill   color.NRGBA
	Stroke color.NRGBA
}

// Frame is everything drawn for one animation step, back to front.
type Frame struct {
	Viewport   Viewport
	Fills      []Column
	Grid       []Segment
	Labels     []Label
	ZeroLine   []Segment
	Curve      []Point
	CurveColor color.NRGBA
	Marker     Circle
	Indicator  *Circle
	Connector  *Segment
}

// Build Раскладка кадра для сессии s и функции f
func Build(s session.Session, f bias.Function, vp Viewport) Frame {
	t := s.AnimationTime()
	fr := Frame{
		Viewport:   vp,
		CurveColor: curveColor(f),
	}

	width := int(vp.Width)
	fr.Curve = make([]Point, 0, width+1)
	fr.Fills = make([]Column, 0, width+1)
	zero := vp.ZeroY()
	for i := 0; i <= width; i++ {
		px := float64(i)
		y := f.Evaluate(vp.X(px, t))
		py := vp.PixelY(y)
		fr.Curve = append(fr.Curve, Point{X: px, Y: py})

		col := Column{X: px, Above: y >= 0}
		if col.Above {
			col.Top, col.Bot = py, zero
		} else {
			col.Top, col.Bot = zero, py
		}
		fr.Fills = append(fr.Fills, col)
	}

	fr.Grid = grid(vp)
	fr.Labels = tickLabels(vp)
	fr.ZeroLine = dashes(vp)

	rightX := vp.Width - 1
	rightY := vp.PixelY(f.Evaluate(s.RightEdgeX()))
	fr.Marker = Circle{
		Center: Point{X: rightX, Y: rightY},
		Radius: MarkerRadius,
		Fill:   MarkerColor(s.State()),
		Stroke: MarkerStroke,
	}

	if x, ok := s.IndicatorX(); ok {
		v := f.Evaluate(x)
		px := vp.PixelX(x, t)
		if vp.ContainsX(px) {
			fill := IndicatorDown
			if v > 0 {
				fill = IndicatorUp
			}
			fr.Indicator = &Circle{
				Center: Point{X: px, Y: vp.PixelY(v)},
				Radius: IndicatorRadius,
				Fill:   fill,
			}
			fr.Connector = &Segment{From: fr.Marker.Center, To: fr.Indicator.Center}
		}
	}
	return fr
}

// MarkerColor of the right-edge marker per state.
func MarkerColor(st session.State) color.NRGBA {
	switch st {
	case session.Waiting:
		return MarkerWaiting
	case session.Active:
		return MarkerActive
	}
	return MarkerResolved
}

func curveColor(f bias.Function) color.NRGBA {
	c, err := ParseHex(f.Color)
	if err != nil {
		return LabelColor
	}
	return c
}

func grid(vp Viewport) []Segment {
	lines := make([]Segment, 0, VerticalDivisions+HorizontalDivisions+2)
	for i := 0; i <= VerticalDivisions; i++ {
		x := float64(i) / VerticalDivisions * vp.Width
		lines = append(lines, Segment{From: Point{X: x}, To: Point{X: x, Y: vp.Height}})
	}
	for i := 0; i <= HorizontalDivisions; i++ {
		y := float64(i) / HorizontalDivisions * vp.Height
		lines = append(lines, Segment{From: Point{Y: y}, To: Point{X: vp.Width, Y: y}})
	}
	return lines
}

func tickLabels(vp Viewport) []Label {
	labels := make([]Label, 0, 5)
	for v := -2; v <= 2; v++ {
		labels = append(labels, Label{
			Text: fmt.Sprintf("%.1f", float64(v)),
			At:   Point{X: vp.Width - 5, Y: vp.PixelY(float64(v))},
		})
	}
	return labels
}

func dashes(vp Viewport) []Segment {
	y := vp.ZeroY()
	var out []Segment
	for x := 0.0; x < vp.Width; x += 2 * DashLength {
		end := x + DashLength
		if end > vp.Width {
			end = vp.Width
		}
		out = append(out, Segment{From: Point{X: x, Y: y}, To: Point{X: end, Y: y}})
	}
	return out
}
