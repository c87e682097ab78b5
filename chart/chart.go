// Copyright 2019 - 2025 The Samply Community
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package chart renders solved wavefunctions as PNG images.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/samply/qmctl/numeric"
	"github.com/samply/qmctl/physics"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Image size in pixels.
const (
	Width  = 1280
	Height = 720
)

// Limits of the relative error panel in percent.
const errorPanelLimit = 10.0

var (
	blue  = color.RGBA{B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 160, A: 255}
	black = color.RGBA{A: 255}
)

var palette = []color.Color{blue, red, green, black}

// Series is one solved wavefunction.
type Series struct {
	Label  string
	Energy float64
	Points []physics.Point

	// MatchX is the matching point of the matching method. If set, points
	// right of it are drawn in red.
	MatchX *float64
}

// Spec describes a chart with one or more series.
type Spec struct {
	Title      string
	XMin, XMax float64

	// YMin and YMax bound the wavefunction axis. Both zero means the range
	// is taken from the data.
	YMin, YMax float64

	// Marker is either "circle" or "triangle".
	Marker string

	Series []Series

	// Reference, if set, is drawn as a line and adds a second panel with the
	// relative error of every series against it.
	Reference *physics.Reference
}

// Render draws spec as PNG into w.
func Render(w io.Writer, spec Spec) error {
	if len(spec.Series) == 0 {
		return fmt.Errorf("nothing to draw")
	}

	upper, err := wavefunctionPlot(spec)
	if err != nil {
		return err
	}

	img := vgimg.New(vg.Length(Width)*vg.Inch/vgimg.DefaultDPI, vg.Length(Height)*vg.Inch/vgimg.DefaultDPI)
	dc := draw.New(img)

	if spec.Reference == nil {
		upper.Draw(dc)
	} else {
		lower, err := errorPlot(spec)
		if err != nil {
			return err
		}
		plots := [][]*plot.Plot{{upper}, {lower}}
		canvases := plot.Align(plots, draw.Tiles{Rows: 2, Cols: 1}, dc)
		upper.Draw(canvases[0][0])
		lower.Draw(canvases[1][0])
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("error while writing the image: %w", err)
	}
	return nil
}

func wavefunctionPlot(spec Spec) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "ψ"
	p.X.Min, p.X.Max = spec.XMin, spec.XMax
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for i, series := range spec.Series {
		scatter, err := plotter.NewScatter(visiblePoints(series.Points, spec))
		if err != nil {
			return nil, fmt.Errorf("error while plotting series %d: %w", i, err)
		}
		c := palette[i%len(palette)]
		scatter.GlyphStyle = glyphStyle(spec.Marker, c)
		if series.MatchX != nil && len(spec.Series) == 1 {
			matchX := *series.MatchX
			xys := scatter.XYs
			scatter.GlyphStyleFunc = func(j int) draw.GlyphStyle {
				if xys[j].X <= matchX {
					return glyphStyle(spec.Marker, blue)
				}
				return glyphStyle(spec.Marker, red)
			}
		}
		p.Add(scatter)
		p.Legend.Add(legendLabel(series), scatter)
	}

	if spec.Reference != nil {
		line, err := plotter.NewLine(sample(spec.Reference.Function, spec.XMin, spec.XMax))
		if err != nil {
			return nil, err
		}
		line.Color = black
		p.Add(line)
		p.Legend.Add(spec.Reference.Name, line)
	}

	p.X.Min, p.X.Max = spec.XMin, spec.XMax
	if spec.YMin != 0 || spec.YMax != 0 {
		p.Y.Min, p.Y.Max = spec.YMin, spec.YMax
	}
	return p, nil
}

func errorPlot(spec Spec) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Relative error (%)"
	p.X.Label.Text = "x"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for i, series := range spec.Series {
		xys := make(plotter.XYs, 0, len(series.Points))
		for _, pt := range series.Points {
			if pt.X < spec.XMin || pt.X > spec.XMax {
				continue
			}
			e := numeric.RelativeError(pt.Psi, spec.Reference.Function(pt.X)) * 100
			if math.IsNaN(e) {
				continue
			}
			xys = append(xys, plotter.XY{X: pt.X, Y: clamp(e, errorPanelLimit)})
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("error while plotting the error of series %d: %w", i, err)
		}
		line.Color = palette[(i+2)%len(palette)]
		p.Add(line)
		p.Legend.Add(series.Label, line)
	}

	p.X.Min, p.X.Max = spec.XMin, spec.XMax
	p.Y.Min, p.Y.Max = -errorPanelLimit, errorPanelLimit
	return p, nil
}

func legendLabel(series Series) string {
	if series.Label == "" {
		return fmt.Sprintf("E = %.3f", series.Energy)
	}
	return fmt.Sprintf("%s: E = %.3f", series.Label, series.Energy)
}

func glyphStyle(marker string, c color.Color) draw.GlyphStyle {
	style := draw.GlyphStyle{Color: c, Radius: vg.Points(2)}
	if marker == "triangle" {
		style.Shape = draw.TriangleGlyph{}
		style.Radius = vg.Points(3)
	} else {
		style.Shape = draw.CircleGlyph{}
	}
	return style
}

// visiblePoints drops points outside the x range and non-finite values, so
// that diverged tails don't blow up the automatic y range.
func visiblePoints(points []physics.Point, spec Spec) plotter.XYs {
	xys := make(plotter.XYs, 0, len(points))
	for _, p := range points {
		if p.X < spec.XMin || p.X > spec.XMax || math.IsNaN(p.Psi) || math.IsInf(p.Psi, 0) {
			continue
		}
		if (spec.YMin != 0 || spec.YMax != 0) && (p.Psi < spec.YMin || p.Psi > spec.YMax) {
			continue
		}
		xys = append(xys, plotter.XY{X: p.X, Y: p.Psi})
	}
	return xys
}

func sample(f func(float64) float64, xMin, xMax float64) plotter.XYs {
	xs := numeric.GenRange(xMin, xMax, (xMax-xMin)/1000)
	xys := make(plotter.XYs, len(xs))
	for i, x := range xs {
		xys[i] = plotter.XY{X: x, Y: f(x)}
	}
	return xys
}

func clamp(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}
