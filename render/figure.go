package render

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/artexplorer/primecut"
	"github.com/artexplorer/primecut/rt"
)

// FigureSize is the default edge length of saved figures.
const FigureSize = 6 * vg.Inch

// Figure plots the projected points and their hull in plane coordinates.
// Hull vertices are joined by a closed outline; interior points appear as
// scatter glyphs only. A dashed regular polygon with the hull's vertex
// count and circumradius shows how far the shadow is from ideal. The
// returned plot can be further customized before saving.
func Figure(proj primecut.Projection) (*plot.Plot, error) {
	if len(proj.Points) == 0 {
		return nil, errors.New("figure: projection has no points")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d-point shadow, %d-gon hull", len(proj.Points), len(proj.Hull))
	p.X.Label.Text = "right"
	p.Y.Label.Text = "up"

	pts := make(plotter.XYs, len(proj.Points))
	for i, pp := range proj.Points {
		pts[i].X = pp.Plane.X
		pts[i].Y = pp.Plane.Y
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Radius = vg.Points(2.5)
	scatter.GlyphStyle.Color = color.RGBA{B: 160, A: 255}
	p.Add(scatter)

	if n := len(proj.Hull); n >= 3 {
		outline := make(plotter.XYs, n+1)
		for i, h := range proj.Hull {
			outline[i].X = h.X
			outline[i].Y = h.Y
		}
		outline[n] = outline[0]
		line, err := plotter.NewLine(outline)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = color.RGBA{R: 200, A: 255}
		p.Add(line)

		centroid, radius := primecut.CentroidMaxRadius(proj.Hull)
		ngon := rt.NgonVertices(n, radius)
		ideal := make(plotter.XYs, n+1)
		for i, v := range ngon.Vertices {
			ideal[i].X = centroid.X + v.X
			ideal[i].Y = centroid.Y + v.Y
		}
		ideal[n] = ideal[0]
		idealLine, err := plotter.NewLine(ideal)
		if err != nil {
			return nil, err
		}
		idealLine.LineStyle.Width = vg.Points(1)
		idealLine.LineStyle.Color = color.RGBA{R: 120, G: 120, B: 120, A: 255}
		idealLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(idealLine)
	}
	return p, nil
}

// SaveFigure writes the projection figure to path. The format follows the
// file extension; png and svg are the usual choices.
func SaveFigure(proj primecut.Projection, path string) error {
	p, err := Figure(proj)
	if err != nil {
		return err
	}
	return p.Save(FigureSize, FigureSize, path)
}
