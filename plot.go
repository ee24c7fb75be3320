package circuit

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	HorizontalColor = color.RGBA{0, 0, 255, 255}
	VerticalColor   = color.RGBA{0, 128, 0, 255}
	CrossingColor   = color.RGBA{255, 0, 0, 255}
)

// Plot draws the wires of the layer and, if rs is not nil, its crossings.
func (l *Layer) Plot(rs *ResultSet) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Wire layer"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	if 0 < len(l.wires) {
		b := l.Bound()
		p.X.Min, p.X.Max = b.Min.X(), b.Max.X()
		p.Y.Min, p.Y.Max = b.Min.Y(), b.Max.Y()
	}

	for _, w := range l.wires {
		line, err := plotter.NewLine(plotter.XYs{{X: w.X1, Y: w.Y1}, {X: w.X2, Y: w.Y2}})
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(1)
		if w.IsHorizontal() {
			line.LineStyle.Color = HorizontalColor
		} else {
			line.LineStyle.Color = VerticalColor
		}
		p.Add(line)
	}

	if rs != nil && 0 < rs.Len() {
		xys := make(plotter.XYs, 0, rs.Len())
		for _, z := range rs.crossings {
			xys = append(xys, plotter.XY{X: z.X, Y: z.Y})
		}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Color = CrossingColor
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(2)
		p.Add(scatter)
	}
	return p, nil
}
