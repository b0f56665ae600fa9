package display

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"sheath/equation"
)

// PlotSize 相量图边长
const PlotSize = 6 * vg.Inch

// Plot 相量图
type Plot struct {
	Result equation.Result
	Format string // png, svg, pdf, eps, jpg, tif
}

// Build 生成相量图
func (p *Plot) Build() (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = "Shield Voltage Phasors (" + p.Result.Mode.String() + ")"
	pl.X.Label.Text = "Real (" + Unit + ")"
	pl.Y.Label.Text = "Imaginary (" + Unit + ")"
	pl.Add(plotter.NewGrid())
	for i, ph := range p.Result.Phases {
		re, im := ph.Voltage.Real(), ph.Voltage.Imag()
		if math.IsNaN(re) || math.IsNaN(im) || math.IsInf(re, 0) || math.IsInf(im, 0) {
			return nil, fmt.Errorf("相量 %s 含非有限值: %v", ph.Name, ph.Voltage)
		}
		line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: re, Y: im}})
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		pl.Add(line)
		pl.Legend.Add(ph.Name, line)
	}
	pl.Legend.Top = true
	return pl, nil
}

// Render 按格式输出
func (p *Plot) Render(w io.Writer) error {
	pl, err := p.Build()
	if err != nil {
		return err
	}
	format := p.Format
	if format == "" {
		format = "png"
	}
	wt, err := pl.WriterTo(PlotSize, PlotSize, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
