package display

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"sheath/equation"
)

// Charts 结果图表页面
type Charts struct {
	Result equation.Result
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	names := make([]string, 0, len(c.Result.Phases))
	magnitude := make([]opts.BarData, 0, len(c.Result.Phases))
	degrees := make([]opts.BarData, 0, len(c.Result.Phases))
	for _, p := range c.Result.Phases {
		names = append(names, p.Name)
		magnitude = append(magnitude, opts.BarData{Value: p.Voltage.Magnitude()})
		degrees = append(degrees, opts.BarData{Value: Degrees(p.Voltage)})
	}

	// 幅值
	barM := charts.NewBar()
	barM.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "护套电压幅值",
			Subtitle: "单相接地故障下各相护套感应电压 (" + Unit + ")",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  Unit,
			Scale: opts.Bool(true),
		}),
	)
	barM.SetXAxis(names).AddSeries("Magnitude", magnitude)

	// 相角
	barP := charts.NewBar()
	barP.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "护套电压相角",
			Subtitle: "相对故障电流的相角 (°)",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "°",
			Scale: opts.Bool(true),
		}),
	)
	barP.SetXAxis(names).AddSeries("Phase", degrees)

	// 相量
	phasor := charts.NewLine()
	phasor.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "相量图",
			Subtitle: "复平面上的护套电压",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Real",
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Imag",
			Type: "value",
		}),
	)
	for _, p := range c.Result.Phases {
		phasor.AddSeries(p.Name, []opts.LineData{
			{Value: []float64{0, 0}},
			{Value: []float64{p.Voltage.Real(), p.Voltage.Imag()}},
		})
	}

	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		barM,
		barP,
		phasor,
	)
	return page.Render(w)
}
