package capability

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"venturelens.dev/reportengine/internal/model"
	"venturelens.dev/reportengine/internal/pkg/surface"
)

// Charts builds the three chart documents. Every chart is constructed with
// animation disabled and fixed layout padding so that one build call is
// synchronous and its output deterministic for a given series and box.
type Charts struct {
	companyColor string
	medianColor  string
	scoreColor   string
	remainColor  string
}

func loadCharts() (*Charts, error) {
	return &Charts{
		companyColor: "#6366f1",
		medianColor:  "#d1d5db",
		scoreColor:   "#10b981",
		remainColor:  "#e5e7eb",
	}, nil
}

// Radar renders the percentile radar: the company's per-metric percentile
// against a flat cohort-median ring at 50.
func (c *Charts) Radar(series *model.MetricSeries, box surface.Box) ([]byte, error) {
	radar := charts.NewRadar()
	radar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(box)),
		charts.WithAnimation(false),
		charts.WithTitleOpts(opts.Title{Title: radarTitle(series)}),
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator: indicators(series.Labels),
		}),
	)

	company := make([]float32, series.Len())
	median := make([]float32, series.Len())
	for i, p := range series.Percentiles {
		company[i] = float32(p)
		median[i] = 50
	}

	radar.AddSeries("Company", []opts.RadarData{{Name: "Company", Value: company}})
	radar.AddSeries("Cohort Median", []opts.RadarData{{Name: "Cohort Median", Value: median}})

	return render(radar)
}

// Bar renders company value vs cohort median per metric. The company series
// is omitted entirely when every company value is absent.
func (c *Charts) Bar(series *model.MetricSeries, box surface.Box) ([]byte, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(box)),
		charts.WithAnimation(false),
		charts.WithTitleOpts(opts.Title{Title: barTitle(series)}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)

	bar.SetXAxis(series.Labels)

	if !series.HideCompanySeries {
		company := make([]opts.BarData, series.Len())
		for i, v := range series.CompanyValues {
			if v.Valid {
				company[i] = opts.BarData{Value: v.Float64, ItemStyle: &opts.ItemStyle{Color: c.companyColor}}
			} else {
				company[i] = opts.BarData{Value: nil}
			}
		}
		bar.AddSeries("Company", company)
	}

	median := make([]opts.BarData, series.Len())
	for i, m := range series.Medians {
		median[i] = opts.BarData{Value: m, ItemStyle: &opts.ItemStyle{Color: c.medianColor}}
	}
	bar.AddSeries("Cohort Median", median)

	return render(bar)
}

// Doughnut renders the composite score as a rounded percentage against its
// remainder. The score must already be clamped to [0,1] by the caller.
func (c *Charts) Doughnut(score float64, box surface.Box) ([]byte, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(box)),
		charts.WithAnimation(false),
		charts.WithTitleOpts(opts.Title{Title: "Composite Score"}),
	)

	pct := math.Round(score * 100)
	pie.AddSeries("score", []opts.PieData{
		{Name: "Score", Value: pct, ItemStyle: &opts.ItemStyle{Color: c.scoreColor}},
		{Name: "", Value: 100 - pct, ItemStyle: &opts.ItemStyle{Color: c.remainColor}},
	}).SetSeriesOptions(
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"55%", "75%"}}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
	)

	return render(pie)
}

type renderable interface {
	Render(w io.Writer) error
}

func render(chart renderable) ([]byte, error) {
	var buf bytes.Buffer
	if err := chart.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func initOpts(box surface.Box) opts.Initialization {
	return opts.Initialization{
		Width:  fmt.Sprintf("%dpx", box.Width),
		Height: fmt.Sprintf("%dpx", box.Height),
	}
}

func indicators(labels []string) []*opts.Indicator {
	out := make([]*opts.Indicator, len(labels))
	for i, l := range labels {
		out[i] = &opts.Indicator{Name: l, Max: 100}
	}
	return out
}

func radarTitle(series *model.MetricSeries) string {
	if series.UseEstimates {
		return "Benchmark Percentiles (estimated)"
	}
	return "Benchmark Percentiles"
}

func barTitle(series *model.MetricSeries) string {
	if series.UseEstimates {
		return "Company vs Cohort Median (estimated)"
	}
	return "Company vs Cohort Median"
}
