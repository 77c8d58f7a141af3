package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"venturelens.dev/reportengine/internal/model"
)

func TestBuildSeriesEmpty(t *testing.T) {
	m := NewMapper(NewCatalog())

	assert.True(t, m.BuildSeries(nil).Empty())
	assert.True(t, m.BuildSeries(&model.AnalysisResult{}).Empty())
	assert.True(t, m.BuildSeries(&model.AnalysisResult{
		Metrics: map[string]float64{"arr": 100},
	}).Empty(), "extracted metrics alone carry no comparison basis")
}

func TestBuildSeriesFromBenchmarks(t *testing.T) {
	m := NewMapper(NewCatalog())

	series := m.BuildSeries(&model.AnalysisResult{
		Benchmarks: map[string]model.Benchmark{
			"churnRate": {CompanyValue: null.FloatFrom(0.42), Median: 5, Percentile: 0.62, Status: "below"},
			"arr":       {CompanyValue: null.FloatFrom(1200000), Median: 900000, Percentile: 0.714, Status: "above"},
		},
	})

	require.Equal(t, 2, series.Len())
	assert.False(t, series.UseEstimates)
	assert.Equal(t, []string{"arr", "churnRate"}, series.Keys, "display order, not map order")
	assert.Equal(t, []string{"ARR", "Churn Rate"}, series.Labels)
	assert.Equal(t, []float64{71, 62}, series.Percentiles, "fraction percentiles scale and round")
	assert.Equal(t, []float64{900000, 5}, series.Medians)
	assert.False(t, series.HideCompanySeries)

	// a fraction-shaped churn rate is normalized to a percentage
	assert.Equal(t, null.FloatFrom(42.0), series.CompanyValues[1])
	// but an already-percent value stays put
	again := m.BuildSeries(&model.AnalysisResult{
		Benchmarks: map[string]model.Benchmark{
			"churnRate": {CompanyValue: null.FloatFrom(42), Median: 5},
		},
	})
	assert.Equal(t, null.FloatFrom(42.0), again.CompanyValues[0])
}

func TestBuildSeriesFromEstimates(t *testing.T) {
	m := NewMapper(NewCatalog())

	series := m.BuildSeries(&model.AnalysisResult{
		Metrics: map[string]float64{
			"growth_yoy": 0.8,
			"mrr":        40000,
		},
		Estimates: &model.BenchmarkEstimates{
			Values: map[string]model.Estimate{
				"mrr":       {Median: 50000, Unit: "INR"},
				"growthYoY": {Median: 120, Unit: "%"},
				"cac":       {Median: 9000},
			},
			Relative: map[string]string{
				"mrr":       "below",
				"growthYoY": "above",
			},
		},
	})

	require.Equal(t, 3, series.Len())
	assert.True(t, series.UseEstimates)
	assert.Equal(t, []string{"mrr", "growthYoY", "cac"}, series.Keys)
	assert.Equal(t, []float64{25, 75, 50}, series.Percentiles, "relative labels map to fixed proxies, absent defaults to 50")

	// growthYoY resolves through the alias table and normalizes 0.8 to 80
	assert.Equal(t, null.FloatFrom(80.0), series.CompanyValues[1])
	assert.Equal(t, null.FloatFrom(40000.0), series.CompanyValues[0])
	assert.False(t, series.CompanyValues[2].Valid, "no extracted value and no alias match")
}

func TestBuildSeriesPrefersBenchmarks(t *testing.T) {
	m := NewMapper(NewCatalog())

	series := m.BuildSeries(&model.AnalysisResult{
		Benchmarks: map[string]model.Benchmark{
			"arr": {Median: 900000, Percentile: 0.5},
		},
		Estimates: &model.BenchmarkEstimates{
			Values: map[string]model.Estimate{"mrr": {Median: 50000}},
		},
	})

	assert.False(t, series.UseEstimates)
	assert.Equal(t, []string{"arr"}, series.Keys)
}

func TestBuildSeriesHidesAbsentCompanySeries(t *testing.T) {
	m := NewMapper(NewCatalog())

	series := m.BuildSeries(&model.AnalysisResult{
		Benchmarks: map[string]model.Benchmark{
			"arr": {Median: 900000},
			"mrr": {Median: 75000},
		},
	})

	assert.True(t, series.HideCompanySeries)

	withNaN := m.BuildSeries(&model.AnalysisResult{
		Metrics: map[string]float64{"cac": math.NaN()},
		Estimates: &model.BenchmarkEstimates{
			Values: map[string]model.Estimate{"cac": {Median: 9000}},
		},
	})
	assert.True(t, withNaN.HideCompanySeries, "non-finite values count as absent")
}
