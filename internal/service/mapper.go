package service

import (
	"math"
	"sort"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"venturelens.dev/reportengine/internal/constant"
	"venturelens.dev/reportengine/internal/model"
)

// Mapper normalizes a raw analysis result into one comparable per-metric
// series. It is a total function over any well- or ill-formed input: empty or
// malformed data yields an empty series, never an error.
type Mapper struct {
	Catalog *Catalog
}

func NewMapper(catalog *Catalog) *Mapper {
	return &Mapper{Catalog: catalog}
}

// relativePercentiles is the fixed percentile proxy for the qualitative
// labels of the estimate block. Missing or unknown labels default to 50.
var relativePercentiles = map[string]float64{
	"above": 75,
	"near":  50,
	"below": 25,
}

// BuildSeries derives the comparable MetricSeries for a result. Benchmark
// keys win; estimate keys are used (flagged) only when no benchmarks exist.
func (m *Mapper) BuildSeries(res *model.AnalysisResult) *model.MetricSeries {
	series := &model.MetricSeries{}
	if res == nil {
		return series
	}

	var keys []string
	switch {
	case len(res.Benchmarks) > 0:
		keys = orderedMetricKeys(lo.Keys(res.Benchmarks))
	case res.Estimates != nil && len(res.Estimates.Values) > 0:
		keys = orderedMetricKeys(lo.Keys(res.Estimates.Values))
		series.UseEstimates = true
	default:
		return series
	}

	series.Keys = keys
	series.Labels = make([]string, len(keys))
	series.Percentiles = make([]float64, len(keys))
	series.CompanyValues = make([]null.Float, len(keys))
	series.Medians = make([]float64, len(keys))

	for i, key := range keys {
		series.Labels[i] = m.Catalog.MetricLabel(key)

		if !series.UseEstimates {
			b := res.Benchmarks[key]
			series.Percentiles[i] = math.Round(b.Percentile * 100)
			series.CompanyValues[i] = normalizeCompanyValue(key, b.CompanyValue)
			series.Medians[i] = b.Median
			continue
		}

		series.Percentiles[i] = relativePercentile(res.Estimates.Relative[key])
		series.CompanyValues[i] = normalizeCompanyValue(key, resolveExtracted(res.Metrics, key))
		series.Medians[i] = res.Estimates.Values[key].Median
	}

	series.HideCompanySeries = lo.EveryBy(series.CompanyValues, func(v null.Float) bool {
		return !v.Valid
	})

	return series
}

func relativePercentile(label string) float64 {
	if p, ok := relativePercentiles[label]; ok {
		return p
	}
	return 50
}

// resolveExtracted looks a metric up in the extracted metrics by direct key,
// falling back to the fixed alias table for the four percent-like keys.
// Non-finite or absent results are the "no value" sentinel.
func resolveExtracted(metrics map[string]float64, key string) null.Float {
	if metrics == nil {
		return null.Float{}
	}
	if v, ok := metrics[key]; ok {
		return finiteFloat(v)
	}
	for _, alias := range constant.MetricAliases[key] {
		if v, ok := metrics[alias]; ok {
			return finiteFloat(v)
		}
	}
	return null.Float{}
}

// normalizeCompanyValue scales fraction-shaped values of the four
// percent-like metrics to percentages. A resolved value <= 1 is treated as a
// fraction regardless of any declared unit; values already > 1 are left
// unscaled.
func normalizeCompanyValue(key string, v null.Float) null.Float {
	if !v.Valid {
		return v
	}
	if _, ok := constant.PercentLikeMetrics[key]; !ok {
		return v
	}
	if v.Float64 <= 1 {
		return null.FloatFrom(v.Float64 * 100)
	}
	return v
}

func finiteFloat(v float64) null.Float {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return null.Float{}
	}
	return null.FloatFrom(v)
}

// orderedMetricKeys sorts metric keys into the catalog's fixed display order,
// with unknown keys after the known ones in alphabetical order.
func orderedMetricKeys(keys []string) []string {
	rank := make(map[string]int, len(constant.MetricOrder))
	for i, k := range constant.MetricOrder {
		rank[k] = i
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, iKnown := rank[keys[i]]
		rj, jKnown := rank[keys[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}
