package model

import (
	"math"

	"github.com/tidwall/gjson"
	"gopkg.in/guregu/null.v3"
)

// ParseAnalysisResult leniently decodes a raw result payload. It is a total
// function: any well- or ill-formed input yields a usable (possibly mostly
// empty) result rather than an error. Non-finite numerics are treated as
// absent.
func ParseAnalysisResult(data []byte) *AnalysisResult {
	root := gjson.ParseBytes(data)

	out := &AnalysisResult{
		ExecutiveSummary: root.Get("executiveSummary").String(),
		MarketAnalysis: MarketAnalysis{
			MarketSize:    root.Get("marketAnalysis.marketSize").String(),
			GrowthRate:    root.Get("marketAnalysis.growthRate").String(),
			Competition:   root.Get("marketAnalysis.competition").String(),
			EntryBarriers: root.Get("marketAnalysis.entryBarriers").String(),
			Regulation:    root.Get("marketAnalysis.regulation").String(),
		},
		Cohort: Cohort{
			Sector: root.Get("cohort.sector").String(),
			Stage:  root.Get("cohort.stage").String(),
			Source: root.Get("cohort.source").String(),
		},
	}

	forEachElem(root.Get("risks"), func(r gjson.Result) {
		out.Risks = append(out.Risks, Risk{
			Factor:      r.Get("factor").String(),
			Impact:      r.Get("impact").String(),
			Description: r.Get("description").String(),
		})
	})

	forEachElem(root.Get("recommendations"), func(r gjson.Result) {
		out.Recommendations = append(out.Recommendations, Recommendation{
			Title:       r.Get("title").String(),
			Description: r.Get("description").String(),
		})
	})

	forEachField(root.Get("metrics"), func(key string, v gjson.Result) {
		f := v.Float()
		if !finite(f) || v.Type == gjson.Null {
			return
		}
		if out.Metrics == nil {
			out.Metrics = map[string]float64{}
		}
		out.Metrics[key] = f
	})

	forEachField(root.Get("benchmarks"), func(key string, b gjson.Result) {
		if out.Benchmarks == nil {
			out.Benchmarks = map[string]Benchmark{}
		}
		out.Benchmarks[key] = Benchmark{
			CompanyValue: nullFloat(b.Get("companyValue")),
			Median:       b.Get("median").Float(),
			P25:          b.Get("p25").Float(),
			P75:          b.Get("p75").Float(),
			Percentile:   b.Get("percentile").Float(),
			Status:       b.Get("status").String(),
		}
	})

	if score := root.Get("score"); score.Exists() && score.Get("composite").Exists() {
		cs := &CompositeScore{
			Value:   score.Get("composite").Float(),
			Verdict: score.Get("verdict").String(),
		}
		forEachField(score.Get("weights"), func(key string, v gjson.Result) {
			if cs.Weights == nil {
				cs.Weights = map[string]float64{}
			}
			cs.Weights[key] = v.Float()
		})
		forEachField(score.Get("metricScores"), func(key string, v gjson.Result) {
			if cs.MetricScores == nil {
				cs.MetricScores = map[string]float64{}
			}
			cs.MetricScores[key] = v.Float()
		})
		out.Score = cs
	}

	if est := root.Get("llmBenchmarks"); est.Exists() {
		be := &BenchmarkEstimates{
			Cohort: Cohort{
				Sector: est.Get("cohort.sector").String(),
				Stage:  est.Get("cohort.stage").String(),
			},
			Notes: est.Get("notes").String(),
		}
		forEachField(est.Get("estimates"), func(key string, v gjson.Result) {
			if be.Values == nil {
				be.Values = map[string]Estimate{}
			}
			be.Values[key] = Estimate{
				Median: v.Get("median").Float(),
				Unit:   v.Get("unit").String(),
			}
		})
		forEachField(est.Get("relative"), func(key string, v gjson.Result) {
			if be.Relative == nil {
				be.Relative = map[string]string{}
			}
			be.Relative[key] = v.String()
		})
		if len(be.Values) > 0 || len(be.Relative) > 0 || be.Notes != "" {
			out.Estimates = be
		}
	}

	return out
}

// gjson's ForEach iterates once even over scalar values, so both helpers
// check the container shape before walking it.
func forEachElem(v gjson.Result, f func(e gjson.Result)) {
	if !v.IsArray() {
		return
	}
	v.ForEach(func(_, e gjson.Result) bool {
		f(e)
		return true
	})
}

func forEachField(v gjson.Result, f func(key string, val gjson.Result)) {
	if !v.IsObject() {
		return
	}
	v.ForEach(func(k, e gjson.Result) bool {
		f(k.String(), e)
		return true
	})
}

func nullFloat(v gjson.Result) null.Float {
	if !v.Exists() || v.Type == gjson.Null {
		return null.Float{}
	}
	f := v.Float()
	if !finite(f) {
		return null.Float{}
	}
	return null.FloatFrom(f)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
