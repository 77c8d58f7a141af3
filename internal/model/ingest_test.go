package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

const sampleResult = `{
	"executiveSummary": "Strong traction.",
	"marketAnalysis": {"marketSize": "$8B", "competition": "A, B, C"},
	"cohort": {"sector": "fintech", "stage": "seed", "source": "dataset"},
	"risks": [{"factor": "Regulatory", "impact": "high", "description": "Pending license."}],
	"recommendations": [{"title": "Diversify", "description": "Top merchants."}],
	"metrics": {"arr": 1200000, "churnRate": 0.42, "bad": null},
	"benchmarks": {
		"arr": {"companyValue": 1200000, "median": 900000, "p25": 400000, "p75": 1500000, "percentile": 0.7, "status": "above"},
		"mrr": {"companyValue": null, "median": 75000}
	},
	"score": {"composite": 0.78, "verdict": "Proceed", "weights": {"arr": 0.4}, "metricScores": {"arr": 0.9}},
	"llmBenchmarks": {
		"cohort": {"sector": "fintech", "stage": "seed"},
		"estimates": {"mrr": {"median": 50000, "unit": "USD"}},
		"relative": {"mrr": "near"},
		"notes": "Thin data."
	}
}`

func TestParseAnalysisResult(t *testing.T) {
	res := ParseAnalysisResult([]byte(sampleResult))

	assert.Equal(t, "Strong traction.", res.ExecutiveSummary)
	assert.Equal(t, "$8B", res.MarketAnalysis.MarketSize)
	assert.Equal(t, Cohort{Sector: "fintech", Stage: "seed", Source: "dataset"}, res.Cohort)

	require.Len(t, res.Risks, 1)
	assert.Equal(t, "high", res.Risks[0].Impact)
	require.Len(t, res.Recommendations, 1)

	assert.Equal(t, map[string]float64{"arr": 1200000, "churnRate": 0.42}, res.Metrics,
		"null metric entries are dropped")

	require.Len(t, res.Benchmarks, 2)
	assert.Equal(t, null.FloatFrom(1200000), res.Benchmarks["arr"].CompanyValue)
	assert.False(t, res.Benchmarks["mrr"].CompanyValue.Valid, "explicit null survives as absent")
	assert.Equal(t, 0.7, res.Benchmarks["arr"].Percentile)
	assert.Equal(t, "above", res.Benchmarks["arr"].Status)

	require.NotNil(t, res.Score)
	assert.Equal(t, 0.78, res.Score.Value)
	assert.Equal(t, "Proceed", res.Score.Verdict)
	assert.Equal(t, map[string]float64{"arr": 0.4}, res.Score.Weights)

	require.NotNil(t, res.Estimates)
	assert.Equal(t, Estimate{Median: 50000, Unit: "USD"}, res.Estimates.Values["mrr"])
	assert.Equal(t, "near", res.Estimates.Relative["mrr"])
	assert.Equal(t, "Thin data.", res.Estimates.Notes)
}

func TestParseAnalysisResultLenient(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty object", `{}`},
		{"empty input", ``},
		{"not json", `not json at all`},
		{"wrong shapes", `{"metrics": "nope", "benchmarks": 3, "risks": {"a": 1}, "score": {"verdict": "x"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseAnalysisResult([]byte(tt.in))
			require.NotNil(t, res)
			assert.Nil(t, res.Score, "a score without a composite value is absent")
			assert.Nil(t, res.Estimates)
			assert.Empty(t, res.Benchmarks)
		})
	}
}

func TestChartInstanceDestroyIdempotent(t *testing.T) {
	inst := &ChartInstance{Slot: "benchmark-radar", Kind: ChartRadar, Document: []byte("doc")}
	require.True(t, inst.Live())

	inst.Destroy()
	assert.False(t, inst.Live())
	assert.Nil(t, inst.Document)

	inst.Destroy()
	assert.False(t, inst.Live())

	var nilInst *ChartInstance
	nilInst.Destroy()
	assert.False(t, nilInst.Live())
}
