package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"venturelens.dev/reportengine/internal/model"
	"venturelens.dev/reportengine/internal/pkg/capability"
)

func testExporter() *Exporter {
	return NewExporter(NewCatalog(), capability.NewProvider())
}

func fullResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		ExecutiveSummary: "The company shows strong early traction with ARR of Rs. 12 Cr growing 140% year over year. " + strings.Repeat("Retention cohorts are healthy and expansion revenue is accelerating. ", 40),
		MarketAnalysis: model.MarketAnalysis{
			MarketSize:  "TAM estimated at $8B across segments",
			GrowthRate:  "22% CAGR through 2028",
			Competition: "Razorpay, Cashfree, PayU, Juspay",
			Regulation:  "RBI payment aggregator licensing applies",
		},
		Cohort: model.Cohort{Sector: "fintech payments", Stage: "series a"},
		Risks: []model.Risk{
			{Factor: "Regulatory", Impact: "high", Description: "License renewal is pending."},
			{Factor: "Concentration"},
		},
		Recommendations: []model.Recommendation{
			{Title: "Diversify", Description: "Reduce dependence on the top three merchants."},
			{Title: "Hire compliance lead"},
		},
		Benchmarks: map[string]model.Benchmark{
			"arr":       {CompanyValue: null.FloatFrom(1200000), Median: 900000, Percentile: 0.7, Status: "above"},
			"churnRate": {Median: 5, Percentile: 0.3},
		},
		Estimates: &model.BenchmarkEstimates{
			Values:   map[string]model.Estimate{"mrr": {Median: 50000, Unit: "USD"}},
			Relative: map[string]string{"mrr": "near"},
			Notes:    "Thin public data for this cohort.",
		},
		Score: &model.CompositeScore{Value: 0.78, Verdict: "Proceed"},
	}
}

func TestBuildReportProducesDocument(t *testing.T) {
	x := testExporter()

	doc, err := x.BuildReport(context.Background(), fullResult())
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "output is a PDF document")
}

func TestBuildReportSparseResult(t *testing.T) {
	x := testExporter()

	// a nearly empty result still produces a valid single-section document
	doc, err := x.BuildReport(context.Background(), &model.AnalysisResult{
		ExecutiveSummary: "Too little data to conclude.",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestExporterTagline(t *testing.T) {
	x := testExporter()

	assert.Equal(t, "Fintech / Series A", x.tagline(model.Cohort{Sector: "payments", Stage: "series-a"}))
	assert.Equal(t, "Seed", x.tagline(model.Cohort{Stage: "seed round"}))
	assert.Equal(t, "Confidential", x.tagline(model.Cohort{}))
}

func TestListItems(t *testing.T) {
	assert.Equal(t, []string{"Razorpay", "Cashfree", "PayU"},
		listItems("Razorpay, Cashfree; PayU"))
	assert.Equal(t, []string{"a fragmented field of regional players"},
		listItems("a fragmented field of regional players"))
	assert.Empty(t, listItems("  ,  ;  "))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "900000", formatNumber(900000))
	assert.Equal(t, "0.78", formatNumber(0.78))
	assert.Equal(t, "5.5", formatNumber(5.5))
}
