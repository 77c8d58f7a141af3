package model

import (
	"gopkg.in/guregu/null.v3"
)

// AnalysisResult is the structured output of the startup-evaluation pipeline.
// It is immutable once received: the rendering and export pipelines read it,
// neither mutates it.
type AnalysisResult struct {
	ExecutiveSummary string               `json:"executiveSummary"`
	MarketAnalysis   MarketAnalysis       `json:"marketAnalysis"`
	Cohort           Cohort               `json:"cohort"`
	Risks            []Risk               `json:"risks" validate:"omitempty,dive"`
	Recommendations  []Recommendation     `json:"recommendations"`
	Metrics          map[string]float64   `json:"metrics"`
	Benchmarks       map[string]Benchmark `json:"benchmarks" validate:"omitempty,dive"`
	Score            *CompositeScore      `json:"score"`
	Estimates        *BenchmarkEstimates  `json:"llmBenchmarks"`
}

type MarketAnalysis struct {
	MarketSize    string `json:"marketSize"`
	GrowthRate    string `json:"growthRate"`
	Competition   string `json:"competition"`
	EntryBarriers string `json:"entryBarriers"`
	Regulation    string `json:"regulation"`
}

// Cohort tags the company for benchmark selection.
type Cohort struct {
	Sector string `json:"sector"`
	Stage  string `json:"stage"`
	Source string `json:"source"`
}

type Risk struct {
	Factor      string `json:"factor"`
	Impact      string `json:"impact" validate:"omitempty,caseinsensitiveoneof=low medium high"`
	Description string `json:"description"`
}

type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Benchmark is a precomputed cohort statistic for one metric, compared
// against the company's own value.
type Benchmark struct {
	CompanyValue null.Float `json:"companyValue"`
	Median       float64    `json:"median"`
	P25          float64    `json:"p25"`
	P75          float64    `json:"p75"`
	Percentile   float64    `json:"percentile"`
	Status       string     `json:"status" validate:"omitempty,oneof=above below"`
}

type CompositeScore struct {
	Value        float64            `json:"composite"`
	Verdict      string             `json:"verdict"`
	Weights      map[string]float64 `json:"weights"`
	MetricScores map[string]float64 `json:"metricScores"`
}

// BenchmarkEstimates is the model-derived approximate benchmark block, used
// when no cohort statistics are available.
type BenchmarkEstimates struct {
	Cohort   Cohort              `json:"cohort"`
	Values   map[string]Estimate `json:"estimates"`
	Relative map[string]string   `json:"relative" validate:"omitempty,dive,caseinsensitiveoneof=above near below"`
	Notes    string              `json:"notes"`
}

type Estimate struct {
	Median float64 `json:"median"`
	Unit   string  `json:"unit"`
}
