package model

import (
	"gopkg.in/guregu/null.v3"
)

// MetricSeries is the derived, per-render-pass comparable series: index-aligned
// parallel sequences over a chosen set of metric keys. All slices share the
// same length and key order.
type MetricSeries struct {
	Keys          []string     `json:"keys"`
	Labels        []string     `json:"labels"`
	Percentiles   []float64    `json:"percentiles"`
	CompanyValues []null.Float `json:"companyValues"`
	Medians       []float64    `json:"medians"`

	// UseEstimates reports that the series was built from model-derived
	// estimates rather than cohort benchmarks.
	UseEstimates bool `json:"useEstimates"`

	// HideCompanySeries is set when every company value is absent, so the
	// company series must not be drawn at all.
	HideCompanySeries bool `json:"hideCompanySeries"`
}

// Empty reports whether there is no usable metric at all, in which case
// callers skip chart construction entirely.
func (s *MetricSeries) Empty() bool {
	return s == nil || len(s.Keys) == 0
}

// Len returns the shared length of the aligned sequences.
func (s *MetricSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Keys)
}
