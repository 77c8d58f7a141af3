package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"venturelens.dev/reportengine/internal/constant"
	"venturelens.dev/reportengine/internal/model"
	"venturelens.dev/reportengine/internal/pkg/capability"
	"venturelens.dev/reportengine/internal/pkg/observability"
	"venturelens.dev/reportengine/internal/pkg/rderr"
	"venturelens.dev/reportengine/internal/pkg/typeset"
)

// estimateDisclaimer trails the model-derived benchmark section so readers do
// not mistake approximations for cohort statistics.
const estimateDisclaimer = "Estimates are directional; validate against dataset medians for the cohort."

// Exporter produces the downloadable report document. The section order is
// fixed and independent of which charts happen to be on screen.
type Exporter struct {
	catalog *Catalog
	caps    *capability.Provider
}

func NewExporter(catalog *Catalog, caps *capability.Provider) *Exporter {
	return &Exporter{catalog: catalog, caps: caps}
}

// BuildReport lays out the full document and returns the encoded bytes. Any
// panic from the layout path is captured and surfaced as an export failure so
// a malformed result can never take the process down.
func (x *Exporter) BuildReport(ctx context.Context, res *model.AnalysisResult) (out []byte, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("report layout panicked")
			out, err = nil, rderr.ErrExportFailure
		}
		observability.ExportDuration.WithLabelValues().Observe(time.Since(start).Seconds())
	}()

	engine, err := x.caps.Export(ctx)
	if err != nil {
		return nil, rderr.ErrCapabilityFailure
	}

	dev := engine.NewDevice()
	e := typeset.New(dev, "VentureLens", x.tagline(res.Cohort))

	e.Title("Startup Evaluation Report")
	e.Gap(0.5)

	if res.ExecutiveSummary != "" {
		e.Section("Executive Summary")
		e.Paragraph(res.ExecutiveSummary)
		e.Gap(1)
	}

	x.marketAnalysis(e, res.MarketAnalysis)
	x.risks(e, res.Risks)
	x.recommendations(e, res.Recommendations)
	x.benchmarks(e, res)
	x.estimates(e, res.Estimates)
	x.score(e, res.Score)

	e.Finalize()

	out, err = dev.Bytes()
	if err != nil {
		log.Error().Err(err).Msg("failed to encode report document")
		return nil, rderr.ErrExportFailure
	}
	return out, nil
}

func (x *Exporter) tagline(c model.Cohort) string {
	sector := strings.Join(x.catalog.CanonicalizeSector(c.Sector), ", ")
	stage := x.catalog.CanonicalizeStage(c.Stage)
	switch {
	case sector != "" && stage != "":
		return fmt.Sprintf("%s / %s", sector, stage)
	case sector != "":
		return sector
	case stage != "":
		return stage
	default:
		return "Confidential"
	}
}

func (x *Exporter) marketAnalysis(e *typeset.Engine, m model.MarketAnalysis) {
	fields := []struct {
		label string
		value string
		list  bool
	}{
		{"Market Size", m.MarketSize, false},
		{"Growth Rate", m.GrowthRate, false},
		{"Competition", m.Competition, true},
		{"Entry Barriers", m.EntryBarriers, false},
		{"Regulation", m.Regulation, false},
	}
	allEmpty := true
	for _, f := range fields {
		if strings.TrimSpace(f.value) != "" {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		return
	}

	e.Section("Market Analysis")
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			continue
		}
		e.Label(f.label)
		if items := listItems(f.value); f.list && len(items) >= 2 {
			e.Bullets(items)
		} else {
			e.Paragraph(f.value)
		}
		e.Gap(0.5)
	}
	e.Gap(0.5)
}

// listItems splits prose that is really an enumeration. Only applied to
// fields known to arrive as either form.
func listItems(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

func (x *Exporter) risks(e *typeset.Engine, risks []model.Risk) {
	if len(risks) == 0 {
		return
	}
	e.Section("Key Risks")
	for _, r := range risks {
		label := r.Factor
		if r.Impact != "" {
			label = fmt.Sprintf("%s (%s impact)", r.Factor, r.Impact)
		}
		e.Label(label)
		if r.Description != "" {
			e.Paragraph(r.Description)
		}
		e.Gap(0.5)
	}
	e.Gap(0.5)
}

func (x *Exporter) recommendations(e *typeset.Engine, recs []model.Recommendation) {
	if len(recs) == 0 {
		return
	}
	e.Section("Recommendations")
	e.Bullets(lo.Map(recs, func(r model.Recommendation, _ int) string {
		if r.Description == "" {
			return r.Title
		}
		return fmt.Sprintf("%s: %s", r.Title, r.Description)
	}))
	e.Gap(1)
}

func (x *Exporter) benchmarks(e *typeset.Engine, res *model.AnalysisResult) {
	if len(res.Benchmarks) == 0 {
		return
	}
	e.Section("Cohort Benchmarks")
	for _, key := range orderedMetricKeys(lo.Keys(res.Benchmarks)) {
		b := res.Benchmarks[key]
		company := "n/a"
		if b.CompanyValue.Valid {
			company = formatNumber(b.CompanyValue.Float64)
		}
		line := fmt.Sprintf("%s: company %s, cohort median %s",
			x.catalog.MetricLabel(key), company, formatNumber(b.Median))
		if b.Status != "" {
			line += fmt.Sprintf(" (%s median)", b.Status)
		}
		e.Paragraph(line)
	}
	e.Gap(1)
}

func (x *Exporter) estimates(e *typeset.Engine, est *model.BenchmarkEstimates) {
	if est == nil || len(est.Values) == 0 {
		return
	}
	e.Section("Benchmark Estimates")
	for _, key := range orderedMetricKeys(lo.Keys(est.Values)) {
		v := est.Values[key]
		line := fmt.Sprintf("%s: ~%s", x.catalog.MetricLabel(key), formatNumber(v.Median))
		if v.Unit != "" {
			line += " " + v.Unit
		}
		if rel, ok := est.Relative[key]; ok && rel != "" {
			line += fmt.Sprintf(" (%s cohort median)", rel)
		}
		e.Paragraph(line)
	}
	if est.Notes != "" {
		e.Gap(0.5)
		e.Paragraph(est.Notes)
	}
	e.Gap(0.5)
	e.Paragraph(estimateDisclaimer)
	e.Gap(1)
}

func (x *Exporter) score(e *typeset.Engine, score *model.CompositeScore) {
	if score == nil {
		return
	}
	e.Section("Composite Score")
	line := fmt.Sprintf("%.2f", score.Value)
	if score.Verdict != "" {
		line += fmt.Sprintf(" (%s)", score.Verdict)
	}
	e.Label(line)
}

// FileName is the fixed download name for the exported document.
func (x *Exporter) FileName() string {
	return constant.ExportFileName
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
