package constant

// Metric keys as emitted by the evaluation pipeline. The set mirrors the
// extractor on the analysis side; unknown keys are still rendered with a
// title-cased fallback label.
const (
	MetricARR          = "arr"
	MetricMRR          = "mrr"
	MetricCAC          = "cac"
	MetricLTV          = "ltv"
	MetricChurnRate    = "churnRate"
	MetricGrowthYoY    = "growthYoY"
	MetricGrowthMoM    = "growthMoM"
	MetricHeadcount    = "headcount"
	MetricRunwayMonths = "runwayMonths"
	MetricGrossMargin  = "grossMargin"
)

// MetricOrder fixes the display order of known metrics in series and export
// sections. Unknown keys sort after these, alphabetically.
var MetricOrder = []string{
	MetricARR,
	MetricMRR,
	MetricGrowthYoY,
	MetricGrowthMoM,
	MetricGrossMargin,
	MetricChurnRate,
	MetricCAC,
	MetricLTV,
	MetricRunwayMonths,
	MetricHeadcount,
}

// MetricLabels maps known metric keys to curated display labels.
var MetricLabels = map[string]string{
	MetricARR:          "ARR",
	MetricMRR:          "MRR",
	MetricCAC:          "CAC",
	MetricLTV:          "LTV",
	MetricChurnRate:    "Churn Rate",
	MetricGrowthYoY:    "Growth YoY",
	MetricGrowthMoM:    "Growth MoM",
	MetricHeadcount:    "Headcount",
	MetricRunwayMonths: "Runway (months)",
	MetricGrossMargin:  "Gross Margin",
}

// PercentLikeMetrics are the four metrics whose extracted values may arrive as
// fractions (0.42) or percentages (42) depending on the upstream document.
// Values <= 1 are treated as fractions and scaled by 100 regardless of the
// declared unit.
var PercentLikeMetrics = map[string]struct{}{
	MetricGrowthYoY:   {},
	MetricGrowthMoM:   {},
	MetricChurnRate:   {},
	MetricGrossMargin: {},
}

// MetricAliases is the fixed fallback table used when resolving a company
// value from extracted metrics for the four percent-like keys. Direct key
// lookup always wins; aliases are probed in order.
var MetricAliases = map[string][]string{
	MetricGrowthYoY:   {"growth_yoy", "growthYoy", "yoyGrowth", "growth"},
	MetricGrowthMoM:   {"growth_mom", "growthMom", "momGrowth"},
	MetricChurnRate:   {"churn_rate", "churn", "monthlyChurn"},
	MetricGrossMargin: {"gross_margin", "margin", "gm"},
}
