package service

import (
	"regexp"
	"strings"

	"venturelens.dev/reportengine/internal/constant"
)

// Catalog is the static label/alias/unit knowledge for metrics and cohort
// canonicalization. Pure and deterministic; it never fails.
type Catalog struct{}

func NewCatalog() *Catalog {
	return &Catalog{}
}

var (
	camelBoundary  = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	keySeparators  = regexp.MustCompile(`[_\-\s]+`)
	sectorTokenRe  = regexp.MustCompile(`[^a-zA-Z0-9]+`)
	stageSeriesRe  = regexp.MustCompile(`series[\s_-]*([a-z])`)
	stagePreSeedRe = regexp.MustCompile(`pre[\s_-]*seed`)
	stageCleanRe   = regexp.MustCompile(`[^a-zA-Z0-9 ]+`)
)

// MetricLabel returns the curated display label for known metric keys, and a
// title-cased rendering of the key otherwise.
func (c *Catalog) MetricLabel(key string) string {
	if label, ok := constant.MetricLabels[key]; ok {
		return label
	}
	spaced := camelBoundary.ReplaceAllString(key, "$1 $2")
	spaced = keySeparators.ReplaceAllString(spaced, " ")
	return titleCase(spaced)
}

// CanonicalizeSector reduces a raw sector string to at most SectorCap
// canonical sector names: tokenize, drop digit-bearing and stop-word tokens,
// fold the rest through the synonym table, deduplicate preserving first
// occurrence.
func (c *Catalog) CanonicalizeSector(raw string) []string {
	tokens := sectorTokenRe.Split(strings.ToLower(strings.TrimSpace(raw)), -1)

	var (
		out  []string
		seen = map[string]struct{}{}
	)
	for _, tok := range tokens {
		if tok == "" || strings.ContainsAny(tok, "0123456789") {
			continue
		}
		if !isAlpha(tok) {
			continue
		}
		if _, stop := constant.SectorStopWords[tok]; stop {
			continue
		}
		canonical, ok := constant.SectorSynonyms[tok]
		if !ok {
			canonical = titleCase(tok)
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		out = append(out, canonical)
		if len(out) == constant.SectorCap {
			break
		}
	}
	return out
}

// CanonicalizeStage maps a raw stage string to its canonical display form.
// Patterns are matched in order and the first match wins; an unrecognized
// stage falls back to a cleaned, title-cased truncation. Empty input yields
// empty output.
func (c *Catalog) CanonicalizeStage(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	switch {
	case stagePreSeedRe.MatchString(s):
		return "Pre-Seed"
	case strings.Contains(s, "seed"):
		return "Seed"
	case strings.Contains(s, "angel"):
		return "Angel"
	}
	if m := stageSeriesRe.FindStringSubmatch(s); m != nil {
		return "Series " + strings.ToUpper(m[1])
	}
	if strings.Contains(s, "growth") || strings.Contains(s, "late") {
		return "Growth"
	}

	cleaned := strings.TrimSpace(stageCleanRe.ReplaceAllString(s, ""))
	if cleaned == "" {
		return ""
	}
	cleaned = titleCase(cleaned)
	if len(cleaned) > constant.StageTruncateLen {
		cleaned = cleaned[:constant.StageTruncateLen] + "..."
	}
	return cleaned
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
