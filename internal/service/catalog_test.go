package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogMetricLabel(t *testing.T) {
	c := NewCatalog()

	tests := map[string]string{
		"arr":                 "ARR",
		"churnRate":           "Churn Rate",
		"growthYoY":           "Growth YoY",
		"runwayMonths":        "Runway (months)",
		"netRevenueRetention": "Net Revenue Retention",
		"burn_multiple":       "Burn Multiple",
		"nps score":           "Nps Score",
	}
	for key, want := range tests {
		assert.Equal(t, want, c.MetricLabel(key), "key %s", key)
	}
}

func TestCatalogCanonicalizeSector(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"synonym fold", "fintech & payments", []string{"Fintech"}},
		{"mixed known and unknown", "SaaS, Agritech", []string{"SaaS", "Agritech"}},
		{"stop words dropped", "the fintech industry", []string{"Fintech"}},
		{"digit tokens dropped", "b2c web3 gaming", []string{"Gaming"}},
		{"dedup keeps first", "health healthcare medtech", []string{"Healthtech"}},
		{"capped at four", "fintech saas gaming media travel logistics", []string{"Fintech", "SaaS", "Gaming", "Media"}},
		{"empty input", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.CanonicalizeSector(tt.raw))
		})
	}
}

func TestCatalogCanonicalizeStage(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"series letter", "series a", "Series A"},
		{"series punctuated", "Series-B round", "Series B"},
		{"pre-seed spaced", "pre seed", "Pre-Seed"},
		{"pre-seed hyphen", "Pre-Seed", "Pre-Seed"},
		{"seed", "seed stage", "Seed"},
		{"angel", "Angel round", "Angel"},
		{"growth", "late stage", "Growth"},
		{"unknown short", "bridge", "Bridge"},
		{"unknown long truncated", "unconventional convertible note round", "Unconventional Conve..."},
		{"empty", "", ""},
		{"symbols only", "???", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.CanonicalizeStage(tt.raw))
		})
	}
}
