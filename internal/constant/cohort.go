package constant

// Sector and stage canonicalization tables. These are closed, hand-maintained
// dictionaries: configuration data, not logic. Keep entries lowercase.

// SectorSynonyms maps raw sector tokens to canonical sector names.
var SectorSynonyms = map[string]string{
	"saas":          "SaaS",
	"software":      "SaaS",
	"b2b":           "SaaS",
	"fintech":       "Fintech",
	"payments":      "Fintech",
	"banking":       "Fintech",
	"bfsi":          "Fintech",
	"lending":       "Fintech",
	"insurtech":     "Fintech",
	"healthtech":    "Healthtech",
	"health":        "Healthtech",
	"healthcare":    "Healthtech",
	"medtech":       "Healthtech",
	"edtech":        "Edtech",
	"education":     "Edtech",
	"ecommerce":     "E-commerce",
	"commerce":      "E-commerce",
	"retail":        "E-commerce",
	"marketplace":   "Marketplace",
	"resale":        "Marketplace",
	"logistics":     "Logistics",
	"mobility":      "Mobility",
	"transport":     "Mobility",
	"gaming":        "Gaming",
	"games":         "Gaming",
	"ai":            "AI",
	"ml":            "AI",
	"security":      "Security",
	"cybersecurity": "Security",
	"proptech":      "Proptech",
	"realestate":    "Proptech",
	"media":         "Media",
	"travel":        "Travel",
	"hr":            "HR Tech",
	"ites":          "IT Services",
}

// SectorStopWords are tokens discarded before synonym lookup.
var SectorStopWords = map[string]struct{}{
	"the":      {},
	"and":      {},
	"of":       {},
	"for":      {},
	"in":       {},
	"a":        {},
	"an":       {},
	"tech":     {},
	"sector":   {},
	"industry": {},
	"startup":  {},
	"company":  {},
	"platform": {},
}

// SectorCap limits how many canonical sectors a raw string may yield.
const SectorCap = 4

// StageTruncateLen bounds the cleaned fallback rendering of an unrecognized
// stage string; overflow is marked with an ellipsis.
const StageTruncateLen = 20
