package analytics

import "strings"

// Promotional SKU markers. MFPR-prefixed SKUs are giveaway/sampler
// items and MFPETR is the standalone promo torch lighter; none of them
// represent real sell-through and they are excluded from every
// aggregate the engine produces.
const (
	promoPrefix = "MFPR"
	promoTorch  = "MFPETR"
)

// IsPromotional reports whether a SKU is a promotional item. Matching
// is case-sensitive: the catalog convention is all-uppercase SKUs.
func IsPromotional(sku string) bool {
	return strings.HasPrefix(sku, promoPrefix) || sku == promoTorch
}

// countable reports whether a line item participates in analytics:
// note lines and promotional SKUs do not.
func countable(it LineItem) bool {
	return !it.Note && !IsPromotional(it.SKU)
}
