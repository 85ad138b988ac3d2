package model

// Product is the slice of a shop product the assignment job reads.
// MetafieldValue is nil when the product has no value for the configured metafield.
type Product struct {
	ID             string
	Title          string
	VariantIDs     []string
	MetafieldValue *string
}

// MatchesMetafield reports whether the product carries exactly value.
// A product without the metafield never matches.
func (p Product) MatchesMetafield(value string) bool {
	return p.MetafieldValue != nil && *p.MetafieldValue == value
}

type DeliveryProfile struct {
	ID   string
	Name string
}
