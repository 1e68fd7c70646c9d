package models

// NormalizedPosition is one flattened line item with its attributes resolved
// through the ordered field candidate chains. ProductID and CategoryID are
// nil when no candidate resolved; Quantity is always finite and
// non-negative; AmountMinor is in minor currency units (kopecks).
type NormalizedPosition struct {
	ProductID   *int64  `json:"product_id"`
	CategoryID  *int64  `json:"category_id"`
	Quantity    float64 `json:"quantity"`
	AmountMinor int64   `json:"amount_minor"`
}
