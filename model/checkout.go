package model

// CheckoutLineReport is the per-line verdict of checkout validation.
type CheckoutLineReport struct {
	ProductID      uint64 `json:"product_id"`
	HasEnoughStock bool   `json:"has_enough_stock"`
	Reserved       int    `json:"reserved"`
	Requested      int    `json:"requested"`
	Available      int64  `json:"available"`
}

// CheckoutReport is the final gate before purchase commit. AllValid is the
// conjunction over all lines; an empty cart is never valid to commit.
type CheckoutReport struct {
	AllValid bool                 `json:"all_valid"`
	PerLine  []CheckoutLineReport `json:"per_line"`
}
