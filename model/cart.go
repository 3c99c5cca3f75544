package model

import "time"

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// CartLine is one product entry in a session's cart. ProductStock is the
// last stock figure the engine has seen for the product; it is refreshed
// opportunistically and never used to clamp an existing hold.
type CartLine struct {
	ProductID    uint64    `json:"product_id"`
	Quantity     int       `json:"quantity"`
	ProductStock int64     `json:"product_stock"`
	ReservedAt   time.Time `json:"reserved_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// ValidationResult is returned by every cart mutation instead of an error,
// so callers can render soft warnings and hard blocks differently.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Message  string   `json:"message,omitempty"`
	Severity Severity `json:"severity,omitempty"`
}

func ValidResult() *ValidationResult {
	return &ValidationResult{Valid: true}
}

func InvalidResult(severity Severity, message string) *ValidationResult {
	return &ValidationResult{Valid: false, Message: message, Severity: severity}
}

type AddItemRequest struct {
	ProductID    uint64 `json:"product_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,min=1"`
	ProductStock int64  `json:"product_stock" validate:"min=0"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type CartResponse struct {
	Items []CartLine `json:"items"`
	// HoldWindowDays feeds the "reserved for purchase" line in the cart UI.
	HoldWindowDays int `json:"hold_window_days"`
}

// StockUpdateMessage mirrors the backend's stock-change feed payload.
type StockUpdateMessage struct {
	ProductID uint64 `json:"product_id"`
	Stock     int64  `json:"stock"`
}
