package cart_test

import (
	"testing"

	cartapp "github.com/muhammadheryan/cart-reservation/application/cart"
	"github.com/muhammadheryan/cart-reservation/model"
	"github.com/stretchr/testify/assert"
)

func TestCanAdd(t *testing.T) {
	tests := []struct {
		name           string
		availableStock int64
		requestedQty   int
		existingQty    int
		wantValid      bool
		wantSeverity   model.Severity
	}{
		{
			name:           "success: first add within stock",
			availableStock: 10,
			requestedQty:   3,
			existingQty:    0,
			wantValid:      true,
		},
		{
			name:           "success: top-up stays under ceiling",
			availableStock: 20,
			requestedQty:   2,
			existingQty:    8,
			wantValid:      true,
		},
		{
			name:           "warning: ceiling exceeded",
			availableStock: 20,
			requestedQty:   3,
			existingQty:    8,
			wantValid:      false,
			wantSeverity:   model.SeverityWarning,
		},
		{
			name:           "error: no stock left",
			availableStock: 5,
			requestedQty:   1,
			existingQty:    5,
			wantValid:      false,
			wantSeverity:   model.SeverityError,
		},
		{
			name:           "error: partial stock left",
			availableStock: 4,
			requestedQty:   3,
			existingQty:    2,
			wantValid:      false,
			wantSeverity:   model.SeverityError,
		},
		{
			name:           "error: zero quantity",
			availableStock: 10,
			requestedQty:   0,
			existingQty:    0,
			wantValid:      false,
			wantSeverity:   model.SeverityError,
		},
		{
			name:           "warning: ceiling wins over stock check",
			availableStock: 2,
			requestedQty:   5,
			existingQty:    8,
			wantValid:      false,
			wantSeverity:   model.SeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cartapp.CanAdd(tt.availableStock, tt.requestedQty, tt.existingQty)
			assert.Equal(t, tt.wantValid, got.Valid)
			if !tt.wantValid {
				assert.Equal(t, tt.wantSeverity, got.Severity)
				assert.NotEmpty(t, got.Message)
			}
		})
	}
}

func TestCanUpdateQuantity(t *testing.T) {
	line := &model.CartLine{ProductID: 42, Quantity: 4, ProductStock: 10}

	tests := []struct {
		name           string
		newQty         int
		availableStock int64
		wantValid      bool
		wantSeverity   model.Severity
	}{
		{
			name:           "success: decrease always passes",
			newQty:         1,
			availableStock: 0,
			wantValid:      true,
		},
		{
			name:           "success: same quantity",
			newQty:         4,
			availableStock: 4,
			wantValid:      true,
		},
		{
			name:           "success: increase fits available stock",
			newQty:         6,
			availableStock: 10,
			wantValid:      true,
		},
		{
			name:           "warning: increase past ceiling",
			newQty:         11,
			availableStock: 20,
			wantValid:      false,
			wantSeverity:   model.SeverityWarning,
		},
		{
			name:           "error: increase past stock",
			newQty:         8,
			availableStock: 6,
			wantValid:      false,
			wantSeverity:   model.SeverityError,
		},
		{
			name:           "error: zero quantity",
			newQty:         0,
			availableStock: 10,
			wantValid:      false,
			wantSeverity:   model.SeverityError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cartapp.CanUpdateQuantity(line, tt.newQty, tt.availableStock)
			assert.Equal(t, tt.wantValid, got.Valid)
			if !tt.wantValid {
				assert.Equal(t, tt.wantSeverity, got.Severity)
			}
		})
	}
}
