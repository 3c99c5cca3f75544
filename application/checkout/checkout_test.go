package checkout_test

import (
	"testing"

	checkoutapp "github.com/muhammadheryan/cart-reservation/application/checkout"
	storemocks "github.com/muhammadheryan/cart-reservation/mocks/application/reservation"
	"github.com/muhammadheryan/cart-reservation/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateCheckout(t *testing.T) {
	type lineState struct {
		line      model.CartLine
		reserved  int
		available int64
	}
	tests := []struct {
		name      string
		lines     []lineState
		wantValid bool
		wantPass  []bool
	}{
		{
			name: "success: every line fully reserved and in stock",
			lines: []lineState{
				{line: model.CartLine{ProductID: 42, Quantity: 3, ProductStock: 10}, reserved: 3, available: 10},
				{line: model.CartLine{ProductID: 43, Quantity: 1, ProductStock: 2}, reserved: 1, available: 2},
			},
			wantValid: true,
			wantPass:  []bool{true, true},
		},
		{
			name: "fail: reservation expired under a line",
			lines: []lineState{
				{line: model.CartLine{ProductID: 42, Quantity: 3, ProductStock: 10}, reserved: 0, available: 10},
			},
			wantValid: false,
			wantPass:  []bool{false},
		},
		{
			name: "fail: stock dropped below held quantity",
			lines: []lineState{
				{line: model.CartLine{ProductID: 42, Quantity: 5, ProductStock: 3}, reserved: 5, available: 3},
			},
			wantValid: false,
			wantPass:  []bool{false},
		},
		{
			name: "fail: one bad line poisons the report",
			lines: []lineState{
				{line: model.CartLine{ProductID: 42, Quantity: 2, ProductStock: 10}, reserved: 2, available: 8},
				{line: model.CartLine{ProductID: 43, Quantity: 4, ProductStock: 10}, reserved: 1, available: 10},
			},
			wantValid: false,
			wantPass:  []bool{true, false},
		},
		{
			name:      "fail: empty cart has nothing to commit",
			lines:     nil,
			wantValid: false,
			wantPass:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storemocks.NewReservationStore(t)
			lines := make([]model.CartLine, 0, len(tt.lines))
			for _, ls := range tt.lines {
				lines = append(lines, ls.line)
				store.On("ReservedQuantity", "s1", ls.line.ProductID).Return(ls.reserved).Once()
				store.On("AvailableStock", "s1", ls.line.ProductID, ls.line.ProductStock).Return(ls.available).Once()
			}

			report := checkoutapp.NewValidator(store, nil).ValidateCheckout("s1", lines)

			assert.Equal(t, tt.wantValid, report.AllValid)
			require.Len(t, report.PerLine, len(tt.wantPass))
			for i, pass := range tt.wantPass {
				assert.Equal(t, pass, report.PerLine[i].HasEnoughStock)
				assert.Equal(t, tt.lines[i].reserved, report.PerLine[i].Reserved)
				assert.Equal(t, tt.lines[i].line.Quantity, report.PerLine[i].Requested)
				assert.Equal(t, tt.lines[i].available, report.PerLine[i].Available)
			}
		})
	}
}
