package cart

import (
	"fmt"

	"github.com/muhammadheryan/cart-reservation/constant"
	"github.com/muhammadheryan/cart-reservation/model"
)

// Validation rules are pure: they gate mutations and also back read-only UI
// hints ("only 3 left"), so they must never touch state themselves.

// CanAdd decides whether requestedQty more units of a product may join a
// cart already holding existingQty of it. availableStock is the product's
// total stock minus what other sessions currently hold.
func CanAdd(availableStock int64, requestedQty, existingQty int) *model.ValidationResult {
	if requestedQty < 1 {
		return model.InvalidResult(model.SeverityError, "quantity must be at least 1")
	}
	if existingQty+requestedQty > constant.MaxUnitsPerProduct {
		return model.InvalidResult(model.SeverityWarning,
			fmt.Sprintf("maximum %d units per product", constant.MaxUnitsPerProduct))
	}
	if int64(requestedQty) > availableStock-int64(existingQty) {
		if availableStock-int64(existingQty) <= 0 {
			return model.InvalidResult(model.SeverityError, "no stock available")
		}
		return model.InvalidResult(model.SeverityError,
			fmt.Sprintf("only %d left in stock", availableStock-int64(existingQty)))
	}
	return model.ValidResult()
}

// CanUpdateQuantity decides whether a cart line may move to newQty.
// Decreases always pass; they only give capacity back.
func CanUpdateQuantity(line *model.CartLine, newQty int, availableStock int64) *model.ValidationResult {
	if newQty < 1 {
		return model.InvalidResult(model.SeverityError, "quantity must be at least 1")
	}
	if newQty <= line.Quantity {
		return model.ValidResult()
	}
	if newQty > constant.MaxUnitsPerProduct {
		return model.InvalidResult(model.SeverityWarning,
			fmt.Sprintf("maximum %d units per product", constant.MaxUnitsPerProduct))
	}
	delta := newQty - line.Quantity
	if int64(delta) > availableStock-int64(line.Quantity) {
		return model.InvalidResult(model.SeverityError,
			fmt.Sprintf("only %d in stock", availableStock))
	}
	return model.ValidResult()
}
