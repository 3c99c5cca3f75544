package context

import (
	"context"

	"github.com/muhammadheryan/cart-reservation/constant"
)

func GetSessionID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.SessionIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
