package holdstate

import (
	"testing"

	"github.com/muhammadheryan/cart-reservation/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSnapshot(t *testing.T) {
	tests := []struct {
		name   string
		blob   string
		wantOK bool
		want   map[uint64]model.PersistedHold
	}{
		{
			name:   "success: well formed snapshot",
			blob:   `{"42":{"quantity":3,"expires_at":1750000000000},"43":{"quantity":1,"expires_at":1750000100000}}`,
			wantOK: true,
			want: map[uint64]model.PersistedHold{
				42: {Quantity: 3, ExpiresAt: 1750000000000},
				43: {Quantity: 1, ExpiresAt: 1750000100000},
			},
		},
		{
			name:   "corrupt: not json",
			blob:   `{"42":{"quantity"`,
			wantOK: false,
		},
		{
			name:   "corrupt: wrong shape",
			blob:   `[1,2,3]`,
			wantOK: false,
		},
		{
			name:   "corrupt: zero quantity entry poisons the whole blob",
			blob:   `{"42":{"quantity":3,"expires_at":1750000000000},"43":{"quantity":0,"expires_at":1750000100000}}`,
			wantOK: false,
		},
		{
			name:   "corrupt: missing expiry",
			blob:   `{"42":{"quantity":3}}`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeSnapshot([]byte(tt.blob))
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
