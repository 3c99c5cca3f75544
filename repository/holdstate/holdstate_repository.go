package holdstate

import (
	"context"
	"encoding/json"
	"strings"

	redisclient "github.com/muhammadheryan/cart-reservation/cmd/redis"
	"github.com/muhammadheryan/cart-reservation/model"
	"github.com/muhammadheryan/cart-reservation/utils/logger"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "hold:"

// Repository persists the reservation map per session. It is the only
// component allowed to touch the storage medium for hold state; everything
// else goes through the reservation store.
type Repository interface {
	Save(ctx context.Context, sessionID string, holds map[uint64]model.PersistedHold) error
	Load(ctx context.Context, sessionID string) (map[uint64]model.PersistedHold, error)
	LoadAll(ctx context.Context) (map[string]map[uint64]model.PersistedHold, error)
	Delete(ctx context.Context, sessionID string) error
}

type redisRepo struct{}

// NewRepository returns a redis-backed hold state Repository.
func NewRepository() Repository {
	return &redisRepo{}
}

// Save overwrites the stored snapshot for a session. An empty map removes
// the key so stale sessions do not pile up.
func (r *redisRepo) Save(ctx context.Context, sessionID string, holds map[uint64]model.PersistedHold) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	if len(holds) == 0 {
		return client.Del(ctx, keyPrefix+sessionID).Err()
	}
	blob, err := json.Marshal(holds)
	if err != nil {
		return err
	}
	return client.Set(ctx, keyPrefix+sessionID, blob, 0).Err()
}

// Load returns the stored snapshot for a session. A corrupt blob is
// discarded wholesale and treated as "no reservations".
func (r *redisRepo) Load(ctx context.Context, sessionID string) (map[uint64]model.PersistedHold, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	val, err := client.Get(ctx, keyPrefix+sessionID).Result()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	holds, ok := decodeSnapshot([]byte(val))
	if !ok {
		logger.Warn("[Load] discarding corrupt hold snapshot", zap.String("session_id", sessionID))
		_ = client.Del(ctx, keyPrefix+sessionID).Err()
		return nil, nil
	}
	return holds, nil
}

// LoadAll scans every stored session snapshot, used once at startup to
// rehydrate the reservation store.
func (r *redisRepo) LoadAll(ctx context.Context) (map[string]map[uint64]model.PersistedHold, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}

	out := make(map[string]map[uint64]model.PersistedHold)
	iter := client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		sessionID := strings.TrimPrefix(key, keyPrefix)
		holds, err := r.Load(ctx, sessionID)
		if err != nil {
			logger.Warn("[LoadAll] load session failed", zap.String("session_id", sessionID), zap.Error(err))
			continue
		}
		if len(holds) > 0 {
			out[sessionID] = holds
		}
	}
	if err := iter.Err(); err != nil {
		return out, err
	}
	return out, nil
}

func (r *redisRepo) Delete(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, keyPrefix+sessionID).Err()
}

// decodeSnapshot parses a stored blob. Any structural problem invalidates
// the whole snapshot; partial state is never trusted.
func decodeSnapshot(blob []byte) (map[uint64]model.PersistedHold, bool) {
	var holds map[uint64]model.PersistedHold
	if err := json.Unmarshal(blob, &holds); err != nil {
		return nil, false
	}
	for productID, hold := range holds {
		if productID == 0 || hold.Quantity < 1 || hold.ExpiresAt <= 0 {
			return nil, false
		}
	}
	return holds, true
}
