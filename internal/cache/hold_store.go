package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"museum-ticketing/internal/model"
	apperrors "museum-ticketing/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

// HoldStore 每個 session 只有一格 Hold；Put 直接覆蓋前一筆並重設 TTL。
// Hold 不佔用容量帳，過期或遺失等同放棄，不需回滾任何資源。
type HoldStore interface {
	Put(ctx context.Context, sessionID string, hold *model.BookingHold) error
	Get(ctx context.Context, sessionID string) (*model.BookingHold, error)
	Delete(ctx context.Context, sessionID string) error
}

type RedisHoldStore struct {
	client *redis.Client
	ttl    time.Duration
}

const defaultHoldTTL = 30 * time.Minute

func NewRedisHoldStore(client *redis.Client, ttl time.Duration) HoldStore {
	if ttl <= 0 {
		ttl = defaultHoldTTL
	}
	return &RedisHoldStore{
		client: client,
		ttl:    ttl,
	}
}

// Hold 的 key
func (s *RedisHoldStore) getHoldKey(sessionID string) string {
	return fmt.Sprintf("booking:hold:%s", sessionID)
}

func (s *RedisHoldStore) Put(ctx context.Context, sessionID string, hold *model.BookingHold) error {
	data, err := json.Marshal(hold)
	if err != nil {
		return fmt.Errorf("marshal hold: %w", err)
	}
	return s.client.Set(ctx, s.getHoldKey(sessionID), data, s.ttl).Err()
}

func (s *RedisHoldStore) Get(ctx context.Context, sessionID string) (*model.BookingHold, error) {
	data, err := s.client.Get(ctx, s.getHoldKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, apperrors.ErrNoActiveHold
	}
	if err != nil {
		return nil, err
	}

	var hold model.BookingHold
	if err := json.Unmarshal(data, &hold); err != nil {
		return nil, fmt.Errorf("unmarshal hold: %w", err)
	}
	return &hold, nil
}

func (s *RedisHoldStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.getHoldKey(sessionID)).Err()
}
