package payment

import (
	"context"
	"fmt"
	"time"

	"eventure/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisSessionStore tracks open checkout sessions so a user cannot start two
// payments for the same scooter at once. Sessions expire on their own if the
// client never confirms or dismisses.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(userID, scooterID uuid.UUID) string {
	return fmt.Sprintf("checkout:%s:%s", userID, scooterID)
}

func (s *RedisSessionStore) Open(ctx context.Context, userID, scooterID uuid.UUID, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, sessionKey(userID, scooterID), time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, errs.Wrap(err, "failed to open checkout session")
	}
	return ok, nil
}

func (s *RedisSessionStore) Close(ctx context.Context, userID, scooterID uuid.UUID) error {
	if err := s.client.Del(ctx, sessionKey(userID, scooterID)).Err(); err != nil {
		return errs.Wrap(err, "failed to close checkout session")
	}
	return nil
}
