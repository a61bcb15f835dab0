package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const registrationTTL = 30 * time.Second

// releaseScript deletes the lock only while it still holds the caller's
// token, so a holder whose lock expired cannot drop its successor's.
var releaseScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// RegistrationLock keeps two registrations of the same email from running
// their check-then-insert at the same time.
// Key format: register:<email>, value: the holder's token.
type RegistrationLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRegistrationLock creates a RegistrationLock wrapping the given Redis client.
func NewRegistrationLock(client *redis.Client) *RegistrationLock {
	return &RegistrationLock{client: client, ttl: registrationTTL}
}

// Acquire tries to take the lock and returns the token Release must present.
// ok is false when another registration holds it. The lock expires after
// the TTL so a crashed holder cannot block the email forever.
func (l *RegistrationLock) Acquire(ctx context.Context, email string) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, lockKey(email), token, l.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("registration lock: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release drops the lock if token still owns it.
func (l *RegistrationLock) Release(ctx context.Context, email, token string) error {
	if token == "" {
		return nil
	}
	if err := releaseScript.Run(ctx, l.client, []string{lockKey(email)}, token).Err(); err != nil {
		return fmt.Errorf("registration unlock: %w", err)
	}
	return nil
}

func lockKey(email string) string {
	return "register:" + email
}
