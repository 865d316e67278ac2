package repositories

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/example/studytracker/internal/logger"
)

const sessionKeyPrefix = "session:"

// SessionRepository holds session state server-side in Redis.
// A token is either absent or active; it becomes active on Open and
// absent again on Close. Sessions carry no TTL, they live until an
// explicit Close.
type SessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new repository instance.
func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

// Open generates a fresh opaque token, binds it to the student id and
// returns the token.
func (r *SessionRepository) Open(ctx context.Context, studentID int64) (string, error) {
	token := uuid.NewString()
	key := sessionKeyPrefix + token

	err := r.client.Set(ctx, key, studentID, 0).Err()

	logger.Log.Infow(
		"key", key,
		"student_id", studentID,
		"error", err,
	)

	if err != nil {
		return "", err
	}

	return token, nil
}

// Resolve returns the student id bound to the token. The second return
// value is false when the token is not active.
func (r *SessionRepository) Resolve(ctx context.Context, token string) (int64, bool, error) {
	key := sessionKeyPrefix + token

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}

	studentID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		logger.Log.Errorw("malformed session value", "key", key, "value", val, "error", err)
		return 0, false, err
	}

	logger.Log.Infow(
		"key", key,
		"result", studentID,
		"error", nil,
	)

	return studentID, true, nil
}

// Close invalidates the token. The return value is false when the token
// was not active.
func (r *SessionRepository) Close(ctx context.Context, token string) (bool, error) {
	key := sessionKeyPrefix + token

	deleted, err := r.client.Del(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", deleted,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}
