package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"minesbot/models"
)

const sessionKeyPrefix = "minesbot:session:"

// RedisSessionStore keeps game sessions in Redis so they survive restarts
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore connects to Redis at the given URL and verifies the connection
func NewRedisSessionStore(ctx context.Context, redisURL string) (*RedisSessionStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisSessionStore{client: client}, nil
}

// Get returns the user's session, nil if absent
func (s *RedisSessionStore) Get(ctx context.Context, userID int64) (*models.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session for user %d: %w", userID, err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session for user %d: %w", userID, err)
	}
	return &session, nil
}

// Put stores the user's session, replacing any existing one
func (s *RedisSessionStore) Put(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session for user %d: %w", session.UserID, err)
	}

	if err := s.client.Set(ctx, sessionKey(session.UserID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store session for user %d: %w", session.UserID, err)
	}
	return nil
}

// Remove deletes the user's session if present
func (s *RedisSessionStore) Remove(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to remove session for user %d: %w", userID, err)
	}
	return nil
}

// Clear deletes every stored session
func (s *RedisSessionStore) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, sessionKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete session key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan sessions: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection
func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("%s%d", sessionKeyPrefix, userID)
}
