// Package session tracks HTTP API logins. The console app keeps a single
// in-process current user; the API instead hands out tokens backed by
// redis so each request carries its own identity.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-railway-admin/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session not found")

// Session is the per-token state stored in redis.
type Session struct {
	Username string         `json:"username"`
	Role     model.UserRole `json:"role"`
}

func (s *Session) IsAdmin() bool {
	return s.Role == model.RoleAdmin
}

type Store interface {
	Create(ctx context.Context, session Session) (string, error)
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(token string) string {
	return fmt.Sprintf("sessions:%s", token)
}

// Create stores the session under a fresh token and returns the token.
func (s *RedisStore) Create(ctx context.Context, session Session) (string, error) {
	token := uuid.New().String()
	data, err := json.Marshal(session)
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, s.key(token), data, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	result, err := s.client.Get(ctx, s.key(token)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var session Session
	if err := json.Unmarshal([]byte(result), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}
