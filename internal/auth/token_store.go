package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dovietdong/WebApiBase/internal/cache"
	"github.com/dovietdong/WebApiBase/internal/model"
)

const refreshTokenKeyPrefix = "refresh_token:"

// refreshState is the identity snapshot stored per refresh token.
type refreshState struct {
	UserID   uint       `json:"user_id"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

// TokenStoreInterface defines the interface for refresh token storage.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID string, userID uint, username string, role model.Role, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (userID uint, username string, role model.Role, err error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
}

// TokenStore keeps refresh token state in Redis, keyed by JTI.
type TokenStore struct {
	cache *cache.Client
}

var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// StoreRefreshToken stores a refresh token in Redis with TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, username string, role model.Role, ttl time.Duration) error {
	payload, err := json.Marshal(refreshState{
		UserID:   userID,
		Username: username,
		Role:     role,
	})
	if err != nil {
		return fmt.Errorf("marshal token state: %w", err)
	}

	return s.cache.Set(ctx, refreshTokenKeyPrefix+tokenID, payload, ttl)
}

// GetRefreshToken retrieves refresh token state from Redis.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, model.Role, error) {
	data, err := s.cache.Get(ctx, refreshTokenKeyPrefix+tokenID)
	if err != nil || data == nil {
		return 0, "", "", fmt.Errorf("refresh token not found")
	}

	var state refreshState
	if err := json.Unmarshal(data, &state); err != nil {
		return 0, "", "", fmt.Errorf("unmarshal token state: %w", err)
	}

	return state.UserID, state.Username, state.Role, nil
}

// DeleteRefreshToken removes a refresh token from Redis.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, refreshTokenKeyPrefix+tokenID)
}
