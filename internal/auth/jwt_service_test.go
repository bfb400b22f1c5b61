package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dovietdong/WebApiBase/internal/model"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.GenerateAccessToken(42, "admin", model.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestJWTService_ValidateToken_Failures(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	tests := []struct {
		name        string
		token       func(t *testing.T) string
		expectedErr error
	}{
		{
			name: "expired token",
			token: func(t *testing.T) string {
				expired := NewJWTService("test-secret", -time.Hour)
				token, err := expired.GenerateAccessToken(1, "user", model.RoleUser)
				assert.NoError(t, err)
				return token
			},
			expectedErr: ErrTokenExpired,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other := NewJWTService("other-secret", time.Hour)
				token, err := other.GenerateAccessToken(1, "user", model.RoleUser)
				assert.NoError(t, err)
				return token
			},
			expectedErr: ErrTokenSignatureInvalid,
		},
		{
			name: "garbage input",
			token: func(t *testing.T) string {
				return "not-a-jwt"
			},
			expectedErr: ErrTokenMalformed,
		},
		{
			name: "empty input",
			token: func(t *testing.T) string {
				return ""
			},
			expectedErr: ErrTokenMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token(t))
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestJWTService_RefreshTokenCarriesID(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	tokenID, token, err := svc.GenerateRefreshToken(7, "user", model.RoleUser)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, claims.ID)

	extracted, err := svc.ExtractTokenID(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, extracted)
}

func TestJWTService_ExtractTokenID_AccessTokenHasNone(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.GenerateAccessToken(7, "user", model.RoleUser)
	assert.NoError(t, err)

	_, err = svc.ExtractTokenID(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
