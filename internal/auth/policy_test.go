package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dovietdong/WebApiBase/internal/errors"
	"github.com/dovietdong/WebApiBase/internal/model"
)

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name    string
		claims  *Claims
		allowed bool
	}{
		{"admin role", &Claims{UserID: 1, Role: model.RoleAdmin}, true},
		{"user role", &Claims{UserID: 1, Role: model.RoleUser}, false},
		{"nil claims", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireAdmin(tt.claims)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errors.ErrForbidden)
			}
		})
	}
}

func TestRequireSelfOrAdmin(t *testing.T) {
	tests := []struct {
		name     string
		claims   *Claims
		targetID uint
		allowed  bool
	}{
		{"self access", &Claims{UserID: 5, Role: model.RoleUser}, 5, true},
		{"other user forbidden", &Claims{UserID: 5, Role: model.RoleUser}, 7, false},
		{"admin accesses anyone", &Claims{UserID: 5, Role: model.RoleAdmin}, 7, true},
		{"nil claims", nil, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireSelfOrAdmin(tt.claims, tt.targetID)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errors.ErrForbidden)
			}
		})
	}
}
