package auth

import (
	"github.com/dovietdong/WebApiBase/internal/errors"
	"github.com/dovietdong/WebApiBase/internal/model"
)

// Policies are pure predicates over verified claims. Claims are resolved once
// per request by the JWT middleware before any policy runs, so evaluation never
// touches the transport layer.

// RequireAdmin permits the operation only for callers with the Admin role.
func RequireAdmin(claims *Claims) error {
	if claims == nil || claims.Role != model.RoleAdmin {
		return errors.ErrForbidden
	}
	return nil
}

// RequireSelfOrAdmin permits the operation for admins and for callers acting on
// their own user record. Existence of the target is not hidden from
// authenticated callers; a wrong owner gets forbidden, not not-found.
func RequireSelfOrAdmin(claims *Claims, targetUserID uint) error {
	if claims == nil {
		return errors.ErrForbidden
	}
	if claims.Role == model.RoleAdmin || claims.UserID == targetUserID {
		return nil
	}
	return errors.ErrForbidden
}
