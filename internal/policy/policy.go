// Package policy decides whether an identity may perform an operation.
// It is independent of the transport layer and of the store: callers
// resolve resource existence and ownership first, then ask for a decision.
package policy

import (
	"errors"

	"github.com/hasanackl/YemekTarifiSitesi/internal/auth"
)

// Decision errors. Unauthenticated means no valid credential was
// presented; Forbidden means the credential is valid but insufficient.
// The two map to distinct HTTP statuses and must not be conflated.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient privileges")
)

// Operation tags the action being authorized
type Operation int

const (
	// Public reads
	OpRecipeRead Operation = iota
	OpRecipeSearch
	OpCommentList
	OpPing

	// Admin-only catalog mutations
	OpRecipeCreate
	OpRecipeUpdate
	OpRecipeDelete

	// Authenticated social operations
	OpCommentCreate
	OpCommentDelete
	OpFavoriteAdd
	OpFavoriteList
	OpFavoriteRemove

	// Public account operations
	OpRegister
	OpLogin
	OpResetPassword
)

// Authorize decides whether the identity (nil for anonymous) may perform
// op. ownerID is the owning user id of the target resource and is only
// consulted for ownership-scoped operations; pass "" when the operation
// has no owner.
func Authorize(identity *auth.Identity, op Operation, ownerID string) error {
	switch op {
	case OpRecipeRead, OpRecipeSearch, OpCommentList, OpPing,
		OpRegister, OpLogin, OpResetPassword:
		// Public, identity optional
		return nil

	case OpRecipeCreate, OpRecipeUpdate, OpRecipeDelete:
		if identity == nil {
			return ErrUnauthenticated
		}
		if !identity.IsAdmin() {
			return ErrForbidden
		}
		return nil

	case OpCommentCreate, OpFavoriteAdd, OpFavoriteList, OpFavoriteRemove:
		// Favorites are self-scoped: the API exposes no path that names
		// another user's favorite set, so authentication is the whole check.
		if identity == nil {
			return ErrUnauthenticated
		}
		return nil

	case OpCommentDelete:
		if identity == nil {
			return ErrUnauthenticated
		}
		if identity.IsAdmin() || identity.UserID == ownerID {
			return nil
		}
		return ErrForbidden

	default:
		return ErrForbidden
	}
}
