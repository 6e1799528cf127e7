package repository

import (
	"context"

	"github.com/bnema/webperm/internal/domain/entity"
)

// PermissionStore is the profile-scoped store for permission decisions.
// It is a namespaced key-value store: one namespace per permission type,
// mapping a normalized origin to a granted/denied boolean.
//
// Origins are expected to be normalized by the caller.
type PermissionStore interface {
	// Get returns the stored state for origin, or PermissionAsk if the type has no
	// namespace or the origin has no entry.
	Get(ctx context.Context, permType entity.PermissionType, origin string) entity.PermissionState

	// Set stores a decision. Types without a namespace are ignored.
	// Writing to the backing storage is deferred; use Commit to flush.
	Set(ctx context.Context, permType entity.PermissionType, origin string, granted bool)

	// Reset removes the entry for origin, reverting it to PermissionAsk.
	Reset(ctx context.Context, permType entity.PermissionType, origin string)

	// List returns stored decisions for persistent types only.
	// PermissionTypeUnsupported and an empty origin act as "no filter".
	List(ctx context.Context, permType entity.PermissionType, origin string) []entity.PermissionRecord

	// Commit synchronously writes pending changes to the backing storage.
	Commit(ctx context.Context) error
}

// TransientPermissionStore holds decisions scoped to a single browsing context.
// Tokens are only used as lookup keys; the store never assumes the context is alive.
type TransientPermissionStore interface {
	// Get returns PermissionDenied for unsupported types, PermissionAsk for unknown
	// tokens or missing entries, and the stored decision otherwise.
	Get(permType entity.PermissionType, origin string, token entity.ContextToken) entity.PermissionState

	// Set inserts or overwrites the decision for (origin, type) under token.
	Set(permType entity.PermissionType, origin string, granted bool, token entity.ContextToken)

	// Reset removes the decision for (origin, type) under token, if any.
	Reset(permType entity.PermissionType, origin string, token entity.ContextToken)

	// InvalidateOnCrossOriginNavigation drops the decisions held by token that were
	// recorded for an origin other than newOrigin. Returns true if entries were dropped.
	InvalidateOnCrossOriginNavigation(token entity.ContextToken, newOrigin string) bool

	// Sweep drops the entries of tokens whose browsing context no longer exists.
	Sweep()
}
