package port

import (
	"context"

	"github.com/bnema/webperm/internal/domain/entity"
)

// PermissionPrompter is notified when a decision cannot be made automatically.
// This is implemented by the embedder (a dialog, an infobar, a policy engine...).
// The decision is reported back through the permission manager's SetPermission,
// possibly much later; the prompter must not block.
type PermissionPrompter interface {
	// RequestPermission asks the embedder to decide request.
	// It is called once per distinct (origin, type, context) while a decision is outstanding.
	RequestPermission(ctx context.Context, request entity.PermissionRequest)
}

// BrowsingContextResolver answers questions about browsing contexts owned by the engine.
// The permission core holds tokens only as lookup keys and asks the resolver
// whether the context behind a token still exists.
type BrowsingContextResolver interface {
	// IsAlive reports whether the context identified by token still exists.
	IsAlive(token entity.ContextToken) bool

	// LastCommittedOrigin returns the origin of the document currently loaded in the
	// context. ok is false when the context no longer exists.
	LastCommittedOrigin(token entity.ContextToken) (origin string, ok bool)
}

// ClipboardSettings mirrors the embedder's JavaScript clipboard attributes.
type ClipboardSettings struct {
	// CanAccess allows scripts to write to the clipboard.
	CanAccess bool
	// CanPaste allows scripts to read from the clipboard.
	CanPaste bool
}

// PermissionSettingsProvider exposes embedder settings that can force-grant a
// capability regardless of stored decisions.
type PermissionSettingsProvider interface {
	ClipboardSettings(token entity.ContextToken) ClipboardSettings
}

// PermissionMetrics records permission manager activity.
type PermissionMetrics interface {
	// ObserveDecision records a decision received through SetPermission.
	ObserveDecision(permType entity.PermissionType, state entity.PermissionState)

	// ObservePrompt records a prompt sent to the embedder.
	ObservePrompt(permType entity.PermissionType)

	// SetPending records the number of outstanding single and batched requests.
	SetPending(singles, batches int)
}
