package usecase

import (
	"context"
	"maps"
	"slices"

	"github.com/bnema/webperm/internal/domain/entity"
	"github.com/bnema/webperm/internal/domain/url"
	"github.com/bnema/webperm/internal/logging"
)

type subscription struct {
	capability entity.EngineCapability
	permType   entity.PermissionType // storage type
	origin     string
	token      entity.ContextToken
	cached     entity.PermissionState
	callback   StatusCallback
}

// QueryCapabilityForContext returns the state of capability for the document currently
// committed in the context behind token. Contexts that no longer exist get PermissionAsk.
func (m *PermissionManager) QueryCapabilityForContext(
	ctx context.Context,
	token entity.ContextToken,
	capability entity.EngineCapability,
) entity.PermissionState {
	if entity.FromEngine(capability) == entity.PermissionTypeUnsupported {
		return entity.PermissionDenied
	}
	rawOrigin, ok := m.contexts.LastCommittedOrigin(token)
	if !ok {
		return entity.PermissionAsk
	}
	origin, err := url.ExtractOrigin(rawOrigin)
	if err != nil {
		return entity.PermissionDenied
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resolveLocked(ctx, capability, origin, token)
}

// QueryCapabilityForOrigin returns the stored state of capability for origin, ignoring
// any browsing context.
func (m *PermissionManager) QueryCapabilityForOrigin(
	ctx context.Context,
	rawOrigin string,
	capability entity.EngineCapability,
) entity.PermissionState {
	if entity.FromEngine(capability) == entity.PermissionTypeUnsupported {
		return entity.PermissionDenied
	}
	origin, err := url.ExtractOrigin(rawOrigin)
	if err != nil {
		return entity.PermissionDenied
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resolveLocked(ctx, capability, origin, entity.NoContext)
}

// NotifyCrossOriginNavigation tells the manager that the context behind token committed a
// document from newOrigin. Transient decisions made for another origin are dropped.
func (m *PermissionManager) NotifyCrossOriginNavigation(ctx context.Context, token entity.ContextToken, newOrigin string) {
	if !token.IsValid() {
		return
	}
	origin, err := url.ExtractOrigin(newOrigin)
	if err != nil {
		origin = newOrigin
	}

	m.mu.Lock()
	invalidated := m.transient.InvalidateOnCrossOriginNavigation(token, origin)
	m.mu.Unlock()

	if invalidated {
		ctx = logging.WithOrigin(logging.WithComponent(ctx, "permission"), origin)
		logging.FromContext(ctx).Debug().
			Str("token", token.String()).
			Msg("cross-origin navigation cleared transient permissions")
	}
}

// SubscribeToStatusChange registers callback for changes of capability on origin as seen
// from the context behind token. The callback is not invoked for the current state.
func (m *PermissionManager) SubscribeToStatusChange(
	ctx context.Context,
	capability entity.EngineCapability,
	rawOrigin string,
	token entity.ContextToken,
	callback StatusCallback,
) SubscriptionID {
	origin, err := url.ExtractOrigin(rawOrigin)
	if err != nil {
		origin = ""
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sub := &subscription{
		capability: capability,
		permType:   entity.StorageType(entity.FromEngine(capability)),
		origin:     origin,
		token:      token,
		callback:   callback,
	}
	if origin != "" {
		sub.cached = m.resolveLocked(ctx, capability, origin, token)
	}

	m.nextSubscriptionID++
	m.subscriptions[m.nextSubscriptionID] = sub
	return m.nextSubscriptionID
}

// UnsubscribeFromStatusChange removes a subscription. Unknown ids are ignored.
func (m *PermissionManager) UnsubscribeFromStatusChange(id SubscriptionID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subscriptions, id)
}

// notifySubscribersLocked queues callbacks for subscriptions watching (origin, type).
// Under transient routing a decision bound to one context is not reported to a different
// live context. Subscriptions already holding state are skipped.
func (m *PermissionManager) notifySubscribersLocked(
	fx *deferred,
	origin string,
	permType entity.PermissionType,
	state entity.PermissionState,
	token entity.ContextToken,
	transientRouting bool,
) {
	for _, id := range slices.Sorted(maps.Keys(m.subscriptions)) {
		sub := m.subscriptions[id]
		if sub.origin != origin || sub.permType != permType {
			continue
		}
		if transientRouting && sub.token.IsValid() && sub.token != token && m.contexts.IsAlive(sub.token) {
			continue
		}
		if sub.cached == state {
			continue
		}
		sub.cached = state
		callback := sub.callback
		fx.add(func() { callback(state) })
	}
}

// SubscriptionCount returns the number of registered subscriptions.
func (m *PermissionManager) SubscriptionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subscriptions)
}
