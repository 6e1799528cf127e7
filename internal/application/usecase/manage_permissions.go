package usecase

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/bnema/webperm/internal/application/port"
	"github.com/bnema/webperm/internal/domain/entity"
	"github.com/bnema/webperm/internal/domain/repository"
	"github.com/bnema/webperm/internal/domain/url"
	"github.com/bnema/webperm/internal/logging"
)

// RequestID identifies a pending permission request.
type RequestID int64

// SubscriptionID identifies a permission status subscription.
type SubscriptionID int64

// StatusCallback receives the outcome of a single-capability request or a status change.
type StatusCallback func(state entity.PermissionState)

// BatchCallback receives one state per requested capability, in request order.
type BatchCallback func(states []entity.PermissionState)

type pendingRequest struct {
	id       RequestID
	origin   string
	permType entity.PermissionType // storage type
	token    entity.ContextToken
	callback StatusCallback
}

type pendingBatch struct {
	id           RequestID
	origin       string
	token        entity.ContextToken
	capabilities []entity.EngineCapability
	awaiting     []entity.PermissionType // storage types with an outstanding prompt
	callback     BatchCallback
}

// PermissionManagerDeps groups the collaborators of a PermissionManager.
type PermissionManagerDeps struct {
	Persistent repository.PermissionStore
	Transient  repository.TransientPermissionStore
	Contexts   port.BrowsingContextResolver
	Settings   port.PermissionSettingsProvider
	Prompter   port.PermissionPrompter
	Metrics    port.PermissionMetrics
}

// PermissionManager decides whether an origin may use a capability.
// There is one manager per profile. It routes decisions to the persistent store
// or to the per-context transient store, queues requests that need a decision
// from the embedder, and notifies subscribers when a decision changes.
//
// All state is serialized behind one mutex. Callbacks and prompts are invoked
// after the mutex is released, so they may call back into the manager.
type PermissionManager struct {
	persistent repository.PermissionStore
	transient  repository.TransientPermissionStore
	contexts   port.BrowsingContextResolver
	settings   port.PermissionSettingsProvider
	metrics    port.PermissionMetrics

	prompterMu sync.RWMutex
	prompter   port.PermissionPrompter

	// persistence is false under PolicyAskEveryTime.
	persistence bool

	mu                 sync.Mutex
	nextRequestID      RequestID
	nextSubscriptionID SubscriptionID
	requests           map[RequestID]*pendingRequest
	batches            map[RequestID]*pendingBatch
	subscriptions      map[SubscriptionID]*subscription
}

// NewPermissionManager creates the permission manager of a profile.
func NewPermissionManager(deps PermissionManagerDeps, policy entity.PersistentPermissionsPolicy) *PermissionManager {
	m := &PermissionManager{
		persistent:    deps.Persistent,
		transient:     deps.Transient,
		contexts:      deps.Contexts,
		settings:      deps.Settings,
		prompter:      deps.Prompter,
		metrics:       deps.Metrics,
		persistence:   policy != entity.PolicyAskEveryTime,
		requests:      make(map[RequestID]*pendingRequest),
		batches:       make(map[RequestID]*pendingBatch),
		subscriptions: make(map[SubscriptionID]*subscription),
	}
	if m.contexts == nil {
		m.contexts = noBrowsingContexts{}
	}
	if m.settings == nil {
		m.settings = noSettings{}
	}
	if m.metrics == nil {
		m.metrics = noMetrics{}
	}
	return m
}

// SetPrompter sets the prompter. This can be called after initialization
// when the embedder UI is available.
func (m *PermissionManager) SetPrompter(prompter port.PermissionPrompter) {
	m.prompterMu.Lock()
	defer m.prompterMu.Unlock()
	m.prompter = prompter
}

func (m *PermissionManager) getPrompter() port.PermissionPrompter {
	m.prompterMu.RLock()
	defer m.prompterMu.RUnlock()
	return m.prompter
}

// Persistent reports whether the profile keeps decisions beyond a browsing context.
func (m *PermissionManager) Persistent() bool {
	return m.persistence
}

// SetPermission records a decision made by the user or pre-granted by the embedder.
// PermissionAsk resets the decision. A valid token scopes decisions for transient types
// (or for every type under PolicyAskEveryTime) to that browsing context; without a token
// the decision goes to the persistent store and is moved to the transient store the next
// time a context asks for it.
//
// Invalid origins, unsupported types and PermissionInvalid are ignored.
func (m *PermissionManager) SetPermission(
	ctx context.Context,
	origin string,
	permType entity.PermissionType,
	state entity.PermissionState,
	token entity.ContextToken,
) {
	for _, t := range entity.Constituents(permType) {
		m.setPermission(ctx, origin, t, state, token)
	}
}

func (m *PermissionManager) setPermission(
	ctx context.Context,
	rawOrigin string,
	permType entity.PermissionType,
	state entity.PermissionState,
	token entity.ContextToken,
) {
	log := logging.FromContext(ctx).With().
		Str("component", "permission").
		Str("origin", rawOrigin).
		Str("type", string(permType)).
		Str("state", string(state)).
		Logger()

	origin, err := url.ExtractOrigin(rawOrigin)
	if err != nil {
		log.Debug().Err(err).Msg("ignoring decision for invalid origin")
		return
	}
	if !isRequestable(permType) || state == entity.PermissionInvalid {
		log.Debug().Msg("ignoring decision for unsupported type")
		return
	}

	storageType := entity.StorageType(permType)
	transientRouting := m.routesTransiently(storageType)
	inTransientStore := token.IsValid() && transientRouting

	var fx deferred

	m.mu.Lock()
	if state == entity.PermissionAsk {
		if inTransientStore {
			m.transient.Reset(storageType, origin, token)
		} else {
			m.persistent.Reset(ctx, storageType, origin)
		}
	} else {
		granted := state == entity.PermissionGranted
		if inTransientStore {
			m.transient.Set(storageType, origin, granted, token)
		} else {
			m.persistent.Set(ctx, storageType, origin, granted)
		}
		m.resolveRequestsLocked(&fx, origin, storageType, state)
	}

	m.notifySubscribersLocked(&fx, origin, storageType, state, token, transientRouting)

	if state.IsDefinitive() {
		m.settleAwaitingLocked(origin, storageType, token, inTransientStore)
		m.resolveBatchesLocked(ctx, &fx, origin, state)
	}
	m.metrics.ObserveDecision(storageType, state)
	m.metrics.SetPending(len(m.requests), len(m.batches))
	m.mu.Unlock()

	log.Debug().Bool("transient", inTransientStore).Str("token", token.String()).Msg("permission decision applied")
	fx.run()
}

// resolveRequestsLocked fires and removes every pending single request for (origin, type).
func (m *PermissionManager) resolveRequestsLocked(fx *deferred, origin string, permType entity.PermissionType, state entity.PermissionState) {
	for _, id := range slices.Sorted(maps.Keys(m.requests)) {
		req := m.requests[id]
		if req.origin != origin || req.permType != permType {
			continue
		}
		delete(m.requests, id)
		callback := req.callback
		fx.add(func() { callback(state) })
	}
}

// QueryPermissionState returns the embedder-visible state of a permission.
// With a live token the context-bound routing is used, otherwise the persistent store.
// Compound types report the common state of their constituents, or PermissionAsk when
// they differ. Invalid input yields PermissionInvalid.
func (m *PermissionManager) QueryPermissionState(
	ctx context.Context,
	rawOrigin string,
	permType entity.PermissionType,
	token entity.ContextToken,
) entity.PermissionState {
	origin, err := url.ExtractOrigin(rawOrigin)
	if err != nil || !isRequestable(permType) {
		return entity.PermissionInvalid
	}
	if token.IsValid() && !m.contexts.IsAlive(token) {
		token = entity.NoContext
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	result := entity.PermissionInvalid
	for _, t := range entity.Constituents(permType) {
		state := m.resolveLocked(ctx, entity.ToEngine(t)[0], origin, token)
		switch result {
		case entity.PermissionInvalid:
			result = state
		case state:
		default:
			result = entity.PermissionAsk
		}
	}
	return result
}

// RequestPermission resolves a single capability for a browsing context, prompting
// the embedder when no decision exists. The callback is invoked exactly once: before
// RequestPermission returns when the answer is known, or later from SetPermission.
// pending is true in the latter case and id identifies the queued request.
//
// Identical requests arriving while a prompt is outstanding share that prompt.
func (m *PermissionManager) RequestPermission(
	ctx context.Context,
	rawOrigin string,
	permType entity.PermissionType,
	token entity.ContextToken,
	callback StatusCallback,
) (id RequestID, pending bool) {
	log := logging.FromContext(ctx).With().
		Str("component", "permission").
		Str("origin", rawOrigin).
		Str("type", string(permType)).
		Logger()

	origin, err := url.ExtractOrigin(rawOrigin)
	if err != nil || !isRequestable(permType) {
		log.Debug().Msg("denying request with invalid origin or unsupported type")
		callback(entity.PermissionDenied)
		return 0, false
	}

	if permType == entity.PermissionTypeMediaAudioVideoCapture {
		return m.RequestCapabilities(ctx, token, origin, entity.ToEngine(permType), func(states []entity.PermissionState) {
			callback(combineRequestStates(states))
		})
	}

	var fx deferred

	m.mu.Lock()
	state := m.resolveLocked(ctx, entity.ToEngine(permType)[0], origin, token)
	if state.IsDefinitive() {
		m.mu.Unlock()
		log.Debug().Str("state", string(state)).Msg("request answered from stored decision")
		callback(state)
		return 0, false
	}

	storageType := entity.StorageType(permType)
	m.nextRequestID++
	id = m.nextRequestID
	if !m.hasOutstandingPromptLocked(origin, storageType, token) {
		m.promptLocked(ctx, &fx, entity.PermissionRequest{Origin: origin, Type: permType, Token: token})
	}
	m.requests[id] = &pendingRequest{
		id:       id,
		origin:   origin,
		permType: storageType,
		token:    token,
		callback: callback,
	}
	m.metrics.SetPending(len(m.requests), len(m.batches))
	m.mu.Unlock()

	log.Debug().Int64("request_id", int64(id)).Msg("request queued")
	fx.run()
	return id, true
}

// PendingRequests returns the number of queued single-capability requests.
func (m *PermissionManager) PendingRequests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// PendingBatches returns the number of queued batched requests.
func (m *PermissionManager) PendingBatches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.batches)
}

// Close flushes the persistent store. Pending requests are dropped without being answered.
func (m *PermissionManager) Close(ctx context.Context) error {
	m.mu.Lock()
	dropped := len(m.requests) + len(m.batches)
	clear(m.requests)
	clear(m.batches)
	clear(m.subscriptions)
	m.mu.Unlock()

	if dropped > 0 {
		logging.FromContext(ctx).Debug().
			Str("component", "permission").
			Int("dropped", dropped).
			Msg("dropping pending permission requests")
	}
	return m.persistent.Commit(ctx)
}

// routesTransiently reports whether decisions for permType live in the transient store
// when a browsing context is known.
func (m *PermissionManager) routesTransiently(permType entity.PermissionType) bool {
	return !entity.IsPersistent(permType) || !m.persistence
}

// resolveLocked returns the state of one engine capability without prompting.
// Settings can force a grant for context-bound lookups. For transiently routed types the
// transient store is consulted first; a decision found in the persistent store instead
// (a pre-grant) is moved to the transient store and bound to token.
func (m *PermissionManager) resolveLocked(
	ctx context.Context,
	capability entity.EngineCapability,
	origin string,
	token entity.ContextToken,
) entity.PermissionState {
	permType := entity.StorageType(entity.FromEngine(capability))
	if permType == entity.PermissionTypeUnsupported {
		return entity.PermissionDenied
	}
	if !token.IsValid() {
		return m.persistent.Get(ctx, permType, origin)
	}

	if settingsGrant(capability, m.settings.ClipboardSettings(token)) {
		return entity.PermissionGranted
	}

	useTransient := m.routesTransiently(permType)
	if useTransient {
		if state := m.transient.Get(permType, origin, token); state != entity.PermissionAsk {
			return state
		}
	}

	state := m.persistent.Get(ctx, permType, origin)
	if useTransient && state.IsDefinitive() {
		m.persistent.Reset(ctx, permType, origin)
		m.transient.Set(permType, origin, state == entity.PermissionGranted, token)
		logging.FromContext(ctx).Debug().
			Str("component", "permission").
			Str("origin", origin).
			Str("type", string(permType)).
			Str("token", token.String()).
			Msg("moved pre-granted permission to transient store")
	}
	return state
}

// settingsGrant reports whether embedder settings grant capability outright.
func settingsGrant(capability entity.EngineCapability, settings port.ClipboardSettings) bool {
	switch capability {
	case entity.EngineClipboardReadWrite:
		return settings.CanAccess && settings.CanPaste
	case entity.EngineClipboardSanitizedWrite:
		return settings.CanAccess
	default:
		return false
	}
}

func (m *PermissionManager) promptLocked(ctx context.Context, fx *deferred, request entity.PermissionRequest) {
	prompter := m.getPrompter()
	if prompter == nil {
		logging.FromContext(ctx).Warn().
			Str("component", "permission").
			Str("origin", request.Origin).
			Str("type", string(request.Type)).
			Msg("no prompter available, request stays pending")
		return
	}
	m.metrics.ObservePrompt(request.Type)
	fx.add(func() { prompter.RequestPermission(ctx, request) })
}

// hasOutstandingPromptLocked reports whether a prompt for (origin, type, token) was
// already sent and is still waiting for a decision.
func (m *PermissionManager) hasOutstandingPromptLocked(origin string, permType entity.PermissionType, token entity.ContextToken) bool {
	for _, req := range m.requests {
		if req.origin == origin && req.permType == permType && req.token == token {
			return true
		}
	}
	for _, batch := range m.batches {
		if batch.origin == origin && batch.token == token && slices.Contains(batch.awaiting, permType) {
			return true
		}
	}
	return false
}

func isRequestable(permType entity.PermissionType) bool {
	return permType != entity.PermissionTypeUnsupported && entity.IsKnown(permType)
}

// combineRequestStates folds the answers for a compound request: granted only when
// every constituent is granted.
func combineRequestStates(states []entity.PermissionState) entity.PermissionState {
	for _, s := range states {
		if s != entity.PermissionGranted {
			return entity.PermissionDenied
		}
	}
	return entity.PermissionGranted
}

// deferred collects callbacks to run once the manager lock is released.
type deferred []func()

func (d *deferred) add(fn func()) {
	*d = append(*d, fn)
}

func (d deferred) run() {
	for _, fn := range d {
		fn()
	}
}

type noBrowsingContexts struct{}

func (noBrowsingContexts) IsAlive(entity.ContextToken) bool { return false }

func (noBrowsingContexts) LastCommittedOrigin(entity.ContextToken) (string, bool) { return "", false }

type noSettings struct{}

func (noSettings) ClipboardSettings(entity.ContextToken) port.ClipboardSettings {
	return port.ClipboardSettings{}
}

type noMetrics struct{}

func (noMetrics) ObserveDecision(entity.PermissionType, entity.PermissionState) {}

func (noMetrics) ObservePrompt(entity.PermissionType) {}

func (noMetrics) SetPending(int, int) {}
