package usecase

import (
	"context"
	"maps"
	"slices"

	"github.com/bnema/webperm/internal/domain/entity"
	"github.com/bnema/webperm/internal/domain/url"
	"github.com/bnema/webperm/internal/logging"
)

// RequestCapabilities resolves an ordered list of engine capabilities requested together
// by one browsing context. The callback receives one state per capability, in order,
// once every entry is definitive. Unsupported capabilities are denied without a prompt.
//
// Undecided capabilities are merged into public types (audio and video become one
// audio+video prompt, paired display captures become desktop audio+video) and the
// embedder is prompted once per merged type.
func (m *PermissionManager) RequestCapabilities(
	ctx context.Context,
	token entity.ContextToken,
	rawOrigin string,
	capabilities []entity.EngineCapability,
	callback BatchCallback,
) (id RequestID, pending bool) {
	log := logging.FromContext(ctx).With().
		Str("component", "permission").
		Str("origin", rawOrigin).
		Strs("capabilities", entity.EngineCapabilitiesToStrings(capabilities)).
		Logger()

	origin, err := url.ExtractOrigin(rawOrigin)
	if err != nil {
		log.Debug().Err(err).Msg("denying batch for invalid origin")
		callback(uniformStates(len(capabilities), entity.PermissionDenied))
		return 0, false
	}

	var fx deferred

	m.mu.Lock()
	states := make([]entity.PermissionState, len(capabilities))
	undecided := make(map[entity.PermissionType]bool)
	for i, c := range capabilities {
		states[i] = m.resolveLocked(ctx, c, origin, token)
		if !states[i].IsDefinitive() {
			undecided[entity.StorageType(entity.FromEngine(c))] = true
		}
	}
	if len(undecided) == 0 {
		m.mu.Unlock()
		log.Debug().Msg("batch answered from stored decisions")
		callback(states)
		return 0, false
	}

	m.nextRequestID++
	id = m.nextRequestID
	batch := &pendingBatch{
		id:           id,
		origin:       origin,
		token:        token,
		capabilities: slices.Clone(capabilities),
		callback:     callback,
	}

	for _, kind := range entity.MergeCompound(capabilities) {
		if kind == entity.PermissionTypeUnsupported {
			continue
		}
		var waiting []entity.PermissionType
		needsPrompt := false
		for _, t := range entity.Constituents(kind) {
			storageType := entity.StorageType(t)
			if !undecided[storageType] || slices.Contains(batch.awaiting, storageType) {
				continue
			}
			waiting = append(waiting, storageType)
			if !m.hasOutstandingPromptLocked(origin, storageType, token) {
				needsPrompt = true
			}
		}
		if len(waiting) == 0 {
			continue
		}
		batch.awaiting = append(batch.awaiting, waiting...)
		if needsPrompt {
			m.promptLocked(ctx, &fx, entity.PermissionRequest{Origin: origin, Type: kind, Token: token})
		}
	}

	m.batches[id] = batch
	m.metrics.SetPending(len(m.requests), len(m.batches))
	m.mu.Unlock()

	log.Debug().Int64("request_id", int64(id)).Msg("batch queued")
	fx.run()
	return id, true
}

// resolveBatchesLocked re-evaluates the pending batches of origin after a decision and
// fires the ones that can now be answered.
func (m *PermissionManager) resolveBatchesLocked(ctx context.Context, fx *deferred, origin string, decided entity.PermissionState) {
	for _, id := range slices.Sorted(maps.Keys(m.batches)) {
		batch := m.batches[id]
		if batch.origin != origin {
			continue
		}
		states, ok := m.evaluateBatchLocked(ctx, batch, decided)
		if !ok {
			continue
		}
		delete(m.batches, id)
		callback := batch.callback
		fx.add(func() { callback(states) })
	}
}

// settleAwaitingLocked marks permType as answered for the pending batches the decision
// applies to. A batch kept pending by a contradicting answer stops claiming an
// outstanding prompt for permType.
func (m *PermissionManager) settleAwaitingLocked(
	origin string,
	permType entity.PermissionType,
	token entity.ContextToken,
	contextBound bool,
) {
	for _, batch := range m.batches {
		if batch.origin != origin || (contextBound && batch.token != token) {
			continue
		}
		batch.awaiting = slices.DeleteFunc(batch.awaiting, func(t entity.PermissionType) bool {
			return t == permType
		})
	}
}

// evaluateBatchLocked computes the answer of a batch after decided was recorded.
// A member whose current state equals decided counts as answered. When decisions are
// not persisted the just-made decision stands for every other member. Otherwise a member
// that still differs keeps the batch pending.
func (m *PermissionManager) evaluateBatchLocked(
	ctx context.Context,
	batch *pendingBatch,
	decided entity.PermissionState,
) ([]entity.PermissionState, bool) {
	states := make([]entity.PermissionState, 0, len(batch.capabilities))
	for _, c := range batch.capabilities {
		if entity.FromEngine(c) == entity.PermissionTypeUnsupported {
			states = append(states, entity.PermissionDenied)
			continue
		}
		state := m.resolveLocked(ctx, c, batch.origin, batch.token)
		switch {
		case state == decided:
			states = append(states, state)
		case !m.persistence:
			states = append(states, decided)
		default:
			return nil, false
		}
	}
	return states, true
}

func uniformStates(n int, state entity.PermissionState) []entity.PermissionState {
	states := make([]entity.PermissionState, n)
	for i := range states {
		states[i] = state
	}
	return states
}
