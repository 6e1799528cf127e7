package usecase

import (
	"context"

	"github.com/bnema/webperm/internal/application/port"
	"github.com/bnema/webperm/internal/domain/entity"
	"github.com/bnema/webperm/internal/logging"
)

// MediaCallback receives the media devices the page may use.
type MediaCallback func(granted entity.MediaRequestFlags)

// CapabilityRequester is the batched request path, implemented by PermissionManager.
type CapabilityRequester interface {
	RequestCapabilities(
		ctx context.Context,
		token entity.ContextToken,
		origin string,
		capabilities []entity.EngineCapability,
		callback BatchCallback,
	) (RequestID, bool)
}

// HandleMediaRequestUseCase turns getUserMedia-style device requests into
// permission requests for the document loaded in a browsing context.
type HandleMediaRequestUseCase struct {
	permissions CapabilityRequester
	contexts    port.BrowsingContextResolver
}

// NewHandleMediaRequestUseCase creates a new media request use case.
func NewHandleMediaRequestUseCase(
	permissions CapabilityRequester,
	contexts port.BrowsingContextResolver,
) *HandleMediaRequestUseCase {
	return &HandleMediaRequestUseCase{
		permissions: permissions,
		contexts:    contexts,
	}
}

// RequestMediaPermissions asks for the devices in flags on behalf of the context behind
// token. The callback is invoked exactly once with the granted subset, possibly after
// the embedder answered a prompt. Display capture grants both desktop flags.
func (uc *HandleMediaRequestUseCase) RequestMediaPermissions(
	ctx context.Context,
	token entity.ContextToken,
	flags entity.MediaRequestFlags,
	callback MediaCallback,
) {
	log := logging.FromContext(ctx).With().
		Str("component", "media").
		Str("token", token.String()).
		Uint8("flags", uint8(flags)).
		Logger()

	capabilities := flags.EngineCapabilities()
	if len(capabilities) == 0 {
		log.Debug().Msg("empty media request")
		callback(entity.MediaNone)
		return
	}

	origin, ok := uc.contexts.LastCommittedOrigin(token)
	if !ok {
		log.Warn().Msg("media request from a context that no longer exists, denying")
		callback(entity.MediaNone)
		return
	}

	uc.permissions.RequestCapabilities(ctx, token, origin, capabilities, func(states []entity.PermissionState) {
		granted := entity.MediaFlagsFromStatuses(capabilities, states)
		log.Debug().
			Str("origin", origin).
			Uint8("granted", uint8(granted)).
			Msg("media request answered")
		callback(granted)
	})
}
