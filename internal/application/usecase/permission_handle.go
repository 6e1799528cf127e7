package usecase

import (
	"context"

	"github.com/bnema/webperm/internal/domain/entity"
	"github.com/bnema/webperm/internal/domain/url"
)

// Permission is a lightweight handle to one (origin, type, context) triple.
// It holds no state of its own: every read and write goes through the manager.
type Permission struct {
	manager  *PermissionManager
	origin   string
	permType entity.PermissionType
	token    entity.ContextToken
	valid    bool
}

func newPermission(manager *PermissionManager, origin string, permType entity.PermissionType, token entity.ContextToken) *Permission {
	p := &Permission{
		manager:  manager,
		origin:   origin,
		permType: permType,
		token:    token,
	}
	if normalized, err := url.ExtractOrigin(origin); err == nil && isRequestable(permType) {
		p.origin = normalized
		p.valid = true
	}
	return p
}

// Origin returns the normalized origin, or the raw input for invalid handles.
func (p *Permission) Origin() string { return p.origin }

// PermissionType returns the permission type of the handle.
func (p *Permission) PermissionType() entity.PermissionType { return p.permType }

// Token returns the browsing context the handle is bound to.
func (p *Permission) Token() entity.ContextToken { return p.token }

// IsValid reports whether the handle has a usable origin and a supported type.
func (p *Permission) IsValid() bool { return p.valid }

// State returns the current state, PermissionInvalid for invalid handles.
func (p *Permission) State(ctx context.Context) entity.PermissionState {
	if !p.valid {
		return entity.PermissionInvalid
	}
	return p.manager.QueryPermissionState(ctx, p.origin, p.permType, p.token)
}

// Grant allows the permission. No-op on invalid handles.
func (p *Permission) Grant(ctx context.Context) {
	p.set(ctx, entity.PermissionGranted)
}

// Deny refuses the permission. No-op on invalid handles.
func (p *Permission) Deny(ctx context.Context) {
	p.set(ctx, entity.PermissionDenied)
}

// Reset forgets the decision so the next request prompts again.
func (p *Permission) Reset(ctx context.Context) {
	p.set(ctx, entity.PermissionAsk)
}

func (p *Permission) set(ctx context.Context, state entity.PermissionState) {
	if !p.valid {
		return
	}
	p.manager.SetPermission(ctx, p.origin, p.permType, state, p.token)
}

// QueryPermission returns a handle for (origin, type) that is not bound to a browsing context.
func (m *PermissionManager) QueryPermission(origin string, permType entity.PermissionType) *Permission {
	return newPermission(m, origin, permType, entity.NoContext)
}

// PermissionFor returns a handle for a prompted request, bound to its browsing context.
func (m *PermissionManager) PermissionFor(request entity.PermissionRequest) *Permission {
	return newPermission(m, request.Origin, request.Type, request.Token)
}

// ListPermissions returns handles for the stored decisions matching the filters.
// An empty origin or PermissionTypeUnsupported matches everything. Only persistent
// types are listed; an invalid origin filter yields no result.
func (m *PermissionManager) ListPermissions(ctx context.Context, origin string, permType entity.PermissionType) []*Permission {
	if origin != "" {
		normalized, err := url.ExtractOrigin(origin)
		if err != nil {
			return nil
		}
		origin = normalized
	}
	if permType == entity.PermissionTypeUnsupported {
		permType = ""
	} else if permType != "" && !entity.IsPersistent(entity.StorageType(permType)) {
		return nil
	}

	records := m.persistent.List(ctx, permType, origin)
	result := make([]*Permission, 0, len(records))
	for _, r := range records {
		result = append(result, newPermission(m, r.Origin, r.Type, entity.NoContext))
	}
	return result
}

// ListAllPermissions returns handles for every stored decision.
func (m *PermissionManager) ListAllPermissions(ctx context.Context) []*Permission {
	return m.ListPermissions(ctx, "", "")
}

// ListPermissionsForOrigin returns handles for the stored decisions of origin.
func (m *PermissionManager) ListPermissionsForOrigin(ctx context.Context, origin string) []*Permission {
	if origin == "" {
		return nil
	}
	return m.ListPermissions(ctx, origin, "")
}

// ListPermissionsForType returns handles for the stored decisions of permType.
func (m *PermissionManager) ListPermissionsForType(ctx context.Context, permType entity.PermissionType) []*Permission {
	if permType == "" || permType == entity.PermissionTypeUnsupported {
		return nil
	}
	return m.ListPermissions(ctx, "", permType)
}
