package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/webperm/internal/domain/entity"
	domainurl "github.com/bnema/webperm/internal/domain/url"
)

// parsePermissionType accepts the public permission names. Empty input means "any".
func parsePermissionType(raw string) (entity.PermissionType, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return entity.PermissionTypeUnsupported, nil
	}
	permType := entity.PermissionType(strings.ReplaceAll(raw, "-", "_"))
	if permType == entity.PermissionTypeUnsupported || !entity.IsKnown(permType) {
		return "", fmt.Errorf("unknown permission type %q (valid: %s)", raw, strings.Join(permissionTypeNames(), ", "))
	}
	return permType, nil
}

func permissionTypeNames() []string {
	names := entity.PermissionTypesToStrings(entity.StoredPermissionTypes())
	return append(names, string(entity.PermissionTypeMediaAudioVideoCapture))
}

// parseOrigin accepts a URL or a bare host and returns its origin.
func parseOrigin(raw string) (string, error) {
	origin, err := domainurl.ExtractOrigin(domainurl.Normalize(raw))
	if err != nil {
		return "", err
	}
	return origin, nil
}
