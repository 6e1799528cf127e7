package entity

// PermissionType represents a grantable capability as seen by the embedder.
type PermissionType string

const (
	// PermissionTypeUnsupported is returned for engine capabilities that have no public equivalent.
	PermissionTypeUnsupported PermissionType = "unsupported"

	// PermissionTypeMediaAudioCapture represents microphone access permission.
	PermissionTypeMediaAudioCapture PermissionType = "media_audio_capture"

	// PermissionTypeMediaVideoCapture represents camera access permission.
	PermissionTypeMediaVideoCapture PermissionType = "media_video_capture"

	// PermissionTypeMediaAudioVideoCapture is the synthetic microphone + camera permission.
	// It never reaches a store; it is split into its two constituents first.
	PermissionTypeMediaAudioVideoCapture PermissionType = "media_audio_video_capture"

	// PermissionTypeDesktopVideoCapture represents screen sharing without audio.
	PermissionTypeDesktopVideoCapture PermissionType = "desktop_video_capture"

	// PermissionTypeDesktopAudioVideoCapture represents screen sharing with audio.
	PermissionTypeDesktopAudioVideoCapture PermissionType = "desktop_audio_video_capture"

	// PermissionTypeMouseLock represents pointer lock permission.
	PermissionTypeMouseLock PermissionType = "mouse_lock"

	// PermissionTypeNotifications represents notification permission.
	PermissionTypeNotifications PermissionType = "notifications"

	// PermissionTypeGeolocation represents geolocation permission.
	PermissionTypeGeolocation PermissionType = "geolocation"

	// PermissionTypeClipboardReadWrite represents clipboard read and write access.
	PermissionTypeClipboardReadWrite PermissionType = "clipboard_read_write"

	// PermissionTypeLocalFontsAccess represents local fonts enumeration permission.
	PermissionTypeLocalFontsAccess PermissionType = "local_fonts_access"
)

// PermissionState represents the grant state of a permission.
type PermissionState string

const (
	// PermissionAsk means no decision has been made yet (default state).
	PermissionAsk PermissionState = "ask"

	// PermissionGranted means the permission was allowed.
	PermissionGranted PermissionState = "granted"

	// PermissionDenied means the permission was denied.
	PermissionDenied PermissionState = "denied"

	// PermissionInvalid is returned for malformed origins and unsupported types.
	// It is never stored.
	PermissionInvalid PermissionState = "invalid"
)

// IsDefinitive returns true if the state is a decision (granted or denied).
func (s PermissionState) IsDefinitive() bool {
	return s == PermissionGranted || s == PermissionDenied
}

// StateFromBool converts a stored boolean into a permission state.
func StateFromBool(granted bool) PermissionState {
	if granted {
		return PermissionGranted
	}
	return PermissionDenied
}

// PersistentPermissionsPolicy controls where a profile keeps its permission decisions.
type PersistentPermissionsPolicy string

const (
	// PolicyAskEveryTime never persists decisions; everything is scoped to a browsing context.
	PolicyAskEveryTime PersistentPermissionsPolicy = "ask_every_time"

	// PolicyStoreInMemory keeps decisions for the lifetime of the profile.
	PolicyStoreInMemory PersistentPermissionsPolicy = "store_in_memory"

	// PolicyStoreOnDisk writes decisions to the profile data directory.
	PolicyStoreOnDisk PersistentPermissionsPolicy = "store_on_disk"
)

// IsValid reports whether p is one of the known policies.
func (p PersistentPermissionsPolicy) IsValid() bool {
	switch p {
	case PolicyAskEveryTime, PolicyStoreInMemory, PolicyStoreOnDisk:
		return true
	default:
		return false
	}
}

// PermissionRecord stores a permission decision for a specific origin and type.
type PermissionRecord struct {
	Origin string          // Normalized origin (scheme://host[:port])
	Type   PermissionType  // The type of permission
	State  PermissionState // granted or denied
}

// IsGranted returns true if the permission is granted.
func (p *PermissionRecord) IsGranted() bool {
	return p.State == PermissionGranted
}

// IsDenied returns true if the permission is denied.
func (p *PermissionRecord) IsDenied() bool {
	return p.State == PermissionDenied
}

// PermissionRequest identifies a decision the embedder has to make.
// It is handed to the prompter and can be turned back into a permission handle.
type PermissionRequest struct {
	Origin string
	Type   PermissionType
	Token  ContextToken
}

// StoredPermissionTypes lists every type that owns a namespace in the persistent store.
// Non-persistent types are included because pre-grants land there until they are
// moved to the transient store.
func StoredPermissionTypes() []PermissionType {
	return []PermissionType{
		PermissionTypeMediaAudioCapture,
		PermissionTypeMediaVideoCapture,
		PermissionTypeDesktopAudioVideoCapture,
		PermissionTypeDesktopVideoCapture,
		PermissionTypeMouseLock,
		PermissionTypeNotifications,
		PermissionTypeGeolocation,
		PermissionTypeClipboardReadWrite,
		PermissionTypeLocalFontsAccess,
	}
}

// IsPersistent returns true if decisions for this type outlive the browsing context.
func IsPersistent(permType PermissionType) bool {
	switch permType {
	case PermissionTypeNotifications,
		PermissionTypeGeolocation,
		PermissionTypeClipboardReadWrite,
		PermissionTypeLocalFontsAccess:
		return true
	default:
		return false
	}
}

// IsKnown reports whether permType is part of the public enumeration.
func IsKnown(permType PermissionType) bool {
	switch permType {
	case PermissionTypeUnsupported, PermissionTypeMediaAudioVideoCapture:
		return true
	}
	for _, t := range StoredPermissionTypes() {
		if t == permType {
			return true
		}
	}
	return false
}

// StorageType returns the type under which decisions for permType are stored.
// Both desktop capture flavours resolve to the same engine capability and share state.
func StorageType(permType PermissionType) PermissionType {
	if permType == PermissionTypeDesktopAudioVideoCapture {
		return PermissionTypeDesktopVideoCapture
	}
	return permType
}

// StorageKey returns the persistent store namespace for permType.
// Returns an empty string for types that are never stored.
func StorageKey(permType PermissionType) string {
	switch permType {
	case PermissionTypeUnsupported, PermissionTypeMediaAudioVideoCapture:
		return ""
	}
	if !IsKnown(permType) {
		return ""
	}
	return string(permType)
}

// Constituents returns the single-capability types a compound type is made of.
// Non-compound types return themselves.
func Constituents(permType PermissionType) []PermissionType {
	if permType == PermissionTypeMediaAudioVideoCapture {
		return []PermissionType{PermissionTypeMediaAudioCapture, PermissionTypeMediaVideoCapture}
	}
	return []PermissionType{permType}
}

// PermissionTypesToStrings converts permission types to strings for logging.
func PermissionTypesToStrings(types []PermissionType) []string {
	result := make([]string, len(types))
	for i, t := range types {
		result[i] = string(t)
	}
	return result
}
