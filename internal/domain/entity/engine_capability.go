package entity

import "fmt"

// EngineCapability is a capability identifier as used by the browser engine.
// Several of them have no public equivalent and map to PermissionTypeUnsupported.
type EngineCapability string

const (
	EngineGeolocation             EngineCapability = "geolocation"
	EngineAudioCapture            EngineCapability = "audio_capture"
	EngineVideoCapture            EngineCapability = "video_capture"
	EngineDisplayCapture          EngineCapability = "display_capture"
	EngineClipboardReadWrite      EngineCapability = "clipboard_read_write"
	EngineClipboardSanitizedWrite EngineCapability = "clipboard_sanitized_write"
	EngineNotifications           EngineCapability = "notifications"
	EngineLocalFonts              EngineCapability = "local_fonts"
	EnginePointerLock             EngineCapability = "pointer_lock"

	// No public equivalent.
	EngineCameraPanTiltZoom        EngineCapability = "camera_pan_tilt_zoom"
	EngineWindowManagement         EngineCapability = "window_management"
	EngineBackgroundSync           EngineCapability = "background_sync"
	EngineTopLevelStorageAccess    EngineCapability = "top_level_storage_access"
	EngineSpeakerSelection         EngineCapability = "speaker_selection"
	EngineMidi                     EngineCapability = "midi"
	EngineMidiSysex                EngineCapability = "midi_sysex"
	EngineProtectedMediaIdentifier EngineCapability = "protected_media_identifier"
	EngineDurableStorage           EngineCapability = "durable_storage"
	EngineSensors                  EngineCapability = "sensors"
	EnginePaymentHandler           EngineCapability = "payment_handler"
	EngineBackgroundFetch          EngineCapability = "background_fetch"
	EngineIdleDetection            EngineCapability = "idle_detection"
	EnginePeriodicBackgroundSync   EngineCapability = "periodic_background_sync"
	EngineWakeLockScreen           EngineCapability = "wake_lock_screen"
	EngineWakeLockSystem           EngineCapability = "wake_lock_system"
	EngineNFC                      EngineCapability = "nfc"
	EngineAR                       EngineCapability = "ar"
	EngineVR                       EngineCapability = "vr"
	EngineStorageAccessGrant       EngineCapability = "storage_access_grant"
	EngineCapturedSurfaceControl   EngineCapability = "captured_surface_control"
	EngineSmartCard                EngineCapability = "smart_card"
	EngineWebPrinting              EngineCapability = "web_printing"
	EngineKeyboardLock             EngineCapability = "keyboard_lock"
	EngineAutomaticFullscreen      EngineCapability = "automatic_fullscreen"
	EngineHandTracking             EngineCapability = "hand_tracking"
	EngineWebAppInstallation       EngineCapability = "web_app_installation"
)

// FromEngine maps an engine capability to its public permission type.
func FromEngine(capability EngineCapability) PermissionType {
	switch capability {
	case EngineGeolocation:
		return PermissionTypeGeolocation
	case EngineAudioCapture:
		return PermissionTypeMediaAudioCapture
	case EngineVideoCapture:
		return PermissionTypeMediaVideoCapture
	case EngineDisplayCapture:
		return PermissionTypeDesktopVideoCapture
	case EngineClipboardReadWrite, EngineClipboardSanitizedWrite:
		// There is no sanitized-write type, both are treated as read/write.
		return PermissionTypeClipboardReadWrite
	case EngineNotifications:
		return PermissionTypeNotifications
	case EngineLocalFonts:
		return PermissionTypeLocalFontsAccess
	case EnginePointerLock:
		return PermissionTypeMouseLock
	default:
		return PermissionTypeUnsupported
	}
}

// ToEngine maps a public permission type to the engine capabilities backing it.
// Compound types return their constituents: audio+video yields audio and video capture,
// desktop audio+video yields two display captures.
//
// Mapping PermissionTypeUnsupported is a programming error and panics.
func ToEngine(permType PermissionType) []EngineCapability {
	switch permType {
	case PermissionTypeNotifications:
		return []EngineCapability{EngineNotifications}
	case PermissionTypeGeolocation:
		return []EngineCapability{EngineGeolocation}
	case PermissionTypeMediaAudioCapture:
		return []EngineCapability{EngineAudioCapture}
	case PermissionTypeMediaVideoCapture:
		return []EngineCapability{EngineVideoCapture}
	case PermissionTypeMediaAudioVideoCapture:
		return []EngineCapability{EngineAudioCapture, EngineVideoCapture}
	case PermissionTypeDesktopVideoCapture:
		return []EngineCapability{EngineDisplayCapture}
	case PermissionTypeDesktopAudioVideoCapture:
		return []EngineCapability{EngineDisplayCapture, EngineDisplayCapture}
	case PermissionTypeClipboardReadWrite:
		return []EngineCapability{EngineClipboardReadWrite}
	case PermissionTypeLocalFontsAccess:
		return []EngineCapability{EngineLocalFonts}
	case PermissionTypeMouseLock:
		return []EngineCapability{EnginePointerLock}
	default:
		panic(fmt.Sprintf("permission type %q has no engine capability", permType))
	}
}

// MergeCompound converts an ordered engine request into public permission types,
// collapsing sibling capabilities into the synthetic compound types.
//
// Audio and video captures are paired in order (k-th audio with k-th video); the
// pair becomes one MediaAudioVideoCapture at the audio's position. Display captures
// are paired consecutively; the first of a pair is dropped and the second becomes
// DesktopAudioVideoCapture. Unpaired entries convert one-to-one.
func MergeCompound(capabilities []EngineCapability) []PermissionType {
	const (
		keep = iota
		drop
		mergeAudioVideo
		mergeDesktop
	)

	actions := make([]int, len(capabilities))
	var audios, videos []int
	pendingDisplay := -1

	for i, c := range capabilities {
		switch c {
		case EngineAudioCapture:
			audios = append(audios, i)
		case EngineVideoCapture:
			videos = append(videos, i)
		case EngineDisplayCapture:
			if pendingDisplay < 0 {
				pendingDisplay = i
				continue
			}
			actions[pendingDisplay] = drop
			actions[i] = mergeDesktop
			pendingDisplay = -1
		}
	}

	for k := 0; k < len(audios) && k < len(videos); k++ {
		actions[audios[k]] = mergeAudioVideo
		actions[videos[k]] = drop
	}

	result := make([]PermissionType, 0, len(capabilities))
	for i, c := range capabilities {
		switch actions[i] {
		case drop:
			continue
		case mergeAudioVideo:
			result = append(result, PermissionTypeMediaAudioVideoCapture)
		case mergeDesktop:
			result = append(result, PermissionTypeDesktopAudioVideoCapture)
		default:
			result = append(result, FromEngine(c))
		}
	}
	return result
}

// EngineCapabilitiesToStrings converts engine capabilities to strings for logging.
func EngineCapabilitiesToStrings(capabilities []EngineCapability) []string {
	result := make([]string, len(capabilities))
	for i, c := range capabilities {
		result[i] = string(c)
	}
	return result
}
