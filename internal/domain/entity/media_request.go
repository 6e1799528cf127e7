package entity

// MediaRequestFlags is the set of media devices a page asked for in one getUserMedia-style request.
type MediaRequestFlags uint8

const (
	MediaNone                MediaRequestFlags = 0
	MediaAudioCapture        MediaRequestFlags = 1 << 0
	MediaVideoCapture        MediaRequestFlags = 1 << 1
	MediaDesktopAudioCapture MediaRequestFlags = 1 << 2
	MediaDesktopVideoCapture MediaRequestFlags = 1 << 3
)

// Has reports whether all bits of flag are set.
func (f MediaRequestFlags) Has(flag MediaRequestFlags) bool {
	return f&flag == flag && flag != MediaNone
}

// EngineCapabilities converts the flags into the engine request.
// Desktop audio adds a second display capture so that the request can be told
// apart from a video-only screen share.
func (f MediaRequestFlags) EngineCapabilities() []EngineCapability {
	var capabilities []EngineCapability
	if f.Has(MediaAudioCapture) {
		capabilities = append(capabilities, EngineAudioCapture)
	}
	if f.Has(MediaVideoCapture) {
		capabilities = append(capabilities, EngineVideoCapture)
	}
	if f.Has(MediaDesktopAudioCapture) || f.Has(MediaDesktopVideoCapture) {
		capabilities = append(capabilities, EngineDisplayCapture)
		if f.Has(MediaDesktopAudioCapture) {
			capabilities = append(capabilities, EngineDisplayCapture)
		}
	}
	return capabilities
}

// MediaFlagsFromStatuses folds per-capability results back into granted flags.
// statuses must be positionally aligned with capabilities.
func MediaFlagsFromStatuses(capabilities []EngineCapability, statuses []PermissionState) MediaRequestFlags {
	flags := MediaNone
	for i := 0; i < len(capabilities) && i < len(statuses); i++ {
		if statuses[i] != PermissionGranted {
			continue
		}
		switch capabilities[i] {
		case EngineAudioCapture:
			flags |= MediaAudioCapture
		case EngineVideoCapture:
			flags |= MediaVideoCapture
		case EngineDisplayCapture:
			flags |= MediaDesktopAudioCapture | MediaDesktopVideoCapture
		}
	}
	return flags
}
