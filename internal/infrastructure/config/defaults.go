package config

import (
	"github.com/bnema/webperm/internal/domain/entity"
	"github.com/spf13/viper"
)

const (
	defaultProfileName  = "default"
	defaultFlushDelayMs = 500
	defaultMetricsNS    = "webperm"
)

// DefaultConfig returns the default configuration.
// Profile.DataPath stays empty and is resolved against the XDG data home on load.
func DefaultConfig() *Config {
	return &Config{
		Profile: ProfileConfig{
			Name:                        defaultProfileName,
			PersistentPermissionsPolicy: entity.PolicyStoreOnDisk,
		},
		Storage: StorageConfig{
			Backend:    StorageBackendJSON,
			FlushDelay: defaultFlushDelayMs,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Metrics: MetricsConfig{
			Namespace: defaultMetricsNS,
		},
	}
}

// setDefaults registers every default with viper so env overrides work for keys
// missing from the file.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("profile.name", d.Profile.Name)
	v.SetDefault("profile.data_path", d.Profile.DataPath)
	v.SetDefault("profile.off_the_record", d.Profile.OffTheRecord)
	v.SetDefault("profile.persistent_permissions_policy", string(d.Profile.PersistentPermissionsPolicy))

	v.SetDefault("storage.backend", string(d.Storage.Backend))
	v.SetDefault("storage.flush_delay", d.Storage.FlushDelay)

	v.SetDefault("settings.javascript_can_access_clipboard", d.Settings.JavascriptCanAccessClipboard)
	v.SetDefault("settings.javascript_can_paste", d.Settings.JavascriptCanPaste)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.namespace", d.Metrics.Namespace)
	v.SetDefault("metrics.textfile", d.Metrics.Textfile)
}
