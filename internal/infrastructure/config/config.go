package config

import (
	"time"

	"github.com/bnema/webperm/internal/domain/entity"
)

const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for webperm.
type Config struct {
	Profile  ProfileConfig  `mapstructure:"profile" yaml:"profile" toml:"profile" json:"profile"`
	Storage  StorageConfig  `mapstructure:"storage" yaml:"storage" toml:"storage" json:"storage"`
	Settings SettingsConfig `mapstructure:"settings" yaml:"settings" toml:"settings" json:"settings"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics" yaml:"metrics" toml:"metrics" json:"metrics"`
}

// ProfileConfig identifies the profile whose permission decisions are managed.
type ProfileConfig struct {
	// Name selects the profile directory under the data home.
	Name string `mapstructure:"name" yaml:"name" toml:"name" json:"name" jsonschema:"minLength=1"`
	// DataPath overrides the profile directory (default: $XDG_DATA_HOME/webperm/<name>).
	DataPath string `mapstructure:"data_path" yaml:"data_path" toml:"data_path" json:"data_path"`
	// OffTheRecord keeps every decision in memory regardless of the policy.
	OffTheRecord bool `mapstructure:"off_the_record" yaml:"off_the_record" toml:"off_the_record" json:"off_the_record"`
	// PersistentPermissionsPolicy controls where decisions are kept.
	PersistentPermissionsPolicy entity.PersistentPermissionsPolicy `mapstructure:"persistent_permissions_policy" yaml:"persistent_permissions_policy" toml:"persistent_permissions_policy" json:"persistent_permissions_policy" jsonschema:"enum=ask_every_time,enum=store_in_memory,enum=store_on_disk"`
}

// StorageBackend selects the on-disk format of the persistent store.
type StorageBackend string

const (
	StorageBackendJSON   StorageBackend = "json"
	StorageBackendSQLite StorageBackend = "sqlite"
)

// StorageConfig controls the persistent store.
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" yaml:"backend" toml:"backend" json:"backend" jsonschema:"enum=json,enum=sqlite"`
	// FlushDelay is the debounce delay, in milliseconds, before pending writes hit the disk.
	FlushDelay int `mapstructure:"flush_delay" yaml:"flush_delay" toml:"flush_delay" json:"flush_delay" jsonschema:"minimum=0"`
}

// FlushDelayDuration returns FlushDelay as a time.Duration.
func (s StorageConfig) FlushDelayDuration() time.Duration {
	return time.Duration(s.FlushDelay) * time.Millisecond
}

// SettingsConfig mirrors the embedder settings that can force-grant clipboard access.
type SettingsConfig struct {
	JavascriptCanAccessClipboard bool `mapstructure:"javascript_can_access_clipboard" yaml:"javascript_can_access_clipboard" toml:"javascript_can_access_clipboard" json:"javascript_can_access_clipboard"`
	JavascriptCanPaste           bool `mapstructure:"javascript_can_paste" yaml:"javascript_can_paste" toml:"javascript_can_paste" json:"javascript_can_paste"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// MetricsConfig controls the prometheus recorder.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled" yaml:"enabled" toml:"enabled" json:"enabled"`
	Namespace string `mapstructure:"namespace" yaml:"namespace" toml:"namespace" json:"namespace"`
	// Textfile, when set, receives the metrics in the prometheus text format on exit.
	Textfile string `mapstructure:"textfile" yaml:"textfile" toml:"textfile" json:"textfile"`
}

// EffectivePolicy returns the policy the permission manager should run with.
// Off-the-record profiles never write to disk.
func (c *Config) EffectivePolicy() entity.PersistentPermissionsPolicy {
	if c.Profile.OffTheRecord && c.Profile.PersistentPermissionsPolicy == entity.PolicyStoreOnDisk {
		return entity.PolicyStoreInMemory
	}
	return c.Profile.PersistentPermissionsPolicy
}
