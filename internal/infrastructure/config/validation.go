package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// validateConfig collects every invalid value so a user sees all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateProfile(config)...)
	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateMetrics(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateProfile(config *Config) []string {
	var validationErrors []string
	name := config.Profile.Name
	if name == "" {
		validationErrors = append(validationErrors, "profile.name must not be empty")
	} else if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		validationErrors = append(validationErrors, "profile.name must be a plain directory name")
	}
	if config.Profile.DataPath != "" && !filepath.IsAbs(config.Profile.DataPath) {
		validationErrors = append(validationErrors, "profile.data_path must be an absolute path")
	}
	if !config.Profile.PersistentPermissionsPolicy.IsValid() {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"profile.persistent_permissions_policy must be one of ask_every_time, store_in_memory, store_on_disk (got %q)",
			config.Profile.PersistentPermissionsPolicy,
		))
	}
	return validationErrors
}

func validateStorage(config *Config) []string {
	var validationErrors []string
	switch config.Storage.Backend {
	case StorageBackendJSON, StorageBackendSQLite:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("storage.backend must be json or sqlite (got %q)", config.Storage.Backend))
	}
	if config.Storage.FlushDelay < 0 {
		validationErrors = append(validationErrors, "storage.flush_delay must be non-negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be trace, debug, info, warn or error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateMetrics(config *Config) []string {
	if !config.Metrics.Enabled {
		return nil
	}
	ns := config.Metrics.Namespace
	if ns == "" {
		return []string{"metrics.namespace must not be empty when metrics are enabled"}
	}
	for i, r := range ns {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		if !isLetter && (i == 0 || r < '0' || r > '9') {
			return []string{fmt.Sprintf("metrics.namespace %q is not a valid prometheus name", ns)}
		}
	}
	return nil
}
