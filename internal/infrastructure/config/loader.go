// Package config loads, validates and watches the webperm configuration file.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/webperm/internal/domain/entity"
	"github.com/bnema/webperm/internal/logging"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
	configFile string
}

// NewManager creates a configuration manager reading config.toml from the XDG config directory.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForFile(configFile)
}

// NewManagerForFile creates a configuration manager reading the given TOML file.
func NewManagerForFile(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// WEBPERM_STORAGE_BACKEND, WEBPERM_PROFILE_NAME, ...
	v.SetEnvPrefix("WEBPERM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The logger reads these before the config exists, keep the names in sync.
	if err := v.BindEnv("logging.level", "WEBPERM_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind WEBPERM_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "WEBPERM_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind WEBPERM_LOG_FORMAT: %w", err)
	}

	setDefaults(v)

	return &Manager{
		viper:      v,
		callbacks:  make([]func(*Config), 0),
		configFile: configFile,
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created with the defaults.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.readConfigFile(ctx); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

// decode turns the values viper currently holds into a validated Config.
func (m *Manager) decode() (*Config, error) {
	config, err := m.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	if err := ensureDataPath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func (m *Manager) readConfigFile(ctx context.Context) error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}

	if createErr := m.createDefaultConfig(ctx); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configFile,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	return config, nil
}

// createDefaultConfig writes the defaults and the JSON schema next to the config file.
func (m *Manager) createDefaultConfig(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), m.configFile); err != nil {
		return err
	}
	log.Info().Str("path", m.configFile).Msg("created default configuration file")

	schemaFile := filepath.Join(filepath.Dir(m.configFile), schemaFileName)
	if err := GenerateSchemaFile(schemaFile); err != nil {
		// The schema is an editor aid; the config is usable without it.
		log.Warn().Err(err).Str("path", schemaFile).Msg("failed to write config schema")
	}
	return nil
}

func ensureDataPath(config *Config) error {
	if strings.TrimSpace(config.Profile.DataPath) != "" {
		return nil
	}
	name := strings.TrimSpace(config.Profile.Name)
	if name == "" {
		name = defaultProfileName
	}
	dataPath, err := GetProfileDataDir(name)
	if err != nil {
		return fmt.Errorf("failed to get profile data path: %w", err)
	}
	config.Profile.DataPath = dataPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Profile.Name = strings.TrimSpace(config.Profile.Name)
	config.Profile.DataPath = strings.TrimSpace(config.Profile.DataPath)

	policy := strings.ToLower(strings.TrimSpace(string(config.Profile.PersistentPermissionsPolicy)))
	if policy == "" {
		policy = string(entity.PolicyStoreOnDisk)
	}
	config.Profile.PersistentPermissionsPolicy = entity.PersistentPermissionsPolicy(policy)

	backend := strings.ToLower(strings.TrimSpace(string(config.Storage.Backend)))
	if backend == "" {
		backend = string(StorageBackendJSON)
	}
	config.Storage.Backend = StorageBackend(backend)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Metrics.Namespace = strings.TrimSpace(config.Metrics.Namespace)
	config.Metrics.Textfile = strings.TrimSpace(config.Metrics.Textfile)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}
