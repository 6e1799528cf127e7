// Package settings exposes the embedder settings that can force-grant a capability.
package settings

import (
	"sync/atomic"

	"github.com/bnema/webperm/internal/application/port"
	"github.com/bnema/webperm/internal/domain/entity"
	"github.com/bnema/webperm/internal/infrastructure/config"
)

// ConfigSource is the part of config.Manager the provider follows.
type ConfigSource interface {
	Get() *config.Config
	OnConfigChange(callback func(*config.Config))
}

// Provider implements port.PermissionSettingsProvider from the configuration.
// The values apply to every browsing context of the profile.
type Provider struct {
	canAccess atomic.Bool
	canPaste  atomic.Bool
}

// NewProvider creates a provider with the given initial values.
func NewProvider(cfg config.SettingsConfig) *Provider {
	p := &Provider{}
	p.Update(cfg)
	return p
}

// NewProviderFromSource creates a provider that follows live reloads of source.
func NewProviderFromSource(source ConfigSource) *Provider {
	p := NewProvider(source.Get().Settings)
	source.OnConfigChange(func(cfg *config.Config) {
		p.Update(cfg.Settings)
	})
	return p
}

// Update replaces the current values.
func (p *Provider) Update(cfg config.SettingsConfig) {
	p.canAccess.Store(cfg.JavascriptCanAccessClipboard)
	p.canPaste.Store(cfg.JavascriptCanPaste)
}

// ClipboardSettings returns the JavaScript clipboard attributes.
func (p *Provider) ClipboardSettings(_ entity.ContextToken) port.ClipboardSettings {
	return port.ClipboardSettings{
		CanAccess: p.canAccess.Load(),
		CanPaste:  p.canPaste.Load(),
	}
}
