package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/webperm/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		if match := tomlSectionHeader.FindStringSubmatch(line); match != nil {
			sections = append(sections, match[1])
		}
	}
	return sections
}

func TestEncodeConfig_SectionsSorted(t *testing.T) {
	data, err := EncodeConfig(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"logging", "metrics", "profile", "settings", "storage"}, sectionHeaders(string(data)))
	assert.Contains(t, string(data), "persistent_permissions_policy = 'store_on_disk'")
}

func TestSortTOMLSections(t *testing.T) {
	in := "top = 1\n\n[b]\n  x = 1\n\n[a]\n  y = 2\n"

	assert.Equal(t, "top = 1\n\n[a]\n  y = 2\n\n[b]\n  x = 1\n", sortTOMLSections(in))
	assert.Empty(t, sortTOMLSections("\n\n"))
}

func TestWriteConfigOrdered_LoadsBack(t *testing.T) {
	t.Setenv("ENV", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig()
	cfg.Profile.Name = "work"
	cfg.Profile.DataPath = filepath.Join(dir, "data")
	cfg.Profile.PersistentPermissionsPolicy = entity.PolicyAskEveryTime
	cfg.Storage.Backend = StorageBackendSQLite
	cfg.Settings.JavascriptCanPaste = true
	require.NoError(t, WriteConfigOrdered(cfg, path))

	m, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, m.Load(testCtx()))

	assert.Equal(t, cfg, m.Get())
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.Error(t, WriteConfigOrdered(nil, path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
