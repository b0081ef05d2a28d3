package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-labs/rolo-cli/internal/core/ports/driven"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	err = store.Set(driven.KeyGeminiAPIKey, "secret")
	require.NoError(t, err)

	val, ok := store.Get(driven.KeyGeminiAPIKey)
	assert.True(t, ok)
	assert.Equal(t, "secret", val)
}

func TestConfigStore_GetString_WrongTypeOrMissing(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("nonexistent"))

	require.NoError(t, store.Set("flag", true))
	assert.Equal(t, "", store.GetString("flag"))
	assert.True(t, store.GetBool("flag"))
}

func TestConfigStore_SetPersistsAcrossReopen(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set(driven.KeyNewsAPIKey, "abc123"))
	require.NoError(t, store.Set(driven.KeyStoreBackend, "sqlite"))

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "abc123", reopened.GetString(driven.KeyNewsAPIKey))
	assert.Equal(t, "sqlite", reopened.GetString(driven.KeyStoreBackend))
}

func TestConfigStore_FileUsesNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("gemini.api_key", "secret"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[gemini]")
	assert.Contains(t, string(data), "api_key = 'secret'")
}

func TestConfigStore_Keys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("b.key", "2"))
	require.NoError(t, store.Set("a.key", "1"))

	assert.Equal(t, []string{"a.key", "b.key"}, store.Keys())
}

func TestConfigStore_LoadMalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0600))

	_, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
}
