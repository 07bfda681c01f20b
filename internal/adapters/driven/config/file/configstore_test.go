package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	_, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	err = store.Set("output.directory", "/tmp/cards")
	require.NoError(t, err)

	val, ok := store.Get("output.directory")
	assert.True(t, ok)
	assert.Equal(t, "/tmp/cards", val)
}

func TestConfigStore_GetString(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("output.directory", "out"))
	assert.Equal(t, "out", store.GetString("output.directory"))

	// Non-existent key
	assert.Equal(t, "", store.GetString("nonexistent"))

	// Wrong type
	require.NoError(t, store.Set("output.scale", 20))
	assert.Equal(t, "", store.GetString("output.scale"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("output.scale", 12))
	assert.Equal(t, 12, store.GetInt("output.scale"))

	// Non-existent key
	assert.Equal(t, 0, store.GetInt("nonexistent"))

	// Wrong type
	require.NoError(t, store.Set("output.directory", "not an int"))
	assert.Equal(t, 0, store.GetInt("output.directory"))
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("output.scale", 8))
	require.NoError(t, store1.Set("output.jpeg_quality", 70))
	require.NoError(t, store1.Set("output.directory", "cards"))

	// New instance loads from file; TOML integers come back as int64.
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 8, store2.GetInt("output.scale"))
	assert.Equal(t, 70, store2.GetInt("output.jpeg_quality"))
	assert.Equal(t, "cards", store2.GetString("output.directory"))
}

func TestConfigStore_WritesTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("output.scale", 8))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[output]")
	assert.Contains(t, string(data), "scale = 8")
	assert.NotContains(t, string(data), "output.scale")
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte("[output]\nscale = 6\njpeg_quality = 88\ndirectory = \"~/qr\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0o600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 6, store.GetInt("output.scale"))
	assert.Equal(t, 88, store.GetInt("output.jpeg_quality"))
	assert.Equal(t, "~/qr", store.GetString("output.directory"))
}

func TestConfigStore_Load_NonExistent(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	val, ok := store.Get("any_key")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("output.scale", 10))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0o600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("any_key")
	assert.False(t, ok)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := "output.key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetString(key)
			_, _ = store.Get(key)
		}(i)
	}
	wg.Wait()
}

func TestConfigStore_OverwriteValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("output.directory", "original"))
	require.NoError(t, store.Set("output.directory", "updated"))

	assert.Equal(t, "updated", store.GetString("output.directory"))
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	corrupted := []byte("this is not valid TOML {{{[[")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), corrupted, 0o600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Save_Explicit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	store.mu.Lock()
	store.data["output.directory"] = "manual"
	store.mu.Unlock()

	require.NoError(t, store.Save())

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "manual", store2.GetString("output.directory"))
}

func TestConfigStore_Save_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("output.scale", 10))

	// Replace the file with a directory to cause a write error.
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0o700))

	err = store.Set("output.scale", 11)
	assert.Error(t, err)
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("output.scale", 10))

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0o600))

	assert.Error(t, store.Load())
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"output": map[string]any{
			"scale": int64(20),
			"extra": map[string]any{"deep": "x"},
		},
		"top": "level",
	}

	flat := flattenMap(nested, "")

	assert.Equal(t, map[string]any{
		"output.scale":      int64(20),
		"output.extra.deep": "x",
		"top":               "level",
	}, flat)
}

func TestNestMap(t *testing.T) {
	flat := map[string]any{
		"output.scale":     20,
		"output.directory": "out",
		"top":              "level",
	}

	nested := nestMap(flat)

	assert.Equal(t, map[string]any{
		"output": map[string]any{
			"scale":     20,
			"directory": "out",
		},
		"top": "level",
	}, nested)
	assert.Equal(t, flat, flattenMap(nested, ""))
}
