package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	store.now = func() time.Time { return time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC) }

	stored, err := store.Save(context.Background(), strings.NewReader("fake audio bytes"), "client_meeting.mp3")
	require.NoError(t, err)

	assert.Equal(t, "20250314_103000_client_meeting.mp3", stored.Key)
	assert.Equal(t, "client_meeting.mp3", stored.Name)
	assert.Equal(t, int64(len("fake audio bytes")), stored.Size)

	content, err := os.ReadFile(stored.LocalPath)
	require.NoError(t, err)
	assert.Equal(t, "fake audio bytes", string(content))

	require.NoError(t, store.Delete(context.Background(), stored.Key))
	_, err = os.Stat(stored.LocalPath)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_RejectsUnsupportedFormat(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(context.Background(), strings.NewReader("data"), "notes.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported audio format")
}

func TestLocalStore_DeleteMissingIsNoop(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "never_saved.mp3"))
}

func TestLocalStore_SaveStripsDirectoryComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	stored, err := store.Save(context.Background(), strings.NewReader("data"), "../../escape.mp3")
	require.NoError(t, err)

	// The stored file stays inside the base directory.
	assert.Equal(t, dir, filepath.Dir(stored.LocalPath))
}
