package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pavel-fokin/content-server/internal/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	storage, err := NewStorage(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return storage
}

func TestNewStorageCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	storage, err := NewStorage(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, storage.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStorageSaveAndOpen(t *testing.T) {
	storage := newTestStorage(t)

	saved, err := storage.Save("hello.txt", strings.NewReader("hello world"))
	require.NoError(t, err)
	assert.Equal(t, "hello.txt", saved.Name)
	assert.Equal(t, int64(11), saved.Size)

	file, content, err := storage.Open("hello.txt")
	require.NoError(t, err)
	defer content.Close()

	data, err := io.ReadAll(content)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
	assert.Equal(t, int64(11), file.Size)
	assert.False(t, file.ModTime.IsZero())
}

func TestStorageSaveOverwrites(t *testing.T) {
	storage := newTestStorage(t)

	_, err := storage.Save("a.txt", strings.NewReader("first version"))
	require.NoError(t, err)
	_, err = storage.Save("a.txt", strings.NewReader("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(storage.Dir(), "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

type failingReader struct {
	data string
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.data == "" {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestStorageSaveFailureLeavesNothing(t *testing.T) {
	storage := newTestStorage(t)

	_, err := storage.Save("a.txt", strings.NewReader("original"))
	require.NoError(t, err)

	_, err = storage.Save("a.txt", &failingReader{data: "partial", err: files.ErrPayloadTooLarge})
	assert.ErrorIs(t, err, files.ErrPayloadTooLarge)

	_, err = storage.Save("b.txt", &failingReader{data: "partial", err: errors.New("read failed")})
	assert.Error(t, err)

	// the previous content survives and no temp files remain
	data, err := os.ReadFile(filepath.Join(storage.Dir(), "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))

	entries, err := os.ReadDir(storage.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.txt", entries[0].Name())
}

func TestStorageNotFound(t *testing.T) {
	storage := newTestStorage(t)
	require.NoError(t, os.Mkdir(filepath.Join(storage.Dir(), "subdir"), 0755))

	for _, name := range []string{"missing.txt", "subdir"} {
		_, err := storage.Stat(name)
		assert.ErrorIs(t, err, files.ErrNotFound, name)

		_, _, err = storage.Open(name)
		assert.ErrorIs(t, err, files.ErrNotFound, name)
	}
}

func TestStorageList(t *testing.T) {
	storage := newTestStorage(t)

	list, err := storage.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = storage.Save("a.png", strings.NewReader("png"))
	require.NoError(t, err)
	_, err = storage.Save("b.txt", strings.NewReader("text"))
	require.NoError(t, err)

	// directories and in-progress uploads are not stored files
	require.NoError(t, os.Mkdir(filepath.Join(storage.Dir(), "subdir"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(storage.Dir(), ".upload-123.tmp"), []byte("x"), 0644))

	list, err = storage.List()
	require.NoError(t, err)

	names := make([]string, 0, len(list))
	for _, f := range list {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"a.png", "b.txt"}, names)
}
