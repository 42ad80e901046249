package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&body, w.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["image"][0]
}

func TestStore_SaveAndRemove(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	webPath, err := store.Save(fileHeader(t, "vase.jpg", []byte("fake image bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(webPath, WebPrefix+"/"))
	assert.True(t, strings.HasSuffix(webPath, ".jpg"))

	onDisk := filepath.Join(store.Dir(), filepath.Base(webPath))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), data)

	require.NoError(t, store.Remove(webPath))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestStore_SaveRejectsUnsupportedExtension(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(fileHeader(t, "malware.exe", []byte("nope")))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestStore_RemoveMissingBlobIsNotAnError(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove(WebPrefix+"/never-existed.jpg"))
	assert.NoError(t, store.Remove(""))
}

func TestStore_RemoveCannotEscapeUploadDir(t *testing.T) {
	parent := t.TempDir()
	outside := filepath.Join(parent, "precious.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	store, err := New(filepath.Join(parent, "uploads"))
	require.NoError(t, err)

	// Only the filename component of a stored path is honored.
	require.NoError(t, store.Remove("/uploads/../precious.txt"))
	_, err = os.Stat(outside)
	assert.NoError(t, err)
}
