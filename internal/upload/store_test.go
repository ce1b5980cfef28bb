package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartUpload(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(FieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	file, header, err := req.FormFile(FieldName)
	require.NoError(t, err)
	return file, header
}

func TestStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, 1<<20)
	require.NoError(t, err)

	file, header := multipartUpload(t, "photo.PNG", []byte("fake-image-bytes"))
	defer file.Close()

	url, err := store.Save(file, header)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"), "extension should be kept lowercased: %s", url)

	stored, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-image-bytes"), stored)

	// the temp file must be gone
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreSaveUniqueNames(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		file, header := multipartUpload(t, "same.jpg", []byte("payload"))
		url, err := store.Save(file, header)
		file.Close()
		require.NoError(t, err)
		assert.False(t, seen[url], "duplicate upload name %s", url)
		seen[url] = true
	}
}

func TestStoreSaveTooLarge(t *testing.T) {
	store, err := NewStore(t.TempDir(), 8)
	require.NoError(t, err)

	file, header := multipartUpload(t, "big.jpg", bytes.Repeat([]byte("x"), 64))
	defer file.Close()

	_, err = store.Save(file, header)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestStoreSaveMissingFilename(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	_, err = store.Save(nil, &multipart.FileHeader{})
	assert.ErrorIs(t, err, ErrNoFile)
}

func TestStoreSaveDefaultExtension(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	file, header := multipartUpload(t, "noext", []byte("payload"))
	defer file.Close()

	url, err := store.Save(file, header)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"), "fallback extension expected: %s", url)
}
