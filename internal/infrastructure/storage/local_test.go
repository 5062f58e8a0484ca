package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tshirt-brand/backend/internal/infrastructure/config"
)

// newMultipartFile builds a *multipart.FileHeader the way gin receives one
func newMultipartFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/products/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	files := req.MultipartForm.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func newTestStore(t *testing.T, maxSize int64) *LocalImageStore {
	t.Helper()
	store, err := NewLocalImageStore(config.UploadConfig{
		Dir:         t.TempDir(),
		MaxFileSize: maxSize,
		PublicPath:  "/uploads",
	})
	require.NoError(t, err)
	return store
}

func TestLocalImageStore_Save(t *testing.T) {
	store := newTestStore(t, 1024)

	url, err := store.Save(context.Background(), newMultipartFile(t, "shirt.PNG", []byte("fake image bytes")))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/product-"), "unexpected url %s", url)
	assert.True(t, strings.HasSuffix(url, ".png"), "extension should be lowercased: %s", url)

	stored := filepath.Join(store.Dir(), filepath.Base(url))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), data)
}

func TestLocalImageStore_Save_RejectsLargeFile(t *testing.T) {
	store := newTestStore(t, 10)

	_, err := store.Save(context.Background(), newMultipartFile(t, "shirt.jpg", bytes.Repeat([]byte("x"), 11)))

	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestLocalImageStore_Save_RejectsUnsupportedType(t *testing.T) {
	store := newTestStore(t, 1024)

	for _, filename := range []string{"malware.exe", "notes.txt", "archive.zip", "noextension"} {
		_, err := store.Save(context.Background(), newMultipartFile(t, filename, []byte("content")))
		assert.ErrorIs(t, err, ErrUnsupportedFileType, "file %s should be rejected", filename)
	}
}

func TestLocalImageStore_Save_UniqueNames(t *testing.T) {
	store := newTestStore(t, 1024)

	first, err := store.Save(context.Background(), newMultipartFile(t, "a.gif", []byte("one")))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), newMultipartFile(t, "a.gif", []byte("two")))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
