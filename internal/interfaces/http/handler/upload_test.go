package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tshirt-brand/backend/internal/infrastructure/config"
	"github.com/tshirt-brand/backend/internal/infrastructure/storage"
	"github.com/tshirt-brand/backend/internal/interfaces/http/dto"
)

func newUploadRouter(t *testing.T, maxSize int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewLocalImageStore(config.UploadConfig{
		Dir:         t.TempDir(),
		MaxFileSize: maxSize,
		PublicPath:  "/uploads",
	})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/api/products/upload", NewUploadHandler(store, nil).Upload)
	return r
}

func multipartBody(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUploadHandler_Upload(t *testing.T) {
	t.Run("stores image and returns public url", func(t *testing.T) {
		router := newUploadRouter(t, 1<<20)

		body, contentType := multipartBody(t, "image", "shirt.png", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/api/products/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "/uploads/product-")
	})

	t.Run("rejects missing file field", func(t *testing.T) {
		router := newUploadRouter(t, 1<<20)

		body, contentType := multipartBody(t, "wrong_field", "shirt.png", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/api/products/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects oversized image with distinct code", func(t *testing.T) {
		router := newUploadRouter(t, 16)

		body, contentType := multipartBody(t, "image", "shirt.jpg", bytes.Repeat([]byte("a"), 64))
		req := httptest.NewRequest(http.MethodPost, "/api/products/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodeFileTooLarge)
	})

	t.Run("rejects unsupported file type with distinct code", func(t *testing.T) {
		router := newUploadRouter(t, 1<<20)

		body, contentType := multipartBody(t, "image", "notes.txt", []byte("plain text"))
		req := httptest.NewRequest(http.MethodPost, "/api/products/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodeUnsupportedFileType)
	})
}
