package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dsemenov/go-shield/internal/config"
	"github.com/dsemenov/go-shield/internal/filecheck"
	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploadService(t *testing.T) (UploadService, string) {
	dir := t.TempDir()
	return NewUploadService(config.Uploads{Dir: dir}, logger.Nop()), dir
}

func pngUpload() FileUpload {
	return FileUpload{
		Filename:         "picture.png",
		DeclaredMIMEType: "image/png",
		Content:          append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, []byte("imagedata")...),
	}
}

func TestSaveUpload_Success(t *testing.T) {
	svc, dir := newTestUploadService(t)

	response, err := svc.SaveUpload(context.Background(), pngUpload())
	require.NoError(t, err)

	assert.Equal(t, "image/png", response.MIMEType)
	assert.Equal(t, int64(17), response.Size)
	assert.NotEqual(t, "picture.png", response.Filename, "storage name must be server-generated")
	assert.Equal(t, ".png", filepath.Ext(response.Filename))

	stored, err := os.ReadFile(filepath.Join(dir, response.Filename))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(stored, []byte{0x89, 0x50}))
}

func TestSaveUpload_TooLarge(t *testing.T) {
	svc, _ := newTestUploadService(t)

	upload := pngUpload()
	upload.Content = append(upload.Content, make([]byte, filecheck.MaxFileSize)...)

	_, err := svc.SaveUpload(context.Background(), upload)

	var sizeErr *FileSizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Contains(t, sizeErr.Message, "exceeds maximum")
}

func TestSaveUpload_MIMEMismatch(t *testing.T) {
	svc, _ := newTestUploadService(t)

	upload := pngUpload()
	upload.DeclaredMIMEType = "image/jpeg"

	_, err := svc.SaveUpload(context.Background(), upload)

	var validationErr *FileValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "MIME type mismatch")
}

func TestSaveUpload_EmptyFile(t *testing.T) {
	svc, _ := newTestUploadService(t)

	_, err := svc.SaveUpload(context.Background(), FileUpload{
		Filename:         "empty.txt",
		DeclaredMIMEType: "text/plain",
	})

	var validationErr *FileValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestSaveUpload_TraversalFilenameNeutralized(t *testing.T) {
	svc, dir := newTestUploadService(t)

	upload := pngUpload()
	upload.Filename = "../../etc/passwd.png"

	response, err := svc.SaveUpload(context.Background(), upload)
	require.NoError(t, err)

	// the stored file lives inside the upload dir under a generated name
	_, err = os.Stat(filepath.Join(dir, response.Filename))
	require.NoError(t, err)

	parent := filepath.Dir(dir)
	entries, err := os.ReadDir(parent)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotEqual(t, "passwd.png", entry.Name())
	}
}
