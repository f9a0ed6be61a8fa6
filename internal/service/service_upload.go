package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dsemenov/go-shield/internal/config"
	"github.com/dsemenov/go-shield/internal/filecheck"
	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/dsemenov/go-shield/models"
)

// uploadService is the concrete implementation of [UploadService]. It runs
// every uploaded file through the size check, content inspection and path
// confinement before a single byte touches the disk.
type uploadService struct {
	uploadDir string
	logger    *logger.Logger
}

// NewUploadService constructs an [UploadService] writing into the configured
// upload directory.
func NewUploadService(cfg config.Uploads, logger *logger.Logger) UploadService {
	return &uploadService{
		uploadDir: cfg.Dir,
		logger:    logger,
	}
}

// SaveUpload validates and persists an uploaded file.
//
// The pipeline is ordered cheapest-first: the size limit is checked before
// the content is inspected, and the file is only written after its storage
// path has been confined to the upload directory. The returned filename is
// the server-generated storage name; the client-supplied name never reaches
// the filesystem.
//
// Returns the upload metadata or:
//   - *FileSizeError when the file exceeds the size limit.
//   - *FileValidationError when content inspection rejects the file.
func (s *uploadService) SaveUpload(ctx context.Context, upload FileUpload) (models.UploadResponse, error) {
	log := logger.FromContext(ctx)

	if outcome := filecheck.CheckSize(int64(len(upload.Content)), filecheck.MaxFileSize); !outcome.OK {
		log.Warn().Int("size", len(upload.Content)).Msg("upload rejected: too large")
		return models.UploadResponse{}, &FileSizeError{Message: outcome.Message}
	}

	inspection := filecheck.Inspect(upload.Content, upload.DeclaredMIMEType)
	if !inspection.OK {
		log.Warn().
			Str("declared_type", upload.DeclaredMIMEType).
			Str("detected_type", inspection.DetectedType).
			Msg("upload rejected: content inspection failed")
		return models.UploadResponse{}, &FileValidationError{Message: inspection.Message}
	}

	safeName := filecheck.SanitizeName(upload.Filename)
	storageName := filecheck.GenerateStorageName(safeName)

	resolution := filecheck.Resolve(storageName, s.uploadDir)
	if !resolution.OK {
		log.Error().Str("storage_name", storageName).Msg("upload rejected: path confinement failed")
		return models.UploadResponse{}, &FileValidationError{Message: resolution.Message}
	}

	if err := os.MkdirAll(s.uploadDir, 0o750); err != nil {
		log.Err(err).Str("dir", s.uploadDir).Msg("creating upload directory failed")
		return models.UploadResponse{}, fmt.Errorf("creating upload directory failed: %w", err)
	}

	if err := os.WriteFile(resolution.ResolvedPath, upload.Content, 0o600); err != nil {
		log.Err(err).Str("path", filepath.Base(resolution.ResolvedPath)).Msg("writing upload failed")
		return models.UploadResponse{}, fmt.Errorf("writing upload failed: %w", err)
	}

	log.Info().
		Str("filename", storageName).
		Str("mime_type", inspection.DetectedType).
		Int("size", len(upload.Content)).
		Msg("upload stored")

	return models.UploadResponse{
		Filename: storageName,
		MIMEType: inspection.DetectedType,
		Size:     int64(len(upload.Content)),
	}, nil
}
