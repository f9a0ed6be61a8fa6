package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/dsemenov/go-shield/internal/filecheck"
	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/dsemenov/go-shield/internal/service"
	"github.com/dsemenov/go-shield/internal/utils"
	"github.com/google/uuid"
)

// multipartMemoryLimit caps how much of the multipart form is buffered in
// memory before spilling to temporary files.
const multipartMemoryLimit = 1 << 20

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		log.Warn().Err(err).Msg("invalid multipart form")
		h.writeProblem(w, r, http.StatusUnprocessableEntity, "File Validation Error", "request is not a valid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeProblem(w, r, http.StatusUnprocessableEntity, "File Validation Error", "file field is required", nil)
		return
	}
	defer file.Close()

	// read one byte past the limit so an oversized file is detected without
	// buffering all of it
	content, err := io.ReadAll(io.LimitReader(file, filecheck.MaxFileSize+1))
	if err != nil {
		log.Err(err).Msg("reading upload failed")
		h.writeProblem(w, r, http.StatusInternalServerError, "Internal Server Error", "reading upload failed", nil)
		return
	}

	response, err := h.services.UploadService.SaveUpload(ctx, service.FileUpload{
		Filename:         header.Filename,
		DeclaredMIMEType: header.Header.Get("Content-Type"),
		Content:          content,
	})
	if err != nil {
		var sizeErr *service.FileSizeError
		var validationErr *service.FileValidationError
		switch {
		case errors.As(err, &sizeErr):
			h.writeProblem(w, r, http.StatusRequestEntityTooLarge, "File Size Error", sizeErr.Message, nil)
			return
		case errors.As(err, &validationErr):
			h.writeProblem(w, r, http.StatusUnprocessableEntity, "File Validation Error", validationErr.Message, nil)
			return
		default:
			h.writeProblem(w, r, http.StatusInternalServerError, "Internal Server Error", err.Error(), nil)
			return
		}
	}

	response.CorrelationID = uuid.NewString()

	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("writing upload response failed")
	}
}
