package handler

import (
	"log/slog"
	"net/http"

	"portfolio/internal/config"
	"portfolio/internal/httputil"
	"portfolio/internal/storage/minio"
)

// UploadHandler handles multipart asset uploads (project images, profile
// image, resume)
type UploadHandler struct {
	storage *minio.Client
	logger  *slog.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(storage *minio.Client, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		storage: storage,
		logger:  logger,
	}
}

// Upload stores the uploaded file and returns its public URL
// POST /admin/upload (multipart field "file")
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.storage.Upload(r.Context(), header.Filename, contentType, file, header.Size)
	if err != nil {
		h.logger.Error("upload failed", "filename", header.Filename, "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "upload failed")
		return
	}

	h.logger.Info("asset uploaded", "filename", header.Filename, "url", url)
	httputil.RespondJSON(w, http.StatusCreated, map[string]string{"url": url})
}
