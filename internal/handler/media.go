package handler

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"

	"drivenotes/internal/domain/repositories"
	"drivenotes/internal/domain/services"
	"drivenotes/internal/httputil"
)

// MediaHandler serves audio recordings, document uploads and raw file
// downloads.
type MediaHandler struct {
	notes  services.NoteService
	files  repositories.FileStore
	logger *slog.Logger
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(notes services.NoteService, files repositories.FileStore, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{notes: notes, files: files, logger: logger}
}

// ListAudio lists a note's audio recordings
// GET /api/notes/{id}/audio
func (h *MediaHandler) ListAudio(w http.ResponseWriter, r *http.Request) {
	files, err := h.notes.ListAudio(r.Context(), httputil.GetToken(r), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, files)
}

type uploadAudioRequest struct {
	FileName   string `json:"file_name"`
	DataBase64 string `json:"data_base64"`
}

// UploadAudio stores a recording under a caller-generated name
// POST /api/notes/{id}/audio
func (h *MediaHandler) UploadAudio(w http.ResponseWriter, r *http.Request) {
	var req uploadAudioRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.DataBase64)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid audio encoding")
		return
	}

	fileID, err := h.notes.UploadAudio(r.Context(), httputil.GetToken(r), r.PathValue("id"), req.FileName, data)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, map[string]string{
		"file_id":   fileID,
		"file_name": req.FileName,
	})
}

// ListDocuments lists a note's uploaded documents
// GET /api/notes/{id}/documents
func (h *MediaHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	files, err := h.notes.ListDocuments(r.Context(), httputil.GetToken(r), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, files)
}

type uploadDocumentRequest struct {
	FileName   string `json:"file_name"`
	MimeType   string `json:"mime_type"`
	DataBase64 string `json:"data_base64"`
}

// UploadDocument stores a document from the MIME allow-list
// POST /api/notes/{id}/documents
func (h *MediaHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	var req uploadDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.DataBase64)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid document encoding")
		return
	}

	fileID, err := h.notes.UploadDocument(r.Context(), httputil.GetToken(r), r.PathValue("id"), req.FileName, req.MimeType, data)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, map[string]string{"file_id": fileID})
}

type extractRequest struct {
	MimeType string `json:"mime_type"`
}

// ExtractText downloads a document and returns its plain text
// POST /api/documents/{id}/extract
func (h *MediaHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text, err := h.notes.ExtractDocumentText(r.Context(), httputil.GetToken(r), r.PathValue("id"), req.MimeType)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"text": text})
}

// DownloadFile proxies a raw file download with its content type
// GET /api/files/{id}
func (h *MediaHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	body, contentType, err := h.files.DownloadStream(r.Context(), httputil.GetToken(r), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")

	if _, err := io.Copy(w, body); err != nil {
		h.logger.Warn("download copy aborted",
			"file_id", r.PathValue("id"),
			"error", err,
		)
	}
}
