package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	"drivenotes/internal/domain/models"
	"drivenotes/internal/domain/services"
	"drivenotes/internal/httputil"
)

const sketchDataURLPrefix = "data:image/png;base64,"

// NotesHandler serves the note aggregate endpoints.
type NotesHandler struct {
	notes  services.NoteService
	logger *slog.Logger
}

// NewNotesHandler creates a new notes handler
func NewNotesHandler(notes services.NoteService, logger *slog.Logger) *NotesHandler {
	return &NotesHandler{notes: notes, logger: logger}
}

// ListNotes lists note folders, newest first
// GET /api/notes
func (h *NotesHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.List(r.Context(), httputil.GetToken(r))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, notes)
}

type createNoteRequest struct {
	Title string `json:"title"`
}

// CreateNote creates an empty note folder
// POST /api/notes
func (h *NotesHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := h.notes.Create(r.Context(), httputil.GetToken(r), req.Title)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, note)
}

type noteResponse struct {
	Summary      string `json:"summary"`
	Note         string `json:"note"`
	HasSketch    bool   `json:"has_sketch"`
	SketchFileID string `json:"sketch_file_id,omitempty"`
	SketchBase64 string `json:"sketch_base64,omitempty"`
}

// GetNote loads the note aggregate
// GET /api/notes/{id}
func (h *NotesHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	data, err := h.notes.Load(r.Context(), httputil.GetToken(r), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	resp := noteResponse{
		Summary:      data.Summary,
		Note:         data.Note,
		HasSketch:    data.HasSketch,
		SketchFileID: data.SketchFileID,
	}
	if data.HasSketch {
		resp.SketchBase64 = sketchDataURLPrefix + base64.StdEncoding.EncodeToString(data.Sketch)
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}

type saveNoteRequest struct {
	Summary      string `json:"summary"`
	Note         string `json:"note"`
	SketchBase64 string `json:"sketch_base64,omitempty"`
}

// SaveNote upserts the provided fields of a note. Omitted or empty
// fields are left untouched.
// PUT /api/notes/{id}
func (h *NotesHandler) SaveNote(w http.ResponseWriter, r *http.Request) {
	var req saveNoteRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	save := &models.SaveNoteRequest{
		Summary: req.Summary,
		Note:    req.Note,
	}
	if req.SketchBase64 != "" {
		encoded := strings.TrimPrefix(req.SketchBase64, sketchDataURLPrefix)
		sketch, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "invalid sketch encoding")
			return
		}
		save.Sketch = sketch
	}

	if err := h.notes.Save(r.Context(), httputil.GetToken(r), r.PathValue("id"), save); err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteNote trashes the note folder
// DELETE /api/notes/{id}
func (h *NotesHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.notes.Delete(r.Context(), httputil.GetToken(r), r.PathValue("id")); err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetNoteName returns the display name of a note folder
// GET /api/notes/{id}/name
func (h *NotesHandler) GetNoteName(w http.ResponseWriter, r *http.Request) {
	name, err := h.notes.FolderName(r.Context(), httputil.GetToken(r), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"name": name})
}

// GetTags reads the note's tag list
// GET /api/notes/{id}/tags
func (h *NotesHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.notes.LoadTags(r.Context(), httputil.GetToken(r), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, map[string][]string{"tags": tags})
}

type saveTagsRequest struct {
	Tags []string `json:"tags"`
}

// PutTags full-replaces the note's tag list
// PUT /api/notes/{id}/tags
func (h *NotesHandler) PutTags(w http.ResponseWriter, r *http.Request) {
	var req saveTagsRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.notes.SaveTags(r.Context(), httputil.GetToken(r), r.PathValue("id"), req.Tags); err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck reports liveness
// GET /health
func (h *NotesHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
