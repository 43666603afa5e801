package handler

import (
	"log/slog"
	"net/http"

	"drivenotes/internal/domain/models"
	"drivenotes/internal/domain/repositories"
	"drivenotes/internal/domain/services"
	"drivenotes/internal/handler/sse"
	"drivenotes/internal/httputil"
)

// SummarizeHandler bridges the summarization adapter to HTTP, either as a
// single JSON response or as an SSE chunk stream.
type SummarizeHandler struct {
	summarizer services.Summarizer
	files      repositories.FileStore
	logger     *slog.Logger
}

// NewSummarizeHandler creates a new summarize handler
func NewSummarizeHandler(summarizer services.Summarizer, files repositories.FileStore, logger *slog.Logger) *SummarizeHandler {
	return &SummarizeHandler{summarizer: summarizer, files: files, logger: logger}
}

type summarizeRequest struct {
	// Type is "text" for extracted document text or "audio" for a stored
	// recording referenced by file id.
	Type         string `json:"type"`
	Text         string `json:"text,omitempty"`
	CustomPrompt string `json:"custom_prompt,omitempty"`
	FileID       string `json:"file_id,omitempty"`
	Stream       bool   `json:"stream,omitempty"`
}

// Summarize runs text or audio summarization
// POST /api/summarize
func (h *SummarizeHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	var audio []byte

	switch req.Type {
	case "text":
		if req.Text == "" {
			httputil.RespondError(w, http.StatusBadRequest, "text is required")
			return
		}
	case "audio":
		if req.FileID == "" {
			httputil.RespondError(w, http.StatusBadRequest, "file_id is required")
			return
		}
		data, err := h.files.Download(ctx, httputil.GetToken(r), req.FileID)
		if err != nil {
			handleError(w, r, h.logger, err)
			return
		}
		audio = data
	default:
		httputil.RespondError(w, http.StatusBadRequest, "type must be \"text\" or \"audio\"")
		return
	}

	if req.Stream {
		h.streamSummary(w, r, &req, audio)
		return
	}

	var summary string
	var err error
	if req.Type == "text" {
		summary, err = h.summarizer.SummarizeText(ctx, req.Text, req.CustomPrompt)
	} else {
		summary, err = h.summarizer.SummarizeAudio(ctx, audio, models.MimeAudio)
	}
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (h *SummarizeHandler) streamSummary(w http.ResponseWriter, r *http.Request, req *summarizeRequest, audio []byte) {
	writer, err := sse.NewWriter(w)
	if err != nil {
		httputil.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	send := func(chunk string) error {
		return writer.WriteEvent("chunk", map[string]string{"text": chunk})
	}

	ctx := r.Context()
	if req.Type == "text" {
		err = h.summarizer.SummarizeTextStream(ctx, req.Text, req.CustomPrompt, send)
	} else {
		err = h.summarizer.SummarizeAudioStream(ctx, audio, models.MimeAudio, send)
	}
	if err != nil {
		// headers are already out; the error becomes a terminal event
		h.logger.Error("summarize stream failed", "error", err, "request_id", httputil.GetRequestID(r))
		_ = writer.WriteEvent("error", map[string]string{"message": "summarization failed"})
		return
	}

	_ = writer.WriteEvent("done", map[string]string{})
}
