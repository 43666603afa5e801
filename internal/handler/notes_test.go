package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"drivenotes/internal/middleware"
	"drivenotes/internal/repository/memory"
	"drivenotes/internal/service/extract"
	"drivenotes/internal/service/folders"
	"drivenotes/internal/service/notes"
	"drivenotes/internal/service/store"
)

const testToken = "test-token"

func newTestMux(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	files := memory.NewStore()
	resolver := folders.NewResolver(files, "Notes", logger)
	slotStore := store.NewStore(files, logger)
	noteService := notes.NewService(resolver, slotStore, files, extract.NewExtractor(logger), logger)

	notesHandler := NewNotesHandler(noteService, logger)
	mediaHandler := NewMediaHandler(noteService, files, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", notesHandler.HealthCheck)
	mux.HandleFunc("GET /api/notes", notesHandler.ListNotes)
	mux.HandleFunc("POST /api/notes", notesHandler.CreateNote)
	mux.HandleFunc("GET /api/notes/{id}", notesHandler.GetNote)
	mux.HandleFunc("PUT /api/notes/{id}", notesHandler.SaveNote)
	mux.HandleFunc("DELETE /api/notes/{id}", notesHandler.DeleteNote)
	mux.HandleFunc("GET /api/notes/{id}/tags", notesHandler.GetTags)
	mux.HandleFunc("PUT /api/notes/{id}/tags", notesHandler.PutTags)
	mux.HandleFunc("GET /api/notes/{id}/audio", mediaHandler.ListAudio)
	mux.HandleFunc("POST /api/notes/{id}/audio", mediaHandler.UploadAudio)

	return middleware.Auth(nil, logger)(mux)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	r := httptest.NewRequest(method, path, reader)
	r.Header.Set("Authorization", "Bearer "+testToken)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func createNote(t *testing.T, h http.Handler, title string) string {
	t.Helper()
	w := doJSON(t, h, "POST", "/api/notes", map[string]string{"title": title})
	if w.Code != http.StatusCreated {
		t.Fatalf("create note: status %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return resp.ID
}

func TestMissingTokenRejected(t *testing.T) {
	h := newTestMux(t)

	r := httptest.NewRequest("GET", "/api/notes", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestHealthSkipsAuth(t *testing.T) {
	h := newTestMux(t)

	r := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestNoteLifecycle(t *testing.T) {
	h := newTestMux(t)
	id := createNote(t, h, "lifecycle")

	sketch := []byte{0x89, 'P', 'N', 'G'}
	w := doJSON(t, h, "PUT", "/api/notes/"+id, map[string]string{
		"summary":       "S",
		"note":          "N",
		"sketch_base64": "data:image/png;base64," + base64.StdEncoding.EncodeToString(sketch),
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("save: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, h, "GET", "/api/notes/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("load: status %d", w.Code)
	}
	var got noteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode note: %v", err)
	}
	if got.Summary != "S" || got.Note != "N" {
		t.Errorf("unexpected note content: %+v", got)
	}
	if !got.HasSketch {
		t.Fatal("expected sketch present")
	}
	want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(sketch)
	if got.SketchBase64 != want {
		t.Errorf("sketch_base64 = %q, want %q", got.SketchBase64, want)
	}

	w = doJSON(t, h, "DELETE", "/api/notes/"+id, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", w.Code)
	}

	w = doJSON(t, h, "GET", "/api/notes/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("load after delete: status %d, want 404", w.Code)
	}

	w = doJSON(t, h, "GET", "/api/notes", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte(id)) {
		t.Error("trashed note still in listing")
	}
}

func TestTagsEndpoints(t *testing.T) {
	h := newTestMux(t)
	id := createNote(t, h, "tagged")

	w := doJSON(t, h, "GET", fmt.Sprintf("/api/notes/%s/tags", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get tags: status %d", w.Code)
	}
	if w.Body.String() != `{"tags":[]}` {
		t.Errorf("fresh note tags = %s, want empty array", w.Body.String())
	}

	w = doJSON(t, h, "PUT", fmt.Sprintf("/api/notes/%s/tags", id), map[string][]string{
		"tags": {"work", "ideas"},
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("put tags: status %d", w.Code)
	}

	w = doJSON(t, h, "GET", fmt.Sprintf("/api/notes/%s/tags", id), nil)
	var resp struct {
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode tags: %v", err)
	}
	if len(resp.Tags) != 2 || resp.Tags[0] != "work" {
		t.Errorf("tags = %v", resp.Tags)
	}
}

func TestAudioUploadAndList(t *testing.T) {
	h := newTestMux(t)
	id := createNote(t, h, "recordings")

	w := doJSON(t, h, "POST", fmt.Sprintf("/api/notes/%s/audio", id), map[string]string{
		"file_name":   "rec-20260830.webm",
		"data_base64": base64.StdEncoding.EncodeToString([]byte("audio-bytes")),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("upload audio: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, h, "GET", fmt.Sprintf("/api/notes/%s/audio", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list audio: status %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("rec-20260830.webm")) {
		t.Errorf("audio listing missing upload: %s", w.Body.String())
	}
}

func TestCreateNoteRequiresTitle(t *testing.T) {
	h := newTestMux(t)

	w := doJSON(t, h, "POST", "/api/notes", map[string]string{"title": ""})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
