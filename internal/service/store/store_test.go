package store

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"drivenotes/internal/repository/memory"
)

const testToken = "test-token"

func newTestStore(t *testing.T) (*Store, *memory.Store, string) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	files := memory.NewStore()
	folderID, err := files.CreateFolder(context.Background(), testToken, "", "note")
	if err != nil {
		t.Fatalf("seed folder failed: %v", err)
	}
	return NewStore(files, logger), files, folderID
}

func TestUpsertIsIdempotent(t *testing.T) {
	s, _, folderID := newTestStore(t)
	ctx := context.Background()

	first, err := s.Upsert(ctx, testToken, folderID, "summary.txt", "text/plain", []byte("v1"))
	if err != nil {
		t.Fatalf("first Upsert failed: %v", err)
	}
	second, err := s.Upsert(ctx, testToken, folderID, "summary.txt", "text/plain", []byte("v2"))
	if err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	// the file id must survive the overwrite
	if first != second {
		t.Errorf("upsert created a new file: %s vs %s", first, second)
	}

	got, err := s.ReadText(ctx, testToken, second)
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if got != "v2" {
		t.Errorf("content = %q, want v2", got)
	}
}

func TestReadBinaryRoundTrip(t *testing.T) {
	s, _, folderID := newTestStore(t)
	ctx := context.Background()
	payload := []byte{0x00, 0x01, 0xfe, 0xff}

	id, err := s.Upsert(ctx, testToken, folderID, "sketch.png", "image/png", payload)
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	got, err := s.ReadBinary(ctx, testToken, id)
	if err != nil {
		t.Fatalf("ReadBinary failed: %v", err)
	}
	if len(got) != len(payload) {
		t.Fatalf("length mismatch: %d vs %d", len(got), len(payload))
	}
	for i := range got {
		if got[i] != payload[i] {
			t.Fatalf("byte %d differs", i)
		}
	}
}

func TestListByMimePrefix(t *testing.T) {
	s, _, folderID := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Upsert(ctx, testToken, folderID, "a.webm", "audio/webm", []byte("a")); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if _, err := s.Upsert(ctx, testToken, folderID, "b.ogg", "audio/ogg", []byte("b")); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if _, err := s.Upsert(ctx, testToken, folderID, "note.md", "text/markdown", []byte("n")); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	audio, err := s.ListByMimePrefix(ctx, testToken, folderID, "audio/")
	if err != nil {
		t.Fatalf("ListByMimePrefix failed: %v", err)
	}
	if len(audio) != 2 {
		t.Fatalf("expected 2 audio files, got %d", len(audio))
	}
	for _, f := range audio {
		if f.MimeType[:6] != "audio/" {
			t.Errorf("non-audio file in listing: %s (%s)", f.Name, f.MimeType)
		}
	}
}

func TestListByMimeTypesMergesNewestFirst(t *testing.T) {
	s, _, folderID := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Upsert(ctx, testToken, folderID, "doc.pdf", "application/pdf", []byte("p")); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if _, err := s.Upsert(ctx, testToken, folderID, "plain.txt", "text/plain", []byte("t")); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	docs, err := s.ListByMimeTypes(ctx, testToken, folderID, []string{"application/pdf", "text/plain"})
	if err != nil {
		t.Fatalf("ListByMimeTypes failed: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].CreatedTime.Before(docs[1].CreatedTime) {
		t.Error("documents are not ordered newest first")
	}
}
