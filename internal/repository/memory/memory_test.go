package memory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"drivenotes/internal/domain"
	"drivenotes/internal/domain/repositories"
)

const testToken = "test-token"

func TestListOrdersNewestFirst(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	folderID, _ := s.CreateFolder(ctx, testToken, "", "parent")
	for _, name := range []string{"a", "b", "c"} {
		if _, err := s.Create(ctx, testToken, folderID, name, "text/plain", strings.NewReader(name)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	files, err := s.List(ctx, testToken, repositories.Query{ParentID: folderID})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(files))
	}
	if files[0].Name != "c" || files[2].Name != "a" {
		t.Errorf("not newest first: %v, %v, %v", files[0].Name, files[1].Name, files[2].Name)
	}
}

func TestTrashedFolderHidesChildren(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	folderID, _ := s.CreateFolder(ctx, testToken, "", "parent")
	fileID, _ := s.Create(ctx, testToken, folderID, "child.txt", "text/plain", strings.NewReader("x"))

	if err := s.Trash(ctx, testToken, folderID); err != nil {
		t.Fatalf("Trash failed: %v", err)
	}

	files, err := s.List(ctx, testToken, repositories.Query{ParentID: folderID})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("children of trashed folder still listed: %v", files)
	}

	// the child's own metadata reflects the inherited trash state
	info, err := s.Metadata(ctx, testToken, fileID)
	if err != nil {
		t.Fatalf("Metadata failed: %v", err)
	}
	if !info.Trashed {
		t.Error("child of trashed folder not reported as trashed")
	}
}

func TestUpdatePreservesID(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	folderID, _ := s.CreateFolder(ctx, testToken, "", "parent")
	fileID, _ := s.Create(ctx, testToken, folderID, "note.md", "text/markdown", strings.NewReader("v1"))

	if err := s.Update(ctx, testToken, fileID, "text/markdown", strings.NewReader("v2")); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	data, err := s.Download(ctx, testToken, fileID)
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if string(data) != "v2" {
		t.Errorf("content = %q, want v2", data)
	}
}

func TestUnknownIDIsNotFound(t *testing.T) {
	s := NewStore()

	if _, err := s.Download(context.Background(), testToken, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestEmptyTokenRejected(t *testing.T) {
	s := NewStore()

	if _, err := s.List(context.Background(), "", repositories.Query{}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected unauthorized, got %v", err)
	}
}
