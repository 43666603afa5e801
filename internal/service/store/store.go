// Package store implements the named-slot document store: at most one
// live file per slot name inside a note folder, written through a single
// upsert primitive.
package store

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"drivenotes/internal/domain/models"
	"drivenotes/internal/domain/repositories"
)

// Store reads and writes slot files inside note folders.
type Store struct {
	files  repositories.FileStore
	logger *slog.Logger
}

// NewStore creates a named-slot document store.
func NewStore(files repositories.FileStore, logger *slog.Logger) *Store {
	return &Store{files: files, logger: logger}
}

// Upsert writes content under the given name inside folderID. An existing
// file is replaced in place so its id (and any direct-download link built
// from it) stays valid; otherwise a new file is created. The find-then-
// write sequence is not atomic; concurrent upserts of the same slot can
// race (single-editor usage is assumed).
func (s *Store) Upsert(ctx context.Context, token, folderID, name, mimeType string, content []byte) (string, error) {
	existing, err := s.files.List(ctx, token, repositories.Query{
		ParentID: folderID,
		Name:     name,
	})
	if err != nil {
		return "", fmt.Errorf("upsert %q: %w", name, err)
	}

	if len(existing) > 0 {
		fileID := existing[0].ID
		if err := s.files.Update(ctx, token, fileID, mimeType, bytes.NewReader(content)); err != nil {
			return "", fmt.Errorf("upsert %q: %w", name, err)
		}
		s.logger.Debug("slot updated", "name", name, "folder_id", folderID, "file_id", fileID)
		return fileID, nil
	}

	fileID, err := s.files.Create(ctx, token, folderID, name, mimeType, bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("upsert %q: %w", name, err)
	}
	s.logger.Debug("slot created", "name", name, "folder_id", folderID, "file_id", fileID)
	return fileID, nil
}

// ReadText downloads a file and decodes it as UTF-8 text.
func (s *Store) ReadText(ctx context.Context, token, fileID string) (string, error) {
	data, err := s.files.Download(ctx, token, fileID)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadBinary downloads a file's raw bytes unmodified.
func (s *Store) ReadBinary(ctx context.Context, token, fileID string) ([]byte, error) {
	return s.files.Download(ctx, token, fileID)
}

// ListByMimePrefix lists a folder's files whose MIME type starts with the
// given prefix, newest first.
func (s *Store) ListByMimePrefix(ctx context.Context, token, folderID, prefix string) ([]models.FileInfo, error) {
	return s.files.List(ctx, token, repositories.Query{
		ParentID:   folderID,
		MimePrefix: prefix,
	})
}

// ListByMimeTypes lists a folder's files whose MIME type is on the given
// allow-list, merged newest first.
func (s *Store) ListByMimeTypes(ctx context.Context, token, folderID string, mimeTypes []string) ([]models.FileInfo, error) {
	var out []models.FileInfo
	for _, mime := range mimeTypes {
		files, err := s.files.List(ctx, token, repositories.Query{
			ParentID: folderID,
			MimeType: mime,
		})
		if err != nil {
			return nil, fmt.Errorf("list %q files: %w", mime, err)
		}
		out = append(out, files...)
	}

	// merge keeps per-type provider order; re-sort newest first overall
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedTime.After(out[i].CreatedTime) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}
