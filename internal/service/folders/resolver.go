// Package folders resolves the singleton root folder and the per-note
// folders beneath it.
package folders

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"drivenotes/internal/domain"
	"drivenotes/internal/domain/models"
	"drivenotes/internal/domain/repositories"
)

// Resolver finds and lazily creates note folders. The root folder id is
// never cached across calls; every operation re-queries the provider.
type Resolver struct {
	files    repositories.FileStore
	rootName string
	logger   *slog.Logger
}

// NewResolver creates a folder resolver rooted at the given folder name.
func NewResolver(files repositories.FileStore, rootName string, logger *slog.Logger) *Resolver {
	return &Resolver{
		files:    files,
		rootName: rootName,
		logger:   logger,
	}
}

// EnsureRoot returns the id of the root folder, creating it on first
// access. If duplicate roots exist (a pre-existing creation race) the
// first result in provider order wins.
func (r *Resolver) EnsureRoot(ctx context.Context, token string) (string, error) {
	matches, err := r.files.List(ctx, token, repositories.Query{
		Name:        r.rootName,
		FoldersOnly: true,
	})
	if err != nil {
		return "", fmt.Errorf("resolve root folder: %w", err)
	}
	if len(matches) > 0 {
		if len(matches) > 1 {
			r.logger.Warn("duplicate root folders, picking first by provider order",
				"name", r.rootName,
				"count", len(matches),
			)
		}
		return matches[0].ID, nil
	}

	id, err := r.files.CreateFolder(ctx, token, "", r.rootName)
	if err != nil {
		return "", fmt.Errorf("create root folder: %w", err)
	}
	r.logger.Info("root folder created", "name", r.rootName, "folder_id", id)
	return id, nil
}

// CreateNoteFolder creates a note folder under the root. Titles are not
// unique; two notes may share a name.
func (r *Resolver) CreateNoteFolder(ctx context.Context, token, title string) (string, error) {
	if err := validation.Validate(title,
		validation.Required.Error("title is required"),
		validation.Length(1, 255),
	); err != nil {
		return "", &domain.ValidationError{Message: fmt.Sprintf("invalid note title: %v", err)}
	}

	rootID, err := r.EnsureRoot(ctx, token)
	if err != nil {
		return "", err
	}

	id, err := r.files.CreateFolder(ctx, token, rootID, title)
	if err != nil {
		return "", fmt.Errorf("create note folder: %w", err)
	}
	return id, nil
}

// ListNoteFolders lists the direct child folders of the root, newest
// first.
func (r *Resolver) ListNoteFolders(ctx context.Context, token string) ([]models.NoteInfo, error) {
	rootID, err := r.EnsureRoot(ctx, token)
	if err != nil {
		return nil, err
	}

	folders, err := r.files.List(ctx, token, repositories.Query{
		ParentID:    rootID,
		FoldersOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("list note folders: %w", err)
	}

	notes := make([]models.NoteInfo, 0, len(folders))
	for _, f := range folders {
		notes = append(notes, models.NoteInfo{
			ID:          f.ID,
			Name:        f.Name,
			CreatedTime: f.CreatedTime,
		})
	}
	return notes, nil
}

// FindByName looks up a single file by exact name inside a folder.
// Returns ("", nil) when absent. More than one match should not occur
// under correct upsert usage; the first match wins if it does.
func (r *Resolver) FindByName(ctx context.Context, token, folderID, name string) (string, error) {
	matches, err := r.files.List(ctx, token, repositories.Query{
		ParentID: folderID,
		Name:     name,
	})
	if err != nil {
		return "", fmt.Errorf("find %q: %w", name, err)
	}
	if len(matches) == 0 {
		return "", nil
	}
	return matches[0].ID, nil
}

// FolderName returns the display name of a folder.
func (r *Resolver) FolderName(ctx context.Context, token, folderID string) (string, error) {
	info, err := r.files.Metadata(ctx, token, folderID)
	if err != nil {
		return "", err
	}
	return info.Name, nil
}
