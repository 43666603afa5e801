package services

import (
	"context"

	"drivenotes/internal/domain/models"
)

// NoteService composes folder resolution and slot writes into note-level
// operations. All operations take the caller's bearer token; state lives
// entirely in the storage provider.
type NoteService interface {
	// EnsureRoot resolves (lazily creating) the root folder.
	EnsureRoot(ctx context.Context, token string) (string, error)

	// Create makes a new empty note folder under the root.
	Create(ctx context.Context, token, title string) (*models.NoteInfo, error)

	// List returns all note folders, newest first.
	List(ctx context.Context, token string) ([]models.NoteInfo, error)

	// Load assembles the note aggregate from whichever slot files exist.
	// A trashed or unknown folder id yields a NotFoundError.
	Load(ctx context.Context, token, folderID string) (*models.NoteData, error)

	// Save upserts the provided fields concurrently. Empty fields are not
	// written and therefore never clear previously saved content.
	Save(ctx context.Context, token, folderID string, req *models.SaveNoteRequest) error

	// Delete trashes the note folder; children are hidden by the
	// provider's trash semantics.
	Delete(ctx context.Context, token, folderID string) error

	// FolderName returns the display name of a note folder.
	FolderName(ctx context.Context, token, folderID string) (string, error)

	// LoadTags reads tags.json. A missing or malformed file yields an
	// empty list, never an error.
	LoadTags(ctx context.Context, token, folderID string) ([]string, error)

	// SaveTags full-replaces tags.json with the encoded list.
	SaveTags(ctx context.Context, token, folderID string, tags []string) error

	// UploadAudio stores an ad-hoc audio recording under the given name.
	UploadAudio(ctx context.Context, token, folderID, name string, data []byte) (string, error)

	// ListAudio returns the note's audio recordings, newest first.
	ListAudio(ctx context.Context, token, folderID string) ([]models.FileInfo, error)

	// UploadDocument stores a document file; the MIME type must be on the
	// document allow-list.
	UploadDocument(ctx context.Context, token, folderID, name, mimeType string, data []byte) (string, error)

	// ListDocuments returns the note's document files, newest first.
	ListDocuments(ctx context.Context, token, folderID string) ([]models.FileInfo, error)

	// ExtractDocumentText downloads a document and extracts plain text
	// according to its declared MIME type.
	ExtractDocumentText(ctx context.Context, token, fileID, mimeType string) (string, error)
}
