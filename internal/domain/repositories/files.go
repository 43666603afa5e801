package repositories

import (
	"context"
	"io"

	"drivenotes/internal/domain/models"
)

// Query selects files inside one parent folder. Exactly one of Name,
// MimeType or MimePrefix narrows the match; FoldersOnly restricts the
// result to folder objects. Trashed items are never returned.
type Query struct {
	ParentID    string
	Name        string
	MimeType    string
	MimePrefix  string
	FoldersOnly bool
}

// FileStore is the typed boundary over the cloud storage provider's file
// operations. Every call takes the caller's bearer token explicitly; there
// is no ambient session and nothing is cached across calls.
//
// Implementations must return results ordered by creation time descending
// and must treat an empty List result as a normal outcome, not an error.
type FileStore interface {
	// List returns metadata for all non-trashed files matching q.
	List(ctx context.Context, token string, q Query) ([]models.FileInfo, error)

	// Metadata returns the metadata of a single file or folder, including
	// its trashed flag.
	Metadata(ctx context.Context, token, fileID string) (*models.FileInfo, error)

	// Download returns the raw byte content of a file.
	Download(ctx context.Context, token, fileID string) ([]byte, error)

	// DownloadStream returns the content as a stream together with the
	// response content type. The caller owns closing the reader.
	DownloadStream(ctx context.Context, token, fileID string) (io.ReadCloser, string, error)

	// Create uploads a new file under parentID and returns its id.
	Create(ctx context.Context, token, parentID, name, mimeType string, content io.Reader) (string, error)

	// CreateFolder creates a child folder under parentID. An empty
	// parentID creates the folder directly under the drive root.
	CreateFolder(ctx context.Context, token, parentID, name string) (string, error)

	// Update replaces the content of an existing file in place, keeping
	// its id stable.
	Update(ctx context.Context, token, fileID, mimeType string, content io.Reader) error

	// Trash soft-deletes a file or folder. Trashing a folder hides its
	// children from subsequent listings via the provider's trash
	// semantics; no recursive enumeration happens here.
	Trash(ctx context.Context, token, fileID string) error
}
