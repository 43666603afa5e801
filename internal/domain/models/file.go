package models

import "time"

// Fixed slot filenames inside a note folder. Each slot holds at most one
// live file; writes go through the store's upsert so duplicates are never
// appended.
const (
	SlotSummary = "summary.txt"
	SlotNote    = "note.md"
	SlotSketch  = "sketch.png"
	SlotTags    = "tags.json"
)

// MIME types for the fixed slots and provider folder objects.
const (
	MimeSummary = "text/plain"
	MimeNote    = "text/markdown"
	MimeSketch  = "image/png"
	MimeTags    = "application/json"
	MimeFolder  = "application/vnd.google-apps.folder"
	MimeAudio   = "audio/webm"

	// AudioMimePrefix selects ad-hoc audio recordings of any codec.
	AudioMimePrefix = "audio/"
)

// DocumentMimeTypes is the allow-list for ad-hoc document uploads.
var DocumentMimeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"text/plain",
}

// IsDocumentMime reports whether mime is on the document allow-list.
func IsDocumentMime(mime string) bool {
	for _, m := range DocumentMimeTypes {
		if m == mime {
			return true
		}
	}
	return false
}

// FileInfo is the provider-side metadata of a file or folder.
type FileInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	MimeType    string    `json:"mime_type"`
	CreatedTime time.Time `json:"created_time"`
	Trashed     bool      `json:"-"`
}

// IsFolder reports whether the record is a folder-like container.
func (f *FileInfo) IsFolder() bool {
	return f.MimeType == MimeFolder
}
