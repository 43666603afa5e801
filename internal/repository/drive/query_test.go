package drive

import (
	"testing"

	"drivenotes/internal/domain/repositories"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name string
		q    repositories.Query
		want string
	}{
		{
			name: "parent and name",
			q:    repositories.Query{ParentID: "abc123", Name: "summary.txt"},
			want: "'abc123' in parents and name = 'summary.txt' and trashed = false",
		},
		{
			name: "folders only",
			q:    repositories.Query{Name: "Notes", FoldersOnly: true},
			want: "name = 'Notes' and mimeType = 'application/vnd.google-apps.folder' and trashed = false",
		},
		{
			name: "mime prefix",
			q:    repositories.Query{ParentID: "f1", MimePrefix: "audio/"},
			want: "'f1' in parents and mimeType contains 'audio/' and trashed = false",
		},
		{
			name: "exact mime",
			q:    repositories.Query{ParentID: "f1", MimeType: "application/pdf"},
			want: "'f1' in parents and mimeType = 'application/pdf' and trashed = false",
		},
		{
			name: "name with quote is escaped",
			q:    repositories.Query{ParentID: "f1", Name: "bob's note.md"},
			want: `'f1' in parents and name = 'bob\'s note.md' and trashed = false`,
		},
		{
			name: "name with backslash is escaped",
			q:    repositories.Query{Name: `a\b`},
			want: `name = 'a\\b' and trashed = false`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildQuery(tt.q); got != tt.want {
				t.Errorf("buildQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}
