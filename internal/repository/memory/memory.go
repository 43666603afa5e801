// Package memory implements the FileStore boundary in process memory,
// mirroring the provider's observable semantics: duplicate names are
// allowed, listings are ordered by creation time descending, and trashing
// a folder hides its descendants. It backs the service tests and the
// offline development mode of notectl.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"drivenotes/internal/domain"
	"drivenotes/internal/domain/models"
	"drivenotes/internal/domain/repositories"
)

type file struct {
	info     models.FileInfo
	parentID string
	content  []byte
	seq      int
}

// Store is an in-memory FileStore. Safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	files map[string]*file
	seq   int
}

// NewStore creates an empty in-memory file store.
func NewStore() *Store {
	return &Store{files: make(map[string]*file)}
}

func (s *Store) checkToken(token string) error {
	if token == "" {
		return &domain.UnauthorizedError{Message: "missing access token"}
	}
	return nil
}

// effectivelyTrashed walks the parent chain; trashing a folder implicitly
// hides everything below it.
func (s *Store) effectivelyTrashed(f *file) bool {
	for f != nil {
		if f.info.Trashed {
			return true
		}
		f = s.files[f.parentID]
	}
	return false
}

func (s *Store) List(ctx context.Context, token string, q repositories.Query) ([]models.FileInfo, error) {
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*file
	for _, f := range s.files {
		if q.ParentID != "" && f.parentID != q.ParentID {
			continue
		}
		if q.ParentID == "" && f.parentID != "" {
			continue
		}
		if q.Name != "" && f.info.Name != q.Name {
			continue
		}
		if q.FoldersOnly && !f.info.IsFolder() {
			continue
		}
		if q.MimeType != "" && f.info.MimeType != q.MimeType {
			continue
		}
		if q.MimePrefix != "" && !hasPrefix(f.info.MimeType, q.MimePrefix) {
			continue
		}
		if s.effectivelyTrashed(f) {
			continue
		}
		matched = append(matched, f)
	}

	// createdTime desc, insertion order breaking ties
	for i := 0; i < len(matched); i++ {
		for j := i + 1; j < len(matched); j++ {
			if less(matched[i], matched[j]) {
				matched[i], matched[j] = matched[j], matched[i]
			}
		}
	}

	out := make([]models.FileInfo, 0, len(matched))
	for _, f := range matched {
		out = append(out, f.info)
	}
	return out, nil
}

func less(a, b *file) bool {
	if !a.info.CreatedTime.Equal(b.info.CreatedTime) {
		return a.info.CreatedTime.Before(b.info.CreatedTime)
	}
	return a.seq < b.seq
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func (s *Store) Metadata(ctx context.Context, token, fileID string) (*models.FileInfo, error) {
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.files[fileID]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("file %s not found", fileID)}
	}
	info := f.info
	info.Trashed = s.effectivelyTrashed(f)
	return &info, nil
}

func (s *Store) Download(ctx context.Context, token, fileID string) ([]byte, error) {
	body, _, err := s.DownloadStream(ctx, token, fileID)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}

func (s *Store) DownloadStream(ctx context.Context, token, fileID string) (io.ReadCloser, string, error) {
	if err := s.checkToken(token); err != nil {
		return nil, "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.files[fileID]
	if !ok {
		return nil, "", &domain.NotFoundError{Message: fmt.Sprintf("file %s not found", fileID)}
	}
	content := make([]byte, len(f.content))
	copy(content, f.content)
	return io.NopCloser(bytes.NewReader(content)), f.info.MimeType, nil
}

func (s *Store) Create(ctx context.Context, token, parentID, name, mimeType string, content io.Reader) (string, error) {
	if err := s.checkToken(token); err != nil {
		return "", err
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", &domain.RemoteError{Message: fmt.Sprintf("read upload: %v", err)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(parentID, name, mimeType, data), nil
}

func (s *Store) CreateFolder(ctx context.Context, token, parentID, name string) (string, error) {
	if err := s.checkToken(token); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(parentID, name, models.MimeFolder, nil), nil
}

func (s *Store) insert(parentID, name, mimeType string, content []byte) string {
	s.seq++
	id := uuid.NewString()
	s.files[id] = &file{
		info: models.FileInfo{
			ID:          id,
			Name:        name,
			MimeType:    mimeType,
			CreatedTime: time.Now(),
		},
		parentID: parentID,
		content:  content,
		seq:      s.seq,
	}
	return id
}

func (s *Store) Update(ctx context.Context, token, fileID, mimeType string, content io.Reader) error {
	if err := s.checkToken(token); err != nil {
		return err
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return &domain.RemoteError{Message: fmt.Sprintf("read upload: %v", err)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.files[fileID]
	if !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("file %s not found", fileID)}
	}
	f.content = data
	if mimeType != "" {
		f.info.MimeType = mimeType
	}
	return nil
}

func (s *Store) Trash(ctx context.Context, token, fileID string) error {
	if err := s.checkToken(token); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.files[fileID]
	if !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("file %s not found", fileID)}
	}
	f.info.Trashed = true
	return nil
}

var _ repositories.FileStore = (*Store)(nil)
