// Package drive implements the FileStore boundary on top of the Google
// Drive v3 API. A fresh API client is built from the request's bearer
// token on every call; nothing is memoized across requests.
package drive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"drivenotes/internal/domain"
	"drivenotes/internal/domain/models"
	"drivenotes/internal/domain/repositories"
)

const metadataFields = "id, name, mimeType, createdTime, trashed"

// Store talks to the Drive API with per-call credentials.
type Store struct {
	logger *slog.Logger
}

// NewStore creates a Drive-backed file store.
func NewStore(logger *slog.Logger) repositories.FileStore {
	return &Store{logger: logger}
}

// service builds a Drive client authorized by the given access token.
func (s *Store) service(ctx context.Context, token string) (*drive.Service, error) {
	if token == "" {
		return nil, &domain.UnauthorizedError{Message: "missing access token"}
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, &domain.RemoteError{Message: fmt.Sprintf("create drive client: %v", err)}
	}
	return svc, nil
}

func (s *Store) List(ctx context.Context, token string, q repositories.Query) ([]models.FileInfo, error) {
	svc, err := s.service(ctx, token)
	if err != nil {
		return nil, err
	}

	query := buildQuery(q)
	res, err := svc.Files.List().
		Q(query).
		Fields(googleapi.Field("files(" + metadataFields + ")")).
		OrderBy("createdTime desc").
		Spaces("drive").
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapError("list files", err)
	}

	files := make([]models.FileInfo, 0, len(res.Files))
	for _, f := range res.Files {
		files = append(files, toFileInfo(f))
	}

	s.logger.Debug("drive list", "query", query, "count", len(files))
	return files, nil
}

func (s *Store) Metadata(ctx context.Context, token, fileID string) (*models.FileInfo, error) {
	svc, err := s.service(ctx, token)
	if err != nil {
		return nil, err
	}

	f, err := svc.Files.Get(fileID).
		Fields(metadataFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapError("get metadata", err)
	}

	info := toFileInfo(f)
	return &info, nil
}

func (s *Store) Download(ctx context.Context, token, fileID string) ([]byte, error) {
	body, _, err := s.DownloadStream(ctx, token, fileID)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &domain.RemoteError{Message: fmt.Sprintf("read download: %v", err)}
	}
	return data, nil
}

func (s *Store) DownloadStream(ctx context.Context, token, fileID string) (io.ReadCloser, string, error) {
	svc, err := s.service(ctx, token)
	if err != nil {
		return nil, "", err
	}

	// alt=media download
	res, err := svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, "", mapError("download", err)
	}
	return res.Body, res.Header.Get("Content-Type"), nil
}

func (s *Store) Create(ctx context.Context, token, parentID, name, mimeType string, content io.Reader) (string, error) {
	svc, err := s.service(ctx, token)
	if err != nil {
		return "", err
	}

	meta := &drive.File{
		Name:    name,
		Parents: []string{parentID},
	}
	f, err := svc.Files.Create(meta).
		Media(content, googleapi.ContentType(mimeType)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", mapError("create file", err)
	}

	s.logger.Debug("drive create", "name", name, "parent_id", parentID, "file_id", f.Id)
	return f.Id, nil
}

func (s *Store) CreateFolder(ctx context.Context, token, parentID, name string) (string, error) {
	svc, err := s.service(ctx, token)
	if err != nil {
		return "", err
	}

	meta := &drive.File{
		Name:     name,
		MimeType: models.MimeFolder,
	}
	if parentID != "" {
		meta.Parents = []string{parentID}
	}
	f, err := svc.Files.Create(meta).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", mapError("create folder", err)
	}

	s.logger.Info("drive folder created", "name", name, "folder_id", f.Id)
	return f.Id, nil
}

func (s *Store) Update(ctx context.Context, token, fileID, mimeType string, content io.Reader) error {
	svc, err := s.service(ctx, token)
	if err != nil {
		return err
	}

	_, err = svc.Files.Update(fileID, &drive.File{}).
		Media(content, googleapi.ContentType(mimeType)).
		Context(ctx).
		Do()
	if err != nil {
		return mapError("update file", err)
	}
	return nil
}

func (s *Store) Trash(ctx context.Context, token, fileID string) error {
	svc, err := s.service(ctx, token)
	if err != nil {
		return err
	}

	_, err = svc.Files.Update(fileID, &drive.File{Trashed: true}).Context(ctx).Do()
	if err != nil {
		return mapError("trash file", err)
	}

	s.logger.Info("drive file trashed", "file_id", fileID)
	return nil
}

func toFileInfo(f *drive.File) models.FileInfo {
	created, _ := time.Parse(time.RFC3339, f.CreatedTime)
	return models.FileInfo{
		ID:          f.Id,
		Name:        f.Name,
		MimeType:    f.MimeType,
		CreatedTime: created,
		Trashed:     f.Trashed,
	}
}
