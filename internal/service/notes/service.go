// Package notes composes folder resolution and slot writes into note
// level operations: create, load, save, delete, tags, recordings and
// document uploads.
package notes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/sync/errgroup"

	"drivenotes/internal/domain"
	"drivenotes/internal/domain/models"
	"drivenotes/internal/domain/repositories"
	"drivenotes/internal/domain/services"
	"drivenotes/internal/service/folders"
	"drivenotes/internal/service/store"
)

type noteService struct {
	resolver  *folders.Resolver
	store     *store.Store
	files     repositories.FileStore
	extractor services.TextExtractor
	logger    *slog.Logger
}

// NewService creates the note aggregate service.
func NewService(
	resolver *folders.Resolver,
	slotStore *store.Store,
	files repositories.FileStore,
	extractor services.TextExtractor,
	logger *slog.Logger,
) services.NoteService {
	return &noteService{
		resolver:  resolver,
		store:     slotStore,
		files:     files,
		extractor: extractor,
		logger:    logger,
	}
}

func (s *noteService) EnsureRoot(ctx context.Context, token string) (string, error) {
	return s.resolver.EnsureRoot(ctx, token)
}

func (s *noteService) Create(ctx context.Context, token, title string) (*models.NoteInfo, error) {
	folderID, err := s.resolver.CreateNoteFolder(ctx, token, title)
	if err != nil {
		return nil, err
	}

	s.logger.Info("note created", "folder_id", folderID, "title", title)
	return &models.NoteInfo{ID: folderID, Name: title}, nil
}

func (s *noteService) List(ctx context.Context, token string) ([]models.NoteInfo, error) {
	return s.resolver.ListNoteFolders(ctx, token)
}

// Load assembles the aggregate: the three singleton-slot lookups run
// concurrently, then the two text reads, then the conditional sketch
// download. Missing slots yield empty content, never an error.
func (s *noteService) Load(ctx context.Context, token, folderID string) (*models.NoteData, error) {
	meta, err := s.files.Metadata(ctx, token, folderID)
	if err != nil {
		return nil, err
	}
	if meta.Trashed {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("note %s not found", folderID)}
	}

	var summaryID, noteID, sketchID string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		summaryID, err = s.resolver.FindByName(gctx, token, folderID, models.SlotSummary)
		return err
	})
	g.Go(func() (err error) {
		noteID, err = s.resolver.FindByName(gctx, token, folderID, models.SlotNote)
		return err
	})
	g.Go(func() (err error) {
		sketchID, err = s.resolver.FindByName(gctx, token, folderID, models.SlotSketch)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load note %s: %w", folderID, err)
	}

	data := &models.NoteData{}
	g, gctx = errgroup.WithContext(ctx)
	if summaryID != "" {
		g.Go(func() (err error) {
			data.Summary, err = s.store.ReadText(gctx, token, summaryID)
			return err
		})
	}
	if noteID != "" {
		g.Go(func() (err error) {
			data.Note, err = s.store.ReadText(gctx, token, noteID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load note %s: %w", folderID, err)
	}

	if sketchID != "" {
		sketch, err := s.store.ReadBinary(ctx, token, sketchID)
		if err != nil {
			return nil, fmt.Errorf("load sketch: %w", err)
		}
		data.HasSketch = true
		data.SketchFileID = sketchID
		data.Sketch = sketch
	}

	return data, nil
}

// Save upserts only the provided fields, concurrently. A failure in any
// slot fails the whole save; slots already written stay written (no
// cross-slot rollback).
func (s *noteService) Save(ctx context.Context, token, folderID string, req *models.SaveNoteRequest) error {
	if req.IsEmpty() {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if req.Summary != "" {
		g.Go(func() error {
			_, err := s.store.Upsert(gctx, token, folderID, models.SlotSummary, models.MimeSummary, []byte(req.Summary))
			return err
		})
	}
	if req.Note != "" {
		g.Go(func() error {
			_, err := s.store.Upsert(gctx, token, folderID, models.SlotNote, models.MimeNote, []byte(req.Note))
			return err
		})
	}
	if len(req.Sketch) > 0 {
		g.Go(func() error {
			_, err := s.store.Upsert(gctx, token, folderID, models.SlotSketch, models.MimeSketch, req.Sketch)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("save note %s: %w", folderID, err)
	}

	s.logger.Info("note saved",
		"folder_id", folderID,
		"summary", req.Summary != "",
		"note", req.Note != "",
		"sketch", len(req.Sketch) > 0,
	)
	return nil
}

func (s *noteService) Delete(ctx context.Context, token, folderID string) error {
	if err := s.files.Trash(ctx, token, folderID); err != nil {
		return fmt.Errorf("delete note %s: %w", folderID, err)
	}
	s.logger.Info("note trashed", "folder_id", folderID)
	return nil
}

func (s *noteService) FolderName(ctx context.Context, token, folderID string) (string, error) {
	return s.resolver.FolderName(ctx, token, folderID)
}

func (s *noteService) LoadTags(ctx context.Context, token, folderID string) ([]string, error) {
	fileID, err := s.resolver.FindByName(ctx, token, folderID, models.SlotTags)
	if err != nil {
		return nil, err
	}
	if fileID == "" {
		return []string{}, nil
	}

	content, err := s.store.ReadText(ctx, token, fileID)
	if err != nil {
		return nil, err
	}

	var tags []string
	if err := json.Unmarshal([]byte(content), &tags); err != nil {
		// malformed tags file is recovered, not surfaced
		s.logger.Warn("malformed tags file, returning empty list", "folder_id", folderID, "error", err)
		return []string{}, nil
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func (s *noteService) SaveTags(ctx context.Context, token, folderID string, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	if _, err := s.store.Upsert(ctx, token, folderID, models.SlotTags, models.MimeTags, encoded); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}
	return nil
}

func (s *noteService) UploadAudio(ctx context.Context, token, folderID, name string, data []byte) (string, error) {
	if err := validation.Validate(name, validation.Required.Error("file name is required")); err != nil {
		return "", &domain.ValidationError{Message: err.Error()}
	}
	if len(data) == 0 {
		return "", &domain.ValidationError{Message: "audio content is empty"}
	}

	// names are caller-generated (timestamp-derived) so this is a fresh
	// insert in practice, but upsert keeps the one-file-per-name invariant
	fileID, err := s.store.Upsert(ctx, token, folderID, name, models.MimeAudio, data)
	if err != nil {
		return "", fmt.Errorf("upload audio: %w", err)
	}
	s.logger.Info("audio uploaded", "folder_id", folderID, "name", name, "bytes", len(data))
	return fileID, nil
}

func (s *noteService) ListAudio(ctx context.Context, token, folderID string) ([]models.FileInfo, error) {
	return s.store.ListByMimePrefix(ctx, token, folderID, models.AudioMimePrefix)
}

func (s *noteService) UploadDocument(ctx context.Context, token, folderID, name, mimeType string, data []byte) (string, error) {
	if err := validation.Validate(name, validation.Required.Error("file name is required")); err != nil {
		return "", &domain.ValidationError{Message: err.Error()}
	}
	if !models.IsDocumentMime(mimeType) {
		return "", &domain.ValidationError{Message: fmt.Sprintf("unsupported document type %q", mimeType)}
	}

	fileID, err := s.store.Upsert(ctx, token, folderID, name, mimeType, data)
	if err != nil {
		return "", fmt.Errorf("upload document: %w", err)
	}
	s.logger.Info("document uploaded", "folder_id", folderID, "name", name, "mime_type", mimeType)
	return fileID, nil
}

func (s *noteService) ListDocuments(ctx context.Context, token, folderID string) ([]models.FileInfo, error) {
	return s.store.ListByMimeTypes(ctx, token, folderID, models.DocumentMimeTypes)
}

func (s *noteService) ExtractDocumentText(ctx context.Context, token, fileID, mimeType string) (string, error) {
	data, err := s.store.ReadBinary(ctx, token, fileID)
	if err != nil {
		return "", err
	}
	text, err := s.extractor.Extract(data, mimeType)
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	return text, nil
}
