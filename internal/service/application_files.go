package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"credvault/internal/model"
	"credvault/internal/repository"
	"credvault/internal/storage"
)

var (
	ErrReaderNil = errors.New("reader is nil")
	// ErrInvalidFileName is returned when an id or file name would leave the
	// record's object prefix.
	ErrInvalidFileName = errors.New("id and file name must be single path segments")
)

const applicationDetailsField = "application_details"

// FileLinkExpiry is how long a presigned download link stays valid.
const FileLinkExpiry = 15 * time.Minute

// ApplicationFileService manages the files referenced by a job hunt credential's
// application_details list.
type ApplicationFileService interface {
	// Attach uploads the content to object storage and appends its key to the record.
	// The object is removed again if the record cannot be updated.
	Attach(ctx context.Context, id string, r io.Reader, originalFilename, contentType string, size int64) (*model.JobHuntCredential, error)

	// Link returns a presigned download URL for a file attached to the record.
	Link(ctx context.Context, id, name string) (string, error)
}

type applicationFileService struct {
	store storage.Storage
	repo  repository.DocumentRepository[model.JobHuntCredential]
}

// NewApplicationFileService constructs a new ApplicationFileService.
func NewApplicationFileService(store storage.Storage, repo repository.DocumentRepository[model.JobHuntCredential]) ApplicationFileService {
	return &applicationFileService{store: store, repo: repo}
}

func objectKey(id, name string) string {
	return path.Join("job_hunt", id, name)
}

// singleSegment reports whether s can be used as one object key segment
// without escaping its parent prefix.
func singleSegment(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`) && path.Base(s) == s
}

func (s *applicationFileService) find(ctx context.Context, id string) (*model.JobHuntCredential, error) {
	rec, err := s.repo.FindOne(ctx, ByID().Match(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Entity: "Job hunt credential", Label: "ID", Key: id}
		}
		return nil, err
	}
	return rec, nil
}

func (s *applicationFileService) Attach(ctx context.Context, id string, r io.Reader, originalFilename, contentType string, size int64) (*model.JobHuntCredential, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if !singleSegment(id) {
		return nil, ErrInvalidFileName
	}
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	key := objectKey(id, uuid.NewString()+filepath.Ext(originalFilename))
	info, err := s.store.Put(ctx, key, r, storage.PutOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	matched, err := s.repo.AppendToList(ctx, id, applicationDetailsField, info.Key)
	if err == nil && matched == 0 {
		err = &NotFoundError{Entity: "Job hunt credential", Label: "ID", Key: id}
	}
	if err != nil {
		if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
			return nil, fmt.Errorf("record update failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("record update failed: %w", err)
	}

	return s.find(ctx, id)
}

// Link only presigns keys under the record's own prefix, so a name that is not
// a single path segment is rejected before the record is read.
func (s *applicationFileService) Link(ctx context.Context, id, name string) (string, error) {
	if !singleSegment(id) || !singleSegment(name) {
		return "", ErrInvalidFileName
	}
	rec, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	key := objectKey(id, name)
	if !slices.Contains(rec.ApplicationDetails, key) {
		return "", &NotFoundError{Entity: "Application file", Label: "name", Key: name}
	}
	return s.store.PresignGet(ctx, key, FileLinkExpiry)
}
