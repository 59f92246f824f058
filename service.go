package pawtrait

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// DefaultURLTTL is the presigned-URL expiry used when none is configured.
const DefaultURLTTL = 15 * time.Minute

// PhotoRepo defines the interface for photo metadata persistence.
// Implementations must handle concurrent access safely.
//
// All methods accept a context for cancellation and timeout control.
type PhotoRepo interface {
	// Put stores a metadata item keyed by (FamilyID, PhotoID), overwriting
	// any existing item with the same key. Returns the stored item.
	Put(ctx context.Context, item PhotoMetadata) (PhotoMetadata, error)

	// Get retrieves a single item. Returns ErrNotFound when no item exists
	// for the given key.
	Get(ctx context.Context, familyID, photoID string) (PhotoMetadata, error)

	// ListByFamily retrieves every item in a family's partition. Order is
	// backend-dependent; callers must not rely on it.
	ListByFamily(ctx context.Context, familyID string) ([]PhotoMetadata, error)
}

// URLSigner mints presigned URLs against object storage. Signing is an
// offline operation; implementations must not require the object to exist.
type URLSigner interface {
	// SignUpload returns a URL allowing a single PUT of the given key,
	// constrained to contentType when non-empty, valid for expires.
	SignUpload(ctx context.Context, key, contentType string, expires time.Duration) (string, error)

	// SignDownload returns a URL allowing a single GET of the given key,
	// valid for expires.
	SignDownload(ctx context.Context, key string, expires time.Duration) (string, error)
}

// ServiceConfig holds configuration options for PhotoService.
type ServiceConfig struct {
	URLTTL time.Duration // presigned-URL expiry (default: 15m)
}

// PhotoService implements the request logic for the four photo operations.
// It holds no cross-request state beyond its collaborators; every method is
// a pure request to response transformation over the repo and signer.
type PhotoService struct {
	repo   PhotoRepo
	signer URLSigner
	urlTTL time.Duration
}

func NewPhotoService(repo PhotoRepo, signer URLSigner, cfg ServiceConfig) (*PhotoService, error) {
	if repo == nil {
		return nil, fmt.Errorf("new photo service: repo is required")
	}
	if signer == nil {
		return nil, fmt.Errorf("new photo service: signer is required")
	}
	urlTTL := cfg.URLTTL
	if urlTTL <= 0 {
		urlTTL = DefaultURLTTL
	}
	return &PhotoService{
		repo:   repo,
		signer: signer,
		urlTTL: urlTTL,
	}, nil
}

// IssueUpload generates a fresh photo identifier, derives the object key,
// and mints a presigned PUT URL bound to that key and the client-supplied
// content type. No metadata is written; the client is expected to call
// Record with the returned PhotoID after uploading.
//
// Error types returned:
//   - ErrInvalidInput: malformed family identifier
//   - context.Canceled or context.DeadlineExceeded: context was cancelled
//   - Wrapped signer errors: storage collaborator could not mint a URL
func (s *PhotoService) IssueUpload(ctx context.Context, familyID string, req UploadRequest) (UploadGrant, error) {
	if err := ctx.Err(); err != nil {
		return UploadGrant{}, fmt.Errorf("issue upload: %w", err)
	}

	if !IsValidID(familyID) {
		return UploadGrant{}, fmt.Errorf("issue upload: %w: family id", ErrInvalidInput)
	}

	photoID := uuid.NewString()
	key := ObjectKeyFor(familyID, photoID, req.ContentType)

	uploadURL, err := s.signer.SignUpload(ctx, key, req.ContentType, s.urlTTL)
	if err != nil {
		return UploadGrant{}, fmt.Errorf("issue upload %s: %w", key, err)
	}

	return UploadGrant{
		PhotoID:     photoID,
		ObjectKey:   key,
		UploadURL:   uploadURL,
		ContentType: req.ContentType,
		Title:       req.Title,
		ExpiresAt:   time.Now().UTC().Add(s.urlTTL),
		ExpiresIn:   int64(s.urlTTL / time.Second),
	}, nil
}

// Record writes a metadata item keyed by (familyID, req.PhotoID), setting
// UploadedAt to the current time. The write is an idempotent replace:
// repeating the call with the same key overwrites the stored item,
// last write wins. The object's existence in storage is not verified.
//
// Error types returned:
//   - ErrMissingPhotoID: empty photo identifier
//   - ErrInvalidInput: malformed family or photo identifier
//   - context.Canceled or context.DeadlineExceeded: context was cancelled
//   - Wrapped repo errors: metadata store failure
func (s *PhotoService) Record(ctx context.Context, familyID string, req RecordRequest) (PhotoMetadata, error) {
	if err := ctx.Err(); err != nil {
		return PhotoMetadata{}, fmt.Errorf("record photo: %w", err)
	}

	if !IsValidID(familyID) {
		return PhotoMetadata{}, fmt.Errorf("record photo: %w: family id", ErrInvalidInput)
	}

	if req.PhotoID == "" {
		return PhotoMetadata{}, fmt.Errorf("record photo: %w", ErrMissingPhotoID)
	}

	if !IsValidID(req.PhotoID) {
		return PhotoMetadata{}, fmt.Errorf("record photo %s: %w: photo id", req.PhotoID, ErrInvalidInput)
	}

	objectKey := req.ObjectKey
	if objectKey == "" {
		objectKey = ObjectKeyFor(familyID, req.PhotoID, req.ContentType)
	}

	item := PhotoMetadata{
		FamilyID:    familyID,
		PhotoID:     req.PhotoID,
		ObjectKey:   objectKey,
		UploadedAt:  time.Now().UTC(),
		ContentType: req.ContentType,
		Title:       req.Title,
		Description: req.Description,
		TakenAt:     req.TakenAt,
	}

	stored, err := s.repo.Put(ctx, item)
	if err != nil {
		return PhotoMetadata{}, fmt.Errorf("record photo %s: %w", req.PhotoID, err)
	}

	return stored, nil
}

// List returns every photo recorded for the family, most recent first.
// Backend order is not trusted: items are sorted here by UploadedAt
// descending with PhotoID ascending as the tiebreak, so the contract holds
// across all repo implementations.
func (s *PhotoService) List(ctx context.Context, familyID string) ([]PhotoMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}

	if !IsValidID(familyID) {
		return nil, fmt.Errorf("list photos: %w: family id", ErrInvalidInput)
	}

	items, err := s.repo.ListByFamily(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].UploadedAt.Equal(items[j].UploadedAt) {
			return items[i].UploadedAt.After(items[j].UploadedAt)
		}
		return items[i].PhotoID < items[j].PhotoID
	})

	return items, nil
}

// ContentURL resolves a photo to a presigned GET URL for its object.
// Returns ErrNotFound when the photo does not exist or has no object key.
func (s *PhotoService) ContentURL(ctx context.Context, familyID, photoID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("content url: %w", err)
	}

	if !IsValidID(familyID) {
		return "", fmt.Errorf("content url: %w: family id", ErrInvalidInput)
	}

	if photoID == "" {
		return "", fmt.Errorf("content url: %w", ErrMissingPhotoID)
	}

	item, err := s.repo.Get(ctx, familyID, photoID)
	if err != nil {
		return "", fmt.Errorf("content url %s: %w", photoID, err)
	}

	if item.ObjectKey == "" {
		return "", fmt.Errorf("content url %s: no object key: %w", photoID, ErrNotFound)
	}

	url, err := s.signer.SignDownload(ctx, item.ObjectKey, s.urlTTL)
	if err != nil {
		return "", fmt.Errorf("content url %s: %w", photoID, err)
	}

	return url, nil
}
