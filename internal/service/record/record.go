package record

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/sumit1004/neurolink_backend/internal/repo"
	entrecord "github.com/sumit1004/neurolink_backend/internal/repo/healthrecord"
	"github.com/sumit1004/neurolink_backend/internal/service/media"
)

const storagePrefix = "health_records"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Title string

	FileName string
	FileBody []byte
	FileMime string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, patientID uuid.UUID) ([]*repo.HealthRecord, error)
	Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.HealthRecord, error)
	DownloadURL(ctx context.Context, patientID, recordID uuid.UUID) (string, error)
	Delete(ctx context.Context, patientID, recordID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type recordService struct {
	db       *repo.Client
	uploader *media.Uploader
	store    media.ObjectStore
}

func New(db *repo.Client, store media.ObjectStore) Service {
	return &recordService{
		db:       db,
		uploader: media.NewUploader(store, slog.Default()),
		store:    store,
	}
}

func (s *recordService) List(ctx context.Context, patientID uuid.UUID) ([]*repo.HealthRecord, error) {
	rows, err := s.db.HealthRecord.Query().
		Where(entrecord.PatientID(patientID)).
		Order(entrecord.ByID(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list health records: %w", err)
	}
	return rows, nil
}

func (s *recordService) Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.HealthRecord, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, ErrTitleRequired
	}
	if len(req.FileBody) == 0 {
		return nil, ErrFileRequired
	}

	var created *repo.HealthRecord
	_, _, err := s.uploader.Put(ctx, storagePrefix, patientID, req.FileName, req.FileBody, req.FileMime,
		func(url, key string) error {
			r, err := s.db.HealthRecord.Create().
				SetPatientID(patientID).
				SetTitle(req.Title).
				SetFileURL(url).
				SetFileKey(key).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create health record: %w", err)
			}
			created = r
			return nil
		})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// keySource resolves a record's storage key for signing.
type keySource interface {
	fileKeyFor(ctx context.Context, patientID, recordID uuid.UUID) (string, error)
}

// downloadURL looks up the record's object key and signs a short-lived GET
// URL for it.
func downloadURL(ctx context.Context, src keySource, store media.ObjectStore, patientID, recordID uuid.UUID) (string, error) {
	key, err := src.fileKeyFor(ctx, patientID, recordID)
	if err != nil {
		return "", err
	}
	url, err := store.PresignDownload(ctx, key)
	if err != nil {
		return "", fmt.Errorf("presign health record %s: %w", recordID, err)
	}
	return url, nil
}

func (s *recordService) DownloadURL(ctx context.Context, patientID, recordID uuid.UUID) (string, error) {
	return downloadURL(ctx, s, s.store, patientID, recordID)
}

func (s *recordService) fileKeyFor(ctx context.Context, patientID, recordID uuid.UUID) (string, error) {
	r, err := s.db.HealthRecord.Query().
		Where(entrecord.ID(recordID), entrecord.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get health record: %w", err)
	}
	return r.FileKey, nil
}

func (s *recordService) Delete(ctx context.Context, patientID, recordID uuid.UUID) error {
	r, err := s.db.HealthRecord.Query().
		Where(entrecord.ID(recordID), entrecord.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get health record: %w", err)
	}

	if err := s.db.HealthRecord.DeleteOne(r).Exec(ctx); err != nil {
		return fmt.Errorf("delete health record: %w", err)
	}

	// File cleanup is best-effort; the row is already gone.
	if err := s.store.Delete(ctx, r.FileKey); err != nil {
		slog.Warn("failed to delete health record file", "key", r.FileKey, "error", err)
	}
	return nil
}
