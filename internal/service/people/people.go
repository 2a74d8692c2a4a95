package people

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/sumit1004/neurolink_backend/internal/repo"
	entperson "github.com/sumit1004/neurolink_backend/internal/repo/knownperson"
	"github.com/sumit1004/neurolink_backend/internal/service/media"
)

const storagePrefix = "known_people"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name     string
	Relation string
	Notes    *string

	PhotoName string
	PhotoBody []byte
	PhotoMime string
}

type UpdateRequest struct {
	Name     *string
	Relation *string
	Notes    *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, patientID uuid.UUID) ([]*repo.KnownPerson, error)
	Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.KnownPerson, error)
	Update(ctx context.Context, patientID, personID uuid.UUID, req UpdateRequest) (*repo.KnownPerson, error)
	Delete(ctx context.Context, patientID, personID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type peopleService struct {
	db       *repo.Client
	uploader *media.Uploader
	store    media.ObjectStore
}

func New(db *repo.Client, store media.ObjectStore) Service {
	return &peopleService{
		db:       db,
		uploader: media.NewUploader(store, slog.Default()),
		store:    store,
	}
}

func (s *peopleService) List(ctx context.Context, patientID uuid.UUID) ([]*repo.KnownPerson, error) {
	rows, err := s.db.KnownPerson.Query().
		Where(entperson.PatientID(patientID)).
		Order(entperson.ByID(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list known people: %w", err)
	}
	return rows, nil
}

func (s *peopleService) Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.KnownPerson, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Relation = strings.TrimSpace(req.Relation)

	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.Relation == "" {
		return nil, ErrRelationRequired
	}
	if len(req.PhotoBody) == 0 {
		return nil, ErrPhotoRequired
	}

	var created *repo.KnownPerson
	_, _, err := s.uploader.Put(ctx, storagePrefix, patientID, req.PhotoName, req.PhotoBody, req.PhotoMime,
		func(url, key string) error {
			p, err := s.db.KnownPerson.Create().
				SetPatientID(patientID).
				SetName(req.Name).
				SetRelation(req.Relation).
				SetNillableNotes(req.Notes).
				SetPhotoURL(url).
				SetPhotoKey(key).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create known person: %w", err)
			}
			created = p
			return nil
		})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *peopleService) Update(ctx context.Context, patientID, personID uuid.UUID, req UpdateRequest) (*repo.KnownPerson, error) {
	p, err := s.get(ctx, patientID, personID)
	if err != nil {
		return nil, err
	}

	u := s.db.KnownPerson.UpdateOne(p)
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		u = u.SetName(name)
	}
	if req.Relation != nil {
		rel := strings.TrimSpace(*req.Relation)
		if rel == "" {
			return nil, ErrRelationRequired
		}
		u = u.SetRelation(rel)
	}
	if req.Notes != nil {
		u = u.SetNotes(*req.Notes)
	}

	p, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update known person: %w", err)
	}
	return p, nil
}

func (s *peopleService) Delete(ctx context.Context, patientID, personID uuid.UUID) error {
	p, err := s.get(ctx, patientID, personID)
	if err != nil {
		return err
	}

	if err := s.db.KnownPerson.DeleteOne(p).Exec(ctx); err != nil {
		return fmt.Errorf("delete known person: %w", err)
	}

	// Photo cleanup is best-effort; the row is already gone.
	if err := s.store.Delete(ctx, p.PhotoKey); err != nil {
		slog.Warn("failed to delete known person photo", "key", p.PhotoKey, "error", err)
	}
	return nil
}

func (s *peopleService) get(ctx context.Context, patientID, personID uuid.UUID) (*repo.KnownPerson, error) {
	p, err := s.db.KnownPerson.Query().
		Where(entperson.ID(personID), entperson.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get known person: %w", err)
	}
	return p, nil
}
