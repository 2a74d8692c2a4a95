package doctor

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/sumit1004/neurolink_backend/internal/repo"
	entdoctor "github.com/sumit1004/neurolink_backend/internal/repo/doctorcontact"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name       string
	Speciality string
	Phone      string
	Email      *string
	Notes      *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, patientID uuid.UUID) ([]*repo.DoctorContact, error)
	Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.DoctorContact, error)
	Delete(ctx context.Context, patientID, doctorID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type doctorService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &doctorService{db: db}
}

func (s *doctorService) List(ctx context.Context, patientID uuid.UUID) ([]*repo.DoctorContact, error) {
	rows, err := s.db.DoctorContact.Query().
		Where(entdoctor.PatientID(patientID)).
		Order(entdoctor.ByName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctor contacts: %w", err)
	}
	return rows, nil
}

func (s *doctorService) Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.DoctorContact, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Speciality = strings.TrimSpace(req.Speciality)
	req.Phone = strings.TrimSpace(req.Phone)

	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.Speciality == "" {
		return nil, ErrSpecialityRequired
	}
	if req.Phone == "" {
		return nil, ErrPhoneRequired
	}

	d, err := s.db.DoctorContact.Create().
		SetPatientID(patientID).
		SetName(req.Name).
		SetSpeciality(req.Speciality).
		SetPhone(req.Phone).
		SetNillableEmail(req.Email).
		SetNillableNotes(req.Notes).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create doctor contact: %w", err)
	}
	return d, nil
}

func (s *doctorService) Delete(ctx context.Context, patientID, doctorID uuid.UUID) error {
	n, err := s.db.DoctorContact.Delete().
		Where(entdoctor.ID(doctorID), entdoctor.PatientID(patientID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete doctor contact: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
