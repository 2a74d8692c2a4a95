package patient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/sumit1004/neurolink_backend/internal/repo"
	entpatient "github.com/sumit1004/neurolink_backend/internal/repo/patient"
	"github.com/sumit1004/neurolink_backend/internal/schema"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SaveRequest struct {
	DisplayName      string
	DateOfBirth      time.Time
	Address          *string
	PhotoURL         *string
	ConditionNotes   *string
	EmergencyContact *schema.EmergencyContact
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Service manages the caregiver's single patient profile. An account may
// accumulate several rows historically; the oldest one is the profile and
// everything else is ignored.
type Service interface {
	// Current returns the account's patient profile, or ErrNotConfigured
	// when the account has none yet.
	Current(ctx context.Context, userID uuid.UUID) (*repo.Patient, error)

	// Save creates the profile when absent and updates it in place when
	// present.
	Save(ctx context.Context, userID uuid.UUID, req SaveRequest) (*repo.Patient, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &patientService{db: db}
}

func (s *patientService) Current(ctx context.Context, userID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.UserID(userID)).
		Order(entpatient.ByID(sql.OrderAsc())).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotConfigured
		}
		return nil, fmt.Errorf("query patient: %w", err)
	}
	return p, nil
}

func (s *patientService) Save(ctx context.Context, userID uuid.UUID, req SaveRequest) (*repo.Patient, error) {
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if req.DisplayName == "" {
		return nil, ErrNameRequired
	}
	if req.DateOfBirth.IsZero() {
		return nil, ErrDOBRequired
	}

	existing, err := s.Current(ctx, userID)
	if err != nil && err != ErrNotConfigured {
		return nil, err
	}

	if existing == nil {
		c := s.db.Patient.Create().
			SetUserID(userID).
			SetDisplayName(req.DisplayName).
			SetDateOfBirth(req.DateOfBirth).
			SetNillableAddress(req.Address).
			SetNillablePhotoURL(req.PhotoURL).
			SetNillableConditionNotes(req.ConditionNotes)
		if req.EmergencyContact != nil {
			c = c.SetEmergencyContact(req.EmergencyContact)
		}
		p, err := c.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create patient: %w", err)
		}
		return p, nil
	}

	u := s.db.Patient.UpdateOne(existing).
		SetDisplayName(req.DisplayName).
		SetDateOfBirth(req.DateOfBirth).
		SetNillableAddress(req.Address).
		SetNillablePhotoURL(req.PhotoURL).
		SetNillableConditionNotes(req.ConditionNotes)
	if req.EmergencyContact != nil {
		u = u.SetEmergencyContact(req.EmergencyContact)
	}
	p, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return p, nil
}
