package alert

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/sumit1004/neurolink_backend/internal/repo"
	entalert "github.com/sumit1004/neurolink_backend/internal/repo/alert"
	"github.com/sumit1004/neurolink_backend/internal/schema"
)

// SubjectCreated is published with the alert id after every ingest.
const SubjectCreated = "neurolink.alert.created"

// TimelineLimit caps the dashboard alert timeline.
const TimelineLimit = 20

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type IngestRequest struct {
	Type    string
	Message string
	Lat     float64
	Lon     float64
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Timeline returns the latest alerts, newest first, capped at
	// TimelineLimit.
	Timeline(ctx context.Context, patientID uuid.UUID) ([]*repo.Alert, error)
	Ingest(ctx context.Context, patientID uuid.UUID, req IngestRequest) (*repo.Alert, error)
	GetByID(ctx context.Context, alertID uuid.UUID) (*repo.Alert, error)

	// WeeklyUnknownCount counts unknown-person alerts in the trailing seven
	// days, for the dashboard stats strip.
	WeeklyUnknownCount(ctx context.Context, patientID uuid.UUID) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

// publisher is the slice of the NATS connection the service uses.
type publisher interface {
	Publish(subj string, data []byte) error
}

type alertService struct {
	db  *repo.Client
	nc  publisher
	log *slog.Logger
}

func New(db *repo.Client, nc *nats.Conn) Service {
	s := &alertService{db: db, log: slog.Default()}
	if nc != nil {
		s.nc = nc
	}
	return s
}

// publishCreated announces a new alert id for the realtime workers. Failures
// are logged, never surfaced; the alert row is already committed.
func (s *alertService) publishCreated(id uuid.UUID) {
	if s.nc == nil {
		return
	}
	if err := s.nc.Publish(SubjectCreated, []byte(id.String())); err != nil {
		s.log.Warn("alert publish failed, realtime listeners will miss it", "alert_id", id, "err", err)
	}
}

func (s *alertService) Timeline(ctx context.Context, patientID uuid.UUID) ([]*repo.Alert, error) {
	rows, err := s.db.Alert.Query().
		Where(entalert.PatientID(patientID)).
		Order(entalert.ByCreatedAt(sql.OrderDesc())).
		Limit(TimelineLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("alert timeline: %w", err)
	}
	return rows, nil
}

func (s *alertService) Ingest(ctx context.Context, patientID uuid.UUID, req IngestRequest) (*repo.Alert, error) {
	typ := entalert.Type(req.Type)
	if err := entalert.TypeValidator(typ); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, req.Type)
	}

	a, err := s.db.Alert.Create().
		SetPatientID(patientID).
		SetType(typ).
		SetPayload(&schema.AlertPayload{
			Message: req.Message,
			Lat:     req.Lat,
			Lon:     req.Lon,
		}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("ingest alert: %w", err)
	}

	s.publishCreated(a.ID)

	return a, nil
}

func (s *alertService) GetByID(ctx context.Context, alertID uuid.UUID) (*repo.Alert, error) {
	a, err := s.db.Alert.Get(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return a, nil
}

func (s *alertService) WeeklyUnknownCount(ctx context.Context, patientID uuid.UUID) (int, error) {
	since := time.Now().AddDate(0, 0, -7)

	n, err := s.db.Alert.Query().
		Where(
			entalert.PatientID(patientID),
			entalert.TypeEQ(entalert.TypeUnknownPerson),
			entalert.CreatedAtGTE(since),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count weekly alerts: %w", err)
	}
	return n, nil
}
