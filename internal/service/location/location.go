package location

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/sumit1004/neurolink_backend/internal/repo"
	entping "github.com/sumit1004/neurolink_backend/internal/repo/locationping"
)

// SubjectCreated is published with the ping id after every ingest.
const SubjectCreated = "neurolink.location.created"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type IngestRequest struct {
	Lat        float64
	Lon        float64
	Accuracy   *float64
	RecordedAt *time.Time
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Latest returns the most recent ping, the patient's "current location".
	Latest(ctx context.Context, patientID uuid.UUID) (*repo.LocationPing, error)
	History(ctx context.Context, patientID uuid.UUID, limit int) ([]*repo.LocationPing, error)
	Ingest(ctx context.Context, patientID uuid.UUID, req IngestRequest) (*repo.LocationPing, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

// publisher is the slice of the NATS connection the service uses.
type publisher interface {
	Publish(subj string, data []byte) error
}

type locationService struct {
	db  *repo.Client
	nc  publisher
	log *slog.Logger
}

func New(db *repo.Client, nc *nats.Conn) Service {
	s := &locationService{db: db, log: slog.Default()}
	if nc != nil {
		s.nc = nc
	}
	return s
}

// publishCreated announces a new ping id for the realtime workers. Failures
// are logged, never surfaced; the ping row is already committed.
func (s *locationService) publishCreated(id uuid.UUID) {
	if s.nc == nil {
		return
	}
	if err := s.nc.Publish(SubjectCreated, []byte(id.String())); err != nil {
		s.log.Warn("location publish failed, realtime listeners will miss it", "ping_id", id, "err", err)
	}
}

func (s *locationService) Latest(ctx context.Context, patientID uuid.UUID) (*repo.LocationPing, error) {
	p, err := s.db.LocationPing.Query().
		Where(entping.PatientID(patientID)).
		Order(entping.ByRecordedAt(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNoLocation
		}
		return nil, fmt.Errorf("latest location: %w", err)
	}
	return p, nil
}

func (s *locationService) History(ctx context.Context, patientID uuid.UUID, limit int) ([]*repo.LocationPing, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}

	rows, err := s.db.LocationPing.Query().
		Where(entping.PatientID(patientID)).
		Order(entping.ByRecordedAt(sql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("location history: %w", err)
	}
	return rows, nil
}

func (s *locationService) Ingest(ctx context.Context, patientID uuid.UUID, req IngestRequest) (*repo.LocationPing, error) {
	if req.Lat < -90 || req.Lat > 90 || req.Lon < -180 || req.Lon > 180 {
		return nil, ErrBadCoords
	}

	c := s.db.LocationPing.Create().
		SetPatientID(patientID).
		SetLat(req.Lat).
		SetLon(req.Lon).
		SetNillableAccuracy(req.Accuracy)
	if req.RecordedAt != nil {
		c = c.SetRecordedAt(*req.RecordedAt)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("ingest location: %w", err)
	}

	s.publishCreated(p.ID)

	return p, nil
}
