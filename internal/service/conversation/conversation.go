package conversation

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/sumit1004/neurolink_backend/internal/repo"
	entconv "github.com/sumit1004/neurolink_backend/internal/repo/conversation"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// IngestRequest is written by the companion device, not the dashboard.
type IngestRequest struct {
	PersonName string
	Summary    *string
	Transcript *string
	AudioURL   *string
	OccurredAt *time.Time
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Service exposes the device-captured conversation log. The dashboard only
// reads; rows arrive through Ingest.
type Service interface {
	List(ctx context.Context, patientID uuid.UUID, limit int) ([]*repo.Conversation, error)
	GetByID(ctx context.Context, patientID, convID uuid.UUID) (*repo.Conversation, error)
	Ingest(ctx context.Context, patientID uuid.UUID, req IngestRequest) (*repo.Conversation, error)

	// CountToday returns the number of conversations recorded since local
	// midnight, for the dashboard stats strip.
	CountToday(ctx context.Context, patientID uuid.UUID) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type conversationService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &conversationService{db: db}
}

func (s *conversationService) List(ctx context.Context, patientID uuid.UUID, limit int) ([]*repo.Conversation, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}

	rows, err := s.db.Conversation.Query().
		Where(entconv.PatientID(patientID)).
		Order(entconv.ByOccurredAt(sql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return rows, nil
}

func (s *conversationService) GetByID(ctx context.Context, patientID, convID uuid.UUID) (*repo.Conversation, error) {
	c, err := s.db.Conversation.Query().
		Where(entconv.ID(convID), entconv.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return c, nil
}

func (s *conversationService) Ingest(ctx context.Context, patientID uuid.UUID, req IngestRequest) (*repo.Conversation, error) {
	c := s.db.Conversation.Create().
		SetPatientID(patientID).
		SetPersonName(req.PersonName).
		SetNillableSummary(req.Summary).
		SetNillableTranscript(req.Transcript).
		SetNillableAudioURL(req.AudioURL)
	if req.OccurredAt != nil {
		c = c.SetOccurredAt(*req.OccurredAt)
	}

	conv, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("ingest conversation: %w", err)
	}
	return conv, nil
}

func (s *conversationService) CountToday(ctx context.Context, patientID uuid.UUID) (int, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	n, err := s.db.Conversation.Query().
		Where(
			entconv.PatientID(patientID),
			entconv.OccurredAtGTE(midnight),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count conversations: %w", err)
	}
	return n, nil
}
