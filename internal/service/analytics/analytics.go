package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sumit1004/neurolink_backend/internal/repo"
	alertsvc "github.com/sumit1004/neurolink_backend/internal/service/alert"
	conversationsvc "github.com/sumit1004/neurolink_backend/internal/service/conversation"
	routinesvc "github.com/sumit1004/neurolink_backend/internal/service/routine"
)

// KV is the analytics blob store. The import overwrites a single value per
// patient; there is no partial update.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// redisKV backs KV with a Redis string key.
type redisKV struct {
	rdb *redis.Client
}

func NewRedisKV(rdb *redis.Client) KV {
	return &redisKV{rdb: rdb}
}

func (r *redisKV) Get(ctx context.Context, key string) (string, error) {
	v, err := r.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNoData
	}
	if err != nil {
		return "", fmt.Errorf("redis get: %w", err)
	}
	return v, nil
}

func (r *redisKV) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Summary is the dashboard stats strip plus the alert timeline.
type Summary struct {
	WeeklyUnknownAlerts  int           `json:"weekly_unknown_alerts"`
	RoutineCompletionPct int           `json:"routine_completion_pct"`
	OpenTasks            int           `json:"open_tasks"`
	ConversationsToday   int           `json:"conversations_today"`
	Timeline             []*repo.Alert `json:"timeline"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Import validates and stores an uploaded JSON export, replacing any
	// previous data for the patient.
	Import(ctx context.Context, patientID uuid.UUID, filename string, body []byte) error

	// DataCounts returns per-category item counts for the imported data.
	// Without an import every category is zero.
	DataCounts(ctx context.Context, patientID uuid.UUID) (map[string]int, error)

	// Raw returns the imported blob as decoded JSON, or ErrNoData.
	Raw(ctx context.Context, patientID uuid.UUID) (any, error)

	Summary(ctx context.Context, patientID uuid.UUID) (*Summary, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type analyticsService struct {
	kv        KV
	keyPrefix string

	routines      routinesvc.Service
	alerts        alertsvc.Service
	conversations conversationsvc.Service
}

func New(
	kv KV,
	keyPrefix string,
	routines routinesvc.Service,
	alerts alertsvc.Service,
	conversations conversationsvc.Service,
) Service {
	if keyPrefix == "" {
		keyPrefix = "patients:"
	}
	return &analyticsService{
		kv:            kv,
		keyPrefix:     keyPrefix,
		routines:      routines,
		alerts:        alerts,
		conversations: conversations,
	}
}

func (s *analyticsService) key(patientID uuid.UUID) string {
	return fmt.Sprintf("%s%s:analytics", s.keyPrefix, patientID)
}

func (s *analyticsService) Import(ctx context.Context, patientID uuid.UUID, filename string, body []byte) error {
	if !strings.HasSuffix(strings.ToLower(strings.TrimSpace(filename)), ".json") {
		return ErrNotJSONFile
	}

	// Parse before touching storage so a bad file leaves existing data alone.
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return ErrInvalidJSON
	}

	// Re-encode so the stored blob is canonical JSON regardless of input
	// whitespace.
	canonical, err := json.Marshal(decoded)
	if err != nil {
		return fmt.Errorf("encode analytics data: %w", err)
	}

	return s.kv.Set(ctx, s.key(patientID), string(canonical))
}

func (s *analyticsService) Raw(ctx context.Context, patientID uuid.UUID) (any, error) {
	blob, err := s.kv.Get(ctx, s.key(patientID))
	if err != nil {
		return nil, err
	}

	var decoded any
	if err := json.Unmarshal([]byte(blob), &decoded); err != nil {
		return nil, fmt.Errorf("decode stored analytics data: %w", err)
	}
	return decoded, nil
}

func (s *analyticsService) DataCounts(ctx context.Context, patientID uuid.UUID) (map[string]int, error) {
	decoded, err := s.Raw(ctx, patientID)
	if err == ErrNoData {
		return CountCategories(nil), nil
	}
	if err != nil {
		return nil, err
	}
	return CountCategories(decoded), nil
}

func (s *analyticsService) Summary(ctx context.Context, patientID uuid.UUID) (*Summary, error) {
	weekly, err := s.alerts.WeeklyUnknownCount(ctx, patientID)
	if err != nil {
		return nil, err
	}

	completed, total, err := s.routines.CompletionStats(ctx, patientID)
	if err != nil {
		return nil, err
	}
	pct := 0
	if total > 0 {
		pct = completed * 100 / total
	}

	today, err := s.conversations.CountToday(ctx, patientID)
	if err != nil {
		return nil, err
	}

	timeline, err := s.alerts.Timeline(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		WeeklyUnknownAlerts:  weekly,
		RoutineCompletionPct: pct,
		OpenTasks:            total - completed,
		ConversationsToday:   today,
		Timeline:             timeline,
	}, nil
}
