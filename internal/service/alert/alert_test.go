package alert

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
)

// fakePublisher records publishes so the fan-out contract can be asserted.
type fakePublisher struct {
	err error

	subjects []string
	payloads [][]byte
}

func (f *fakePublisher) Publish(subj string, data []byte) error {
	f.subjects = append(f.subjects, subj)
	f.payloads = append(f.payloads, data)
	return f.err
}

// captureHandler collects records so tests can assert on emitted logs.
type captureHandler struct {
	records []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r)
	return nil
}
func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

func TestPublishCreatedSendsIDOnSubject(t *testing.T) {
	pub := &fakePublisher{}
	s := &alertService{nc: pub, log: slog.Default()}

	id := uuid.Must(uuid.NewV7())
	s.publishCreated(id)

	if len(pub.subjects) != 1 {
		t.Fatalf("publishes = %d, want 1", len(pub.subjects))
	}
	if pub.subjects[0] != SubjectCreated {
		t.Errorf("subject = %q, want %q", pub.subjects[0], SubjectCreated)
	}
	if got := string(pub.payloads[0]); got != id.String() {
		t.Errorf("payload = %q, want %q", got, id.String())
	}
}

func TestPublishCreatedLogsWarnOnError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("nats: connection closed")}
	h := &captureHandler{}
	s := &alertService{nc: pub, log: slog.New(h)}

	s.publishCreated(uuid.Must(uuid.NewV7()))

	if len(h.records) != 1 {
		t.Fatalf("log records = %d, want 1", len(h.records))
	}
	if h.records[0].Level != slog.LevelWarn {
		t.Errorf("level = %v, want %v", h.records[0].Level, slog.LevelWarn)
	}
}

func TestPublishCreatedNoopsWithoutConnection(t *testing.T) {
	h := &captureHandler{}
	s := &alertService{log: slog.New(h)}

	s.publishCreated(uuid.Must(uuid.NewV7()))

	if len(h.records) != 0 {
		t.Errorf("log records = %d, want 0", len(h.records))
	}
}
