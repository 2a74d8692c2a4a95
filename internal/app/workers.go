package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/sumit1004/neurolink_backend/internal/realtime"
	"github.com/sumit1004/neurolink_backend/internal/repo"
	entalert "github.com/sumit1004/neurolink_backend/internal/repo/alert"
	entping "github.com/sumit1004/neurolink_backend/internal/repo/locationping"
	entpatient "github.com/sumit1004/neurolink_backend/internal/repo/patient"
	entuser "github.com/sumit1004/neurolink_backend/internal/repo/user"
	"github.com/sumit1004/neurolink_backend/internal/service/alert"
	"github.com/sumit1004/neurolink_backend/internal/service/location"
	"github.com/sumit1004/neurolink_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc    fx.Lifecycle
	NC    *nats.Conn
	DB    *repo.Client
	Hub   *realtime.Hub
	Email *email.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startAlertWorker(p.NC, p.DB, p.Hub, p.Email)
			startLocationWorker(p.NC, p.DB, p.Hub)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// caregiverFor resolves the patient row and its owning user for a patient id.
func caregiverFor(ctx context.Context, db *repo.Client, patientID uuid.UUID) (*repo.Patient, *repo.User, error) {
	pat, err := db.Patient.Query().
		Where(entpatient.ID(patientID)).
		Only(ctx)
	if err != nil {
		return nil, nil, err
	}
	usr, err := db.User.Query().
		Where(entuser.ID(pat.UserID)).
		Only(ctx)
	if err != nil {
		return nil, nil, err
	}
	return pat, usr, nil
}

// ---------------------------------------------------------------------------
// alert_worker
// ---------------------------------------------------------------------------

func startAlertWorker(nc *nats.Conn, db *repo.Client, hub *realtime.Hub, mail *email.Client) {
	_, err := nc.Subscribe(alert.SubjectCreated, func(msg *nats.Msg) {
		idStr := strings.TrimSpace(string(msg.Data))
		id, err := uuid.Parse(idStr)
		if err != nil {
			return
		}

		ctx := context.Background()

		a, err := db.Alert.Query().
			Where(entalert.ID(id)).
			Only(ctx)
		if err != nil {
			slog.Warn("alert_worker: alert not found", "id", idStr, "err", err)
			return
		}

		pat, usr, err := caregiverFor(ctx, db, a.PatientID)
		if err != nil {
			slog.Warn("alert_worker: caregiver lookup failed", "patient_id", a.PatientID, "err", err)
			return
		}

		hub.Broadcast(usr.ID, realtime.Event{Type: realtime.EventAlert, Data: a})

		text := ""
		if a.Payload != nil {
			text = a.Payload.Message
		}
		m := email.BuildAlertEmail(email.AlertEmailData{
			Email:       usr.Email,
			PatientName: pat.DisplayName,
			AlertType:   string(a.Type),
			AlertText:   text,
			OccurredAt:  a.CreatedAt.Format(time.RFC1123),
		})
		if err := mail.Send(ctx, m); err != nil {
			slog.Warn("alert_worker: notification email failed", "email", usr.Email, "err", err)
		}
	})
	if err != nil {
		slog.Error("alert_worker: subscribe failed", "err", err)
	}

	slog.Info("alert_worker: started")
}

// ---------------------------------------------------------------------------
// location_worker
// ---------------------------------------------------------------------------

func startLocationWorker(nc *nats.Conn, db *repo.Client, hub *realtime.Hub) {
	_, err := nc.Subscribe(location.SubjectCreated, func(msg *nats.Msg) {
		idStr := strings.TrimSpace(string(msg.Data))
		id, err := uuid.Parse(idStr)
		if err != nil {
			return
		}

		ctx := context.Background()

		ping, err := db.LocationPing.Query().
			Where(entping.ID(id)).
			Only(ctx)
		if err != nil {
			slog.Warn("location_worker: ping not found", "id", idStr, "err", err)
			return
		}

		_, usr, err := caregiverFor(ctx, db, ping.PatientID)
		if err != nil {
			slog.Warn("location_worker: caregiver lookup failed", "patient_id", ping.PatientID, "err", err)
			return
		}

		hub.Broadcast(usr.ID, realtime.Event{Type: realtime.EventLocation, Data: ping})
	})
	if err != nil {
		slog.Error("location_worker: subscribe failed", "err", err)
	}

	slog.Info("location_worker: started")
}
