package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/sumit1004/neurolink_backend/config"
	"github.com/sumit1004/neurolink_backend/internal/repo"
	"github.com/sumit1004/neurolink_backend/internal/service/alert"
	"github.com/sumit1004/neurolink_backend/internal/service/analytics"
	"github.com/sumit1004/neurolink_backend/internal/service/auth"
	"github.com/sumit1004/neurolink_backend/internal/service/conversation"
	"github.com/sumit1004/neurolink_backend/internal/service/doctor"
	"github.com/sumit1004/neurolink_backend/internal/service/location"
	"github.com/sumit1004/neurolink_backend/internal/service/patient"
	"github.com/sumit1004/neurolink_backend/internal/service/people"
	"github.com/sumit1004/neurolink_backend/internal/service/record"
	"github.com/sumit1004/neurolink_backend/internal/service/routine"
	"github.com/sumit1004/neurolink_backend/pkg/email"
	pasetotoken "github.com/sumit1004/neurolink_backend/pkg/paseto"
	s3pkg "github.com/sumit1004/neurolink_backend/pkg/s3"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvidePatientService,
		ProvideRoutineService,
		ProvidePeopleService,
		ProvideDoctorService,
		ProvideRecordService,
		ProvideConversationService,
		ProvideLocationService,
		ProvideAlertService,
		ProvideAnalyticsService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	mail *email.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, mail, paseto, cfg)
}

func ProvidePatientService(db *repo.Client) patient.Service {
	return patient.New(db)
}

func ProvideRoutineService(db *repo.Client) routine.Service {
	return routine.New(db)
}

func ProvidePeopleService(db *repo.Client, s3 *s3pkg.Client) people.Service {
	return people.New(db, s3)
}

func ProvideDoctorService(db *repo.Client) doctor.Service {
	return doctor.New(db)
}

func ProvideRecordService(db *repo.Client, s3 *s3pkg.Client) record.Service {
	return record.New(db, s3)
}

func ProvideConversationService(db *repo.Client) conversation.Service {
	return conversation.New(db)
}

func ProvideLocationService(db *repo.Client, nc *nats.Conn) location.Service {
	return location.New(db, nc)
}

func ProvideAlertService(db *repo.Client, nc *nats.Conn) alert.Service {
	return alert.New(db, nc)
}

func ProvideAnalyticsService(
	rdb *redis.Client,
	cfg *config.Config,
	routines routine.Service,
	alerts alert.Service,
	conversations conversation.Service,
) analytics.Service {
	return analytics.New(analytics.NewRedisKV(rdb), cfg.Analytics.KeyPrefix, routines, alerts, conversations)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
