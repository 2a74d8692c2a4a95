package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/sumit1004/neurolink_backend/config"
	"github.com/sumit1004/neurolink_backend/internal/api/http/handler"
	"github.com/sumit1004/neurolink_backend/internal/api/http/middleware"
	"github.com/sumit1004/neurolink_backend/internal/realtime"
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
	pasetotoken "github.com/sumit1004/neurolink_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	DB              *repo.Client
	Hub             *realtime.Hub
	AuthSvc         auth.Service
	PatientSvc      patient.Service
	RoutineSvc      routine.Service
	PeopleSvc       people.Service
	DoctorSvc       doctor.Service
	RecordSvc       record.Service
	ConversationSvc conversation.Service
	LocationSvc     location.Service
	AlertSvc        alert.Service
	AnalyticsSvc    analytics.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & static fragments
	r.registerSystemRoutes(app)

	// 2. Initialize middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	patientCtx := middleware.PatientContext(r.p.PatientSvc)

	// 3. Initialize handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc, r.p.PatientSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	routineH := handler.NewRoutineHandler(r.p.RoutineSvc)
	peopleH := handler.NewPeopleHandler(r.p.PeopleSvc)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc)
	recordH := handler.NewRecordHandler(r.p.RecordSvc)
	conversationH := handler.NewConversationHandler(r.p.ConversationSvc)
	locationH := handler.NewLocationHandler(r.p.LocationSvc)
	alertH := handler.NewAlertHandler(r.p.AlertSvc)
	analyticsH := handler.NewAnalyticsHandler(r.p.AnalyticsSvc)
	eventsH := handler.NewEventsHandler(r.p.Hub)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerPatientRoutes(api, patientH, authRequired)
	r.registerRoutineRoutes(api, routineH, authRequired, patientCtx)
	r.registerPeopleRoutes(api, peopleH, authRequired, patientCtx)
	r.registerDoctorRoutes(api, doctorH, authRequired, patientCtx)
	r.registerRecordRoutes(api, recordH, authRequired, patientCtx)
	r.registerConversationRoutes(api, conversationH, authRequired, patientCtx)
	r.registerLocationRoutes(api, locationH, authRequired, patientCtx)
	r.registerAlertRoutes(api, alertH, authRequired, patientCtx)
	r.registerAnalyticsRoutes(api, analyticsH, authRequired, patientCtx)
	r.registerEventRoutes(api, eventsH, authRequired)
	r.registerDeviceRoutes(api, conversationH, locationH, alertH, authRequired, patientCtx)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if dir := r.p.Cfg.Server.StaticDir; dir != "" {
		app.Get("/partials/*", static.New(dir))
	}
}
