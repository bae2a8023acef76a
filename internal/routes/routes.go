package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/auth"
	"github.com/BruksfildServices01/barbershop-api/internal/cache"
	"github.com/BruksfildServices01/barbershop-api/internal/config"
	"github.com/BruksfildServices01/barbershop-api/internal/docs"
	"github.com/BruksfildServices01/barbershop-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barbershop-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-api/internal/middleware"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/payments"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
	"github.com/BruksfildServices01/barbershop-api/internal/timezone"
	ucAccount "github.com/BruksfildServices01/barbershop-api/internal/usecase/account"
	ucAppointment "github.com/BruksfildServices01/barbershop-api/internal/usecase/appointment"
	ucCalendar "github.com/BruksfildServices01/barbershop-api/internal/usecase/calendar"
	ucCatalog "github.com/BruksfildServices01/barbershop-api/internal/usecase/catalog"
	ucPayment "github.com/BruksfildServices01/barbershop-api/internal/usecase/payment"
	ucProfile "github.com/BruksfildServices01/barbershop-api/internal/usecase/profile"
	ucRating "github.com/BruksfildServices01/barbershop-api/internal/usecase/rating"
	ucSchedule "github.com/BruksfildServices01/barbershop-api/internal/usecase/schedule"
	"github.com/BruksfildServices01/barbershop-api/internal/web"
)

const apiVersion = "1.0"

// Deps are the process-wide singletons the router is built from.
type Deps struct {
	DB          *gorm.DB
	Config      *config.Config
	Logger      *slog.Logger
	Cache       cache.Client
	Tokens      *auth.Tokens
	Audit       *audit.Dispatcher
	Providers   payments.Registry
	Metrics     *prometheus.Registry
	AuthLimiter *middleware.RateLimiter
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logging(d.Logger),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		gin.Recovery(),
	)

	// ======================================================
	// INFRA
	// ======================================================
	loc := timezone.Location(cfg.Timezone)
	dir := infraRepo.NewDirectory(d.DB)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	accountRepo := infraRepo.NewAccountGormRepository(d.DB)

	opts := handlers.QueryOptions{
		Location:        loc,
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
	}

	// ======================================================
	// USE CASES
	// ======================================================
	accounts := ucAccount.New(accountRepo, d.Tokens, d.Audit, ucAccount.Options{
		VerifyEmailDomain: cfg.VerifyEmailDomain,
	})
	profiles := ucProfile.New(infraRepo.NewGormStore[models.Profile](d.DB, query.Profiles), dir, d.Audit)
	catalog := ucCatalog.New(infraRepo.NewGormStore[models.Service](d.DB, query.Services), d.Cache, cfg.CacheTTL, d.Audit)
	schedules := ucSchedule.New(infraRepo.NewGormStore[models.Schedule](d.DB, query.Schedules), dir, d.Audit)
	appointments := ucAppointment.New(appointmentRepo, d.Audit, loc)
	ratings := ucRating.New(infraRepo.NewGormStore[models.Rating](d.DB, query.Ratings), dir, d.Audit)
	paymentsUC := ucPayment.New(infraRepo.NewGormStore[models.Payment](d.DB, query.Payments), dir, d.Providers, d.Audit)
	events := ucCalendar.New(infraRepo.NewGormStore[models.CalendarEvent](d.DB, query.CalendarEvents), dir, d.Audit)
	auditLogs := infraRepo.NewGormStore[models.AuditLog](d.DB, query.AuditLogs)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(accounts)
	appointmentHandler := handlers.NewAppointmentHandler(appointments, opts)
	paymentHandler := handlers.NewPaymentHandler(paymentsUC, opts)
	accountHandler := handlers.NewAccountHandler(accounts, opts)
	auditLogsHandler := handlers.NewReadHandler[models.AuditLog](auditLogs, query.AuditLogs, opts)

	requireAuth := middleware.AuthMiddleware(d.Tokens)

	// ======================================================
	// OPS + DOCS + WEB
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Metrics, promhttp.HandlerOpts{})))
	}

	doc := docs.NewDocument(apiVersion, DocEntries())
	docs.Register(doc)
	r.GET("/openapi.json", doc.Handler())
	r.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))

	r.SetHTMLTemplate(web.Templates())
	r.GET("/", web.NewLandingHandler(query.All).Index)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		if d.AuthLimiter != nil {
			authAPI.Use(d.AuthLimiter.Middleware())
		}
		authAPI.POST("/register", authHandler.Register)
		authAPI.POST("/login", authHandler.Login)

		api.GET("/me", requireAuth, authHandler.Me)
		api.PATCH("/me", requireAuth, authHandler.UpdateMe)

		// ------------------------------
		// RESOURCES
		// ------------------------------
		api.GET("/"+query.Accounts.Path, accountHandler.List)
		api.GET("/"+query.Accounts.Path+"/:id", accountHandler.Get)

		handlers.NewProfileHandler(profiles, opts).Mount(api, query.Profiles.Path, requireAuth)
		handlers.NewServiceHandler(catalog, opts).Mount(api, query.Services.Path, requireAuth)
		handlers.NewScheduleHandler(schedules, opts).Mount(api, query.Schedules.Path, requireAuth)
		appointmentHandler.Mount(api, query.Appointments.Path, requireAuth)
		handlers.NewRatingHandler(ratings, opts).Mount(api, query.Ratings.Path, requireAuth)
		paymentHandler.Mount(api, query.Payments.Path, requireAuth)
		handlers.NewCalendarEventHandler(events, opts).Mount(api, query.CalendarEvents.Path, requireAuth)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments/:id/confirm", requireAuth, appointmentHandler.Confirm)
		api.POST("/appointments/:id/cancel", requireAuth, appointmentHandler.Cancel)
		api.POST("/appointments/:id/complete", requireAuth, appointmentHandler.Complete)

		api.GET("/barbers/:id/availability", appointmentHandler.Availability)
		api.GET("/barbers/:id/agenda", appointmentHandler.Agenda)

		// ------------------------------
		// PAYMENTS + AUDIT
		// ------------------------------
		api.POST("/payments/:id/sync", requireAuth, paymentHandler.Sync)

		api.GET("/audit-logs", requireAuth, auditLogsHandler.List)
		api.GET("/audit-logs/:id", requireAuth, auditLogsHandler.Get)
	}
}

// DocEntries mirrors the routes registered above.
func DocEntries() []docs.Entry {
	entries := make([]docs.Entry, 0, len(query.All)+1)
	for _, res := range query.All {
		entries = append(entries, docs.Entry{Resource: res, ReadOnly: res == query.Accounts})
	}
	return append(entries, docs.Entry{Resource: query.AuditLogs, ReadOnly: true, Protected: true})
}
