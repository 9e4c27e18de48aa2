package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/billing-tracker/internal/audit"
	"github.com/BruksfildServices01/billing-tracker/internal/cache"
	"github.com/BruksfildServices01/billing-tracker/internal/config"
	appdb "github.com/BruksfildServices01/billing-tracker/internal/db"
	"github.com/BruksfildServices01/billing-tracker/internal/handlers"
	infraRepo "github.com/BruksfildServices01/billing-tracker/internal/infra/repository"
	"github.com/BruksfildServices01/billing-tracker/internal/logger"
	"github.com/BruksfildServices01/billing-tracker/internal/middleware"
	"github.com/BruksfildServices01/billing-tracker/internal/timezone"
	ucMilestone "github.com/BruksfildServices01/billing-tracker/internal/usecase/milestone"
	ucTimesheet "github.com/BruksfildServices01/billing-tracker/internal/usecase/timesheet"
)

// Dependencies are built once by the caller and shared by every handler.
// Cache and Now default to a no-op cache and the configured time zone clock.
type Dependencies struct {
	DB           *gorm.DB
	Config       *config.Config
	Logger       *zap.Logger
	Cache        cache.SummaryCache
	Capabilities appdb.Capabilities
	Audit        *audit.Dispatcher
	Now          func() time.Time
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Cache == nil {
		deps.Cache = cache.Noop{}
	}

	tz := timezone.DefaultTimezone
	var origins []string
	if deps.Config != nil {
		tz = deps.Config.Timezone
		origins = deps.Config.CORSAllowedOrigins
	}
	loc := timezone.Location(tz)
	if deps.Now == nil {
		deps.Now = timezone.Clock(tz)
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(logger.Recovery(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(origins))

	// ======================================================
	// INFRA
	// ======================================================
	milestoneRepo := infraRepo.NewMilestoneGormRepository(deps.DB)
	timesheetRepo := infraRepo.NewTimesheetGormRepository(deps.DB, deps.Capabilities)

	// ======================================================
	// USE CASES (MILESTONES & PAYMENTS)
	// ======================================================
	recomputeStatusUC := ucMilestone.NewRecomputeStatus(
		milestoneRepo,
		deps.Audit,
		deps.Now,
	)

	createPaymentUC := ucMilestone.NewCreatePayment(
		milestoneRepo,
		recomputeStatusUC,
		deps.Audit,
		deps.Logger,
		deps.Now,
	)

	deletePaymentUC := ucMilestone.NewDeletePayment(
		milestoneRepo,
		recomputeStatusUC,
		deps.Audit,
		deps.Logger,
	)

	listOverdueUC := ucMilestone.NewListOverdue(
		milestoneRepo,
		deps.Now,
	)

	// ======================================================
	// USE CASES (TIMESHEET)
	// ======================================================
	listEntriesUC := ucTimesheet.NewListEntries(timesheetRepo)

	saveEntryUC := ucTimesheet.NewSaveEntry(
		timesheetRepo,
		deps.Cache,
		deps.Audit,
		deps.Logger,
	)

	summarizePeriodUC := ucTimesheet.NewSummarizePeriod(
		timesheetRepo,
		deps.Cache,
		deps.Logger,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Now)
	clientHandler := handlers.NewClientHandler(deps.DB, deps.Audit, deps.Cache, deps.Logger)
	projectTypeHandler := handlers.NewProjectTypeHandler(deps.DB, deps.Audit)
	projectHandler := handlers.NewProjectHandler(deps.DB, deps.Audit, deps.Cache, deps.Logger)
	milestoneHandler := handlers.NewMilestoneHandler(deps.DB, deps.Audit, loc)
	paymentHandler := handlers.NewPaymentHandler(deps.DB, createPaymentUC, deletePaymentUC, loc)
	assigneeHandler := handlers.NewAssigneeHandler(deps.DB, deps.Audit, deps.Cache, deps.Logger)
	timeEntryHandler := handlers.NewTimeEntryHandler(listEntriesUC, saveEntryUC, loc)
	summaryHandler := handlers.NewSummaryHandler(summarizePeriodUC, listOverdueUC, deps.Now, loc)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB, loc)

	// ======================================================
	// OPERATIONS
	// ======================================================
	r.GET("/health", healthHandler.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.GET("/clients/:id", clientHandler.Get)
		api.PUT("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)

		api.GET("/project-types", projectTypeHandler.List)
		api.POST("/project-types", projectTypeHandler.Create)
		api.PUT("/project-types/:id", projectTypeHandler.Update)
		api.DELETE("/project-types/:id", projectTypeHandler.Delete)

		api.GET("/projects", projectHandler.List)
		api.POST("/projects", projectHandler.Create)
		api.GET("/projects/:id", projectHandler.Get)
		api.PUT("/projects/:id", projectHandler.Update)
		api.DELETE("/projects/:id", projectHandler.Delete)

		api.GET("/milestones", milestoneHandler.List)
		api.POST("/milestones", milestoneHandler.Create)
		api.GET("/milestones/:id", milestoneHandler.Get)
		api.PUT("/milestones/:id", milestoneHandler.Update)
		api.DELETE("/milestones/:id", milestoneHandler.Delete)

		// ------------------------------
		// PAYMENTS (drive milestone status)
		// ------------------------------
		api.GET("/payments", paymentHandler.List)
		api.POST("/payments", paymentHandler.Create)
		api.DELETE("/payments/:id", paymentHandler.Delete)

		api.GET("/assignees", assigneeHandler.List)
		api.POST("/assignees", assigneeHandler.Create)
		api.PUT("/assignees/:id", assigneeHandler.Update)
		api.DELETE("/assignees/:id", assigneeHandler.Delete)

		api.GET("/time-entries", timeEntryHandler.List)
		api.POST("/time-entries", timeEntryHandler.Create)
		api.PUT("/time-entries/:id", timeEntryHandler.Update)
		api.DELETE("/time-entries/:id", timeEntryHandler.Delete)

		// ------------------------------
		// SUMMARIES
		// ------------------------------
		api.GET("/weekly-time", summaryHandler.Weekly)
		api.GET("/monthly-time", summaryHandler.Monthly)
		api.GET("/overdue", summaryHandler.Overdue)
		api.GET("/dashboard", summaryHandler.Dashboard)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
