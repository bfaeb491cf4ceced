package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/amenibouabdallah/JOBS-sub001/config"
	"github.com/amenibouabdallah/JOBS-sub001/internal/api/handler"
	"github.com/amenibouabdallah/JOBS-sub001/internal/api/middleware"
	"github.com/amenibouabdallah/JOBS-sub001/pkg/jwt"
	"github.com/amenibouabdallah/JOBS-sub001/pkg/redis"
)

// Setup builds the Gin engine with every route wired.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth module (no authentication required)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// authenticated routes
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// auth module (authenticated)
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.CurrentUser)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// JE module
			jes := authorized.Group("/jes")
			{
				jes.GET("", h.Je.List)
				jes.GET("/:id", h.Je.GetByID)
				jes.GET("/:id/places", h.Je.PlaceStats) // admin or own JE (handler check)
				jes.POST("", middleware.RoleAuth("admin"), h.Je.Create)
				jes.PUT("/:id", h.Je.Update) // admin or own JE (handler check)
				jes.DELETE("/:id", middleware.RoleAuth("admin"), h.Je.Delete)
			}

			// participant module
			participants := authorized.Group("/participants")
			{
				participants.GET("", h.Participant.List)
				participants.GET("/:id", h.Participant.GetByID)
				participants.POST("", h.Participant.Create)
				participants.PUT("/:id", h.Participant.Update)
				participants.PUT("/:id/payment", middleware.RoleAuth("admin"), h.Participant.UpdatePayment)
				participants.DELETE("/:id", middleware.RoleAuth("admin"), h.Participant.Delete)
				participants.POST("/:id/place", h.Participant.ReservePlace)

				// selection module (nested under the participant)
				participants.GET("/:id/selections", h.Selection.List)
				participants.POST("/:id/selections", h.Selection.Select)
				participants.DELETE("/:id/selections/:activityId", h.Selection.Deselect)
				participants.POST("/:id/selections/ensure-required", h.Selection.EnsureRequired)
			}

			// zone module
			zones := authorized.Group("/zones")
			{
				zones.GET("", h.Zone.List)
				zones.GET("/:id", h.Zone.GetByID)
				zones.POST("/generate", middleware.RoleAuth("admin"), h.Zone.Generate)
				zones.POST("/:id/reserve", h.Zone.Reserve) // admin or own JE (handler check)
				zones.PUT("/:id/assign", middleware.RoleAuth("admin"), h.Zone.AssignJe)
			}

			// activity module
			activities := authorized.Group("/activities")
			{
				activities.GET("", h.Activity.List)
				activities.GET("/:id", h.Activity.GetByID)
				activities.GET("/:id/correlations", h.Activity.ListCorrelations)
				activities.POST("", middleware.RoleAuth("admin"), h.Activity.Create)
				activities.PUT("/:id", middleware.RoleAuth("admin"), h.Activity.Update)
				activities.DELETE("/:id", middleware.RoleAuth("admin"), h.Activity.Delete)
			}

			// activity type module
			activityTypes := authorized.Group("/activity-types")
			{
				activityTypes.GET("", h.Activity.ListTypes)
				activityTypes.POST("", middleware.RoleAuth("admin"), h.Activity.CreateType)
				activityTypes.PUT("/:id", middleware.RoleAuth("admin"), h.Activity.UpdateType)
				activityTypes.DELETE("/:id", middleware.RoleAuth("admin"), h.Activity.DeleteType)
			}

			// correlation module
			correlations := authorized.Group("/correlations")
			{
				correlations.GET("", h.Activity.ListAllCorrelations)
				correlations.POST("", middleware.RoleAuth("admin"), h.Activity.AddCorrelation)
				correlations.DELETE("/:id", middleware.RoleAuth("admin"), h.Activity.RemoveCorrelation)
			}

			// salle module
			salles := authorized.Group("/salles")
			{
				salles.GET("", h.Salle.List)
				salles.GET("/:id", h.Salle.GetByID)
				salles.POST("", middleware.RoleAuth("admin"), h.Salle.Create)
				salles.PUT("/:id", middleware.RoleAuth("admin"), h.Salle.Update)
				salles.DELETE("/:id", middleware.RoleAuth("admin"), h.Salle.Delete)
			}

			// job offer module
			jobs := authorized.Group("/jobs")
			{
				jobs.GET("", h.Job.List)
				jobs.GET("/:id", h.Job.GetByID)
				jobs.POST("", middleware.RoleAuth("admin"), h.Job.Create)
				jobs.PUT("/:id", middleware.RoleAuth("admin"), h.Job.Update)
				jobs.DELETE("/:id", middleware.RoleAuth("admin"), h.Job.Delete)
			}

			// export module
			export := authorized.Group("/export")
			export.Use(middleware.RoleAuth("admin"))
			{
				export.GET("/placements.csv", h.Export.PlacementsCSV)
				export.GET("/placements.xlsx", h.Export.PlacementsXLSX)
				export.GET("/program.ics", h.Export.ProgramICS)
			}
		}
	}

	return r
}
