package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"childcare-app-server/internal/config"
	"childcare-app-server/internal/handlers"
	"childcare-app-server/internal/middleware"
	"childcare-app-server/internal/repository"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, repos *repository.Repositories, cfg *config.Config) {
	childHandler := handlers.NewChildHandler(repos.Children, cfg.Location)
	prescriptionHandler := handlers.NewPrescriptionHandler(repos.Prescriptions, cfg.Location, cfg.RecentPrescriptionDays)
	reportHandler := handlers.NewReportHandler(repos.Reports)
	newsHandler := handlers.NewNewsHandler(repos.News)
	imageHandler := handlers.NewImageHandler(repos.Images, cfg.AppURL, cfg.MaxUploadBytes)
	vaccineHandler := handlers.NewVaccineHandler(repos.Vaccines, cfg.Location)
	recordHandler := handlers.NewRecordHandler(repos.Records, cfg.Location)

	childOwner := middleware.ChildOwner(repos.Children)
	prescriptionOwner := middleware.PrescriptionOwner(repos.Prescriptions)
	imageOwner := middleware.ImageOwner(repos.Images)
	recordOwner := middleware.RecordOwner(repos.Records)

	// Public routes (no authentication required)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
	router.GET("/image/:id", imageHandler.ServeImage)

	// Every /api route requires a bearer token for a known user.
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.CurrentUser(repos.Users))
	{
		childRoutes := api.Group("/child")
		{
			childRoutes.GET("", childHandler.ListChildren)
			childRoutes.GET("/:id", childOwner, childHandler.GetChild)
			childRoutes.GET("/:id/prescription", childOwner, prescriptionHandler.ListPrescriptions)
			childRoutes.POST("/:id/prescription", childOwner, prescriptionHandler.CreatePrescription)
			childRoutes.GET("/:id/prescription/recent", childOwner, prescriptionHandler.ListRecentPrescriptions)
			childRoutes.POST("/:id/record", childOwner, recordHandler.CreateRecord)
		}

		prescriptionRoutes := api.Group("/prescription/:id", prescriptionOwner)
		{
			prescriptionRoutes.GET("", prescriptionHandler.GetPrescription)
			prescriptionRoutes.PUT("", prescriptionHandler.UpdatePrescription)
			prescriptionRoutes.DELETE("", prescriptionHandler.DeletePrescription)
		}

		api.POST("/report", reportHandler.CreateReport)
		api.GET("/report", reportHandler.GetReports)

		api.GET("/record", childOwner, recordHandler.ListRecords)
		api.DELETE("/record/:id", recordOwner, recordHandler.DeleteRecord)

		api.GET("/news", newsHandler.ListNews)
		api.GET("/news/:id", newsHandler.GetNews)

		api.POST("/image/upload", imageHandler.UploadImage)
		api.DELETE("/image/:id", imageOwner, imageHandler.DeleteImage)

		vaccineRoutes := api.Group("/vaccine", childOwner)
		{
			vaccineRoutes.GET("/schedule", vaccineHandler.GetSchedule)
			vaccineRoutes.GET("/calendar", vaccineHandler.GetCalendar)
			vaccineRoutes.GET("/progress", vaccineHandler.GetProgress)
		}
	}
}
