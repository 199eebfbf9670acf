package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/Murugadoss7/dental-app/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
}

func NewHandler(services *service.Services, logger *zap.Logger) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())
	router.Use(h.corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	api := router.Group("/api/v1")
	{
		settings := api.Group("/appointment-settings")
		{
			settings.POST("", h.createSettings)
			settings.GET("", h.getSettings)
			settings.PUT("", h.updateSettings)
		}

		doctors := api.Group("/doctors")
		{
			doctors.POST("", h.createDoctor)
			doctors.GET("", h.getDoctors)
			doctors.GET("/:id", h.getDoctorByID)
			doctors.PUT("/:id", h.updateDoctor)
			doctors.DELETE("/:id", h.deleteDoctor)
			doctors.GET("/:id/available-slots", h.getAvailableSlots)
		}

		patients := api.Group("/patients")
		{
			patients.POST("", h.createPatient)
			patients.GET("", h.getPatients)
			patients.GET("/:id", h.getPatientByID)
			patients.PUT("/:id", h.updatePatient)
			patients.DELETE("/:id", h.deletePatient)
		}

		appointments := api.Group("/appointments")
		{
			appointments.POST("", h.createAppointment)
			appointments.GET("", h.getAppointments)
			appointments.GET("/:id", h.getAppointmentByID)
			appointments.PUT("/:id", h.updateAppointment)
			appointments.POST("/:id/cancel", h.cancelAppointment)
			appointments.POST("/:id/reschedule", h.rescheduleAppointment)
		}

		treatments := api.Group("/treatments")
		{
			treatments.POST("", h.createTreatment)
			treatments.GET("/:id", h.getTreatmentByID)
			treatments.PUT("/:id", h.updateTreatment)
			treatments.POST("/:id/attachments", h.uploadTreatmentAttachment)
			treatments.GET("/:id/prescriptions", h.getTreatmentPrescriptions)
		}

		prescriptions := api.Group("/prescriptions")
		{
			prescriptions.POST("", h.createPrescription)
		}

		plans := api.Group("/treatment-plans")
		{
			plans.POST("", h.createTreatmentPlan)
			plans.PUT("/:id", h.updateTreatmentPlan)
		}

		patientRecords := api.Group("/patients/:id")
		{
			patientRecords.GET("/treatments", h.getPatientTreatments)
			patientRecords.GET("/treatment-plans", h.getPatientTreatmentPlans)
		}

		catalog := api.Group("/catalog")
		{
			catalog.POST("", h.createCatalogItem)
			catalog.GET("", h.getCatalogItems)
			catalog.GET("/common", h.getCommonCatalogItems)
			catalog.GET("/:id", h.getCatalogItemByID)
			catalog.PUT("/:id", h.updateCatalogItem)
			catalog.DELETE("/:id", h.deleteCatalogItem)
		}
	}
}
