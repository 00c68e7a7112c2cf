package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"consultcare/config"
	"consultcare/internal/domain"
	"consultcare/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		h.initAvailabilityRoutes(api)
		h.initWeeklyScheduleRoutes(api)
		h.initOverrideRoutes(api)
	}

	router.GET("/health", h.health)
}

func (h *Handler) initAvailabilityRoutes(api *gin.RouterGroup) {
	consultants := api.Group("/consultants/:id")
	{
		consultants.GET("/availability", h.getAvailability)
		consultants.GET("/availability/range", h.getAvailabilityRange)
		consultants.GET("/slots", h.getAvailableSlots)
	}
}

func (h *Handler) initWeeklyScheduleRoutes(api *gin.RouterGroup) {
	weekly := api.Group("/weekly-schedules", h.authMiddleware(), h.roleMiddleware(domain.UserRoleStaff, domain.UserRoleAdmin))
	{
		weekly.GET("", h.getWeeklySchedules)
		weekly.POST("", h.createWeeklySchedule)
	}

	consultant := api.Group("/consultants/:id/weekly-schedule", h.authMiddleware())
	{
		consultant.GET("", h.getWeeklySchedule)
		consultant.PUT("", h.roleMiddleware(domain.UserRoleStaff, domain.UserRoleAdmin), h.updateWeeklySchedule)
		consultant.DELETE("", h.roleMiddleware(domain.UserRoleAdmin), h.deleteWeeklySchedule)
	}
}

func (h *Handler) initOverrideRoutes(api *gin.RouterGroup) {
	editors := []domain.UserRole{domain.UserRoleConsultant, domain.UserRoleStaff, domain.UserRoleAdmin}

	overrides := api.Group("/overrides", h.authMiddleware(), h.roleMiddleware(editors...))
	{
		overrides.POST("", h.createOverride)
		overrides.GET("/:id", h.getOverrideByID)
		overrides.PUT("/:id", h.updateOverride)
		overrides.DELETE("/:id", h.deleteOverride)
	}

	byConsultant := api.Group("/consultants/:id/overrides", h.authMiddleware(), h.roleMiddleware(editors...))
	{
		byConsultant.GET("", h.getConsultantOverrides)
		byConsultant.GET("/:date", h.getOverrideByDate)
		byConsultant.DELETE("/:date", h.deleteOverrideByDate)
	}
}

// @Summary Проверка работоспособности
// @Tags Служебное
// @Produce json
// @Success 200 {object} messageResponseType
// @Router /health [get]
func (h *Handler) health(c *gin.Context) {
	messageResponse(c, 200, h.config.App.Name+" "+h.config.App.Version)
}
