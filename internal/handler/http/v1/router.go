package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	sessions := api.Group("/sessions")
	if len(h.cfg.APIKeys) > 0 {
		sessions.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	{
		sessions.POST("", h.createSession)
		sessions.GET("/:sid", h.getSession)
		sessions.DELETE("/:sid", h.deleteSession)

		// Список кризисов
		sessions.PUT("/:sid/filter", h.setFilter)
		sessions.POST("/:sid/refresh", h.refresh)

		// Детальный просмотр
		sessions.PUT("/:sid/selection", h.selectCrisis)
		sessions.DELETE("/:sid/selection", h.clearSelection)
		sessions.PUT("/:sid/crisis/status", h.changeStatus)
		sessions.PUT("/:sid/crisis/priority", h.changePriority)
		sessions.PATCH("/:sid/event-form", h.editEventDraft)
		sessions.POST("/:sid/event-form/submit", h.submitEvent)

		// Форма создания кризиса
		sessions.PUT("/:sid/create-form/visibility", h.setCreateFormVisibility)
		sessions.PATCH("/:sid/create-form", h.editCrisisDraft)
		sessions.POST("/:sid/create-form/submit", h.submitCrisis)

		// Плоский журнал событий
		sessions.GET("/:sid/situation", h.getSituation)
		sessions.PATCH("/:sid/situation/draft", h.editLogEventDraft)
		sessions.POST("/:sid/situation/submit", h.submitLogEvent)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
