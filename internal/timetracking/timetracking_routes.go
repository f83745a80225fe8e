package timetracking

import (
	"staffhub/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	entries := r.Group("/time-entries")
	entries.Use(middleware.AuthMiddleware())
	{
		entries.POST("/clock-in", h.ClockIn)
		entries.POST("/clock-out", h.ClockOut)
		entries.GET("", h.GetAll)
	}
}
