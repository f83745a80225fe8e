package review

import (
	"staffhub/internal/middleware"
	"staffhub/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb *redis.Client) {
	group := r.Group("/reviews")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("", middleware.RBACAuthorize(rbacService, "review", "read"), h.GetAll)
		group.GET("/staff/:staffId", middleware.RBACAuthorize(rbacService, "review", "read"), h.GetByStaff)
		group.GET("/staff/:staffId/next", middleware.RBACAuthorize(rbacService, "review", "read"), h.GetNextMilestone)
		group.GET("/staff/:staffId/schedule", middleware.RBACAuthorize(rbacService, "review", "read"), h.GetFullSchedule)
		group.POST("/:id/submit", middleware.RBACAuthorize(rbacService, "review", "submit"), h.Submit)
		group.POST("/:id/start-review", middleware.RBACAuthorize(rbacService, "review", "process"), h.StartReview)
		group.POST("/auto-create",
			middleware.RBACAuthorize(rbacService, "review", "manage"),
			middleware.ExtractUserID(),
			middleware.Idempotency(rdb),
			h.RunAutoCreation,
		)
	}
}
