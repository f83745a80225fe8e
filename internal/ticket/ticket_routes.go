package ticket

import (
	"staffhub/internal/middleware"
	"staffhub/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb *redis.Client) {
	tickets := r.Group("/tickets")
	tickets.Use(middleware.AuthMiddleware())
	{
		tickets.POST("",
			middleware.ExtractUserID(),
			middleware.Idempotency(rdb),
			h.Create,
		)
		tickets.GET("/me", h.GetMine)
		tickets.GET("", middleware.RBACAuthorize(rbacService, "ticket", "read"), h.GetAll)
		tickets.GET("/:id", middleware.RBACAuthorize(rbacService, "ticket", "read"), h.GetById)
		tickets.POST("/:id/start", middleware.RBACAuthorize(rbacService, "ticket", "update"), h.Start)
		tickets.POST("/:id/resolve", middleware.RBACAuthorize(rbacService, "ticket", "update"), h.Resolve)
		tickets.POST("/:id/close", middleware.RBACAuthorize(rbacService, "ticket", "update"), h.Close)
	}
}
