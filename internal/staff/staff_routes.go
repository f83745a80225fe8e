package staff

import (
	"staffhub/internal/middleware"
	"staffhub/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	group := r.Group("/staff")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("", middleware.RBACAuthorize(rbacService, "staff", "read"), h.GetAll)
		group.GET("/options", middleware.RBACAuthorize(rbacService, "staff", "read"), h.GetOptions)
		group.GET("/:id", middleware.RBACAuthorize(rbacService, "staff", "read"), h.GetById)
		group.POST("", middleware.RBACAuthorize(rbacService, "staff", "create"), h.Create)
		group.PUT("/:id", middleware.RBACAuthorize(rbacService, "staff", "update"), h.Update)
		group.DELETE("/:id", middleware.RBACAuthorize(rbacService, "staff", "delete"), h.Delete)
	}
}
