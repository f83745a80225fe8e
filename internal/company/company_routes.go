package company

import (
	"staffhub/internal/middleware"
	"staffhub/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	{
		companies.GET("/me", middleware.RBACAuthorize(rbacService, "company", "read"), h.GetMe)
		companies.PUT("/me", middleware.RBACAuthorize(rbacService, "company", "manage"), h.UpdateMe)

		companies.GET("/me/contacts", middleware.RBACAuthorize(rbacService, "company", "read"), h.GetContacts)
		companies.GET("/me/contacts/primary", middleware.RBACAuthorize(rbacService, "company", "read"), h.GetPrimaryContact)
		companies.POST("/me/contacts", middleware.RBACAuthorize(rbacService, "company", "manage"), h.CreateContact)
		companies.PUT("/me/contacts/:id", middleware.RBACAuthorize(rbacService, "company", "manage"), h.UpdateContact)
	}
}
