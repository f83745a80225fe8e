package onboarding

import (
	"staffhub/internal/middleware"
	"staffhub/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	group := r.Group("/onboarding")
	group.Use(middleware.AuthMiddleware())
	{
		// Staff-facing routes act on the caller's own record.
		group.GET("/me", h.GetMyProgress)
		group.POST("/me/sections/:section/submit", h.SubmitMySection)

		// Admin routes act on any staff member in the tenant.
		group.GET("", middleware.RBACAuthorize(rbacService, "onboarding", "read"), h.ListOnboarding)
		group.GET("/staff/:staffId", middleware.RBACAuthorize(rbacService, "onboarding", "read"), h.GetStaffOnboarding)
		group.POST("/staff/:staffId/sections/:section/verify", middleware.RBACAuthorize(rbacService, "onboarding", "verify"), h.VerifySection)
		group.POST("/staff/:staffId/complete", middleware.RBACAuthorize(rbacService, "onboarding", "complete"), h.MarkComplete)
	}
}
