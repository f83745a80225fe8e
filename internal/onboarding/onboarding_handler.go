package onboarding

import (
	"net/http"

	"staffhub/internal/shared/apperror"
	"staffhub/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("onboarding.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("onboarding request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetMyProgress serves the signed-in staff member's own onboarding state.
func (h *Handler) GetMyProgress(c *gin.Context) {
	resp, err := h.service.GetProgress(c.Request.Context(), c.GetString("company_id"), c.GetString("staff_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SubmitMySection(c *gin.Context) {
	resp, err := h.service.SubmitSection(
		c.Request.Context(),
		c.GetString("company_id"),
		c.GetString("staff_id"),
		c.Param("section"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetStaffOnboarding(c *gin.Context) {
	resp, err := h.service.GetAdminView(c.Request.Context(), c.GetString("company_id"), c.Param("staffId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListOnboarding(c *gin.Context) {
	resp, err := h.service.ListByCompany(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) VerifySection(c *gin.Context) {
	var req VerifySectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http verify section validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.VerifySection(
		c.Request.Context(),
		c.GetString("company_id"),
		c.Param("staffId"),
		c.Param("section"),
		req,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MarkComplete(c *gin.Context) {
	resp, err := h.service.MarkComplete(c.Request.Context(), c.GetString("company_id"), c.Param("staffId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
