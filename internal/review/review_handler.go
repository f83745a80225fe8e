package review

import (
	"encoding/json"
	"net/http"
	"time"

	"staffhub/internal/shared/apperror"
	"staffhub/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("review.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("review.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("review request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByStaff(c *gin.Context) {
	resp, err := h.service.GetByStaff(c.Request.Context(), c.GetString("company_id"), c.Param("staffId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetNextMilestone(c *gin.Context) {
	resp, err := h.service.GetNextMilestone(c.Request.Context(), c.GetString("company_id"), c.Param("staffId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetFullSchedule(c *gin.Context) {
	resp, err := h.service.GetFullSchedule(c.Request.Context(), c.GetString("company_id"), c.Param("staffId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	resp, err := h.service.Submit(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) StartReview(c *gin.Context) {
	resp, err := h.service.StartReview(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RunAutoCreation(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.service.RunAutoCreation(ctx, c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.finishIdempotent(c, result)
	response.Success(c, http.StatusOK, result, nil)
}

// finishIdempotent caches the batch result and releases the lock set by
// the idempotency middleware, so a retried request replays the outcome.
func (h *Handler) finishIdempotent(c *gin.Context, result AutoCreationResult) {
	cacheKey := c.GetString("idempotency_cache_key")
	lockKey := c.GetString("idempotency_lock_key")
	if h.rdb == nil || cacheKey == "" {
		return
	}

	if payload, err := json.Marshal(result); err == nil {
		h.rdb.Set(c.Request.Context(), cacheKey, payload, 24*time.Hour)
	}
	if lockKey != "" {
		h.rdb.Del(c.Request.Context(), lockKey)
	}
}
