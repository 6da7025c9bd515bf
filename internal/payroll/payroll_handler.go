package payroll

import (
	"encoding/json"
	"net/http"
	"time"

	"school-admin/internal/shared/apperror"
	"school-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	h.releaseIdempotencyLock(c)
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Generate runs the payroll engine for the period the pay date falls
// in. Safe to retry with an Idempotency-Key: the cached response is
// replayed instead of tripping the duplicate-period conflict.
func (h *Handler) Generate(c *gin.Context) {
	var req GeneratePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.releaseIdempotencyLock(c)
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.storeIdempotentResponse(c, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

// Create stores a manually assembled run without running the engine.
func (h *Handler) Create(c *gin.Context) {
	var req CreatePayrollRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.releaseIdempotencyLock(c)
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.CreateManual(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.storeIdempotentResponse(c, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) storeIdempotentResponse(c *gin.Context, resp any) {
	if h.rdb == nil {
		return
	}

	cacheKey := c.GetString("idempotency_cache_key")
	lockKey := c.GetString("idempotency_lock_key")
	if cacheKey == "" {
		return
	}

	if payload, err := json.Marshal(resp); err == nil {
		h.rdb.Set(c.Request.Context(), cacheKey, payload, 24*time.Hour)
	}
	if lockKey != "" {
		h.rdb.Del(c.Request.Context(), lockKey)
	}
}

func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	if h.rdb == nil {
		return
	}

	if lockKey := c.GetString("idempotency_lock_key"); lockKey != "" {
		h.rdb.Del(c.Request.Context(), lockKey)
	}
}
