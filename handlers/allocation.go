package handlers

import (
	"errors"
	"net/http"

	"templeseva/middleware"
	"templeseva/models"
	"templeseva/services/allocation"
	"templeseva/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AllocationHandler exposes the allocation service over HTTP.
type AllocationHandler struct {
	Service allocation.AllocationService
}

func NewAllocationHandler(svc allocation.AllocationService) *AllocationHandler {
	return &AllocationHandler{Service: svc}
}

// AllocateHandler runs the configured default scheme.
func (h *AllocationHandler) AllocateHandler(c *gin.Context) {
	h.allocate(c, "")
}

// AllocatePriorityHandler runs the legacy priority scheme.
func (h *AllocationHandler) AllocatePriorityHandler(c *gin.Context) {
	h.allocate(c, allocation.SchemePriority)
}

func (h *AllocationHandler) allocate(c *gin.Context, scheme string) {
	logger := getLogger(c)

	var req models.AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.Service.Allocate(c.Request.Context(), middleware.UserID(c), req, scheme)
	if err != nil {
		h.fail(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ValidateHandler re-checks one priest before the booking is committed.
func (h *AllocationHandler) ValidateHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.RevalidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.Service.Revalidate(c.Request.Context(), req)
	if err != nil {
		h.fail(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AllocationHandler) fail(c *gin.Context, logger *zap.Logger, err error) {
	var vErr *allocation.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONError(c, http.StatusBadRequest, vErr.Message)
		return
	}
	logger.Error("allocation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, err.Error())
}
