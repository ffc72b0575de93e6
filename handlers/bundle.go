package handlers

import (
	"net/http"

	"templeseva/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers and what routes need to guard them.
type HandlerBundle struct {
	TokenIssuer    *utils.TokenIssuer
	Health         *utils.HealthMonitor
	MetricsHandler http.Handler

	// Allocation endpoints
	AllocateHandler         gin.HandlerFunc
	AllocatePriorityHandler gin.HandlerFunc
	ValidateHandler         gin.HandlerFunc
}
