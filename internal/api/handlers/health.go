package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tunlify/tunlify/internal/api/dto/common"
	"github.com/tunlify/tunlify/internal/db/ent"
	"github.com/tunlify/tunlify/internal/tunnel"
	"github.com/tunlify/tunlify/internal/utils"
	"github.com/tunlify/tunlify/internal/version"
)

// HealthHandler serves GET /health.
type HealthHandler struct {
	client *ent.Client
	hub    *tunnel.Hub
	region string
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(client *ent.Client, hub *tunnel.Hub, region string) *HealthHandler {
	return &HealthHandler{client: client, hub: hub, region: region}
}

// Check probes the database and reports data-plane gauges.
func (h *HealthHandler) Check(c *gin.Context) {
	// A trivial query doubles as the connection probe.
	if _, err := h.client.User.Query().Limit(1).Exist(c.Request.Context()); err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeInternalServer, "Database connection error")
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"status":          "ok",
		"region":          h.region,
		"version":         version.Version,
		"active_channels": h.hub.Registry().Len(),
		"pending":         h.hub.Pending().Len(),
	}))
}
