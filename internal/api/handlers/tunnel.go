package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tunlify/tunlify/internal/api/constants"
	"github.com/tunlify/tunlify/internal/api/dto/common"
	tunneldto "github.com/tunlify/tunlify/internal/api/dto/v1/tunnel"
	"github.com/tunlify/tunlify/internal/api/mapper"
	"github.com/tunlify/tunlify/internal/api/validation"
	enttunnel "github.com/tunlify/tunlify/internal/db/ent/tunnel"
	"github.com/tunlify/tunlify/internal/repository"
	"github.com/tunlify/tunlify/internal/service"
	"github.com/tunlify/tunlify/internal/tunnel"
	"github.com/tunlify/tunlify/internal/utils"
)

// TunnelHandler serves the tunnel management endpoints.
type TunnelHandler struct {
	tunnels    service.TunnelService
	hub        *tunnel.Hub
	validator  *validation.Validator
	baseDomain string
}

// NewTunnelHandler creates a new tunnel handler instance
func NewTunnelHandler(tunnels service.TunnelService, hub *tunnel.Hub, validator *validation.Validator, baseDomain string) *TunnelHandler {
	return &TunnelHandler{
		tunnels:    tunnels,
		hub:        hub,
		validator:  validator,
		baseDomain: baseDomain,
	}
}

// List handles GET /api/v1/tunnels
func (h *TunnelHandler) List(c *gin.Context) {
	userID := c.MustGet(constants.ContextKeyUserID).(uint32)

	rows, err := h.tunnels.ListTunnels(c.Request.Context(), userID)
	if err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeInternalServer, "Failed to list tunnels")
		return
	}

	resp := make([]tunneldto.TunnelResponse, 0, len(rows))
	for _, t := range rows {
		resp = append(resp, mapper.ToTunnelResponse(t, h.baseDomain, true))
	}
	utils.HandleSuccess(c, resp)
}

// Create handles POST /api/v1/tunnels
func (h *TunnelHandler) Create(c *gin.Context) {
	userID := c.MustGet(constants.ContextKeyUserID).(uint32)

	var req tunneldto.CreateTunnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.ErrCodeValidation, "Invalid request body", err.Error()))
		return
	}

	if errs := h.validator.ValidateCreateTunnel(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.ErrCodeValidation, "Validation failed", errs))
		return
	}

	created, err := h.tunnels.CreateTunnel(c.Request.Context(), userID, service.CreateTunnelParams{
		Subdomain:   req.Subdomain,
		Region:      req.Location,
		ServiceType: req.ServiceType,
		Protocol:    req.Protocol,
		LocalPort:   req.LocalPort,
		RemotePort:  req.RemotePort,
	})
	if err != nil {
		h.handleCreateError(c, &req, err)
		return
	}

	utils.HandleCreated(c, tunneldto.CreateTunnelResponse{
		Tunnel:            mapper.ToTunnelResponse(created, h.baseDomain, true),
		SetupInstructions: mapper.SetupInstructions(created, h.baseDomain),
	})
}

// handleCreateError reports creation conflicts with the conflicting value
// named, so the caller knows which field to change.
func (h *TunnelHandler) handleCreateError(c *gin.Context, req *tunneldto.CreateTunnelRequest, err error) {
	switch {
	case errors.Is(err, repository.ErrSubdomainTaken):
		c.JSON(http.StatusConflict, common.NewErrorResponse(common.ErrCodeConflict,
			fmt.Sprintf("Subdomain %q is already taken in region %q", req.Subdomain, req.Location), nil))
	case errors.Is(err, repository.ErrPortTaken) && req.RemotePort != nil:
		c.JSON(http.StatusConflict, common.NewErrorResponse(common.ErrCodeConflict,
			fmt.Sprintf("Port %d is already taken in region %q", *req.RemotePort, req.Location), nil))
	default:
		utils.HandleAPIError(c, err, common.ErrCodeInternalServer, "Failed to create tunnel")
	}
}

// Delete handles DELETE /api/v1/tunnels/:id
func (h *TunnelHandler) Delete(c *gin.Context) {
	userID := c.MustGet(constants.ContextKeyUserID).(uint32)

	tunnelID, ok := parseTunnelID(c)
	if !ok {
		return
	}

	// Fetch before deleting so the open control channel, if any, can be
	// closed after the row is gone.
	t, err := h.tunnels.GetTunnel(c.Request.Context(), userID, tunnelID)
	if err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeInternalServer, "Failed to delete tunnel")
		return
	}

	if err := h.tunnels.DeleteTunnel(c.Request.Context(), userID, tunnelID); err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeInternalServer, "Failed to delete tunnel")
		return
	}

	h.hub.CloseChannelForTunnel(t, "tunnel deleted")
	utils.HandleNoContent(c)
}

// UpdateStatus handles PATCH /api/v1/tunnels/:id/status
func (h *TunnelHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(constants.ContextKeyUserID).(uint32)

	tunnelID, ok := parseTunnelID(c)
	if !ok {
		return
	}

	var req tunneldto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.ErrCodeValidation, "Invalid request body", err.Error()))
		return
	}

	if _, err := h.tunnels.GetTunnel(c.Request.Context(), userID, tunnelID); err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeInternalServer, "Failed to update tunnel status")
		return
	}

	clientConnected := req.Status == string(enttunnel.StatusActive)
	if req.ClientConnected != nil {
		clientConnected = *req.ClientConnected
	}

	if err := h.tunnels.UpdateStatus(c.Request.Context(), tunnelID, enttunnel.Status(req.Status), clientConnected); err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeInternalServer, "Failed to update tunnel status")
		return
	}

	utils.HandleMessage(c, "Tunnel status updated")
}

// Auth handles POST /api/v1/tunnels/auth. It resolves a connection token to
// the tunnel it belongs to, without opening a control channel.
func (h *TunnelHandler) Auth(c *gin.Context) {
	var req tunneldto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.ErrCodeValidation, "Invalid request body", err.Error()))
		return
	}

	t, err := h.tunnels.AuthenticateToken(c.Request.Context(), req.ConnectionToken)
	if err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeUnauthorized, "Invalid connection token")
		return
	}

	utils.HandleSuccess(c, tunneldto.AuthResponse{
		TunnelID:  t.ID,
		Subdomain: t.Subdomain,
		Region:    t.Region,
		Protocol:  string(t.Protocol),
		LocalPort: t.LocalPort,
		TunnelURL: mapper.TunnelURL(t, h.baseDomain),
	})
}

// Presets handles GET /api/v1/tunnels/presets
func (h *TunnelHandler) Presets(c *gin.Context) {
	utils.HandleSuccess(c, service.ServicePresets())
}

func parseTunnelID(c *gin.Context) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.ErrCodeBadRequest, "Invalid tunnel ID", nil))
		return 0, false
	}
	return uint32(id), true
}
