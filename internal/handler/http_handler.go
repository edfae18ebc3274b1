package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/shihan84/cg-overlay/internal/domain"
	"github.com/shihan84/cg-overlay/internal/service"
	"github.com/shihan84/cg-overlay/pkg/log"
	"github.com/shihan84/cg-overlay/pkg/response"
)

// Handler handles HTTP requests for the overlay catalog.
type Handler struct {
	catalog service.CatalogService
}

func NewHandler(catalog service.CatalogService) *Handler {
	return &Handler{catalog: catalog}
}

// RegisterRoutes registers all catalog routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		clients := api.Group("/clients")
		{
			clients.GET("", h.ListClients)
			clients.POST("", h.CreateClient)
			clients.GET("/:id", h.GetClient)
			clients.DELETE("/:id", h.DeleteClient)
		}

		templates := api.Group("/templates")
		{
			templates.GET("", h.ListTemplates)
			templates.POST("", h.CreateTemplate)
			templates.GET("/:id", h.GetTemplate)
		}

		overlays := api.Group("/overlays")
		{
			overlays.GET("", h.ListOverlays)
			overlays.POST("", h.CreateOverlay)
			overlays.GET("/:id", h.GetOverlay)
			overlays.PUT("/:id", h.UpdateOverlay)
			overlays.DELETE("/:id", h.DeleteOverlay)
		}
	}
}

func (h *Handler) CreateClient(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("failed to bind create client request")
		response.BadRequest(c, err.Error())
		return
	}

	client, err := h.catalog.CreateClient(ctx, &req)
	if err != nil {
		l.Error().Err(err).Msg("failed to create client")
		response.InternalError(c, "failed to create client")
		return
	}

	response.Created(c, client)
}

func (h *Handler) ListClients(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	clients, err := h.catalog.ListClients(ctx)
	if err != nil {
		l.Error().Err(err).Msg("failed to list clients")
		response.InternalError(c, "failed to list clients")
		return
	}

	response.Success(c, clients)
}

func (h *Handler) GetClient(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	client, err := h.catalog.GetClient(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			response.NotFound(c, "client not found")
			return
		}
		l.Error().Err(err).Msg("failed to get client")
		response.InternalError(c, "failed to get client")
		return
	}

	response.Success(c, client)
}

func (h *Handler) DeleteClient(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	if err := h.catalog.DeleteClient(ctx, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			response.NotFound(c, "client not found")
			return
		}
		l.Error().Err(err).Msg("failed to delete client")
		response.InternalError(c, "failed to delete client")
		return
	}

	response.Success(c, gin.H{"message": "client deleted successfully"})
}

func (h *Handler) CreateTemplate(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("failed to bind create template request")
		response.BadRequest(c, err.Error())
		return
	}

	template, err := h.catalog.CreateTemplate(ctx, &req)
	if err != nil {
		l.Error().Err(err).Msg("failed to create template")
		response.InternalError(c, "failed to create template")
		return
	}

	response.Created(c, template)
}

func (h *Handler) ListTemplates(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.ListTemplatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	templates, err := h.catalog.ListTemplates(ctx, req.Type, req.Category)
	if err != nil {
		l.Error().Err(err).Msg("failed to list templates")
		response.InternalError(c, "failed to list templates")
		return
	}

	response.Success(c, templates)
}

func (h *Handler) GetTemplate(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	template, err := h.catalog.GetTemplate(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			response.NotFound(c, "template not found")
			return
		}
		l.Error().Err(err).Msg("failed to get template")
		response.InternalError(c, "failed to get template")
		return
	}

	response.Success(c, template)
}

func (h *Handler) CreateOverlay(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.CreateOverlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("failed to bind create overlay request")
		response.BadRequest(c, err.Error())
		return
	}

	overlay, err := h.catalog.CreateOverlay(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			response.NotFound(c, "client not found")
			return
		}
		if errors.Is(err, service.ErrTemplateNotFound) {
			response.NotFound(c, "template not found")
			return
		}
		l.Error().Err(err).Msg("failed to create overlay")
		response.InternalError(c, "failed to create overlay")
		return
	}

	response.Created(c, overlay)
}

func (h *Handler) ListOverlays(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.ListOverlaysRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	overlays, err := h.catalog.ListOverlays(ctx, req.ClientID)
	if err != nil {
		l.Error().Err(err).Msg("failed to list overlays")
		response.InternalError(c, "failed to list overlays")
		return
	}

	response.Success(c, overlays)
}

func (h *Handler) GetOverlay(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	overlay, err := h.catalog.GetOverlay(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOverlayNotFound) {
			response.NotFound(c, "overlay not found")
			return
		}
		l.Error().Err(err).Str(log.FieldOverlayID, c.Param("id")).Msg("failed to get overlay")
		response.InternalError(c, "failed to get overlay")
		return
	}

	response.Success(c, overlay)
}

func (h *Handler) UpdateOverlay(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.UpdateOverlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("failed to bind update overlay request")
		response.BadRequest(c, err.Error())
		return
	}

	overlay, err := h.catalog.UpdateOverlay(ctx, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrOverlayNotFound) {
			response.NotFound(c, "overlay not found")
			return
		}
		l.Error().Err(err).Str(log.FieldOverlayID, c.Param("id")).Msg("failed to update overlay")
		response.InternalError(c, "failed to update overlay")
		return
	}

	response.Success(c, overlay)
}

func (h *Handler) DeleteOverlay(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	if err := h.catalog.DeleteOverlay(ctx, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrOverlayNotFound) {
			response.NotFound(c, "overlay not found")
			return
		}
		l.Error().Err(err).Str(log.FieldOverlayID, c.Param("id")).Msg("failed to delete overlay")
		response.InternalError(c, "failed to delete overlay")
		return
	}

	response.Success(c, gin.H{"message": "overlay deleted successfully"})
}
