package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/shihan84/cg-overlay/internal/config"
	"github.com/shihan84/cg-overlay/internal/domain"
	"github.com/shihan84/cg-overlay/internal/hub"
	"github.com/shihan84/cg-overlay/internal/service"
	"github.com/shihan84/cg-overlay/pkg/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler upgrades connections and dispatches inbound protocol events
// to the sync service. A malformed event is answered with an error
// message and dropped; the connection stays open.
type WSHandler struct {
	hub     *hub.Hub
	service service.SyncService
	wsCfg   config.WebSocketConfig
}

func NewWSHandler(h *hub.Hub, svc service.SyncService, wsCfg config.WebSocketConfig) *WSHandler {
	return &WSHandler{
		hub:     h,
		service: svc,
		wsCfg:   wsCfg,
	}
}

// RegisterRoutes registers the websocket endpoint.
func (h *WSHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/overlay/ws", h.HandleWebSocket)
}

func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		l := log.Ctx(c.Request.Context())
		l.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := hub.NewClient(uuid.New().String(), h.hub, conn, h.wsCfg)

	h.hub.Register(client)

	go client.WritePump()
	go func() {
		client.ReadPump(h.handleMessage)
		h.service.HandleDisconnect(context.Background(), client)
	}()
}

func (h *WSHandler) handleMessage(client *hub.Client, message []byte) {
	var base domain.BaseMessage
	if err := json.Unmarshal(message, &base); err != nil {
		client.SendMessage(domain.NewErrorMessage(domain.ErrCodeBadRequest, "invalid message format"))
		return
	}

	ctx := context.Background()
	l := log.L()

	switch base.Type {
	case domain.MsgTypeJoinOverlay:
		var msg domain.JoinOverlayMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			client.SendMessage(domain.NewErrorMessage(domain.ErrCodeBadRequest, "invalid join-overlay message"))
			return
		}
		if err := h.service.HandleJoinOverlay(ctx, client, msg.OverlayID); err != nil {
			l.Warn().Err(err).Str(log.FieldConnID, client.ID).Msg("join-overlay failed")
		}

	case domain.MsgTypeUpdateOverlay:
		var msg domain.UpdateOverlayMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			client.SendMessage(domain.NewErrorMessage(domain.ErrCodeBadRequest, "invalid update-overlay message"))
			return
		}
		if err := h.service.HandleUpdateOverlay(ctx, client, msg.OverlayID, msg.Data); err != nil {
			l.Warn().Err(err).Str(log.FieldConnID, client.ID).Msg("update-overlay failed")
		}

	case domain.MsgTypeToggleVisibility:
		var msg domain.ToggleVisibilityMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			client.SendMessage(domain.NewErrorMessage(domain.ErrCodeBadRequest, "invalid toggle-visibility message"))
			return
		}
		if err := h.service.HandleToggleVisibility(ctx, client, msg.OverlayID, msg.Visible); err != nil {
			l.Warn().Err(err).Str(log.FieldConnID, client.ID).Msg("toggle-visibility failed")
		}

	case domain.MsgTypeUpdateTemplateConfig:
		var msg domain.UpdateTemplateConfigMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			client.SendMessage(domain.NewErrorMessage(domain.ErrCodeBadRequest, "invalid update-template-config message"))
			return
		}
		if err := h.service.HandleUpdateTemplateConfig(ctx, client, msg.OverlayID, msg.Config); err != nil {
			l.Warn().Err(err).Str(log.FieldConnID, client.ID).Msg("update-template-config failed")
		}

	case domain.MsgTypeGetOverlayData:
		var msg domain.GetOverlayDataMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			client.SendMessage(domain.NewErrorMessage(domain.ErrCodeBadRequest, "invalid get-overlay-data message"))
			return
		}
		if err := h.service.HandleGetOverlayData(ctx, client, msg.OverlayID); err != nil {
			l.Warn().Err(err).Str(log.FieldConnID, client.ID).Msg("get-overlay-data failed")
		}

	case domain.MsgTypeGetTemplateConfig:
		var msg domain.GetTemplateConfigMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			client.SendMessage(domain.NewErrorMessage(domain.ErrCodeBadRequest, "invalid get-template-config message"))
			return
		}
		if err := h.service.HandleGetTemplateConfig(ctx, client, msg.OverlayID); err != nil {
			l.Warn().Err(err).Str(log.FieldConnID, client.ID).Msg("get-template-config failed")
		}

	default:
		client.SendMessage(domain.NewErrorMessage(domain.ErrCodeBadRequest, "unknown message type"))
	}
}
