package domain

// WebSocket message types from client.
const (
	MsgTypeJoinOverlay          = "join-overlay"
	MsgTypeUpdateOverlay        = "update-overlay"
	MsgTypeToggleVisibility     = "toggle-visibility"
	MsgTypeUpdateTemplateConfig = "update-template-config"
	MsgTypeGetOverlayData       = "get-overlay-data"
	MsgTypeGetTemplateConfig    = "get-template-config"
)

// WebSocket message types to client.
const (
	MsgTypeOverlayUpdate     = "overlay-update"
	MsgTypeOverlayVisibility = "overlay-visibility"
	MsgTypeTemplateConfig    = "template-config"
	MsgTypeError             = "error"
)

// Error codes
const (
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// BaseMessage is the base structure for all WebSocket messages.
type BaseMessage struct {
	Type string `json:"type"`
}

// Client -> Server messages

type JoinOverlayMessage struct {
	Type      string `json:"type"`
	OverlayID string `json:"overlayId"`
}

type UpdateOverlayMessage struct {
	Type      string      `json:"type"`
	OverlayID string      `json:"overlayId"`
	Data      OverlayData `json:"data"`
}

type ToggleVisibilityMessage struct {
	Type      string `json:"type"`
	OverlayID string `json:"overlayId"`
	Visible   bool   `json:"visible"`
}

type UpdateTemplateConfigMessage struct {
	Type      string         `json:"type"`
	OverlayID string         `json:"overlayId"`
	Config    TemplateConfig `json:"config"`
}

type GetOverlayDataMessage struct {
	Type      string `json:"type"`
	OverlayID string `json:"overlayId"`
}

type GetTemplateConfigMessage struct {
	Type      string `json:"type"`
	OverlayID string `json:"overlayId"`
}

// Server -> Client messages

type OverlayUpdateMessage struct {
	Type      string      `json:"type"`
	OverlayID string      `json:"overlayId"`
	Data      OverlayData `json:"data"`
}

type OverlayVisibilityMessage struct {
	Type      string `json:"type"`
	OverlayID string `json:"overlayId"`
	Visible   bool   `json:"visible"`
}

type TemplateConfigMessage struct {
	Type      string         `json:"type"`
	OverlayID string         `json:"overlayId"`
	Config    TemplateConfig `json:"config"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewOverlayUpdateMessage(overlayID string, data OverlayData) *OverlayUpdateMessage {
	return &OverlayUpdateMessage{
		Type:      MsgTypeOverlayUpdate,
		OverlayID: overlayID,
		Data:      data,
	}
}

func NewOverlayVisibilityMessage(overlayID string, visible bool) *OverlayVisibilityMessage {
	return &OverlayVisibilityMessage{
		Type:      MsgTypeOverlayVisibility,
		OverlayID: overlayID,
		Visible:   visible,
	}
}

func NewTemplateConfigMessage(overlayID string, cfg TemplateConfig) *TemplateConfigMessage {
	return &TemplateConfigMessage{
		Type:      MsgTypeTemplateConfig,
		OverlayID: overlayID,
		Config:    cfg,
	}
}

func NewErrorMessage(code, message string) *ErrorMessage {
	return &ErrorMessage{
		Type:    MsgTypeError,
		Code:    code,
		Message: message,
	}
}
