package domain

import (
	"time"
)

// Client represents a broadcast client (a channel, show, or customer)
// that owns overlays.
type Client struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	Logo        string    `json:"logo,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Template represents a reusable overlay template with its markup,
// styling, and editable fields.
type Template struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Type        string                 `json:"type"`
	Category    string                 `json:"category"`
	HTMLContent string                 `json:"htmlContent"`
	CSSContent  string                 `json:"cssContent,omitempty"`
	Config      map[string]interface{} `json:"config,omitempty"`
	IsSystem    bool                   `json:"isSystem"`
	IsActive    bool                   `json:"isActive"`
	Fields      []TemplateField        `json:"fields,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// TemplateField describes one editable field of a template.
type TemplateField struct {
	ID           string `json:"id"`
	TemplateID   string `json:"-"`
	Name         string `json:"name"`
	Label        string `json:"label"`
	Type         string `json:"type"`
	Required     bool   `json:"required"`
	DefaultValue string `json:"defaultValue,omitempty"`
	Options      string `json:"options,omitempty"`
	Validation   string `json:"validation,omitempty"`
	Order        int    `json:"order"`
}

// Overlay is a catalog entry binding a client and a template to one
// addressable on-screen graphic. Its ID is the key the sync service
// rooms and live state are addressed by; the sync service itself never
// reads the catalog.
type Overlay struct {
	ID         string                 `json:"id"`
	ClientID   string                 `json:"clientId"`
	TemplateID string                 `json:"templateId"`
	Name       string                 `json:"name"`
	Data       map[string]interface{} `json:"data"`
	Position   map[string]interface{} `json:"position,omitempty"`
	Size       map[string]interface{} `json:"size,omitempty"`
	ZIndex     int                    `json:"zIndex"`
	IsActive   bool                   `json:"isActive"`
	IsVisible  bool                   `json:"isVisible"`
	Animation  map[string]interface{} `json:"animation,omitempty"`
	Client     *Client                `json:"client,omitempty"`
	Template   *Template              `json:"template,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt"`
}

// CreateClientRequest represents a create client request.
type CreateClientRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Logo        string `json:"logo"`
}

// CreateTemplateRequest represents a create template request.
type CreateTemplateRequest struct {
	Name        string                 `json:"name" binding:"required,min=1,max=200"`
	Description string                 `json:"description"`
	Type        string                 `json:"type" binding:"required"`
	Category    string                 `json:"category" binding:"required"`
	HTMLContent string                 `json:"htmlContent" binding:"required"`
	CSSContent  string                 `json:"cssContent"`
	Config      map[string]interface{} `json:"config"`
	Fields      []TemplateFieldInput   `json:"fields"`
}

// TemplateFieldInput is one field definition inside a create template request.
type TemplateFieldInput struct {
	Name         string `json:"name" binding:"required"`
	Label        string `json:"label" binding:"required"`
	Type         string `json:"type" binding:"required"`
	Required     bool   `json:"required"`
	DefaultValue string `json:"defaultValue"`
	Options      string `json:"options"`
	Validation   string `json:"validation"`
}

// ListTemplatesRequest represents template list filters.
type ListTemplatesRequest struct {
	Type     string `form:"type"`
	Category string `form:"category"`
}

// CreateOverlayRequest represents a create overlay request.
type CreateOverlayRequest struct {
	ClientID   string                 `json:"clientId" binding:"required"`
	TemplateID string                 `json:"templateId" binding:"required"`
	Name       string                 `json:"name" binding:"required,min=1,max=200"`
	Data       map[string]interface{} `json:"data"`
	Position   map[string]interface{} `json:"position"`
	Size       map[string]interface{} `json:"size"`
	ZIndex     *int                   `json:"zIndex"`
	Animation  map[string]interface{} `json:"animation"`
}

// UpdateOverlayRequest represents a partial overlay update. Nil fields
// are left unchanged.
type UpdateOverlayRequest struct {
	Name      *string                `json:"name"`
	Data      map[string]interface{} `json:"data"`
	IsActive  *bool                  `json:"isActive"`
	IsVisible *bool                  `json:"isVisible"`
	Position  map[string]interface{} `json:"position"`
	Size      map[string]interface{} `json:"size"`
	ZIndex    *int                   `json:"zIndex"`
	Animation map[string]interface{} `json:"animation"`
}

// ListOverlaysRequest represents overlay list filters.
type ListOverlaysRequest struct {
	ClientID string `form:"clientId"`
}
