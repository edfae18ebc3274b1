package domain

import (
	"time"

	"github.com/shihan84/cg-overlay/pkg/database"
)

// ClientModel is the GORM model for the clients table.
type ClientModel struct {
	ID          string    `gorm:"type:varchar(36);primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Color       string    `gorm:"type:varchar(20);not null;default:'#3b82f6'"`
	Logo        string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (ClientModel) TableName() string {
	return "clients"
}

func (m *ClientModel) ToDomain() *Client {
	return &Client{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Color:       m.Color,
		Logo:        m.Logo,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ClientToModel(c *Client) *ClientModel {
	return &ClientModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		Logo:        c.Logo,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// TemplateModel is the GORM model for the templates table.
type TemplateModel struct {
	ID          string               `gorm:"type:varchar(36);primaryKey"`
	Name        string               `gorm:"type:varchar(200);not null"`
	Description string               `gorm:"type:text"`
	Type        string               `gorm:"type:varchar(50);index;not null"`
	Category    string               `gorm:"type:varchar(50);index;not null"`
	HTMLContent string               `gorm:"type:text;not null"`
	CSSContent  string               `gorm:"type:text"`
	Config      database.JSONMap     `gorm:"type:text"`
	IsSystem    bool                 `gorm:"not null;default:false"`
	IsActive    bool                 `gorm:"not null;default:true"`
	Fields      []TemplateFieldModel `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time            `gorm:"autoCreateTime"`
}

func (TemplateModel) TableName() string {
	return "templates"
}

// TemplateFieldModel is the GORM model for the template_fields table.
type TemplateFieldModel struct {
	ID           string `gorm:"type:varchar(36);primaryKey"`
	TemplateID   string `gorm:"type:varchar(36);index;not null"`
	Name         string `gorm:"type:varchar(100);not null"`
	Label        string `gorm:"type:varchar(200);not null"`
	Type         string `gorm:"type:varchar(50);not null"`
	Required     bool   `gorm:"not null;default:false"`
	DefaultValue string `gorm:"type:text"`
	Options      string `gorm:"type:text"`
	Validation   string `gorm:"type:text"`
	Order        int    `gorm:"column:field_order;not null;default:0"`
}

func (TemplateFieldModel) TableName() string {
	return "template_fields"
}

func (m *TemplateModel) ToDomain() *Template {
	t := &Template{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Type:        m.Type,
		Category:    m.Category,
		HTMLContent: m.HTMLContent,
		CSSContent:  m.CSSContent,
		Config:      map[string]interface{}(m.Config),
		IsSystem:    m.IsSystem,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
	for _, f := range m.Fields {
		t.Fields = append(t.Fields, TemplateField{
			ID:           f.ID,
			TemplateID:   f.TemplateID,
			Name:         f.Name,
			Label:        f.Label,
			Type:         f.Type,
			Required:     f.Required,
			DefaultValue: f.DefaultValue,
			Options:      f.Options,
			Validation:   f.Validation,
			Order:        f.Order,
		})
	}
	return t
}

func TemplateToModel(t *Template) *TemplateModel {
	m := &TemplateModel{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Type:        t.Type,
		Category:    t.Category,
		HTMLContent: t.HTMLContent,
		CSSContent:  t.CSSContent,
		Config:      database.JSONMap(t.Config),
		IsSystem:    t.IsSystem,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
	}
	for _, f := range t.Fields {
		m.Fields = append(m.Fields, TemplateFieldModel{
			ID:           f.ID,
			TemplateID:   f.TemplateID,
			Name:         f.Name,
			Label:        f.Label,
			Type:         f.Type,
			Required:     f.Required,
			DefaultValue: f.DefaultValue,
			Options:      f.Options,
			Validation:   f.Validation,
			Order:        f.Order,
		})
	}
	return m
}

// OverlayModel is the GORM model for the overlays table.
type OverlayModel struct {
	ID         string           `gorm:"type:varchar(36);primaryKey"`
	ClientID   string           `gorm:"type:varchar(36);index;not null"`
	TemplateID string           `gorm:"type:varchar(36);index;not null"`
	Name       string           `gorm:"type:varchar(200);not null"`
	Data       database.JSONMap `gorm:"type:text"`
	Position   database.JSONMap `gorm:"type:text"`
	Size       database.JSONMap `gorm:"type:text"`
	ZIndex     int              `gorm:"not null;default:1"`
	IsActive   bool             `gorm:"not null;default:true"`
	IsVisible  bool             `gorm:"not null;default:false"`
	Animation  database.JSONMap `gorm:"type:text"`
	Client     *ClientModel     `gorm:"foreignKey:ClientID"`
	Template   *TemplateModel   `gorm:"foreignKey:TemplateID"`
	CreatedAt  time.Time        `gorm:"autoCreateTime"`
	UpdatedAt  time.Time        `gorm:"autoUpdateTime"`
}

func (OverlayModel) TableName() string {
	return "overlays"
}

func (m *OverlayModel) ToDomain() *Overlay {
	o := &Overlay{
		ID:         m.ID,
		ClientID:   m.ClientID,
		TemplateID: m.TemplateID,
		Name:       m.Name,
		Data:       map[string]interface{}(m.Data),
		Position:   map[string]interface{}(m.Position),
		Size:       map[string]interface{}(m.Size),
		ZIndex:     m.ZIndex,
		IsActive:   m.IsActive,
		IsVisible:  m.IsVisible,
		Animation:  map[string]interface{}(m.Animation),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Client != nil {
		o.Client = m.Client.ToDomain()
	}
	if m.Template != nil {
		o.Template = m.Template.ToDomain()
	}
	return o
}

func OverlayToModel(o *Overlay) *OverlayModel {
	return &OverlayModel{
		ID:         o.ID,
		ClientID:   o.ClientID,
		TemplateID: o.TemplateID,
		Name:       o.Name,
		Data:       database.JSONMap(o.Data),
		Position:   database.JSONMap(o.Position),
		Size:       database.JSONMap(o.Size),
		ZIndex:     o.ZIndex,
		IsActive:   o.IsActive,
		IsVisible:  o.IsVisible,
		Animation:  database.JSONMap(o.Animation),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
