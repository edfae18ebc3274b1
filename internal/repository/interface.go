package repository

import (
	"context"
	"errors"

	"github.com/shihan84/cg-overlay/internal/domain"
)

var (
	ErrClientNotFound   = errors.New("client not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrOverlayNotFound  = errors.New("overlay not found")
)

// ClientRepository persists broadcast clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Delete(ctx context.Context, id string) error
}

// TemplateRepository persists overlay templates and their fields.
type TemplateRepository interface {
	Create(ctx context.Context, template *domain.Template) error
	GetByID(ctx context.Context, id string) (*domain.Template, error)
	List(ctx context.Context, templateType, category string) ([]domain.Template, error)
	Count(ctx context.Context) (int64, error)
}

// OverlayRepository persists overlay catalog entries.
type OverlayRepository interface {
	Create(ctx context.Context, overlay *domain.Overlay) error
	GetByID(ctx context.Context, id string) (*domain.Overlay, error)
	List(ctx context.Context, clientID string) ([]domain.Overlay, error)
	Update(ctx context.Context, overlay *domain.Overlay) error
	Delete(ctx context.Context, id string) error
}
