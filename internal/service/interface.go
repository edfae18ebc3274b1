package service

import (
	"context"

	"github.com/shihan84/cg-overlay/internal/domain"
	"github.com/shihan84/cg-overlay/internal/hub"
)

// SyncService handles the overlay state synchronization protocol: one
// method per inbound event from a connection.
type SyncService interface {
	HandleJoinOverlay(ctx context.Context, client *hub.Client, overlayID string) error
	HandleUpdateOverlay(ctx context.Context, client *hub.Client, overlayID string, data domain.OverlayData) error
	HandleToggleVisibility(ctx context.Context, client *hub.Client, overlayID string, visible bool) error
	HandleUpdateTemplateConfig(ctx context.Context, client *hub.Client, overlayID string, cfg domain.TemplateConfig) error
	HandleGetOverlayData(ctx context.Context, client *hub.Client, overlayID string) error
	HandleGetTemplateConfig(ctx context.Context, client *hub.Client, overlayID string) error
	HandleDisconnect(ctx context.Context, client *hub.Client) error
}

// CatalogService handles the CRUD catalog of clients, templates, and
// overlays backing the dashboard. The sync service never calls it: the
// two sides only share overlay ids.
type CatalogService interface {
	CreateClient(ctx context.Context, req *domain.CreateClientRequest) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error

	CreateTemplate(ctx context.Context, req *domain.CreateTemplateRequest) (*domain.Template, error)
	ListTemplates(ctx context.Context, templateType, category string) ([]domain.Template, error)
	GetTemplate(ctx context.Context, id string) (*domain.Template, error)

	CreateOverlay(ctx context.Context, req *domain.CreateOverlayRequest) (*domain.Overlay, error)
	ListOverlays(ctx context.Context, clientID string) ([]domain.Overlay, error)
	GetOverlay(ctx context.Context, id string) (*domain.Overlay, error)
	UpdateOverlay(ctx context.Context, id string, req *domain.UpdateOverlayRequest) (*domain.Overlay, error)
	DeleteOverlay(ctx context.Context, id string) error
}
