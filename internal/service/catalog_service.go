package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/shihan84/cg-overlay/internal/cache"
	"github.com/shihan84/cg-overlay/internal/domain"
	"github.com/shihan84/cg-overlay/internal/repository"
	"github.com/shihan84/cg-overlay/pkg/log"
)

var (
	ErrClientNotFound   = errors.New("client not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrOverlayNotFound  = errors.New("overlay not found")
)

// catalogService implements CatalogService over the GORM repositories,
// with an optional redis read-through cache on overlay lookups. The
// cache-miss path is deduplicated with singleflight so a burst of
// dashboard reads for the same overlay hits the database once.
type catalogService struct {
	clients   repository.ClientRepository
	templates repository.TemplateRepository
	overlays  repository.OverlayRepository
	cache     cache.OverlayCache // nil disables caching
	cacheTTL  time.Duration
	group     singleflight.Group
}

func NewCatalogService(
	clients repository.ClientRepository,
	templates repository.TemplateRepository,
	overlays repository.OverlayRepository,
	overlayCache cache.OverlayCache,
	cacheTTL time.Duration,
) CatalogService {
	return &catalogService{
		clients:   clients,
		templates: templates,
		overlays:  overlays,
		cache:     overlayCache,
		cacheTTL:  cacheTTL,
	}
}

func (s *catalogService) CreateClient(ctx context.Context, req *domain.CreateClientRequest) (*domain.Client, error) {
	client := &domain.Client{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Logo:        req.Logo,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *catalogService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *catalogService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *catalogService) DeleteClient(ctx context.Context, id string) error {
	if err := s.clients.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	return nil
}

func (s *catalogService) CreateTemplate(ctx context.Context, req *domain.CreateTemplateRequest) (*domain.Template, error) {
	template := &domain.Template{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Category:    req.Category,
		HTMLContent: req.HTMLContent,
		CSSContent:  req.CSSContent,
		Config:      req.Config,
	}
	for _, f := range req.Fields {
		template.Fields = append(template.Fields, domain.TemplateField{
			Name:         f.Name,
			Label:        f.Label,
			Type:         f.Type,
			Required:     f.Required,
			DefaultValue: f.DefaultValue,
			Options:      f.Options,
			Validation:   f.Validation,
		})
	}
	if err := s.templates.Create(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *catalogService) ListTemplates(ctx context.Context, templateType, category string) ([]domain.Template, error) {
	return s.templates.List(ctx, templateType, category)
}

func (s *catalogService) GetTemplate(ctx context.Context, id string) (*domain.Template, error) {
	template, err := s.templates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return template, nil
}

func (s *catalogService) CreateOverlay(ctx context.Context, req *domain.CreateOverlayRequest) (*domain.Overlay, error) {
	if _, err := s.GetClient(ctx, req.ClientID); err != nil {
		return nil, err
	}
	if _, err := s.GetTemplate(ctx, req.TemplateID); err != nil {
		return nil, err
	}

	overlay := &domain.Overlay{
		ClientID:   req.ClientID,
		TemplateID: req.TemplateID,
		Name:       req.Name,
		Data:       req.Data,
		Position:   req.Position,
		Size:       req.Size,
		ZIndex:     1,
		Animation:  req.Animation,
	}
	if overlay.Data == nil {
		overlay.Data = map[string]interface{}{}
	}
	if overlay.Position == nil {
		overlay.Position = map[string]interface{}{"x": 0, "y": 0}
	}
	if overlay.Size == nil {
		overlay.Size = map[string]interface{}{"width": 800, "height": 200}
	}
	if req.ZIndex != nil {
		overlay.ZIndex = *req.ZIndex
	}
	if overlay.Animation == nil {
		overlay.Animation = map[string]interface{}{
			"enter":    "slideInUp",
			"exit":     "slideOutDown",
			"duration": "0.5s",
		}
	}

	if err := s.overlays.Create(ctx, overlay); err != nil {
		return nil, err
	}
	return s.overlays.GetByID(ctx, overlay.ID)
}

func (s *catalogService) ListOverlays(ctx context.Context, clientID string) ([]domain.Overlay, error) {
	return s.overlays.List(ctx, clientID)
}

func (s *catalogService) GetOverlay(ctx context.Context, id string) (*domain.Overlay, error) {
	if s.cache == nil {
		return s.getOverlayFromRepo(ctx, id)
	}

	key := s.cache.BuildKeyByID(id)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		overlay := cached.Overlay
		return &overlay, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		overlay, err := s.getOverlayFromRepo(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, key, &cache.OverlayCacheResult{Overlay: *overlay}, s.cacheTTL); err != nil {
			l := log.Ctx(ctx)
			l.Warn().Err(err).Str(log.FieldOverlayID, id).Msg("failed to populate overlay cache")
		}
		return overlay, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Overlay), nil
}

func (s *catalogService) getOverlayFromRepo(ctx context.Context, id string) (*domain.Overlay, error) {
	overlay, err := s.overlays.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOverlayNotFound) {
			return nil, ErrOverlayNotFound
		}
		return nil, err
	}
	return overlay, nil
}

func (s *catalogService) UpdateOverlay(ctx context.Context, id string, req *domain.UpdateOverlayRequest) (*domain.Overlay, error) {
	overlay, err := s.getOverlayFromRepo(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		overlay.Name = *req.Name
	}
	if req.Data != nil {
		overlay.Data = req.Data
	}
	if req.IsActive != nil {
		overlay.IsActive = *req.IsActive
	}
	if req.IsVisible != nil {
		overlay.IsVisible = *req.IsVisible
	}
	if req.Position != nil {
		overlay.Position = req.Position
	}
	if req.Size != nil {
		overlay.Size = req.Size
	}
	if req.ZIndex != nil {
		overlay.ZIndex = *req.ZIndex
	}
	if req.Animation != nil {
		overlay.Animation = req.Animation
	}

	if err := s.overlays.Update(ctx, overlay); err != nil {
		if errors.Is(err, repository.ErrOverlayNotFound) {
			return nil, ErrOverlayNotFound
		}
		return nil, err
	}

	s.invalidateOverlay(ctx, id)
	return s.overlays.GetByID(ctx, id)
}

func (s *catalogService) DeleteOverlay(ctx context.Context, id string) error {
	if err := s.overlays.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOverlayNotFound) {
			return ErrOverlayNotFound
		}
		return err
	}
	s.invalidateOverlay(ctx, id)
	return nil
}

func (s *catalogService) invalidateOverlay(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, s.cache.BuildKeyByID(id)); err != nil {
		l := log.Ctx(ctx)
		l.Warn().Err(err).Str(log.FieldOverlayID, id).Msg("failed to invalidate overlay cache")
	}
}
