package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shihan84/cg-overlay/internal/domain"
	"github.com/shihan84/cg-overlay/pkg/log"
)

// GormClientRepository implements ClientRepository using GORM.
type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

func (r *GormClientRepository) Create(ctx context.Context, client *domain.Client) error {
	l := log.Ctx(ctx)

	client.ID = uuid.New().String()
	if client.Color == "" {
		client.Color = "#3b82f6"
	}
	client.IsActive = true

	model := domain.ClientToModel(client)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		l.Error().Err(err).Msg("failed to create client in db")
		return err
	}

	client.CreatedAt = model.CreatedAt
	client.UpdatedAt = model.UpdatedAt
	l.Debug().Str(log.FieldClientID, client.ID).Msg("client created in db")
	return nil
}

func (r *GormClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	var model domain.ClientModel
	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, result.Error
	}
	return model.ToDomain(), nil
}

func (r *GormClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	var models []domain.ClientModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	clients := make([]domain.Client, len(models))
	for i, model := range models {
		clients[i] = *model.ToDomain()
	}
	return clients, nil
}

func (r *GormClientRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.ClientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

// GormTemplateRepository implements TemplateRepository using GORM.
type GormTemplateRepository struct {
	db *gorm.DB
}

func NewGormTemplateRepository(db *gorm.DB) *GormTemplateRepository {
	return &GormTemplateRepository{db: db}
}

func (r *GormTemplateRepository) Create(ctx context.Context, template *domain.Template) error {
	l := log.Ctx(ctx)

	template.ID = uuid.New().String()
	template.IsActive = true
	for i := range template.Fields {
		template.Fields[i].ID = uuid.New().String()
		template.Fields[i].TemplateID = template.ID
		template.Fields[i].Order = i
	}

	model := domain.TemplateToModel(template)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		l.Error().Err(err).Msg("failed to create template in db")
		return err
	}

	template.CreatedAt = model.CreatedAt
	l.Debug().Str(log.FieldTemplateID, template.ID).Msg("template created in db")
	return nil
}

func (r *GormTemplateRepository) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	var model domain.TemplateModel
	result := r.db.WithContext(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("field_order ASC")
		}).
		First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, result.Error
	}
	return model.ToDomain(), nil
}

func (r *GormTemplateRepository) List(ctx context.Context, templateType, category string) ([]domain.Template, error) {
	query := r.db.WithContext(ctx).Model(&domain.TemplateModel{}).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("field_order ASC")
		})
	if templateType != "" {
		query = query.Where("type = ?", templateType)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var models []domain.TemplateModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	templates := make([]domain.Template, len(models))
	for i, model := range models {
		templates[i] = *model.ToDomain()
	}
	return templates, nil
}

func (r *GormTemplateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.TemplateModel{}).Count(&count).Error
	return count, err
}

// GormOverlayRepository implements OverlayRepository using GORM.
type GormOverlayRepository struct {
	db *gorm.DB
}

func NewGormOverlayRepository(db *gorm.DB) *GormOverlayRepository {
	return &GormOverlayRepository{db: db}
}

func (r *GormOverlayRepository) Create(ctx context.Context, overlay *domain.Overlay) error {
	l := log.Ctx(ctx)

	overlay.ID = uuid.New().String()
	overlay.IsActive = true

	model := domain.OverlayToModel(overlay)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		l.Error().Err(err).Msg("failed to create overlay in db")
		return err
	}

	overlay.CreatedAt = model.CreatedAt
	overlay.UpdatedAt = model.UpdatedAt
	l.Debug().Str(log.FieldOverlayID, overlay.ID).Msg("overlay created in db")
	return nil
}

func (r *GormOverlayRepository) GetByID(ctx context.Context, id string) (*domain.Overlay, error) {
	var model domain.OverlayModel
	result := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Template.Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("field_order ASC")
		}).
		Preload("Template").
		First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOverlayNotFound
		}
		return nil, result.Error
	}
	return model.ToDomain(), nil
}

func (r *GormOverlayRepository) List(ctx context.Context, clientID string) ([]domain.Overlay, error) {
	query := r.db.WithContext(ctx).Model(&domain.OverlayModel{}).
		Preload("Client").
		Preload("Template")
	if clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	var models []domain.OverlayModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	overlays := make([]domain.Overlay, len(models))
	for i, model := range models {
		overlays[i] = *model.ToDomain()
	}
	return overlays, nil
}

func (r *GormOverlayRepository) Update(ctx context.Context, overlay *domain.Overlay) error {
	model := domain.OverlayToModel(overlay)
	result := r.db.WithContext(ctx).Model(&domain.OverlayModel{}).
		Where("id = ?", overlay.ID).
		Select("Name", "Data", "Position", "Size", "ZIndex", "IsActive", "IsVisible", "Animation").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOverlayNotFound
	}
	return nil
}

func (r *GormOverlayRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.OverlayModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOverlayNotFound
	}
	return nil
}
