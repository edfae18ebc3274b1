package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shihan84/cg-overlay/internal/domain"
	"github.com/shihan84/cg-overlay/internal/repository"
	"github.com/shihan84/cg-overlay/internal/service"
)

func newCatalog(t *testing.T) service.CatalogService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.ClientModel{},
		&domain.TemplateModel{},
		&domain.TemplateFieldModel{},
		&domain.OverlayModel{},
	))
	return service.NewCatalogService(
		repository.NewGormClientRepository(db),
		repository.NewGormTemplateRepository(db),
		repository.NewGormOverlayRepository(db),
		nil, 0,
	)
}

func createFixtures(t *testing.T, svc service.CatalogService) (*domain.Client, *domain.Template) {
	t.Helper()
	ctx := context.Background()
	client, err := svc.CreateClient(ctx, &domain.CreateClientRequest{Name: "News Desk"})
	require.NoError(t, err)
	template, err := svc.CreateTemplate(ctx, &domain.CreateTemplateRequest{
		Name:        "Lower Third",
		Type:        domain.TemplateTypeLowerThird,
		Category:    "News",
		HTMLContent: "<div>{{title}}</div>",
		Fields: []domain.TemplateFieldInput{
			{Name: "title", Label: "Title", Type: "TEXT", Required: true},
		},
	})
	require.NoError(t, err)
	return client, template
}

func TestCatalog_CreateOverlayAppliesDefaults(t *testing.T) {
	svc := newCatalog(t)
	ctx := context.Background()
	client, template := createFixtures(t, svc)

	overlay, err := svc.CreateOverlay(ctx, &domain.CreateOverlayRequest{
		ClientID:   client.ID,
		TemplateID: template.ID,
		Name:       "Anchor Intro",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, overlay.ID)
	assert.Equal(t, 1, overlay.ZIndex)
	assert.NotNil(t, overlay.Data)
	assert.Equal(t, float64(800), overlay.Size["width"])
	assert.Equal(t, "slideInUp", overlay.Animation["enter"])
	assert.Equal(t, "slideOutDown", overlay.Animation["exit"])
	assert.Equal(t, "0.5s", overlay.Animation["duration"])
	require.NotNil(t, overlay.Client)
	assert.Equal(t, client.ID, overlay.Client.ID)
	require.NotNil(t, overlay.Template)
	assert.Len(t, overlay.Template.Fields, 1)
}

func TestCatalog_CreateOverlayValidatesReferences(t *testing.T) {
	svc := newCatalog(t)
	ctx := context.Background()
	client, template := createFixtures(t, svc)

	_, err := svc.CreateOverlay(ctx, &domain.CreateOverlayRequest{
		ClientID:   "missing",
		TemplateID: template.ID,
		Name:       "x",
	})
	assert.ErrorIs(t, err, service.ErrClientNotFound)

	_, err = svc.CreateOverlay(ctx, &domain.CreateOverlayRequest{
		ClientID:   client.ID,
		TemplateID: "missing",
		Name:       "x",
	})
	assert.ErrorIs(t, err, service.ErrTemplateNotFound)
}

func TestCatalog_UpdateOverlayPartial(t *testing.T) {
	svc := newCatalog(t)
	ctx := context.Background()
	client, template := createFixtures(t, svc)

	overlay, err := svc.CreateOverlay(ctx, &domain.CreateOverlayRequest{
		ClientID:   client.ID,
		TemplateID: template.ID,
		Name:       "Before",
		Data:       map[string]interface{}{"title": "old"},
	})
	require.NoError(t, err)

	visible := true
	updated, err := svc.UpdateOverlay(ctx, overlay.ID, &domain.UpdateOverlayRequest{
		Data:      map[string]interface{}{"title": "new"},
		IsVisible: &visible,
	})
	require.NoError(t, err)

	// Untouched fields survive the partial update.
	assert.Equal(t, "Before", updated.Name)
	assert.Equal(t, "new", updated.Data["title"])
	assert.True(t, updated.IsVisible)

	_, err = svc.UpdateOverlay(ctx, "missing", &domain.UpdateOverlayRequest{})
	assert.ErrorIs(t, err, service.ErrOverlayNotFound)
}

func TestCatalog_DeleteOverlay(t *testing.T) {
	svc := newCatalog(t)
	ctx := context.Background()
	client, template := createFixtures(t, svc)

	overlay, err := svc.CreateOverlay(ctx, &domain.CreateOverlayRequest{
		ClientID:   client.ID,
		TemplateID: template.ID,
		Name:       "gone soon",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOverlay(ctx, overlay.ID))
	_, err = svc.GetOverlay(ctx, overlay.ID)
	assert.ErrorIs(t, err, service.ErrOverlayNotFound)
	assert.ErrorIs(t, svc.DeleteOverlay(ctx, overlay.ID), service.ErrOverlayNotFound)
}

func TestCatalog_ListOverlaysByClient(t *testing.T) {
	svc := newCatalog(t)
	ctx := context.Background()
	client, template := createFixtures(t, svc)
	other, err := svc.CreateClient(ctx, &domain.CreateClientRequest{Name: "Other Desk"})
	require.NoError(t, err)

	for _, clientID := range []string{client.ID, client.ID, other.ID} {
		_, err := svc.CreateOverlay(ctx, &domain.CreateOverlayRequest{
			ClientID:   clientID,
			TemplateID: template.ID,
			Name:       "overlay",
		})
		require.NoError(t, err)
	}

	all, err := svc.ListOverlays(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := svc.ListOverlays(ctx, client.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
