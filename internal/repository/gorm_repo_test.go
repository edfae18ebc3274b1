package repository_test

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
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedClient(t *testing.T, repo repository.ClientRepository) *domain.Client {
	t.Helper()
	client := &domain.Client{Name: "News Desk"}
	require.NoError(t, repo.Create(context.Background(), client))
	return client
}

func seedTemplate(t *testing.T, repo repository.TemplateRepository) *domain.Template {
	t.Helper()
	template := &domain.Template{
		Name:        "Lower Third",
		Type:        domain.TemplateTypeLowerThird,
		Category:    "News",
		HTMLContent: "<div>{{title}}</div>",
		Fields: []domain.TemplateField{
			{Name: "title", Label: "Title", Type: "TEXT", Required: true},
			{Name: "subtitle", Label: "Subtitle", Type: "TEXT"},
		},
	}
	require.NoError(t, repo.Create(context.Background(), template))
	return template
}

func TestClientRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormClientRepository(db)
	ctx := context.Background()

	client := &domain.Client{Name: "Sports Channel", Description: "weekend coverage"}
	require.NoError(t, repo.Create(ctx, client))
	require.NotEmpty(t, client.ID)
	assert.Equal(t, "#3b82f6", client.Color)
	assert.True(t, client.IsActive)

	got, err := repo.GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sports Channel", got.Name)
	assert.Equal(t, "weekend coverage", got.Description)
}

func TestClientRepository_GetMissing(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormClientRepository(db)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, repository.ErrClientNotFound)
}

func TestClientRepository_ListAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormClientRepository(db)
	ctx := context.Background()

	a := &domain.Client{Name: "A"}
	b := &domain.Client{Name: "B"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	clients, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 2)

	require.NoError(t, repo.Delete(ctx, a.ID))
	clients, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 1)

	assert.ErrorIs(t, repo.Delete(ctx, a.ID), repository.ErrClientNotFound)
}

func TestTemplateRepository_CreateAssignsFieldOrder(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormTemplateRepository(db)

	template := seedTemplate(t, repo)
	require.NotEmpty(t, template.ID)

	got, err := repo.GetByID(context.Background(), template.ID)
	require.NoError(t, err)
	require.Len(t, got.Fields, 2)
	assert.Equal(t, "title", got.Fields[0].Name)
	assert.Equal(t, 0, got.Fields[0].Order)
	assert.Equal(t, "subtitle", got.Fields[1].Name)
	assert.Equal(t, 1, got.Fields[1].Order)
	assert.Equal(t, template.ID, got.Fields[0].TemplateID)
}

func TestTemplateRepository_ListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormTemplateRepository(db)
	ctx := context.Background()

	seedTemplate(t, repo)
	other := &domain.Template{
		Name:        "Breaking Banner",
		Type:        "BREAKING_NEWS",
		Category:    "News",
		HTMLContent: "<div>{{title}}</div>",
	}
	require.NoError(t, repo.Create(ctx, other))

	all, err := repo.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	lowerThirds, err := repo.List(ctx, domain.TemplateTypeLowerThird, "")
	require.NoError(t, err)
	require.Len(t, lowerThirds, 1)
	assert.Equal(t, "Lower Third", lowerThirds[0].Name)

	none, err := repo.List(ctx, "SCOREBOARD", "")
	require.NoError(t, err)
	assert.Empty(t, none)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestTemplateRepository_GetMissing(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormTemplateRepository(db)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, repository.ErrTemplateNotFound)
}

func TestOverlayRepository_CreateGetPreloads(t *testing.T) {
	db := newTestDB(t)
	clients := repository.NewGormClientRepository(db)
	templates := repository.NewGormTemplateRepository(db)
	overlays := repository.NewGormOverlayRepository(db)
	ctx := context.Background()

	client := seedClient(t, clients)
	template := seedTemplate(t, templates)

	overlay := &domain.Overlay{
		ClientID:   client.ID,
		TemplateID: template.ID,
		Name:       "Anchor Intro",
		Data:       map[string]interface{}{"title": "Jane Smith"},
		Position:   map[string]interface{}{"x": float64(0), "y": float64(0)},
		Size:       map[string]interface{}{"width": float64(800), "height": float64(200)},
		ZIndex:     1,
	}
	require.NoError(t, overlays.Create(ctx, overlay))
	require.NotEmpty(t, overlay.ID)

	got, err := overlays.GetByID(ctx, overlay.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anchor Intro", got.Name)
	assert.Equal(t, "Jane Smith", got.Data["title"])

	require.NotNil(t, got.Client)
	assert.Equal(t, client.Name, got.Client.Name)
	require.NotNil(t, got.Template)
	assert.Equal(t, template.Name, got.Template.Name)
	assert.Len(t, got.Template.Fields, 2)
}

func TestOverlayRepository_ListByClient(t *testing.T) {
	db := newTestDB(t)
	clients := repository.NewGormClientRepository(db)
	templates := repository.NewGormTemplateRepository(db)
	overlays := repository.NewGormOverlayRepository(db)
	ctx := context.Background()

	a := seedClient(t, clients)
	b := &domain.Client{Name: "Other Desk"}
	require.NoError(t, clients.Create(ctx, b))
	template := seedTemplate(t, templates)

	for _, clientID := range []string{a.ID, a.ID, b.ID} {
		require.NoError(t, overlays.Create(ctx, &domain.Overlay{
			ClientID:   clientID,
			TemplateID: template.ID,
			Name:       "overlay",
		}))
	}

	all, err := overlays.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := overlays.List(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestOverlayRepository_Update(t *testing.T) {
	db := newTestDB(t)
	clients := repository.NewGormClientRepository(db)
	templates := repository.NewGormTemplateRepository(db)
	overlays := repository.NewGormOverlayRepository(db)
	ctx := context.Background()

	client := seedClient(t, clients)
	template := seedTemplate(t, templates)

	overlay := &domain.Overlay{
		ClientID:   client.ID,
		TemplateID: template.ID,
		Name:       "Before",
		Data:       map[string]interface{}{"title": "old"},
	}
	require.NoError(t, overlays.Create(ctx, overlay))

	overlay.Name = "After"
	overlay.Data = map[string]interface{}{"title": "new"}
	overlay.IsVisible = true
	require.NoError(t, overlays.Update(ctx, overlay))

	got, err := overlays.GetByID(ctx, overlay.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
	assert.Equal(t, "new", got.Data["title"])
	assert.True(t, got.IsVisible)

	missing := &domain.Overlay{ID: "no-such-id", Name: "x"}
	assert.ErrorIs(t, overlays.Update(ctx, missing), repository.ErrOverlayNotFound)
}

func TestOverlayRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	clients := repository.NewGormClientRepository(db)
	templates := repository.NewGormTemplateRepository(db)
	overlays := repository.NewGormOverlayRepository(db)
	ctx := context.Background()

	client := seedClient(t, clients)
	template := seedTemplate(t, templates)

	overlay := &domain.Overlay{ClientID: client.ID, TemplateID: template.ID, Name: "gone soon"}
	require.NoError(t, overlays.Create(ctx, overlay))

	require.NoError(t, overlays.Delete(ctx, overlay.ID))
	_, err := overlays.GetByID(ctx, overlay.ID)
	assert.ErrorIs(t, err, repository.ErrOverlayNotFound)

	assert.ErrorIs(t, overlays.Delete(ctx, overlay.ID), repository.ErrOverlayNotFound)
}
