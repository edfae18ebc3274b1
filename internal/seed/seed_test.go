package seed_test

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
	"github.com/shihan84/cg-overlay/internal/seed"
)

func newTemplateRepo(t *testing.T) repository.TemplateRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.TemplateModel{}, &domain.TemplateFieldModel{}))
	return repository.NewGormTemplateRepository(db)
}

func TestRun_SeedsOnEmptyTable(t *testing.T) {
	repo := newTemplateRepo(t)
	ctx := context.Background()

	require.NoError(t, seed.Run(ctx, repo))

	templates, err := repo.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, templates, 2)
	for _, tpl := range templates {
		assert.True(t, tpl.IsSystem)
		assert.NotEmpty(t, tpl.HTMLContent)
	}

	lowerThirds, err := repo.List(ctx, domain.TemplateTypeLowerThird, "")
	require.NoError(t, err)
	require.Len(t, lowerThirds, 1)
	assert.Equal(t, "Classic Lower Third", lowerThirds[0].Name)
	assert.Len(t, lowerThirds[0].Fields, 4)
}

func TestRun_SkipsWhenTemplatesExist(t *testing.T) {
	repo := newTemplateRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Template{
		Name:        "Custom",
		Type:        "SCOREBOARD",
		Category:    "Sports",
		HTMLContent: "<div></div>",
	}))

	require.NoError(t, seed.Run(ctx, repo))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
