package state_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shihan84/cg-overlay/internal/domain"
	"github.com/shihan84/cg-overlay/internal/state"
)

func TestStore_ContentDefaults(t *testing.T) {
	s := state.NewStore()

	data := s.Content("never-written")
	require.NotNil(t, data)
	assert.Empty(t, data)
	assert.False(t, data.Visible())
}

func TestStore_ConfigDefaults(t *testing.T) {
	s := state.NewStore()

	cfg := s.Config("never-written")
	assert.Equal(t, domain.TemplateTypeLowerThird, cfg.Type)
	assert.Equal(t, "16px", cfg.Style.FontSize)
	assert.Equal(t, "Arial, sans-serif", cfg.Style.FontFamily)
	assert.Equal(t, "bold", cfg.Style.FontWeight)
	assert.Equal(t, "12px 24px", cfg.Style.Padding)
	assert.Equal(t, "8px", cfg.Style.BorderRadius)
	assert.Equal(t, "rgba(0, 0, 0, 0.8)", cfg.Style.BackgroundColor)
	assert.Equal(t, "white", cfg.Style.Color)
	assert.Equal(t, "slideInUp", cfg.Animation.Enter)
	assert.Equal(t, "slideOutDown", cfg.Animation.Exit)
	assert.Equal(t, "0.5s", cfg.Animation.Duration)
}

func TestStore_SetContentReplaces(t *testing.T) {
	s := state.NewStore()

	s.SetContent("ov1", domain.OverlayData{"title": "Hello", "subtitle": "World"})
	s.SetContent("ov1", domain.OverlayData{"title": "Replaced"})

	data := s.Content("ov1")
	assert.Equal(t, "Replaced", data["title"])
	// Replacement semantics: the previous subtitle is gone.
	assert.NotContains(t, data, "subtitle")
}

func TestStore_ContentIsCopied(t *testing.T) {
	s := state.NewStore()
	s.SetContent("ov1", domain.OverlayData{"title": "Hello"})

	data := s.Content("ov1")
	data["title"] = "mutated"

	assert.Equal(t, "Hello", s.Content("ov1")["title"])
}

func TestStore_SetVisible(t *testing.T) {
	s := state.NewStore()
	s.SetContent("ov1", domain.OverlayData{"title": "Hello"})

	result := s.SetVisible("ov1", true)
	assert.True(t, result.Visible())
	assert.Equal(t, "Hello", result["title"])
	assert.True(t, s.Content("ov1").Visible())

	s.SetVisible("ov1", false)
	assert.False(t, s.Content("ov1").Visible())
}

func TestStore_SetVisibleOnUnsetOverlay(t *testing.T) {
	s := state.NewStore()

	result := s.SetVisible("fresh", true)
	assert.True(t, result.Visible())
	assert.True(t, s.Content("fresh").Visible())
}

func TestStore_SetConfigReplaces(t *testing.T) {
	s := state.NewStore()

	cfg := domain.TemplateConfig{
		Type:      "BREAKING_NEWS",
		Style:     domain.TemplateStyle{Color: "red"},
		Animation: domain.AnimationConfig{Enter: "fadeIn", Exit: "fadeOut", Duration: "1s"},
	}
	s.SetConfig("ov1", cfg)

	got := s.Config("ov1")
	assert.Equal(t, cfg, got)

	// Other ids are unaffected.
	assert.Equal(t, domain.TemplateTypeLowerThird, s.Config("ov2").Type)
}

func TestStore_ConcurrentToggles(t *testing.T) {
	s := state.NewStore()
	s.SetContent("ov1", domain.OverlayData{"title": "Hello"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetVisible("ov1", true)
		}()
		go func() {
			defer wg.Done()
			s.SetVisible("ov1", false)
		}()
	}
	wg.Wait()

	// The flag lands on one of the written values and the rest of the
	// content is intact.
	data := s.Content("ov1")
	_, ok := data[domain.FieldVisible].(bool)
	assert.True(t, ok)
	assert.Equal(t, "Hello", data["title"])
}
