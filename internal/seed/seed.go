// Package seed installs the built-in system templates on first run.
package seed

import (
	"context"

	"github.com/shihan84/cg-overlay/internal/domain"
	"github.com/shihan84/cg-overlay/internal/repository"
	"github.com/shihan84/cg-overlay/pkg/log"
)

// Run seeds the system templates when the templates table is empty.
// Safe to call on every startup.
func Run(ctx context.Context, templates repository.TemplateRepository) error {
	l := log.Ctx(ctx)

	count, err := templates.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		l.Debug().Int64("templates", count).Msg("templates already present, skipping seed")
		return nil
	}

	for _, t := range systemTemplates() {
		t := t
		t.IsSystem = true
		if err := templates.Create(ctx, &t); err != nil {
			return err
		}
		l.Info().Str("template", t.Name).Msg("seeded system template")
	}

	return nil
}

func systemTemplates() []domain.Template {
	return []domain.Template{
		{
			Name:        "Classic Lower Third",
			Description: "Clean and professional lower third for news broadcasts",
			Type:        domain.TemplateTypeLowerThird,
			Category:    "News",
			HTMLContent: `<div class="lower-third">
  <div class="content">
    <h1 class="title">{{title}}</h1>
    <p class="subtitle">{{subtitle}}</p>
    <p class="text">{{text}}</p>
  </div>
  {{#if imageUrl}}
  <div class="image"><img src="{{imageUrl}}" alt="Speaker" /></div>
  {{/if}}
</div>`,
			CSSContent: `.lower-third {
  position: absolute;
  bottom: 50px;
  left: 50px;
  right: 50px;
  background: linear-gradient(135deg, #1e293b 0%, #334155 100%);
  border-radius: 12px;
  padding: 20px 30px;
  color: white;
  display: flex;
  align-items: center;
  justify-content: space-between;
  box-shadow: 0 8px 32px rgba(0, 0, 0, 0.3);
}
.title { font-size: 28px; font-weight: bold; margin: 0 0 8px 0; }
.subtitle { font-size: 18px; margin: 0 0 4px 0; opacity: 0.9; }
.text { font-size: 14px; margin: 0; opacity: 0.7; }
.image img { width: 80px; height: 80px; border-radius: 50%; object-fit: cover; margin-left: 20px; }`,
			Config: map[string]interface{}{
				"animation": map[string]interface{}{
					"enter":    "slideInUp",
					"exit":     "slideOutDown",
					"duration": "0.5s",
				},
			},
			Fields: []domain.TemplateField{
				{Name: "title", Label: "Title", Type: "TEXT", Required: true, DefaultValue: "John Doe"},
				{Name: "subtitle", Label: "Subtitle", Type: "TEXT", DefaultValue: "Senior Correspondent"},
				{Name: "text", Label: "Additional Text", Type: "TEXT", DefaultValue: "Live from the scene"},
				{Name: "imageUrl", Label: "Profile Image URL", Type: "TEXT"},
			},
		},
		{
			Name:        "Breaking News Banner",
			Description: "Animated breaking news template with urgent styling",
			Type:        "BREAKING_NEWS",
			Category:    "News",
			HTMLContent: `<div class="breaking-news">
  <div class="header">
    <div class="pulse-dot"></div>
    <span class="breaking-text">BREAKING NEWS</span>
    <div class="pulse-dot"></div>
  </div>
  <div class="content">
    <h1 class="headline">{{title}}</h1>
    <p class="description">{{text}}</p>
  </div>
</div>`,
			CSSContent: `.breaking-news {
  position: absolute;
  top: 50px;
  left: 50%;
  transform: translateX(-50%);
  background: linear-gradient(135deg, #dc2626 0%, #b91c1c 100%);
  border-radius: 8px;
  padding: 20px 40px;
  color: white;
  text-align: center;
  min-width: 400px;
}
.header { display: flex; align-items: center; justify-content: center; margin-bottom: 15px; }
.pulse-dot { width: 8px; height: 8px; background: white; border-radius: 50%; animation: pulse 1.5s infinite; }
.breaking-text { font-size: 14px; font-weight: bold; letter-spacing: 2px; margin: 0 12px; }
.headline { font-size: 24px; font-weight: bold; margin: 0 0 8px 0; }
.description { font-size: 16px; margin: 0; opacity: 0.9; }
@keyframes pulse { 0%, 100% { opacity: 1; } 50% { opacity: 0.3; } }`,
			Config: map[string]interface{}{
				"animation": map[string]interface{}{
					"enter":    "slideInDown",
					"exit":     "slideOutUp",
					"duration": "0.5s",
				},
			},
			Fields: []domain.TemplateField{
				{Name: "title", Label: "Headline", Type: "TEXT", Required: true, DefaultValue: "Major Story Developing"},
				{Name: "text", Label: "Description", Type: "TEXT", DefaultValue: "More details as they come in"},
			},
		},
	}
}
