package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/exclusive-events/internal/domain"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/content"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	b := content.Defaults()

	assert.Equal(t, "Notre Excellence", b.About.Title)
	assert.Equal(t, "Informations bientôt disponibles.", b.About.Description)
	assert.Empty(t, b.About.Values)
	assert.Equal(t, content.DefaultHeroTitle, b.Hero.Title)
	assert.Equal(t, content.DefaultFooterTagline, b.Footer.Tagline)
}

func TestParse_PartialDocument(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"hero": map[string]any{"title": "Bienvenue", "subtitle": 12.0},
		"about": map[string]any{
			"description": "Depuis 2014.",
			"values": []any{
				map[string]any{"icon": "Crown", "title": "Excellence", "description": "Le meilleur"},
				map[string]any{"icon": "Unknown"},
				"not a value",
			},
		},
		"contact": "not a section",
	}

	b := content.Parse(doc)

	assert.Equal(t, "Bienvenue", b.Hero.Title)
	assert.Equal(t, content.DefaultHeroSubtitle, b.Hero.Subtitle, "wrong type falls back")
	assert.Equal(t, content.DefaultAboutTitle, b.About.Title)
	assert.Equal(t, "Depuis 2014.", b.About.Description)
	assert.Equal(t, content.DefaultContactTitle, b.Contact.Title)

	require.Len(t, b.About.Values, 2)
	assert.Equal(t, domain.IconCrown, b.About.Values[0].Icon)
	assert.Equal(t, content.DefaultValueIcon, b.About.Values[1].Icon)
	assert.Equal(t, content.DefaultValueTitle, b.About.Values[1].Title)
	assert.Equal(t, content.DefaultValueDescription, b.About.Values[1].Description)
}

func TestParse_NonObject(t *testing.T) {
	t.Parallel()

	assert.Equal(t, content.Defaults(), content.Parse([]any{"x"}))
}
