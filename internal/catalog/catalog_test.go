package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threadcount/threadcount/internal/model"
)

func TestBuiltinIsValid(t *testing.T) {
	templates := Builtin()
	require.NotEmpty(t, templates)

	for _, tmpl := range templates {
		assert.NoError(t, tmpl.Validate(), "template %s", tmpl.ID)
		assert.Equal(t, tmpl.TotalItems, len(tmpl.Items), "template %s declared count", tmpl.ID)
	}
}

func TestBuiltinContainsKnownTemplates(t *testing.T) {
	templates := Builtin()

	for _, id := range []string{"minimalist-essentials", "workweek-professional", "weekend-athleisure", "four-season-mix"} {
		_, err := ByID(templates, id)
		assert.NoError(t, err)
	}

	_, err := ByID(templates, "no-such-template")
	assert.Error(t, err)
}

func TestLoadDefaultsToBuiltin(t *testing.T) {
	templates, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, len(Builtin()), len(templates))
}

func TestLoadFromFile(t *testing.T) {
	catalogJSON := `[
		{
			"id": "custom",
			"name": "Custom Capsule",
			"composition": "pants-shirts",
			"total_items": 1,
			"total_outfits": 1,
			"categories": ["top"],
			"style_types": ["casual"],
			"items": [
				{"id": "only", "category": "top", "description": "White crew neck t-shirt", "color": "white", "essential": true}
			]
		}
	]`

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0600))

	templates, err := Load(path)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "custom", templates[0].ID)
	assert.Equal(t, model.CategoryTop, templates[0].Items[0].Category)
}

func TestLoadRejectsCountMismatch(t *testing.T) {
	catalogJSON := `[
		{
			"id": "broken",
			"name": "Broken Capsule",
			"composition": "mixed",
			"total_items": 5,
			"categories": ["top"],
			"items": [
				{"id": "only", "category": "top", "description": "White tee", "color": "white"}
			]
		}
	]`

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares 5 items but contains 1")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestBuiltinReturnsCopy(t *testing.T) {
	first := Builtin()
	first[0].Name = "mutated"

	assert.NotEqual(t, "mutated", Builtin()[0].Name)
}
