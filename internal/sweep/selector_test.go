package sweep

import (
	"testing"

	"github.com/deploysweep-dev/deploysweep/internal/config"
	"github.com/deploysweep-dev/deploysweep/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCriteria(t *testing.T, types, names, exclude []string, pattern string, includeDev, includeProd bool) Criteria {
	t.Helper()
	c, err := NewCriteria(types, names, exclude, pattern, includeDev, includeProd)
	require.NoError(t, err)
	return c
}

func TestIsCandidate(t *testing.T) {
	preview := models.Deployment{Name: "web-pr-12", Type: models.TypePreview}
	dev := models.Deployment{Name: "web-dev", Type: models.TypeDev}
	prod := models.Deployment{Name: "web", Type: models.TypeProd, IsDefault: true}

	tests := []struct {
		name     string
		d        models.Deployment
		c        Criteria
		selected bool
	}{
		{
			name:     "preview selected by defaults",
			d:        preview,
			c:        mustCriteria(t, nil, nil, nil, "", false, false),
			selected: true,
		},
		{
			name:     "type not targeted",
			d:        dev,
			c:        mustCriteria(t, nil, nil, nil, "", true, false),
			selected: false,
		},
		{
			name:     "dev targeted but not unlocked",
			d:        dev,
			c:        mustCriteria(t, []string{"dev"}, nil, nil, "", false, false),
			selected: false,
		},
		{
			name:     "dev targeted and unlocked",
			d:        dev,
			c:        mustCriteria(t, []string{"dev"}, nil, nil, "", true, false),
			selected: true,
		},
		{
			name:     "prod targeted but not unlocked",
			d:        prod,
			c:        mustCriteria(t, []string{"prod"}, nil, nil, "", false, false),
			selected: false,
		},
		{
			name:     "prod needs its own flag even with include-dev",
			d:        prod,
			c:        mustCriteria(t, []string{"prod"}, nil, nil, "", true, false),
			selected: false,
		},
		{
			name:     "prod targeted and unlocked, default flag is no gate",
			d:        prod,
			c:        mustCriteria(t, []string{"prod"}, nil, nil, "", false, true),
			selected: true,
		},
		{
			name:     "names filter mismatch",
			d:        preview,
			c:        mustCriteria(t, nil, []string{"other"}, nil, "", false, false),
			selected: false,
		},
		{
			name:     "names filter match",
			d:        preview,
			c:        mustCriteria(t, nil, []string{"web-pr-12"}, nil, "", false, false),
			selected: true,
		},
		{
			name:     "excluded name always kept",
			d:        preview,
			c:        mustCriteria(t, nil, []string{"web-pr-12"}, []string{"web-pr-12"}, "", false, false),
			selected: false,
		},
		{
			name:     "pattern is a substring search",
			d:        preview,
			c:        mustCriteria(t, nil, nil, nil, "pr-", false, false),
			selected: true,
		},
		{
			name:     "pattern mismatch",
			d:        preview,
			c:        mustCriteria(t, nil, nil, nil, "^pr-", false, false),
			selected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsCandidate(tt.d, tt.c)
			assert.Equal(t, tt.selected, got)

			// pure function: repeated evaluation is stable
			assert.Equal(t, got, IsCandidate(tt.d, tt.c))
		})
	}
}

func TestNewCriteriaDefaultsToPreview(t *testing.T) {
	c := mustCriteria(t, nil, nil, nil, "", false, false)
	assert.True(t, c.Types[models.TypePreview])
	assert.False(t, c.Types[models.TypeDev])
	assert.False(t, c.Types[models.TypeProd])
	assert.Nil(t, c.Match)
}

func TestNewCriteriaRejectsInvalidInput(t *testing.T) {
	var cfgErr *config.ConfigError

	_, err := NewCriteria([]string{"staging"}, nil, nil, "", false, false)
	require.ErrorAs(t, err, &cfgErr)

	_, err = NewCriteria(nil, nil, nil, "[unclosed", false, false)
	require.ErrorAs(t, err, &cfgErr)
}
