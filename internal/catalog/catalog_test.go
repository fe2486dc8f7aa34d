package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tapconnect/internal/errors"
)

func TestDefault_IsValid(t *testing.T) {
	c := Default()

	require.NoError(t, c.Validate())
	assert.Equal(t, "TapConnect", c.Brand)
	assert.Equal(t, []string{"Matte Black", "Frosted Clear", "Gold Foil"}, c.StyleNames())
	assert.Equal(t, []string{"Basic", "Pro", "Team"}, c.PlanNames())
	assert.Len(t, c.Features, 6)
	assert.Len(t, c.Steps, 3)
	assert.Len(t, c.DemoProfiles, 3)
	assert.Len(t, c.Testimonials, 3)
}

func TestDefault_ReturnsIndependentValues(t *testing.T) {
	a := Default()
	b := Default()

	a.CardStyles[0].Title = "Changed"

	assert.Equal(t, "Matte Black", b.CardStyles[0].Title)
}

func TestCatalog_Defaults(t *testing.T) {
	c := Default()

	assert.Equal(t, "Matte Black", c.DefaultStyle())
	assert.Equal(t, "Pro", c.FeaturedPlan())
	assert.True(t, c.IsFeatured("Pro"))
	assert.False(t, c.IsFeatured("Basic"))
	assert.False(t, c.IsFeatured(""))
}

func TestCatalog_FeaturedPlan_FallsBackToFirstTier(t *testing.T) {
	c := &Catalog{
		Pricing: []PricingTier{{Plan: "Solo"}, {Plan: "Duo"}},
	}

	assert.Equal(t, "Solo", c.FeaturedPlan())
}

func TestCatalog_EmptyChoices(t *testing.T) {
	c := &Catalog{}

	assert.Equal(t, "", c.DefaultStyle())
	assert.Equal(t, "", c.FeaturedPlan())
	assert.Empty(t, c.StyleNames())
}

func TestCatalog_Membership(t *testing.T) {
	c := Default()

	assert.True(t, c.HasStyle("Gold Foil"))
	assert.False(t, c.HasStyle("gold foil"))
	assert.True(t, c.HasPlan("Team"))
	assert.False(t, c.HasPlan("Enterprise"))
}

func TestCatalog_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Catalog)
		wantField string
	}{
		{
			name:      "missing brand",
			mutate:    func(c *Catalog) { c.Brand = " " },
			wantField: "brand",
		},
		{
			name:      "no card styles",
			mutate:    func(c *Catalog) { c.CardStyles = nil },
			wantField: "cardStyles",
		},
		{
			name:      "duplicate style",
			mutate:    func(c *Catalog) { c.CardStyles[1].Title = c.CardStyles[0].Title },
			wantField: "cardStyles[1].title",
		},
		{
			name:      "empty plan",
			mutate:    func(c *Catalog) { c.Pricing[2].Plan = "" },
			wantField: "pricing[2].plan",
		},
		{
			name:      "two popular tiers",
			mutate:    func(c *Catalog) { c.Pricing[0].Popular = true },
			wantField: "pricing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)

			err := c.Validate()
			require.Error(t, err)

			ve, ok := apperrors.IsValidationError(err)
			require.True(t, ok)
			fields := make([]string, 0, len(ve.Details))
			for _, d := range ve.Details {
				fields = append(fields, d.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
brand: TapConnect
contactEmail: hello@tapconnect.demo
cardStyles:
  - title: Walnut
    image: /img/walnut.jpg
  - title: Steel
pricing:
  - plan: Starter
    price: 30
    period: one-time
  - plan: Studio
    price: 90
    period: bundle
    popular: true
demoProfiles:
  - name: Sample
    url: /demo/sample
`)

	c, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "Walnut", c.DefaultStyle())
	assert.Equal(t, "Studio", c.FeaturedPlan())
	assert.Equal(t, 90, c.Pricing[1].Price)
	assert.Equal(t, "/demo/sample", c.DemoProfiles[0].URL)
}

func TestParse_InvalidCatalog(t *testing.T) {
	_, err := Parse([]byte("brand: TapConnect\n"))

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("brand: [unterminated"))

	assert.Error(t, err)
	_, ok := apperrors.IsValidationError(err)
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses default", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), c)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		content := "brand: Acme\ncardStyles:\n  - title: Red\npricing:\n  - plan: One\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Acme", c.Brand)
		assert.Equal(t, "One", c.FeaturedPlan())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
