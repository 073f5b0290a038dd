package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinktandem/seocheck/pkg/seocheck"
)

func TestWriteTemplate_MatchesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")

	path, err := WriteTemplate(dir, TemplateValues{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, seocheck.ConfigFileName), path)

	loaded, err := Load(dir)
	require.NoError(t, err)

	defaults := Defaults()
	assert.Equal(t, defaults.ToInspect, loaded.ToInspect)
	assert.Equal(t, defaults.TrailingSlash, loaded.TrailingSlash)
	assert.Equal(t, defaults.Lengths, loaded.Lengths)
	assert.Equal(t, defaults.SEO.Robots, loaded.SEO.Robots)
	assert.Equal(t, defaults.OGP.DefaultType, loaded.OGP.DefaultType)
	assert.Nil(t, loaded.OGP.DefaultImage)
	assert.Nil(t, loaded.SEO.Description)
	assert.Nil(t, loaded.SEO.Keywords)
	assert.Equal(t, defaults.OGP.IgnoreMissingImage, loaded.OGP.IgnoreMissingImage)
	assert.Equal(t, defaults.Twitter, loaded.Twitter)
	assert.Equal(t, defaults.Content, loaded.Content)
	assert.Empty(t, loaded.Values)
	assert.Empty(t, loaded.IgnoreFiles)
}

func TestWriteTemplate_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, seocheck.ConfigFileName)
	require.NoError(t, os.WriteFile(existing, []byte("canonicalBase: https://mine.example\n"), 0644))

	_, err := WriteTemplate(dir, TemplateValues{})
	assert.ErrorIs(t, err, ErrConfigExists)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "canonicalBase: https://mine.example\n", string(data))
}

func TestRenderTemplate_FillsValues(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteTemplate(dir, TemplateValues{
		CanonicalBase: "https://example.com",
		DefaultImage:  "/images/og.png",
		TwitterSite:   "@example",
	})
	require.NoError(t, err)

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", loaded.CanonicalBase)
	assert.Equal(t, "/images/og.png", seocheck.StringValue(loaded.OGP.DefaultImage))
	assert.Equal(t, "@example", seocheck.StringValue(loaded.Twitter.Site))
	assert.Equal(t, "https://thinktandem.io", seocheck.StringValue(loaded.Twitter.SiteURL))
}

func TestRenderTemplate_ZeroValuesIsTemplate(t *testing.T) {
	assert.Equal(t, Template, RenderTemplate(TemplateValues{}))
}
