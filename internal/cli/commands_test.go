package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinktandem/seocheck/internal/config"
	"github.com/thinktandem/seocheck/pkg/seocheck"
)

func resetCheckFlags() {
	checkFlags = checkFlagValues{configDir: ".", output: "text"}
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
}

// runCheckIn runs the check command against a fresh project and returns
// stdout, stderr and the command error.
func runCheckIn(t *testing.T, cfg string, content map[string]string, output string) (string, string, error) {
	t.Helper()
	resetCheckFlags()
	t.Setenv(config.EnvCanonicalBase, "")

	project := t.TempDir()
	if cfg != "" {
		writeFiles(t, project, map[string]string{seocheck.ConfigFileName: cfg})
	}
	contentDir := filepath.Join(project, "src")
	writeFiles(t, contentDir, content)

	checkFlags.configDir = project
	if output != "" {
		checkFlags.output = output
	}

	var stdout, stderr bytes.Buffer
	checkCmd.SetOut(&stdout)
	checkCmd.SetErr(&stderr)
	defer func() {
		checkCmd.SetOut(nil)
		checkCmd.SetErr(nil)
	}()

	err := runCheck(checkCmd, []string{contentDir})
	return stdout.String(), stderr.String(), err
}

const siteConfig = `canonicalBase: https://example.com
ogp:
  defaultImage: /images/og.png
seo:
  description: summary
`

func TestCheckCmd_ArgsValidation(t *testing.T) {
	err := checkCmd.Args(checkCmd, []string{})
	require.Error(t, err)
	assert.Equal(t, seocheck.ExitUsageError, seocheck.ExitCodeForError(err))

	err = checkCmd.Args(checkCmd, []string{"a", "b"})
	assert.Error(t, err)
}

func TestCheckCmd_PassesAndReportsJSON(t *testing.T) {
	stdout, stderr, err := runCheckIn(t, siteConfig, map[string]string{
		"index.md":      "---\ntitle: Home\nsummary: <p>Welcome <b>home</b></p>\n---\n",
		"blog/post.md":  "---\ntitle: Post\nimage: /img/post.png\n---\nBody",
		"assets/app.js": "console.log(1)",
	}, "json")
	require.NoError(t, err)

	var pages []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &pages))
	require.Len(t, pages, 2)

	assert.Equal(t, "blog/post.md", pages[0]["file"])
	twitter := pages[0]["twitter"].(map[string]any)
	assert.Equal(t, "https://thinktandem.io/img/post.png", twitter["image"])

	assert.Equal(t, "index.md", pages[1]["file"])
	seo := pages[1]["seo"].(map[string]any)
	assert.Equal(t, "https://example.com/", seo["canonical"])
	assert.Equal(t, "Welcome home", seo["description"])

	assert.Contains(t, stderr, "2 of 3 files inspected")
}

func TestCheckCmd_ValidationFailure(t *testing.T) {
	_, stderr, err := runCheckIn(t, "canonicalBase: https://example.com\n", map[string]string{
		"a.md": "---\ntitle: No image anywhere\n---\n",
	}, "")
	require.Error(t, err)

	var verr *seocheck.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, seocheck.KindMissingOgpImage, verr.Kind)
	assert.Equal(t, "a.md", verr.File)
	assert.Equal(t, seocheck.ExitValidationFailed, seocheck.ExitCodeForError(err))
	assert.Contains(t, stderr, "SEO check failed")
}

func TestCheckCmd_HTMLContent(t *testing.T) {
	stdout, _, err := runCheckIn(t, siteConfig, map[string]string{
		"about.html": `<html><head><title>About</title><meta property="og:image" content="/og/about.png"></head></html>`,
	}, "yaml")
	require.NoError(t, err)

	assert.Contains(t, stdout, "canonical: https://example.com/about.html")
	assert.Contains(t, stdout, "image: /og/about.png")
	assert.Contains(t, stdout, "image: https://thinktandem.io/og/about.png")
}

func TestCheckCmd_CanonicalBaseFlagWins(t *testing.T) {
	resetCheckFlags()
	project := t.TempDir()
	writeFiles(t, project, map[string]string{
		seocheck.ConfigFileName: siteConfig,
		"src/index.md":          "---\ntitle: Home\n---\n",
	})
	t.Setenv(config.EnvCanonicalBase, "https://env.example")

	checkFlags.configDir = project
	checkFlags.output = "json"
	checkFlags.canonicalBase = "https://flag.example"

	var stdout bytes.Buffer
	checkCmd.SetOut(&stdout)
	checkCmd.SetErr(&bytes.Buffer{})
	defer func() {
		checkCmd.SetOut(nil)
		checkCmd.SetErr(nil)
	}()

	require.NoError(t, runCheck(checkCmd, []string{filepath.Join(project, "src")}))
	assert.Contains(t, stdout.String(), "https://flag.example/")
}

func TestCheckCmd_InvalidConfig(t *testing.T) {
	_, _, err := runCheckIn(t, "toInspect: '[broken'\n", map[string]string{"a.md": ""}, "")
	require.Error(t, err)
	assert.Equal(t, seocheck.ExitConfigError, seocheck.ExitCodeForError(err))
}

func TestCheckCmd_UnparsableConfig(t *testing.T) {
	_, _, err := runCheckIn(t, "lengths: [1, 2]\n", map[string]string{"a.md": ""}, "")
	require.Error(t, err)
	assert.Equal(t, seocheck.ExitConfigError, seocheck.ExitCodeForError(err))
}

func TestCheckCmd_BadOutputFormat(t *testing.T) {
	_, _, err := runCheckIn(t, "", map[string]string{"a.md": ""}, "xml")
	require.Error(t, err)
	assert.Equal(t, seocheck.ExitConfigError, seocheck.ExitCodeForError(err))
}

func TestCheckCmd_NonexistentPath(t *testing.T) {
	resetCheckFlags()
	checkFlags.configDir = t.TempDir()
	checkCmd.SetErr(&bytes.Buffer{})
	defer checkCmd.SetErr(nil)

	err := runCheck(checkCmd, []string{"/nonexistent/path/abc123"})
	assert.Error(t, err)
}

func TestCheckCmd_DotEnvInConfigDir(t *testing.T) {
	resetCheckFlags()
	project := t.TempDir()
	writeFiles(t, project, map[string]string{
		".env":                  config.EnvCanonicalBase + "=https://dotenv.example\n",
		seocheck.ConfigFileName: "ogp:\n  ignoreMissingImage: true\n",
		"src/page.md":           "---\ntitle: Page\n---\n",
	})
	t.Setenv(config.EnvCanonicalBase, "")
	os.Unsetenv(config.EnvCanonicalBase)

	checkFlags.configDir = project
	checkFlags.output = "json"

	var stdout bytes.Buffer
	checkCmd.SetOut(&stdout)
	checkCmd.SetErr(&bytes.Buffer{})
	defer func() {
		checkCmd.SetOut(nil)
		checkCmd.SetErr(nil)
	}()

	require.NoError(t, runCheck(checkCmd, []string{filepath.Join(project, "src")}))
	assert.Contains(t, stdout.String(), "https://dotenv.example/page/")
}

func TestInitCmd_ArgsValidation(t *testing.T) {
	assert.NoError(t, initCmd.Args(initCmd, []string{}))
	assert.Error(t, initCmd.Args(initCmd, []string{"a", "b"}))
}

func TestInitCmd_WritesAndRefusesOverwrite(t *testing.T) {
	initFlags = initFlagValues{}
	dir := filepath.Join(t.TempDir(), "site")
	initCmd.SetErr(&bytes.Buffer{})
	defer initCmd.SetErr(nil)

	require.NoError(t, runInit(initCmd, []string{dir}))

	data, err := os.ReadFile(filepath.Join(dir, seocheck.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, config.Template, string(data))

	err = runInit(initCmd, []string{dir})
	assert.ErrorIs(t, err, config.ErrConfigExists)
}

func TestInitCmd_FlagValues(t *testing.T) {
	initFlags = initFlagValues{values: config.TemplateValues{CanonicalBase: "https://example.com"}}
	defer func() { initFlags = initFlagValues{} }()

	dir := t.TempDir()
	initCmd.SetErr(&bytes.Buffer{})
	defer initCmd.SetErr(nil)

	require.NoError(t, runInit(initCmd, []string{dir}))

	loaded, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", loaded.CanonicalBase)
}

func TestShouldPrompt(t *testing.T) {
	defer func() { initFlags = initFlagValues{} }()

	initFlags = initFlagValues{noInput: true}
	assert.False(t, shouldPrompt(config.TemplateValues{}))

	initFlags = initFlagValues{}
	assert.False(t, shouldPrompt(config.TemplateValues{TwitterSite: "@x"}))
	assert.False(t, shouldPrompt(config.TemplateValues{}), "tests do not run in a terminal")
}

func TestVersion_Output(t *testing.T) {
	var buf bytes.Buffer
	printVersionInfo(&buf)
	assert.Contains(t, buf.String(), "seocheck ")
}

func TestResolveVersionInfo_LdflagsOverride(t *testing.T) {
	original := version
	defer func() { version = original }()

	version = "1.2.3"
	v, _, _ := resolveVersionInfo()
	assert.Equal(t, "1.2.3", v)
}

func TestCompleteOutputFormats(t *testing.T) {
	got, directive := completeOutputFormats(checkCmd, nil, "")
	assert.Equal(t, []string{"text", "json", "yaml"}, got)
	assert.NotZero(t, directive)
}

func runConfigIn(t *testing.T, dir string) string {
	t.Helper()
	configFlags = configFlagValues{configDir: dir}
	defer func() { configFlags = configFlagValues{configDir: "."} }()

	var stdout bytes.Buffer
	configCmd.SetOut(&stdout)
	defer configCmd.SetOut(nil)

	require.NoError(t, runConfig(configCmd, nil))
	return stdout.String()
}

func TestConfigCmd_PrintsEffectiveConfig(t *testing.T) {
	t.Setenv(config.EnvCanonicalBase, "")
	project := t.TempDir()
	writeFiles(t, project, map[string]string{seocheck.ConfigFileName: `lengths:
  summary: 300
  title: 10
values:
  description: true
  author: Tandem
seo:
  robots: ""
ogp:
  defaultImage: false
`})

	out := runConfigIn(t, project)

	assert.Contains(t, out, "lengths:\n  summary: 300\n  title: 10\n  description: 160\n")
	assert.Contains(t, out, "values:\n  description: true\n  author: Tandem\n")
	assert.Contains(t, out, "robots: \"\"")
	assert.NotContains(t, out, "defaultImage")

	want, err := config.Resolve(project)
	require.NoError(t, err)

	roundTrip := t.TempDir()
	writeFiles(t, roundTrip, map[string]string{seocheck.ConfigFileName: out})
	got, err := config.Resolve(roundTrip)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
