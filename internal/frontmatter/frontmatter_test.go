package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinktandem/seocheck/pkg/seocheck"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantRec  seocheck.Record
		wantBody string
	}{
		{
			name:     "no front matter",
			content:  "# Title\n\nBody",
			wantRec:  seocheck.Record{},
			wantBody: "# Title\n\nBody",
		},
		{
			name:     "scalars and lists",
			content:  "---\ntitle: Home\nprivate: true\ntags:\n  - go\n  - seo\n---\nHello\n",
			wantRec:  seocheck.Record{"title": "Home", "private": true, "tags": []any{"go", "seo"}},
			wantBody: "Hello\n",
		},
		{
			name:     "nested mapping",
			content:  "---\nseo:\n  description: Short\n---\n",
			wantRec:  seocheck.Record{"seo": map[string]any{"description": "Short"}},
			wantBody: "",
		},
		{
			name:     "empty front matter",
			content:  "---\n---\nBody",
			wantRec:  seocheck.Record{},
			wantBody: "Body",
		},
		{
			name:     "crlf line endings",
			content:  "---\r\ntitle: Win\r\n---\r\nBody\r\n",
			wantRec:  seocheck.Record{"title": "Win"},
			wantBody: "Body\n",
		},
		{
			name:     "closing delimiter at end of file",
			content:  "---\ntitle: End\n---",
			wantRec:  seocheck.Record{"title": "End"},
			wantBody: "",
		},
		{
			name:     "null value",
			content:  "---\nimage:\n---\n",
			wantRec:  seocheck.Record{"image": nil},
			wantBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body, err := Parse([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantRec, rec)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestParse_Unterminated(t *testing.T) {
	_, _, err := Parse([]byte("---\ntitle: Open\n"))
	assert.ErrorIs(t, err, ErrUnterminated)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, _, err := Parse([]byte("---\ntitle: [unclosed\n---\n"))
	assert.Error(t, err)
}

func TestParse_NotAMapping(t *testing.T) {
	_, _, err := Parse([]byte("---\n- a\n- b\n---\n"))
	assert.Error(t, err)
}
