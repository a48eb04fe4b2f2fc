package html_test

import (
	"os"
	"testing"

	"bennypowers.dev/webviewui/internal/parser/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name         string
		fixture      string
		wantElements int
		wantIDs      int
	}{
		{
			// html, head, title, style x2, body, div, script x2
			name:         "styles and scripts",
			fixture:      "testdata/app.html",
			wantElements: 9,
			wantIDs:      0,
		},
		{
			// html, body, p
			name:         "no assets",
			fixture:      "testdata/no-assets.html",
			wantElements: 3,
			wantIDs:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := os.ReadFile(tt.fixture)
			require.NoError(t, err)

			parser := html.AcquireParser()
			defer html.ReleaseParser(parser)

			summary, err := parser.Summarize(string(source))
			require.NoError(t, err)
			assert.Equal(t, tt.wantElements, summary.Elements, "element count")
			assert.Equal(t, tt.wantIDs, summary.IDs, "id count")
		})
	}
}

func TestSummarizeIDs(t *testing.T) {
	parser := html.AcquireParser()
	defer html.ReleaseParser(parser)

	summary, err := parser.Summarize(`<body><div id="app"><span id="speed" class="x"></span></div></body>`)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Elements)
	assert.Equal(t, 2, summary.IDs)
}
