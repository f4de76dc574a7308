package mirror

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/mdkeeper/internal/models"
)

func TestRenderParse(t *testing.T) {
	doc := models.NewDocument("Notes: draft", "", "# Title\n\n---\nbody\n", time.Now())

	raw, err := Render(doc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "id: "+doc.ID)

	fm, body := Parse(raw)
	assert.Equal(t, doc.ID, fm.ID)
	assert.Equal(t, "Notes: draft", fm.Title)
	assert.Equal(t, doc.Content, body)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		id    string
		body  string
	}{
		{name: "no front matter", input: "# hello\n", body: "# hello\n"},
		{name: "front matter", input: "---\nid: abc\n---\ntext", id: "abc", body: "text"},
		{name: "crlf", input: "---\r\nid: abc\r\n---\r\ntext\r\n", id: "abc", body: "text\n"},
		{name: "empty block", input: "---\n---\ntext", body: "text"},
		{name: "unterminated", input: "---\nid: abc\ntext", body: "---\nid: abc\ntext"},
		{name: "invalid yaml", input: "---\nid: [\n---\ntext", body: "---\nid: [\n---\ntext"},
		{name: "empty body", input: "---\nid: abc\n---\n", id: "abc", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body := Parse([]byte(tt.input))
			assert.Equal(t, tt.id, fm.ID)
			assert.Equal(t, tt.body, body)
		})
	}
}
