package conflict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// applyPositional восстанавливает серверный текст из локального и hunks
func applyPositional(local string, hunks []Hunk) string {
	lines := splitLines(local)
	out := make(map[int]string)
	drop := make(map[int]bool)
	maxLine := len(lines)

	for _, h := range hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case LineRemoved:
				drop[l.Number] = true
			case LineAdded:
				out[l.Number] = l.Text
				maxLine = max(maxLine, l.Number)
			}
		}
	}

	var result []string
	for n := 1; n <= maxLine; n++ {
		if text, ok := out[n]; ok {
			result = append(result, text)
			continue
		}
		if n <= len(lines) && !drop[n] {
			result = append(result, lines[n-1])
		}
	}
	return strings.Join(result, "\n")
}

func TestBuildHunks_NoChanges(t *testing.T) {
	assert.Empty(t, BuildHunks("a\nb", "a\nb", 3))
}

func TestBuildHunks_SingleChangeWithContext(t *testing.T) {
	local := "1\n2\n3\n4\n5\n6\n7"
	server := "1\n2\n3\nX\n5\n6\n7"

	hunks := BuildHunks(local, server, 1)
	require.Len(t, hunks, 1)

	h := hunks[0]
	assert.Equal(t, []HunkLine{
		{Kind: LineContext, Number: 3, Text: "3"},
		{Kind: LineRemoved, Number: 4, Text: "4"},
		{Kind: LineAdded, Number: 4, Text: "X"},
		{Kind: LineContext, Number: 5, Text: "5"},
	}, h.Lines)
	assert.Equal(t, 3, h.LocalStart)
	assert.Equal(t, 3, h.LocalLines)
	assert.Equal(t, 3, h.ServerStart)
	assert.Equal(t, 3, h.ServerLines)
	assert.Equal(t, 1, h.Added())
	assert.Equal(t, 1, h.Removed())
}

func TestBuildHunks_MergeGap(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = string(rune('a' + i))
	}
	local := strings.Join(lines, "\n")

	change := func(idx ...int) string {
		cp := append([]string(nil), lines...)
		for _, i := range idx {
			cp[i] = "X"
		}
		return strings.Join(cp, "\n")
	}

	// ctx=2: разрыв 5 склеивается, 6 уже нет
	assert.Len(t, BuildHunks(local, change(2, 7), 2), 1)
	assert.Len(t, BuildHunks(local, change(2, 8), 2), 2)

	// ctx=0: склеиваются только соседние строки
	assert.Len(t, BuildHunks(local, change(2, 3), 0), 1)
	assert.Len(t, BuildHunks(local, change(2, 4), 0), 2)
}

func TestBuildHunks_LengthMismatch(t *testing.T) {
	hunks := BuildHunks("a", "a\nb\nc", 0)
	require.Len(t, hunks, 1)
	assert.Equal(t, []HunkLine{
		{Kind: LineAdded, Number: 2, Text: "b"},
		{Kind: LineAdded, Number: 3, Text: "c"},
	}, hunks[0].Lines)
	assert.Zero(t, hunks[0].LocalLines)
	assert.Zero(t, hunks[0].LocalStart)
}

func TestBuildHunks_RoundTrip(t *testing.T) {
	cases := []struct{ local, server string }{
		{"a\nb\nc", "a\nB\nc"},
		{"a", "a\nb\nc"},
		{"a\nb\nc", "a"},
		{"# Title\n\npara one\npara two\n\nend", "# Title!\n\npara one\npara 2\n\nend\nappendix"},
		{"", "only server"},
	}

	for _, c := range cases {
		for _, ctx := range []int{0, 1, 3} {
			hunks := BuildHunks(c.local, c.server, ctx)
			assert.Equal(t, c.server, applyPositional(c.local, hunks), "ctx=%d local=%q", ctx, c.local)
		}
	}
}

func TestBuildAlignedHunks_InsertAtTop(t *testing.T) {
	local := "a\nb\nc"
	server := "new\na\nb\nc"

	hunks := BuildAlignedHunks(local, server, 1)
	require.Len(t, hunks, 1)
	assert.Equal(t, []HunkLine{
		{Kind: LineAdded, Number: 1, Text: "new"},
		{Kind: LineContext, Number: 1, Text: "a"},
	}, hunks[0].Lines)
	assert.Equal(t, 1, hunks[0].Added())
	assert.Zero(t, hunks[0].Removed())
}

func TestBuildAlignedHunks_Identical(t *testing.T) {
	assert.Empty(t, BuildAlignedHunks("x\ny", "x\ny", 2))
	assert.Empty(t, BuildAlignedHunks("x\ny", "x\ny\n", 2))
}

func TestBuildAlignedHunks_Replace(t *testing.T) {
	hunks := BuildAlignedHunks("a\nb\nc", "a\nB\nc", 0)
	require.Len(t, hunks, 1)
	assert.Equal(t, []HunkLine{
		{Kind: LineRemoved, Number: 2, Text: "b"},
		{Kind: LineAdded, Number: 2, Text: "B"},
	}, hunks[0].Lines)
}
