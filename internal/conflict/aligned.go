package conflict

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// BuildAlignedHunks строит hunks той же формы, что BuildHunks, но строки
// выравниваются line-mode диффом, поэтому вставка в начале документа дает
// один hunk с одной добавленной строкой, а не сдвиг всего текста.
func BuildAlignedHunks(local, server string, contextLines int) []Hunk {
	dmp := diffmatchpatch.New()

	a, b, lineArray := dmp.DiffLinesToChars(withTrailingNewline(local), withTrailingNewline(server))
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var rows []row
	localNo, serverNo := 0, 0
	for _, d := range diffs {
		for _, line := range diffLines(d.Text) {
			text := line
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				localNo++
				serverNo++
				rows = append(rows, row{local: &text, server: &text, localNo: localNo, serverNo: serverNo, unchanged: true})
			case diffmatchpatch.DiffDelete:
				localNo++
				rows = append(rows, row{local: &text, localNo: localNo})
			case diffmatchpatch.DiffInsert:
				serverNo++
				rows = append(rows, row{server: &text, serverNo: serverNo})
			}
		}
	}

	return groupRows(rows, contextLines)
}

// withTrailingNewline нужен, чтобы последняя строка без "\n" совпадала
// с такой же строкой в середине другого текста.
func withTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func diffLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
