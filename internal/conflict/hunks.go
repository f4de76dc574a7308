package conflict

// LineKind тип строки в hunk
type LineKind string

const (
	LineAdded   LineKind = "added"
	LineRemoved LineKind = "removed"
	LineContext LineKind = "context"
)

// HunkLine одна строка hunk. Number - 1-based номер строки: для removed и
// context в локальной версии, для added в серверной.
type HunkLine struct {
	Kind   LineKind
	Text   string
	Number int
}

// Hunk непрерывный участок изменений с контекстом
type Hunk struct {
	Lines       []HunkLine
	LocalStart  int // 1-based, 0 если в hunk нет локальных строк
	LocalLines  int
	ServerStart int // 1-based, 0 если в hunk нет серверных строк
	ServerLines int
}

// row одна позиция выравнивания. Для контекстной строки заданы обе стороны
// с одинаковым текстом, для изменения одна или обе.
type row struct {
	local     *string
	server    *string
	localNo   int
	serverNo  int
	unchanged bool
}

// BuildHunks строит hunks позиционного сравнения: строка i локальной версии
// сравнивается со строкой i серверной. Соседние изменения объединяются в один
// hunk, если расстояние между ними не больше 2*contextLines+1.
func BuildHunks(local, server string, contextLines int) []Hunk {
	l := splitLines(local)
	s := splitLines(server)
	total := max(len(l), len(s))

	rows := make([]row, 0, total)
	for i := range total {
		r := row{localNo: i + 1, serverNo: i + 1}
		if i < len(l) {
			r.local = &l[i]
		}
		if i < len(s) {
			r.server = &s[i]
		}
		r.unchanged = r.local != nil && r.server != nil && *r.local == *r.server
		rows = append(rows, r)
	}

	return groupRows(rows, contextLines)
}

// groupRows собирает hunks из выровненных строк
func groupRows(rows []row, contextLines int) []Hunk {
	if contextLines < 0 {
		contextLines = 0
	}

	var changed []int
	for i, r := range rows {
		if !r.unchanged {
			changed = append(changed, i)
		}
	}
	if len(changed) == 0 {
		return nil
	}

	// диапазоны [start, end] изменений, склеенные по допустимому разрыву
	type span struct{ start, end int }
	spans := []span{{changed[0], changed[0]}}
	for _, idx := range changed[1:] {
		last := &spans[len(spans)-1]
		if idx-last.end <= 2*contextLines+1 {
			last.end = idx
			continue
		}
		spans = append(spans, span{idx, idx})
	}

	hunks := make([]Hunk, 0, len(spans))
	for _, sp := range spans {
		from := max(0, sp.start-contextLines)
		to := min(len(rows)-1, sp.end+contextLines)
		hunks = append(hunks, buildHunk(rows[from:to+1]))
	}

	return hunks
}

func buildHunk(rows []row) Hunk {
	var h Hunk
	for _, r := range rows {
		if r.unchanged {
			h.Lines = append(h.Lines, HunkLine{Kind: LineContext, Number: r.localNo, Text: *r.local})
			h.noteLocal(r.localNo)
			h.noteServer(r.serverNo)
			continue
		}
		if r.local != nil {
			h.Lines = append(h.Lines, HunkLine{Kind: LineRemoved, Number: r.localNo, Text: *r.local})
			h.noteLocal(r.localNo)
		}
		if r.server != nil {
			h.Lines = append(h.Lines, HunkLine{Kind: LineAdded, Number: r.serverNo, Text: *r.server})
			h.noteServer(r.serverNo)
		}
	}
	return h
}

func (h *Hunk) noteLocal(n int) {
	if h.LocalLines == 0 {
		h.LocalStart = n
	}
	h.LocalLines++
}

func (h *Hunk) noteServer(n int) {
	if h.ServerLines == 0 {
		h.ServerStart = n
	}
	h.ServerLines++
}

// Added возвращает число добавленных строк в hunk
func (h Hunk) Added() int {
	return h.count(LineAdded)
}

// Removed возвращает число удаленных строк в hunk
func (h Hunk) Removed() int {
	return h.count(LineRemoved)
}

func (h Hunk) count(kind LineKind) int {
	n := 0
	for _, l := range h.Lines {
		if l.Kind == kind {
			n++
		}
	}
	return n
}
