package conflict

import (
	"math"
	"strings"
)

// DiffStats сводка построчного сравнения двух текстов
type DiffStats struct {
	AddedLines        int     // строки, которые есть только на сервере или изменены
	RemovedLines      int     // строки, которые есть только локально или изменены
	LocalLines        int     // всего строк в локальной версии
	ServerLines       int     // всего строк в серверной версии
	ChangedPercentage float64 // доля отличающихся позиций, 0..100
}

// splitLines делит текст по "\n". Пустой текст считается одной пустой строкой.
func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

// CalculateDiff сравнивает тексты построчно по позиции (строка i с строкой i).
// Вставка строки в начало помечает все последующие строки как измененные,
// для выравнивания используйте BuildAlignedHunks.
func CalculateDiff(local, server string) DiffStats {
	l := splitLines(local)
	s := splitLines(server)

	stats := DiffStats{LocalLines: len(l), ServerLines: len(s)}
	total := max(len(l), len(s))

	changed := 0
	for i := range total {
		switch {
		case i >= len(l):
			stats.AddedLines++
			changed++
		case i >= len(s):
			stats.RemovedLines++
			changed++
		case l[i] != s[i]:
			stats.AddedLines++
			stats.RemovedLines++
			changed++
		}
	}

	if total > 0 {
		pct := float64(changed) / float64(total) * 100
		stats.ChangedPercentage = math.Round(pct*10) / 10
	}

	return stats
}
