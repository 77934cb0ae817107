package app

import (
	"strings"
	"unicode/utf8"
)

const maxSpanQueryLen = 512

// compactQueryForSpan folds a query onto one line and caps it at
// maxSpanQueryLen bytes without splitting a rune.
func compactQueryForSpan(query string) string {
	compact := strings.Join(strings.Fields(query), " ")
	if len(compact) <= maxSpanQueryLen {
		return compact
	}

	cut := maxSpanQueryLen
	for cut > 0 && !utf8.RuneStart(compact[cut]) {
		cut--
	}
	return compact[:cut] + "..."
}
