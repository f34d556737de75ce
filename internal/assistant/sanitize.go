package assistant

import (
	"regexp"
	"strings"
)

var (
	codeFenceRe = regexp.MustCompile("```(?:sql)?")

	// Completions regularly come back in the Postgres/DuckDB interval
	// dialect no matter what the guidance says. Normalize that family
	// onto SQLite's datetime() so the statement executes.
	intervalRe = regexp.MustCompile(`(?i)(?:NOW\(\)|CURRENT_TIMESTAMP)\s*-\s*INTERVAL\s*'(\d+)\s*([a-zA-Z]+)'`)
	nowRe      = regexp.MustCompile(`(?i)\bNOW\(\)`)
)

// Sanitize strips the formatting artifacts a completion service wraps
// around a statement and normalizes interval arithmetic to SQLite form.
// It performs no semantic validation; read-only execution is enforced at
// the store boundary.
func Sanitize(completion string) string {
	sqlText := codeFenceRe.ReplaceAllString(completion, "")
	sqlText = strings.TrimSpace(sqlText)

	// Some models echo the prompt's trailing label.
	sqlText = strings.TrimPrefix(sqlText, "SQL Query:")
	sqlText = strings.TrimSpace(sqlText)

	sqlText = intervalRe.ReplaceAllString(sqlText, "datetime('now', '-$1 $2')")
	sqlText = nowRe.ReplaceAllString(sqlText, "datetime('now')")

	return sqlText
}
