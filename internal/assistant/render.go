package assistant

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Rhushya/Kloudmate/internal/store"
)

const (
	// maxRenderedRows bounds what a result set contributes to the
	// summarization prompt.
	maxRenderedRows = 20

	// noResultsMarker is what the summarization prompt sees instead of
	// an empty table.
	noResultsMarker = "No results found."
)

// renderRows turns a result set into the bounded textual form used in the
// summarization prompt: one (v1, v2, ...) tuple per line, at most
// maxRenderedRows lines, with an omitted-row note when truncated.
func renderRows(rs *store.ResultSet) string {
	if rs == nil || len(rs.Rows) == 0 {
		return noResultsMarker
	}

	shown := rs.Rows
	if len(shown) > maxRenderedRows {
		shown = shown[:maxRenderedRows]
	}

	lines := make([]string, 0, len(shown)+1)
	for _, row := range shown {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = renderValue(v)
		}
		lines = append(lines, "("+strings.Join(fields, ", ")+")")
	}

	if omitted := len(rs.Rows) - maxRenderedRows; omitted > 0 {
		lines = append(lines, fmt.Sprintf("... and %d more rows.", omitted))
	}

	return strings.Join(lines, "\n")
}

func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.UTC().Format(store.TimestampLayout)
	default:
		return fmt.Sprintf("%v", val)
	}
}
