package assistant

import (
	"context"

	"github.com/Rhushya/Kloudmate/internal/store"
)

// CompletionService is the text-in/text-out boundary. The pipeline owns no
// retries or semantics for it.
type CompletionService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// QueryExecutor is the read-only slice of the store the pipeline needs.
type QueryExecutor interface {
	Query(ctx context.Context, sqlText string) (*store.ResultSet, error)
}

// Exchange is one complete question → answer turn. Exactly one of Summary
// and Err is set; Columns/Rows are populated only on full success.
type Exchange struct {
	Question string
	SQL      string
	Columns  []string
	Rows     [][]any
	Summary  string
	Err      string
}

// Failed reports whether the turn ended in an error.
func (e Exchange) Failed() bool {
	return e.Err != ""
}
