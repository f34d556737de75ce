package assistant

import (
	"context"

	"github.com/Rhushya/Kloudmate/internal/errors"
	"github.com/Rhushya/Kloudmate/internal/logger"
)

// Pipeline turns a free-text question into one Exchange: translate to SQL,
// sanitize, execute read-only, summarize. A failed stage short-circuits
// into an error Exchange; later stages never run.
type Pipeline struct {
	store QueryExecutor
	llm   CompletionService
}

func New(store QueryExecutor, llm CompletionService) *Pipeline {
	return &Pipeline{
		store: store,
		llm:   llm,
	}
}

// Ask runs the four stages for one question. It always returns a complete
// Exchange; callers branch on Failed(). Each invocation is independent:
// no history is consulted and no state survives the call.
func (p *Pipeline) Ask(ctx context.Context, question string) Exchange {
	errFactory := errors.New()
	exchange := Exchange{Question: question}

	completion, err := p.llm.Complete(ctx, buildTranslationPrompt(question))
	if err != nil {
		logger.Error().Err(err).Msg("SQL translation failed")
		exchange.Err = errFactory.Wrap(ErrTranslationFailed, err).Error()
		return exchange
	}

	sqlText := Sanitize(completion)
	if sqlText == "" {
		logger.Error().Str("completion", completion).Msg("Translation produced no statement")
		exchange.Err = errFactory.WithMessage(ErrEmptySQL, "translation produced no SQL statement").Error()
		return exchange
	}
	exchange.SQL = sqlText
	logger.Debug().Str("sql", sqlText).Msg("Generated SQL")

	result, err := p.store.Query(ctx, sqlText)
	if err != nil {
		logger.Error().Err(err).Str("sql", sqlText).Msg("Query execution failed")
		exchange.Err = err.Error()
		return exchange
	}
	logger.Debug().Int("rows", len(result.Rows)).Msg("Query executed")

	rendered := renderRows(result)
	summary, err := p.llm.Complete(ctx, buildSummaryPrompt(question, sqlText, rendered))
	if err != nil {
		logger.Error().Err(err).Msg("Summarization failed")
		exchange.Err = errFactory.Wrap(ErrSummarizationFailed, err).Error()
		return exchange
	}

	exchange.Columns = result.Columns
	exchange.Rows = result.Rows
	exchange.Summary = summary
	return exchange
}
