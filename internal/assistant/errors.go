package assistant

import "github.com/Rhushya/Kloudmate/internal/errors"

const (
	// Translation Errors
	ErrTranslationFailed = errors.ErrorCode("assistant_translation_failed")
	ErrEmptySQL          = errors.ErrorCode("assistant_empty_sql")

	// Summarization Errors
	ErrSummarizationFailed = errors.ErrorCode("assistant_summarization_failed")

	// Completion Service Errors
	ErrCompletionRequest = errors.ErrorCode("assistant_completion_request_failed")
	ErrCompletionStatus  = errors.ErrorCode("assistant_completion_bad_status")
	ErrCompletionDecode  = errors.ErrorCode("assistant_completion_decode_failed")
)
