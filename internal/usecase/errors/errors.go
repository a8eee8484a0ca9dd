package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
)

// Summary errors
var (
	ErrTextAndPromptRequired = errors.New("text and prompt are required")
	ErrEditedSummaryRequired = errors.New("edited summary content is required")
)

// Email errors
var (
	ErrRecipientsRequired = errors.New("recipients list is required and must be an array with at least one email")
	ErrEmailFailed        = errors.New("failed to send email")
	ErrArchiveDisabled    = errors.New("email archive is not enabled")
	ErrArchiveFailed      = errors.New("failed to read email archive")
)
