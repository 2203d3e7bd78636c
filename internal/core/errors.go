package core

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure categories the gateway can report.
// Every error crossing the transport boundary is classified as one of these.
type ErrorKind int

// Error kinds.
const (
	ErrUnknownLanguageCode ErrorKind = iota
	ErrEmptyText
	ErrWordLimitExceeded
	ErrTextTooLong
	ErrIdenticalLanguages
	ErrUnsupportedPair
	ErrInvalidBatchSize
	ErrModelLoadFailed
	ErrTranslationExecutionFailed
	ErrInternal
)

// String returns the stable identifier of the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownLanguageCode:
		return "UNKNOWN_LANGUAGE_CODE"
	case ErrEmptyText:
		return "EMPTY_TEXT"
	case ErrWordLimitExceeded:
		return "WORD_LIMIT_EXCEEDED"
	case ErrTextTooLong:
		return "TEXT_TOO_LONG"
	case ErrIdenticalLanguages:
		return "IDENTICAL_LANGUAGES"
	case ErrUnsupportedPair:
		return "UNSUPPORTED_PAIR"
	case ErrInvalidBatchSize:
		return "INVALID_BATCH_SIZE"
	case ErrModelLoadFailed:
		return "MODEL_LOAD_FAILED"
	case ErrTranslationExecutionFailed:
		return "TRANSLATION_EXECUTION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

// IsValidation reports whether the kind is a client input error.
func (k ErrorKind) IsValidation() bool {
	switch k {
	case ErrUnknownLanguageCode, ErrEmptyText, ErrWordLimitExceeded,
		ErrTextTooLong, ErrIdenticalLanguages, ErrUnsupportedPair,
		ErrInvalidBatchSize:
		return true
	}
	return false
}

// Category returns the caller-visible error category for the kind.
func (k ErrorKind) Category() string {
	switch {
	case k.IsValidation():
		return "Validation Error"
	case k == ErrModelLoadFailed:
		return "Service Unavailable"
	case k == ErrTranslationExecutionFailed:
		return "Translation Error"
	default:
		return "Internal Error"
	}
}

// TranslateError is the unified error type of the gateway. It carries the
// kind (for classification), a human-readable message, the language pair it
// concerns (zero when not pair-specific) and the underlying cause.
type TranslateError struct {
	Kind    ErrorKind
	Message string
	Pair    LanguagePair
	Cause   error
}

// Error implements the error interface.
func (e *TranslateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *TranslateError) Unwrap() error {
	return e.Cause
}

// NewTranslateError creates a TranslateError with a formatted message.
func NewTranslateError(kind ErrorKind, format string, args ...any) *TranslateError {
	return &TranslateError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// PairError creates a TranslateError bound to a language pair with an
// underlying cause.
func PairError(kind ErrorKind, pair LanguagePair, cause error, format string, args ...any) *TranslateError {
	return &TranslateError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pair:    pair,
		Cause:   cause,
	}
}

// KindOf classifies any error. Errors that are not TranslateErrors (or do
// not wrap one) are treated as internal.
func KindOf(err error) ErrorKind {
	var te *TranslateError
	if errors.As(err, &te) {
		return te.Kind
	}
	return ErrInternal
}

// MessageOf returns the human-readable message of a classified error, or
// the plain error text for unclassified errors.
func MessageOf(err error) string {
	var te *TranslateError
	if errors.As(err, &te) {
		return te.Message
	}
	return err.Error()
}
