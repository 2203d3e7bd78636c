// Package validate checks untrusted translation input against the domain
// grammar: known language codes, registered pairs, text length and word
// count limits. All checks are pure functions over the registry.
package validate

import (
	"strings"
	"unicode/utf8"

	"translateapi/internal/core"
	"translateapi/internal/registry"
)

// Request validates a raw translation request. Checks run in a fixed order
// and short-circuit on the first failure so error messages stay
// reproducible: language code membership, empty text, word count, character
// length, identical languages, pair registration.
func Request(reg *registry.Registry, rawText, rawSource, rawTarget string) (core.TranslationRequest, error) {
	source, target, err := codes(reg, rawSource, rawTarget)
	if err != nil {
		return core.TranslationRequest{}, err
	}

	text, err := Text(rawText)
	if err != nil {
		return core.TranslationRequest{}, err
	}

	if _, err := pair(reg, source, target); err != nil {
		return core.TranslationRequest{}, err
	}

	return core.TranslationRequest{Text: text, Source: source, Target: target}, nil
}

// Languages validates the shared language pair of a batch request: code
// membership, identical languages, pair registration. Text constraints are
// per item and checked separately with Text.
func Languages(reg *registry.Registry, rawSource, rawTarget string) (core.LanguagePair, error) {
	source, target, err := codes(reg, rawSource, rawTarget)
	if err != nil {
		return core.LanguagePair{}, err
	}
	return pair(reg, source, target)
}

// Text validates and trims the text of a single translation.
func Text(rawText string) (string, error) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return "", core.NewTranslateError(core.ErrEmptyText, "text cannot be empty")
	}

	if wordCount := len(strings.Fields(text)); wordCount > core.MaxWordCount {
		return "", core.NewTranslateError(core.ErrWordLimitExceeded,
			"text exceeds maximum length of %d words, got %d words", core.MaxWordCount, wordCount)
	}

	if length := utf8.RuneCountInString(text); length > core.MaxTextLength {
		return "", core.NewTranslateError(core.ErrTextTooLong,
			"text exceeds maximum length of %d characters, got %d", core.MaxTextLength, length)
	}

	return text, nil
}

// BatchSize validates the number of texts in a batch request.
func BatchSize(count int) error {
	if count < core.MinBatchTexts || count > core.MaxBatchTexts {
		return core.NewTranslateError(core.ErrInvalidBatchSize,
			"batch must contain between %d and %d texts, got %d", core.MinBatchTexts, core.MaxBatchTexts, count)
	}
	return nil
}

func codes(reg *registry.Registry, rawSource, rawTarget string) (core.LanguageCode, core.LanguageCode, error) {
	source := core.NormalizeLanguageCode(rawSource)
	if !reg.Has(source) {
		return "", "", core.NewTranslateError(core.ErrUnknownLanguageCode,
			"unknown source language code %q, must be one of: %s", rawSource, strings.Join(reg.Codes(), ", "))
	}

	target := core.NormalizeLanguageCode(rawTarget)
	if !reg.Has(target) {
		return "", "", core.NewTranslateError(core.ErrUnknownLanguageCode,
			"unknown target language code %q, must be one of: %s", rawTarget, strings.Join(reg.Codes(), ", "))
	}

	return source, target, nil
}

// pair checks identical languages before pair registration: an identical
// pair can never be registered, and the identical-languages message is the
// more actionable of the two.
func pair(reg *registry.Registry, source, target core.LanguageCode) (core.LanguagePair, error) {
	if source == target {
		return core.LanguagePair{}, core.NewTranslateError(core.ErrIdenticalLanguages,
			"source and target languages must be different")
	}

	p := core.LanguagePair{Source: source, Target: target}
	if _, ok := reg.Resolve(p); !ok {
		return core.LanguagePair{}, core.NewTranslateError(core.ErrUnsupportedPair,
			"unsupported language pair %s, supported pairs: %s", p, strings.Join(reg.PairStrings(), ", "))
	}

	return p, nil
}
