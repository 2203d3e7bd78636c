package core

import (
	"fmt"
	"strings"
)

// LanguageCode identifies a natural language (e.g. "en", "he", "ru").
// Codes are always normalized to lowercase and trimmed before comparison
// or storage.
type LanguageCode string

// NormalizeLanguageCode lowercases and trims a raw language code.
func NormalizeLanguageCode(raw string) LanguageCode {
	return LanguageCode(strings.ToLower(strings.TrimSpace(raw)))
}

// LanguagePair is an ordered (source, target) combination.
type LanguagePair struct {
	Source LanguageCode
	Target LanguageCode
}

// String returns the canonical "source-target" form used as registry key
// and in error messages.
func (p LanguagePair) String() string {
	return fmt.Sprintf("%s-%s", p.Source, p.Target)
}

// ParseLanguagePair parses the canonical "source-target" form.
func ParseLanguagePair(s string) (LanguagePair, error) {
	src, dst, ok := strings.Cut(s, "-")
	if !ok || src == "" || dst == "" {
		return LanguagePair{}, fmt.Errorf("invalid language pair %q, expected \"source-target\"", s)
	}
	return LanguagePair{
		Source: NormalizeLanguageCode(src),
		Target: NormalizeLanguageCode(dst),
	}, nil
}

// TranslationRequest is a validated translation request. It is only
// constructed by the validate package, never directly from external input.
type TranslationRequest struct {
	Text   string
	Source LanguageCode
	Target LanguageCode
}

// Pair returns the language pair of the request.
func (r TranslationRequest) Pair() LanguagePair {
	return LanguagePair{Source: r.Source, Target: r.Target}
}

// TranslationResult is the immutable value returned to the caller.
type TranslationResult struct {
	TranslatedText string `json:"translated_text"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
	OriginalText   string `json:"original_text"`
}

// BatchTranslationResult holds batch results in input order.
type BatchTranslationResult struct {
	Translations []TranslationResult `json:"translations"`
	TotalCount   int                 `json:"total_count"`
}

// TranslateRequestBody is the wire format of POST /translate.
type TranslateRequestBody struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// BatchTranslateRequestBody is the wire format of POST /translate/batch.
type BatchTranslateRequestBody struct {
	Texts      []string `json:"texts"`
	SourceLang string   `json:"source_lang"`
	TargetLang string   `json:"target_lang"`
}

// ErrorResponse is the wire format of every failure response.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// HealthResponse is the wire format of GET /health.
type HealthResponse struct {
	Status                 string   `json:"status"`
	SupportedLanguagePairs []string `json:"supported_language_pairs"`
	LoadedModels           []string `json:"loaded_models"`
}

// SupportedLanguagesResponse is the wire format of GET /supported-languages.
type SupportedLanguagesResponse struct {
	SupportedLanguagePairs map[string]string `json:"supported_language_pairs"`
	LanguageCodes          map[string]string `json:"language_codes"`
}

// RequestRecord is a single entry in the gateway request history.
type RequestRecord struct {
	Timestamp  int64  `json:"timestamp"`
	Pair       string `json:"pair"`
	Success    bool   `json:"success"`
	DurationMs int64  `json:"duration_ms"`
}

// GatewayStats is the persisted gateway statistics snapshot.
type GatewayStats struct {
	TotalRequests       int64            `json:"total_requests"`
	SuccessfulRequests  int64            `json:"successful_requests"`
	FailedRequests      int64            `json:"failed_requests"`
	TotalResponseTimeMs int64            `json:"total_response_time_ms"`
	PairCounts          map[string]int64 `json:"pair_counts"`
	RequestHistory      []RequestRecord  `json:"request_history"`
}
