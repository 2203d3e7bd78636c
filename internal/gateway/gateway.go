// Package gateway orchestrates translation calls: validate the request,
// ensure the pair's model is loaded, execute the inference call, and map
// every failure onto the gateway error taxonomy.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"translateapi/internal/cache"
	"translateapi/internal/core"
	"translateapi/internal/engine"
	"translateapi/internal/registry"
	"translateapi/internal/validate"
)

// Config carries the gateway's collaborators. Registry, Models and Executor
// are required; Logger and Metrics default to no-ops, Results to no result
// caching.
type Config struct {
	Registry *registry.Registry
	Models   *engine.Cache
	Executor engine.Executor
	Results  *cache.LRUCache
	Logger   core.Logger
	Metrics  core.MetricsCollector

	// EagerLoad loads every registered pair at construction. The first
	// load failure aborts: the gateway never starts partially loaded.
	EagerLoad bool
}

// Gateway is the orchestrator handed to the transport layer. Constructed
// once at startup and shared; the only mutable state behind it is the model
// cache's first-touch-per-pair path.
type Gateway struct {
	registry *registry.Registry
	models   *engine.Cache
	executor engine.Executor
	results  *cache.LRUCache
	logger   core.Logger
	metrics  core.MetricsCollector
}

// New constructs a gateway. In eager mode all registered models are loaded
// before returning; any load failure is fatal to construction.
func New(ctx context.Context, cfg Config) (*Gateway, error) {
	if cfg.Registry == nil {
		return nil, fmt.Errorf("registry is required in gateway config")
	}
	if cfg.Models == nil {
		return nil, fmt.Errorf("model cache is required in gateway config")
	}
	if cfg.Executor == nil {
		return nil, fmt.Errorf("executor is required in gateway config")
	}
	if cfg.Logger == nil {
		cfg.Logger = &core.NopLogger{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &core.NopMetrics{}
	}

	g := &Gateway{
		registry: cfg.Registry,
		models:   cfg.Models,
		executor: cfg.Executor,
		results:  cfg.Results,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
	}

	if cfg.EagerLoad {
		cfg.Logger.Info("Eager loading %d registered pairs", len(cfg.Registry.Pairs()))
		if err := cfg.Models.LoadAll(ctx); err != nil {
			return nil, fmt.Errorf("eager model load failed: %w", err)
		}
	}

	return g, nil
}

// Translate validates the raw request, ensures the model is loaded and
// executes the translation. Validation failures short-circuit before any
// model work; load and execution failures propagate with their kind intact.
func (g *Gateway) Translate(ctx context.Context, rawText, rawSource, rawTarget string) (core.TranslationResult, error) {
	start := time.Now()

	req, err := validate.Request(g.registry, rawText, rawSource, rawTarget)
	if err != nil {
		g.metrics.RecordTranslation("", false, time.Since(start))
		return core.TranslationResult{}, err
	}

	result, err := g.translateValidated(ctx, req)
	g.metrics.RecordTranslation(req.Pair().String(), err == nil, time.Since(start))
	return result, err
}

// TranslateBatch applies Translate to each text in order. The shared
// language pair is validated once, so an invalid pair fails the whole batch
// before any model work; a per-item constraint failure terminates the batch
// at the offending item. Results keep 1:1 positional correspondence with
// the inputs.
func (g *Gateway) TranslateBatch(ctx context.Context, texts []string, rawSource, rawTarget string) (core.BatchTranslationResult, error) {
	start := time.Now()

	if err := validate.BatchSize(len(texts)); err != nil {
		g.metrics.RecordTranslation("", false, time.Since(start))
		return core.BatchTranslationResult{}, err
	}

	pair, err := validate.Languages(g.registry, rawSource, rawTarget)
	if err != nil {
		g.metrics.RecordTranslation("", false, time.Since(start))
		return core.BatchTranslationResult{}, err
	}

	translations := make([]core.TranslationResult, 0, len(texts))
	for i, rawText := range texts {
		text, err := validate.Text(rawText)
		if err != nil {
			g.metrics.RecordTranslation(pair.String(), false, time.Since(start))
			return core.BatchTranslationResult{}, wrapBatchItem(i, err)
		}

		result, err := g.translateValidated(ctx, core.TranslationRequest{
			Text:   text,
			Source: pair.Source,
			Target: pair.Target,
		})
		if err != nil {
			g.metrics.RecordTranslation(pair.String(), false, time.Since(start))
			return core.BatchTranslationResult{}, err
		}
		translations = append(translations, result)
	}

	g.metrics.RecordTranslation(pair.String(), true, time.Since(start))
	return core.BatchTranslationResult{
		Translations: translations,
		TotalCount:   len(translations),
	}, nil
}

// translateValidated runs the model-facing half of a call: load-if-absent,
// result cache probe, inference.
func (g *Gateway) translateValidated(ctx context.Context, req core.TranslationRequest) (core.TranslationResult, error) {
	pair := req.Pair()

	handle, err := g.models.EnsureLoaded(ctx, pair)
	if err != nil {
		return core.TranslationResult{}, err
	}

	var cacheKey string
	if g.results != nil {
		cacheKey = cache.GenerateTranslationCacheKey(pair, req.Text)
		if cached, found := g.results.Get(cacheKey); found {
			if translated, ok := cached.(string); ok {
				g.metrics.RecordCacheHit()
				return newResult(req, translated), nil
			}
		}
		g.metrics.RecordCacheMiss()
	}

	translated, err := g.executor.Translate(ctx, handle, req.Text)
	if err != nil {
		// Substitute executors may return plain errors; everything leaving
		// the gateway carries a kind.
		var te *core.TranslateError
		if !errors.As(err, &te) {
			err = core.PairError(core.ErrTranslationExecutionFailed, pair, err, "translation failed for %s", pair)
		}
		g.logger.Error("Translation failed for %s: %v", pair, err)
		return core.TranslationResult{}, err
	}

	if g.results != nil {
		g.results.Set(cacheKey, translated, core.ResultCacheTTL)
	}

	g.logger.Debug("Translated %s text (%d chars)", pair, len(req.Text))
	return newResult(req, translated), nil
}

// SupportedLanguages returns the registry's introspection data: pair to
// model identifier, and code to display name. Read-only, no side effects.
func (g *Gateway) SupportedLanguages() core.SupportedLanguagesResponse {
	return core.SupportedLanguagesResponse{
		SupportedLanguagePairs: g.registry.Models(),
		LanguageCodes:          g.registry.LanguageNames(),
	}
}

// SupportedPairs enumerates the registered pairs in canonical form.
func (g *Gateway) SupportedPairs() []string {
	return g.registry.PairStrings()
}

// LoadedPairs enumerates pairs whose models are currently loaded.
func (g *Gateway) LoadedPairs() []string {
	loaded := g.models.Loaded()
	out := make([]string, len(loaded))
	for i, pair := range loaded {
		out[i] = pair.String()
	}
	return out
}

// IsModelLoaded reports whether the pair's model is loaded.
func (g *Gateway) IsModelLoaded(pair core.LanguagePair) bool {
	return g.models.IsLoaded(pair)
}

func newResult(req core.TranslationRequest, translated string) core.TranslationResult {
	return core.TranslationResult{
		TranslatedText: translated,
		SourceLang:     string(req.Source),
		TargetLang:     string(req.Target),
		OriginalText:   req.Text,
	}
}

// wrapBatchItem prefixes a per-item validation failure with its position so
// the caller can tell which text failed.
func wrapBatchItem(index int, err error) error {
	var te *core.TranslateError
	if errors.As(err, &te) {
		return &core.TranslateError{
			Kind:    te.Kind,
			Message: fmt.Sprintf("text at index %d: %s", index, te.Message),
			Pair:    te.Pair,
			Cause:   te.Cause,
		}
	}
	return err
}
