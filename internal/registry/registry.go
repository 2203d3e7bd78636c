// Package registry holds the static table of supported language pairs and
// the pretrained model identifier serving each pair.
package registry

import (
	"fmt"
	"os"
	"sort"

	"translateapi/internal/core"
	"translateapi/internal/util"
)

// Registry maps language pairs to model identifiers. Static after
// construction; never mutated at runtime.
type Registry struct {
	models map[core.LanguagePair]string
	names  map[core.LanguageCode]string
}

// fileConfig is the on-disk registry format.
type fileConfig struct {
	LanguageCodes map[string]string `json:"language_codes"`
	Models        map[string]string `json:"models"`
}

// Default returns the built-in registry: Hebrew/Russian/English with the
// Helsinki-NLP opus-mt models.
func Default() *Registry {
	return &Registry{
		models: map[core.LanguagePair]string{
			{Source: "he", Target: "ru"}: "Helsinki-NLP/opus-mt-he-ru",
			{Source: "ru", Target: "he"}: "Helsinki-NLP/opus-mt-ru-he",
			{Source: "en", Target: "he"}: "Helsinki-NLP/opus-mt-en-he",
			{Source: "he", Target: "en"}: "Helsinki-NLP/opus-mt-he-en",
		},
		names: map[core.LanguageCode]string{
			"he": "Hebrew",
			"ru": "Russian",
			"en": "English",
		},
	}
}

// Load reads a registry from a JSON config file. An empty path returns the
// built-in defaults.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path from config, not user input
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var config fileConfig
	if err := util.UnmarshalJSON(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(config.Models) == 0 {
		return nil, fmt.Errorf("registry config %s contains no models", path)
	}

	reg := &Registry{
		models: make(map[core.LanguagePair]string, len(config.Models)),
		names:  make(map[core.LanguageCode]string, len(config.LanguageCodes)),
	}

	for rawPair, modelID := range config.Models {
		pair, err := core.ParseLanguagePair(rawPair)
		if err != nil {
			return nil, fmt.Errorf("registry config %s: %w", path, err)
		}
		if modelID == "" {
			return nil, fmt.Errorf("registry config %s: empty model for pair %s", path, pair)
		}
		reg.models[pair] = modelID
	}

	for code, name := range config.LanguageCodes {
		reg.names[core.NormalizeLanguageCode(code)] = name
	}

	// Codes used by pairs must always be resolvable, even when the display
	// name table is incomplete.
	for pair := range reg.models {
		if _, ok := reg.names[pair.Source]; !ok {
			reg.names[pair.Source] = string(pair.Source)
		}
		if _, ok := reg.names[pair.Target]; !ok {
			reg.names[pair.Target] = string(pair.Target)
		}
	}

	return reg, nil
}

// Resolve returns the model identifier for the pair, or false when the pair
// is not registered.
func (r *Registry) Resolve(pair core.LanguagePair) (string, bool) {
	modelID, ok := r.models[pair]
	return modelID, ok
}

// Has reports whether the code belongs to the known language set.
func (r *Registry) Has(code core.LanguageCode) bool {
	_, ok := r.names[code]
	return ok
}

// Pairs enumerates all registered pairs, sorted by canonical form.
func (r *Registry) Pairs() []core.LanguagePair {
	pairs := make([]core.LanguagePair, 0, len(r.models))
	for pair := range r.models {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].String() < pairs[j].String()
	})
	return pairs
}

// PairStrings enumerates all registered pairs in canonical form, sorted.
func (r *Registry) PairStrings() []string {
	pairs := r.Pairs()
	out := make([]string, len(pairs))
	for i, pair := range pairs {
		out[i] = pair.String()
	}
	return out
}

// Models returns a copy of the pair-to-model table keyed by canonical form.
func (r *Registry) Models() map[string]string {
	out := make(map[string]string, len(r.models))
	for pair, modelID := range r.models {
		out[pair.String()] = modelID
	}
	return out
}

// LanguageNames returns a copy of the code-to-display-name table.
func (r *Registry) LanguageNames() map[string]string {
	out := make(map[string]string, len(r.names))
	for code, name := range r.names {
		out[string(code)] = name
	}
	return out
}

// Codes enumerates the known language codes, sorted.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.names))
	for code := range r.names {
		codes = append(codes, string(code))
	}
	sort.Strings(codes)
	return codes
}
