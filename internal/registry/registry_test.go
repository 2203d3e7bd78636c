package registry

import (
	"os"
	"path/filepath"
	"testing"

	"translateapi/internal/core"
)

func TestDefault_ResolveKnownPairs(t *testing.T) {
	reg := Default()

	modelID, ok := reg.Resolve(core.LanguagePair{Source: "en", Target: "he"})
	if !ok {
		t.Fatal("en-he should be registered")
	}
	if modelID != "Helsinki-NLP/opus-mt-en-he" {
		t.Errorf("Unexpected model for en-he: %s", modelID)
	}

	if _, ok := reg.Resolve(core.LanguagePair{Source: "en", Target: "ru"}); ok {
		t.Error("en-ru should not be registered")
	}
}

func TestDefault_Has(t *testing.T) {
	reg := Default()
	for _, code := range []core.LanguageCode{"he", "ru", "en"} {
		if !reg.Has(code) {
			t.Errorf("Code %s should be known", code)
		}
	}
	if reg.Has("fr") {
		t.Error("fr should not be known")
	}
}

func TestDefault_PairsSorted(t *testing.T) {
	reg := Default()
	pairs := reg.PairStrings()
	want := []string{"en-he", "he-en", "he-ru", "ru-he"}
	if len(pairs) != len(want) {
		t.Fatalf("Expected %d pairs, got %d", len(want), len(pairs))
	}
	for i, pair := range want {
		if pairs[i] != pair {
			t.Errorf("pairs[%d] = %s, want %s", i, pairs[i], pair)
		}
	}
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	reg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if len(reg.Pairs()) != 4 {
		t.Errorf("Expected 4 default pairs, got %d", len(reg.Pairs()))
	}
}

func TestLoad_FromFile(t *testing.T) {
	content := []byte(`{
		"language_codes": {"en": "English", "de": "German"},
		"models": {"en-de": "Helsinki-NLP/opus-mt-en-de", "DE-EN": "Helsinki-NLP/opus-mt-de-en"}
	}`)
	path := filepath.Join(t.TempDir(), "pairs.json")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, ok := reg.Resolve(core.LanguagePair{Source: "en", Target: "de"}); !ok {
		t.Error("en-de should be registered")
	}
	// Pair keys are normalized.
	if _, ok := reg.Resolve(core.LanguagePair{Source: "de", Target: "en"}); !ok {
		t.Error("DE-EN should be registered as de-en")
	}
	if !reg.Has("de") {
		t.Error("de should be known from the models table")
	}
}

func TestLoad_RejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "not json at all"},
		{"no models", `{"language_codes": {"en": "English"}, "models": {}}`},
		{"bad pair key", `{"models": {"enhe": "some-model"}}`},
		{"empty model id", `{"models": {"en-he": ""}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "pairs.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load should fail")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load should fail for missing file")
	}
}

func TestModelsAndNames_ReturnCopies(t *testing.T) {
	reg := Default()

	models := reg.Models()
	models["xx-yy"] = "mutated"
	if _, ok := reg.Resolve(core.LanguagePair{Source: "xx", Target: "yy"}); ok {
		t.Error("Mutating the Models() copy must not affect the registry")
	}

	names := reg.LanguageNames()
	names["xx"] = "Mutated"
	if reg.Has("xx") {
		t.Error("Mutating the LanguageNames() copy must not affect the registry")
	}
}
