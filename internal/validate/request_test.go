package validate

import (
	"strings"
	"testing"

	"translateapi/internal/core"
	"translateapi/internal/registry"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	return registry.Default()
}

func assertKind(t *testing.T, err error, want core.ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected %v, got nil", want)
	}
	if got := core.KindOf(err); got != want {
		t.Fatalf("Expected kind %v, got %v (%v)", want, got, err)
	}
}

func TestRequest_Valid(t *testing.T) {
	req, err := Request(testRegistry(t), "  Hello world  ", " EN ", "He")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if req.Text != "Hello world" {
		t.Errorf("Text should be trimmed, got %q", req.Text)
	}
	if req.Source != "en" || req.Target != "he" {
		t.Errorf("Codes should be normalized, got %s-%s", req.Source, req.Target)
	}
}

func TestRequest_UnknownLanguageCode(t *testing.T) {
	_, err := Request(testRegistry(t), "Hello", "en", "fr")
	assertKind(t, err, core.ErrUnknownLanguageCode)
	if !strings.Contains(err.Error(), "fr") {
		t.Errorf("Message should name the bad code: %v", err)
	}
}

func TestRequest_CodeCheckPrecedesTextChecks(t *testing.T) {
	// Unknown code and empty text at once: the code check fires first.
	_, err := Request(testRegistry(t), "   ", "fr", "he")
	assertKind(t, err, core.ErrUnknownLanguageCode)
}

func TestRequest_EmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := Request(testRegistry(t), text, "en", "he")
		assertKind(t, err, core.ErrEmptyText)
	}
}

func TestRequest_WordLimitBoundary(t *testing.T) {
	tenWords := strings.Repeat("word ", 10)
	if _, err := Request(testRegistry(t), tenWords, "en", "he"); err != nil {
		t.Errorf("Exactly 10 words should pass: %v", err)
	}

	elevenWords := strings.Repeat("word ", 11)
	_, err := Request(testRegistry(t), elevenWords, "en", "he")
	assertKind(t, err, core.ErrWordLimitExceeded)
	msg := core.MessageOf(err)
	if !strings.Contains(msg, "11") || !strings.Contains(msg, "10") {
		t.Errorf("Message should report the count and the limit: %q", msg)
	}
}

func TestRequest_CharacterLimitBoundary(t *testing.T) {
	if _, err := Request(testRegistry(t), strings.Repeat("a", 500), "en", "he"); err != nil {
		t.Errorf("Exactly 500 characters should pass: %v", err)
	}

	_, err := Request(testRegistry(t), strings.Repeat("a", 501), "en", "he")
	assertKind(t, err, core.ErrTextTooLong)
}

func TestRequest_CharacterLimitCountsRunes(t *testing.T) {
	// 500 multi-byte runes are 500 characters, not 1000 bytes.
	if _, err := Request(testRegistry(t), strings.Repeat("ש", 500), "he", "ru"); err != nil {
		t.Errorf("500 Hebrew characters should pass: %v", err)
	}
}

func TestRequest_IdenticalLanguagesFiresBeforeUnsupportedPair(t *testing.T) {
	// en-en is both identical and unregistered; the identical check wins.
	_, err := Request(testRegistry(t), "Hello", "en", "en")
	assertKind(t, err, core.ErrIdenticalLanguages)
}

func TestRequest_UnsupportedPairEnumeratesSupported(t *testing.T) {
	_, err := Request(testRegistry(t), "Hello", "en", "ru")
	assertKind(t, err, core.ErrUnsupportedPair)
	msg := core.MessageOf(err)
	for _, pair := range []string{"he-ru", "en-he"} {
		if !strings.Contains(msg, pair) {
			t.Errorf("Message should enumerate supported pair %s: %q", pair, msg)
		}
	}
}

func TestLanguages(t *testing.T) {
	pair, err := Languages(testRegistry(t), "EN", " he")
	if err != nil {
		t.Fatalf("Languages failed: %v", err)
	}
	if pair.String() != "en-he" {
		t.Errorf("Expected en-he, got %s", pair)
	}

	_, err = Languages(testRegistry(t), "he", "he")
	assertKind(t, err, core.ErrIdenticalLanguages)

	_, err = Languages(testRegistry(t), "ru", "en")
	assertKind(t, err, core.ErrUnsupportedPair)
}

func TestBatchSize(t *testing.T) {
	if err := BatchSize(1); err != nil {
		t.Errorf("1 text should pass: %v", err)
	}
	if err := BatchSize(100); err != nil {
		t.Errorf("100 texts should pass: %v", err)
	}
	assertKind(t, BatchSize(0), core.ErrInvalidBatchSize)
	assertKind(t, BatchSize(101), core.ErrInvalidBatchSize)
}
