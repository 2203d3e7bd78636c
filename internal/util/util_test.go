package util

import (
	"testing"
)

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("UTIL_TEST_KEY", "value")
	if got := GetEnvWithDefault("UTIL_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("GetEnvWithDefault = %q, want value", got)
	}

	t.Setenv("UTIL_TEST_KEY", "")
	if got := GetEnvWithDefault("UTIL_TEST_KEY", "fallback"); got != "fallback" {
		t.Errorf("GetEnvWithDefault for empty var = %q, want fallback", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value        string
		defaultValue bool
		want         bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"  True ", false, true},
		{"false", true, false},
		{"0", true, false},
		{"", true, true},
		{"", false, false},
		{"garbage", true, true},
		{"garbage", false, false},
	}

	for _, tt := range tests {
		t.Setenv("UTIL_TEST_BOOL", tt.value)
		if got := GetEnvBool("UTIL_TEST_BOOL", tt.defaultValue); got != tt.want {
			t.Errorf("GetEnvBool(%q, %v) = %v, want %v", tt.value, tt.defaultValue, got, tt.want)
		}
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"42", 42},
		{" 7 ", 7},
		{"", 10},
		{"abc", 10},
		{"0", 10},
		{"-5", 10},
	}

	for _, tt := range tests {
		t.Setenv("UTIL_TEST_INT", tt.value)
		if got := GetEnvInt("UTIL_TEST_INT", 10); got != tt.want {
			t.Errorf("GetEnvInt(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("abcdefghij", 3, 3, "..."); got != "abc...hij" {
		t.Errorf("TruncateString = %q", got)
	}
	if got := TruncateString("short", 3, 3, "..."); got != "short" {
		t.Errorf("TruncateString on short input = %q", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	data, err := MarshalJSON(payload{Name: "he-en", Count: 3})
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	var decoded payload
	if err := UnmarshalJSON(data, &decoded); err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}
	if decoded.Name != "he-en" || decoded.Count != 3 {
		t.Errorf("Round trip mismatch: %+v", decoded)
	}
}
