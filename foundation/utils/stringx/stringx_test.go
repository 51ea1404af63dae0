// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Unit tests for the string utility functions in the stringx
//              package. Tests cover edge cases, Unicode handling, and expected
//              behavior for all public functions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial test implementation

package stringx

import (
	"reflect"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", false},
		{"normal string", "hello", false},
		{"unicode string", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsEmpty(tt.input)
			if result != tt.expected {
				t.Errorf("IsEmpty(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"multiple spaces", "   ", true},
		{"tab and spaces", " \t ", true},
		{"newline", "\n", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
		{"unicode content", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsBlank(tt.input)
			if result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsNotBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", false},
		{"whitespace only", " \t ", false},
		{"content", "net", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsNotBlank(tt.input); result != tt.expected {
				t.Errorf("IsNotBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"no truncation needed", "short", 10, "...", "short"},
		{"exact length", "exact", 5, "...", "exact"},
		{"simple truncation", "hello world", 8, "...", "hello..."},
		{"zero max length", "anything", 0, "...", ""},
		{"negative max length", "anything", -1, "...", ""},
		{"empty ellipsis", "hello world", 5, "", "hello"},
		{"unicode safe", "こんにちは世界", 5, "…", "こんにち…"},
		{"ellipsis longer than max", "hello", 2, "....", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.maxLen, tt.ellipsis)
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q; want %q",
					tt.input, tt.maxLen, tt.ellipsis, result, tt.expected)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty string", "", nil},
		{"single line", "one", []string{"one"}},
		{"lf endings", "one\ntwo\nthree", []string{"one", "two", "three"}},
		{"crlf endings", "one\r\ntwo\r\nthree", []string{"one", "two", "three"}},
		{"trailing newline", "one\ntwo\n", []string{"one", "two"}},
		{"blank middle line", "one\n\nthree", []string{"one", "", "three"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplitLines(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("SplitLines(%q) = %#v; want %#v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected string
	}{
		{"no arguments", nil, ""},
		{"all blank", []string{"", "  ", "\t"}, ""},
		{"first wins", []string{"a", "b"}, "a"},
		{"skips blanks", []string{"", "  ", "config.toml"}, "config.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := FirstNonBlank(tt.values...); result != tt.expected {
				t.Errorf("FirstNonBlank(%v) = %q; want %q", tt.values, result, tt.expected)
			}
		})
	}
}

func TestFromBlankDefault(t *testing.T) {
	if got := FromBlankDefault("  ", "fallback"); got != "fallback" {
		t.Errorf("FromBlankDefault blank = %q; want fallback", got)
	}
	if got := FromBlankDefault("value", "fallback"); got != "value" {
		t.Errorf("FromBlankDefault non-blank = %q; want value", got)
	}
}
