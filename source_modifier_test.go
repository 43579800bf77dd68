package main

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestApplyChangesToContent(t *testing.T) {
	content := "The quick brown fox jumps over the lazy dog"
	// Indices:
	// "The quick brown fox jumps over the lazy dog"
	//  0123456789012345678901234567890123456789012
	//  0         1         2         3         4

	tests := []struct {
		name     string
		changes  []Change
		expected string
	}{
		{
			name: "Basic replacement (quick -> slow)",
			changes: []Change{
				{Start: 4, End: 9, Text: "slow"},
			},
			expected: "The slow brown fox jumps over the lazy dog",
		},
		{
			name: "Multiple non-overlapping (The -> A, dog -> cat)",
			changes: []Change{
				{Start: 0, End: 3, Text: "A"},     // "The"
				{Start: 40, End: 43, Text: "cat"}, // "dog"
			},
			expected: "A quick brown fox jumps over the lazy cat",
		},
		{
			name: "Unordered changes are applied by start",
			changes: []Change{
				{Start: 40, End: 43, Text: "cat"}, // "dog"
				{Start: 4, End: 9, Text: "slow"},  // "quick"
			},
			expected: "The slow brown fox jumps over the lazy cat",
		},
		{
			name: "Adjacent changes",
			changes: []Change{
				{Start: 10, End: 15, Text: "red"}, // "brown"
				{Start: 4, End: 10, Text: ""},     // "quick "
			},
			expected: "The red fox jumps over the lazy dog",
		},
		{
			name:     "No changes",
			changes:  []Change{},
			expected: "The quick brown fox jumps over the lazy dog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := applyChangesToContent(content, tt.changes)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestBlankSpans(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		spans    []Span
		expected string
	}{
		{
			name:     "Single span",
			text:     "import a from './a';\nconst b = a;",
			spans:    []Span{{Start: 0, End: 20}},
			expected: strings.Repeat(" ", 20) + "\nconst b = a;",
		},
		{
			name:     "Keeps line breaks inside span",
			text:     "import {\r\n  a\n} from './a';\nx",
			spans:    []Span{{Start: 0, End: 27}},
			expected: "        \r\n   \n             \nx",
		},
		{
			name:     "Overlapping spans are merged",
			text:     "abcdefghij",
			spans:    []Span{{Start: 2, End: 6}, {Start: 4, End: 8}},
			expected: "ab      ij",
		},
		{
			name:     "Nested spans",
			text:     "abcdefghij",
			spans:    []Span{{Start: 1, End: 9}, {Start: 3, End: 5}},
			expected: "a        j",
		},
		{
			name:     "Out of range spans are clamped",
			text:     "abc",
			spans:    []Span{{Start: -2, End: 1}, {Start: 2, End: 10}},
			expected: " b ",
		},
		{
			name:     "Empty span list",
			text:     "abc",
			spans:    nil,
			expected: "abc",
		},
		{
			name:     "Multi-byte characters keep byte length",
			text:     "const s = 'żółw';",
			spans:    []Span{{Start: 10, End: 20}},
			expected: "const s = " + strings.Repeat(" ", len("'żółw';")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BlankSpans(tt.text, tt.spans)
			assert.Equal(t, result, tt.expected)
			assert.Equal(t, len(result), len(tt.text))
		})
	}
}

func TestBlankSpansKeepsByteOffsets(t *testing.T) {
	text := "const s = 'żółw';\nconst t = 'ü'; export const x = 1;\n"
	first := strings.Index(text, "'żółw'")
	second := strings.Index(text, "'ü'")
	exportAt := strings.Index(text, "export")

	result := BlankSpans(text, []Span{
		{Start: first, End: first + len("'żółw'")},
		{Start: second, End: second + len("'ü'")},
	})

	assert.Equal(t, strings.Index(result, "export"), exportAt)
	assert.Equal(t, strings.Count(result, "\n"), 2)
	assert.Equal(t, result[first:first+len("'żółw'")], strings.Repeat(" ", len("'żółw'")))
}

func TestStripModifier(t *testing.T) {
	text := "export function f() {}"
	assert.Equal(t, StripModifier(text, Span{Start: 0, End: 6}), "       function f() {}")
}

func TestExportModifierSpans(t *testing.T) {
	unit := ParseUnit("a.ts", []byte(`export namespace Lib { export const x = 1; }
export namespace Other {}
export function f() {}
export { f as g };
export default f;
`))

	spans := exportModifierSpans(unit, "Lib")
	result := BlankSpans(unit.Text, spans)

	assert.Equal(t, result, `export namespace Lib { export const x = 1; }
       namespace Other {}
       function f() {}
                  
               f;
`)
}
