package main

import (
	"sort"
	"strings"
)

// Change represents a text replacement in a unit.
// Start and End are byte offsets in the original text.
type Change struct {
	Start int
	End   int
	Text  string
}

// BlankSpan replaces text[span.Start:span.End] with whitespace of identical
// byte length. Line breaks inside the span are kept so line numbers survive.
func BlankSpan(text string, span Span) string {
	return BlankSpans(text, []Span{span})
}

// StripModifier blanks a single keyword token such as `export`.
func StripModifier(text string, modifier Span) string {
	return BlankSpan(text, modifier)
}

// BlankSpans blanks every span. Overlapping and nested spans are merged first,
// so the result has the same length as text for any input.
//
// Span offsets are byte offsets into text, and blanking works per byte: a
// multi-byte character becomes one space per byte. Every byte offset and line
// number of the untouched text is preserved; rune columns after a blanked
// multi-byte character on the same line are not.
func BlankSpans(text string, spans []Span) string {
	merged := mergeSpans(spans, len(text))
	if len(merged) == 0 {
		return text
	}
	changes := make([]Change, 0, len(merged))
	for _, span := range merged {
		changes = append(changes, Change{Start: span.Start, End: span.End, Text: blankOut(text[span.Start:span.End])})
	}
	return applyChangesToContent(text, changes)
}

// blankOut turns every byte of s except \n and \r into a space.
func blankOut(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c != '\n' && c != '\r' {
			b[i] = ' '
		}
	}
	return string(b)
}

// mergeSpans clamps spans to [0, limit], drops empty ones and unions overlaps.
func mergeSpans(spans []Span, limit int) []Span {
	clamped := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Start < 0 {
			s.Start = 0
		}
		if s.End > limit {
			s.End = limit
		}
		if s.Len() > 0 {
			clamped = append(clamped, s)
		}
	}
	sort.Slice(clamped, func(i, j int) bool {
		return clamped[i].Start < clamped[j].Start
	})

	var merged []Span
	for _, s := range clamped {
		if last := len(merged) - 1; last >= 0 && s.Start <= merged[last].End {
			if s.End > merged[last].End {
				merged[last].End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// applyChangesToContent splices changes into content in Start order.
// Changes must not overlap; BlankSpans guarantees this by merging spans first.
func applyChangesToContent(content string, changes []Change) string {
	if len(changes) == 0 {
		return content
	}
	ordered := make([]Change, len(changes))
	copy(ordered, changes)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Start < ordered[j].Start
	})

	var builder strings.Builder
	builder.Grow(len(content))
	lastPos := 0
	for _, c := range ordered {
		builder.WriteString(content[lastPos:c.Start])
		builder.WriteString(c.Text)
		lastPos = c.End
	}
	builder.WriteString(content[lastPos:])
	return builder.String()
}

// exportModifierSpans lists the spans Component packaging blanks in unit:
// export modifiers of top-level declarations, except on the namespace that
// carries the bundle's own name, plus whole local export lists.
func exportModifierSpans(unit *SourceUnit, namespace string) []Span {
	var spans []Span
	for _, decl := range unit.Declarations {
		switch decl.Kind {
		case DeclNamespace:
			if decl.Name != namespace {
				spans = append(spans, decl.ExportModifier)
			}
		case DeclExportList, DeclOther:
			spans = append(spans, decl.ExportModifier)
		}
	}
	return spans
}
