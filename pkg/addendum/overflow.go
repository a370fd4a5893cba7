package addendum

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var newlineRuns = regexp.MustCompile(`[\r\n]+`)

// SafeValue returns the portion of the value that fits within the overflow
// trigger: a string for scalar values, a prefix slice for sequences. An
// always trigger yields an empty string because the whole value belongs in
// the addendum.
func (f *Field) SafeValue(fns ...OptionFn) any {
	opts := NewOptions(fns...)
	value := f.Value()

	if f.Trigger.Always() {
		return ""
	}

	if items, ok := sequenceItems(value); ok {
		// For sequences the trigger is an element count.
		limit := f.Trigger.Limit()
		if limit >= len(items) {
			return items
		}
		return items[:limit]
	}

	text, _ := f.safeString(stringify(value), opts)
	return text
}

// OverflowValue returns the remainder that exceeds SafeValue: the rest of
// the normalized string, the trailing elements of a sequence, or the full
// value for an always trigger. An empty string (or empty slice) means
// nothing overflows.
func (f *Field) OverflowValue(fns ...OptionFn) any {
	opts := NewOptions(fns...)
	value := f.Value()

	if f.Trigger.Always() {
		return value
	}

	if items, ok := sequenceItems(value); ok {
		limit := f.Trigger.Limit()
		if limit >= len(items) {
			return []any{}
		}
		return items[limit:]
	}

	safe, markerApplied := f.safeString(stringify(value), opts)

	// Compare against the newline-collapsed original: safe text replaces
	// each newline run with exactly one character (space or \n), so rune
	// offsets line up between the two forms.
	normalized := rstrip(newlineRuns.ReplaceAllString(stringify(value), "\n"))
	if safe == normalized {
		return ""
	}

	consumed := utf8.RuneCountInString(safe)
	if markerApplied {
		consumed -= utf8.RuneCountInString(opts.OverflowMessage)
	}
	if consumed < 0 {
		consumed = 0
	}

	runes := []rune(normalized)
	if consumed >= len(runes) {
		return ""
	}
	return string(runes[consumed:])
}

// HasOverflow reports whether any content exceeds the trigger.
func (f *Field) HasOverflow(fns ...OptionFn) bool {
	switch v := f.OverflowValue(fns...).(type) {
	case nil:
		return false
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	default:
		return true
	}
}

// safeString runs the scalar overflow algorithm and reports whether the
// overflow message was appended, so the complement computation knows how
// many runes of safe output map onto the source value.
func (f *Field) safeString(text string, opts Options) (string, bool) {
	limit := f.Trigger.Limit()

	// Simplest case: fits on one line untouched.
	if utf8.RuneCountInString(text) <= limit && !strings.ContainsAny(text, "\r\n") {
		return text, false
	}

	maxLines := f.MaxLines(opts.InputWidth, utf8.RuneCountInString(opts.OverflowMessage))
	maxChars := limit - utf8.RuneCountInString(opts.OverflowMessage)
	if maxChars < 0 {
		maxChars = 0
	}

	// With at least two lines available, each at least InputWidth wide,
	// paragraphs can be packed instead of flattened.
	if opts.PreserveNewlines && maxLines > 1 {
		packed, remaining := packParagraphs(rstrip(newlineRuns.ReplaceAllString(text, "\n")), opts.InputWidth, maxLines)
		if remaining {
			return rstrip(packed) + opts.OverflowMessage, opts.OverflowMessage != ""
		}
		return packed, false
	}

	flat := rstrip(newlineRuns.ReplaceAllString(text, " "))
	truncated := truncateRunes(flat, maxChars)
	if utf8.RuneCountInString(text) > limit {
		return truncated + opts.OverflowMessage, opts.OverflowMessage != ""
	}
	return truncated, false
}

// packParagraphs greedily fills up to maxLines output lines: a paragraph no
// wider than the input consumes one line, a wider paragraph is sliced into
// input-width chunks until it is exhausted or the budget runs out. The
// second return reports whether unconsumed paragraphs remain.
func packParagraphs(text string, width, maxLines int) (string, bool) {
	paras := strings.Split(text, "\n")

	var b strings.Builder
	line := 1
	para := 0
	for line <= maxLines && para < len(paras) {
		runes := []rune(paras[para])
		if len(runes) <= width {
			b.WriteString(paras[para])
			b.WriteString("\n")
			line++
			para++
			continue
		}

		for line <= maxLines && len(runes) > 0 {
			take := width
			if take > len(runes) {
				take = len(runes)
			}
			b.WriteString(string(runes[:take]))
			runes = runes[take:]
			line++
		}
		if len(runes) == 0 {
			b.WriteString("\n")
			para++
		} else {
			// Budget exhausted mid-paragraph.
			return b.String(), true
		}
	}
	return b.String(), para < len(paras)
}

func truncateRunes(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

func rstrip(text string) string {
	return strings.TrimRightFunc(text, unicode.IsSpace)
}
