package addendum

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nonprofittechy/ssioverpaymentwaiver/pkg/binding"
)

func fieldWith(t *testing.T, name string, trigger Trigger, values binding.Map) *Field {
	t.Helper()
	return NewField(name, trigger, values)
}

func TestSafeValue_ShortStringUnmodified(t *testing.T) {
	f := fieldWith(t, "note", TriggerAt(20), binding.Map{"note": "short note"})

	if got := f.SafeValue(); got != "short note" {
		t.Fatalf("unexpected safe value: %q", got)
	}
	if got := f.OverflowValue(); got != "" {
		t.Fatalf("expected no overflow, got %q", got)
	}
	if f.HasOverflow() {
		t.Fatalf("expected no overflow")
	}
}

func TestSafeValue_SingleLineTruncationWithMessage(t *testing.T) {
	f := fieldWith(t, "note", TriggerAt(10), binding.Map{"note": "abcdefghijklmno"})

	safe := f.SafeValue(WithOverflowMessage("..."))
	if safe != "abcdefg..." {
		t.Fatalf("unexpected safe value: %q", safe)
	}

	overflow := f.OverflowValue(WithOverflowMessage("..."))
	if overflow != "hijklmno" {
		t.Fatalf("unexpected overflow value: %q", overflow)
	}
}

func TestSafeValue_ReconstructsOriginalExactlyOnce(t *testing.T) {
	value := "The quick brown fox\njumps over the lazy dog, twice around the block."
	f := fieldWith(t, "note", TriggerAt(25), binding.Map{"note": value})

	safe, _ := f.SafeValue(WithOverflowMessage("...")).(string)
	overflow, _ := f.OverflowValue(WithOverflowMessage("...")).(string)

	normalized := rstrip(strings.ReplaceAll(value, "\n", " "))
	reconstructed := strings.TrimSuffix(safe, "...") + strings.ReplaceAll(overflow, "\n", " ")
	if reconstructed != normalized {
		t.Fatalf("safe+overflow does not reconstruct the value:\nsafe      %q\noverflow  %q\nwant      %q", safe, overflow, normalized)
	}
}

func TestSafeValue_Idempotent(t *testing.T) {
	f := fieldWith(t, "note", TriggerAt(12), binding.Map{"note": "something fairly long here"})

	first := f.SafeValue(WithOverflowMessage("…"))
	second := f.SafeValue(WithOverflowMessage("…"))
	if first != second {
		t.Fatalf("safe value changed between calls: %q then %q", first, second)
	}
}

func TestSafeValue_BooleanTrigger(t *testing.T) {
	f := fieldWith(t, "story", TriggerAlways(), binding.Map{"story": "hello"})

	if got := f.SafeValue(); got != "" {
		t.Fatalf("expected empty safe value, got %q", got)
	}
	if got := f.OverflowValue(); got != "hello" {
		t.Fatalf("expected full value in overflow, got %q", got)
	}
	if got := f.Value(); got != "hello" {
		t.Fatalf("expected full value, got %q", got)
	}
}

func TestSafeValue_SequenceSlicesByElementCount(t *testing.T) {
	items := []any{"a", "b", "c", "d"}
	f := fieldWith(t, "jobs", TriggerAt(2), binding.Map{"jobs": items})

	safe, ok := f.SafeValue().([]any)
	if !ok || len(safe) != 2 {
		t.Fatalf("unexpected safe value: %#v", f.SafeValue())
	}

	overflow, ok := f.OverflowValue().([]any)
	if !ok || len(overflow) != 2 {
		t.Fatalf("unexpected overflow value: %#v", f.OverflowValue())
	}

	if diff := cmp.Diff(items, append(append([]any{}, safe...), overflow...)); diff != "" {
		t.Fatalf("safe+overflow does not reconstruct the sequence (-want +got):\n%s", diff)
	}
}

func TestSafeValue_SequenceShorterThanTrigger(t *testing.T) {
	f := fieldWith(t, "jobs", TriggerAt(10), binding.Map{"jobs": []string{"a", "b"}})

	safe, ok := f.SafeValue().([]any)
	if !ok || len(safe) != 2 {
		t.Fatalf("unexpected safe value: %#v", f.SafeValue())
	}
	overflow, ok := f.OverflowValue().([]any)
	if !ok || len(overflow) != 0 {
		t.Fatalf("expected empty overflow, got %#v", f.OverflowValue())
	}
	if f.HasOverflow() {
		t.Fatalf("expected no overflow")
	}
}

func TestSafeValue_PreserveNewlinesPacksParagraphs(t *testing.T) {
	value := "first paragraph\n\nsecond paragraph"
	f := fieldWith(t, "note", TriggerAt(160), binding.Map{"note": value})

	safe := f.SafeValue(WithPreserveNewlines(true), WithInputWidth(80))
	if safe != "first paragraph\nsecond paragraph\n" {
		t.Fatalf("unexpected safe value: %q", safe)
	}
	if got := f.OverflowValue(WithPreserveNewlines(true), WithInputWidth(80)); got != "" {
		t.Fatalf("expected no overflow, got %q", got)
	}
}

func TestSafeValue_PreserveNewlinesSlicesWideParagraphs(t *testing.T) {
	para := strings.Repeat("x", 100)
	value := para + "\n" + para + "\n" + para
	f := fieldWith(t, "note", TriggerAt(160), binding.Map{"note": value})

	marker := "(see addendum)"
	safe, _ := f.SafeValue(
		WithPreserveNewlines(true),
		WithInputWidth(80),
		WithOverflowMessage(marker),
	).(string)

	// max_lines = (160-14)/80 + 1 = 2: the first paragraph fills both
	// lines, then the marker is appended.
	if safe != para+marker {
		t.Fatalf("unexpected safe value: %q", safe)
	}

	overflow, _ := f.OverflowValue(
		WithPreserveNewlines(true),
		WithInputWidth(80),
		WithOverflowMessage(marker),
	).(string)
	if overflow != "\n"+para+"\n"+para {
		t.Fatalf("unexpected overflow value: %q", overflow)
	}
}

func TestSafeValue_NewlinesCollapseWithoutMessage(t *testing.T) {
	f := fieldWith(t, "note", TriggerAt(20), binding.Map{"note": "line one\nline two"})

	if got := f.SafeValue(); got != "line one line two" {
		t.Fatalf("unexpected safe value: %q", got)
	}
	if got := f.OverflowValue(); got != "" {
		t.Fatalf("expected no overflow, got %q", got)
	}
}

func TestSafeValue_OpaqueScalarFollowsStringPath(t *testing.T) {
	f := fieldWith(t, "amount", TriggerAt(5), binding.Map{"amount": 12345678901})

	if got := f.SafeValue(); got != "12345" {
		t.Fatalf("unexpected safe value: %q", got)
	}
	if got := f.OverflowValue(); got != "678901" {
		t.Fatalf("unexpected overflow value: %q", got)
	}
}

func TestSafeValue_UndefinedIsEmpty(t *testing.T) {
	f := fieldWith(t, "missing", TriggerAt(10), binding.Map{})

	if got := f.SafeValue(); got != "" {
		t.Fatalf("unexpected safe value: %q", got)
	}
	if got := f.OverflowValue(); got != "" {
		t.Fatalf("unexpected overflow value: %q", got)
	}
	if f.HasOverflow() {
		t.Fatalf("expected no overflow for undefined value")
	}
	if f.Defined() {
		t.Fatalf("expected field to be undefined")
	}
}

func TestMaxLines(t *testing.T) {
	f := fieldWith(t, "note", TriggerAt(160), nil)

	if got := f.MaxLines(80, 0); got != 3 {
		t.Fatalf("unexpected max lines: %d", got)
	}
	if got := f.MaxLines(80, 14); got != 2 {
		t.Fatalf("unexpected max lines with message: %d", got)
	}
	if got := fieldWith(t, "n", TriggerAt(10), nil).MaxLines(80, 20); got != 1 {
		t.Fatalf("unexpected max lines for exhausted budget: %d", got)
	}
}
