package addendum

import (
	"strings"
	"testing"

	"github.com/nonprofittechy/ssioverpaymentwaiver/pkg/binding"
)

func TestOverflowMarkdown_TableForObjectList(t *testing.T) {
	f := NewField("income", TriggerAt(1), binding.Map{
		"income": []any{
			map[string]any{"amount": 700.0, "type": "SSI"},
			map[string]any{"amount": 850.5, "type": "rent"},
			map[string]any{"amount": 120.0, "type": "SNAP"},
		},
	})

	got := f.OverflowMarkdown()
	want := strings.Join([]string{
		"amount | type",
		"-----|-----",
		"$850.50|rent",
		"$120.00|SNAP",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected markdown:\n%q\nwant:\n%q", got, want)
	}
}

func TestOverflowMarkdown_UsesHeaderLabels(t *testing.T) {
	f := NewField("income", TriggerAt(1), binding.Map{
		"income": []any{
			map[string]any{"type": "SSI", "amount": 700.0},
			map[string]any{"type": "rent", "amount": 850.0},
		},
	})
	f.Headers = []Column{
		{Key: "type", Label: "Income Type"},
		{Key: "amount", Label: "Monthly Amount"},
	}

	got := f.OverflowMarkdown()
	if !strings.HasPrefix(got, "Income Type | Monthly Amount\n-----|-----\n") {
		t.Fatalf("unexpected header: %q", got)
	}
	if !strings.Contains(got, "rent|$850.00") {
		t.Fatalf("expected overflow row in output: %q", got)
	}
}

func TestOverflowMarkdown_StructRows(t *testing.T) {
	f := NewField("jobs", TriggerAt(1), binding.Map{
		"jobs": []job{
			{Employer: "Acme", Income: 1200.0},
			{Employer: "Initech", Income: 987.65},
		},
	})

	got := f.OverflowMarkdown()
	if !strings.Contains(got, "Employer | Income") {
		t.Fatalf("missing header: %q", got)
	}
	if !strings.Contains(got, "Initech|$987.65") {
		t.Fatalf("missing row with currency formatting: %q", got)
	}
}

func TestOverflowMarkdown_BulletedListForPlainList(t *testing.T) {
	f := NewField("names", TriggerAt(2), binding.Map{
		"names": []string{"Ana", "Bo", "Cyd", "Dee"},
	})

	got := f.OverflowMarkdown()
	if got != "* Cyd\n* Dee\n" {
		t.Fatalf("unexpected markdown: %q", got)
	}
}

func TestOverflowMarkdown_EmptyWhenNothingOverflows(t *testing.T) {
	values := binding.Map{
		"names": []string{"Ana"},
		"note":  strings.Repeat("x", 50),
	}

	if got := NewField("names", TriggerAt(5), values).OverflowMarkdown(); got != "" {
		t.Fatalf("expected empty markdown, got %q", got)
	}
	// Scalar overflow has no tabular or list shape.
	if got := NewField("note", TriggerAt(10), values).OverflowMarkdown(); got != "" {
		t.Fatalf("expected empty markdown for scalar, got %q", got)
	}
}

func TestOverflowMarkdown_MissingCellsRenderEmpty(t *testing.T) {
	f := NewField("income", TriggerAt(1), binding.Map{
		"income": []any{
			map[string]any{"type": "SSI", "amount": 700.0},
			map[string]any{"type": "other"},
		},
	})

	got := f.OverflowMarkdown()
	if !strings.Contains(got, "|other") && !strings.Contains(got, "other|") {
		t.Fatalf("expected row for record with missing cell: %q", got)
	}
}
