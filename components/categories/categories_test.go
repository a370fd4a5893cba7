package categories

import (
	"strings"
	"testing"
)

func TestLoadCategories_ParsesBothTables(t *testing.T) {
	input := strings.NewReader(`
income:
  - code: SSI
    label: Supplemental Security Income (SSI)
  - code: SSI
    label: Duplicate
  - code: pension
    label: Pension
expense:
  - code: rent
    label: Rent
`)

	tables, err := LoadCategories(input)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	income := tables[KindIncome]
	if len(income) != 2 {
		t.Fatalf("expected duplicate code to be dropped, got %#v", income)
	}
	if income[0].Code != "SSI" || income[1].Code != "pension" {
		t.Fatalf("unexpected income order: %#v", income)
	}
	if len(tables[KindExpense]) != 1 {
		t.Fatalf("unexpected expense table: %#v", tables[KindExpense])
	}
}

func TestLoadCategories_RejectsIncompleteEntries(t *testing.T) {
	input := strings.NewReader("income:\n  - code: SSI\n")
	if _, err := LoadCategories(input); err == nil {
		t.Fatalf("expected an error for an entry without a label")
	}
}

func TestDefaultCategories_ContainsKnownEntries(t *testing.T) {
	income, err := DefaultCategories(KindIncome)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(income) != 12 {
		t.Fatalf("expected 12 income categories, got %d", len(income))
	}
	if income[0].Code != "SSDI" {
		t.Fatalf("expected SSDI first, got %#v", income[0])
	}

	expense, err := DefaultCategories(KindExpense)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(expense) != 17 {
		t.Fatalf("expected 17 expense categories, got %d", len(expense))
	}
	if !containsCode(expense, "credit card") {
		t.Fatalf("expected credit card expense category")
	}

	if _, err := DefaultCategories(Kind("unknown")); err == nil {
		t.Fatalf("expected an error for an unknown kind")
	}
}

func TestSearch_MatchesCodeAndLabel(t *testing.T) {
	table := []Category{
		{Code: "SSDI", Label: "Social Security Disability Benefits"},
		{Code: "SNAP", Label: "Food Stamps (SNAP)"},
		{Code: "rent", Label: "Income from real estate (rent, etc)"},
	}
	opts := NewOptions()

	results := Search(table, "food", 10, opts)
	if len(results) != 1 || results[0].Code != "SNAP" {
		t.Fatalf("unexpected results: %#v", results)
	}

	results = Search(table, "ssdi", 10, opts)
	if len(results) != 1 || results[0].Code != "SSDI" {
		t.Fatalf("unexpected results: %#v", results)
	}
}

func TestSearch_PrefixBeforeContains(t *testing.T) {
	table := []Category{
		{Code: "other support", Label: "Other Support"},
		{Code: "child support", Label: "Child Support"},
		{Code: "supplemental", Label: "Supplemental Income"},
	}
	opts := NewOptions()

	results := Search(table, "sup", 10, opts)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %#v", results)
	}
	if results[0].Code != "supplemental" {
		t.Fatalf("expected prefix match first, got %#v", results)
	}
	// Non-prefix matches keep curated order.
	if results[1].Code != "other support" || results[2].Code != "child support" {
		t.Fatalf("unexpected ordering: %#v", results)
	}
}

func TestSearch_EmptyQueryModes(t *testing.T) {
	table := []Category{{Code: "a", Label: "A"}, {Code: "b", Label: "B"}, {Code: "c", Label: "C"}}

	all := Search(table, "", 2, NewOptions(WithEmptySearchMode(EmptySearchAll)))
	if len(all) != 2 || all[0].Code != "a" {
		t.Fatalf("unexpected results: %#v", all)
	}

	none := Search(table, "", 2, NewOptions(WithEmptySearchMode(EmptySearchNone)))
	if none != nil {
		t.Fatalf("expected nil results, got %#v", none)
	}
}

func TestSearchOptions_MapsCodeAndLabel(t *testing.T) {
	table := []Category{{Code: "SSI", Label: "Supplemental Security Income (SSI)"}}

	results := SearchOptions(table, "ssi", 10, NewOptions())
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Value != "SSI" || results[0].Label != "Supplemental Security Income (SSI)" {
		t.Fatalf("unexpected option: %#v", results[0])
	}
}

func containsCode(table []Category, code string) bool {
	for _, category := range table {
		if category.Code == code {
			return true
		}
	}
	return false
}
