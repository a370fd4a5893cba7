package categories

import (
	"embed"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/categories.yaml
var dataFS embed.FS

const defaultListPath = "data/categories.yaml"

// Kind selects one of the category tables.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Category is one entry in a table: the short code stored in interview
// answers and the label shown to the person filling out the form.
type Category struct {
	Code  string `yaml:"code" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Option is one JSON choice returned by the handler.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var (
	defaultOnce   sync.Once
	defaultTables map[Kind][]Category
	defaultErr    error
)

// DefaultCategories returns the embedded table for kind in curated order.
func DefaultCategories(kind Kind) ([]Category, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		tables, err := LoadCategories(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultTables = tables
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	table, ok := defaultTables[kind]
	if !ok {
		return nil, fmt.Errorf("categories: unknown kind %q", kind)
	}
	return append([]Category{}, table...), nil
}

// LoadCategories parses category tables from YAML, preserving document
// order and dropping duplicate codes within a table.
func LoadCategories(r io.Reader) (map[Kind][]Category, error) {
	if r == nil {
		return nil, fmt.Errorf("categories: missing reader")
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Income  []Category `yaml:"income"`
		Expense []Category `yaml:"expense"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("categories: parse tables: %w", err)
	}

	out := map[Kind][]Category{
		KindIncome:  dedupe(doc.Income),
		KindExpense: dedupe(doc.Expense),
	}
	for kind, table := range out {
		for _, category := range table {
			if category.Code == "" || category.Label == "" {
				return nil, fmt.Errorf("categories: %s table has an entry missing code or label", kind)
			}
		}
	}
	return out, nil
}

func dedupe(table []Category) []Category {
	seen := map[string]struct{}{}
	out := make([]Category, 0, len(table))
	for _, category := range table {
		if _, ok := seen[category.Code]; ok {
			continue
		}
		seen[category.Code] = struct{}{}
		out = append(out, category)
	}
	return out
}
