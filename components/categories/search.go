package categories

import (
	"sort"
	"strings"
)

// Search filters a category table by a case-insensitive query against codes
// and labels. Prefix matches rank first; within each band, curated order is
// preserved.
func Search(table []Category, query string, limit int, opts Options) []Category {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchAll {
			if len(table) <= limit {
				return append([]Category{}, table...)
			}
			return append([]Category{}, table[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedCategory, 0, 16)
	for _, category := range table {
		code := strings.ToLower(category.Code)
		label := strings.ToLower(category.Label)
		if !strings.Contains(code, q) && !strings.Contains(label, q) {
			continue
		}
		matches = append(matches, matchedCategory{
			category: category,
			isPrefix: strings.HasPrefix(code, q) || strings.HasPrefix(label, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].isPrefix && !matches[j].isPrefix
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Category, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.category)
	}
	return out
}

// SearchOptions maps search results onto JSON options.
func SearchOptions(table []Category, query string, limit int, opts Options) []Option {
	results := Search(table, query, limit, opts)
	if len(results) == 0 {
		return nil
	}

	out := make([]Option, 0, len(results))
	for _, category := range results {
		out = append(out, Option{Value: category.Code, Label: category.Label})
	}
	return out
}

type matchedCategory struct {
	category Category
	isPrefix bool
}
