package render

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// HTMLSafeID collapses a free-form string into something usable as an HTML
// class or id: runs of non-alphanumeric characters become single
// underscores.
func HTMLSafeID(raw string) string {
	return nonAlnum.ReplaceAllString(raw, "_")
}

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// SanitizeFragment strips markup from a rendered addendum fragment down to
// the table and list structure the addendum emits. Field values come from
// user answers, so anything beyond that structure is dropped before the
// fragment is embedded in a host page.
func SanitizeFragment(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(fragmentSanitizer().Sanitize(trimmed))
}

func fragmentSanitizer() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"table", "thead", "tbody", "tr", "th", "td",
			"ul", "ol", "li", "p", "br", "strong", "em",
		)
		policy.AllowAttrs("class", "id").OnElements("table", "ul", "ol", "p")
		policy.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
		fragmentPolicy = policy
	})
	return fragmentPolicy
}
