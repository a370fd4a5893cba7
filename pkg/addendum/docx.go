package addendum

import (
	"fmt"

	"github.com/nonprofittechy/ssioverpaymentwaiver/pkg/render/template"
)

// OverflowDocx renders the overflow portion of the field through a DOCX
// fragment template, passing the derived columns and overflow rows as
// template variables. The renderer is a black box; callers wanting full
// control over formatting should consume OverflowValue directly.
func (f *Field) OverflowDocx(renderer template.TemplateRenderer, path string, fns ...OptionFn) (string, error) {
	if renderer == nil {
		return "", fmt.Errorf("addendum: missing template renderer")
	}
	if path == "" {
		return "", fmt.Errorf("addendum: missing template path")
	}
	return renderer.RenderTemplate(path, map[string]any{
		"columns": f.Columns(fns...),
		"rows":    f.OverflowValue(fns...),
	})
}
