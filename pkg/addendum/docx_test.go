package addendum

import (
	"io"
	"testing"

	"github.com/nonprofittechy/ssioverpaymentwaiver/pkg/binding"
)

type recordingRenderer struct {
	name string
	data any
	out  string
	err  error
}

func (r *recordingRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return r.RenderTemplate(name, data, out...)
}

func (r *recordingRenderer) RenderTemplate(name string, data any, _ ...io.Writer) (string, error) {
	r.name = name
	r.data = data
	return r.out, r.err
}

func (r *recordingRenderer) RenderString(content string, data any, _ ...io.Writer) (string, error) {
	r.name = content
	r.data = data
	return r.out, r.err
}

func (r *recordingRenderer) RegisterFilter(string, func(any, any) (any, error)) error { return nil }
func (r *recordingRenderer) GlobalContext(any) error                                  { return nil }

func TestOverflowDocx_PassesColumnsAndRows(t *testing.T) {
	f := NewField("income", TriggerAt(1), binding.Map{
		"income": []any{
			map[string]any{"type": "SSI", "amount": 700.0},
			map[string]any{"type": "rent", "amount": 850.0},
		},
	})

	renderer := &recordingRenderer{out: "fragment"}
	got, err := f.OverflowDocx(renderer, "templates/addendum_table.docx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "fragment" {
		t.Fatalf("unexpected output: %q", got)
	}
	if renderer.name != "templates/addendum_table.docx" {
		t.Fatalf("unexpected template path: %q", renderer.name)
	}

	vars, ok := renderer.data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected template data: %#v", renderer.data)
	}
	columns, ok := vars["columns"].([]Column)
	if !ok || len(columns) != 2 {
		t.Fatalf("unexpected columns: %#v", vars["columns"])
	}
	rows, ok := vars["rows"].([]any)
	if !ok || len(rows) != 1 {
		t.Fatalf("unexpected rows: %#v", vars["rows"])
	}
}

func TestOverflowDocx_RequiresRendererAndPath(t *testing.T) {
	f := NewField("income", TriggerAt(1), binding.Map{})

	if _, err := f.OverflowDocx(nil, "x"); err == nil {
		t.Fatalf("expected error for missing renderer")
	}
	if _, err := f.OverflowDocx(&recordingRenderer{}, ""); err == nil {
		t.Fatalf("expected error for missing path")
	}
}
