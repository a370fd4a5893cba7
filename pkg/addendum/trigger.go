package addendum

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Trigger is the threshold past which a field's content moves to the
// addendum: either a character budget (element budget for sequence values)
// or an always-overflow flag. The zero value is a zero-character budget,
// meaning any non-empty value overflows.
type Trigger struct {
	limit  int
	always bool
}

// TriggerAt returns a trigger with a character (or element) budget.
func TriggerAt(limit int) Trigger {
	if limit < 0 {
		limit = 0
	}
	return Trigger{limit: limit}
}

// TriggerAlways returns a trigger that sends the entire value to the
// addendum regardless of its size.
func TriggerAlways() Trigger {
	return Trigger{always: true}
}

// Always reports whether the whole value overflows unconditionally.
func (t Trigger) Always() bool { return t.always }

// Limit returns the character/element budget. It is zero for always
// triggers.
func (t Trigger) Limit() int {
	if t.always {
		return 0
	}
	return t.limit
}

func (t Trigger) String() string {
	if t.always {
		return "always"
	}
	return fmt.Sprintf("%d", t.limit)
}

// UnmarshalYAML accepts the two spellings used in field definition records:
// an integer budget, or boolean true for always-overflow. Boolean false is
// accepted and behaves as a zero budget.
func (t *Trigger) UnmarshalYAML(node *yaml.Node) error {
	var flag bool
	if err := node.Decode(&flag); err == nil {
		if flag {
			*t = TriggerAlways()
		} else {
			*t = Trigger{}
		}
		return nil
	}

	var limit int
	if err := node.Decode(&limit); err == nil {
		*t = TriggerAt(limit)
		return nil
	}
	return fmt.Errorf("addendum: overflow_trigger must be an integer or true, got %q", node.Value)
}
