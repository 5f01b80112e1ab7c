package msgkey

import (
	"fmt"
	"strings"
)

// ArgumentMismatchError reports an argument list whose length or per-position
// types do not match a Definition. It always indicates a wrongly wired call
// site, never bad user input.
type ArgumentMismatchError struct {
	Key      string
	Expected []ParameterDescriptor
	Actual   int
}

func (e *ArgumentMismatchError) Error() string {
	specs := make([]string, len(e.Expected))
	for i, p := range e.Expected {
		specs[i] = fmt.Sprintf("%s:%s", p.Name(), p.Type())
	}
	return fmt.Sprintf(
		"message key %q expects %d parameter(s) [%s], got %d argument(s)",
		e.Key, len(e.Expected), strings.Join(specs, ", "), e.Actual,
	)
}

// InvalidArgumentError reports a value that a ParameterDescriptor refuses to
// format because it fails the descriptor's own validation.
type InvalidArgumentError struct {
	Name  string
	Type  ParameterType
	Value any
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf(
		"parameter %q expects a %s value, got %T (%v)",
		e.Name, e.Type, e.Value, e.Value,
	)
}
