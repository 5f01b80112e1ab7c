package msgkey

import "strings"

// Message is one immutable validation failure: a Definition plus arguments
// that were validated and formatted to strings at construction time.
type Message struct {
	def    *Definition
	params []string
}

// NewMessage validates args against def and stores their formatted forms.
// Returns an ArgumentMismatchError when the argument list does not match.
func NewMessage(def *Definition, args ...any) (Message, error) {
	if !def.ValidateArguments(args) {
		return Message{}, &ArgumentMismatchError{
			Key:      def.Key(),
			Expected: def.Parameters(),
			Actual:   len(args),
		}
	}
	formatted, err := def.FormatArguments(args...)
	if err != nil {
		return Message{}, err
	}
	return Message{def: def, params: formatted}, nil
}

// MustMessage is the panic-on-failure variant of NewMessage. A panic here
// means the call site itself is wired wrongly.
func MustMessage(def *Definition, args ...any) Message {
	m, err := NewMessage(def, args...)
	if err != nil {
		panic(err)
	}
	return m
}

// Definition returns the shared key definition this message was built from.
func (m Message) Definition() *Definition { return m.def }

// TranslationKey is the human-facing key, the definition's display key.
func (m Message) TranslationKey() string { return m.def.DisplayKey() }

// Parameters returns a copy of the formatted parameter values.
func (m Message) Parameters() []string {
	out := make([]string, len(m.params))
	copy(out, m.params)
	return out
}

var braceEscaper = strings.NewReplacer("{", "{{", "}", "}}")

// Render produces the human-readable diagnostic form. Literal braces in
// parameter values are escaped so the output stays safe for later template
// interpolation.
func (m Message) Render() string {
	if len(m.params) == 0 {
		return "ValidationKey: " + m.def.DisplayKey()
	}
	escaped := make([]string, len(m.params))
	for i, p := range m.params {
		escaped[i] = braceEscaper.Replace(p)
	}
	return "ValidationKey: " + m.def.DisplayKey() + " Parameters: " + strings.Join(escaped, ", ")
}
