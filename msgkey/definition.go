package msgkey

import "fmt"

// Definition is an immutable, named message key plus the ordered parameter
// descriptors the key expects. Definitions are typically created once as
// process-wide values; the With*Parameter builders never mutate, they return
// a new Definition sharing the key and extending the parameter list.
type Definition struct {
	key        string
	displayKey string
	params     []ParameterDescriptor
}

// NewDefinition builds a Definition whose display key defaults to key.
func NewDefinition(key string, params ...ParameterDescriptor) (*Definition, error) {
	return NewDefinitionWithDisplayKey(key, key, params...)
}

// NewDefinitionWithDisplayKey builds a Definition with a distinct
// human-facing display key.
func NewDefinitionWithDisplayKey(key, displayKey string, params ...ParameterDescriptor) (*Definition, error) {
	if key == "" {
		return nil, fmt.Errorf("message key definition requires a non-empty key")
	}
	if displayKey == "" {
		return nil, fmt.Errorf("message key definition requires a non-empty display key")
	}
	owned := make([]ParameterDescriptor, len(params))
	copy(owned, params)
	return &Definition{key: key, displayKey: displayKey, params: owned}, nil
}

// MustDefinition is the panic-on-failure variant of NewDefinition,
// for package-level message key declarations.
func MustDefinition(key string, params ...ParameterDescriptor) *Definition {
	d, err := NewDefinition(key, params...)
	if err != nil {
		panic(err)
	}
	return d
}

// MustDefinitionWithDisplayKey is the panic-on-failure variant of
// NewDefinitionWithDisplayKey.
func MustDefinitionWithDisplayKey(key, displayKey string, params ...ParameterDescriptor) *Definition {
	d, err := NewDefinitionWithDisplayKey(key, displayKey, params...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Definition) Key() string        { return d.key }
func (d *Definition) DisplayKey() string { return d.displayKey }

// Parameters returns a copy of the ordered descriptor list.
func (d *Definition) Parameters() []ParameterDescriptor {
	out := make([]ParameterDescriptor, len(d.params))
	copy(out, d.params)
	return out
}

func (d *Definition) NumParameters() int { return len(d.params) }

// ValidateArguments reports whether args matches the definition: same length
// and each value accepted by the descriptor at its position. No arguments
// and no declared parameters is explicitly valid.
func (d *Definition) ValidateArguments(args []any) bool {
	if len(args) == 0 && len(d.params) == 0 {
		return true
	}
	if len(args) != len(d.params) {
		return false
	}
	for i, p := range d.params {
		if !p.Validate(args[i]) {
			return false
		}
	}
	return true
}

// FormatArguments validates args against the definition and formats each
// element with its descriptor. Returns an ArgumentMismatchError when the
// argument list does not match.
func (d *Definition) FormatArguments(args ...any) ([]string, error) {
	if !d.ValidateArguments(args) {
		return nil, &ArgumentMismatchError{
			Key:      d.key,
			Expected: d.Parameters(),
			Actual:   len(args),
		}
	}
	formatted := make([]string, len(args))
	for i, p := range d.params {
		s, err := p.Format(args[i])
		if err != nil {
			return nil, err
		}
		formatted[i] = s
	}
	return formatted, nil
}

// withParameter returns a new Definition with one descriptor appended.
// The receiver's parameter slice is never aliased.
func (d *Definition) withParameter(name string, typ ParameterType) *Definition {
	params := make([]ParameterDescriptor, len(d.params), len(d.params)+1)
	copy(params, d.params)
	params = append(params, MustParameterDescriptor(name, typ))
	return &Definition{key: d.key, displayKey: d.displayKey, params: params}
}

// WithParameter appends a descriptor of an arbitrary type.
func (d *Definition) WithParameter(name string, typ ParameterType) *Definition {
	return d.withParameter(name, typ)
}

func (d *Definition) WithStringParameter(name string) *Definition {
	return d.withParameter(name, TypeString)
}

func (d *Definition) WithIntParameter(name string) *Definition {
	return d.withParameter(name, TypeInteger)
}

func (d *Definition) WithDecimalParameter(name string) *Definition {
	return d.withParameter(name, TypeDecimal)
}

func (d *Definition) WithDateTimeParameter(name string) *Definition {
	return d.withParameter(name, TypeDateTime)
}

func (d *Definition) WithTimeOfDayParameter(name string) *Definition {
	return d.withParameter(name, TypeTimeOfDay)
}

func (d *Definition) WithDateOnlyParameter(name string) *Definition {
	return d.withParameter(name, TypeDateOnly)
}

func (d *Definition) WithBoolParameter(name string) *Definition {
	return d.withParameter(name, TypeBoolean)
}

func (d *Definition) WithGuidParameter(name string) *Definition {
	return d.withParameter(name, TypeGuid)
}

// WithEnumParameter declares a parameter that only accepts members of a
// defined integer-kind type. Note that string spellings of a member are
// rejected, which rules out validating a free-form status string here; use
// WithStringParameter for that case.
func (d *Definition) WithEnumParameter(name string) *Definition {
	return d.withParameter(name, TypeEnum)
}

func (d *Definition) WithUriParameter(name string) *Definition {
	return d.withParameter(name, TypeUri)
}

func (d *Definition) WithDurationParameter(name string) *Definition {
	return d.withParameter(name, TypeDuration)
}

func (d *Definition) WithEmailParameter(name string) *Definition {
	return d.withParameter(name, TypeEmail)
}

func (d *Definition) WithPhoneNumberParameter(name string) *Definition {
	return d.withParameter(name, TypePhoneNumber)
}
