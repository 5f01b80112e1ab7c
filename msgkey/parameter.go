package msgkey

import (
	"fmt"
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2"
	"github.com/rickb777/period"
)

// ParameterType enumerates the kinds of values a message parameter may carry.
type ParameterType int

const (
	TypeString ParameterType = iota
	TypeInteger
	TypeDecimal
	TypeDateTime
	TypeTimeOfDay
	TypeDateOnly
	TypeBoolean
	TypeGuid
	TypeEnum
	TypeUri
	TypeDuration
	TypeEmail
	TypePhoneNumber
)

var parameterTypeNames = map[ParameterType]string{
	TypeString:      "string",
	TypeInteger:     "integer",
	TypeDecimal:     "decimal",
	TypeDateTime:    "datetime",
	TypeTimeOfDay:   "timeofday",
	TypeDateOnly:    "dateonly",
	TypeBoolean:     "boolean",
	TypeGuid:        "guid",
	TypeEnum:        "enum",
	TypeUri:         "uri",
	TypeDuration:    "duration",
	TypeEmail:       "email",
	TypePhoneNumber: "phonenumber",
}

func (t ParameterType) String() string {
	if name, ok := parameterTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("parametertype(%d)", int(t))
}

// ParameterDescriptor describes one named, typed parameter slot.
// Immutable after construction.
type ParameterDescriptor struct {
	name string
	typ  ParameterType
}

// NewParameterDescriptor builds a descriptor. The name must be non-empty.
func NewParameterDescriptor(name string, typ ParameterType) (ParameterDescriptor, error) {
	if name == "" {
		return ParameterDescriptor{}, fmt.Errorf("parameter descriptor requires a non-empty name")
	}
	return ParameterDescriptor{name: name, typ: typ}, nil
}

// MustParameterDescriptor is the panic-on-failure variant of NewParameterDescriptor.
func MustParameterDescriptor(name string, typ ParameterType) ParameterDescriptor {
	d, err := NewParameterDescriptor(name, typ)
	if err != nil {
		panic(err)
	}
	return d
}

func (d ParameterDescriptor) Name() string        { return d.name }
func (d ParameterDescriptor) Type() ParameterType { return d.typ }

// timeOfDayLayouts are the accepted wall-clock string forms, most precise first.
var timeOfDayLayouts = []string{"15:04:05.999999999", "15:04:05", "15:04"}

var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)

// Validate reports whether value is acceptable for this descriptor's type.
// Values may arrive either as the native type or as a parseable string.
// A nil value is never accepted.
func (d ParameterDescriptor) Validate(value any) bool {
	if value == nil {
		return false
	}
	switch d.typ {
	case TypeString:
		_, ok := value.(string)
		return ok
	case TypeInteger:
		return validateInteger(value)
	case TypeDecimal:
		return validateDecimal(value)
	case TypeDateTime:
		return validateDateTime(value)
	case TypeTimeOfDay:
		return validateTimeOfDay(value)
	case TypeDateOnly:
		return validateDateOnly(value)
	case TypeBoolean:
		return validateBoolean(value)
	case TypeGuid:
		return validateGuid(value)
	case TypeEnum:
		return validateEnum(value)
	case TypeUri:
		return validateUri(value)
	case TypeDuration:
		return validateDuration(value)
	case TypeEmail:
		return validateEmail(value)
	case TypePhoneNumber:
		return validatePhoneNumber(value)
	default:
		return false
	}
}

// Format renders value to its canonical string form. It validates first and
// returns an InvalidArgumentError carrying the parameter name and expected
// type when validation fails.
func (d ParameterDescriptor) Format(value any) (string, error) {
	if !d.Validate(value) {
		return "", &InvalidArgumentError{Name: d.name, Type: d.typ, Value: value}
	}
	// Strings were accepted as given; keep them verbatim.
	if s, ok := value.(string); ok {
		return s, nil
	}
	switch v := value.(type) {
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case date.Date:
		return v.String(), nil
	case time.Duration:
		return v.String(), nil
	case period.Period:
		return v.String(), nil
	case uuid.UUID:
		return v.String(), nil
	case url.URL:
		return v.String(), nil
	case *url.URL:
		return v.String(), nil
	case decimal.Decimal:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		// Integers and enum members, including Stringer-bearing ones.
		return fmt.Sprintf("%v", value), nil
	}
}

func validateInteger(value any) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case string:
		_, err := strconv.ParseInt(v, 10, 64)
		return err == nil
	default:
		return false
	}
}

func validateDecimal(value any) bool {
	switch v := value.(type) {
	case float32, float64, decimal.Decimal:
		return true
	case string:
		_, err := decimal.Parse(v)
		return err == nil
	default:
		return false
	}
}

func validateDateTime(value any) bool {
	switch v := value.(type) {
	case time.Time:
		return true
	case string:
		_, err := time.Parse(time.RFC3339Nano, v)
		return err == nil
	default:
		return false
	}
}

func validateTimeOfDay(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	for _, layout := range timeOfDayLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func validateDateOnly(value any) bool {
	switch v := value.(type) {
	case date.Date:
		return true
	case string:
		_, err := date.ParseISO(v)
		return err == nil
	default:
		return false
	}
}

func validateBoolean(value any) bool {
	switch v := value.(type) {
	case bool:
		return true
	case string:
		return strings.EqualFold(v, "true") || strings.EqualFold(v, "false")
	default:
		return false
	}
}

func validateGuid(value any) bool {
	switch v := value.(type) {
	case uuid.UUID:
		return true
	case string:
		_, err := uuid.Parse(v)
		return err == nil
	default:
		return false
	}
}

// validateEnum accepts only members of a defined integer-kind type, the
// closest Go rendering of a native enumeration member. Strings are rejected
// even when they name a member; see Definition.WithEnumParameter.
func validateEnum(value any) bool {
	rt := reflect.TypeOf(value)
	if rt == nil || rt.PkgPath() == "" {
		return false
	}
	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func validateUri(value any) bool {
	switch v := value.(type) {
	case url.URL:
		return v.IsAbs()
	case *url.URL:
		return v != nil && v.IsAbs()
	case string:
		u, err := url.Parse(v)
		return err == nil && u.IsAbs()
	default:
		return false
	}
}

func validateDuration(value any) bool {
	switch v := value.(type) {
	case time.Duration, period.Period:
		return true
	case string:
		if _, err := time.ParseDuration(v); err == nil {
			return true
		}
		_, err := period.Parse(v)
		return err == nil
	default:
		return false
	}
}

func validateEmail(value any) bool {
	s, ok := value.(string)
	if !ok || s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// validatePhoneNumber is a deliberately loose format check, not E.164.
func validatePhoneNumber(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	return len(s) >= 8 && phonePattern.MatchString(s)
}
