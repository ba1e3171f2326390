package restwire

// The field framework decodes one member of a wire object at a time. A field
// is described by its wire key, a required flag, and a FieldRule; decoding
// yields exactly one of three outcomes. Outcomes from sibling fields are
// merged by a Reducer, so every independently checkable field is checked and
// all violations are reported together in one pass.

type outcomeState uint8

const (
	outcomeSuccess outcomeState = iota
	outcomeAbsent
	outcomeFailure
)

// Outcome is the result of decoding a single field: the value on success, a
// distinct absent marker for optional fields not present in the input, or the
// violations that explain the failure.
type Outcome[T any] struct {
	value      T
	state      outcomeState
	violations Violations
}

// Success wraps a well-typed decoded value.
func Success[T any](v T) Outcome[T] { return Outcome[T]{value: v} }

// Absent marks an optional field whose key was not present. It carries no
// violation; absence is not an error.
func Absent[T any]() Outcome[T] { return Outcome[T]{state: outcomeAbsent} }

// Failure wraps the violations produced while decoding a field.
func Failure[T any](vs Violations) Outcome[T] {
	return Outcome[T]{state: outcomeFailure, violations: vs}
}

func (o Outcome[T]) IsSuccess() bool { return o.state == outcomeSuccess }
func (o Outcome[T]) IsAbsent() bool  { return o.state == outcomeAbsent }
func (o Outcome[T]) IsFailure() bool { return o.state == outcomeFailure }

// Value returns the decoded value; the zero value unless IsSuccess.
func (o Outcome[T]) Value() T { return o.value }

// Violations returns the violations; nil unless IsFailure.
func (o Outcome[T]) Violations() Violations { return o.violations }

// FieldRule decodes the value found under a field's key. tpl carries the
// pointer already descended to the field; violations from nested types are
// adopted as-is, never re-wrapped.
type FieldRule[T any] func(tpl Violation, v any) (T, Violations)

// DecodeField decodes obj[key] against rule. tpl carries the parent pointer:
// a missing required key is reported at the parent for that child name, while
// a present-but-malformed value is reported at the descended pointer.
func DecodeField[T any](tpl Violation, obj map[string]any, key string, required bool, rule FieldRule[T]) Outcome[T] {
	if rule == nil {
		panic("restwire: DecodeField requires a rule for key " + key)
	}
	v, ok := obj[key]
	if !ok {
		if required {
			return Failure[T](Violations{MissingChild(tpl, key)})
		}
		return Absent[T]()
	}
	val, vs := rule(descendTemplate(tpl, key), v)
	if len(vs) > 0 {
		return Failure[T](vs)
	}
	return Success(val)
}

// StringRule coerces a wire string.
func StringRule(tpl Violation, v any) (string, Violations) {
	s, ok := v.(string)
	if !ok {
		return "", Violations{WrongType(tpl, typeNameString)}
	}
	return s, nil
}

// ObjectRule coerces a wire object into a plain key/value map.
func ObjectRule(tpl Violation, v any) (map[string]any, Violations) {
	m, ok := asObject(v)
	if !ok {
		return nil, Violations{WrongType(tpl, typeNameObject)}
	}
	out := make(map[string]any, len(m))
	for k, val := range m {
		out[k] = val
	}
	return out, nil
}
