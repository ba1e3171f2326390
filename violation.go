package restwire

import (
	"errors"
	"fmt"
	"strings"
)

// Violation codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMissingChild            = "missing_child"
	CodeTypeMismatch            = "type_mismatch"
	CodeConflictingChildren     = "conflicting_children"
	CodeInsufficientChildren    = "insufficient_children"
	CodeUnknownRelationshipPath = "unknown_relationship_path"
	CodeAdapted                 = "adapted"
)

// Violation is a single structured error record in the wire format's own
// error-object shape. Violations are created by a constructor and never
// mutated afterwards.
type Violation struct {
	Code   string
	Detail string
	ID     string
	Links  Links
	Meta   Meta
	Source *Pointer // Present unless constructed from a bare relationship path.
	Status string
	Title  string
}

// Violations is a collection of violations that implements error.
type Violations []Violation

// Error summarizes the first few violations.
func (vs Violations) Error() string {
	if len(vs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(vs)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		v := vs[i]
		// e.g. missing_child at /data/type
		fmt.Fprintf(b, "%s at %s", v.Code, v.sourceLocation())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

func (v Violation) sourceLocation() string {
	if v.Source == nil {
		return "?"
	}
	return v.Source.String()
}

// AppendViolations appends violations to the destination, initializing the
// slice when needed.
func AppendViolations(dst Violations, more ...Violation) Violations {
	if dst == nil {
		dst = Violations{}
	}
	dst = append(dst, more...)
	return dst
}

// AsViolations extracts Violations from an error using errors.As internally.
func AsViolations(err error) (Violations, bool) {
	if err == nil {
		return nil, false
	}
	var vs Violations
	if errors.As(err, &vs) {
		return vs, true
	}
	return nil, false
}

// TemplateAt returns a template violation carrying only a source. Constructors
// take a template for pointer/parameter context and fill in the rest.
func TemplateAt(p Pointer) Violation {
	return Violation{Source: &p}
}

func templatePath(tpl Violation) string {
	if tpl.Source == nil {
		return ""
	}
	return tpl.Source.String()
}

// MissingChild reports a required child absent from its parent object. The
// source stays at the parent pointer; the detail names the missing child.
func MissingChild(tpl Violation, child string) Violation {
	v := tpl
	v.Code = CodeMissingChild
	v.Title = "Child missing"
	v.Detail = fmt.Sprintf("`%s/%s` is missing", templatePath(tpl), child)
	v.Status = "422"
	v.Meta = Meta{"child": child}
	return v
}

// WrongType reports a value of the wrong shape. typeName is the wire-format
// type name ("object", "array", "resource linkage", ...), never a host
// language representation name.
func WrongType(tpl Violation, typeName string) Violation {
	v := tpl
	v.Code = CodeTypeMismatch
	v.Title = "Type is wrong"
	v.Detail = fmt.Sprintf("`%s` type is not %s", templatePath(tpl), typeName)
	v.Status = "422"
	v.Meta = Meta{"type": typeName}
	return v
}

// ConflictingChildren reports mutually exclusive children appearing together.
func ConflictingChildren(tpl Violation, children []string) Violation {
	v := tpl
	v.Code = CodeConflictingChildren
	v.Title = "Children conflicting"
	v.Detail = fmt.Sprintf("the following children of `%s` are mutually exclusive: %s",
		templatePath(tpl), quotedList(children))
	v.Status = "422"
	v.Meta = Meta{"children": childList(children)}
	return v
}

// MinimumChildren reports an object carrying none of a set of children of
// which at least one must be present.
func MinimumChildren(tpl Violation, children []string) Violation {
	v := tpl
	v.Code = CodeInsufficientChildren
	v.Title = "Not enough children"
	v.Detail = fmt.Sprintf("at least one of the following children of `%s` must be present: %s",
		templatePath(tpl), quotedList(children))
	v.Status = "422"
	v.Meta = Meta{"children": childList(children)}
	return v
}

// UnknownRelationshipPath reports an unresolvable relationship path. A zero
// template defaults the source to the "include" query parameter; this is the
// one constructor whose violations may carry no document pointer.
func UnknownRelationshipPath(tpl Violation, path string) Violation {
	v := tpl
	if v.Source == nil {
		p := ParameterPointer("include")
		v.Source = &p
	}
	v.Code = CodeUnknownRelationshipPath
	v.Title = "Unknown relationship path"
	v.Detail = fmt.Sprintf("`%s` is an unknown relationship path", path)
	v.Meta = Meta{"relationship_path": path}
	return v
}

// AdaptedViolation passes through an error adapted from an external
// validation source as a {pointer, title, detail} triple.
func AdaptedViolation(p Pointer, title, detail string) Violation {
	return Violation{
		Code:   CodeAdapted,
		Title:  title,
		Detail: detail,
		Source: &p,
	}
}

// childList widens a name list to the generic value space, so a constructor
// violation's meta survives an encode/decode trip unchanged.
func childList(names []string) []any {
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}

func quotedList(names []string) string {
	b := &strings.Builder{}
	for i, n := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("`")
		b.WriteString(n)
		b.WriteString("`")
	}
	return b.String()
}
