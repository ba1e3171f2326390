package restwire

import (
	"strconv"
	"strings"
)

// Pointer locates a value inside a decoded document. It is either a JSON
// Pointer path or a query parameter name, never both. Pointers are immutable
// values; descending creates a new Pointer.
type Pointer struct {
	path      string
	parameter string
	isParam   bool
}

// PointerAt returns a Pointer for the given JSON Pointer path. The document
// root is PointerAt("").
func PointerAt(path string) Pointer { return Pointer{path: path} }

// ParameterPointer returns a Pointer naming a query parameter instead of a
// document location.
func ParameterPointer(name string) Pointer {
	return Pointer{parameter: name, isParam: true}
}

// Field descends to the named child. Names are escaped per RFC 6901
// ('~' -> '~0', '/' -> '~1'). Descending a parameter pointer is a no-op.
func (p Pointer) Field(name string) Pointer {
	if p.isParam {
		return p
	}
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return Pointer{path: p.path + "/" + esc}
}

// Index descends to the i-th element of an array child.
func (p Pointer) Index(i int) Pointer {
	if p.isParam {
		return p
	}
	return Pointer{path: p.path + "/" + strconv.Itoa(i)}
}

// IsParameter reports whether the pointer names a query parameter.
func (p Pointer) IsParameter() bool { return p.isParam }

// Path returns the JSON Pointer path; empty for parameter pointers.
func (p Pointer) Path() string {
	if p.isParam {
		return ""
	}
	return p.path
}

// Parameter returns the query parameter name; empty for path pointers.
func (p Pointer) Parameter() string {
	if !p.isParam {
		return ""
	}
	return p.parameter
}

// String renders the location for message interpolation.
func (p Pointer) String() string {
	if p.isParam {
		return p.parameter
	}
	return p.path
}
