package restwire

// Wire-format type names used in type violations. Details always speak the
// format's vocabulary, never the host representation ("map[string]any").
const (
	typeNameObject             = "object"
	typeNameArray              = "array"
	typeNameString             = "string"
	typeNameDocument           = "document"
	typeNameResource           = "resource object"
	typeNameResourceIdentifier = "resource identifier"
	typeNameRelationship       = "relationship"
	typeNameResourceLinkage    = "resource linkage"
	typeNameLink               = "link"
	typeNameErrorObject        = "error object"
)

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asArray(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// descendTemplate returns a copy of tpl whose source points at the named
// child. Templates without a source pass through unchanged.
func descendTemplate(tpl Violation, name string) Violation {
	if tpl.Source == nil {
		return tpl
	}
	p := tpl.Source.Field(name)
	out := tpl
	out.Source = &p
	return out
}

func descendTemplateIndex(tpl Violation, i int) Violation {
	if tpl.Source == nil {
		return tpl
	}
	p := tpl.Source.Index(i)
	out := tpl
	out.Source = &p
	return out
}
