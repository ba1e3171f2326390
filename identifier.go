package restwire

// ResourceIdentifier is the minimal reference to a resource: its type and id,
// plus optional metadata, without attributes.
type ResourceIdentifier struct {
	Type string
	ID   string
	Meta Meta
}

func identifierRule(tpl Violation, v any) (ResourceIdentifier, Violations) {
	obj, ok := asObject(v)
	if !ok {
		return ResourceIdentifier{}, Violations{WrongType(tpl, typeNameResourceIdentifier)}
	}
	r := &Reducer{}
	typ := Collect(r, DecodeField(tpl, obj, "type", true, StringRule))
	id := Collect(r, DecodeField(tpl, obj, "id", true, StringRule))
	meta := Collect(r, DecodeField(tpl, obj, "meta", false, metaRule))
	if r.Failed() {
		return ResourceIdentifier{}, r.Violations()
	}
	return ResourceIdentifier{Type: typ, ID: id, Meta: meta}, nil
}
