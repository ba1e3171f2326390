package restwire

import "context"

// Document is the root of every decode and encode. Its primary data is a
// resource-mode linkage (absent, null, one resource, or many resources);
// data and errors are mutually exclusive.
type Document struct {
	Data     ResourceLinkage
	Errors   Violations
	Included []Resource
	Links    Links
	Meta     Meta
	JSONAPI  Meta
}

// ErrorDocument wraps a violation list as an errors-only document.
func ErrorDocument(vs Violations) Document {
	return Document{Errors: vs}
}

// DecodeDocument validates and decodes a whole document from a generic value.
// It returns either the fully typed document or the complete list of
// violations as the error; a partially populated document is never returned.
func DecodeDocument(ctx context.Context, v any, opts ...ParseOpt) (Document, error) {
	opt := lastOpt(opts)
	doc, vs := decodeDocumentValue(v, opt)
	if len(vs) > 0 {
		return Document{}, vs
	}
	return doc, nil
}

// DecodeRelationship decodes a single relationship object from a generic
// value, anchored at the document root.
func DecodeRelationship(ctx context.Context, v any) (Relationship, error) {
	rel, vs := relationshipRule(TemplateAt(PointerAt("")), v)
	if len(vs) > 0 {
		return Relationship{}, vs
	}
	return rel, nil
}

func decodeDocumentValue(v any, opt ParseOpt) (Document, Violations) {
	tpl := TemplateAt(PointerAt(""))
	obj, ok := asObject(v)
	if !ok {
		return Document{}, Violations{WrongType(tpl, typeNameDocument)}
	}

	_, hasData := obj["data"]
	_, hasErrors := obj["errors"]
	if hasData && hasErrors {
		return Document{}, Violations{ConflictingChildren(tpl, []string{"data", "errors"})}
	}

	r := &Reducer{}
	doc := Document{
		Data: Collect(r, DecodeField(tpl, obj, "data", false, func(tpl Violation, v any) (ResourceLinkage, Violations) {
			return decodeLinkageValue(tpl, v, resourceMode, opt)
		})),
		Errors:   Collect(r, DecodeField(tpl, obj, "errors", false, errorsRule)),
		Included: Collect(r, DecodeField(tpl, obj, "included", false, includedRule)),
		Links:    Collect(r, DecodeField(tpl, obj, "links", false, linksRule)),
		Meta:     Collect(r, DecodeField(tpl, obj, "meta", false, metaRule)),
		JSONAPI:  Collect(r, DecodeField(tpl, obj, "jsonapi", false, metaRule)),
	}
	if r.Failed() {
		return Document{}, r.Violations()
	}
	return doc, nil
}

func includedRule(tpl Violation, v any) ([]Resource, Violations) {
	arr, ok := asArray(v)
	if !ok {
		return nil, Violations{WrongType(tpl, typeNameArray)}
	}
	out := make([]Resource, 0, len(arr))
	var all Violations
	for i, el := range arr {
		res, vs := strictResourceRule(descendTemplateIndex(tpl, i), el)
		if len(vs) > 0 {
			all = AppendViolations(all, vs...)
			continue
		}
		out = append(out, res)
	}
	if len(all) > 0 {
		return nil, all
	}
	return out, nil
}

func errorsRule(tpl Violation, v any) (Violations, Violations) {
	arr, ok := asArray(v)
	if !ok {
		return nil, Violations{WrongType(tpl, typeNameArray)}
	}
	out := make(Violations, 0, len(arr))
	var all Violations
	for i, el := range arr {
		ev, vs := errorObjectRule(descendTemplateIndex(tpl, i), el)
		if len(vs) > 0 {
			all = AppendViolations(all, vs...)
			continue
		}
		out = append(out, ev)
	}
	if len(all) > 0 {
		return nil, all
	}
	return out, nil
}

// errorObjectRule decodes one error object; every member is optional, so the
// system can always re-read its own error output.
func errorObjectRule(tpl Violation, v any) (Violation, Violations) {
	obj, ok := asObject(v)
	if !ok {
		return Violation{}, Violations{WrongType(tpl, typeNameErrorObject)}
	}
	r := &Reducer{}
	out := Violation{
		ID:     Collect(r, DecodeField(tpl, obj, "id", false, StringRule)),
		Links:  Collect(r, DecodeField(tpl, obj, "links", false, linksRule)),
		Status: Collect(r, DecodeField(tpl, obj, "status", false, StringRule)),
		Code:   Collect(r, DecodeField(tpl, obj, "code", false, StringRule)),
		Title:  Collect(r, DecodeField(tpl, obj, "title", false, StringRule)),
		Detail: Collect(r, DecodeField(tpl, obj, "detail", false, StringRule)),
		Source: Collect(r, DecodeField(tpl, obj, "source", false, errorSourceRule)),
		Meta:   Collect(r, DecodeField(tpl, obj, "meta", false, metaRule)),
	}
	if r.Failed() {
		return Violation{}, r.Violations()
	}
	return out, nil
}

func errorSourceRule(tpl Violation, v any) (*Pointer, Violations) {
	obj, ok := asObject(v)
	if !ok {
		return nil, Violations{WrongType(tpl, typeNameObject)}
	}
	r := &Reducer{}
	ptr := DecodeField(tpl, obj, "pointer", false, StringRule)
	param := DecodeField(tpl, obj, "parameter", false, StringRule)
	path := Collect(r, ptr)
	name := Collect(r, param)
	if r.Failed() {
		return nil, r.Violations()
	}
	switch {
	case ptr.IsSuccess():
		p := PointerAt(path)
		return &p, nil
	case param.IsSuccess():
		p := ParameterPointer(name)
		return &p, nil
	default:
		return nil, nil
	}
}
