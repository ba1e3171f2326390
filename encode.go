package restwire

// Encoding builds generic wire values with an explicit per-field omit rule:
// a member that was never set is omitted, while an explicit null (the Null
// linkage) is emitted as null. The two are never collapsed to one form.

// MarshalDocument serializes the document through the configured JSON driver.
func MarshalDocument(d Document) ([]byte, error) {
	return getJSONDriver().Marshal(d.WireValue())
}

// WireValue builds the generic wire value for the whole document.
func (d Document) WireValue() any {
	out := map[string]any{}
	if dv, ok := d.Data.wireValue(); ok {
		out["data"] = dv
	}
	if d.Errors != nil {
		errs := make([]any, 0, len(d.Errors))
		for _, v := range d.Errors {
			errs = append(errs, v.wireValue())
		}
		out["errors"] = errs
	}
	if d.Included != nil {
		inc := make([]any, 0, len(d.Included))
		for _, res := range d.Included {
			inc = append(inc, res.wireValue())
		}
		out["included"] = inc
	}
	if d.Links != nil {
		out["links"] = d.Links.wireValue()
	}
	if d.Meta != nil {
		out["meta"] = map[string]any(d.Meta)
	}
	if d.JSONAPI != nil {
		out["jsonapi"] = map[string]any(d.JSONAPI)
	}
	return out
}

// wireValue returns the linkage's wire form and whether the data key should
// be emitted at all. Unset omits the key; Null emits an explicit null.
func (l ResourceLinkage) wireValue() (any, bool) {
	switch l.tag {
	case LinkageNull:
		return nil, true
	case LinkageOne:
		return l.one.wireValue(), true
	case LinkageMany:
		out := make([]any, 0, len(l.many))
		for _, ref := range l.many {
			out = append(out, ref.wireValue())
		}
		return out, true
	default:
		return nil, false
	}
}

func (r Ref) wireValue() any {
	if r.resource != nil {
		return r.resource.wireValue()
	}
	if r.identifier != nil {
		return r.identifier.wireValue()
	}
	return nil
}

func (id ResourceIdentifier) wireValue() any {
	out := map[string]any{"type": id.Type, "id": id.ID}
	if id.Meta != nil {
		out["meta"] = map[string]any(id.Meta)
	}
	return out
}

func (res Resource) wireValue() any {
	out := map[string]any{"type": res.Type}
	if res.idSet || res.ID != "" {
		out["id"] = res.ID
	}
	if res.Attributes != nil {
		out["attributes"] = res.Attributes
	}
	if res.Relationships != nil {
		rels := make(map[string]any, len(res.Relationships))
		for name, rel := range res.Relationships {
			rels[name] = rel.wireValue()
		}
		out["relationships"] = rels
	}
	if res.Links != nil {
		out["links"] = res.Links.wireValue()
	}
	if res.Meta != nil {
		out["meta"] = map[string]any(res.Meta)
	}
	return out
}

func (rel Relationship) wireValue() any {
	out := map[string]any{}
	if dv, ok := rel.Data.wireValue(); ok {
		out["data"] = dv
	}
	if rel.Links != nil {
		out["links"] = rel.Links.wireValue()
	}
	if rel.Meta != nil {
		out["meta"] = map[string]any(rel.Meta)
	}
	return out
}

func (ls Links) wireValue() any {
	out := make(map[string]any, len(ls))
	for name, l := range ls {
		out[name] = l.wireValue()
	}
	return out
}

func (l Link) wireValue() any {
	if !l.IsObject() {
		return l.Href
	}
	out := map[string]any{"href": l.Href}
	if l.Meta != nil {
		out["meta"] = map[string]any(l.Meta)
	}
	return out
}

func (v Violation) wireValue() any {
	out := map[string]any{}
	if v.ID != "" {
		out["id"] = v.ID
	}
	if v.Links != nil {
		out["links"] = v.Links.wireValue()
	}
	if v.Status != "" {
		out["status"] = v.Status
	}
	if v.Code != "" {
		out["code"] = v.Code
	}
	if v.Title != "" {
		out["title"] = v.Title
	}
	if v.Detail != "" {
		out["detail"] = v.Detail
	}
	if v.Source != nil {
		out["source"] = v.Source.wireValue()
	}
	if v.Meta != nil {
		out["meta"] = map[string]any(v.Meta)
	}
	return out
}

func (p Pointer) wireValue() any {
	if p.isParam {
		return map[string]any{"parameter": p.parameter}
	}
	return map[string]any{"pointer": p.path}
}
