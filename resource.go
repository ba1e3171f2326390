package restwire

import "context"

// Resource is a full resource object: type and id, plain attributes, named
// relationships, links, and meta. The resource exclusively owns its
// relationships map; linkages inside it reference other resources by type and
// id, never by object identity.
type Resource struct {
	Type          string
	ID            string
	Attributes    map[string]any
	Relationships map[string]Relationship
	Links         Links
	Meta          Meta

	// idSet records that the id key was present in the source, so an
	// empty-string id is not collapsed with an absent one on re-encode.
	idSet bool
}

// DecodeResource decodes a single resource object from a generic value. The
// id member is required unless opts marks a creation context (a
// client-supplied resource without a server-assigned id).
func DecodeResource(ctx context.Context, v any, opts ...ParseOpt) (Resource, error) {
	opt := lastOpt(opts)
	res, vs := decodeResourceValue(TemplateAt(PointerAt("")), v, opt)
	if len(vs) > 0 {
		return Resource{}, vs
	}
	return res, nil
}

func decodeResourceValue(tpl Violation, v any, opt ParseOpt) (Resource, Violations) {
	obj, ok := asObject(v)
	if !ok {
		return Resource{}, Violations{WrongType(tpl, typeNameResource)}
	}
	return decodeResourceObject(tpl, obj, opt)
}

func decodeResourceObject(tpl Violation, obj map[string]any, opt ParseOpt) (Resource, Violations) {
	r := &Reducer{}
	idOut := DecodeField(tpl, obj, "id", !opt.Creation, StringRule)
	res := Resource{
		Type:          Collect(r, DecodeField(tpl, obj, "type", true, StringRule)),
		ID:            Collect(r, idOut),
		Attributes:    Collect(r, DecodeField(tpl, obj, "attributes", false, ObjectRule)),
		Relationships: Collect(r, DecodeField(tpl, obj, "relationships", false, relationshipsRule)),
		Links:         Collect(r, DecodeField(tpl, obj, "links", false, linksRule)),
		Meta:          Collect(r, DecodeField(tpl, obj, "meta", false, metaRule)),
	}
	res.idSet = idOut.IsSuccess()
	if r.Failed() {
		return Resource{}, r.Violations()
	}
	return res, nil
}

// strictResourceRule decodes a resource object with id always required,
// regardless of creation context. Included resources and relationship-borne
// resources are server-known by definition.
func strictResourceRule(tpl Violation, v any) (Resource, Violations) {
	return decodeResourceValue(tpl, v, ParseOpt{})
}
