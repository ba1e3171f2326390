package restwire

// LinkageTag discriminates the four shapes a linkage can take. The zero value
// is LinkageUnset, so a freshly declared linkage reads as "the data key never
// appeared".
type LinkageTag uint8

const (
	// LinkageUnset means the data key was absent from the source object.
	LinkageUnset LinkageTag = iota
	// LinkageNull means the data key was present and explicitly null.
	LinkageNull
	// LinkageOne holds a single identifier or resource.
	LinkageOne
	// LinkageMany holds an ordered, possibly empty, list.
	LinkageMany
)

// Ref is one element of a resource linkage: either a bare resource identifier
// or an embedded full resource. The resource variant is held behind a pointer
// to break the Document/Resource/Relationship definition cycle.
type Ref struct {
	identifier *ResourceIdentifier
	resource   *Resource
}

// IdentifierRef wraps a bare identifier.
func IdentifierRef(id ResourceIdentifier) Ref { return Ref{identifier: &id} }

// ResourceRef wraps an embedded full resource.
func ResourceRef(res Resource) Ref { return Ref{resource: &res} }

// Identifier returns the identifier variant.
func (r Ref) Identifier() (ResourceIdentifier, bool) {
	if r.identifier == nil {
		return ResourceIdentifier{}, false
	}
	return *r.identifier, true
}

// Resource returns the embedded resource variant.
func (r Ref) Resource() (*Resource, bool) {
	if r.resource == nil {
		return nil, false
	}
	return r.resource, true
}

// ResourceType returns the type from whichever variant is populated.
func (r Ref) ResourceType() string {
	if r.identifier != nil {
		return r.identifier.Type
	}
	if r.resource != nil {
		return r.resource.Type
	}
	return ""
}

// ResourceID returns the id from whichever variant is populated.
func (r Ref) ResourceID() string {
	if r.identifier != nil {
		return r.identifier.ID
	}
	if r.resource != nil {
		return r.resource.ID
	}
	return ""
}

// ResourceLinkage is the polymorphic data payload of a relationship, and of a
// document's primary data: not loaded, explicit empty-to-one, a single
// identifier-or-resource, or an ordered list of them.
type ResourceLinkage struct {
	tag  LinkageTag
	one  Ref
	many []Ref
}

// UnsetLinkage returns the "data key absent" sentinel.
func UnsetLinkage() ResourceLinkage { return ResourceLinkage{} }

// NullLinkage returns the explicit empty-to-one linkage.
func NullLinkage() ResourceLinkage { return ResourceLinkage{tag: LinkageNull} }

// OneLinkage wraps a single reference.
func OneLinkage(ref Ref) ResourceLinkage {
	return ResourceLinkage{tag: LinkageOne, one: ref}
}

// ManyLinkage wraps an ordered list of references; the list may be empty.
func ManyLinkage(refs []Ref) ResourceLinkage {
	if refs == nil {
		refs = []Ref{}
	}
	return ResourceLinkage{tag: LinkageMany, many: refs}
}

// Tag returns the linkage discriminator.
func (l ResourceLinkage) Tag() LinkageTag { return l.tag }

// IsUnset reports whether the data key never appeared in the source.
func (l ResourceLinkage) IsUnset() bool { return l.tag == LinkageUnset }

// IsNull reports whether the data key was present and null.
func (l ResourceLinkage) IsNull() bool { return l.tag == LinkageNull }

// One returns the single reference when the tag is LinkageOne.
func (l ResourceLinkage) One() (Ref, bool) {
	if l.tag != LinkageOne {
		return Ref{}, false
	}
	return l.one, true
}

// Many returns the reference list when the tag is LinkageMany.
func (l ResourceLinkage) Many() ([]Ref, bool) {
	if l.tag != LinkageMany {
		return nil, false
	}
	return l.many, true
}

// linkageMode selects how a linkage element object decodes: as a bare
// identifier (inside a relationship) or as a full resource object (top-level
// data and included).
type linkageMode uint8

const (
	identifierMode linkageMode = iota
	resourceMode
)

// decodeLinkageValue decodes a present data value by JSON shape. The Unset
// case never reaches here; callers map key absence to UnsetLinkage.
func decodeLinkageValue(tpl Violation, v any, mode linkageMode, opt ParseOpt) (ResourceLinkage, Violations) {
	switch val := v.(type) {
	case nil:
		return NullLinkage(), nil
	case map[string]any:
		ref, vs := decodeRef(tpl, val, mode, opt)
		if len(vs) > 0 {
			return ResourceLinkage{}, vs
		}
		return OneLinkage(ref), nil
	case []any:
		refs := make([]Ref, 0, len(val))
		var all Violations
		for i, el := range val {
			ref, vs := decodeRefValue(descendTemplateIndex(tpl, i), el, mode, opt)
			if len(vs) > 0 {
				all = AppendViolations(all, vs...)
				continue
			}
			refs = append(refs, ref)
		}
		if len(all) > 0 {
			return ResourceLinkage{}, all
		}
		return ManyLinkage(refs), nil
	default:
		return ResourceLinkage{}, Violations{WrongType(tpl, typeNameResourceLinkage)}
	}
}

func decodeRefValue(tpl Violation, v any, mode linkageMode, opt ParseOpt) (Ref, Violations) {
	obj, ok := asObject(v)
	if !ok {
		name := typeNameResourceIdentifier
		if mode == resourceMode {
			name = typeNameResource
		}
		return Ref{}, Violations{WrongType(tpl, name)}
	}
	return decodeRef(tpl, obj, mode, opt)
}

func decodeRef(tpl Violation, obj map[string]any, mode linkageMode, opt ParseOpt) (Ref, Violations) {
	if mode == resourceMode {
		res, vs := decodeResourceObject(tpl, obj, opt)
		if len(vs) > 0 {
			return Ref{}, vs
		}
		return ResourceRef(res), nil
	}
	id, vs := identifierRule(tpl, obj)
	if len(vs) > 0 {
		return Ref{}, vs
	}
	return IdentifierRef(id), nil
}
