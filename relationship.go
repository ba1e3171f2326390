package restwire

// Relationship is one named relationship of a resource. At least one of the
// data, links, and meta keys must appear in the source object; Data defaults
// to the Unset linkage when the data key is absent.
type Relationship struct {
	Data  ResourceLinkage
	Links Links
	Meta  Meta
}

var relationshipChildren = []string{"data", "links", "meta"}

func relationshipRule(tpl Violation, v any) (Relationship, Violations) {
	obj, ok := asObject(v)
	if !ok {
		return Relationship{}, Violations{WrongType(tpl, typeNameRelationship)}
	}

	dataOut := DecodeField(tpl, obj, "data", false, identifierLinkageRule)
	linksOut := DecodeField(tpl, obj, "links", false, linksRule)
	metaOut := DecodeField(tpl, obj, "meta", false, metaRule)

	// "No information at all" is one coherent violation, not three non-events.
	// This check takes precedence over ordinary field reduction.
	if dataOut.IsAbsent() && linksOut.IsAbsent() && metaOut.IsAbsent() {
		return Relationship{}, Violations{MinimumChildren(tpl, relationshipChildren)}
	}

	r := &Reducer{}
	rel := Relationship{
		Data:  Collect(r, dataOut), // zero value is the Unset linkage
		Links: Collect(r, linksOut),
		Meta:  Collect(r, metaOut),
	}
	if r.Failed() {
		return Relationship{}, r.Violations()
	}
	return rel, nil
}

func identifierLinkageRule(tpl Violation, v any) (ResourceLinkage, Violations) {
	return decodeLinkageValue(tpl, v, identifierMode, ParseOpt{})
}

func relationshipsRule(tpl Violation, v any) (map[string]Relationship, Violations) {
	obj, ok := asObject(v)
	if !ok {
		return nil, Violations{WrongType(tpl, typeNameObject)}
	}
	out := make(map[string]Relationship, len(obj))
	var all Violations
	for _, name := range sortedKeys(obj) {
		rel, vs := relationshipRule(descendTemplate(tpl, name), obj[name])
		if len(vs) > 0 {
			all = AppendViolations(all, vs...)
			continue
		}
		out[name] = rel
	}
	if len(all) > 0 {
		return nil, all
	}
	return out, nil
}
