package restwire

// Link is a single link member: on the wire either a bare URL string or an
// object carrying href and meta. The decoded form remembers which shape it
// came from so re-encoding does not collapse the two.
type Link struct {
	Href string
	Meta Meta

	object bool
}

// ObjectLink builds a Link that encodes in the object form even without meta.
func ObjectLink(href string, meta Meta) Link {
	return Link{Href: href, Meta: meta, object: true}
}

// StringLink builds a Link that encodes as a bare URL string.
func StringLink(href string) Link { return Link{Href: href} }

// IsObject reports whether the link encodes in the object form.
func (l Link) IsObject() bool { return l.object || l.Meta != nil }

// Links maps link names ("self", "related", "about", ...) to links.
type Links map[string]Link

func linkRule(tpl Violation, v any) (Link, Violations) {
	switch val := v.(type) {
	case string:
		return Link{Href: val}, nil
	case map[string]any:
		r := &Reducer{}
		href := Collect(r, DecodeField(tpl, val, "href", true, StringRule))
		meta := Collect(r, DecodeField(tpl, val, "meta", false, metaRule))
		if r.Failed() {
			return Link{}, r.Violations()
		}
		return Link{Href: href, Meta: meta, object: true}, nil
	default:
		return Link{}, Violations{WrongType(tpl, typeNameLink)}
	}
}

func linksRule(tpl Violation, v any) (Links, Violations) {
	obj, ok := asObject(v)
	if !ok {
		return nil, Violations{WrongType(tpl, typeNameObject)}
	}
	out := make(Links, len(obj))
	var all Violations
	for _, name := range sortedKeys(obj) {
		l, vs := linkRule(descendTemplate(tpl, name), obj[name])
		if len(vs) > 0 {
			all = AppendViolations(all, vs...)
			continue
		}
		out[name] = l
	}
	if len(all) > 0 {
		return nil, all
	}
	return out, nil
}
