package restwire

// The flattener turns a decoded resource graph into plain nested maps/lists
// for a persistence layer. Each distinct (type, id) expands at most once per
// pass; references seen again collapse to {"id": id}, which is what makes
// cyclic graphs terminate in time linear in the number of distinct reachable
// resources.

// ResourceIndex looks resources up by type, then id. Callers build one from a
// document's primary data plus included; linkages resolve against it by
// (type, id), never by object identity.
type ResourceIndex map[string]map[string]Resource

// NewResourceIndex returns an empty index.
func NewResourceIndex() ResourceIndex { return ResourceIndex{} }

// Add indexes one resource under its type and id. Resources without an id
// (creation context) are not indexable and are skipped.
func (idx ResourceIndex) Add(res Resource) {
	if res.Type == "" || res.ID == "" {
		return
	}
	byID := idx[res.Type]
	if byID == nil {
		byID = map[string]Resource{}
		idx[res.Type] = byID
	}
	byID[res.ID] = res
}

// Lookup resolves a (type, id) pair.
func (idx ResourceIndex) Lookup(typ, id string) (Resource, bool) {
	res, ok := idx[typ][id]
	return res, ok
}

// IndexDocument builds an index from a document's primary data and included
// resources.
func IndexDocument(doc Document) ResourceIndex {
	idx := NewResourceIndex()
	if ref, ok := doc.Data.One(); ok {
		if res, ok := ref.Resource(); ok {
			idx.Add(*res)
		}
	}
	if refs, ok := doc.Data.Many(); ok {
		for _, ref := range refs {
			if res, ok := ref.Resource(); ok {
				idx.Add(*res)
			}
		}
	}
	for _, res := range doc.Included {
		idx.Add(res)
	}
	return idx
}

// visitSet tracks (type, id) pairs already expanded within one flattening
// pass. It grows monotonically; marking happens before recursing, which is
// what breaks self- and mutually-referential cycles.
type visitSet map[string]map[string]bool

func (s visitSet) seen(typ, id string) bool { return s[typ][id] }

func (s visitSet) mark(typ, id string) {
	byID := s[typ]
	if byID == nil {
		byID = map[string]bool{}
		s[typ] = byID
	}
	byID[id] = true
}

// FlattenLinkage flattens one linkage against the index with a fresh visited
// set. The second return is false only for the Unset linkage, so callers can
// tell "no linkage data was ever decoded" from "included and empty": a Null
// linkage yields (nil, true).
func FlattenLinkage(l ResourceLinkage, idx ResourceIndex) (any, bool) {
	return flattenLinkage(l, idx, visitSet{})
}

// FlattenIdentifier flattens a raw identifier with a fresh visited set.
func FlattenIdentifier(id ResourceIdentifier, idx ResourceIndex) map[string]any {
	return flattenRef(IdentifierRef(id), idx, visitSet{})
}

// FlattenResource flattens an embedded resource with a fresh visited set.
func FlattenResource(res Resource, idx ResourceIndex) map[string]any {
	return flattenRef(ResourceRef(res), idx, visitSet{})
}

// FlattenDocument flattens a document's primary data against an index built
// from the document itself. One visited set is shared across the entire pass,
// so any repeated reference anywhere in the output, including across sibling
// top-level resources, collapses to {"id": id} after its first expansion.
// The second return is false when the document carries no data key.
func FlattenDocument(doc Document) (any, bool) {
	return flattenLinkage(doc.Data, IndexDocument(doc), visitSet{})
}

func flattenLinkage(l ResourceLinkage, idx ResourceIndex, seen visitSet) (any, bool) {
	switch l.tag {
	case LinkageNull:
		return nil, true
	case LinkageOne:
		return flattenRef(l.one, idx, seen), true
	case LinkageMany:
		out := make([]any, 0, len(l.many))
		for _, ref := range l.many {
			out = append(out, flattenRef(ref, idx, seen))
		}
		return out, true
	default:
		return nil, false
	}
}

func flattenRef(ref Ref, idx ResourceIndex, seen visitSet) map[string]any {
	if res, ok := ref.Resource(); ok {
		// An embedded full resource is its own source of truth; no index
		// lookup. It still participates in the visited set when addressable.
		if res.Type != "" && res.ID != "" {
			if seen.seen(res.Type, res.ID) {
				return map[string]any{"id": res.ID}
			}
			seen.mark(res.Type, res.ID)
		}
		return flattenResource(*res, idx, seen)
	}

	id, ok := ref.Identifier()
	if !ok {
		return nil
	}
	res, found := idx.Lookup(id.Type, id.ID)
	if !found || seen.seen(id.Type, id.ID) {
		// Foreign-key-only reference, or already expanded earlier this pass.
		return map[string]any{"id": id.ID}
	}
	seen.mark(id.Type, id.ID)
	return flattenResource(res, idx, seen)
}

func flattenResource(res Resource, idx ResourceIndex, seen visitSet) map[string]any {
	out := make(map[string]any, len(res.Attributes)+len(res.Relationships)+1)
	for k, v := range res.Attributes {
		out[k] = v
	}
	if res.ID != "" {
		out["id"] = res.ID
	}
	for _, name := range sortedKeys(res.Relationships) {
		v, ok := flattenLinkage(res.Relationships[name].Data, idx, seen)
		if !ok {
			continue // Unset: the relationship carried no data to flatten
		}
		out[name] = v
	}
	return out
}
