package restwire

import "sort"

// Meta is a free-form wire object. The format attaches one to nearly every
// entity; its contents are not validated beyond being an object.
type Meta map[string]any

func metaRule(tpl Violation, v any) (Meta, Violations) {
	obj, ok := asObject(v)
	if !ok {
		return nil, Violations{WrongType(tpl, typeNameObject)}
	}
	out := make(Meta, len(obj))
	for k, val := range obj {
		out[k] = val
	}
	return out, nil
}

// sortedKeys returns map keys in ascending order for deterministic violation
// ordering across sibling entries.
func sortedKeys[V any](m map[string]V) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
