package restwire

// KeyedError is one record from an external validation source: a field key,
// a message template, and its substitution values. Mapping it onto the
// document is policy the core does not own.
type KeyedError struct {
	Key     string
	Message string
	Params  map[string]any
}

// Adapter maps one external keyed validation error into the {pointer, title,
// detail} triple an adapted violation is built from. It is an injected
// collaborator; the core only consumes it.
type Adapter func(KeyedError) (Pointer, string, string)

// AdaptAll applies the adapter to each record and collects the adapted
// violations, preserving order.
func AdaptAll(ad Adapter, errs []KeyedError) Violations {
	if ad == nil {
		panic("restwire: AdaptAll requires an adapter")
	}
	out := make(Violations, 0, len(errs))
	for _, ke := range errs {
		p, title, detail := ad(ke)
		out = append(out, AdaptedViolation(p, title, detail))
	}
	return out
}
