// Package restwire decodes, validates, and re-encodes resource-oriented wire
// documents: primary data, relationships, included resources, links, meta,
// and structured error lists.
//
//   - Validating decode from untrusted generic values into typed structs
//   - A stable error model via Violations (JSON Pointer, title, detail, meta)
//   - Exhaustive multi-error accumulation; a decode never returns a partial value
//   - Cycle-safe flattening of a resource graph into plain params maps
//
// Design policy:
//
//   - Keep only public APIs in the root package; put token plumbing under internal/.
//   - Place alternate input formats under source/ (for example source/yaml).
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, err := restwire.ParseDocument(ctx, restwire.JSONBytes(data))
//	if vs, ok := restwire.AsViolations(err); ok {
//		out, _ := restwire.MarshalDocument(restwire.ErrorDocument(vs))
//		// out is a complete errors-only document
//	}
//
//	params, ok := restwire.FlattenDocument(doc)
package restwire
