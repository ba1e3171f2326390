package restwire_test

import (
	"context"
	"testing"

	restwire "github.com/restwire/restwire"
)

func TestDecodeResource_MissingRequiredFieldsAccumulate(t *testing.T) {
	_, err := restwire.DecodeResource(context.Background(), map[string]any{})
	vs, ok := restwire.AsViolations(err)
	if !ok {
		t.Fatalf("expected violations, got %v", err)
	}
	if len(vs) != 2 {
		t.Fatalf("expected one violation per missing field, got %d: %v", len(vs), vs)
	}
	for _, v := range vs {
		if v.Code != restwire.CodeMissingChild {
			t.Fatalf("code: %q", v.Code)
		}
	}
}

func TestDecodeResource_CreationContextAllowsMissingID(t *testing.T) {
	res, err := restwire.DecodeResource(context.Background(),
		map[string]any{"type": "articles", "attributes": map[string]any{"title": "Intro"}},
		restwire.ParseOpt{Creation: true})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Type != "articles" || res.ID != "" {
		t.Fatalf("resource: %+v", res)
	}
	if res.Attributes["title"] != "Intro" {
		t.Fatalf("attributes: %v", res.Attributes)
	}
}

func TestDecodeResource_CreationContextStillRequiresType(t *testing.T) {
	_, err := restwire.DecodeResource(context.Background(),
		map[string]any{"attributes": map[string]any{}},
		restwire.ParseOpt{Creation: true})
	vs, ok := restwire.AsViolations(err)
	if !ok || len(vs) != 1 {
		t.Fatalf("expected single missing type violation, got %v", err)
	}
	if vs[0].Detail != "`/type` is missing" {
		t.Fatalf("detail: %q", vs[0].Detail)
	}
}

func TestDecodeResource_AttributesWrongType(t *testing.T) {
	_, err := restwire.DecodeResource(context.Background(), map[string]any{
		"type":       "articles",
		"id":         "1",
		"attributes": []any{},
	})
	vs, ok := restwire.AsViolations(err)
	if !ok || len(vs) != 1 {
		t.Fatalf("expected one violation, got %v", err)
	}
	if vs[0].Source.Path() != "/attributes" {
		t.Fatalf("source: %q", vs[0].Source.Path())
	}
}

func TestDecodeResource_RelationshipViolationsAnchorUnderName(t *testing.T) {
	_, err := restwire.DecodeResource(context.Background(), map[string]any{
		"type": "articles",
		"id":   "1",
		"relationships": map[string]any{
			"author": map[string]any{},
		},
	})
	vs, ok := restwire.AsViolations(err)
	if !ok || len(vs) != 1 {
		t.Fatalf("expected one violation, got %v", err)
	}
	if vs[0].Code != restwire.CodeInsufficientChildren {
		t.Fatalf("code: %q", vs[0].Code)
	}
	if vs[0].Source.Path() != "/relationships/author" {
		t.Fatalf("source: %q", vs[0].Source.Path())
	}
}

func TestDecodeResource_NestedRelationshipPointerBookkeeping(t *testing.T) {
	_, err := restwire.DecodeResource(context.Background(), map[string]any{
		"type": "articles",
		"id":   "1",
		"relationships": map[string]any{
			"author": map[string]any{
				"data": map[string]any{"id": "9"},
			},
		},
	})
	vs, ok := restwire.AsViolations(err)
	if !ok || len(vs) != 1 {
		t.Fatalf("expected one violation, got %v", err)
	}
	if vs[0].Detail != "`/relationships/author/data/type` is missing" {
		t.Fatalf("detail: %q", vs[0].Detail)
	}
}

func TestDecodeResource_SiblingRelationshipViolationsAreAllReported(t *testing.T) {
	_, err := restwire.DecodeResource(context.Background(), map[string]any{
		"type": "articles",
		"id":   "1",
		"relationships": map[string]any{
			"author":   map[string]any{},
			"comments": map[string]any{"data": "bad"},
		},
	})
	vs, ok := restwire.AsViolations(err)
	if !ok || len(vs) != 2 {
		t.Fatalf("expected 2 violations, got %v", err)
	}
	// relationship names are visited in sorted order
	if vs[0].Source.Path() != "/relationships/author" {
		t.Fatalf("first source: %q", vs[0].Source.Path())
	}
	if vs[1].Source.Path() != "/relationships/comments/data" {
		t.Fatalf("second source: %q", vs[1].Source.Path())
	}
}

func TestDecodeResource_NonObject(t *testing.T) {
	_, err := restwire.DecodeResource(context.Background(), []any{})
	vs, ok := restwire.AsViolations(err)
	if !ok || len(vs) != 1 {
		t.Fatalf("expected single violation, got %v", err)
	}
	if vs[0].Detail != "`` type is not resource object" {
		t.Fatalf("detail: %q", vs[0].Detail)
	}
}

func TestDecodeResource_FullShape(t *testing.T) {
	res, err := restwire.DecodeResource(context.Background(), map[string]any{
		"type":       "articles",
		"id":         "1",
		"attributes": map[string]any{"title": "Intro"},
		"relationships": map[string]any{
			"author": map[string]any{
				"data": map[string]any{"type": "people", "id": "9"},
			},
		},
		"links": map[string]any{"self": "/articles/1"},
		"meta":  map[string]any{"rev": "a1"},
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Links["self"].Href != "/articles/1" || res.Meta["rev"] != "a1" {
		t.Fatalf("links/meta: %+v %+v", res.Links, res.Meta)
	}
	ref, ok := res.Relationships["author"].Data.One()
	if !ok || ref.ResourceType() != "people" {
		t.Fatalf("author relationship: %+v", res.Relationships["author"])
	}
}
