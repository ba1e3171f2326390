package restwire_test

import (
	"testing"

	restwire "github.com/restwire/restwire"
)

func TestDecodeField_Success(t *testing.T) {
	tpl := restwire.TemplateAt(restwire.PointerAt(""))
	obj := map[string]any{"type": "articles"}

	o := restwire.DecodeField(tpl, obj, "type", true, restwire.StringRule)
	if !o.IsSuccess() || o.Value() != "articles" {
		t.Fatalf("expected success, got %+v", o)
	}
}

func TestDecodeField_AbsentIsNotAnError(t *testing.T) {
	tpl := restwire.TemplateAt(restwire.PointerAt(""))
	o := restwire.DecodeField(tpl, map[string]any{}, "meta", false, restwire.ObjectRule)
	if !o.IsAbsent() {
		t.Fatalf("expected absent, got %+v", o)
	}
	if o.Violations() != nil {
		t.Fatalf("absent carries no violations")
	}
}

func TestDecodeField_RequiredMissingReportsAtParent(t *testing.T) {
	tpl := restwire.TemplateAt(restwire.PointerAt("/data"))
	o := restwire.DecodeField(tpl, map[string]any{}, "type", true, restwire.StringRule)
	if !o.IsFailure() {
		t.Fatalf("expected failure")
	}
	vs := o.Violations()
	if len(vs) != 1 || vs[0].Code != restwire.CodeMissingChild {
		t.Fatalf("violations: %v", vs)
	}
	if vs[0].Source.Path() != "/data" {
		t.Fatalf("missing child anchors at the parent, got %q", vs[0].Source.Path())
	}
	if vs[0].Detail != "`/data/type` is missing" {
		t.Fatalf("detail: %q", vs[0].Detail)
	}
}

func TestDecodeField_WrongTypeReportsAtDescendedPointer(t *testing.T) {
	tpl := restwire.TemplateAt(restwire.PointerAt("/data"))
	o := restwire.DecodeField(tpl, map[string]any{"type": 1}, "type", true, restwire.StringRule)
	if !o.IsFailure() {
		t.Fatalf("expected failure")
	}
	vs := o.Violations()
	if len(vs) != 1 || vs[0].Code != restwire.CodeTypeMismatch {
		t.Fatalf("violations: %v", vs)
	}
	if vs[0].Source.Path() != "/data/type" {
		t.Fatalf("type mismatch anchors at the child, got %q", vs[0].Source.Path())
	}
}

func TestDecodeField_NilRulePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil rule")
		}
	}()
	tpl := restwire.TemplateAt(restwire.PointerAt(""))
	restwire.DecodeField[string](tpl, map[string]any{}, "x", true, nil)
}

func TestReducer_AllSuccessOrAbsent(t *testing.T) {
	tpl := restwire.TemplateAt(restwire.PointerAt(""))
	obj := map[string]any{"type": "articles"}

	r := &restwire.Reducer{}
	typ := restwire.Collect(r, restwire.DecodeField(tpl, obj, "type", true, restwire.StringRule))
	id := restwire.Collect(r, restwire.DecodeField(tpl, obj, "id", false, restwire.StringRule))
	if r.Failed() {
		t.Fatalf("unexpected failure: %v", r.Violations())
	}
	if typ != "articles" || id != "" {
		t.Fatalf("collected: %q %q", typ, id)
	}
}

func TestReducer_UnionsAllFailures(t *testing.T) {
	tpl := restwire.TemplateAt(restwire.PointerAt(""))
	obj := map[string]any{"c": 3}

	r := &restwire.Reducer{}
	restwire.Collect(r, restwire.DecodeField(tpl, obj, "a", true, restwire.StringRule))
	restwire.Collect(r, restwire.DecodeField(tpl, obj, "b", true, restwire.StringRule))
	restwire.Collect(r, restwire.DecodeField(tpl, obj, "c", true, restwire.StringRule))
	if !r.Failed() {
		t.Fatalf("expected failure")
	}
	vs := r.Violations()
	if len(vs) != 3 {
		t.Fatalf("expected all three violations reported together, got %d: %v", len(vs), vs)
	}
}

func TestOutcomeConstructors(t *testing.T) {
	s := restwire.Success(42)
	if !s.IsSuccess() || s.Value() != 42 {
		t.Fatalf("success: %+v", s)
	}
	a := restwire.Absent[int]()
	if !a.IsAbsent() || a.Value() != 0 {
		t.Fatalf("absent: %+v", a)
	}
	f := restwire.Failure[int](restwire.Violations{{Code: restwire.CodeTypeMismatch}})
	if !f.IsFailure() || len(f.Violations()) != 1 {
		t.Fatalf("failure: %+v", f)
	}
}
