package restwire_test

import (
	"testing"

	restwire "github.com/restwire/restwire"
)

func TestPointer_Descend(t *testing.T) {
	p := restwire.PointerAt("").Field("data").Field("type")
	if got := p.String(); got != "/data/type" {
		t.Fatalf("expected /data/type, got %q", got)
	}
	if p.IsParameter() {
		t.Fatalf("path pointer must not report as parameter")
	}

	q := restwire.PointerAt("/data").Index(2).Field("id")
	if got := q.String(); got != "/data/2/id" {
		t.Fatalf("expected /data/2/id, got %q", got)
	}
}

func TestPointer_DescendIsImmutable(t *testing.T) {
	base := restwire.PointerAt("/data")
	_ = base.Field("attributes")
	if got := base.String(); got != "/data" {
		t.Fatalf("descending must not mutate the receiver, got %q", got)
	}
}

func TestPointer_EscapesPerRFC6901(t *testing.T) {
	p := restwire.PointerAt("").Field("a/b").Field("c~d")
	if got := p.String(); got != "/a~1b/c~0d" {
		t.Fatalf("expected /a~1b/c~0d, got %q", got)
	}
}

func TestPointer_Parameter(t *testing.T) {
	p := restwire.ParameterPointer("include")
	if !p.IsParameter() {
		t.Fatalf("expected parameter pointer")
	}
	if got := p.Parameter(); got != "include" {
		t.Fatalf("expected include, got %q", got)
	}
	if got := p.Path(); got != "" {
		t.Fatalf("parameter pointer must have no path, got %q", got)
	}
	// descending a parameter pointer is a no-op
	if got := p.Field("x").String(); got != "include" {
		t.Fatalf("expected include, got %q", got)
	}
}
