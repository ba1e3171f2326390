package engine

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents one streaming token.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
}

// TokenSource is the minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
}

// Options controls runtime enforcement while building the generic value.
type Options struct {
	// MaxDepth bounds container nesting; 0 means no limit.
	MaxDepth int
	// RejectDuplicateKeys makes a repeated object key an error.
	RejectDuplicateKeys bool
}

// DepthError reports nesting beyond Options.MaxDepth.
type DepthError struct {
	Depth int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("engine: max depth %d exceeded", e.Depth)
}

// DuplicateKeyError reports a repeated key within one object. Path is the
// pointer of the enclosing object, empty at the document root.
type DuplicateKeyError struct {
	Path string
	Key  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("engine: duplicate key %q at %s", e.Key, e.Path)
}

type decoder struct {
	src   TokenSource
	opt   Options
	depth int
}

// DecodeAny builds a generic value (nil | bool | json.Number | string |
// []any | map[string]any) from the token source, enforcing depth and
// duplicate-key policy along the way.
func DecodeAny(src TokenSource, opt Options) (any, error) {
	d := &decoder{src: src, opt: opt}
	tok, err := src.NextToken()
	if err != nil {
		return nil, err
	}
	return d.value(tok, "")
}

func (d *decoder) value(tok Token, path string) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		return d.object(path)
	case KindBeginArray:
		return d.array(path)
	case KindString:
		return tok.String, nil
	case KindNumber:
		return json.Number(tok.Number), nil
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func (d *decoder) enter() error {
	d.depth++
	if d.opt.MaxDepth > 0 && d.depth > d.opt.MaxDepth {
		return &DepthError{Depth: d.opt.MaxDepth}
	}
	return nil
}

func (d *decoder) object(path string) (any, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	m := make(map[string]any)
	for {
		tok, err := d.src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndObject {
			return m, nil
		}
		if tok.Kind != KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		key := tok.String
		if d.opt.RejectDuplicateKeys {
			if _, dup := m[key]; dup {
				return nil, &DuplicateKeyError{Path: path, Key: key}
			}
		}
		vt, err := d.src.NextToken()
		if err != nil {
			return nil, err
		}
		v, err := d.value(vt, path+"/"+key)
		if err != nil {
			return nil, err
		}
		m[key] = v
	}
}

func (d *decoder) array(path string) (any, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	arr := []any{}
	for {
		tok, err := d.src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := d.value(tok, fmt.Sprintf("%s/%d", path, len(arr)))
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}
