package restwire

import (
	"context"
	"io"
	"sync"

	eng "github.com/restwire/restwire/internal/engine"
	"github.com/restwire/restwire/source/gojson"
)

// TokenKind enumerates JSON token kinds.
type TokenKind int

const (
	TokenBeginObject TokenKind = iota
	TokenEndObject
	TokenBeginArray
	TokenEndArray
	TokenKey
	TokenString
	TokenNumber
	TokenBool
	TokenNull
)

// Token describes one token in the input stream.
type Token struct {
	Kind   TokenKind
	String string // Stored for key/string tokens.
	Number string // Stored as text; values decode as json.Number.
	Bool   bool
}

// Source abstracts over polymorphic input sources.
type Source interface {
	NextToken() (Token, error)
}

// JSONDriver converts JSON input into a Source and serializes generic values
// back to text. The default implementation is based on goccy/go-json and may
// be swapped with SetJSONDriver.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Marshal(v any) ([]byte, error)
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = goJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default go-json-backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = goJSONDriver{}
	jsonDriverMu.Unlock()
}

func getJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// goJSONDriver wraps the goccy/go-json implementation.
type goJSONDriver struct{}

func (goJSONDriver) NewReader(r io.Reader) Source  { return SourceFromEngine(gojson.NewReader(r)) }
func (goJSONDriver) NewBytes(b []byte) Source      { return SourceFromEngine(gojson.NewBytes(b)) }
func (goJSONDriver) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }
func (goJSONDriver) Name() string                  { return "go-json" }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return getJSONDriver().NewReader(r) }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return getJSONDriver().NewBytes(b) }

// SourceFromEngine wraps an engine.TokenSource as a Source.
func SourceFromEngine(inner eng.TokenSource) Source {
	return &engineSourceAdapter{inner: inner}
}

type engineSourceAdapter struct {
	inner eng.TokenSource
}

func (a *engineSourceAdapter) NextToken() (Token, error) {
	t, err := a.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: TokenKind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool}, nil
}

type tokenSourceAdapter struct {
	inner Source
}

func (a *tokenSourceAdapter) NextToken() (eng.Token, error) {
	t, err := a.inner.NextToken()
	if err != nil {
		return eng.Token{}, err
	}
	return eng.Token{Kind: eng.Kind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool}, nil
}

// ParseOpt bundles parsing options.
type ParseOpt struct {
	// Creation marks a may-be-created context: client-supplied resources in
	// the primary data may omit a server-assigned id.
	Creation bool
	// MaxDepth bounds nesting while building the generic value (0 = no limit).
	MaxDepth int
	// RejectDuplicateKeys makes duplicate object keys a parse error.
	RejectDuplicateKeys bool
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return ParseOpt{}
}

// ParseDocument consumes tokens from the Source, builds a generic value, and
// delegates to DecodeDocument. Token-level failures (malformed text,
// duplicate keys, depth) surface as plain errors; everything after that is
// Violations.
func ParseDocument(ctx context.Context, src Source, opts ...ParseOpt) (Document, error) {
	opt := lastOpt(opts)
	v, err := decodeAnyFromSource(src, opt)
	if err != nil {
		return Document{}, err
	}
	return DecodeDocument(ctx, v, opt)
}

// ParseResource consumes tokens from the Source and decodes a single
// resource object.
func ParseResource(ctx context.Context, src Source, opts ...ParseOpt) (Resource, error) {
	opt := lastOpt(opts)
	v, err := decodeAnyFromSource(src, opt)
	if err != nil {
		return Resource{}, err
	}
	return DecodeResource(ctx, v, opt)
}

func decodeAnyFromSource(src Source, opt ParseOpt) (any, error) {
	return eng.DecodeAny(&tokenSourceAdapter{inner: src}, eng.Options{
		MaxDepth:            opt.MaxDepth,
		RejectDuplicateKeys: opt.RejectDuplicateKeys,
	})
}
