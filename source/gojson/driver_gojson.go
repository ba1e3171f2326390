// Package gojson provides the go-json backed token source used as the
// module's default JSON driver.
package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	eng "github.com/restwire/restwire/internal/engine"
)

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

type source struct {
	dec   *j.Decoder
	stack []frame
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

// Marshal serializes a generic value through go-json.
func Marshal(v any) ([]byte, error) { return j.Marshal(v) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return eng.Token{Kind: eng.KindBeginObject}, nil
		case '}':
			s.pop()
			s.noteValue()
			return eng.Token{Kind: eng.KindEndObject}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return eng.Token{Kind: eng.KindBeginArray}, nil
		case ']':
			s.pop()
			s.noteValue()
			return eng.Token{Kind: eng.KindEndArray}, nil
		}
	case string:
		if top := s.top(); top != nil && top.kind == kindObject && top.expectingKey {
			top.expectingKey = false
			return eng.Token{Kind: eng.KindKey, String: v}, nil
		}
		s.noteValue()
		return eng.Token{Kind: eng.KindString, String: v}, nil
	case bool:
		s.noteValue()
		return eng.Token{Kind: eng.KindBool, Bool: v}, nil
	case j.Number:
		s.noteValue()
		return eng.Token{Kind: eng.KindNumber, Number: string(v)}, nil
	case float64:
		// UseNumber routes numbers through j.Number, not float64.
		s.noteValue()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64)}, nil
	case nil:
		s.noteValue()
		return eng.Token{Kind: eng.KindNull}, nil
	}
	s.noteValue()
	return eng.Token{Kind: eng.KindNull}, nil
}

func (s *source) top() *frame {
	if n := len(s.stack); n > 0 {
		return &s.stack[n-1]
	}
	return nil
}

func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
}

// noteValue records that a value has been consumed inside the current
// container, flipping an object frame back to expecting the next key.
func (s *source) noteValue() {
	if top := s.top(); top != nil && top.kind == kindObject && !top.expectingKey {
		top.expectingKey = true
	}
}
