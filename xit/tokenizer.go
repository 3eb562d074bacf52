package xit

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/rafewenger/iso3D-sub000/errreport"
)

// tokenizer is a thin recursive-descent-friendly wrapper over
// encoding/xml.Decoder: it exposes "expect this start/end tag", "read
// the text content up to the next tag", and a one-token lookahead so
// callers can tell which of several optional child elements comes
// next (the isoVertices inV/inE/inF/c union, tableProperties' any-
// order fields) without consuming it first.
type tokenizer struct {
	dec     *xml.Decoder
	peeked  xml.Token
	hasPeek bool
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{dec: xml.NewDecoder(r)}
}

func (t *tokenizer) next() (xml.Token, error) {
	if t.hasPeek {
		t.hasPeek = false
		return t.peeked, nil
	}
	return t.dec.Token()
}

// nextTag returns the next StartElement or EndElement, silently
// skipping CharData, Comment, ProcInst, and Directive tokens.
func (t *tokenizer) nextTag() (xml.Token, error) {
	for {
		tok, err := t.next()
		if err != nil {
			return nil, err
		}
		switch tok.(type) {
		case xml.StartElement, xml.EndElement:
			return tok, nil
		}
	}
}

// peekTag returns the next StartElement or EndElement without
// consuming it; a following call to ExpectStart/ExpectEnd/nextTag
// will see the same token.
func (t *tokenizer) peekTag() (xml.Token, error) {
	if t.hasPeek {
		return t.peeked, nil
	}
	tok, err := t.nextTag()
	if err != nil {
		return nil, err
	}
	t.peeked = tok
	t.hasPeek = true
	return tok, nil
}

// PeekStartName returns the local name of the next start tag, or ""
// if the next tag is an end tag (or EOF, reported via err).
func (t *tokenizer) PeekStartName() (string, error) {
	tok, err := t.peekTag()
	if err != nil {
		return "", err
	}
	if se, ok := tok.(xml.StartElement); ok {
		return se.Name.Local, nil
	}
	return "", nil
}

// ExpectStart consumes the next tag, failing with a format error
// unless it is a start tag named name.
func (t *tokenizer) ExpectStart(name string) error {
	tok, err := t.nextTag()
	if err != nil {
		return formatErr("expected start tag", name, "reading error", err)
	}
	se, ok := tok.(xml.StartElement)
	if !ok || se.Name.Local != name {
		return formatErr("expected start tag", name, "found", describeTag(tok))
	}
	return nil
}

// ExpectEnd consumes the next tag, failing with a format error unless
// it is an end tag named name.
func (t *tokenizer) ExpectEnd(name string) error {
	tok, err := t.nextTag()
	if err != nil {
		return formatErr("expected end tag", name, "reading error", err)
	}
	ee, ok := tok.(xml.EndElement)
	if !ok || ee.Name.Local != name {
		return formatErr("expected end tag", name, "found", describeTag(tok))
	}
	return nil
}

// ReadText reads and concatenates every CharData token up to (but not
// including) the next start/end tag, trims surrounding whitespace, and
// leaves that next tag to be read by a subsequent ExpectEnd/ExpectStart.
func (t *tokenizer) ReadText() (string, error) {
	var b strings.Builder
	for {
		tok, err := t.next()
		if err != nil {
			return "", formatErr("error reading element text", err)
		}
		switch v := tok.(type) {
		case xml.CharData:
			b.Write(v)
		case xml.Comment, xml.ProcInst, xml.Directive:
			continue
		default:
			t.peeked = tok
			t.hasPeek = true
			return strings.TrimSpace(b.String()), nil
		}
	}
}

// ReadInt reads the element's text content and parses it as exactly
// one integer.
func (t *tokenizer) ReadInt() (int, error) {
	text, err := t.ReadText()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, formatErr("expected an integer, found", strconv.Quote(text))
	}
	return n, nil
}

// ReadInts reads the element's text content and parses it as exactly n
// whitespace-separated integers.
func (t *tokenizer) ReadInts(n int) ([]int, error) {
	text, err := t.ReadText()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(text)
	if len(fields) != n {
		return nil, formatErr("expected", n, "integers, found", len(fields))
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, formatErr("expected an integer, found", strconv.Quote(f))
		}
		out[i] = v
	}
	return out, nil
}

// ReadAllInts reads the element's text content and parses it as
// however many whitespace-separated integers it contains.
func (t *tokenizer) ReadAllInts() ([]int, error) {
	text, err := t.ReadText()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(text)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, formatErr("expected an integer, found", strconv.Quote(f))
		}
		out[i] = v
	}
	return out, nil
}

func describeTag(tok xml.Token) string {
	switch v := tok.(type) {
	case xml.StartElement:
		return "start tag <" + v.Name.Local + ">"
	case xml.EndElement:
		return "end tag </" + v.Name.Local + ">"
	default:
		return "an unexpected token"
	}
}

func formatErr(parts ...interface{}) error {
	return errreport.New(errreport.KindFormatError, parts...)
}
