// Package htmltree builds an element tree from raw HTML, preserving for
// every element the verbatim source substring it spans. The tree mirrors
// the markup as written: no implied elements are inserted and malformed
// nesting is rejected rather than repaired.
package htmltree

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Pos is a location in the source document. Line is 1-based, Col is a
// 0-based byte column, Offset is the absolute byte offset.
type Pos struct {
	Line   int
	Col    int
	Offset int
}

// Span covers an element from the first byte of its opening tag to the
// last byte of its closing tag.
type Span struct {
	Start Pos
	End   Pos
}

// Element is one node of the parsed tree. A parent owns its Children; the
// back-reference to the parent is only used while the tree is under
// construction.
type Element struct {
	Tag      string            // Tag name, always non-empty.
	Attrs    map[string]string // Attribute values; a bare attribute maps to "".
	Text     string            // Last text run seen directly inside this element.
	Children []*Element        // Child elements in document order.
	Span     Span              // Source span (zero for the synthetic root).
	Raw      string            // Verbatim source covered by Span.

	parent *Element
}

// RootTag is the tag name of the synthetic root element.
const RootTag = "root"

// IsRoot reports whether e is the synthetic root.
func (e *Element) IsRoot() bool { return e.parent == nil && e.Tag == RootTag }

// Attr returns the value of a named attribute. A bare attribute yields ""
// and ok == true.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// ParseError is a structural error: a closing tag that does not match the
// innermost open element. No recovery is attempted.
type ParseError struct {
	Line   int
	Col    int
	Closed string // Tag named by the closing tag.
	Open   string // Tag of the innermost open element ("" at top level).
}

func (e *ParseError) Error() string {
	if e.Open == "" {
		return fmt.Sprintf("line %d:%d: closing tag </%s> with no open element", e.Line, e.Col, e.Closed)
	}
	return fmt.Sprintf("line %d:%d: closing tag </%s> does not match open <%s>", e.Line, e.Col, e.Closed, e.Open)
}

// voidElements are closed by their start tag alone.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Parse tokenizes raw and builds the element tree. The returned root is
// synthetic: it has no span and owns every top-level element. A closing
// tag that does not match the innermost open element yields a *ParseError.
func Parse(raw string) (*Element, error) {
	root := &Element{Tag: RootTag}
	stack := []*Element{root}

	z := html.NewTokenizer(strings.NewReader(raw))
	pos := Pos{Line: 1}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("tokenize: %w", err)
			}
			break
		}

		tokStart := pos
		// Raw must be consumed before TagName/TagAttr/Text invalidate it.
		pos = advance(pos, z.Raw())

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, attrs := tagToken(z)
			cur := stack[len(stack)-1]
			el := &Element{Tag: name, Attrs: attrs, parent: cur}
			el.Span.Start = tokStart
			cur.Children = append(cur.Children, el)
			if tt == html.SelfClosingTagToken || voidElements[name] {
				// The element is its own closing tag.
				el.Span.End = pos
				el.Raw = raw[tokStart.Offset:pos.Offset]
			} else {
				stack = append(stack, el)
			}

		case html.EndTagToken:
			name, _ := tagToken(z)
			cur := stack[len(stack)-1]
			if cur == root || cur.Tag != name {
				open := ""
				if cur != root {
					open = cur.Tag
				}
				return nil, &ParseError{Line: tokStart.Line, Col: tokStart.Col, Closed: name, Open: open}
			}
			cur.Span.End = pos
			cur.Raw = raw[cur.Span.Start.Offset:pos.Offset]
			stack = stack[:len(stack)-1]

		case html.TextToken:
			stack[len(stack)-1].Text = string(z.Text())
		}
		// Comments and doctype advance the position but produce no node.
	}

	return root, nil
}

// tagToken reads the tag name and attributes of the current token.
func tagToken(z *html.Tokenizer) (string, map[string]string) {
	name, hasAttr := z.TagName()
	var attrs map[string]string
	if hasAttr {
		attrs = make(map[string]string)
		for {
			k, v, more := z.TagAttr()
			attrs[string(k)] = string(v)
			if !more {
				break
			}
		}
	}
	return string(name), attrs
}

// advance moves pos past the given token bytes.
func advance(pos Pos, tok []byte) Pos {
	for _, b := range tok {
		if b == '\n' {
			pos.Line++
			pos.Col = 0
		} else {
			pos.Col++
		}
	}
	pos.Offset += len(tok)
	return pos
}
