// Package document derives a semantic view of a parsed HTML tree: the
// document title, the embedded stylesheet blocks, and the body element.
package document

import (
	"errors"

	"github.com/dgallion1/sitegen/internal/htmltree"
)

// Document is the derived view. Body points into the parsed tree; Styles
// holds the text of every <style> element in document order.
type Document struct {
	Title  string
	Styles []string
	Body   *htmltree.Element
}

// handler consumes one matching element. Traversal continues into the
// element's children regardless.
type handler func(*Document, *htmltree.Element)

var handlers = map[string]handler{
	"title": func(d *Document, el *htmltree.Element) { d.Title = el.Text },
	"style": func(d *Document, el *htmltree.Element) { d.Styles = append(d.Styles, el.Text) },
	"body":  func(d *Document, el *htmltree.Element) { d.Body = el },
}

// ErrNoTitle is returned when the traversal finds no <title> element.
// A title is a precondition for page emission.
var ErrNoTitle = errors.New("document has no <title>")

// Extract walks the tree once, depth first, dispatching per-tag handlers.
func Extract(root *htmltree.Element) (*Document, error) {
	d := &Document{}
	walk(d, root)
	if d.Title == "" {
		return nil, ErrNoTitle
	}
	return d, nil
}

func walk(d *Document, el *htmltree.Element) {
	if h, ok := handlers[el.Tag]; ok {
		h(d, el)
	}
	for _, child := range el.Children {
		walk(d, child)
	}
}
