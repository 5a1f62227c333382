// Package chapter groups the body's direct children into chapters, one per
// top-level heading.
package chapter

import (
	"fmt"
	"strings"

	"github.com/dgallion1/sitegen/internal/htmltree"
)

// Placeholder fills a chapter that has no content beyond its heading.
const Placeholder = "Working in progress."

// headingTag marks the start of a new chapter when found as a direct child
// of the body.
const headingTag = "h1"

// Chapter is one run of body children following a top-level heading.
// Chapters are computed once per run and not mutated afterwards.
type Chapter struct {
	ID        int      // Sequential, starting at 1, in heading document order.
	Name      string   // Trimmed heading text.
	Fragments []string // Re-rendered heading, then each sibling's verbatim span.
}

// Split scans body's direct children in order and cuts them into chapters.
//
// Segmentation policy: chapters are keyed positionally and flushed eagerly —
// each h1 opens chapter N+1 immediately, and every following sibling belongs
// to it until the next h1 or the end of the body. Heading id attributes are
// not consulted. Leading content before the first heading is skipped. A body
// with no headings yields no chapters; the caller still emits the index and
// assets.
func Split(body *htmltree.Element) []Chapter {
	if body == nil {
		return nil
	}

	var chapters []Chapter
	for _, node := range body.Children {
		if node.Tag == headingTag {
			name := strings.TrimSpace(node.Text)
			chapters = append(chapters, Chapter{
				ID:        len(chapters) + 1,
				Name:      name,
				Fragments: []string{fmt.Sprintf("<%s>%s</%s>", headingTag, name, headingTag)},
			})
			continue
		}
		if len(chapters) == 0 {
			continue
		}
		cur := &chapters[len(chapters)-1]
		cur.Fragments = append(cur.Fragments, node.Raw)
	}

	for i := range chapters {
		if len(chapters[i].Fragments) == 1 {
			chapters[i].Fragments = append(chapters[i].Fragments, Placeholder)
		}
	}

	return chapters
}
