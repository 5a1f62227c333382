package site

import (
	"fmt"
	"strings"

	"github.com/dgallion1/sitegen/internal/chapter"
)

// MenuMarkup renders one list-item link per chapter, newline-joined in
// chapter order. With numbered set, entries are labeled "Chapter N"
// instead of the heading text.
func MenuMarkup(chapters []chapter.Chapter, numbered bool) string {
	items := make([]string, 0, len(chapters))
	for _, ch := range chapters {
		label := ch.Name
		if numbered {
			label = fmt.Sprintf("Chapter %d", ch.ID)
		}
		items = append(items, fmt.Sprintf(
			`<li class="pure-menu-item"><a href="/%d.html" class="pure-menu-link">%s</a></li>`,
			ch.ID, label))
	}
	return strings.Join(items, "\n")
}
