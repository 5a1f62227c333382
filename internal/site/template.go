package site

import (
	"fmt"
	"os"
	"strings"
)

// Template is a page template with literal substitution slots: {title},
// {menu_name}, {menu_list} and {content}.
type Template struct {
	text string
}

// LoadTemplate reads the template file. A missing template is fatal for
// the whole run, surfaced as the underlying I/O error.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load template: %w", err)
	}
	return &Template{text: string(data)}, nil
}

// Render fills every slot. Unknown text in the template passes through
// untouched; there is no templating language beyond these four slots.
func (t *Template) Render(title, menuName, menuList, content string) string {
	return strings.NewReplacer(
		"{title}", title,
		"{menu_name}", menuName,
		"{menu_list}", menuList,
		"{content}", content,
	).Replace(t.text)
}
