// Package markdown renders a Markdown document into a full HTML page so
// the same splitting pipeline applies to Markdown input.
package markdown

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
)

// ToHTML converts Markdown source to a complete HTML document. The page
// title is the filename without its extension; top-level headings in the
// source become the body's direct <h1> children, so each one starts a
// chapter downstream.
func ToHTML(src []byte, filename string) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert(src, &body); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	title := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	var page bytes.Buffer
	page.WriteString("<html>\n<head>\n<title>")
	page.WriteString(title)
	page.WriteString("</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

// IsMarkdown reports whether the filename has a Markdown extension.
func IsMarkdown(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
