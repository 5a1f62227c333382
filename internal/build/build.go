// Package build runs one complete conversion: read the document, parse it,
// derive the semantic view, cut chapters, emit the site. The run is
// single-threaded and synchronous; any error aborts it with no partial
// output contract.
package build

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgallion1/sitegen/internal/chapter"
	"github.com/dgallion1/sitegen/internal/config"
	"github.com/dgallion1/sitegen/internal/document"
	"github.com/dgallion1/sitegen/internal/htmltree"
	"github.com/dgallion1/sitegen/internal/markdown"
	"github.com/dgallion1/sitegen/internal/site"
)

// ErrNoBody is returned when the document contains no <body> element.
var ErrNoBody = errors.New("document has no <body>")

// Run converts inputPath into a site under outputDir. RootDir supplies the
// template and static assets.
func Run(cfg config.Config, rootDir, inputPath, outputDir string, log *slog.Logger) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if markdown.IsMarkdown(inputPath) {
		data, err = markdown.ToHTML(data, inputPath)
		if err != nil {
			return err
		}
		log.Debug("markdown input converted", "input", inputPath)
	}

	root, err := htmltree.Parse(string(data))
	if err != nil {
		return fmt.Errorf("parse html: %w", err)
	}

	doc, err := document.Extract(root)
	if err != nil {
		return err
	}
	if doc.Body == nil {
		return ErrNoBody
	}

	chapters := chapter.Split(doc.Body)
	log.Info("document parsed",
		"input", inputPath,
		"title", doc.Title,
		"chapters", len(chapters),
		"styles", len(doc.Styles),
	)

	em := &site.Emitter{
		RootDir:   rootDir,
		OutputDir: outputDir,
		Cfg:       cfg,
		Log:       log,
	}
	return em.Emit(doc, chapters)
}
