// Package site writes the generated site: one page per chapter, the
// collected stylesheet, copied assets and images, the index page and an
// optional CNAME marker.
package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/sitegen/internal/chapter"
	"github.com/dgallion1/sitegen/internal/config"
	"github.com/dgallion1/sitegen/internal/document"
)

// Emitter writes one site. RootDir holds the consumed layout (template,
// assets, images); OutputDir receives the generated files.
type Emitter struct {
	RootDir   string
	OutputDir string
	Cfg       config.Config
	Log       *slog.Logger
}

// Emit writes the whole site. Any error aborts the run; the output
// directory must be treated as invalid unless Emit returns nil.
func (e *Emitter) Emit(doc *document.Document, chapters []chapter.Chapter) error {
	tmpl, err := LoadTemplate(filepath.Join(e.RootDir, e.Cfg.TemplatePath))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := CopyAssets(filepath.Join(e.RootDir, e.Cfg.AssetsDir), filepath.Join(e.OutputDir, "assets")); err != nil {
		return err
	}
	if err := CopyImages(filepath.Join(e.RootDir, e.Cfg.ImagesDir), filepath.Join(e.OutputDir, "images"), e.Cfg.ImageExts); err != nil {
		return err
	}

	if err := e.writeStylesheet(doc.Styles); err != nil {
		return err
	}

	menu := MenuMarkup(chapters, e.Cfg.NumberedMenu)

	for _, ch := range chapters {
		page := tmpl.Render(doc.Title, e.Cfg.MenuName, menu, strings.Join(ch.Fragments, "\n"))
		name := fmt.Sprintf("%d.html", ch.ID)
		if err := os.WriteFile(filepath.Join(e.OutputDir, name), []byte(page), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		e.Log.Debug("chapter written", "file", name, "name", ch.Name, "fragments", len(ch.Fragments))
	}

	cover := fmt.Sprintf(`<img class="cover" src="%s"/>`, e.Cfg.CoverImage)
	index := tmpl.Render(doc.Title, e.Cfg.MenuName, menu, cover)
	if err := os.WriteFile(filepath.Join(e.OutputDir, "index.html"), []byte(index), 0o644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	if e.Cfg.CNAME != "" {
		if err := os.WriteFile(filepath.Join(e.OutputDir, "CNAME"), []byte(e.Cfg.CNAME+"\n"), 0o644); err != nil {
			return fmt.Errorf("write CNAME: %w", err)
		}
	}

	e.Log.Info("site written", "output", e.OutputDir, "chapters", len(chapters), "styles", len(doc.Styles))
	return nil
}

// writeStylesheet concatenates every extracted style block with newline
// separators. The file is written even when no styles were found.
func (e *Emitter) writeStylesheet(styles []string) error {
	path := filepath.Join(e.OutputDir, e.Cfg.StylesheetPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create css dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(styles, "\n")), 0o644); err != nil {
		return fmt.Errorf("write stylesheet: %w", err)
	}
	return nil
}
