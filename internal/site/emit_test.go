package site

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/sitegen/internal/chapter"
	"github.com/dgallion1/sitegen/internal/config"
	"github.com/dgallion1/sitegen/internal/document"
)

const testTemplate = "<title>{title}</title><h2>{menu_name}</h2><ul>{menu_list}</ul><main>{content}</main>"

// siteRoot lays out a minimal root directory: template, assets, images.
func siteRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "templates", "base.html"), testTemplate)
	writeFile(t, filepath.Join(root, "assets", "css", "pure-min.css"), "/*pure*/")
	writeFile(t, filepath.Join(root, "images", "cover.png"), "png")
	writeFile(t, filepath.Join(root, "images", "anim.gif"), "gif")
	return root
}

func testEmitter(t *testing.T, root string, cfg config.Config) *Emitter {
	t.Helper()
	return &Emitter{
		RootDir:   root,
		OutputDir: filepath.Join(t.TempDir(), "out"),
		Cfg:       cfg,
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func defaultCfg(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestEmit_WritesChaptersStylesheetAndIndex(t *testing.T) {
	e := testEmitter(t, siteRoot(t), defaultCfg(t))

	doc := &document.Document{
		Title:  "My Book",
		Styles: []string{"body { margin: 0; }", "h1 { color: red; }"},
	}
	chapters := []chapter.Chapter{
		{ID: 1, Name: "One", Fragments: []string{"<h1>One</h1>", "<p>hi</p>"}},
		{ID: 2, Name: "Two", Fragments: []string{"<h1>Two</h1>", chapter.Placeholder}},
	}

	if err := e.Emit(doc, chapters); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page1 := readFile(t, filepath.Join(e.OutputDir, "1.html"))
	if !strings.Contains(page1, "<title>My Book</title>") {
		t.Errorf("expected title in page, got %q", page1)
	}
	if !strings.Contains(page1, "<h1>One</h1>\n<p>hi</p>") {
		t.Errorf("expected newline-joined fragments, got %q", page1)
	}
	if !strings.Contains(page1, `href="/2.html"`) {
		t.Errorf("expected menu link to chapter 2, got %q", page1)
	}

	page2 := readFile(t, filepath.Join(e.OutputDir, "2.html"))
	if !strings.Contains(page2, chapter.Placeholder) {
		t.Errorf("expected placeholder in heading-only chapter, got %q", page2)
	}

	css := readFile(t, filepath.Join(e.OutputDir, "assets", "css", "pandoc.css"))
	if css != "body { margin: 0; }\nh1 { color: red; }" {
		t.Errorf("unexpected stylesheet content %q", css)
	}

	// Assets copied wholesale, images filtered.
	if _, err := os.Stat(filepath.Join(e.OutputDir, "assets", "css", "pure-min.css")); err != nil {
		t.Errorf("expected asset copied: %v", err)
	}
	if _, err := os.Stat(filepath.Join(e.OutputDir, "images", "cover.png")); err != nil {
		t.Errorf("expected image copied: %v", err)
	}
	if _, err := os.Stat(filepath.Join(e.OutputDir, "images", "anim.gif")); !os.IsNotExist(err) {
		t.Error("expected gif to be excluded")
	}

	index := readFile(t, filepath.Join(e.OutputDir, "index.html"))
	if !strings.Contains(index, `<img class="cover" src="/images/cover.png"/>`) {
		t.Errorf("expected cover image in index, got %q", index)
	}

	// No CNAME configured, none written.
	if _, err := os.Stat(filepath.Join(e.OutputDir, "CNAME")); !os.IsNotExist(err) {
		t.Error("expected no CNAME file")
	}
}

func TestEmit_NoChapters(t *testing.T) {
	// A document without top-level headings still produces the index and
	// copied assets, just no chapter pages.
	e := testEmitter(t, siteRoot(t), defaultCfg(t))

	doc := &document.Document{Title: "Empty"}
	if err := e.Emit(doc, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(e.OutputDir, "index.html")); err != nil {
		t.Errorf("expected index.html: %v", err)
	}
	if _, err := os.Stat(filepath.Join(e.OutputDir, "1.html")); !os.IsNotExist(err) {
		t.Error("expected no chapter pages")
	}
	css := readFile(t, filepath.Join(e.OutputDir, "assets", "css", "pandoc.css"))
	if css != "" {
		t.Errorf("expected empty stylesheet, got %q", css)
	}
}

func TestEmit_CNAME(t *testing.T) {
	cfg := defaultCfg(t)
	cfg.CNAME = "book.example.org"
	e := testEmitter(t, siteRoot(t), cfg)

	if err := e.Emit(&document.Document{Title: "T"}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := readFile(t, filepath.Join(e.OutputDir, "CNAME"))
	if got != "book.example.org\n" {
		t.Errorf("unexpected CNAME content %q", got)
	}
}

func TestEmit_MissingTemplate(t *testing.T) {
	root := t.TempDir() // no templates/base.html
	e := testEmitter(t, root, defaultCfg(t))
	if err := e.Emit(&document.Document{Title: "T"}, nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestEmit_NumberedMenu(t *testing.T) {
	cfg := defaultCfg(t)
	cfg.NumberedMenu = true
	e := testEmitter(t, siteRoot(t), cfg)

	chapters := []chapter.Chapter{{ID: 1, Name: "One", Fragments: []string{"<h1>One</h1>", "x"}}}
	if err := e.Emit(&document.Document{Title: "T"}, chapters); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	page := readFile(t, filepath.Join(e.OutputDir, "1.html"))
	if !strings.Contains(page, ">Chapter 1<") {
		t.Errorf("expected numbered menu label, got %q", page)
	}
}
