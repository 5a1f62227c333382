package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/dgallion1/sitegen/internal/build"
	"github.com/dgallion1/sitegen/internal/config"
	"github.com/dgallion1/sitegen/internal/preview"
)

var cli struct {
	Document string `arg:"" help:"Input HTML (or Markdown) document."`
	Output   string `arg:"" help:"Output directory for the generated site."`

	Root     string `short:"r" default:"." help:"Directory holding templates/, assets/ and images/."`
	Numbered bool   `help:"Label menu entries \"Chapter N\" instead of the heading text."`
	Serve    string `placeholder:"ADDR" help:"After building, serve the site on this address (e.g. :8080)."`
	Watch    bool   `help:"With --serve, rebuild when the source document or template changes."`
	Verbose  bool   `short:"v" help:"Enable debug logging."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("sitegen"),
		kong.Description("Split a single large HTML document into a multi-page static site."),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(cli.Root)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cli.Numbered {
		cfg.NumberedMenu = true
	}

	rebuild := func() error {
		return build.Run(cfg, cli.Root, cli.Document, cli.Output, log)
	}

	if err := rebuild(); err != nil {
		log.Error("build failed", "error", err)
		os.Exit(1)
	}

	if cli.Serve == "" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cli.Watch {
		w := preview.NewWatcher(rebuild, log)
		tmplPath := filepath.Join(cli.Root, cfg.TemplatePath)
		go func() {
			if err := w.Watch(ctx, cli.Document, tmplPath); err != nil {
				log.Error("watcher stopped", "error", err)
			}
		}()
	}

	srv := preview.NewServer(cli.Serve, cli.Output, log)
	if err := srv.ListenAndServe(ctx); err != nil {
		log.Error("preview server error", "error", err)
		os.Exit(1)
	}
}
