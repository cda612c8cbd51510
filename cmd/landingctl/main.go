package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"landingnav/internal/config"
	"landingnav/internal/export"
	"landingnav/internal/logging"
	"landingnav/internal/web"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "export":
		exportCmd(os.Args[2:])
	case "nav":
		navCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println(`landingctl - landing page admin CLI

Usage:
  landingctl export [-out dist] [-config config.yaml]
  landingctl nav    [-config config.yaml]

Examples:
  landingctl export -out ./public
  landingctl nav > nav.html`)
}

func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		if cfg == nil || !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("config: %v", err)
		}
	}
	slog.SetDefault(logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: "text",
		Output: os.Stderr,
	}))
	return cfg
}

func exportCmd(args []string) {
	flags := flag.NewFlagSet("export", flag.ExitOnError)
	var (
		cfgPath = flags.String("config", "config.yaml", "path to config file")
		out     = flags.String("out", "dist", "output directory")
	)
	_ = flags.Parse(args)

	cfg := loadConfig(*cfgPath)
	rend, err := web.NewRenderer(cfg.Site.Title)
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	written, err := export.Site(ctx, rend, cfg.Site, *out)
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	for _, p := range written {
		fmt.Println(p)
	}
}

func navCmd(args []string) {
	flags := flag.NewFlagSet("nav", flag.ExitOnError)
	cfgPath := flags.String("config", "config.yaml", "path to config file")
	_ = flags.Parse(args)

	cfg := loadConfig(*cfgPath)
	rend, err := web.NewRenderer(cfg.Site.Title)
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "writing nav markup to the terminal; redirect to a file to embed it")
	}
	if err := rend.Partial(os.Stdout, "nav", web.Nav()); err != nil {
		log.Fatalf("nav: %v", err)
	}
	fmt.Println()
}
