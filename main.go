package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/farahnozfirdavsi/portfolio/internal/config"
	"github.com/farahnozfirdavsi/portfolio/internal/content"
	"github.com/farahnozfirdavsi/portfolio/internal/server"
	"github.com/farahnozfirdavsi/portfolio/internal/site"
	"github.com/farahnozfirdavsi/portfolio/internal/surface"
)

const usage = `usage: portfolio [command] [flags]

commands:
  build   render the site into the output directory
  serve   build, then serve the output directory (default)
`

func main() {
	if err := run(os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		log.Fatal(err)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	command := "serve"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command, args = args[0], args[1:]
	}

	switch command {
	case "build":
		return runBuild(cfg, args)
	case "serve":
		return runServe(cfg, args)
	case "help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func runBuild(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory")
	fs.StringVar(&cfg.ImagesDir, "images", cfg.ImagesDir, "directory copied to /images")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return build(cfg)
}

func runServe(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.StringVar(&cfg.Port, "port", cfg.Port, "listen port")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory")
	fs.StringVar(&cfg.ImagesDir, "images", cfg.ImagesDir, "directory copied to /images")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := build(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.New(cfg.OutDir),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Serving %s on http://localhost%s", cfg.OutDir, cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func build(cfg *config.Config) error {
	opts := surface.DefaultOptions()
	opts.HideNativeCursor = cfg.HideNativeCursor
	opts.CursorColor = cfg.CursorColor

	page, err := site.NewPage(content.Default, opts)
	if err != nil {
		return err
	}
	r, err := site.NewRenderer()
	if err != nil {
		return err
	}
	if err := r.Build(cfg.OutDir, page, cfg.ImagesDir); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	log.Printf("Built site into %s", cfg.OutDir)
	return nil
}
