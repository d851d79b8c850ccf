package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"notionblog/internal/config"
	"notionblog/internal/notion"
	"notionblog/internal/posts"
	"notionblog/internal/server"
	"notionblog/internal/site"
	"notionblog/internal/store"
)

var cli struct {
	Verbose bool   `short:"v" help:"Enable verbose logging"`
	Site    string `help:"Site metadata file" default:"blog.yaml"`

	Build struct {
		Output string `short:"o" help:"Output directory (overrides BLOG_OUTPUT_DIR)"`
	} `cmd:"" help:"Generate the site once and exit"`

	Serve struct {
		Listen string `short:"l" help:"Listen address (overrides BLOG_LISTEN_ADDR)"`
	} `cmd:"" help:"Generate the site and serve it with periodic revalidation"`
}

func main() {
	kctx := kong.Parse(&cli)

	logLevel := slog.LevelInfo
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	if err := run(kctx.Command()); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(command string) error {
	cfg := config.Load()
	if cli.Build.Output != "" {
		cfg.OutputDir = cli.Build.Output
	}
	if cli.Serve.Listen != "" {
		cfg.ListenAddr = cli.Serve.Listen
	}

	if cfg.NotionToken == "" {
		return fmt.Errorf("NOTION_TOKEN is not set")
	}
	if cfg.NotionDatabaseID == "" {
		return fmt.Errorf("NOTION_DATABASE_ID is not set")
	}

	siteMeta, err := config.LoadSite(cli.Site)
	if err != nil {
		return fmt.Errorf("load site file %s: %w", cli.Site, err)
	}

	client := notion.NewClient(notion.Config{
		Token:   cfg.NotionToken,
		BaseURL: cfg.NotionBaseURL,
		Version: cfg.NotionVersion,
	})

	var cache posts.Cache
	if cfg.CachePath != "" {
		sqlite, err := store.Open(cfg.CachePath)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer sqlite.Close()
		cache = sqlite
	}

	service := posts.NewService(client, posts.ServiceOptions{
		DatabaseID:       cfg.NotionDatabaseID,
		DocumentProperty: cfg.DocumentProperty,
		TitleProperty:    cfg.TitleProperty,
		SlugProperty:     cfg.SlugProperty,
		Concurrency:      cfg.FetchConcurrency,
		Cache:            cache,
	})
	builder := site.NewBuilder(service, siteMeta, cfg.OutputDir, cfg.StaticDir)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch command {
	case "build":
		count, err := builder.Build(ctx)
		if err != nil {
			return err
		}
		slog.Info("site built", "posts", count, "dir", cfg.OutputDir)
		return nil
	case "serve":
		srv := server.New(server.Config{
			ListenAddr:         cfg.ListenAddr,
			OutputDir:          cfg.OutputDir,
			RevalidateInterval: cfg.RevalidateInterval,
		}, builder)
		return srv.Run(ctx)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
