package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected default listen addr, got %q", cfg.ListenAddr)
	}
	if cfg.OutputDir != "public" {
		t.Fatalf("expected default output dir, got %q", cfg.OutputDir)
	}
	if cfg.DocumentProperty != "Document" || cfg.TitleProperty != "Name" || cfg.SlugProperty != "slug" {
		t.Fatalf("unexpected default property names: %+v", cfg)
	}
	if cfg.RevalidateInterval != 10*time.Minute {
		t.Fatalf("expected default revalidate interval, got %v", cfg.RevalidateInterval)
	}
	if cfg.FetchConcurrency != 4 {
		t.Fatalf("expected default fetch concurrency, got %d", cfg.FetchConcurrency)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NOTION_TOKEN", "secret")
	t.Setenv("NOTION_DATABASE_ID", "db-id")
	t.Setenv("BLOG_ROOT_URL", "https://example.com/")
	t.Setenv("BLOG_REVALIDATE_INTERVAL", "30s")
	t.Setenv("BLOG_FETCH_CONCURRENCY", "8")

	cfg := Load()

	if cfg.NotionToken != "secret" || cfg.NotionDatabaseID != "db-id" {
		t.Fatalf("expected notion credentials from env, got %+v", cfg)
	}
	if cfg.RootURL != "https://example.com" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.RootURL)
	}
	if cfg.RevalidateInterval != 30*time.Second {
		t.Fatalf("expected 30s interval, got %v", cfg.RevalidateInterval)
	}
	if cfg.FetchConcurrency != 8 {
		t.Fatalf("expected concurrency 8, got %d", cfg.FetchConcurrency)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("BLOG_REVALIDATE_INTERVAL", "soon")
	t.Setenv("BLOG_FETCH_CONCURRENCY", "-2")

	cfg := Load()

	if cfg.RevalidateInterval != 10*time.Minute {
		t.Fatalf("expected fallback interval, got %v", cfg.RevalidateInterval)
	}
	if cfg.FetchConcurrency != 4 {
		t.Fatalf("expected fallback concurrency, got %d", cfg.FetchConcurrency)
	}
}

func TestLoadSite(t *testing.T) {
	dir := t.TempDir()

	site, err := LoadSite(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if site.Title != "Blog" {
		t.Fatalf("expected default title, got %q", site.Title)
	}

	path := filepath.Join(dir, "blog.yaml")
	content := "title: My Notes\ndescription: occasional writing\nauthor: Someone\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	site, err = LoadSite(path)
	if err != nil {
		t.Fatalf("load site: %v", err)
	}
	if site.Title != "My Notes" || site.Author != "Someone" {
		t.Fatalf("unexpected site metadata: %+v", site)
	}

	if err := os.WriteFile(path, []byte(":\n bad"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSite(path); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}
