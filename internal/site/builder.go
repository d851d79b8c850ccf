// Package site writes the statically generated blog to disk: one index
// page, one directory per post, plus copied static assets.
package site

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"notionblog/internal/config"
	"notionblog/internal/posts"
	"notionblog/internal/web"

	"github.com/a-h/templ"
)

// Loader produces the full set of posts for one generation pass.
type Loader interface {
	LoadAll(ctx context.Context) ([]posts.Post, error)
}

type Builder struct {
	loader    Loader
	site      config.Site
	outputDir string
	staticDir string
}

func NewBuilder(loader Loader, site config.Site, outputDir string, staticDir string) *Builder {
	return &Builder{
		loader:    loader,
		site:      site,
		outputDir: outputDir,
		staticDir: staticDir,
	}
}

// Build runs one generation pass and returns the number of posts written.
// Any fetch or write error aborts the pass; partially written output is
// left for the next pass to overwrite.
func (b *Builder) Build(ctx context.Context) (int, error) {
	loaded, err := b.loader.LoadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load posts: %w", err)
	}

	if err := os.MkdirAll(b.outputDir, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	index := web.ListPage(web.NewListPageView(b.site, loaded))
	if err := b.writePage(ctx, filepath.Join(b.outputDir, "index.html"), index); err != nil {
		return 0, err
	}

	for _, post := range loaded {
		page := web.PostPage(web.NewPostPageView(b.site, post))
		target := filepath.Join(b.outputDir, "posts", post.Slug, "index.html")
		if err := b.writePage(ctx, target, page); err != nil {
			return 0, err
		}
	}

	if err := b.copyStatic(); err != nil {
		return 0, err
	}

	return len(loaded), nil
}

func (b *Builder) writePage(ctx context.Context, path string, component templ.Component) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := component.Render(ctx, file); err != nil {
		_ = file.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}

func (b *Builder) copyStatic() error {
	if b.staticDir == "" {
		return nil
	}
	if _, err := os.Stat(b.staticDir); os.IsNotExist(err) {
		return nil
	}

	target := filepath.Join(b.outputDir, "static")
	return filepath.WalkDir(b.staticDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(b.staticDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(target, rel)

		if entry.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}

		return copyFile(path, dest)
	})
}

func copyFile(src string, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", dest, err)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %s: %w", dest, err)
	}

	return out.Close()
}
