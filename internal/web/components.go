// Package web renders post content as HTML. Components are plain
// templ.ComponentFunc values since there is no generate step in this repo.
package web

import (
	"context"
	"fmt"
	stdhtml "html"
	"io"

	"notionblog/internal/config"
	"notionblog/internal/posts"

	"github.com/a-h/templ"
)

// ListPage is the index view: every document, newest first.
func ListPage(view ListPageView) templ.Component {
	return layout(view.Site.Title, view.Site, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if view.Site.Description != "" {
			if err := writeTag(w, "p", "site-description", view.Site.Description); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<ul class="post-list">`); err != nil {
			return err
		}
		for _, item := range view.Posts {
			if _, err := fmt.Fprintf(w, `<li><a href="%s">%s</a>`,
				stdhtml.EscapeString(item.URL), stdhtml.EscapeString(item.Title)); err != nil {
				return err
			}
			if item.CreatedAt != "" {
				if err := writeTag(w, "time", "", item.CreatedAt); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</li>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	}))
}

// PostPage is the single-post view.
func PostPage(view PostPageView) templ.Component {
	return layout(pageTitle(view), view.Site, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<article class="post">`); err != nil {
			return err
		}
		if err := writeTag(w, "h1", "", view.Title); err != nil {
			return err
		}
		if view.CreatedAt != "" {
			if err := writeTag(w, "time", "", view.CreatedAt); err != nil {
				return err
			}
		}
		for _, record := range view.Content {
			if err := Fragment(record).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</article>`)
		return err
	}))
}

// Fragment maps one content record to its markup. Unknown types render
// nothing, mirroring the flattener's silent drop.
func Fragment(record posts.Content) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		switch record.Type {
		case posts.ContentParagraph:
			return writeTag(w, "p", "", record.Text)
		case posts.ContentHeading2:
			return writeTag(w, "h2", "", record.Text)
		case posts.ContentHeading3:
			return writeTag(w, "h3", "", record.Text)
		case posts.ContentQuote:
			if _, err := io.WriteString(w, `<blockquote>`); err != nil {
				return err
			}
			if err := writeTag(w, "p", "", record.Text); err != nil {
				return err
			}
			_, err := io.WriteString(w, `</blockquote>`)
			return err
		case posts.ContentCode:
			if _, err := fmt.Fprintf(w, `<div class="highlight" data-language="%s">`,
				stdhtml.EscapeString(record.Language)); err != nil {
				return err
			}
			renderCodeBlock(w, record.Text, record.Language)
			_, err := io.WriteString(w, `</div>`)
			return err
		default:
			return nil
		}
	})
}

func layout(title string, site config.Site, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title>`,
			stdhtml.EscapeString(title)); err != nil {
			return err
		}
		if site.Description != "" {
			if _, err := fmt.Fprintf(w, `<meta name="description" content="%s">`,
				stdhtml.EscapeString(site.Description)); err != nil {
				return err
			}
		}
		if site.Author != "" {
			if _, err := fmt.Fprintf(w, `<meta name="author" content="%s">`,
				stdhtml.EscapeString(site.Author)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<style>%s</style></head><body><header><a href="/">%s</a></header><main>`,
			ChromaCSS(), stdhtml.EscapeString(site.Title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func pageTitle(view PostPageView) string {
	if view.Title == "" {
		return view.Site.Title
	}

	return view.Title + " | " + view.Site.Title
}

func writeTag(w io.Writer, tag string, class string, text string) error {
	var err error
	if class != "" {
		_, err = fmt.Fprintf(w, `<%s class="%s">%s</%s>`, tag, class, stdhtml.EscapeString(text), tag)
	} else {
		_, err = fmt.Fprintf(w, `<%s>%s</%s>`, tag, stdhtml.EscapeString(text), tag)
	}
	return err
}
