package web

import (
	"strings"
	"time"

	"notionblog/internal/config"
	"notionblog/internal/posts"
)

type PostItemView struct {
	Title     string
	Slug      string
	URL       string
	CreatedAt string
}

type ListPageView struct {
	Site  config.Site
	Posts []PostItemView
}

type PostPageView struct {
	Site      config.Site
	Title     string
	CreatedAt string
	EditedAt  string
	Content   []posts.Content
}

func NewListPageView(site config.Site, loaded []posts.Post) ListPageView {
	items := make([]PostItemView, 0, len(loaded))
	for _, post := range loaded {
		items = append(items, PostItemView{
			Title:     displayTitle(post.Summary),
			Slug:      post.Slug,
			URL:       "/posts/" + post.Slug + "/",
			CreatedAt: formatDate(post.CreatedAt),
		})
	}

	return ListPageView{Site: site, Posts: items}
}

func NewPostPageView(site config.Site, post posts.Post) PostPageView {
	return PostPageView{
		Site:      site,
		Title:     displayTitle(post.Summary),
		CreatedAt: formatDate(post.CreatedAt),
		EditedAt:  formatDate(post.EditedAt),
		Content:   post.Content,
	}
}

func displayTitle(summary posts.Summary) string {
	if title := strings.TrimSpace(summary.Title); title != "" {
		return title
	}

	return summary.Slug
}

func formatDate(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return raw
		}
	}

	return parsed.Format("2006-01-02")
}
