package posts

import (
	"context"
	"log/slog"
	"sync"

	"notionblog/internal/notion"
)

// API is the slice of the Notion client the service needs.
type API interface {
	QueryDatabaseAll(ctx context.Context, databaseID string, query DatabaseQuery) ([]notion.Page, error)
	AllBlockChildren(ctx context.Context, blockID string) ([]notion.Block, error)
}

// DatabaseQuery aliases the client request type so callers fake the API
// without importing request internals.
type DatabaseQuery = notion.DatabaseQuery

// Cache lets a revalidation pass reuse flattened content for pages whose
// edit timestamp has not moved. Implementations report misses, not errors,
// for absent rows.
type Cache interface {
	Get(ctx context.Context, id string, editedAt string) (*Post, bool, error)
	Put(ctx context.Context, post Post) error
}

type Service struct {
	client      API
	databaseID  string
	flagProp    string
	titleProp   string
	slugProp    string
	concurrency int
	cache       Cache
}

type ServiceOptions struct {
	DatabaseID       string
	DocumentProperty string
	TitleProperty    string
	SlugProperty     string
	Concurrency      int
	Cache            Cache
}

func NewService(client API, opts ServiceOptions) *Service {
	if opts.DocumentProperty == "" {
		opts.DocumentProperty = "Document"
	}
	if opts.TitleProperty == "" {
		opts.TitleProperty = "Name"
	}
	if opts.SlugProperty == "" {
		opts.SlugProperty = "slug"
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 4
	}

	return &Service{
		client:      client,
		databaseID:  opts.DatabaseID,
		flagProp:    opts.DocumentProperty,
		titleProp:   opts.TitleProperty,
		slugProp:    opts.SlugProperty,
		concurrency: opts.Concurrency,
		cache:       opts.Cache,
	}
}

// List queries the database for pages flagged as documents, newest first.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	pages, err := s.client.QueryDatabaseAll(ctx, s.databaseID, DatabaseQuery{
		Filter: &notion.Filter{
			Property: s.flagProp,
			Checkbox: &notion.CheckboxFilter{Equals: true},
		},
		Sorts: []notion.Sort{
			{Timestamp: "created_time", Direction: "descending"},
		},
	})
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(pages))
	for _, page := range pages {
		summaries = append(summaries, s.mapPage(page))
	}

	return summaries, nil
}

// LoadAll lists the documents and fetches their content concurrently. A
// single failed fetch fails the whole pass; result order follows the list.
func (s *Service) LoadAll(ctx context.Context) ([]Post, error) {
	summaries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	loaded := make([]Post, len(summaries))
	errs := make([]error, len(summaries))

	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup
	for i, summary := range summaries {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, summary Summary) {
			defer wg.Done()
			defer func() { <-sem }()
			post, err := s.loadPost(ctx, summary)
			if err != nil {
				errs[i] = err
				return
			}
			loaded[i] = post
		}(i, summary)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return loaded, nil
}

func (s *Service) loadPost(ctx context.Context, summary Summary) (Post, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, summary.ID, summary.EditedAt)
		if err != nil {
			slog.Warn("post cache read failed", "id", summary.ID, "error", err)
		} else if ok {
			cached.Summary = summary
			return *cached, nil
		}
	}

	blocks, err := s.client.AllBlockChildren(ctx, summary.ID)
	if err != nil {
		return Post{}, err
	}

	post := Post{Summary: summary, Content: Flatten(blocks)}
	if s.cache != nil {
		if err := s.cache.Put(ctx, post); err != nil {
			slog.Warn("post cache write failed", "id", summary.ID, "error", err)
		}
	}

	return post, nil
}

func (s *Service) mapPage(page notion.Page) Summary {
	slug := safeSlug(richTextValue(page, s.slugProp))
	if slug == "" {
		// Pages without a slug stay addressable under their ID.
		slug = notion.NormalizeID(page.ID)
	}

	return Summary{
		ID:        page.ID,
		Slug:      slug,
		Title:     titleText(page, s.titleProp),
		CreatedAt: page.CreatedTime,
		EditedAt:  page.LastEditedTime,
	}
}
