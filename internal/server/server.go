// Package server serves the generated site and revalidates it on a fixed
// interval. A failed revalidation keeps the previous output.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-co-op/gocron/v2"

	"notionblog/internal/site"
)

const cacheControlPublicHour = "public, max-age=3600, s-maxage=3600"

type Config struct {
	ListenAddr         string
	OutputDir          string
	RevalidateInterval time.Duration
}

type Server struct {
	cfg     Config
	builder *site.Builder
}

func New(cfg Config, builder *site.Builder) *Server {
	return &Server{cfg: cfg, builder: builder}
}

// Run builds once, then serves until ctx is canceled. The initial build
// must succeed; scheduled revalidations only log their failures.
func (s *Server) Run(ctx context.Context) error {
	count, err := s.builder.Build(ctx)
	if err != nil {
		return fmt.Errorf("initial build: %w", err)
	}
	slog.Info("site built", "posts", count, "dir", s.cfg.OutputDir)

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}
	if _, err := scheduler.NewJob(
		gocron.DurationJob(s.cfg.RevalidateInterval),
		gocron.NewTask(s.revalidate),
		gocron.WithName("revalidate"),
	); err != nil {
		return fmt.Errorf("schedule revalidation: %w", err)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Shutdown(); err != nil {
			slog.Warn("scheduler shutdown failed", "error", err)
		}
	}()

	httpServer := &http.Server{
		Addr:    s.cfg.ListenAddr,
		Handler: s.handler(),
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- httpServer.ListenAndServe()
	}()

	slog.Info("serving", "addr", s.cfg.ListenAddr, "revalidate", s.cfg.RevalidateInterval)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/", withCacheControlPublicHour(http.FileServer(http.Dir(s.cfg.OutputDir))))
	return mux
}

func (s *Server) revalidate() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	count, err := s.builder.Build(ctx)
	if err != nil {
		slog.Error("revalidation failed, keeping previous output", "error", err)
		return
	}

	slog.Info("site revalidated", "posts", count)
}

func withCacheControlPublicHour(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControlPublicHour)
		next.ServeHTTP(w, r)
	})
}
