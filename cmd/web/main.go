package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	ridgeline "ridgeline.build/ridgeline-web"
	"ridgeline.build/ridgeline-web/internal/cms"
	"ridgeline.build/ridgeline-web/internal/config"
	"ridgeline.build/ridgeline-web/internal/content"
	"ridgeline.build/ridgeline-web/internal/di"
	mw "ridgeline.build/ridgeline-web/internal/middleware"
	"ridgeline.build/ridgeline-web/internal/observability"
	"ridgeline.build/ridgeline-web/internal/site"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	baseLogger, err := observability.NewLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()
	logger := baseLogger.Named("web")
	ctx = observability.WithLogger(ctx, logger)

	container, err := di.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to build site", zap.Error(err))
	}
	router, err := newRouter(container, time.Now())
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("web listening", zap.String("addr", srv.Addr), zap.Bool("dev_mode", cfg.Server.DevMode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		logger.Fatal("http server failed", zap.Error(err))
	case <-shutdown:
		logger.Info("shutdown signal received; draining requests")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}
}

// newRouter mounts every page of the container's site plus the crawler and asset routes.
// builtAt stamps the sitemap lastmod for pages without their own dates.
func newRouter(c *di.Container, builtAt time.Time) (http.Handler, error) {
	cfg := c.Config

	sitemap, err := c.Site.Sitemap(cfg.Site.BaseURL, builtAt)
	if err != nil {
		return nil, err
	}
	robots := site.Robots(cfg.Site.BaseURL)
	assets, err := ridgeline.AssetsFS()
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; the service only runs behind the load balancer.
	r.Use(chimw.RealIP)
	r.Use(mw.Locale(c.Bundle))
	r.Use(mw.Logger(c.Logger.Named("http")))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(cfg.Server.RequestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/assets/*", mw.AssetsWithCache(assets, "/assets"))
	r.Get("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		_, _ = w.Write(sitemap)
	})
	r.Get("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write(robots)
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.VaryLocale)
		for _, p := range c.Site.Pages() {
			if p.Kind == content.KindContent {
				r.Get(p.Route, contentHandler(c, p))
				continue
			}
			r.Get(p.Route, templ.Handler(c.Renderer.Component(p)).ServeHTTP)
		}
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			templ.Handler(c.Renderer.NotFoundComponent(r.URL.Path), templ.WithStatus(http.StatusNotFound)).ServeHTTP(w, r)
		})
	})
	return r, nil
}

// contentHandler serves a markdown page in the request language when a translation exists,
// otherwise the default-language page the site was built with.
func contentHandler(c *di.Container, fallback content.Page) http.HandlerFunc {
	slug := strings.TrimPrefix(fallback.Route, "/")
	return func(w http.ResponseWriter, r *http.Request) {
		page := fallback
		if lang := mw.Lang(r, fallback.Lang); lang != fallback.Lang {
			cp, err := c.Content.GetContentPage(r.Context(), slug, lang)
			switch {
			case err == nil && cp.Lang == lang:
				page = cp.Page()
			case err != nil && !errors.Is(err, cms.ErrNotFound):
				observability.FromContext(r.Context()).Warn("content page lookup failed", zap.String("slug", slug), zap.Error(err))
			}
		}
		templ.Handler(c.Renderer.Component(page)).ServeHTTP(w, r)
	}
}
