// Package di assembles the runtime dependencies shared by the server and the CLI.
package di

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	ridgeline "ridgeline.build/ridgeline-web"
	"ridgeline.build/ridgeline-web/internal/audit"
	"ridgeline.build/ridgeline-web/internal/business"
	"ridgeline.build/ridgeline-web/internal/cms"
	"ridgeline.build/ridgeline-web/internal/config"
	"ridgeline.build/ridgeline-web/internal/export"
	"ridgeline.build/ridgeline-web/internal/i18n"
	"ridgeline.build/ridgeline-web/internal/render"
	"ridgeline.build/ridgeline-web/internal/site"
)

// Container holds everything needed to render, audit and export the site.
type Container struct {
	Config   config.Config
	Logger   *zap.Logger
	Bundle   *i18n.Bundle
	Content  *cms.Client
	Site     *site.Site
	Renderer *render.Renderer
}

// NewContainer loads locales and content and builds the renderer. The site is assembled in
// the default language; other languages are resolved per request by the server.
func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		return nil, errors.New("di: logger is required")
	}

	locales, err := ridgeline.LocalesFS()
	if err != nil {
		return nil, fmt.Errorf("di: locales: %w", err)
	}
	bundle, err := i18n.Load(locales, cfg.Site.DefaultLang, cfg.Site.Languages)
	if err != nil {
		return nil, fmt.Errorf("di: load locales: %w", err)
	}

	contentFS, err := ridgeline.ContentFS()
	if err != nil {
		return nil, fmt.Errorf("di: content: %w", err)
	}
	cms.SetContentCacheDuration(cfg.Content.CacheTTL)
	client := cms.NewClient(contentFS, cfg.Content.CMSBaseURL, logger.Named("cms"))

	s, err := site.Load(ctx, client, cfg.Site.DefaultLang)
	if err != nil {
		return nil, err
	}

	opts := render.Options{
		BaseURL:  cfg.Site.BaseURL,
		SiteName: cfg.Site.Name,
		Business: business.Default,
		Bundle:   bundle,
		Analytics: render.Analytics{
			GA4MeasurementID: cfg.Analytics.GA4MeasurementID,
			GTMContainerID:   cfg.Analytics.GTMContainerID,
			Debug:            cfg.Analytics.Debug,
		},
		FormURL:         cfg.Site.FormURL,
		InlineFAQSchema: cfg.Site.InlineFAQSchema,
	}
	if cfg.Server.DevMode {
		opts.DevDir = cfg.Server.TemplatesDir
	} else {
		tmpl, err := ridgeline.TemplatesFS()
		if err != nil {
			return nil, fmt.Errorf("di: templates: %w", err)
		}
		opts.Templates = tmpl
	}
	r, err := render.New(opts)
	if err != nil {
		return nil, err
	}

	logger.Info("site loaded",
		zap.Int("pages", s.Len()),
		zap.String("lang", cfg.Site.DefaultLang),
		zap.Strings("languages", bundle.Supported()),
		zap.Bool("dev_mode", cfg.Server.DevMode),
	)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Bundle:   bundle,
		Content:  client,
		Site:     s,
		Renderer: r,
	}, nil
}

// Audit runs every check against the loaded site.
func (c *Container) Audit(ctx context.Context) (audit.Report, error) {
	return audit.Run(ctx, c.Site, c.Renderer, audit.Options{
		MaxTitle:       c.Config.Audit.MaxTitle,
		MaxDescription: c.Config.Audit.MaxDescription,
		Concurrency:    c.Config.Export.Concurrency,
	})
}

// Exporter returns an exporter writing the site with the embedded assets.
func (c *Container) Exporter() (*export.Exporter, error) {
	assets, err := ridgeline.AssetsFS()
	if err != nil {
		return nil, fmt.Errorf("di: assets: %w", err)
	}
	return export.New(c.Site, c.Renderer, export.Options{
		BaseURL:     c.Config.Site.BaseURL,
		Concurrency: c.Config.Export.Concurrency,
		Assets:      assets,
		Logger:      c.Logger.Named("export"),
	}), nil
}
