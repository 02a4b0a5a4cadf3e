// Package publish uploads an export directory to object storage.
package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ridgeline.build/ridgeline-web/internal/export"
)

const (
	cacheHTML     = "public, max-age=300"
	cacheAssets   = "public, max-age=604800, stale-while-revalidate=86400"
	cacheMeta     = "public, max-age=3600"
	cacheManifest = "no-cache"
)

// Object describes one upload.
type Object struct {
	Name         string
	ContentType  string
	CacheControl string
}

// Bucket is the storage surface the publisher writes to.
type Bucket interface {
	Upload(ctx context.Context, obj Object, r io.Reader) error
}

// Options configures a Publisher.
type Options struct {
	// Prefix is prepended to every object name.
	Prefix      string
	Concurrency int
	DryRun      bool
	Logger      *zap.Logger
}

// Action is one planned or performed upload.
type Action struct {
	Path   string `json:"path"`
	Object Object `json:"object"`
}

type Publisher struct {
	bucket Bucket
	opts   Options
}

func New(bucket Bucket, opts Options) *Publisher {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 8
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	opts.Prefix = strings.Trim(opts.Prefix, "/")
	return &Publisher{bucket: bucket, opts: opts}
}

// Plan lists the uploads for dir in the order they are performed: assets, pages,
// crawler files, then manifest.json last so a half-finished publish never advertises
// a new build.
func (p *Publisher) Plan(dir string) ([]Action, error) {
	if _, err := export.ReadManifest(dir); err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}
	fsys := os.DirFS(dir)
	var actions []Action
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		actions = append(actions, Action{
			Path: filepath.Join(dir, filepath.FromSlash(name)),
			Object: Object{
				Name:         path.Join(p.opts.Prefix, name),
				ContentType:  contentType(name),
				CacheControl: cacheControl(name),
			},
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("publish: walk %s: %w", dir, err)
	}
	sort.SliceStable(actions, func(i, j int) bool {
		ri, rj := rank(actions[i].Object.Name, p.opts.Prefix), rank(actions[j].Object.Name, p.opts.Prefix)
		if ri != rj {
			return ri < rj
		}
		return actions[i].Object.Name < actions[j].Object.Name
	})
	return actions, nil
}

// Publish uploads dir. In dry-run mode the plan is returned without uploading.
func (p *Publisher) Publish(ctx context.Context, dir string) ([]Action, error) {
	actions, err := p.Plan(dir)
	if err != nil {
		return nil, err
	}
	if p.opts.DryRun {
		for _, a := range actions {
			p.opts.Logger.Info("dry run", zap.String("object", a.Object.Name), zap.String("content_type", a.Object.ContentType))
		}
		return actions, nil
	}
	if p.bucket == nil {
		return nil, errors.New("publish: bucket is required")
	}

	// each rank completes before the next starts
	for start := 0; start < len(actions); {
		end := start
		r := rank(actions[start].Object.Name, p.opts.Prefix)
		for end < len(actions) && rank(actions[end].Object.Name, p.opts.Prefix) == r {
			end++
		}
		if err := p.uploadAll(ctx, actions[start:end]); err != nil {
			return nil, err
		}
		start = end
	}
	p.opts.Logger.Info("publish complete", zap.Int("objects", len(actions)))
	return actions, nil
}

func (p *Publisher) uploadAll(ctx context.Context, actions []Action) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)
	for _, a := range actions {
		a := a
		g.Go(func() error {
			f, err := os.Open(a.Path)
			if err != nil {
				return fmt.Errorf("publish: open %s: %w", a.Path, err)
			}
			defer f.Close()
			if err := p.bucket.Upload(gctx, a.Object, f); err != nil {
				return fmt.Errorf("publish: upload %s: %w", a.Object.Name, err)
			}
			p.opts.Logger.Debug("uploaded", zap.String("object", a.Object.Name))
			return nil
		})
	}
	return g.Wait()
}

func rank(name, prefix string) int {
	rel := strings.TrimPrefix(strings.TrimPrefix(name, prefix), "/")
	switch {
	case strings.HasPrefix(rel, "assets/"):
		return 0
	case strings.HasSuffix(rel, ".html"):
		return 1
	case rel == export.ManifestFile:
		return 3
	default:
		return 2
	}
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".xml":
		return "application/xml; charset=utf-8"
	case ".txt":
		return "text/plain; charset=utf-8"
	}
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func cacheControl(name string) string {
	switch {
	case strings.HasPrefix(name, "assets/"):
		return cacheAssets
	case name == export.ManifestFile:
		return cacheManifest
	case strings.HasSuffix(name, ".html"):
		return cacheHTML
	default:
		return cacheMeta
	}
}
