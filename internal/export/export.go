// Package export writes the rendered site to a directory that any static host can serve.
package export

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ridgeline.build/ridgeline-web/internal/content"
	"ridgeline.build/ridgeline-web/internal/render"
	"ridgeline.build/ridgeline-web/internal/site"
)

const (
	ManifestFile = "manifest.json"
	assetsDir    = "assets"
)

// Renderer is the part of render.Renderer the exporter needs.
type Renderer interface {
	Render(ctx context.Context, p content.Page) (render.Document, error)
	RenderNotFound(ctx context.Context, route string) ([]byte, error)
}

// Options configures an Exporter.
type Options struct {
	BaseURL     string
	Concurrency int
	// Assets is copied to <out>/assets when set.
	Assets fs.FS
	Logger *zap.Logger
	Now    func() time.Time
	// Entropy seeds build IDs. Defaults to crypto/rand.
	Entropy io.Reader
}

// Manifest describes one export run.
type Manifest struct {
	BuildID     string         `json:"build_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	BaseURL     string         `json:"base_url"`
	Pages       []ManifestPage `json:"pages"`
	Assets      int            `json:"assets"`
}

// ManifestPage records the file written for one route.
type ManifestPage struct {
	Route  string `json:"route"`
	Path   string `json:"path"`
	SHA256 string `json:"sha256"`
	Bytes  int    `json:"bytes"`
}

type Exporter struct {
	site     *site.Site
	renderer Renderer
	opts     Options
}

func New(s *site.Site, r Renderer, opts Options) *Exporter {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 8
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Entropy == nil {
		opts.Entropy = rand.Reader
	}
	return &Exporter{site: s, renderer: r, opts: opts}
}

// Export renders every route into outDir as <route>/index.html alongside 404.html,
// sitemap.xml, robots.txt, the assets and manifest.json. The first failure cancels
// the remaining renders.
func (e *Exporter) Export(ctx context.Context, outDir string) (Manifest, error) {
	now := e.opts.Now().UTC()
	id, err := ulid.New(ulid.Timestamp(now), e.opts.Entropy)
	if err != nil {
		return Manifest{}, fmt.Errorf("export: build id: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Manifest{}, fmt.Errorf("export: create %s: %w", outDir, err)
	}
	logger := e.opts.Logger.With(zap.String("build_id", id.String()))

	var (
		mu    sync.Mutex
		pages []ManifestPage
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Concurrency)
	for _, p := range e.site.Pages() {
		p := p
		g.Go(func() error {
			doc, err := e.renderer.Render(gctx, p)
			if err != nil {
				return fmt.Errorf("export: render %s: %w", p.Route, err)
			}
			rel, err := RoutePath(p.Route)
			if err != nil {
				return err
			}
			if err := writeFile(outDir, rel, doc.HTML); err != nil {
				return err
			}
			sum := sha256.Sum256(doc.HTML)
			mu.Lock()
			pages = append(pages, ManifestPage{
				Route:  p.Route,
				Path:   rel,
				SHA256: hex.EncodeToString(sum[:]),
				Bytes:  len(doc.HTML),
			})
			mu.Unlock()
			logger.Debug("page exported", zap.String("route", p.Route), zap.String("path", rel))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Manifest{}, err
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Route < pages[j].Route })

	notFound, err := e.renderer.RenderNotFound(ctx, "/404")
	if err != nil {
		return Manifest{}, fmt.Errorf("export: render 404: %w", err)
	}
	if err := writeFile(outDir, "404.html", notFound); err != nil {
		return Manifest{}, err
	}

	sitemap, err := e.site.Sitemap(e.opts.BaseURL, now)
	if err != nil {
		return Manifest{}, err
	}
	if err := writeFile(outDir, "sitemap.xml", sitemap); err != nil {
		return Manifest{}, err
	}
	if err := writeFile(outDir, "robots.txt", site.Robots(e.opts.BaseURL)); err != nil {
		return Manifest{}, err
	}

	assets := 0
	if e.opts.Assets != nil {
		if assets, err = copyFS(e.opts.Assets, filepath.Join(outDir, assetsDir)); err != nil {
			return Manifest{}, err
		}
	}

	m := Manifest{
		BuildID:     id.String(),
		GeneratedAt: now,
		BaseURL:     e.opts.BaseURL,
		Pages:       pages,
		Assets:      assets,
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return Manifest{}, fmt.Errorf("export: encode manifest: %w", err)
	}
	if err := writeFile(outDir, ManifestFile, append(data, '\n')); err != nil {
		return Manifest{}, err
	}
	logger.Info("export complete", zap.Int("pages", len(pages)), zap.Int("assets", assets), zap.String("dir", outDir))
	return m, nil
}

// RoutePath maps a route to its slash-separated file path inside the export
// directory. Routes that would escape the directory are rejected.
func RoutePath(route string) (string, error) {
	if !strings.HasPrefix(route, "/") || strings.ContainsAny(route, "\\\x00?#") {
		return "", fmt.Errorf("export: invalid route %q", route)
	}
	for _, seg := range strings.Split(route, "/") {
		if seg == ".." || seg == "." {
			return "", fmt.Errorf("export: invalid route %q", route)
		}
	}
	clean := strings.TrimPrefix(path.Clean(route), "/")
	if clean == "" {
		return "index.html", nil
	}
	return clean + "/index.html", nil
}

func writeFile(root, rel string, data []byte) error {
	if !fs.ValidPath(rel) {
		return fmt.Errorf("export: invalid path %q", rel)
	}
	dst := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("export: mkdir for %s: %w", rel, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", rel, err)
	}
	return nil
}

func copyFS(src fs.FS, dst string) (int, error) {
	n := 0
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(src, p)
		if err != nil {
			return err
		}
		if err := writeFile(dst, p, data); err != nil {
			return err
		}
		n++
		return nil
	})
	if err != nil {
		return n, fmt.Errorf("export: copy assets: %w", err)
	}
	return n, nil
}

// ReadManifest loads manifest.json from an export directory.
func ReadManifest(dir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Manifest{}, fmt.Errorf("export: %s has no manifest: %w", dir, err)
		}
		return Manifest{}, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("export: decode manifest: %w", err)
	}
	return m, nil
}
