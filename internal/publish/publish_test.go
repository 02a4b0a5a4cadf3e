package publish

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type memBucket struct {
	mu      sync.Mutex
	order   []string
	objects map[string]Object
	data    map[string]string
	failOn  string
}

func (b *memBucket) Upload(_ context.Context, obj Object, r io.Reader) error {
	if obj.Name == b.failOn {
		return errors.New("denied")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.objects == nil {
		b.objects = map[string]Object{}
		b.data = map[string]string{}
	}
	b.order = append(b.order, obj.Name)
	b.objects[obj.Name] = obj
	b.data[obj.Name] = string(data)
	return nil
}

func writeExport(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"manifest.json":             `{"build_id":"01HX"}`,
		"index.html":                "<html>home</html>",
		"blog/index.html":           "<html>blog</html>",
		"404.html":                  "<html>404</html>",
		"sitemap.xml":               "<urlset/>",
		"robots.txt":                "User-agent: *",
		"assets/css/site.css":       "body{}",
		"assets/img/icons.svg":      "<svg/>",
		"assets/img/og-default.jpg": "jpg",
	}
	for name, body := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
	return dir
}

func TestPlanOrdersAndClassifies(t *testing.T) {
	p := New(nil, Options{Prefix: "/site/"})
	actions, err := p.Plan(writeExport(t))
	require.NoError(t, err)
	require.Len(t, actions, 9)

	require.Equal(t, "site/assets/css/site.css", actions[0].Object.Name)
	require.Equal(t, "site/manifest.json", actions[len(actions)-1].Object.Name)
	require.Equal(t, cacheManifest, actions[len(actions)-1].Object.CacheControl)

	byName := map[string]Object{}
	for _, a := range actions {
		byName[a.Object.Name] = a.Object
	}
	require.Equal(t, "text/html; charset=utf-8", byName["site/blog/index.html"].ContentType)
	require.Equal(t, cacheHTML, byName["site/blog/index.html"].CacheControl)
	require.Equal(t, cacheAssets, byName["site/assets/img/icons.svg"].CacheControl)
	require.Equal(t, "image/svg+xml", byName["site/assets/img/icons.svg"].ContentType)
	require.Equal(t, "application/xml; charset=utf-8", byName["site/sitemap.xml"].ContentType)
	require.Equal(t, cacheMeta, byName["site/robots.txt"].CacheControl)
}

func TestPublishUploadsManifestLast(t *testing.T) {
	b := &memBucket{}
	p := New(b, Options{Concurrency: 3})
	actions, err := p.Publish(context.Background(), writeExport(t))
	require.NoError(t, err)
	require.Len(t, b.order, len(actions))
	require.Equal(t, "manifest.json", b.order[len(b.order)-1])
	require.Equal(t, "<html>home</html>", b.data["index.html"])

	seenHTML := false
	for _, name := range b.order {
		if filepath.Ext(name) == ".html" {
			seenHTML = true
		}
		if seenHTML {
			require.NotContains(t, name, "assets/", "asset uploaded after pages")
		}
	}
}

func TestPublishDryRunUploadsNothing(t *testing.T) {
	b := &memBucket{}
	actions, err := New(b, Options{DryRun: true}).Publish(context.Background(), writeExport(t))
	require.NoError(t, err)
	require.NotEmpty(t, actions)
	require.Empty(t, b.order)
}

func TestPublishStopsBeforeManifestOnFailure(t *testing.T) {
	b := &memBucket{failOn: "blog/index.html"}
	_, err := New(b, Options{}).Publish(context.Background(), writeExport(t))
	require.Error(t, err)
	require.NotContains(t, b.order, "manifest.json")
}

func TestPlanRequiresManifest(t *testing.T) {
	_, err := New(nil, Options{}).Plan(t.TempDir())
	require.Error(t, err)
}
