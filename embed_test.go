package ridgeline_test

import (
	"context"
	"io/fs"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	ridgeline "ridgeline.build/ridgeline-web"
	"ridgeline.build/ridgeline-web/internal/business"
	"ridgeline.build/ridgeline-web/internal/cms"
	"ridgeline.build/ridgeline-web/internal/content"
	"ridgeline.build/ridgeline-web/internal/pages"
	"ridgeline.build/ridgeline-web/internal/seo"
)

// assetPath maps an image reference to its path inside AssetsFS. Absolute URLs
// count only when they point at the site's own /assets tree.
func assetPath(t *testing.T, ref string) (string, bool) {
	t.Helper()
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		u, err := url.Parse(ref)
		require.NoError(t, err)
		ref = u.Path
	}
	if !strings.HasPrefix(ref, "/assets/") {
		return "", false
	}
	return strings.TrimPrefix(ref, "/assets/"), true
}

func pageImages(p content.Page) []string {
	refs := []string{p.Meta.OGImage, p.Hero.Image}
	if p.Parallax != nil {
		refs = append(refs, p.Parallax.Image)
	}
	if p.Schemas.ArticleInfo != nil {
		refs = append(refs, p.Schemas.ArticleInfo.Image)
	}
	return refs
}

func TestReferencedAssetsAreEmbedded(t *testing.T) {
	assets, err := ridgeline.AssetsFS()
	require.NoError(t, err)

	refs := map[string]string{
		business.Default.Logo:  "business logo",
		business.Default.Image: "business image",
		seo.MetaFor(content.Page{Route: "/"}, "", "").OG.Image: "default og image",
	}
	for _, p := range pages.Registry() {
		for _, ref := range pageImages(p) {
			refs[ref] = p.Route
		}
	}

	contentFS, err := ridgeline.ContentFS()
	require.NoError(t, err)
	cms.ResetCache()
	client := cms.NewClient(contentFS, "", nil)
	for _, lang := range []string{"en", "es"} {
		cmsPages, err := client.Pages(context.Background(), lang)
		require.NoError(t, err)
		for _, p := range cmsPages {
			for _, ref := range pageImages(p) {
				refs[ref] = lang + p.Route
			}
		}
	}

	checked := 0
	for ref, owner := range refs {
		if ref == "" {
			continue
		}
		name, ok := assetPath(t, ref)
		require.True(t, ok, "%s references %q outside /assets", owner, ref)
		_, err := fs.Stat(assets, name)
		require.NoError(t, err, "%s references missing asset %q", owner, ref)
		checked++
	}
	require.Greater(t, checked, 3)
}
