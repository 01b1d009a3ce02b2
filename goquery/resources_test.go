package goquery_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/coursechef"
	"github.com/fwojciec/coursechef/fs"
	"github.com/fwojciec/coursechef/goquery"
	"github.com/fwojciec/coursechef/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// locatorFor returns a locator that finds only the given hrefs.
func locatorFor(existing ...string) *mock.AssetLocator {
	return &mock.AssetLocator{
		LocateFn: func(dir, href string) (string, bool) {
			for _, e := range existing {
				if e == href {
					return filepath.Join(dir, href), true
				}
			}
			return filepath.Join(dir, strings.ReplaceAll(href, "_", " ")), false
		},
	}
}

func TestResourceExtractor_ExtractResources(t *testing.T) {
	t.Parallel()

	t.Run("treats iframe as single document", func(t *testing.T) {
		t.Parallel()

		html := `<p>Intro <a href="/static/other.docx">other</a></p>
<iframe src=" /static/plan.pdf " title="Course plan" width="100%"></iframe>`

		extractor := goquery.NewResourceExtractor(locatorFor("/static/plan.pdf"))
		resources, err := extractor.ExtractResources(html, "/courses/c1")

		require.NoError(t, err)
		require.Len(t, resources, 1)
		r := resources[0]
		assert.Equal(t, "/static/plan.pdf", r.Href)
		assert.Equal(t, filepath.Join("/courses/c1", "/static/plan.pdf"), r.RelPath)
		assert.Equal(t, "pdf", r.Ext)
		assert.Equal(t, "plan.pdf", r.Filename)
		assert.Equal(t, "Course plan", r.Title)
		assert.Contains(t, r.LinkHTML, "<iframe")
		assert.False(t, r.Missing)
		assert.False(t, r.External)
	})

	t.Run("defaults iframe title", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewResourceExtractor(locatorFor("/static/a.pdf"))
		resources, err := extractor.ExtractResources(`<iframe src="/static/a.pdf"></iframe>`, "/c")

		require.NoError(t, err)
		require.Len(t, resources, 1)
		assert.Equal(t, "no title", resources[0].Title)
	})

	t.Run("extracts every link in document order", func(t *testing.T) {
		t.Parallel()

		html := `<ul>
<li><a href="/static/Work_Sheet.DOCX"><b>Work sheet</b></a></li>
<li><a href="/static/Guide%20Book.pdf">Guide</a></li>
<li><a href="https://example.com/files/ref.xlsx?dl=1">Reference</a></li>
<li><a href="mailto:help@example.com">Mail us</a></li>
<li><a href="#top">Top</a></li>
</ul>`

		extractor := goquery.NewResourceExtractor(locatorFor("/static/Guide Book.pdf"))
		resources, err := extractor.ExtractResources(html, "/c")

		require.NoError(t, err)
		require.Len(t, resources, 3)

		assert.Equal(t, "docx", resources[0].Ext)
		assert.Equal(t, "Work sheet", resources[0].Title)
		assert.True(t, resources[0].Missing)
		assert.Equal(t, filepath.Join("/c", "/static/Work Sheet.DOCX"), resources[0].RelPath)
		assert.Equal(t, `<a href="/static/Work_Sheet.DOCX"><b>Work sheet</b></a>`, resources[0].LinkHTML)

		assert.Equal(t, "/static/Guide Book.pdf", resources[1].Href)
		assert.Equal(t, "Guide Book.pdf", resources[1].Filename)
		assert.False(t, resources[1].Missing)

		assert.True(t, resources[2].External)
		assert.Empty(t, resources[2].RelPath)
		assert.Equal(t, "ref.xlsx", resources[2].Filename)
		assert.Equal(t, "xlsx", resources[2].Ext)
	})

	t.Run("returns empty slice without links", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewResourceExtractor(locatorFor())
		resources, err := extractor.ExtractResources(`<p>Just text</p>`, "/c")

		require.NoError(t, err)
		assert.NotNil(t, resources)
		assert.Empty(t, resources)
	})
}

func TestResourceExtractor_ExtractResources_StaysInsideCourse(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := filepath.Join(root, "course")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), []byte("secret"), 0644))

	extractor := goquery.NewResourceExtractor(fs.NewAssetLocator())
	resources, err := extractor.ExtractResources(`<a href="/static/../../secret.txt">notes</a>`, dir)

	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.True(t, resources[0].Missing)
	assert.False(t, resources[0].External)
}

func TestResourceExtractor_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ coursechef.ResourceExtractor = goquery.NewResourceExtractor(nil)
}
