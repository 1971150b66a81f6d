package domsnap

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/npillmayer/domsnap/clone"
	"github.com/npillmayer/domsnap/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><head><style>
	.card { padding: 4px; color: navy }
	.ad { color: red }
</style></head><body>
<main id="main"><div class="card">Hello<span class="ad">Buy!</span></div><input value="a"></main>
</body></html>`

func TestSnapshotRendersResolvedStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.clone")
	defer teardown()
	//
	snap, err := Snapshot(strings.NewReader(page), Config{Root: "#main", Exclude: []string{".ad"}})
	require.NoError(t, err)
	require.NotNil(t, snap)
	var b strings.Builder
	require.NoError(t, Render(&b, snap))
	out := b.String()
	t.Logf("snapshot: %s", out)
	assert.True(t, strings.HasPrefix(out, `<main id="main" style="display: block;">`))
	assert.Contains(t, out, `<div class="card" style="display: block; padding: 4px; color: navy;">Hello</div>`)
	assert.NotContains(t, out, "Buy!")
}

func TestSnapshotSkipsInlineHiddenElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.clone")
	defer teardown()
	//
	snap, err := Snapshot(strings.NewReader(`<main id="m"><p style="display:none">secret</p><p>shown</p></main>`),
		Config{Root: "#m"})
	require.NoError(t, err)
	var b strings.Builder
	require.NoError(t, Render(&b, snap))
	assert.NotContains(t, b.String(), "secret")
	assert.Contains(t, b.String(), "shown")
}

func TestSnapshotDocumentWithLiveState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.clone")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader(`<body><input value="a"><canvas id="c"></canvas></body>`))
	require.NoError(t, err)
	doc.MustQuery("input").SetValue("typed")
	doc.MustQuery("#c").SetBitmap(image.NewRGBA(image.Rect(0, 0, 1, 1)), true)
	var diags []clone.Diagnostic
	snap, err := SnapshotDocument(doc, Config{
		StyleSheets: []string{"input { color: teal }"},
		Diagnostics: func(d clone.Diagnostic) { diags = append(diags, d) },
	})
	require.NoError(t, err)
	children := snap.ElementChildren()
	require.Len(t, children, 1)
	value, _ := children[0].Attribute("value")
	assert.Equal(t, "typed", value)
	assert.Equal(t, "teal", children[0].Style.GetPropertyValue("color").String())
	require.Len(t, diags, 1)
	assert.ErrorIs(t, diags[0].Err, dom.ErrTainted)
}

func TestSnapshotErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.clone")
	defer teardown()
	//
	_, err := Snapshot(strings.NewReader(page), Config{Root: "#missing"})
	assert.True(t, errors.Is(err, ErrNoRoot))
	_, err = Snapshot(strings.NewReader(page), Config{Exclude: []string{"p["}})
	assert.Error(t, err)
	snap, err := Snapshot(strings.NewReader(page), Config{Root: "#main", Exclude: []string{"main"}})
	assert.NoError(t, err)
	assert.Nil(t, snap)
}
