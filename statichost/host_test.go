package statichost

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/npillmayer/domsnap/clone"
	"github.com/npillmayer/domsnap/dom"
	"github.com/npillmayer/domsnap/dom/raster"
	"github.com/npillmayer/domsnap/dom/style"
	"github.com/npillmayer/domsnap/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, markup string) *dom.Node {
	t.Helper()
	doc, err := dom.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func computed(t *testing.T, h *Host, el *dom.Node) style.Computed {
	t.Helper()
	c, err := h.ComputedStyle(el)
	require.NoError(t, err)
	return c
}

func TestCascadeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.host")
	defer teardown()
	//
	doc := parse(t, `<html><head><style>
		p { color: blue; margin-top: 1px }
		#x { color: green }
		p.c { color: red !important; margin-top: 2px }
		p { margin-top: 3px }
	</style></head><body><p id="x" class="c" style="color: black; margin-top: 4px">x</p></body></html>`)
	h := New(doc)
	c := computed(t, h, doc.MustQuery("#x"))
	assert.Equal(t, style.Property("red"), c.GetPropertyValue("color"))
	assert.Equal(t, style.Important, c.GetPropertyPriority("color"))
	assert.Equal(t, style.Property("4px"), c.GetPropertyValue("margin-top"))
	assert.Equal(t, style.Property("block"), c.GetPropertyValue("display"))
	assert.Equal(t, "", c.CSSText())
}

func TestSpecificityBeatsSourceOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.host")
	defer teardown()
	//
	doc := parse(t, `<style>#x { color: green } p { color: blue }</style><p id="x">x</p>`)
	c := computed(t, New(doc), doc.MustQuery("#x"))
	assert.Equal(t, style.Property("green"), c.GetPropertyValue("color"))
}

func TestInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.host")
	defer teardown()
	//
	doc := parse(t, `<div style="color: red; font-size: 20px; margin-top: 5px; border-top: inherit">`+
		`<span id="s" style="border-top: inherit">x</span></div>`)
	c := computed(t, New(doc), doc.MustQuery("#s"))
	assert.Equal(t, style.Property("red"), c.GetPropertyValue("color"))
	assert.Equal(t, style.Property("20px"), c.GetPropertyValue("font-size"))
	assert.Equal(t, style.NullStyle, c.GetPropertyValue("margin-top"))
	assert.Equal(t, style.NullStyle, c.GetPropertyValue("border-top"))
	assert.Equal(t, style.Property("inline"), c.GetPropertyValue("display"))
}

func TestUserAgentDisplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.host")
	defer teardown()
	//
	doc := parse(t, `<ul><li id="li">x</li></ul><style id="st">p {}</style><p id="p" style="display: initial">x</p>`)
	h := New(doc)
	assert.Equal(t, style.Property("list-item"), computed(t, h, doc.MustQuery("#li")).GetPropertyValue("display"))
	assert.Equal(t, style.Property("none"), computed(t, h, doc.MustQuery("#st")).GetPropertyValue("display"))
	assert.Equal(t, style.Property("inline"), computed(t, h, doc.MustQuery("#p")).GetPropertyValue("display"))
	_, err := h.ComputedStyle(dom.NewText("x"))
	assert.ErrorIs(t, err, ErrNotAnElement)
}

func TestShadowRootIsStyleScope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.host")
	defer teardown()
	//
	doc := parse(t, `<style>b { color: blue }</style>`+
		`<div id="host" style="font-style: italic"><template shadowrootmode="open">`+
		`<style>b { color: red }</style><b id="inner">in</b><slot></slot></template>`+
		`<b id="outer">out</b></div>`)
	host := doc.MustQuery("#host")
	inner := host.ShadowRoot().MustQuery("#inner")
	h := New(doc)
	ci := computed(t, h, inner)
	assert.Equal(t, style.Property("red"), ci.GetPropertyValue("color"))
	assert.Equal(t, style.Property("italic"), ci.GetPropertyValue("font-style"), "inherits from shadow host")
	assert.Equal(t, style.Property("blue"), computed(t, h, doc.MustQuery("#outer")).GetPropertyValue("color"))
}

func TestAuthorStyleSheetAndSerialization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.host")
	defer teardown()
	//
	sheet, err := douceuradapter.Parse(`p { color: olive }`)
	require.NoError(t, err)
	doc := parse(t, `<p id="p">x</p>`)
	c := computed(t, New(doc, WithStyleSheet(sheet), WithSerializedStyles()), doc.MustQuery("#p"))
	assert.Equal(t, style.Property("olive"), c.GetPropertyValue("color"))
	assert.Equal(t, "display: block; color: olive;", c.CSSText())
}

func TestInvalidSelectorsNeverMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.host")
	defer teardown()
	//
	doc := parse(t, `<style>p[ { color: red } p { color: blue }</style><p id="p">x</p>`)
	c := computed(t, New(doc), doc.MustQuery("#p"))
	assert.NotEqual(t, style.Property("red"), c.GetPropertyValue("color"))
}

func TestToDataURL(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.host")
	defer teardown()
	//
	doc := parse(t, `<canvas id="c"></canvas>`)
	canvas := doc.MustQuery("#c")
	h := New(doc)
	url, err := h.ToDataURL(canvas)
	require.NoError(t, err)
	assert.Equal(t, raster.Blank, url)
	//
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.Set(1, 1, color.White)
	canvas.SetBitmap(img, false)
	url, err = h.ToDataURL(canvas)
	require.NoError(t, err)
	decoded, err := raster.DecodeDataURL(url)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
	//
	canvas.SetBitmap(img, true)
	_, err = h.ToDataURL(canvas)
	assert.True(t, errors.Is(err, dom.ErrTainted))
}

func TestCurrentFrame(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.host")
	defer teardown()
	//
	doc := parse(t, `<video id="v" src="m.mp4"></video>`)
	video := doc.MustQuery("#v")
	h := New(doc)
	_, err := h.CurrentFrame(video)
	assert.ErrorIs(t, err, ErrNoFrame)
	frame := image.NewRGBA(image.Rect(0, 0, 2, 2))
	video.SetFrame(frame)
	got, err := h.CurrentFrame(video)
	require.NoError(t, err)
	assert.Same(t, frame, got)
}

func TestPseudoElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.host")
	defer teardown()
	//
	doc := parse(t, `<style>p::before { content: "»"; color: red } p::after { content: none }</style>`+
		`<p id="p" class="note">x</p>`)
	h := New(doc)
	cloner := clone.New(h.Capabilities())
	c, err := cloner.Clone(doc.MustQuery("#p"), clone.Options{})
	require.NoError(t, err)
	class, _ := c.Attribute("class")
	assert.Equal(t, "note domsnap-1", class)
	children := c.ElementChildren()
	require.Len(t, children, 1)
	assert.Equal(t, "style", children[0].Data)
	assert.Equal(t, `.domsnap-1::before { content: "»"; color: red; }`, children[0].TextContent())
	assert.True(t, strings.HasSuffix(c.TextContent(), "x"))
}

func TestCloneStaticDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.host")
	defer teardown()
	//
	doc := parse(t, `<style>.hidden { display: none } canvas { width: 10px }</style>`+
		`<div id="root"><p class="hidden">gone</p><canvas id="c"></canvas><input id="i" value="a"></div>`)
	doc.MustQuery("#c").SetBitmap(image.NewRGBA(image.Rect(0, 0, 2, 2)), false)
	doc.MustQuery("#i").SetValue("b")
	cloner := clone.New(New(doc).Capabilities())
	c, err := cloner.Clone(doc.MustQuery("#root"), clone.Options{})
	require.NoError(t, err)
	children := c.ElementChildren()
	require.Len(t, children, 2)
	assert.Equal(t, "img", children[0].Data)
	assert.Equal(t, style.Property("10px"), children[0].Style.GetPropertyValue("width"))
	value, _ := children[1].Attribute("value")
	assert.Equal(t, "b", value)
}

func TestInlineDisplayNoneIsExcluded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.host")
	defer teardown()
	//
	doc := parse(t, `<div id="root"><p style="display:none">secret</p><p style="color: red">shown</p></div>`)
	cloner := clone.New(New(doc).Capabilities())
	c, err := cloner.Clone(doc.MustQuery("#root"), clone.Options{})
	require.NoError(t, err)
	children := c.ElementChildren()
	require.Len(t, children, 1)
	assert.Equal(t, style.Property("red"), children[0].Style.GetPropertyValue("color"))
	assert.Equal(t, "shown", c.TextContent())
	var b strings.Builder
	require.NoError(t, clone.Render(&b, c))
	assert.NotContains(t, b.String(), "secret")
}

func TestInlineStyleWithEmptyDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.host")
	defer teardown()
	//
	doc := parse(t, `<div id="root"><p id="p" style="color: red;; margin: 0;">x</p></div>`)
	h := New(doc)
	c := computed(t, h, doc.MustQuery("#p"))
	assert.Equal(t, style.Property("red"), c.GetPropertyValue("color"))
	assert.Equal(t, style.Property("0"), c.GetPropertyValue("margin"))
	snap, err := clone.New(h.Capabilities()).Clone(doc.MustQuery("#p"), clone.Options{})
	require.NoError(t, err)
	var b strings.Builder
	require.NoError(t, clone.Render(&b, snap))
	assert.Equal(t, 1, strings.Count(b.String(), "style="))
	assert.Contains(t, b.String(), "color: red;")
}
