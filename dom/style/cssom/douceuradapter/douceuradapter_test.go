package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/domsnap/dom"
	"github.com/npillmayer/domsnap/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.style")
	defer teardown()
	//
	sheet, err := Parse(`p { color: red; Margin-Top: 3px !important; color: blue }
		@media print { p { color: black } }`)
	require.NoError(t, err)
	assert.False(t, sheet.Empty())
	rules := sheet.Rules()
	require.Len(t, rules, 1)
	r := rules[0]
	assert.Equal(t, "p", r.Selector())
	assert.Equal(t, []string{"color", "margin-top", "color"}, r.Properties())
	assert.Equal(t, style.Property("blue"), r.Value("color"))
	assert.True(t, r.IsImportant("margin-top"))
	assert.False(t, r.IsImportant("color"))
	assert.Equal(t, style.NullStyle, r.Value("padding"))
}

func TestAppendRules(t *testing.T) {
	a, err := Parse(`a { color: red }`)
	require.NoError(t, err)
	b, err := Parse(`b { color: blue } i { color: green }`)
	require.NoError(t, err)
	a.AppendRules(b)
	assert.Len(t, a.Rules(), 3)
}

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.style")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader(`<html><head><style>p { color: red }</style></head>
		<body><style>div { margin: 0 }</style>
		<div id="h"><template shadowrootmode="open"><style>span { color: blue }</style></template></div>
		</body></html>`))
	require.NoError(t, err)
	sheets := ExtractStyleElements(doc)
	require.Len(t, sheets, 2)
	assert.Equal(t, "p", sheets[0].Rules()[0].Selector())
	assert.Equal(t, "div", sheets[1].Rules()[0].Selector())
	shadow := doc.MustQuery("#h").ShadowRoot()
	require.True(t, IsStyleScope(shadow))
	inner := ExtractStyleElements(shadow)
	require.Len(t, inner, 1)
	assert.Equal(t, "span", inner[0].Rules()[0].Selector())
}
