package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestDeclarationParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.style")
	defer teardown()
	//
	d, err := ParseDeclaration("Color: red; margin-top: 3px !important; background: url(Data:X)")
	require.NoError(t, err)
	require.Equal(t, 3, d.Length())
	assert.Equal(t, "color", d.Item(0))
	assert.Equal(t, Property("red"), d.GetPropertyValue("color"))
	assert.Equal(t, Important, d.GetPropertyPriority("margin-top"))
	assert.Equal(t, "", d.GetPropertyPriority("color"))
	assert.Equal(t, Property("url(Data:X)"), d.GetPropertyValue("background"))
	assert.Equal(t, "color: red; margin-top: 3px !important; background: url(Data:X);", d.CSSText())
}

func TestDeclarationWithoutTrailingSemicolon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.style")
	defer teardown()
	//
	d, err := ParseDeclaration("display: none")
	require.NoError(t, err)
	require.Equal(t, 1, d.Length())
	assert.Equal(t, Property("none"), d.GetPropertyValue("display"))
	d, err = ParseDeclaration("a: b; c: d")
	require.NoError(t, err)
	assert.Equal(t, 2, d.Length())
	assert.Equal(t, "a: b; c: d;", d.CSSText())
}

func TestDeclarationSkipsEmptyDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.style")
	defer teardown()
	//
	d, err := ParseDeclaration(";color: red;; margin: 0;;")
	require.NoError(t, err)
	require.Equal(t, 2, d.Length())
	assert.Equal(t, Property("red"), d.GetPropertyValue("color"))
	assert.Equal(t, Property("0"), d.GetPropertyValue("margin"))
}

func TestDeclarationKeepsSemicolonInURL(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.style")
	defer teardown()
	//
	d, err := ParseDeclaration("background: url(data:image/png;base64,AAAA); color: blue")
	require.NoError(t, err)
	require.Equal(t, 2, d.Length())
	assert.Equal(t, Property("url(data:image/png;base64,AAAA)"), d.GetPropertyValue("background"))
	assert.Equal(t, Property("blue"), d.GetPropertyValue("color"))
}

func TestTerminateDeclarations(t *testing.T) {
	assert.Equal(t, "", terminateDeclarations(" ; ;"))
	assert.Equal(t, "a: b; c: d;", terminateDeclarations("a: b;;c: d"))
	assert.Equal(t, `content: "x;y";`, terminateDeclarations(`content: "x;y"`))
}

func TestDeclarationSetProperty(t *testing.T) {
	d := NewDeclaration()
	d.SetProperty("width", "10px", "")
	d.SetProperty("height", "5px", "IMPORTANT")
	d.SetProperty("width", "12px", "")
	assert.Equal(t, []KeyValue{
		{Key: "width", Value: "12px"},
		{Key: "height", Value: "5px", Priority: Important},
	}, d.Properties())
	d.SetProperty("width", "", "")
	assert.Equal(t, 1, d.Length())
	assert.Equal(t, Property("5px"), d.RemoveProperty("height"))
	assert.Equal(t, 0, d.Length())
	assert.Equal(t, "", d.CSSText())
}

func TestDeclarationNilIsEmpty(t *testing.T) {
	var d *Declaration
	assert.Equal(t, 0, d.Length())
	assert.Equal(t, NullStyle, d.GetPropertyValue("color"))
	assert.Equal(t, "", d.Item(0))
	assert.Equal(t, "", d.CSSText())
}

func TestDeclarationCloneIsIndependent(t *testing.T) {
	d, err := ParseDeclaration("color: blue")
	require.NoError(t, err)
	c := d.Clone()
	c.SetProperty("color", "green", "")
	assert.Equal(t, Property("blue"), d.GetPropertyValue("color"))
	assert.Equal(t, Property("green"), c.GetPropertyValue("color"))
}

func TestCustomPropertyKeepsCase(t *testing.T) {
	d := NewDeclaration()
	d.SetProperty("--Main-Color", "red", "")
	assert.Equal(t, "--Main-Color", d.Item(0))
	assert.Equal(t, NullStyle, d.GetPropertyValue("--main-color"))
}

func TestHasUnit(t *testing.T) {
	assert.True(t, Property("12.5px").HasUnit("px"))
	assert.True(t, Property(" 12PX ").HasUnit("px"))
	assert.False(t, Property("px").HasUnit("px"))
	assert.False(t, Property("1em").HasUnit("px"))
}

func TestDisplayDefaults(t *testing.T) {
	div := &html.Node{Type: html.ElementNode, Data: "div"}
	span := &html.Node{Type: html.ElementNode, Data: "span"}
	head := &html.Node{Type: html.ElementNode, Data: "head"}
	text := &html.Node{Type: html.TextNode, Data: "x"}
	assert.Equal(t, Property("block"), DisplayPropertyForHTMLNode(div))
	assert.Equal(t, Property("inline"), DisplayPropertyForHTMLNode(span))
	assert.Equal(t, Property("none"), DisplayPropertyForHTMLNode(head))
	assert.Equal(t, Property("none"), DisplayPropertyForHTMLNode(text))
	assert.True(t, IsCascading("font-size"))
	assert.True(t, IsCascading("color"))
	assert.False(t, IsCascading("margin-top"))
}
