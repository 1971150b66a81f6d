package clone

import (
	"github.com/npillmayer/domsnap/dom"
	"github.com/npillmayer/domsnap/dom/raster"
	"golang.org/x/net/html/atom"
)

// materialize creates the clone of a single element, without children.
// A nil result excludes the element.
func (c *Cloner) materialize(n *dom.Node, kind Kind) *Node {
	switch kind {
	case KindRaster:
		return c.cloneRasterSurface(n)
	case KindMedia:
		return c.cloneMedia(n)
	case KindEmbedded:
		return c.cloneEmbedded(n)
	}
	return shallowClone(n)
}

func (c *Cloner) cloneRasterSurface(n *dom.Node) *Node {
	dataURL, err := c.host.Raster.ToDataURL(n)
	if err != nil {
		c.report(n, KindRaster, err)
		return nil
	}
	if raster.IsBlank(dataURL) {
		return shallowClone(n)
	}
	return imageNode(dataURL)
}

func (c *Cloner) cloneMedia(n *dom.Node) *Node {
	if n.CurrentSrc() == "" {
		poster, _ := n.Attr("poster")
		return imageNode(poster)
	}
	frame, err := c.host.Frames.CurrentFrame(n)
	if err != nil {
		c.report(n, KindMedia, err)
		return nil
	}
	surface := raster.NewSurface(n.ClientSize())
	if err = surface.DrawScaled(frame); err != nil {
		c.report(n, KindMedia, err)
		return nil
	}
	dataURL, err := surface.DataURL()
	if err != nil {
		c.report(n, KindMedia, err)
		return nil
	}
	return imageNode(dataURL)
}

// cloneEmbedded replaces an iframe by a clone of its nested body. The
// nested body is cloned without the caller's options.
func (c *Cloner) cloneEmbedded(n *dom.Node) *Node {
	doc, err := n.ContentDocument()
	if err != nil {
		tracer().Debugf("cannot access nested document of %s: %v", n, err)
		return shallowClone(n)
	}
	body := doc.Body()
	if body == nil {
		return shallowClone(n)
	}
	clone, err := c.Clone(body, Options{})
	if err != nil {
		tracer().Debugf("cannot clone nested document of %s: %v", n, err)
		return shallowClone(n)
	}
	return clone
}

func imageNode(src string) *Node {
	img := NewElement(atom.Img.String(), "")
	img.SetAttribute("src", src)
	return img
}
