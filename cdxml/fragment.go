package cdxml

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/lunziqwq/cdxml-tools/geom"
)

// Fragment is a <fragment> -- a single molecular drawing.
type Fragment struct {
	El       *etree.Element
	Box      geom.BoundingBox
	HasBox   bool
	SubNodes []*SubNode
	Bonds    []*etree.Element
	Graphics []*Graphic
}

// ParseFragment parses a standalone "<fragment ...>...</fragment>" string,
// the shape a compound's stored Cdxml markup was serialized in. Used by a
// builder to re-open a compound's drawing and retarget its coordinates.
func ParseFragment(raw string) (*Fragment, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	return parseFragment(doc.Root())
}

func parseFragment(el *etree.Element) (*Fragment, error) {
	used := map[string]bool{}
	box, hasBox, err := parseBoxAttr(el)
	if err != nil {
		return nil, err
	}

	f := &Fragment{El: el, Box: box, HasBox: hasBox}

	for _, nEl := range childElements(el, "n", used) {
		n, err := parseSubNode(nEl)
		if err != nil {
			return nil, err
		}
		f.SubNodes = append(f.SubNodes, n)
	}
	f.Bonds = childElements(el, "b", used)
	for _, gEl := range childElements(el, "graphic", used) {
		g, err := parseGraphic(gEl)
		if err != nil {
			return nil, err
		}
		f.Graphics = append(f.Graphics, g)
	}

	if err := checkUnknownTags(el, used, nil); err != nil {
		return nil, err
	}
	return f, nil
}

// IsTextOnly reports whether the fragment's entire content is a single text
// label: zero bonds, zero graphics, exactly one sub-node with exactly one
// text child. If so, it returns that text's string value.
func (f *Fragment) IsTextOnly() (string, bool) {
	if len(f.Bonds) != 0 || len(f.Graphics) != 0 || len(f.SubNodes) != 1 {
		return "", false
	}
	n := f.SubNodes[0]
	if len(n.Texts) != 1 {
		return "", false
	}
	return n.Texts[0].String, true
}

// XMLString serializes the fragment element, used as the stored "cdxml" of
// a drawn compound so the builder can later reconstruct it.
func (f *Fragment) XMLString() (string, error) {
	return elementToString(f.El)
}

// ApplyOffsetScale scales then translates (p*scale + offset) every sub-node
// (and its text children) position in place, moving the fragment from its original
// document coordinate system into a builder's target coordinate system.
// Bonds and graphics carry no coordinates of their own -- they reference
// sub-nodes by id -- so only the "p" attribute on <n> and <t> elements
// needs rewriting.
func (f *Fragment) ApplyOffsetScale(offset, scale geom.Point) {
	for _, n := range f.SubNodes {
		n.applyOffsetScale(offset, scale)
	}
}

func (n *SubNode) applyOffsetScale(offset, scale geom.Point) {
	if n.HasP {
		n.P = geom.Point{X: n.P.X*scale.X + offset.X, Y: n.P.Y*scale.Y + offset.Y}
		n.El.CreateAttr("p", fmt.Sprintf("%f %f", n.P.X, n.P.Y))
	}
	for _, t := range n.Texts {
		t.applyOffsetScale(offset, scale)
	}
}

func (t *Text) applyOffsetScale(offset, scale geom.Point) {
	if t.HasP {
		t.P = geom.Point{X: t.P.X*scale.X + offset.X, Y: t.P.Y*scale.Y + offset.Y}
		t.El.CreateAttr("p", fmt.Sprintf("%f %f", t.P.X, t.P.Y))
	}
}

// Key returns the fragment element's stable identity.
func (f *Fragment) Key() ElementKey { return keyOf(f.El) }

func elementToString(el *etree.Element) (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	return doc.WriteToString()
}

// SubNode is an <n> element, carrying a position and its text children.
type SubNode struct {
	El    *etree.Element
	P     geom.Point
	HasP  bool
	Texts []*Text
}

func parseSubNode(el *etree.Element) (*SubNode, error) {
	used := map[string]bool{}
	p, hasP, err := parsePointAttr(el, "p")
	if err != nil {
		return nil, err
	}

	n := &SubNode{El: el, P: p, HasP: hasP}
	for _, tEl := range childElements(el, "t", used) {
		t, err := parseText(tEl)
		if err != nil {
			return nil, err
		}
		n.Texts = append(n.Texts, t)
	}
	if err := checkUnknownTags(el, used, nil); err != nil {
		return nil, err
	}
	return n, nil
}
