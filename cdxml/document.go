package cdxml

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/lunziqwq/cdxml-tools/geom"
)

// Document is the typed view over a parsed <CDXML> root element.
type Document struct {
	El         *etree.Element
	Box        geom.BoundingBox
	HasBox     bool
	ColorTable []*etree.Element
	FontTable  []*etree.Element
	Pages      []*Page

	// ids maps the "id" attribute of every direct child element to that
	// element, so other nodes can resolve cross-references (e.g. color
	// and font table lookups) by id.
	ids map[string]*etree.Element
}

// ParseDocument parses a raw CDXML string into a Document. It returns
// ErrNoPage if the root element has no <page> children.
func ParseDocument(raw string) (*Document, error) {
	raw = strings.NewReplacer("\r", "", "\n", "").Replace(raw)

	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil {
		return nil, err
	}
	root := doc.Root()

	used := map[string]bool{}
	box, hasBox, err := parseBoxAttr(root)
	if err != nil {
		return nil, err
	}

	d := &Document{El: root, Box: box, HasBox: hasBox, ids: map[string]*etree.Element{}}

	if ct, err := childElement(root, "colortable", used); err != nil {
		return nil, err
	} else if ct != nil {
		d.ColorTable = ct.ChildElements()
	}
	if ft, err := childElement(root, "fonttable", used); err != nil {
		return nil, err
	} else if ft != nil {
		d.FontTable = ft.ChildElements()
	}

	for _, pageEl := range childElements(root, "page", used) {
		page, err := parsePage(pageEl)
		if err != nil {
			return nil, err
		}
		d.Pages = append(d.Pages, page)
	}

	if err := checkUnknownTags(root, used, nil); err != nil {
		return nil, err
	}

	for _, c := range root.ChildElements() {
		if id := c.SelectAttrValue("id", ""); id != "" {
			d.ids[id] = c
		}
	}

	if len(d.Pages) < 1 {
		return nil, ErrNoPage
	}
	return d, nil
}

// ElementByID looks up an element that is a direct child of the document
// root by its "id" attribute.
func (d *Document) ElementByID(id string) (*etree.Element, bool) {
	el, ok := d.ids[id]
	return el, ok
}

// PngOffsetScale computes the offset/scale pair that maps document
// coordinates onto a debug raster of size (imgW, imgH).
func (d *Document) PngOffsetScale(imgW, imgH float64) (offset, scale geom.Point) {
	return geom.Point{X: -d.Box.Left, Y: -d.Box.Top},
		geom.Point{X: imgW / d.Box.Width(), Y: imgH / d.Box.Height()}
}

// Page is the first (and only consumed) <page> of a document.
type Page struct {
	El                 *etree.Element
	Fragments          []*Fragment
	Texts              []*Text
	Graphics           []*Graphic
	BracketedGroups    []*BracketedGroup
	Arrows             []*Arrow
	ChemicalProperties []*etree.Element
}

func parsePage(el *etree.Element) (*Page, error) {
	flattenGroups(el)

	used := map[string]bool{}
	ignore := map[string]bool{"border": true, "scheme": true}

	p := &Page{El: el}

	for _, fEl := range childElements(el, "fragment", used) {
		f, err := parseFragment(fEl)
		if err != nil {
			return nil, err
		}
		p.Fragments = append(p.Fragments, f)
	}
	for _, tEl := range childElements(el, "t", used) {
		t, err := parseText(tEl)
		if err != nil {
			return nil, err
		}
		p.Texts = append(p.Texts, t)
	}
	for _, gEl := range childElements(el, "graphic", used) {
		g, err := parseGraphic(gEl)
		if err != nil {
			return nil, err
		}
		p.Graphics = append(p.Graphics, g)
	}
	for _, bgEl := range childElements(el, "bracketedgroup", used) {
		bg, err := parseBracketedGroup(bgEl)
		if err != nil {
			return nil, err
		}
		p.BracketedGroups = append(p.BracketedGroups, bg)
	}
	for _, aEl := range childElements(el, "arrow", used) {
		a, err := parseArrow(aEl)
		if err != nil {
			return nil, err
		}
		p.Arrows = append(p.Arrows, a)
	}
	p.ChemicalProperties = childElements(el, "chemicalproperty", used)

	if err := checkUnknownTags(el, used, ignore); err != nil {
		return nil, err
	}
	return p, nil
}

// flattenGroups promotes the children of every immediate <group> child of
// el into el directly, then removes the (now empty) group element. Group
// nesting is not consumed further: only the page's direct <group> children
// are flattened, a single-level strip.
func flattenGroups(el *etree.Element) {
	for _, g := range el.SelectElements("group") {
		children := append([]etree.Token{}, g.Child...)
		for _, child := range children {
			g.RemoveChild(child)
			el.AddChild(child)
		}
		el.RemoveChild(g)
	}
}

// BracketedGroup is a <bracketedgroup>, expected to carry exactly two
// <bracketattachment> children.
type BracketedGroup struct {
	El          *etree.Element
	Attachments []*etree.Element
}

func parseBracketedGroup(el *etree.Element) (*BracketedGroup, error) {
	used := map[string]bool{}
	attachments := childElements(el, "bracketattachment", used)
	if len(attachments) != 2 {
		return nil, &CardinalityError{Tag: "bracketattachment", Count: len(attachments)}
	}
	if err := checkUnknownTags(el, used, nil); err != nil {
		return nil, err
	}
	return &BracketedGroup{El: el, Attachments: attachments}, nil
}
