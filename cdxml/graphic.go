package cdxml

import (
	"github.com/beevik/etree"

	"github.com/lunziqwq/cdxml-tools/geom"
)

// Graphic is a <graphic> element. The only graphic kind the pipeline cares
// about is the plus-symbol marker; any <represent> children (used by
// ChemDraw to link a graphic back to the atoms/bonds it annotates) are
// consumed but not otherwise interpreted, since bond topology is out of
// scope.
type Graphic struct {
	El          *etree.Element
	Box         geom.BoundingBox
	HasBox      bool
	GraphicType string
	SymbolType  string
	Represents  []*etree.Element
}

func parseGraphic(el *etree.Element) (*Graphic, error) {
	used := map[string]bool{}
	box, hasBox, err := parseBoxAttr(el)
	if err != nil {
		return nil, err
	}
	represents := childElements(el, "represent", used)
	if err := checkUnknownTags(el, used, nil); err != nil {
		return nil, err
	}
	return &Graphic{
		El:          el,
		Box:         box,
		HasBox:      hasBox,
		GraphicType: el.SelectAttrValue("GraphicType", ""),
		SymbolType:  el.SelectAttrValue("SymbolType", ""),
		Represents:  represents,
	}, nil
}

// IsPlusSymbol reports whether this graphic represents a "+" glyph.
func (g *Graphic) IsPlusSymbol() bool {
	return g.GraphicType == "Symbol" && g.SymbolType == "Plus"
}

// Key returns the graphic element's stable identity.
func (g *Graphic) Key() ElementKey { return keyOf(g.El) }
