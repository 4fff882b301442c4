package cdxml

import (
	"github.com/beevik/etree"

	"github.com/lunziqwq/cdxml-tools/geom"
)

// Text is a <t> element: a positioned label whose displayed string is the
// concatenation of its <s> style children's leaf text.
type Text struct {
	El     *etree.Element
	P      geom.Point
	HasP   bool
	Box    geom.BoundingBox
	HasBox bool
	String string
}

func parseText(el *etree.Element) (*Text, error) {
	used := map[string]bool{}
	p, hasP, err := parsePointAttr(el, "p")
	if err != nil {
		return nil, err
	}
	box, hasBox, err := parseBoxAttr(el)
	if err != nil {
		return nil, err
	}
	s := styledText(el, used)
	if err := checkUnknownTags(el, used, nil); err != nil {
		return nil, err
	}
	return &Text{El: el, P: p, HasP: hasP, Box: box, HasBox: hasBox, String: s}, nil
}

// Key returns the text element's stable identity, used to group
// comma-split fragments of the same source text back together.
func (t *Text) Key() ElementKey { return keyOf(t.El) }
