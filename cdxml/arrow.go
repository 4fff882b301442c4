package cdxml

import (
	"github.com/beevik/etree"

	"github.com/lunziqwq/cdxml-tools/geom"
)

// Arrow is an <arrow> element: a reaction arrow with a head and tail
// position, carrying its own BoundingBox for extension-box math.
type Arrow struct {
	El     *etree.Element
	Box    geom.BoundingBox
	HasBox bool
	Head   geom.Point
	Tail   geom.Point
}

func parseArrow(el *etree.Element) (*Arrow, error) {
	box, hasBox, err := parseBoxAttr(el)
	if err != nil {
		return nil, err
	}
	head, err := parseVec3XY(el, "Head3D")
	if err != nil {
		return nil, err
	}
	tail, err := parseVec3XY(el, "Tail3D")
	if err != nil {
		return nil, err
	}
	return &Arrow{El: el, Box: box, HasBox: hasBox, Head: head, Tail: tail}, nil
}

// parseVec3XY parses a "x y z" attribute, keeping only x and y.
func parseVec3XY(el *etree.Element, name string) (geom.Point, error) {
	v := el.SelectAttrValue(name, "")
	if v == "" {
		return geom.Point{}, &MalformedAttributeError{Name: name, Value: v}
	}
	f, err := parseFloats(name, v, 2)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: f[0], Y: f[1]}, nil
}

// pointsRight reports whether the arrow's head lies to the right of its
// tail, the orientation the extension boxes below branch on.
func (a *Arrow) pointsRight() bool {
	return a.Head.X > a.Tail.X
}

// HeadExtBox is the extension region on the head side of the arrow: where
// products are expected to sit.
func (a *Arrow) HeadExtBox() geom.BoundingBox {
	if a.pointsRight() {
		return a.Box.Extend(-a.Box.Width(), 60, 200, 60)
	}
	return a.Box.Extend(200, 60, -a.Box.Width(), 60)
}

// TailExtBox is the extension region on the tail side of the arrow: where
// reactants are expected to sit.
func (a *Arrow) TailExtBox() geom.BoundingBox {
	if a.pointsRight() {
		return a.Box.Extend(200, 60, -a.Box.Width(), 60)
	}
	return a.Box.Extend(-a.Box.Width(), 60, 200, 60)
}

// TopExtBox is a thin strip above the arrow: where reagent compounds and
// text are expected to sit.
func (a *Arrow) TopExtBox() geom.BoundingBox {
	return a.Box.Extend(0, 80, 0, -a.Box.Height())
}

// BottomExtBox is a thin strip below the arrow: where solvent/condition
// text is expected to sit.
func (a *Arrow) BottomExtBox() geom.BoundingBox {
	return a.Box.Extend(0, -a.Box.Height(), 0, 80)
}

// Key returns the arrow element's stable identity.
func (a *Arrow) Key() ElementKey { return keyOf(a.El) }
