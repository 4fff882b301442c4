package svgdoc

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/lunziqwq/cdxml-tools/geom"
)

// Text is an SVG <text> glyph cut from a compound's raster fallback.
type Text struct {
	El        *etree.Element
	X, Y      float64
	FontSize  float64
	Transform Matrix
	Box       geom.BoundingBox
	String    string
}

func parseText(el *etree.Element) (*Text, error) {
	x, err := requireFloatAttr(el, "text", "x")
	if err != nil {
		return nil, err
	}
	y, err := requireFloatAttr(el, "text", "y")
	if err != nil {
		return nil, err
	}
	fsAttr := el.SelectAttrValue("font-size", "")
	if fsAttr == "" {
		return nil, &MissingAttributeError{Tag: "text", Name: "font-size"}
	}
	fontSize, err := strconv.ParseFloat(strings.TrimSuffix(fsAttr, "px"), 64)
	if err != nil {
		return nil, &MalformedAttributeError{Name: "font-size", Value: fsAttr}
	}

	transformAttr := el.SelectAttrValue("transform", "")
	if transformAttr == "" {
		return nil, &MissingAttributeError{Tag: "text", Name: "transform"}
	}
	m, err := ParseTransform(transformAttr)
	if err != nil {
		return nil, err
	}

	tx, ty := m.Apply(x, y)
	return &Text{
		El:        el,
		X:         x,
		Y:         y,
		FontSize:  fontSize,
		Transform: m,
		Box:       geom.New(tx, ty, tx, ty),
		String:    el.Text(),
	}, nil
}

func requireFloatAttr(el *etree.Element, tag, name string) (float64, error) {
	v := el.SelectAttrValue(name, "")
	if v == "" {
		return 0, &MissingAttributeError{Tag: tag, Name: name}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &MalformedAttributeError{Name: name, Value: v}
	}
	return f, nil
}

// ApplyTransformOffset shifts the glyph's anchor point by offset in document
// space, rewriting x/y with the pre-transform coordinates that land it there.
func (t *Text) ApplyTransformOffset(offset geom.Point) error {
	x, y := t.Box.Left+offset.X, t.Box.Top+offset.Y
	nx, ny, ok := t.Transform.Inverse(x, y)
	if !ok {
		return &MalformedAttributeError{Name: "transform", Value: "not invertible"}
	}
	t.X, t.Y = nx, ny
	t.El.CreateAttr("x", strconv.FormatFloat(nx, 'f', -1, 64))
	t.El.CreateAttr("y", strconv.FormatFloat(ny, 'f', -1, 64))
	return nil
}
