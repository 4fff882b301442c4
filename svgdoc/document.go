package svgdoc

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/lunziqwq/cdxml-tools/geom"
)

// Document is the typed view over a rendered page's <svg> root, and over
// the per-compound copies cut out of it for drawn fragments.
type Document struct {
	El     *etree.Element
	Width  float64
	Height float64
	Paths  []*Path
	Texts  []*Text
}

// Parse parses a raw <svg>...</svg> document.
func Parse(raw string) (*Document, error) {
	raw = strings.NewReplacer("\r", "", "\n", "").Replace(raw)

	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil {
		return nil, err
	}
	root := doc.Root()

	widthAttr := root.SelectAttrValue("width", "")
	heightAttr := root.SelectAttrValue("height", "")
	if widthAttr == "" || heightAttr == "" {
		return nil, &MissingAttributeError{Tag: root.Tag, Name: "width/height"}
	}
	width, err := strconv.ParseFloat(strings.TrimSuffix(widthAttr, "px"), 64)
	if err != nil {
		return nil, &MalformedAttributeError{Name: "width", Value: widthAttr}
	}
	height, err := strconv.ParseFloat(strings.TrimSuffix(heightAttr, "px"), 64)
	if err != nil {
		return nil, &MalformedAttributeError{Name: "height", Value: heightAttr}
	}

	d := &Document{El: root, Width: width, Height: height}
	for _, pEl := range root.SelectElements("path") {
		p, err := parsePath(pEl)
		if err != nil {
			return nil, err
		}
		d.Paths = append(d.Paths, p)
	}
	for _, tEl := range root.SelectElements("text") {
		t, err := parseText(tEl)
		if err != nil {
			return nil, err
		}
		d.Texts = append(d.Texts, t)
	}
	return d, nil
}

// RemovePath drops p from the document, used when cropping a raster
// fallback to the region a single compound wraps.
func (d *Document) RemovePath(p *Path) {
	for i, c := range d.Paths {
		if c == p {
			d.Paths = append(d.Paths[:i], d.Paths[i+1:]...)
			break
		}
	}
	d.El.RemoveChild(p.El)
}

// RemoveText drops t from the document.
func (d *Document) RemoveText(t *Text) {
	for i, c := range d.Texts {
		if c == t {
			d.Texts = append(d.Texts[:i], d.Texts[i+1:]...)
			break
		}
	}
	d.El.RemoveChild(t.El)
}

// SetCanvasBox resizes the document's canvas, keeping width/height and the
// viewBox attribute consistent.
func (d *Document) SetCanvasBox(width, height float64) {
	d.Width = width
	d.Height = height
	d.El.CreateAttr("width", strconv.FormatFloat(width, 'f', -1, 64)+"px")
	d.El.CreateAttr("height", strconv.FormatFloat(height, 'f', -1, 64)+"px")
	d.El.CreateAttr("viewBox", "0 0 "+
		strconv.FormatFloat(width, 'f', 6, 64)+" "+
		strconv.FormatFloat(height, 'f', 6, 64))
}

// ResetCanvas translates every remaining path and text so the content's
// bounding box is anchored at (20,20), then sizes the canvas to the
// content's extent plus 50 units (20 before it, 30 after it). Used after RemovePath/RemoveText has cropped a
// fallback down to one compound's drawing.
func (d *Document) ResetCanvas() error {
	if len(d.Paths) == 0 && len(d.Texts) == 0 {
		return &EmptyCanvasError{}
	}

	allBoxes := make([]geom.BoundingBox, 0, len(d.Paths)+len(d.Texts))
	for _, p := range d.Paths {
		allBoxes = append(allBoxes, p.Box)
	}
	for _, t := range d.Texts {
		allBoxes = append(allBoxes, t.Box)
	}

	canvasL, canvasT := allBoxes[0].Left, allBoxes[0].Top
	canvasR, canvasB := allBoxes[0].Right, allBoxes[0].Bottom
	for _, b := range allBoxes[1:] {
		if b.Left < canvasL {
			canvasL = b.Left
		}
		if b.Top < canvasT {
			canvasT = b.Top
		}
		if b.Right > canvasR {
			canvasR = b.Right
		}
		if b.Bottom > canvasB {
			canvasB = b.Bottom
		}
	}

	offset := geom.Point{X: 20 - canvasL, Y: 20 - canvasT}
	d.SetCanvasBox(canvasR-canvasL+50, canvasB-canvasT+50)

	for _, p := range d.Paths {
		if err := p.ApplyTransformOffset(offset); err != nil {
			return err
		}
	}
	for _, t := range d.Texts {
		if err := t.ApplyTransformOffset(offset); err != nil {
			return err
		}
	}
	return nil
}

// Copy round-trips the document through serialization, producing an
// independent element tree the caller can mutate (e.g. via RemovePath)
// without disturbing the source.
func (d *Document) Copy() (*Document, error) {
	s, err := d.String()
	if err != nil {
		return nil, err
	}
	return Parse(s)
}

// String serializes the document.
func (d *Document) String() (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(d.El.Copy())
	return doc.WriteToString()
}
