package svgdoc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/lunziqwq/cdxml-tools/geom"
)

// dCommand is one token of a path's "d" attribute: either a moveto/lineto
// with a point, or a bare closepath.
type dCommand struct {
	op   string // "M", "L", or "Z"
	x, y float64
}

// Path is an SVG <path> element cut from a compound's raster fallback,
// carrying the transform needed to map its "d" coordinates into document
// space.
type Path struct {
	El        *etree.Element
	D         string
	Transform Matrix
	Box       geom.BoundingBox
}

func parsePath(el *etree.Element) (*Path, error) {
	d := el.SelectAttrValue("d", "")
	if d == "" {
		return nil, &MissingAttributeError{Tag: "path", Name: "d"}
	}
	transformAttr := el.SelectAttrValue("transform", "")
	if transformAttr == "" {
		return nil, &MissingAttributeError{Tag: "path", Name: "transform"}
	}
	m, err := ParseTransform(transformAttr)
	if err != nil {
		return nil, err
	}

	p := &Path{El: el, D: d, Transform: m}
	cmds, err := parseDList(d)
	if err != nil {
		return nil, err
	}
	box, err := realLtrb(cmds, m)
	if err != nil {
		return nil, err
	}
	p.Box = box
	return p, nil
}

// parseDList tokenizes a "d" attribute into its M/L/Z commands.
func parseDList(d string) ([]dCommand, error) {
	fields := strings.Fields(d)
	var cmds []dCommand
	for i := 0; i < len(fields); i++ {
		tok := fields[i]
		switch tok {
		case "M", "L":
			if i+1 >= len(fields) {
				return nil, &MalformedAttributeError{Name: "d", Value: d}
			}
			i++
			xy := strings.SplitN(fields[i], ",", 2)
			if len(xy) != 2 {
				return nil, &MalformedAttributeError{Name: "d", Value: d}
			}
			x, err1 := strconv.ParseFloat(xy[0], 64)
			y, err2 := strconv.ParseFloat(xy[1], 64)
			if err1 != nil || err2 != nil {
				return nil, &MalformedAttributeError{Name: "d", Value: d}
			}
			cmds = append(cmds, dCommand{op: tok, x: x, y: y})
		case "Z":
			cmds = append(cmds, dCommand{op: "Z"})
		default:
			return nil, &MalformedAttributeError{Name: "d", Value: d}
		}
	}
	return cmds, nil
}

// realLtrb transforms every M/L point through m and returns the bounding
// box of the result.
func realLtrb(cmds []dCommand, m Matrix) (geom.BoundingBox, error) {
	var xs, ys []float64
	for _, c := range cmds {
		if c.op == "Z" {
			continue
		}
		tx, ty := m.Apply(c.x, c.y)
		xs = append(xs, tx)
		ys = append(ys, ty)
	}
	if len(xs) == 0 {
		return geom.BoundingBox{}, &MalformedAttributeError{Name: "d", Value: "(no M/L points)"}
	}
	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := 1; i < len(xs); i++ {
		if xs[i] < minX {
			minX = xs[i]
		}
		if xs[i] > maxX {
			maxX = xs[i]
		}
		if ys[i] < minY {
			minY = ys[i]
		}
		if ys[i] > maxY {
			maxY = ys[i]
		}
	}
	return geom.New(minX, minY, maxX, maxY), nil
}

// ApplyTransformOffset shifts every point of the path by offset in document
// space, rewriting the "d" attribute with the pre-transform coordinates that
// land the path there.
func (p *Path) ApplyTransformOffset(offset geom.Point) error {
	cmds, err := parseDList(p.D)
	if err != nil {
		return err
	}
	var b strings.Builder
	for _, c := range cmds {
		if c.op == "Z" {
			b.WriteString("Z ")
			continue
		}
		x, y := p.Transform.Apply(c.x, c.y)
		x += offset.X
		y += offset.Y
		nx, ny, ok := p.Transform.Inverse(x, y)
		if !ok {
			return fmt.Errorf("svgdoc: path transform is not invertible for offset")
		}
		fmt.Fprintf(&b, "%s %f,%f ", c.op, nx, ny)
	}
	newD := strings.TrimSpace(b.String())
	p.D = newD
	p.El.CreateAttr("d", newD)
	return nil
}
