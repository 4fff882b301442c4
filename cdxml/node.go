package cdxml

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/lunziqwq/cdxml-tools/geom"
)

// universallyIgnored are child tags every node type tolerates without
// consuming them, regardless of the parent's own ignore set.
var universallyIgnored = map[string]bool{
	"annotation": true,
	"objecttag":  true,
}

// ElementKey is a stable identity for a CDXML element, usable as a map key.
// It is derived from the element's own pointer, which is fixed for the
// lifetime of the parsed etree.Document -- unlike a hash of mutable
// element content, it never changes as attributes are rewritten.
type ElementKey struct {
	el *etree.Element
}

func keyOf(el *etree.Element) ElementKey {
	return ElementKey{el: el}
}

// childElements returns el's direct children whose tag matches, and records
// the tag as consumed in used.
func childElements(el *etree.Element, tag string, used map[string]bool) []*etree.Element {
	used[tag] = true
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// childElement returns el's single child with the given tag, or nil if
// absent. It returns a CardinalityError if more than one is present.
func childElement(el *etree.Element, tag string, used map[string]bool) (*etree.Element, error) {
	children := childElements(el, tag, used)
	if len(children) > 1 {
		return nil, &CardinalityError{Tag: tag, Count: len(children)}
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return nil, nil
}

// checkUnknownTags fails if el has a child element whose tag was not
// consumed via childElements/childElement and is not ignored.
func checkUnknownTags(el *etree.Element, used map[string]bool, ignore map[string]bool) error {
	for _, c := range el.ChildElements() {
		if used[c.Tag] || ignore[c.Tag] || universallyIgnored[c.Tag] {
			continue
		}
		return &UnknownTagError{Parent: el.Tag, Child: c.Tag}
	}
	return nil
}

// parseFloats splits a space-separated attribute value into n floats.
func parseFloats(name, value string, n int) ([]float64, error) {
	fields := strings.Fields(value)
	if len(fields) < n {
		return nil, &MalformedAttributeError{Name: name, Value: value}
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, &MalformedAttributeError{Name: name, Value: value}
		}
		out[i] = v
	}
	return out, nil
}

// parseBoxAttr parses a "BoundingBox" attribute ("l t r b"). ok is false if
// the attribute is absent.
func parseBoxAttr(el *etree.Element) (box geom.BoundingBox, ok bool, err error) {
	v := el.SelectAttrValue("BoundingBox", "")
	if v == "" {
		return geom.BoundingBox{}, false, nil
	}
	f, err := parseFloats("BoundingBox", v, 4)
	if err != nil {
		return geom.BoundingBox{}, false, err
	}
	return geom.New(f[0], f[1], f[2], f[3]), true, nil
}

// parsePointAttr parses a "x y" attribute such as "p".
func parsePointAttr(el *etree.Element, name string) (p geom.Point, ok bool, err error) {
	v := el.SelectAttrValue(name, "")
	if v == "" {
		return geom.Point{}, false, nil
	}
	f, err := parseFloats(name, v, 2)
	if err != nil {
		return geom.Point{}, false, err
	}
	return geom.Point{X: f[0], Y: f[1]}, true, nil
}

// styledText concatenates the stripped leaf text of el's direct <s> children, the
// way a CDXML <t> element's displayed string is built.
func styledText(el *etree.Element, used map[string]bool) string {
	var b strings.Builder
	for _, s := range childElements(el, "s", used) {
		b.WriteString(strings.TrimSpace(s.Text()))
	}
	return b.String()
}
