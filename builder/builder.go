// Package builder serializes a parsed reaction scheme back into a
// standalone CDXML document, the inverse of what parser.Parse does.
package builder

import (
	"fmt"
	"strings"

	"github.com/lunziqwq/cdxml-tools/cdxml"
	"github.com/lunziqwq/cdxml-tools/geom"
	"github.com/lunziqwq/cdxml-tools/parser"
)

// builder holds the monotonic id/Z counters and overall output scale for
// one Build call. Ids start above the ones the static page/colortable/
// fonttable scaffold already uses, and Z starts at zero so every rebuilt
// element draws above anything the scaffold itself might carry.
type builder struct {
	usedID []int
	maxZ   int
	scale  geom.Point
}

func newBuilder(scale geom.Point) *builder {
	return &builder{usedID: []int{1000000, 1000001}, scale: scale}
}

func (b *builder) newID() int {
	max := b.usedID[0]
	for _, id := range b.usedID[1:] {
		if id > max {
			max = id
		}
	}
	next := max + 1
	b.usedID = append(b.usedID, next)
	return next
}

func (b *builder) newZ() int {
	b.maxZ++
	return b.maxZ
}

// buildText emits a single <t> label anchored at (left, bottom), scaled by
// the output's overall scale.
func (b *builder) buildText(text string, left, bottom float64) string {
	return fmt.Sprintf(
		`<t id="%d" p="%f %f" Z="%d" LineHeight="auto"><s font="1000000" size="10" color="0">%s</s></t>`,
		b.newID(), left*b.scale.X, bottom*b.scale.Y, b.newZ(), escapeText(text),
	)
}

// buildArrow emits the <graphic>+<arrow> pair a reaction arrow round-trips
// to, its head/tail positions scaled by the output's overall scale.
func (b *builder) buildArrow(head, tail geom.Point) string {
	graphicID, arrowID, z := b.newID(), b.newID(), b.newZ()
	headX, headY := head.X*b.scale.X, head.Y*b.scale.Y
	tailX, tailY := tail.X*b.scale.X, tail.Y*b.scale.Y
	return fmt.Sprintf(
		`<graphic id="%d" SupersededBy="%d" BoundingBox="%f %f %f %f" Z="%d" GraphicType="Line" ArrowType="FullHead" HeadSize="1000"/>`+
			`<arrow id="%d" Z="%d" FillType="None" ArrowheadHead="Full" ArrowheadType="Solid" HeadSize="1000" ArrowheadCenterSize="875" ArrowheadWidth="250" Head3D="%f %f 0" Tail3D="%f %f 0"/>`,
		graphicID, arrowID, headX, headY, tailX, tailY, z,
		arrowID, z, headX, headY, tailX, tailY,
	)
}

// buildCompound re-projects a compound's stored drawing, or its bare label
// text, into the output coordinate system. A compound carrying neither
// contributes nothing.
func (b *builder) buildCompound(c parser.CompoundEntry) (string, error) {
	if c.Cdxml != "" {
		if c.Position == nil {
			return "", fmt.Errorf("compound %s: position required to rebuild markup", c.Tag)
		}
		box := geom.FromLTWH(c.Position.L, c.Position.T, c.Position.W, c.Position.H)

		f, err := cdxml.ParseFragment(c.Cdxml)
		if err != nil {
			return "", fmt.Errorf("reparse compound %s markup: %w", c.Tag, err)
		}
		fBox := f.Box

		// The rescale factor is derived from width alone and applied to
		// both axes, to prevent the re-drawn structure from distorting.
		axisScale := box.Width() / fBox.Width()
		scale := geom.Point{X: axisScale, Y: axisScale}
		offset := geom.Point{
			X: box.Left - fBox.Left*scale.X,
			Y: box.Top - fBox.Top*scale.Y,
		}

		// First move the fragment from its own document coordinate system
		// onto the output's target box, then apply the output's overall
		// scale like every other rebuilt element.
		f.ApplyOffsetScale(offset, scale)
		f.ApplyOffsetScale(geom.Point{}, b.scale)

		return f.XMLString()
	}

	if c.Text != nil && *c.Text != "" {
		if c.Position == nil {
			return "", fmt.Errorf("compound %s: position required to rebuild markup", c.Tag)
		}
		box := geom.FromLTWH(c.Position.L, c.Position.T, c.Position.W, c.Position.H)
		center := box.Center()
		return b.buildText(*c.Text, box.Left, center.Y), nil
	}

	return "", nil
}

// Build serializes a parsed reaction scheme back into a standalone CDXML
// document: every arrow as a <graphic>/<arrow> pair, every free label as a
// <t>, and every compound as its original drawing retargeted onto the
// output's own layout (or, for a compound with no stored drawing, a text
// glyph at its box's left edge and vertical center).
//
// Every label and compound must carry position data (Options.WithPosition
// was set on the Parse call data came from); arrows additionally need their
// head/tail positions. Build returns an error naming the first entry
// missing what it needs rather than silently dropping it.
func Build(data *parser.Output) (string, error) {
	scale := geom.Point{X: 1, Y: 1}
	if data.Graphic.Scale != nil {
		scale = geom.Point{X: data.Graphic.Scale.H, Y: data.Graphic.Scale.V}
	}
	b := newBuilder(scale)

	var content strings.Builder

	for _, label := range data.Label {
		if label.Semantics != "arrow" {
			continue
		}
		if label.HeadPosition == nil || label.TailPosition == nil {
			return "", fmt.Errorf("arrow %s: head/tail position required to rebuild markup", label.Tag)
		}
		head := geom.Point{X: label.HeadPosition.L, Y: label.HeadPosition.T}
		tail := geom.Point{X: label.TailPosition.L, Y: label.TailPosition.T}
		content.WriteString(b.buildArrow(head, tail))
	}

	for _, label := range data.Label {
		if label.Semantics == "arrow" {
			continue
		}
		if label.Position == nil {
			return "", fmt.Errorf("label %s: position required to rebuild markup", label.Tag)
		}
		text := ""
		if label.Text != nil {
			text = *label.Text
		}
		content.WriteString(b.buildText(text, label.Position.L, label.Position.T+label.Position.H))
	}

	for _, c := range data.Compound {
		markup, err := b.buildCompound(c)
		if err != nil {
			return "", err
		}
		content.WriteString(markup)
	}

	doc := fmt.Sprintf(cdxmlTemplate, content.String())
	doc = strings.NewReplacer("\n", "", "\r", "").Replace(doc)
	return doc, nil
}

func escapeText(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}
