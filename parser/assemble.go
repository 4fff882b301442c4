package parser

import (
	"encoding/base64"

	"github.com/lunziqwq/cdxml-tools/target"
)

// output assembles the final result from every arena and reaction built
// over the course of Parse, respecting the With* flags for what a caller
// wants to pay the size of carrying.
func (p *pipeline) output() *Output {
	out := &Output{
		Graphic:   GraphicParams{Size: Size{W: p.doc.Box.Width(), H: p.doc.Box.Height()}},
		Label:     []LabelEntry{},
		Compound:  []CompoundEntry{},
		Reaction:  []ReactionEntry{},
		Condition: []ConditionEntry{},
	}

	for _, tag := range p.arrows.Order() {
		e, _ := p.arrows.Get(tag)
		arrow := e.(*target.Arrow)
		out.Label = append(out.Label, p.arrowLabel(arrow))
	}
	for _, tag := range p.texts.Order() {
		e, _ := p.texts.Get(tag)
		text := e.(*target.Text)
		out.Label = append(out.Label, p.textLabel(text))
	}

	for _, tag := range p.compounds.Order() {
		e, _ := p.compounds.Get(tag)
		compound := e.(*target.Compound)
		out.Compound = append(out.Compound, p.compoundEntry(compound))
	}

	for _, tag := range p.reactionOrder {
		r := p.reactions[tag]
		out.Reaction = append(out.Reaction, ReactionEntry{
			Tag:       r.Tag,
			Semantics: string(r.Semantics),
			Reactant:  target.SortedTags(r.Reactant),
			Reagent:   target.SortedTags(r.Reagent),
			Product:   target.SortedTags(r.Product),
			Catalyst:  target.SortedTags(r.Catalyst),
			Solvent:   target.SortedTags(r.Solvent),
			Condition: target.SortedTags(r.Condition),
		})
	}

	for _, tag := range p.conditions.Order() {
		e, _ := p.conditions.Get(tag)
		out.Condition = append(out.Condition, p.conditionEntry(e.(*target.Condition)))
	}

	return out
}

func (p *pipeline) arrowLabel(a *target.Arrow) LabelEntry {
	entry := LabelEntry{Tag: a.Tag, Semantics: string(a.Semantics)}
	if p.opts.WithPosition {
		pos := positionOf(a.Box)
		entry.Position = &pos
		entry.HeadPosition = &PointDict{L: a.HeadPosition.X, T: a.HeadPosition.Y}
		entry.TailPosition = &PointDict{L: a.TailPosition.X, T: a.TailPosition.Y}
	}
	return entry
}

func (p *pipeline) textLabel(t *target.Text) LabelEntry {
	entry := LabelEntry{
		Tag:          t.Tag,
		Semantics:    string(t.Semantics),
		Text:         strPtr(t.Content),
		IsCollection: boolPtr(t.IsCollection),
	}
	if t.Father != "" {
		entry.Father = strPtr(t.Father)
	}
	if p.opts.WithPosition {
		pos := positionOf(t.Box)
		entry.Position = &pos
	}
	return entry
}

func (p *pipeline) compoundEntry(c *target.Compound) CompoundEntry {
	entry := CompoundEntry{
		Tag:          c.Tag,
		Semantics:    string(c.Semantics),
		IsCollection: c.IsCollection,
		Child:        childDict(c.Underlying()),
	}
	if p.opts.WithCdxml {
		entry.Cdxml = c.Cdxml
	}
	if c.Text != "" {
		entry.Text = strPtr(c.Text)
	}
	if c.Svg != "" {
		entry.Svg = strPtr(c.Svg)
	}
	if p.opts.WithImg && len(c.Img) > 0 {
		entry.Img = strPtr(base64.StdEncoding.EncodeToString(c.Img))
	}
	if p.opts.WithPosition {
		pos := positionOf(c.Box)
		entry.Position = &pos
	}
	return entry
}

func (p *pipeline) conditionEntry(c *target.Condition) ConditionEntry {
	entry := ConditionEntry{
		Tag:          c.Tag,
		Semantics:    string(c.Semantics),
		TextList:     append([]string(nil), c.TextList...),
		IsCollection: c.IsCollection,
		Temperature:  c.Temperature,
		ReactionTime: c.ReactionTime,
		StirSpeed:    c.StirSpeed,
		Pressure:     c.Pressure,
		Gas:          c.Gas,
	}
	if p.opts.WithPosition {
		pos := positionOf(c.Box)
		entry.Position = &pos
	}
	return entry
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// childDict converts a node's direction-keyed child buckets to the plain
// string-keyed shape the output's JSON child dict exposes.
func childDict(n *target.Node) map[string][]string {
	buckets := n.ChildDict()
	if len(buckets) == 0 {
		return nil
	}
	out := make(map[string][]string, len(buckets))
	for direction, tags := range buckets {
		out[string(direction)] = tags
	}
	return out
}
