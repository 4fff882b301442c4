// Package parser turns a parsed CDXML reaction scheme into the normalized,
// role-tagged target model: compounds, reaction arrows, grouped conditions
// and free labels, each addressable by a stable tag.
package parser

import "github.com/lunziqwq/cdxml-tools/geom"

// Position is the left/top/width/height shape every positioned entry in
// Output serializes its geometry as.
type Position struct {
	L float64 `json:"l"`
	T float64 `json:"t"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func positionOf(box geom.BoundingBox) Position {
	l, t, w, h := box.LTWH()
	return Position{L: l, T: t, W: w, H: h}
}

// PointDict is a bare (l, t) coordinate pair, the shape an arrow's head and
// tail positions serialize as.
type PointDict struct {
	L float64 `json:"l"`
	T float64 `json:"t"`
}

// Size is a page's width/height, in document units.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Scale is a builder-side output rescale factor, applied on top of every
// arrow, text and compound position a builder rebuilds into CDXML
// coordinates. Parse never sets it; a caller feeding an Output back into
// Build sets it to retarget the rebuilt markup to a different canvas size.
type Scale struct {
	H float64 `json:"h"`
	V float64 `json:"v"`
}

// GraphicParams carries page-level metadata: its size, and the optional
// builder rescale factor.
type GraphicParams struct {
	Size  Size   `json:"size"`
	Scale *Scale `json:"scale,omitempty"`
}

// LabelEntry is one arrow or text label: every entry that is not itself a
// drawn compound, a reaction, or a grouped condition.
type LabelEntry struct {
	Tag          string     `json:"tag"`
	Semantics    string     `json:"semantics"`
	Text         *string    `json:"text,omitempty"`
	IsCollection *bool      `json:"is_collection,omitempty"`
	Father       *string    `json:"father,omitempty"`
	Position     *Position  `json:"position,omitempty"`
	HeadPosition *PointDict `json:"head_position,omitempty"`
	TailPosition *PointDict `json:"tail_position,omitempty"`
}

// CompoundEntry is one drawn molecule.
type CompoundEntry struct {
	Tag          string              `json:"tag"`
	Semantics    string              `json:"semantics"`
	IsCollection bool                `json:"is_collection"`
	Img          *string             `json:"img,omitempty"`
	Svg          *string             `json:"svg,omitempty"`
	Text         *string             `json:"text,omitempty"`
	Cdxml        string              `json:"cdxml"`
	Child        map[string][]string `json:"child,omitempty"`
	Position     *Position           `json:"position,omitempty"`
}

// ReactionEntry groups one arrow's role-classified compounds, texts and
// conditions by tag.
type ReactionEntry struct {
	Tag       string   `json:"tag"`
	Semantics string   `json:"semantics"`
	Reactant  []string `json:"reactant"`
	Reagent   []string `json:"reagent"`
	Product   []string `json:"product"`
	Catalyst  []string `json:"catalyst"`
	Solvent   []string `json:"solvent"`
	Condition []string `json:"condition"`
}

// ConditionEntry is one grouped reaction condition.
type ConditionEntry struct {
	Tag          string    `json:"tag"`
	Semantics    string    `json:"semantics"`
	TextList     []string  `json:"text_list"`
	IsCollection bool      `json:"is_collection"`
	Position     *Position `json:"position,omitempty"`
	Temperature  *string   `json:"temperature,omitempty"`
	ReactionTime *string   `json:"reaction_time,omitempty"`
	StirSpeed    *string   `json:"stir_speed,omitempty"`
	Pressure     *string   `json:"pressure,omitempty"`
	Gas          *string   `json:"gas,omitempty"`
}

// Output is the complete parse result: the stable-key shape every caller
// (the CLI, the devserver, a downstream consumer) renders or serializes.
type Output struct {
	Graphic   GraphicParams    `json:"graphic"`
	Label     []LabelEntry     `json:"label"`
	Compound  []CompoundEntry  `json:"compound"`
	Reaction  []ReactionEntry  `json:"reaction"`
	Condition []ConditionEntry `json:"condition"`
}
