package parser

import (
	"sort"

	"github.com/lunziqwq/cdxml-tools/geom"
	"github.com/lunziqwq/cdxml-tools/target"
)

// roleOrder lists the six role semantics renumber walks, in the order a
// freshly classified diagram's roles are expected to read.
var roleOrder = []target.Semantics{
	target.SemanticsReactant,
	target.SemanticsReagent,
	target.SemanticsProduct,
	target.SemanticsCatalyst,
	target.SemanticsSolvent,
	target.SemanticsCondition,
}

// renumber renumbers every role-classified compound and condition so its
// tag number reflects reading order rather than classification order:
// reactant/product left-to-right by box center, the remaining roles
// top-to-bottom, each breaking ties on the other axis. Reaction role lists
// still referencing the old tag strings are fixed up in place.
func (p *pipeline) renumber() {
	renames := map[string]string{}

	for _, semantics := range roleOrder {
		var tags []string
		if semantics == target.SemanticsCondition {
			tags = p.conditions.OrderBySemantics(semantics)
		} else {
			tags = compoundTagsBySemantics(p.compounds, semantics)
		}
		if len(tags) <= 1 {
			continue
		}

		sort.SliceStable(tags, func(i, j int) bool {
			return roleReadingLess(p, tags[i], tags[j], semantics)
		})

		// Renaming in place, one tag at a time, can collide: position 0's
		// new tag may already be held by the entry still waiting at
		// position 1. Pull every entry in the group out of the arena
		// first, reassign every tag, then reinsert -- the same
		// pop-everything-then-reinsert shape the renumbering this is
		// ported from uses to sidestep the same collision.
		arena := p.compounds
		if semantics == target.SemanticsCondition {
			arena = p.conditions
		}

		entries := make([]target.Entry, len(tags))
		for i, tag := range tags {
			e, _ := arena.Get(tag)
			entries[i] = e
			arena.Remove(tag)
		}
		for i, e := range entries {
			oldTag := e.Underlying().Tag
			newTag := target.FormatTag(semantics, i+1)
			e.Underlying().Tag = newTag
			if newTag != oldTag {
				renames[oldTag] = newTag
			}
		}
		for _, e := range entries {
			_ = arena.Add(e)
		}
	}

	p.fixupRoleLists(renames)
}

// compoundTagsBySemantics is target.Arena.OrderBySemantics restricted to
// *target.Compound entries, equivalent to it here since the compounds
// arena never holds anything else.
func compoundTagsBySemantics(arena *target.Arena, semantics target.Semantics) []string {
	return arena.OrderBySemantics(semantics)
}

// roleReadingLess orders two same-semantics nodes by their box centers:
// reactant/product left-to-right (x then y), every other role top-to-
// bottom (y then x).
func roleReadingLess(p *pipeline, aTag, bTag string, semantics target.Semantics) bool {
	aBox, bBox := nodeBox(p, semantics, aTag), nodeBox(p, semantics, bTag)
	ac, bc := aBox.Center(), bBox.Center()

	if semantics == target.SemanticsReactant || semantics == target.SemanticsProduct {
		if ac.X != bc.X {
			return ac.X < bc.X
		}
		return ac.Y < bc.Y
	}
	if ac.Y != bc.Y {
		return ac.Y < bc.Y
	}
	return ac.X < bc.X
}

func nodeBox(p *pipeline, semantics target.Semantics, tag string) geom.BoundingBox {
	if semantics == target.SemanticsCondition {
		e, _ := p.conditions.Get(tag)
		return e.Underlying().Box
	}
	e, _ := p.compounds.Get(tag)
	return e.Underlying().Box
}

// fixupRoleLists rewrites every reaction's role slices, swapping out any
// tag renumber just renamed for its new tag.
func (p *pipeline) fixupRoleLists(renames map[string]string) {
	if len(renames) == 0 {
		return
	}
	for _, tag := range p.reactionOrder {
		r := p.reactions[tag]
		renameAll(r.Reactant, renames)
		renameAll(r.Reagent, renames)
		renameAll(r.Product, renames)
		renameAll(r.Catalyst, renames)
		renameAll(r.Solvent, renames)
		renameAll(r.Condition, renames)
	}
}

func renameAll(list []string, renames map[string]string) {
	for i, tag := range list {
		if newTag, ok := renames[tag]; ok {
			list[i] = newTag
		}
	}
}
