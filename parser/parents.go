package parser

import (
	"github.com/lunziqwq/cdxml-tools/geom"
	"github.com/lunziqwq/cdxml-tools/target"
)

// linkTextParents links every text still holding plain text semantics
// (annotations a role pass never claimed) to the nearest compound whose
// box, extended top/bottom by 80, holds the text's center -- the same
// reach a condition label has into the arrow above it, applied to
// compounds instead of arrows.
func (p *pipeline) linkTextParents() error {
	for _, textTag := range p.texts.OrderBySemantics(target.SemanticsText) {
		e, ok := p.texts.Get(textTag)
		if !ok {
			continue
		}
		text := e.Underlying()

		var bestTag string
		var bestDist float64
		found := false

		for _, compoundTag := range p.compounds.Order() {
			ce, _ := p.compounds.Get(compoundTag)
			compound := ce.Underlying()

			extBox := compound.Box.Extend(0, 80, 0, 80)
			if !text.Box.IsContainedBy(extBox) {
				continue
			}

			dist := compound.Box.DistanceTo(text.Box, geom.CenterToCorners)
			if !found || dist < bestDist {
				bestTag, bestDist, found = compoundTag, dist, true
			}
		}

		if !found {
			continue
		}
		fatherEntry, _ := p.compounds.Get(bestTag)
		target.AddFather(fatherEntry, e, bestDist)
	}
	return nil
}
