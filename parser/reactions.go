package parser

import (
	"strings"

	"github.com/lunziqwq/cdxml-tools/geom"
	"github.com/lunziqwq/cdxml-tools/target"
)

// roleSemantics lists the five compound roles in the order an arrow's
// role lists are promoted. Condition is not among them: it is derived from
// the bottom-matched text group rather than promoted directly.
var roleSemantics = []target.Semantics{
	target.SemanticsReactant,
	target.SemanticsReagent,
	target.SemanticsProduct,
	target.SemanticsCatalyst,
	target.SemanticsSolvent,
}

// buildReactions classifies every compound and text near each arrow into
// a reaction role by testing it against the arrow's four extension boxes,
// groups the bottom-matched condition texts into conditions, then
// promotes every role-matched node (and, for compounds, every node plus
// diffusion reaches) to that role's own semantics and tag.
func (p *pipeline) buildReactions() error {
	for _, arrowTag := range p.arrows.Order() {
		src := p.arrowSource[arrowTag]

		reactionTag := strings.Replace(arrowTag, "arrow", "reaction", 1)
		reaction := target.NewReaction(reactionTag)

		var reactant, product, reagent, solvent []string
		var conditionTexts, bottomSolventTexts []string

		for _, compoundTag := range p.compounds.Order() {
			ce, _ := p.compounds.Get(compoundTag)
			compound := ce.(*target.Compound)
			if compound.Box.IsContainedBy(src.TailExtBox()) {
				reactant = append(reactant, compoundTag)
			}
			if compound.Box.IsContainedBy(src.HeadExtBox()) {
				product = append(product, compoundTag)
			}
			if compound.Box.IsContainedBy(src.TopExtBox()) {
				reagent = append(reagent, compoundTag)
			}
			if compound.Box.IsContainedBy(src.BottomExtBox()) {
				solvent = append(solvent, compoundTag)
			}
		}

		for _, textTag := range p.texts.OrderBySemantics(target.SemanticsText) {
			te, _ := p.texts.Get(textTag)
			text := te.(*target.Text)
			if text.Box.IsContainedBy(src.TopExtBox()) {
				reagent = append(reagent, textTag)
			}
			if text.Box.IsContainedBy(src.BottomExtBox()) {
				if text.IsCondition(p.isConditionText) {
					conditionTexts = append(conditionTexts, textTag)
				} else {
					bottomSolventTexts = append(bottomSolventTexts, textTag)
				}
			}
		}
		solvent = append(solvent, bottomSolventTexts...)

		conditionTags, err := p.groupConditions(conditionTexts)
		if err != nil {
			return err
		}
		reaction.Condition = conditionTags

		roleLists := map[target.Semantics]*[]string{
			target.SemanticsReactant: &reactant,
			target.SemanticsReagent:  &reagent,
			target.SemanticsProduct:  &product,
			target.SemanticsCatalyst: nil,
			target.SemanticsSolvent:  &solvent,
		}

		for _, semantics := range roleSemantics {
			list := roleLists[semantics]
			if list == nil {
				continue
			}
			promoted, err := p.promoteRole(semantics, *list)
			if err != nil {
				return err
			}
			*list = promoted
		}

		reaction.Reactant = reactant
		reaction.Reagent = reagent
		reaction.Product = product
		reaction.Solvent = solvent

		p.reactions[reactionTag] = reaction
		p.reactionOrder = append(p.reactionOrder, reactionTag)
	}
	return nil
}

// groupConditions groups textTags (already matched to an arrow's bottom
// extension box and recognized as condition text) by their originating
// source element, turning each group into a single target.Condition
// spanning the group's combined left/right extent, and classifies its
// texts via the condition rules.
func (p *pipeline) groupConditions(textTags []string) ([]string, error) {
	var order []target.SourceKey
	groups := map[target.SourceKey][]*target.Text{}

	for _, tag := range textTags {
		e, ok := p.texts.Get(tag)
		if !ok {
			continue
		}
		text := e.(*target.Text)
		key := text.SourceKey
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], text)
		p.texts.Remove(tag)
	}

	var conditionTags []string
	for _, key := range order {
		group := groups[key]

		left, right := group[0].Box.Left, group[0].Box.Left+group[0].Box.Width()
		var contents []string
		for _, t := range group {
			if l := t.Box.Left; l < left {
				left = l
			}
			if r := t.Box.Left + t.Box.Width(); r > right {
				right = r
			}
			contents = append(contents, t.Content)
		}
		box := group[0].Box
		box.Left, box.Right = left, right

		tag := p.tags.Next(target.SemanticsCondition)
		cond := target.NewCondition(tag, box, key, contents)
		cond.Apply(func(text string) map[string]string {
			return p.opts.ConditionRules.Classify(text, p.logger)
		})
		if err := p.conditions.Add(cond); err != nil {
			return nil, err
		}
		conditionTags = append(conditionTags, tag)
	}
	return conditionTags, nil
}

// promoteRole promotes every compound/text in tags (and whatever a
// compound's plus-diffusion reaches) to semantics, returning the final
// tag list for the role -- longer than tags whenever diffusion pulled in
// extra compounds. It walks by index rather than range so a diffusion
// append made mid-loop is still visited, matching how the role list this
// is ported from grows while being iterated.
func (p *pipeline) promoteRole(semantics target.Semantics, tags []string) ([]string, error) {
	list := append([]string(nil), tags...)

	for i := 0; i < len(list); i++ {
		tag := list[i]
		entry, ok := p.compounds.Get(tag)
		if ok {
			compound := entry.(*target.Compound)
			if compound.Semantics != target.SemanticsCompound {
				continue
			}
			newTag, err := p.changeCompoundSemantics(compound, semantics)
			if err != nil {
				return nil, err
			}
			list[i] = newTag

			diffused, err := p.diffusionCompoundSemanticsByPlus(compound, map[target.SourceKey]bool{compound.SourceKey: true})
			if err != nil {
				return nil, err
			}
			for _, d := range diffused {
				if !containsString(list, d) {
					list = append(list, d)
				}
			}
			continue
		}

		if entry, ok := p.texts.Get(tag); ok {
			text := entry.(*target.Text)
			newTag, err := p.changeTextSemanticsToCompound(text, semantics)
			if err != nil {
				return nil, err
			}
			list[i] = newTag
		}
	}
	return list, nil
}

// changeCompoundSemantics renames compound to a fresh tag under semantics,
// the compound role a nearby arrow (or plus-diffusion) assigned it.
func (p *pipeline) changeCompoundSemantics(compound *target.Compound, semantics target.Semantics) (string, error) {
	newTag := p.tags.Next(semantics)
	oldTag := compound.Tag
	compound.Semantics = semantics
	compound.Tag = newTag
	if err := p.compounds.Rename(oldTag, newTag); err != nil {
		return "", err
	}
	return newTag, nil
}

// changeTextSemanticsToCompound turns a reagent/solvent label text into
// its own one-node compound, carried as plain text rather than CDXML
// markup, so the output treats labels like "HCl" or "MeOH" the same way
// it treats drawn structures.
func (p *pipeline) changeTextSemanticsToCompound(text *target.Text, semantics target.Semantics) (string, error) {
	newTag := p.tags.Next(semantics)
	oldTag := text.Tag
	text.Semantics = semantics
	text.Tag = newTag
	if err := p.texts.Rename(oldTag, newTag); err != nil {
		return "", err
	}

	c := target.NewCompound(newTag, text.Box, text.SourceKey, "", text.Content)
	c.Semantics = semantics
	c.IsCollection = true
	if err := p.compounds.Add(c); err != nil {
		return "", err
	}
	return newTag, nil
}

// diffusionCompoundSemanticsByPlus walks the plus-symbol adjacency graph
// outward from compound, promoting every compound it reaches (through a
// chain of "+" markers) to compound's semantics, and returns every tag it
// changed. visited dedupes by source element so the walk terminates on a
// cycle.
func (p *pipeline) diffusionCompoundSemanticsByPlus(compound *target.Compound, visited map[target.SourceKey]bool) ([]string, error) {
	var changed []string

	for _, plus := range p.findPlusNearCompound(compound) {
		if visited[plus.SourceKey] {
			continue
		}
		visited[plus.SourceKey] = true

		for _, c := range p.findCompoundNearPlus(plus) {
			if visited[c.SourceKey] {
				continue
			}
			visited[c.SourceKey] = true

			if c.Semantics == compound.Semantics {
				continue
			}
			newTag, err := p.changeCompoundSemantics(c, compound.Semantics)
			if err != nil {
				return nil, err
			}
			changed = append(changed, newTag)

			further, err := p.diffusionCompoundSemanticsByPlus(c, visited)
			if err != nil {
				return nil, err
			}
			changed = append(changed, further...)
		}
	}
	return changed, nil
}

// findPlusNearCompound returns every plus marker whose box falls within
// compound's box extended left/right by 80.
func (p *pipeline) findPlusNearCompound(compound *target.Compound) []*target.Plus {
	extBox := compound.Box.Extend(80, 0, 80, 0)
	var out []*target.Plus
	for _, plus := range p.plusSymbols {
		if plus.Box.IsContainedBy(extBox) {
			out = append(out, plus)
		}
	}
	return out
}

// findCompoundNearPlus returns every compound whose box falls within
// plus's box extended left/right by 100 and top/bottom by 50.
func (p *pipeline) findCompoundNearPlus(plus *target.Plus) []*target.Compound {
	extBox := plus.Box.Extend(100, 50, 100, 50)
	return compoundsWithin(p.compounds, extBox)
}

func compoundsWithin(arena *target.Arena, extBox geom.BoundingBox) []*target.Compound {
	var out []*target.Compound
	for _, e := range arena.All() {
		c, ok := e.(*target.Compound)
		if !ok {
			continue
		}
		if c.Box.IsContainedBy(extBox) {
			out = append(out, c)
		}
	}
	return out
}
