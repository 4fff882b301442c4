package parser

import "github.com/lunziqwq/cdxml-tools/target"

// extractArrows registers one target.Arrow per <arrow> on the page,
// keeping its source element alongside so role classification can test
// compounds and texts against its extension boxes.
func (p *pipeline) extractArrows() error {
	for _, a := range p.doc.Pages[0].Arrows {
		tag := p.tags.Next(target.SemanticsArrow)
		arrow := target.NewArrow(tag, a.Box, a.Key(), a.Head, a.Tail)
		if err := p.arrows.Add(arrow); err != nil {
			return err
		}
		p.arrowSource[tag] = a
	}
	return nil
}
