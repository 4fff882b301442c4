package parser

import (
	"strings"

	"github.com/lunziqwq/cdxml-tools/geom"
	"github.com/lunziqwq/cdxml-tools/target"
)

// extractTexts turns every <t> on the page into one or more target.Text
// entries. A comma-separated label ("25 C, 2h, N2") is split into its own
// entry per fragment, each positioned by a monospace-width estimate of
// where its characters fell within the source text's box -- CDXML gives
// the whole label one box, not one per comma-separated reading.
func (p *pipeline) extractTexts() error {
	for _, td := range p.doc.Pages[0].Texts {
		if !strings.Contains(td.String, ",") {
			tag := p.tags.Next(target.SemanticsText)
			if err := p.texts.Add(target.NewText(tag, td.Box, td.Key(), td.String)); err != nil {
				return err
			}
			continue
		}

		runes := []rune(td.String)
		eachLetterWidth := td.Box.Width() / float64(len(runes))
		nowCur := 0.0

		for _, rawSubText := range strings.Split(td.String, ",") {
			subText := rawSubText
			curOffset := float64(len([]rune(subText)) + 1)

			for strings.HasPrefix(subText, " ") {
				subText = subText[1:]
				nowCur++
				curOffset--
			}
			subText = strings.TrimRight(subText, " ")

			left := td.Box.Left + round(nowCur*eachLetterWidth, 2)
			right := left + float64(len([]rune(subText)))*eachLetterWidth
			box := geom.BoundingBox{Left: left, Top: td.Box.Top, Right: right, Bottom: td.Box.Bottom}

			tag := p.tags.Next(target.SemanticsText)
			if err := p.texts.Add(target.NewText(tag, box, td.Key(), subText)); err != nil {
				return err
			}

			nowCur += curOffset
		}
	}
	return nil
}

// extractPlusSymbols reclassifies every literal "+" text into the plus
// semantics and records a parallel Plus marker for every such text and
// every graphic "+" glyph, the set diffusion walks adjacency over.
func (p *pipeline) extractPlusSymbols() {
	for _, tag := range p.texts.OrderBySemantics(target.SemanticsText) {
		entry, _ := p.texts.Get(tag)
		text := entry.(*target.Text)
		if text.Content != "+" {
			continue
		}
		newTag := p.tags.Next(target.SemanticsPlus)
		_ = p.texts.Rename(tag, newTag)
		text.Semantics = target.SemanticsPlus
		p.plusSymbols = append(p.plusSymbols, target.NewPlus(newTag, text.Box, text.SourceKey))
	}

	for _, g := range p.doc.Pages[0].Graphics {
		if g.IsPlusSymbol() {
			newTag := p.tags.Next(target.SemanticsPlus)
			p.plusSymbols = append(p.plusSymbols, target.NewPlus(newTag, g.Box, g.Key()))
		}
	}
}
