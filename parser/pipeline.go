package parser

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lunziqwq/cdxml-tools/cdxml"
	"github.com/lunziqwq/cdxml-tools/svgdoc"
	"github.com/lunziqwq/cdxml-tools/target"
)

// pipeline holds the working state of a single Parse call. Compounds,
// texts, arrows and conditions each live in their own arena so that a text
// reclassified into a compound can keep its old entry (now role-tagged)
// alongside the new one under the identical tag -- the two live in
// different namespaces and never collide. All four arenas draw tags from
// one shared allocator, so numbering a role tag from either side agrees.
type pipeline struct {
	tags       *target.TagAllocator
	texts      *target.Arena
	compounds  *target.Arena
	arrows     *target.Arena
	conditions *target.Arena

	// plusSymbols is bookkeeping purely for diffusion's adjacency test: a
	// "+" text keeps its own entry in texts (renamed, semantics "plus"),
	// and a parallel Plus marker is recorded here under that same tag; a
	// graphic "+" glyph gets a marker under a fresh plus tag.
	plusSymbols []*target.Plus

	// arrowSource keeps each arrow's originating CDXML element alongside
	// its arena tag, since the extension-box geometry the role
	// classification stage tests against is defined on *cdxml.Arrow.
	arrowSource map[string]*cdxml.Arrow

	reactions     map[string]*target.Reaction
	reactionOrder []string

	doc    *cdxml.Document
	svgDoc *svgdoc.Document
	// png is the debug raster whose pixel size maps compound boxes into
	// ImageCutter's coordinates: either opts.PNG verbatim, or opts.SVG
	// rendered via opts.SvgRasterizer when no PNG was supplied directly.
	png    []byte
	opts   Options
	logger *slog.Logger
}

// Parse parses raw CDXML markup into the normalized reaction model: every
// compound, arrow, grouped condition and free label, tagged and linked.
func Parse(raw string, opts Options) (*Output, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	doc, err := cdxml.ParseDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("parser: parse cdxml: %w", err)
	}

	var svgDoc *svgdoc.Document
	if opts.SVG != "" {
		svgDoc, err = svgdoc.Parse(opts.SVG)
		if err != nil {
			return nil, fmt.Errorf("parser: parse svg: %w", err)
		}
	}

	png := opts.PNG
	if len(png) == 0 && opts.SVG != "" && opts.SvgRasterizer != nil {
		rendered, err := opts.SvgRasterizer.Render(opts.SVG)
		if err != nil {
			logger.Warn("render svg to debug raster", "error", err)
		} else {
			png = rendered
		}
	}

	tags := target.NewTagAllocator()
	p := &pipeline{
		tags:        tags,
		texts:       target.NewArenaWithAllocator(tags),
		compounds:   target.NewArenaWithAllocator(tags),
		arrows:      target.NewArenaWithAllocator(tags),
		conditions:  target.NewArenaWithAllocator(tags),
		arrowSource: map[string]*cdxml.Arrow{},
		reactions:   map[string]*target.Reaction{},
		doc:         doc,
		svgDoc:      svgDoc,
		png:         png,
		opts:        opts,
		logger:      logger,
	}

	if err := p.extractTexts(); err != nil {
		return nil, fmt.Errorf("parser: extract texts: %w", err)
	}
	p.extractPlusSymbols()
	if err := p.extractArrows(); err != nil {
		return nil, fmt.Errorf("parser: extract arrows: %w", err)
	}
	if err := p.extractCompounds(); err != nil {
		return nil, fmt.Errorf("parser: extract compounds: %w", err)
	}
	if err := p.buildReactions(); err != nil {
		return nil, fmt.Errorf("parser: build reactions: %w", err)
	}
	p.renumber()
	if err := p.linkTextParents(); err != nil {
		return nil, fmt.Errorf("parser: link text parents: %w", err)
	}

	return p.output(), nil
}

// isConditionText reports whether text matches any built-in or
// operator-supplied condition rule, the test that routes a label found
// below an arrow into the condition role rather than solvent.
func (p *pipeline) isConditionText(text string) bool {
	return len(p.opts.ConditionRules.Classify(text, p.logger)) > 0
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
