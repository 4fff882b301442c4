package parser

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/lunziqwq/cdxml-tools/geom"
	"github.com/lunziqwq/cdxml-tools/svgdoc"
	"github.com/lunziqwq/cdxml-tools/target"
)

// extractCompounds registers one target.Compound per <fragment> on the
// page, keeping its live CDXML markup (so the builder can reconstruct the
// drawing later) unless the fragment is a bare text label, in which case
// only that text is kept. Drawn (non-text) fragments additionally get a
// raster thumbnail and/or vector fallback cut from the page render, when
// the caller supplied one.
func (p *pipeline) extractCompounds() error {
	for _, f := range p.doc.Pages[0].Fragments {
		tag := p.tags.Next(target.SemanticsCompound)

		var cdxmlStr, text string
		if t, ok := f.IsTextOnly(); ok {
			text = t
		} else {
			s, err := f.XMLString()
			if err != nil {
				return fmt.Errorf("serialize fragment: %w", err)
			}
			cdxmlStr = s
		}

		c := target.NewCompound(tag, f.Box, f.Key(), cdxmlStr, text)

		if cdxmlStr != "" {
			if p.opts.ImageCutter != nil {
				if imgW, imgH, err := rasterSize(p.png, p.svgDoc); err != nil {
					p.logger.Warn("determine raster size", "tag", tag, "error", err)
				} else {
					box := borderBox(f.Box, p.doc.Box, imgW, imgH, 8)
					img, err := p.opts.ImageCutter.CutRegion(box)
					if err != nil {
						p.logger.Warn("cut compound thumbnail", "tag", tag, "error", err)
					} else {
						c.Img = img
					}
				}
			}
			if p.svgDoc != nil {
				svg, err := p.cutSvgRegion(f.Box)
				if err != nil {
					p.logger.Warn("cut compound svg region", "tag", tag, "error", err)
				} else {
					c.Svg = svg
				}
			}
		}

		if err := p.compounds.Add(c); err != nil {
			return err
		}
	}
	return nil
}

// rasterSize reports the pixel dimensions of whichever raster the debug
// ImageCutter will crop from: the caller-supplied PNG if present (read via
// its header only, not decoded), else the rendered SVG's own declared
// size.
func rasterSize(pngBytes []byte, svgDoc *svgdoc.Document) (w, h float64, err error) {
	if len(pngBytes) > 0 {
		cfg, err := png.DecodeConfig(bytes.NewReader(pngBytes))
		if err != nil {
			return 0, 0, fmt.Errorf("decode png dimensions: %w", err)
		}
		return float64(cfg.Width), float64(cfg.Height), nil
	}
	if svgDoc != nil {
		return svgDoc.Width, svgDoc.Height, nil
	}
	return 0, 0, fmt.Errorf("no debug raster available")
}

// borderBox maps a document-space box into raster pixel coordinates sized
// (imgW, imgH), padding by ext on every side and clamping to the raster's
// interior -- the same border math a drawn guideline rectangle uses.
func borderBox(box, docBox geom.BoundingBox, imgW, imgH, ext float64) geom.BoundingBox {
	offset := geom.Point{X: -docBox.Left, Y: -docBox.Top}
	scale := geom.Point{X: imgW / docBox.Width(), Y: imgH / docBox.Height()}
	scaled := box.OffsetThenScale(offset, scale)
	l := maxFloat(scaled.Left-ext, 1)
	t := maxFloat(scaled.Top-ext, 1)
	r := minFloat(scaled.Right+ext, imgW-1)
	b := minFloat(scaled.Bottom+ext, imgH-1)
	return geom.BoundingBox{Left: l, Top: t, Right: r, Bottom: b}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// cutSvgRegion crops a copy of the page's SVG render down to the region
// box wraps: every path and text not fully enclosed by a padded,
// document-to-raster-scaled version of box is dropped, then the canvas is
// reset to frame what remains.
func (p *pipeline) cutSvgRegion(box geom.BoundingBox) (string, error) {
	cp, err := p.svgDoc.Copy()
	if err != nil {
		return "", fmt.Errorf("copy svg document: %w", err)
	}

	scaledBox := borderBox(box, p.doc.Box, p.svgDoc.Width, p.svgDoc.Height, 10)

	for _, path := range append([]*svgdoc.Path(nil), cp.Paths...) {
		if !path.Box.Wraps(scaledBox) {
			cp.RemovePath(path)
		}
	}
	for _, text := range append([]*svgdoc.Text(nil), cp.Texts...) {
		if !text.Box.Wraps(scaledBox) {
			cp.RemoveText(text)
		}
	}

	if err := cp.ResetCanvas(); err != nil {
		return "", fmt.Errorf("reset canvas: %w", err)
	}
	return cp.String()
}
