package parser

import (
	"log/slog"

	"github.com/lunziqwq/cdxml-tools/condition"
	"github.com/lunziqwq/cdxml-tools/geom"
)

// ImageCutter crops a rectangular region, already in the raster's own pixel
// coordinates, out of a rendered debug image of the whole page, returning
// it PNG-encoded. Rasterizing and re-encoding an image is outside this
// module's scope; callers that want per-compound thumbnails supply one
// backed by whatever imaging library their environment already depends on.
type ImageCutter interface {
	CutRegion(box geom.BoundingBox) ([]byte, error)
}

// SvgRasterizer renders a standalone <svg> document to a raster image. Used
// only to stand in for a missing PNG, whose pixel size then maps compound
// boxes into raster coordinates for ImageCutter.
type SvgRasterizer interface {
	Render(svg string) ([]byte, error)
}

// Options configures one Parse call.
type Options struct {
	// SVG is the page rendered as a standalone SVG document, used to cut a
	// per-compound vector image for every drawn (not text-only) fragment,
	// alongside its live CDXML markup. Optional: without it,
	// CompoundEntry.Svg is never populated.
	SVG string

	// PNG is a pre-rendered debug raster of the page. Parse reads only its
	// pixel size, to map each drawn compound's box into the raster
	// coordinates ImageCutter crops with; the image itself is not passed to
	// ImageCutter. If absent but SVG and a SvgRasterizer are both set, the
	// SVG is rendered to fill this role instead.
	PNG []byte

	WithPosition bool
	WithCdxml    bool
	WithImg      bool

	ImageCutter   ImageCutter
	SvgRasterizer SvgRasterizer

	// ConditionRules extends the five built-in condition kinds with
	// operator-supplied extra kinds. Nil means built-ins only.
	ConditionRules *condition.RuleSet

	// Logger receives warnings for recoverable per-node failures (a
	// compound's thumbnail could not be cut, an extra condition rule
	// failed to evaluate). Defaults to a discarding logger.
	Logger *slog.Logger
}
