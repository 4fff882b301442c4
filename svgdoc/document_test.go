package svgdoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleSVG = `<svg width="500px" height="300px" viewBox="0 0 500 300">
<path d="M 100,100 L 150,100 L 150,150 Z" transform="matrix(1 0 0 1 0 0)"/>
<text x="100" y="90" font-size="12px" transform="matrix(1 0 0 1 0 0)">ethanol</text>
</svg>`

func TestParse(t *testing.T) {
	d, err := Parse(sampleSVG)
	require.NoError(t, err)
	require.Equal(t, 500.0, d.Width)
	require.Equal(t, 300.0, d.Height)
	require.Len(t, d.Paths, 1)
	require.Len(t, d.Texts, 1)
	require.Equal(t, "ethanol", d.Texts[0].String)
}

func TestDocument_ResetCanvas(t *testing.T) {
	d, err := Parse(sampleSVG)
	require.NoError(t, err)

	require.NoError(t, d.ResetCanvas())

	// content ltrb was (100,90,150,150); anchored at (20,20), the canvas
	// is the content's extent plus 50 (20 before it, 30 after it).
	require.Equal(t, 150.0-100.0+50.0, d.Width)
	require.Equal(t, 150.0-90.0+50.0, d.Height)
}

func TestDocument_RemovePath(t *testing.T) {
	d, err := Parse(sampleSVG)
	require.NoError(t, err)

	d.RemovePath(d.Paths[0])
	require.Empty(t, d.Paths)
}

func TestDocument_Copy(t *testing.T) {
	d, err := Parse(sampleSVG)
	require.NoError(t, err)

	cp, err := d.Copy()
	require.NoError(t, err)
	require.Len(t, cp.Paths, 1)

	cp.RemovePath(cp.Paths[0])
	require.Len(t, d.Paths, 1, "copy must not alias the source document's element tree")
}

func TestParse_MissingCanvasAttrs(t *testing.T) {
	_, err := Parse(`<svg><path d="M 0,0 L 1,1" transform="matrix(1 0 0 1 0 0)"/></svg>`)
	require.Error(t, err)
}
