package builder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lunziqwq/cdxml-tools/parser"
)

func strp(s string) *string { return &s }

func TestBuild_ArrowAndText(t *testing.T) {
	data := &parser.Output{
		Graphic: parser.GraphicParams{Size: parser.Size{W: 500, H: 300}},
		Label: []parser.LabelEntry{
			{
				Tag: "arrow1", Semantics: "arrow",
				Position:     &parser.Position{L: 100, T: 100, W: 50, H: 10},
				HeadPosition: &parser.PointDict{L: 150, T: 105},
				TailPosition: &parser.PointDict{L: 100, T: 105},
			},
			{
				Tag: "text1", Semantics: "text", Text: strp("reflux, 2h"),
				Position: &parser.Position{L: 100, T: 70, W: 40, H: 12},
			},
		},
	}

	out, err := Build(data)
	require.NoError(t, err)
	require.False(t, strings.Contains(out, "\n"))
	require.Contains(t, out, "<arrow")
	require.Contains(t, out, `Head3D="150.000000 105.000000 0"`)
	require.Contains(t, out, "reflux, 2h")
	require.Contains(t, out, "<CDXML")
}

func TestBuild_CompoundFromCdxml(t *testing.T) {
	data := &parser.Output{
		Compound: []parser.CompoundEntry{
			{
				Tag:      "R1",
				Position: &parser.Position{L: 0, T: 0, W: 20, H: 20},
				Cdxml:    `<fragment BoundingBox="0 0 10 10"><n p="5 5"><t p="5 5"><s>C</s></t></n></fragment>`,
			},
		},
	}

	out, err := Build(data)
	require.NoError(t, err)
	require.Contains(t, out, `p="10.000000 10.000000"`)
}

func TestBuild_CompoundFromTextFallback(t *testing.T) {
	data := &parser.Output{
		Compound: []parser.CompoundEntry{
			{
				Tag:      "r1",
				Position: &parser.Position{L: 10, T: 10, W: 20, H: 10},
				Text:     strp("HCl"),
			},
		},
	}

	out, err := Build(data)
	require.NoError(t, err)
	require.Contains(t, out, "HCl")
}

func TestBuild_MissingArrowPositionErrors(t *testing.T) {
	data := &parser.Output{
		Label: []parser.LabelEntry{
			{Tag: "arrow1", Semantics: "arrow"},
		},
	}

	_, err := Build(data)
	require.Error(t, err)
}

func TestBuild_ScaleAppliesToText(t *testing.T) {
	data := &parser.Output{
		Graphic: parser.GraphicParams{Scale: &parser.Scale{H: 2, V: 2}},
		Label: []parser.LabelEntry{
			{
				Tag: "text1", Semantics: "text", Text: strp("x"),
				Position: &parser.Position{L: 10, T: 10, W: 0, H: 0},
			},
		},
	}

	out, err := Build(data)
	require.NoError(t, err)
	require.Contains(t, out, `p="20.000000 20.000000"`)
}
