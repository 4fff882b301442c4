package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const oneReactionCdxml = `<CDXML>
<page BoundingBox="0 0 1000 500">
<fragment BoundingBox="0 0 50 50"><n BoundingBox="0 0 50 50"><t BoundingBox="0 0 50 50"><s>A</s></t></n></fragment>
<arrow BoundingBox="100 20 200 25" Head3D="200 22 0" Tail3D="100 22 0"/>
<fragment BoundingBox="250 0 300 50"><n BoundingBox="250 0 300 50"><t BoundingBox="250 0 300 50"><s>B</s></t></n></fragment>
<t BoundingBox="120 40 180 60"><s>80C</s></t>
</page>
</CDXML>`

func TestParse_OneReaction(t *testing.T) {
	out, err := Parse(oneReactionCdxml, Options{WithPosition: true})
	require.NoError(t, err)

	require.Len(t, out.Reaction, 1)
	r := out.Reaction[0]
	require.Len(t, r.Reactant, 1)
	require.Len(t, r.Product, 1)
	require.Len(t, r.Condition, 1)

	require.Len(t, out.Condition, 1)
	require.NotNil(t, out.Condition[0].Temperature)
	require.Equal(t, "80 C", *out.Condition[0].Temperature)

	reactantTag := r.Reactant[0]
	productTag := r.Product[0]
	require.NotEqual(t, reactantTag, productTag)

	var sawReactant, sawProduct bool
	for _, c := range out.Compound {
		if c.Tag == reactantTag {
			sawReactant = true
			require.Equal(t, "reactant", c.Semantics)
		}
		if c.Tag == productTag {
			sawProduct = true
			require.Equal(t, "product", c.Semantics)
		}
	}
	require.True(t, sawReactant)
	require.True(t, sawProduct)
}

func TestParse_EmptyPage(t *testing.T) {
	out, err := Parse(`<CDXML><page BoundingBox="0 0 100 100"></page></CDXML>`, Options{})
	require.NoError(t, err)
	require.Empty(t, out.Reaction)
	require.Empty(t, out.Compound)
	require.Empty(t, out.Label)
	require.Empty(t, out.Condition)
}

func TestParse_NoPageErrors(t *testing.T) {
	_, err := Parse(`<CDXML></CDXML>`, Options{})
	require.Error(t, err)
}

func TestParse_CommaSplitText(t *testing.T) {
	cdxml := `<CDXML>
<page BoundingBox="0 0 1000 500">
<t BoundingBox="0 0 100 20"><s>N2, 25C</s></t>
</page>
</CDXML>`
	out, err := Parse(cdxml, Options{})
	require.NoError(t, err)
	require.Len(t, out.Label, 2)
}

func TestParse_PlusDiffusionPromotesBothCompounds(t *testing.T) {
	// B sits too far from the arrow to match its tail extension box
	// directly; it only becomes a reactant by diffusing through the "+"
	// between it and A, which does match directly.
	cdxml := `<CDXML>
<page BoundingBox="0 0 1000 500">
<fragment BoundingBox="160 0 200 40"><n BoundingBox="160 0 200 40"><t BoundingBox="160 0 200 40"><s>B</s></t></n></fragment>
<t BoundingBox="250 10 270 30"><s>+</s></t>
<fragment BoundingBox="300 0 340 40"><n BoundingBox="300 0 340 40"><t BoundingBox="300 0 340 40"><s>A</s></t></n></fragment>
<arrow BoundingBox="500 10 600 15" Head3D="600 12 0" Tail3D="500 12 0"/>
<fragment BoundingBox="650 0 700 40"><n BoundingBox="650 0 700 40"><t BoundingBox="650 0 700 40"><s>C</s></t></n></fragment>
</page>
</CDXML>`
	out, err := Parse(cdxml, Options{})
	require.NoError(t, err)
	require.Len(t, out.Reaction, 1)
	require.Len(t, out.Reaction[0].Reactant, 2)
	require.Len(t, out.Reaction[0].Product, 1)
}

func TestParse_TextParentedToNearbyCompound(t *testing.T) {
	cdxml := `<CDXML>
<page BoundingBox="0 0 1000 500">
<fragment BoundingBox="0 0 50 50"><n BoundingBox="0 0 50 50"><t BoundingBox="0 0 50 50"><s>A</s></t></n></fragment>
<t BoundingBox="0 55 50 70"><s>1</s></t>
</page>
</CDXML>`
	out, err := Parse(cdxml, Options{})
	require.NoError(t, err)

	var compoundTag string
	for _, c := range out.Compound {
		compoundTag = c.Tag
	}
	require.NotEmpty(t, compoundTag)

	var found bool
	for _, l := range out.Label {
		if l.Father != nil && *l.Father == compoundTag {
			found = true
		}
	}
	require.True(t, found)
}
