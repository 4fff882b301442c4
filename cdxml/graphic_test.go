package cdxml

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

func TestParseGraphic_PlusSymbol(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<graphic BoundingBox="0 0 10 10" GraphicType="Symbol" SymbolType="Plus"/>`))
	g, err := parseGraphic(doc.Root())
	require.NoError(t, err)
	require.True(t, g.IsPlusSymbol())
}

func TestParseGraphic_WithRepresent(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<graphic BoundingBox="0 0 10 10" GraphicType="Line">
<represent BondID="12"/>
<represent BondID="13"/>
</graphic>`))
	g, err := parseGraphic(doc.Root())
	require.NoError(t, err)
	require.False(t, g.IsPlusSymbol())
	require.Len(t, g.Represents, 2)
}

func TestParseGraphic_UnknownChild(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<graphic BoundingBox="0 0 1 1"><bogus/></graphic>`))
	_, err := parseGraphic(doc.Root())
	require.Error(t, err)
}
