package cdxml

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

func TestFragment_IsTextOnly(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<fragment BoundingBox="0 0 50 20">
<n><t BoundingBox="0 0 50 20"><s>NaOH</s></t></n>
</fragment>`))
	f, err := parseFragment(doc.Root())
	require.NoError(t, err)

	text, ok := f.IsTextOnly()
	require.True(t, ok)
	require.Equal(t, "NaOH", text)
}

func TestFragment_NotTextOnly_HasBond(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<fragment BoundingBox="0 0 50 20">
<n><t BoundingBox="0 0 50 20"><s>C</s></t></n>
<n/>
<b B="0" E="1"/>
</fragment>`))
	f, err := parseFragment(doc.Root())
	require.NoError(t, err)

	_, ok := f.IsTextOnly()
	require.False(t, ok)
}

func TestFragment_XMLStringRoundTrips(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<fragment id="7" BoundingBox="0 0 10 10"><n/></fragment>`))
	f, err := parseFragment(doc.Root())
	require.NoError(t, err)

	s, err := f.XMLString()
	require.NoError(t, err)
	require.Contains(t, s, `id="7"`)
}
