package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureCdxml = `<CDXML>
<page BoundingBox="0 0 1000 500">
<fragment BoundingBox="0 0 50 50"><n BoundingBox="0 0 50 50"><t BoundingBox="0 0 50 50"><s>A</s></t></n></fragment>
<arrow BoundingBox="100 20 200 25" Head3D="200 22 0" Tail3D="100 22 0"/>
<fragment BoundingBox="250 0 300 50"><n BoundingBox="250 0 300 50"><t BoundingBox="250 0 300 50"><s>B</s></t></n></fragment>
</page>
</CDXML>`

func TestRunParse_WritesJSONOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scheme.cdxml")
	out := filepath.Join(dir, "result.json")
	require.NoError(t, os.WriteFile(in, []byte(fixtureCdxml), 0o644))

	err := runParse(&rootOptions{}, &parseOptions{out: out, position: true}, in)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), `"reaction"`)
}

func TestRunParse_RebuildProducesCdxml(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scheme.cdxml")
	out := filepath.Join(dir, "result.cdxml")
	require.NoError(t, os.WriteFile(in, []byte(fixtureCdxml), 0o644))

	err := runParse(&rootOptions{}, &parseOptions{out: out, rebuild: true, position: true}, in)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "<CDXML")
}

func TestRunParse_MissingFileErrors(t *testing.T) {
	err := runParse(&rootOptions{}, &parseOptions{}, filepath.Join(t.TempDir(), "missing.cdxml"))
	require.Error(t, err)
}
