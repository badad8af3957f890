// Internal tests for graph-file loading and CSV emission, plus an
// end-to-end run of the compute command against a temp TOML file.
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salience"
)

// writeTemp drops content into a fresh temp file and returns its path.
func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

const pathGraphTOML = `
[[edges]]
from = "A"
to = "B"
weight = 1.0

[[edges]]
from = "B"
to = "C"
weight = 1.0
`

func TestLoadGraph_Basic(t *testing.T) {
	path := writeTemp(t, pathGraphTOML)

	g, err := loadGraph(path, "weight")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
	for _, e := range g.Edges() {
		w, ok := e.AttrValue("weight")
		require.True(t, ok)
		assert.Equal(t, 1.0, w)
	}
}

func TestLoadGraph_IsolatedNodesAndMissingWeight(t *testing.T) {
	path := writeTemp(t, `
nodes = ["Z"]

[[edges]]
from = "A"
to = "B"
`)

	g, err := loadGraph(path, "weight")
	require.NoError(t, err)

	assert.True(t, g.HasVertex("Z"))
	e := g.Edges()[0]
	_, ok := e.AttrValue("weight")
	assert.False(t, ok) // absent stays absent; never defaulted

	// The weighted variant must therefore refuse this graph.
	_, err = salience.Salience(g)
	require.ErrorIs(t, err, salience.ErrMissingWeight)
}

func TestLoadGraph_Invalid(t *testing.T) {
	missingEndpoint := writeTemp(t, `
[[edges]]
from = "A"
`)
	_, err := loadGraph(missingEndpoint, "weight")
	require.ErrorIs(t, err, ErrBadGraphFile)

	duplicate := writeTemp(t, `
[[edges]]
from = "A"
to = "B"

[[edges]]
from = "B"
to = "A"
`)
	_, err = loadGraph(duplicate, "weight")
	require.ErrorIs(t, err, ErrBadGraphFile)

	_, err = loadGraph(filepath.Join(t.TempDir(), "nope.toml"), "weight")
	require.Error(t, err)
}

func TestWriteCSV_PathGraph(t *testing.T) {
	path := writeTemp(t, pathGraphTOML)
	g, err := loadGraph(path, "weight")
	require.NoError(t, err)

	s, err := salience.SalienceUnweighted(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, g, s))

	want := ",A,B,C\n" +
		"A,0,1,0\n" +
		"B,1,0,1\n" +
		"C,0,1,0\n"
	assert.Equal(t, want, buf.String())
}

func TestComputeCmd_EndToEnd(t *testing.T) {
	path := writeTemp(t, pathGraphTOML)

	cmd := newComputeCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--input", path, "--unweighted"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), ",A,B,C")
	assert.Contains(t, out.String(), "B,1,0,1")
}

func TestComputeCmd_OutputFile(t *testing.T) {
	path := writeTemp(t, pathGraphTOML)
	outPath := filepath.Join(t.TempDir(), "matrix.csv")

	cmd := newComputeCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-i", path, "-o", outPath})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), ",A,B,C")
}

func TestComputeCmd_PropagatesSalienceErrors(t *testing.T) {
	path := writeTemp(t, `
[[edges]]
from = "A"
to = "B"
weight = 0.0
`)

	cmd := newComputeCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-i", path})

	err := cmd.Execute()
	require.ErrorIs(t, err, salience.ErrInvalidWeight)
}
