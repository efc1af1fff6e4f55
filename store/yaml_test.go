package store

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/light"
)

func TestYAML_RoundTrip(t *testing.T) {
	src := sampleNetwork(t)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, src))
	assert.Contains(t, buf.String(), "name: New Delhi")

	g, err := ReadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, src.Vertices(), g.Vertices())
	assert.Equal(t, src.Roads(), g.Roads(), "self-loops survive YAML")
}

func TestReadYAML_Defaults(t *testing.T) {
	in := `
junctions:
  - name: Hub
  - light: {red: 1, green: 2, yellow: 3}
    lat: 10.5
roads:
  - {from: 0, to: 1, weight: 4}
  - {from: 0, to: 7, weight: 1}
`
	g, err := ReadYAML(strings.NewReader(in))
	require.NoError(t, err)

	vs := g.Vertices()
	require.Len(t, vs, 2)
	assert.Equal(t, core.Vertex{ID: 0, Name: "Hub", Light: light.Default()}, vs[0])
	assert.Equal(t, core.Vertex{ID: 1, Name: "J1", Light: light.New(1, 2, 3), Lat: 10.5}, vs[1])
	assert.Equal(t, []core.Road{{From: 0, To: 1, Weight: 4}}, g.Roads())
}

func TestReadYAML_Empty(t *testing.T) {
	g, err := ReadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
}

func TestReadYAML_Errors(t *testing.T) {
	_, err := ReadYAML(strings.NewReader("junctions: ["))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ReadYAML(strings.NewReader("junctions: 5\n"))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ReadYAML(strings.NewReader("junctions:\n  - name: a\n  - name: b\n"), WithCapacity(1))
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)

	assert.ErrorIs(t, WriteYAML(&bytes.Buffer{}, nil), ErrMalformed)
}
