package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/dijkstra"
	"github.com/katalvlaran/trafficpath/light"
)

// triangle: A–B (7), B–C (3), parallel A–B (9), loop at C (1).
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	_, err := b.AddVertexAt("A", light.New(10, 5, 2), 19.07, 72.87)
	require.NoError(t, err)
	_, err = b.AddVertexAt("B", light.Cycle{}, 28.61, 77.2)
	require.NoError(t, err)
	_, err = b.AddVertexAt("C", light.New(1, 1, 1), 18.52, 73.85)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1, 7))
	require.NoError(t, b.AddEdge(1, 2, 3))
	require.NoError(t, b.AddEdge(1, 0, 9))
	require.NoError(t, b.AddEdge(2, 2, 1))

	return b.Build()
}

func TestToGonum(t *testing.T) {
	gg := ToGonum(triangle(t))

	assert.Equal(t, 3, gg.Nodes().Len())
	assert.Equal(t, 2, gg.Lines(0, 1).Len(), "parallel roads are kept")
	w, ok := gg.Weight(1, 2)
	require.True(t, ok)
	assert.Equal(t, 3.0, w)
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, triangle(t)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "graph City {"), out)
	assert.Contains(t, out, "overlap=false")
	assert.Contains(t, out, "splines=true")
	assert.Contains(t, out, `"A (R:10 G:5 Y:2)"`)
	assert.Contains(t, out, `"B (R:0 G:0 Y:0)"`)
	assert.Contains(t, out, "n0 -- n1")
	assert.Contains(t, out, `label="9"`)
	assert.True(t, strings.HasSuffix(out, "}\n"))

	assert.ErrorIs(t, WriteDOT(&buf, nil), ErrNilGraph)
}

func TestWriteLeafletMap(t *testing.T) {
	g := triangle(t)

	var buf bytes.Buffer
	require.NoError(t, WriteLeafletMap(&buf, g, []int{0, 1, 2}))
	out := buf.String()

	assert.Contains(t, out, "<title>City Map - India</title>")
	assert.Contains(t, out, "setView([22.5937, 78.9629], 5)")
	assert.Contains(t, out, `var nodes = [{"id":0,"name":"A","lat":19.07,"lon":72.87},`)
	assert.Contains(t, out, `var edges = [{"u":0,"v":1,"w":7},{"u":1,"v":2,"w":3},{"u":0,"v":1,"w":9}];`, "self-loops are not drawn")
	assert.Contains(t, out, "var sp = [0,1,2];")
	assert.True(t, strings.HasSuffix(out, "</script></body></html>\n"))
}

func TestWriteLeafletMap_Options(t *testing.T) {
	b := core.NewBuilder()
	_, err := b.AddVertex("</script><b>", light.Default())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteLeafletMap(&buf, b.Build(), nil, WithTitle("Pune & co"), WithView(18.5, 73.8, 11)))
	out := buf.String()

	assert.Contains(t, out, "<title>Pune &amp; co</title>")
	assert.Contains(t, out, "setView([18.5, 73.8], 11)")
	assert.Contains(t, out, `\u003c/script\u003e`)
	assert.NotContains(t, out, "</script><b>")
	assert.Contains(t, out, "var sp = [];")

	assert.Panics(t, func() { WithView(0, 0, 19) })
}

// TestWriteLeafletMap_NamesAreText checks that junction names reach popups
// as text nodes, never as markup.
func TestWriteLeafletMap_NamesAreText(t *testing.T) {
	b := core.NewBuilder()
	_, err := b.AddVertex("<img src=x onerror=alert(1)>", light.Default())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteLeafletMap(&buf, b.Build(), nil))
	out := buf.String()

	assert.Contains(t, out, `"name":"\u003cimg src=x onerror=alert(1)\u003e"`)
	assert.Contains(t, out, "label.textContent = n.name;")
	assert.Contains(t, out, "m.bindPopup(label);")
	assert.NotContains(t, out, "n.name+")
	assert.NotContains(t, out, "innerHTML")
	assert.NotContains(t, out, "<img")
}

func TestWriteLeafletMap_Errors(t *testing.T) {
	assert.ErrorIs(t, WriteLeafletMap(&bytes.Buffer{}, nil, nil), ErrNilGraph)
	assert.ErrorIs(t, WriteLeafletMap(&bytes.Buffer{}, triangle(t), []int{0, 5}), core.ErrInvalidIndex)
}

func TestWriteRouteSummary_Departure(t *testing.T) {
	g := triangle(t)
	res, err := dijkstra.ComputeShortestPath(g, 0, 1, dijkstra.WithDeparture(4))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteRouteSummary(&buf, g, res, nil))
	assert.Equal(t,
		"Shortest Time from A to B = 7 units\n"+
			"Departure at 4, arrival at 11\n"+
			"Path Travel Summary:\n"+
			"A -> B\n"+
			"Total Time Taken: 7 units\n",
		buf.String())
}

func TestWriteRouteSummary_Errors(t *testing.T) {
	g := triangle(t)
	assert.ErrorIs(t, WriteRouteSummary(&bytes.Buffer{}, nil, dijkstra.Result{}, nil), ErrNilGraph)
	assert.ErrorIs(t, WriteRouteSummary(&bytes.Buffer{}, g, dijkstra.Result{Source: 0, Dest: 9}, nil), core.ErrInvalidIndex)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriters_PropagateWriteErrors(t *testing.T) {
	g := triangle(t)
	assert.Error(t, WriteAdjacency(failingWriter{}, g))
	assert.Error(t, WriteDOT(failingWriter{}, g))
	assert.Error(t, WriteLeafletMap(failingWriter{}, g, nil))
}
