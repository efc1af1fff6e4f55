package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/light"
	"github.com/katalvlaran/trafficpath/store/graphdb"
)

func TestRepository_Save(t *testing.T) {
	mem := graphdb.NewMemoryClient()
	repo := NewRepository(mem)

	require.NoError(t, repo.Save(context.Background(), " city ", sampleNetwork(t)))

	calls := mem.WriteCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, deleteNetworkCypher, calls[0].Query)
	assert.Equal(t, createJunctionsCypher, calls[1].Query)
	assert.Equal(t, createRoadsCypher, calls[2].Query)
	assert.Equal(t, "city", calls[1].Params["network"])

	junctions, ok := calls[1].Params["junctions"].([]map[string]any)
	require.True(t, ok, "junctions param type %T", calls[1].Params["junctions"])
	require.Len(t, junctions, 3)
	assert.Equal(t, "New Delhi", junctions[1]["name"])
	assert.Equal(t, int64(8), junctions[1]["red"])

	roads, ok := calls[2].Params["roads"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, roads, 3, "self-loops are stored")
	assert.Equal(t, map[string]any{"seq": int64(2), "from": int64(2), "to": int64(2), "weight": int64(1)}, roads[2])
}

func TestRepository_SaveWithoutRoads(t *testing.T) {
	mem := graphdb.NewMemoryClient()
	b := core.NewBuilder()
	_, err := b.AddVertex("solo", light.Default())
	require.NoError(t, err)

	require.NoError(t, NewRepository(mem).Save(context.Background(), "city", b.Build()))
	assert.Len(t, mem.WriteCalls(), 2)
}

// TestRepository_RoundTrip feeds the written rows back as read records.
func TestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src := sampleNetwork(t)

	writer := graphdb.NewMemoryClient()
	require.NoError(t, NewRepository(writer).Save(ctx, "city", src))
	calls := writer.WriteCalls()

	reader := graphdb.NewMemoryClient()
	var junctions, roads []graphdb.Record
	for _, row := range calls[1].Params["junctions"].([]map[string]any) {
		junctions = append(junctions, graphdb.Record(row))
	}
	for _, row := range calls[2].Params["roads"].([]map[string]any) {
		roads = append(roads, graphdb.Record{"from": row["from"], "to": row["to"], "weight": row["weight"]})
	}
	reader.PushReadResult(graphdb.Result{Records: junctions})
	reader.PushReadResult(graphdb.Result{Records: roads})

	g, err := NewRepository(reader).Load(ctx, "city")
	require.NoError(t, err)
	assert.Equal(t, src.Vertices(), g.Vertices())
	assert.Equal(t, src.Roads(), g.Roads())

	reads := reader.ReadCalls()
	require.Len(t, reads, 2)
	assert.Equal(t, loadJunctionsCypher, reads[0].Query)
	assert.Equal(t, loadRoadsCypher, reads[1].Query)
}

func TestRepository_LoadErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		_, err := NewRepository(graphdb.NewMemoryClient()).Load(ctx, "city")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("sparse ids", func(t *testing.T) {
		mem := graphdb.NewMemoryClient()
		mem.PushReadResult(graphdb.Result{Records: []graphdb.Record{{"id": int64(0)}, {"id": int64(2)}}})
		_, err := NewRepository(mem).Load(ctx, "city")
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("capacity", func(t *testing.T) {
		mem := graphdb.NewMemoryClient()
		mem.PushReadResult(graphdb.Result{Records: []graphdb.Record{{"id": int64(0)}, {"id": int64(1)}}})
		_, err := NewRepository(mem, WithCapacity(1)).Load(ctx, "city")
		assert.ErrorIs(t, err, core.ErrCapacityExceeded)
	})

	t.Run("client error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := NewRepository(graphdb.NewMemoryClient().WithError(boom)).Load(ctx, "city")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := NewRepository(graphdb.NewMemoryClient()).Load(ctx, "  ")
		assert.ErrorIs(t, err, ErrMissingNetwork)
	})
}

func TestRepository_SaveErrors(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(graphdb.NewMemoryClient())

	assert.ErrorIs(t, repo.Save(ctx, "", sampleNetwork(t)), ErrMissingNetwork)
	assert.ErrorIs(t, repo.Save(ctx, "city", nil), ErrMalformed)

	boom := errors.New("boom")
	err := NewRepository(graphdb.NewMemoryClient().WithError(boom)).Save(ctx, "city", sampleNetwork(t))
	assert.ErrorIs(t, err, boom)
}

// TestRepository_SaveKeepsOldNetworkOnFailure fails the roads statement and
// expects neither the delete nor the junctions to be committed.
func TestRepository_SaveKeepsOldNetworkOnFailure(t *testing.T) {
	boom := errors.New("boom")
	mem := graphdb.NewMemoryClient().FailWriteAt(3, boom)

	err := NewRepository(mem).Save(context.Background(), "city", sampleNetwork(t))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, mem.WriteCalls())
}

func TestRepository_NetworksAndDelete(t *testing.T) {
	ctx := context.Background()
	mem := graphdb.NewMemoryClient()
	mem.PushReadResult(graphdb.Result{Records: []graphdb.Record{{"network": "a"}, {"network": nil}, {"network": "b"}}})
	repo := NewRepository(mem)

	names, err := repo.Networks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	require.NoError(t, repo.Delete(ctx, "a"))
	calls := mem.WriteCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, deleteNetworkCypher, calls[0].Query)
	assert.ErrorIs(t, repo.Delete(ctx, ""), ErrMissingNetwork)
}
