// SPDX-License-Identifier: MIT
// Package: trafficpath/store
//
// repository.go - road networks persisted as (:Junction)-[:ROAD]->(:Junction).
//
// Every node and relationship carries the network name, so several networks
// share one database. Junction ids are the dense core ids; ROAD.seq keeps the
// original road order so a round trip yields the same Roads() listing.

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/light"
	"github.com/katalvlaran/trafficpath/store/graphdb"
)

const (
	deleteNetworkCypher = `
MATCH (j:Junction {network: $network})
DETACH DELETE j`

	createJunctionsCypher = `
UNWIND $junctions AS row
CREATE (j:Junction {network: $network})
SET j += row`

	createRoadsCypher = `
UNWIND $roads AS row
MATCH (a:Junction {network: $network, id: row.from})
MATCH (b:Junction {network: $network, id: row.to})
CREATE (a)-[:ROAD {seq: row.seq, weight: row.weight}]->(b)`

	loadJunctionsCypher = `
MATCH (j:Junction {network: $network})
RETURN j.id AS id, j.name AS name, j.red AS red, j.green AS green,
       j.yellow AS yellow, j.lat AS lat, j.lon AS lon
ORDER BY j.id`

	loadRoadsCypher = `
MATCH (a:Junction {network: $network})-[r:ROAD]->(b:Junction {network: $network})
RETURN a.id AS from, b.id AS to, r.weight AS weight
ORDER BY r.seq`

	listNetworksCypher = `
MATCH (j:Junction)
RETURN DISTINCT j.network AS network
ORDER BY network`
)

// ErrMissingNetwork indicates an empty network name.
var ErrMissingNetwork = errors.New("store: network name is required")

// Repository encapsulates graph persistence of road networks.
type Repository struct {
	client graphdb.Client
	opts   []LoadOption
}

// NewRepository instantiates a Repository backed by client. opts apply to
// every Load.
func NewRepository(client graphdb.Client, opts ...LoadOption) *Repository {
	return &Repository{client: client, opts: opts}
}

// Save replaces the stored network with g in a single write transaction,
// so a failure leaves the previous version in place.
func (r *Repository) Save(ctx context.Context, network string, g *core.Graph) error {
	network = strings.TrimSpace(network)
	if network == "" {
		return ErrMissingNetwork
	}
	if g == nil {
		return fmt.Errorf("save network %s: nil graph: %w", network, ErrMalformed)
	}

	stmts := []graphdb.Statement{
		{Query: deleteNetworkCypher, Params: map[string]any{"network": network}},
		{Query: createJunctionsCypher, Params: map[string]any{
			"network":   network,
			"junctions": junctionParams(g),
		}},
	}
	if g.RoadCount() > 0 {
		stmts = append(stmts, graphdb.Statement{Query: createRoadsCypher, Params: map[string]any{
			"network": network,
			"roads":   roadParams(g),
		}})
	}
	if err := r.client.ExecuteWriteTx(ctx, stmts); err != nil {
		return fmt.Errorf("save network %s: %w", network, err)
	}

	return nil
}

// Load rebuilds the stored network. Returns ErrNotFound when it has no
// junctions and ErrMalformed when junction ids are not dense.
func (r *Repository) Load(ctx context.Context, network string) (*core.Graph, error) {
	network = strings.TrimSpace(network)
	if network == "" {
		return nil, ErrMissingNetwork
	}
	cfg := newLoadConfig(r.opts...)
	params := map[string]any{"network": network}

	res, err := r.client.ExecuteRead(ctx, loadJunctionsCypher, params)
	if err != nil {
		return nil, fmt.Errorf("load network %s: junctions: %w", network, err)
	}
	if len(res.Records) == 0 {
		return nil, fmt.Errorf("load network %s: %w", network, ErrNotFound)
	}
	if len(res.Records) > cfg.capacity {
		return nil, fmt.Errorf("load network %s: %d junctions: %w", network, len(res.Records), core.ErrCapacityExceeded)
	}

	b := cfg.builder()
	for i, rec := range res.Records {
		if id := toInt64(rec["id"]); id != int64(i) {
			return nil, fmt.Errorf("load network %s: junction id %d at position %d: %w", network, id, i, ErrMalformed)
		}
		c := light.New(toInt64(rec["red"]), toInt64(rec["green"]), toInt64(rec["yellow"]))
		if _, err := b.AddVertexAt(toString(rec["name"]), c, toFloat64(rec["lat"]), toFloat64(rec["lon"])); err != nil {
			return nil, fmt.Errorf("load network %s: %w", network, err)
		}
	}

	res, err = r.client.ExecuteRead(ctx, loadRoadsCypher, params)
	if err != nil {
		return nil, fmt.Errorf("load network %s: roads: %w", network, err)
	}
	for _, rec := range res.Records {
		addRoad(b, cfg.logger, int(toInt64(rec["from"])), int(toInt64(rec["to"])), toInt64(rec["weight"]))
	}
	cfg.logger.Debug("store: network loaded",
		zap.String("network", network),
		zap.Int("junctions", b.VertexCount()),
		zap.Int("roads", len(res.Records)),
	)

	return b.Build(), nil
}

// Delete removes the stored network.
func (r *Repository) Delete(ctx context.Context, network string) error {
	network = strings.TrimSpace(network)
	if network == "" {
		return ErrMissingNetwork
	}
	if _, err := r.client.ExecuteWrite(ctx, deleteNetworkCypher, map[string]any{"network": network}); err != nil {
		return fmt.Errorf("delete network %s: %w", network, err)
	}

	return nil
}

// Networks lists the stored network names in ascending order.
func (r *Repository) Networks(ctx context.Context) ([]string, error) {
	res, err := r.client.ExecuteRead(ctx, listNetworksCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("list networks: %w", err)
	}
	names := make([]string, 0, len(res.Records))
	for _, rec := range res.Records {
		if name := toString(rec["network"]); name != "" {
			names = append(names, name)
		}
	}

	return names, nil
}

func junctionParams(g *core.Graph) []map[string]any {
	out := make([]map[string]any, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		out = append(out, map[string]any{
			"id":     int64(v.ID),
			"name":   v.Name,
			"red":    v.Light.Red,
			"green":  v.Light.Green,
			"yellow": v.Light.Yellow,
			"lat":    v.Lat,
			"lon":    v.Lon,
		})
	}

	return out
}

func roadParams(g *core.Graph) []map[string]any {
	roads := g.Roads()
	out := make([]map[string]any, 0, len(roads))
	for i, rd := range roads {
		out = append(out, map[string]any{
			"seq":    int64(i),
			"from":   int64(rd.From),
			"to":     int64(rd.To),
			"weight": rd.Weight,
		})
	}

	return out
}

func toInt64(v any) int64 {
	switch val := v.(type) {
	case int64:
		return val
	case int:
		return int64(val)
	case int32:
		return int64(val)
	case float64:
		return int64(val)
	default:
		return 0
	}
}

func toFloat64(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int64:
		return float64(val)
	case int:
		return float64(val)
	default:
		return 0
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return ""
}
