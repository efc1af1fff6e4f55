// SPDX-License-Identifier: MIT
// Package: trafficpath/store
//
// yaml.go - YAML network documents.
//
//	junctions:
//	  - name: Mumbai
//	    light: {red: 10, green: 5, yellow: 2}
//	    lat: 19.076
//	    lon: 72.8777
//	roads:
//	  - {from: 0, to: 1, weight: 7}
//
// Unlike the legacy format, YAML keeps self-loops and names with spaces.

package store

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/light"
)

type networkDoc struct {
	Junctions []junctionDoc `yaml:"junctions"`
	Roads     []roadDoc     `yaml:"roads"`
}

type junctionDoc struct {
	Name  string       `yaml:"name"`
	Light *light.Cycle `yaml:"light,omitempty"`
	Lat   float64      `yaml:"lat,omitempty"`
	Lon   float64      `yaml:"lon,omitempty"`
}

type roadDoc struct {
	From   int   `yaml:"from"`
	To     int   `yaml:"to"`
	Weight int64 `yaml:"weight"`
}

// ReadYAML decodes a network document. A junction without a light gets
// light.Default(); a junction without a name gets "J<i>". Roads the graph
// rejects are skipped with a warning. An empty document is an empty network.
func ReadYAML(r io.Reader, opts ...LoadOption) (*core.Graph, error) {
	cfg := newLoadConfig(opts...)

	var doc networkDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ReadYAML: %w: %v", ErrMalformed, err)
	}
	if len(doc.Junctions) > cfg.capacity {
		return nil, fmt.Errorf("ReadYAML: %d junctions: %w", len(doc.Junctions), core.ErrCapacityExceeded)
	}

	b := cfg.builder()
	for i, j := range doc.Junctions {
		name := j.Name
		if name == "" {
			name = "J" + strconv.Itoa(i)
		}
		c := light.Default()
		if j.Light != nil {
			c = *j.Light
		}
		if _, err := b.AddVertexAt(name, c, j.Lat, j.Lon); err != nil {
			return nil, fmt.Errorf("ReadYAML: junction %d: %w", i, err)
		}
	}
	for _, rd := range doc.Roads {
		addRoad(b, cfg.logger, rd.From, rd.To, rd.Weight)
	}

	return b.Build(), nil
}

// WriteYAML encodes g as a network document.
func WriteYAML(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("WriteYAML: nil graph: %w", ErrMalformed)
	}

	doc := networkDoc{
		Junctions: make([]junctionDoc, 0, g.VertexCount()),
		Roads:     make([]roadDoc, 0, g.RoadCount()),
	}
	for _, v := range g.Vertices() {
		c := v.Light
		doc.Junctions = append(doc.Junctions, junctionDoc{Name: v.Name, Light: &c, Lat: v.Lat, Lon: v.Lon})
	}
	for _, r := range g.Roads() {
		doc.Roads = append(doc.Roads, roadDoc{From: r.From, To: r.To, Weight: r.Weight})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return nil
}
