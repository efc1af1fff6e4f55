// SPDX-License-Identifier: MIT
// Package: trafficpath/store
//
// legacy.go - the whitespace separated text format of city_data.txt.
//
// Reader policy:
//   • The junction count must parse; anything else wraps ErrMalformed.
//   • Exactly one line per junction; blank lines are ignored everywhere.
//   • Junctions missing at end of input are filled with defaults.
//   • A road line that does not hold three integers ends the road list.

package store

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/light"
)

// ReadLegacy parses a network in the legacy text format.
// Complexity: O(V+E).
func ReadLegacy(r io.Reader, opts ...LoadOption) (*core.Graph, error) {
	cfg := newLoadConfig(opts...)
	lines := newLineReader(r)

	header, ok := lines.next()
	if !ok {
		if err := lines.err(); err != nil {
			return nil, fmt.Errorf("ReadLegacy: %w", err)
		}
		return nil, fmt.Errorf("ReadLegacy: empty input: %w", ErrMalformed)
	}
	n, err := strconv.Atoi(firstField(header))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("ReadLegacy: junction count %q: %w", header, ErrMalformed)
	}
	if n > cfg.capacity {
		return nil, fmt.Errorf("ReadLegacy: %d junctions: %w", n, core.ErrCapacityExceeded)
	}

	b := cfg.builder()
	for i := 0; i < n; i++ {
		line, _ := lines.next()
		v, full := parseJunction(i, line)
		if !full {
			cfg.logger.Debug("store: junction read with defaults",
				zap.Int("junction", i), zap.String("line", line))
		}
		if _, err := b.AddVertexAt(v.Name, v.Light, v.Lat, v.Lon); err != nil {
			return nil, fmt.Errorf("ReadLegacy: junction %d: %w", i, err)
		}
	}

	m := 0
	if line, ok := lines.next(); ok {
		if c, err := strconv.Atoi(firstField(line)); err == nil && c > 0 {
			m = c
		}
	}
	for i := 0; i < m; i++ {
		line, ok := lines.next()
		u, v, w, parsed := parseRoad(line)
		if !ok || !parsed {
			cfg.logger.Warn("store: road list truncated",
				zap.Int("expected", m), zap.Int("read", i))
			break
		}
		addRoad(b, cfg.logger, u, v, w)
	}
	if err := lines.err(); err != nil {
		return nil, fmt.Errorf("ReadLegacy: %w", err)
	}

	return b.Build(), nil
}

// WriteLegacy encodes g in the legacy text format. Each road is written once
// as "u v w" with u < v; self-loops cannot be expressed and are dropped.
// Whitespace inside names is replaced by '_' so the file stays tokenizable.
// Complexity: O(V+E).
func WriteLegacy(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("WriteLegacy: nil graph: %w", ErrMalformed)
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d\n", g.VertexCount())
	for _, v := range g.Vertices() {
		fmt.Fprintf(bw, "%s %d %d %d %.6f %.6f\n",
			legacyName(v), v.Light.Red, v.Light.Green, v.Light.Yellow, v.Lat, v.Lon)
	}

	roads := make([]core.Road, 0, g.RoadCount())
	for _, r := range g.Roads() {
		if r.From < r.To {
			roads = append(roads, r)
		}
	}
	fmt.Fprintf(bw, "%d\n", len(roads))
	for _, r := range roads {
		fmt.Fprintf(bw, "%d %d %d\n", r.From, r.To, r.Weight)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteLegacy: %w", err)
	}

	return nil
}

// parseJunction decodes "name R G Y lat lon", then "name R G Y", then falls
// back to a default junction. full reports whether coordinates were read.
func parseJunction(i int, line string) (core.Vertex, bool) {
	f := strings.Fields(line)
	if len(f) >= 4 {
		c, okLight := parseCycle(f[1:4])
		if okLight {
			v := core.Vertex{ID: i, Name: f[0], Light: c}
			if len(f) >= 6 {
				lat, errLat := strconv.ParseFloat(f[4], 64)
				lon, errLon := strconv.ParseFloat(f[5], 64)
				if errLat == nil && errLon == nil {
					v.Lat, v.Lon = lat, lon
					return v, true
				}
			}
			return v, false
		}
	}

	return core.Vertex{ID: i, Name: "J" + strconv.Itoa(i), Light: light.Default()}, false
}

func parseCycle(f []string) (light.Cycle, bool) {
	var phases [3]int64
	for k, s := range f {
		p, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return light.Cycle{}, false
		}
		phases[k] = p
	}

	return light.New(phases[0], phases[1], phases[2]), true
}

func parseRoad(line string) (u, v int, w int64, ok bool) {
	f := strings.Fields(line)
	if len(f) < 3 {
		return 0, 0, 0, false
	}
	var err error
	if u, err = strconv.Atoi(f[0]); err != nil {
		return 0, 0, 0, false
	}
	if v, err = strconv.Atoi(f[1]); err != nil {
		return 0, 0, 0, false
	}
	if w, err = strconv.ParseInt(f[2], 10, 64); err != nil {
		return 0, 0, 0, false
	}

	return u, v, w, true
}

func legacyName(v core.Vertex) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, v.Name)
	if name == "" {
		return "J" + strconv.Itoa(v.ID)
	}

	return name
}

func firstField(line string) string {
	f := strings.Fields(line)
	if len(f) == 0 {
		return ""
	}

	return f[0]
}

// lineReader yields non-blank lines.
type lineReader struct {
	sc *bufio.Scanner
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{sc: bufio.NewScanner(r)}
}

func (l *lineReader) next() (string, bool) {
	for l.sc.Scan() {
		if line := strings.TrimSpace(l.sc.Text()); line != "" {
			return line, true
		}
	}

	return "", false
}

func (l *lineReader) err() error { return l.sc.Err() }
