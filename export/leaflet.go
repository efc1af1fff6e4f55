// SPDX-License-Identifier: MIT
// Package: trafficpath/export
//
// leaflet.go - interactive HTML map of the network.
//
// The page loads Leaflet and the polyline decorator plugin from public CDNs,
// places a marker per junction, draws every road u<v with a weight tooltip
// and overlays the route in red with arrowheads. The view fits the route when
// it has at least two junctions, otherwise every junction.

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"github.com/katalvlaran/trafficpath/core"
)

// Map defaults: a country level view of India.
const (
	DefaultMapTitle     = "City Map - India"
	DefaultMapCenterLat = 22.5937
	DefaultMapCenterLon = 78.9629
	DefaultMapZoom      = 5
)

// MapOption customizes WriteLeafletMap.
type MapOption func(*mapConfig)

type mapConfig struct {
	title    string
	lat, lon float64
	zoom     int
}

// WithTitle sets the page title.
func WithTitle(title string) MapOption {
	return func(c *mapConfig) {
		c.title = title
	}
}

// WithView sets the initial map center and zoom. Panics if zoom is outside [0, 18].
func WithView(lat, lon float64, zoom int) MapOption {
	if zoom < 0 || zoom > 18 {
		panic(fmt.Sprintf("export: WithView zoom must be in [0,18], got %d", zoom))
	}
	return func(c *mapConfig) {
		c.lat, c.lon, c.zoom = lat, lon, zoom
	}
}

type mapNode struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type mapEdge struct {
	U int   `json:"u"`
	V int   `json:"v"`
	W int64 `json:"w"`
}

type mapPage struct {
	Title string
	Lat   float64
	Lon   float64
	Zoom  int
	Nodes string
	Edges string
	Route string
}

var leafletTmpl = template.Must(template.New("leaflet").Parse(`<!doctype html><html><head><meta charset='utf-8'>
<meta name='viewport' content='width=device-width, initial-scale=1'>
<title>{{html .Title}}</title>
<link rel='stylesheet' href='https://unpkg.com/leaflet@1.9.4/dist/leaflet.css'/>
<style>html,body,#map{height:100%;margin:0;} .edge-label{background:transparent;border:none;font-weight:600;}</style>
</head><body><div id='map'></div>
<script src='https://unpkg.com/leaflet@1.9.4/dist/leaflet.js'></script>
<script src='https://cdnjs.cloudflare.com/ajax/libs/leaflet.polylinedecorator/1.7.0/leaflet.polylineDecorator.min.js'></script>
<script>
var map = L.map('map').setView([{{.Lat}}, {{.Lon}}], {{.Zoom}});
L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {maxZoom: 18, attribution: '&copy; OpenStreetMap contributors'}).addTo(map);
var nodes = {{.Nodes}};
var edges = {{.Edges}};
var sp = {{.Route}};
nodes.forEach(n=>{
  var m = L.marker([n.lat, n.lon]).addTo(map);
  var label = document.createElement('b');
  label.textContent = n.name;
  m.bindPopup(label);
});
function pt(id){ let n = nodes.find(x=>x.id===id); return [n.lat, n.lon]; }
edges.forEach(e=>{
  var line = L.polyline([pt(e.u), pt(e.v)], {weight:3, opacity:0.6}).addTo(map);
  var a=pt(e.u), b=pt(e.v);
  var mid=[(a[0]+b[0])/2,(a[1]+b[1])/2];
  L.marker(mid,{opacity:0}).addTo(map)
    .bindTooltip(String(e.w),{permanent:true,direction:'center',className:'edge-label'});
});
if (sp.length>1){
  var coords=[]; for (var i=0;i<sp.length;i++){ coords.push(pt(sp[i])); }
  var spLine = L.polyline(coords, {color:'red', weight:6, opacity:0.9}).addTo(map);
  spLine.bindPopup('Shortest Path');
  try {
    L.polylineDecorator(spLine, {patterns: [
      {offset: '5%', repeat: '15%', symbol: L.Symbol.arrowHead({pixelSize: 10, polygon: false, pathOptions: {stroke: true, color: 'red'}})}
    ]}).addTo(map);
  } catch(e) { console.warn('PolylineDecorator not available', e); }
  map.fitBounds(coords, {padding:[40,40]});
} else {
  var all=[]; nodes.forEach(n=>all.push([n.lat,n.lon]));
  if (all.length>0) map.fitBounds(all, {padding:[40,40]});
}
</script></body></html>
`))

// WriteLeafletMap writes an HTML page showing g with route highlighted.
// route may be nil; ids outside [0, N) wrap core.ErrInvalidIndex.
func WriteLeafletMap(w io.Writer, g *core.Graph, route []int, opts ...MapOption) error {
	if g == nil {
		return ErrNilGraph
	}
	cfg := mapConfig{
		title: DefaultMapTitle,
		lat:   DefaultMapCenterLat,
		lon:   DefaultMapCenterLon,
		zoom:  DefaultMapZoom,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, id := range route {
		if !g.Valid(id) {
			return fmt.Errorf("WriteLeafletMap: route vertex %d: %w", id, core.ErrInvalidIndex)
		}
	}

	nodes := make([]mapNode, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		nodes = append(nodes, mapNode{ID: v.ID, Name: v.Name, Lat: v.Lat, Lon: v.Lon})
	}
	edges := make([]mapEdge, 0, g.RoadCount())
	for _, r := range g.Roads() {
		if r.From < r.To {
			edges = append(edges, mapEdge{U: r.From, V: r.To, W: r.Weight})
		}
	}
	if route == nil {
		route = []int{}
	}

	page := mapPage{Title: cfg.title, Lat: cfg.lat, Lon: cfg.lon, Zoom: cfg.zoom}
	var err error
	if page.Nodes, err = jsLiteral(nodes); err != nil {
		return fmt.Errorf("WriteLeafletMap: nodes: %w", err)
	}
	if page.Edges, err = jsLiteral(edges); err != nil {
		return fmt.Errorf("WriteLeafletMap: edges: %w", err)
	}
	if page.Route, err = jsLiteral(route); err != nil {
		return fmt.Errorf("WriteLeafletMap: route: %w", err)
	}

	if err := leafletTmpl.Execute(w, page); err != nil {
		return fmt.Errorf("WriteLeafletMap: %w", err)
	}

	return nil
}

// jsLiteral encodes v as JSON, which json.Marshal keeps safe inside <script>.
func jsLiteral(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
