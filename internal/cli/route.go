package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/dijkstra"
	"github.com/katalvlaran/trafficpath/export"
)

var routeExample = `  # fastest route by junction name
  trafficpath route --from Mumbai --to Pune

  # leave at clock 12 and write the highlighted map
  trafficpath route --from 0 --to 3 --depart 12 --map`

type routeOptions struct {
	from    string
	to      string
	depart  int64
	legs    bool
	withMap bool
	mapFile string
}

func (o *routeOptions) Validate() error {
	if o.from == "" || o.to == "" {
		return errors.New("both --from and --to are required")
	}
	if o.depart < 0 {
		return fmt.Errorf("--depart must be non-negative, got %d", o.depart)
	}

	return nil
}

func newRouteCommand(a *app) *cobra.Command {
	o := &routeOptions{}
	cmd := &cobra.Command{
		Use:     "route --from JUNCTION --to JUNCTION",
		Short:   "Find the fastest route between two junctions",
		Example: routeExample,
		Args:    cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			g, err := a.loadNetwork(false)
			if err != nil {
				return err
			}

			res, legs, err := a.route(g, o.from, o.to, o.depart)
			if err != nil {
				return err
			}
			if !o.legs {
				legs = nil
			}
			if err := export.WriteRouteSummary(a.out, g, res, legs); err != nil {
				return err
			}

			if !o.withMap {
				return nil
			}
			path := o.mapFile
			if path == "" {
				path = a.cfg.Export.MapFile
			}
			if err := a.withOutput(path, func(w io.Writer) error {
				return export.WriteLeafletMap(w, g, res.Path)
			}); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "Open %s to see the route highlighted.\n", path)

			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.from, "from", "", "source junction id or name")
	f.StringVar(&o.to, "to", "", "destination junction id or name")
	f.Int64Var(&o.depart, "depart", 0, "clock value at departure")
	f.BoolVar(&o.legs, "legs", true, "print per-leg travel and wait times")
	f.BoolVar(&o.withMap, "map", false, "also write the Leaflet map with the route highlighted")
	f.StringVar(&o.mapFile, "map-file", "", "map destination (overrides TRAFFIC_MAP_FILE)")

	return cmd
}

// route resolves both junctions, runs the engine and replays the legs.
func (a *app) route(g *core.Graph, from, to string, depart int64) (dijkstra.Result, []dijkstra.Leg, error) {
	src, err := resolveJunction(g, from)
	if err != nil {
		return dijkstra.Result{}, nil, err
	}
	dest, err := resolveJunction(g, to)
	if err != nil {
		return dijkstra.Result{}, nil, err
	}

	res, err := dijkstra.ComputeShortestPath(g, src, dest,
		dijkstra.WithDeparture(depart),
		dijkstra.WithLogger(a.logger),
	)
	if err != nil {
		return dijkstra.Result{}, nil, err
	}
	a.logger.Info("route computed",
		zap.String("from", g.Name(src)),
		zap.String("to", g.Name(dest)),
		zap.Bool("reachable", res.Reachable),
		zap.Int("settled", res.Settled),
	)
	if !res.Reachable {
		return res, nil, nil
	}

	legs, err := dijkstra.Explain(g, res.Path, res.Departure)
	if err != nil {
		return dijkstra.Result{}, nil, err
	}

	return res, legs, nil
}
