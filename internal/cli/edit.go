package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/light"
)

// lightFlags collects a light cycle from --red/--green/--yellow.
type lightFlags struct {
	red, green, yellow int64
}

func (l *lightFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int64Var(&l.red, "red", light.DefaultRed, "red phase duration")
	f.Int64Var(&l.green, "green", light.DefaultGreen, "green phase duration")
	f.Int64Var(&l.yellow, "yellow", light.DefaultYellow, "yellow phase duration")
}

func (l *lightFlags) cycle() (light.Cycle, error) {
	if l.red < 0 || l.green < 0 || l.yellow < 0 {
		return light.Cycle{}, fmt.Errorf("light phases must be non-negative, got %d/%d/%d", l.red, l.green, l.yellow)
	}

	return light.New(l.red, l.green, l.yellow), nil
}

// edit loads the network (empty if missing), applies fn to a builder seeded
// from it and saves the result back to the data file.
func (a *app) edit(fn func(g *core.Graph, b *core.Builder) error) (*core.Graph, error) {
	g, err := a.loadNetwork(true)
	if err != nil {
		return nil, err
	}
	b := g.Builder(core.WithCapacity(a.cfg.Network.Capacity), core.WithNonNegativeWeights())
	if err := fn(g, b); err != nil {
		return nil, err
	}
	next := b.Build()
	if err := a.saveNetwork(a.cfg.Network.DataFile, next); err != nil {
		return nil, err
	}

	return next, nil
}

func newJunctionCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "junction",
		Short: "Add junctions or retime their lights",
	}
	cmd.AddCommand(newJunctionAddCommand(a), newJunctionLightCommand(a))

	return cmd
}

func newJunctionAddCommand(a *app) *cobra.Command {
	var lf lightFlags
	var lat, lon float64
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Append a junction to the network",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return errors.New("junction name must not be empty")
			}
			c, err := lf.cycle()
			if err != nil {
				return err
			}

			var id int
			if _, err := a.edit(func(_ *core.Graph, b *core.Builder) error {
				var err error
				id, err = b.AddVertexAt(name, c, lat, lon)
				return err
			}); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "junction %d (%s) added\n", id, name)

			return err
		},
	}
	lf.register(cmd)
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")

	return cmd
}

func newJunctionLightCommand(a *app) *cobra.Command {
	var lf lightFlags
	cmd := &cobra.Command{
		Use:   "light JUNCTION",
		Short: "Replace the light cycle of a junction",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := lf.cycle()
			if err != nil {
				return err
			}

			var id int
			g, err := a.edit(func(g *core.Graph, b *core.Builder) error {
				var err error
				if id, err = resolveJunction(g, args[0]); err != nil {
					return err
				}
				return b.SetLight(id, c)
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "junction %d (%s) light set to R:%d G:%d Y:%d\n",
				id, g.Name(id), c.Red, c.Green, c.Yellow)

			return err
		},
	}
	lf.register(cmd)

	return cmd
}

func newRoadCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "road",
		Short: "Add roads between junctions",
	}
	cmd.AddCommand(newRoadAddCommand(a))

	return cmd
}

func newRoadAddCommand(a *app) *cobra.Command {
	var weight int64
	cmd := &cobra.Command{
		Use:   "add FROM TO",
		Short: "Add a two-way road between junctions (ids or names)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if weight < 0 {
				return fmt.Errorf("--weight must be non-negative, got %d: %w", weight, core.ErrNegativeWeight)
			}
			var u, v int
			g, err := a.edit(func(g *core.Graph, b *core.Builder) error {
				var err error
				if u, err = resolveJunction(g, args[0]); err != nil {
					return err
				}
				if v, err = resolveJunction(g, args[1]); err != nil {
					return err
				}
				return b.AddEdge(u, v, weight)
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "road %s - %s (%d) added\n", g.Name(u), g.Name(v), weight)

			return err
		},
	}
	cmd.Flags().Int64VarP(&weight, "weight", "w", 1, "travel time along the road")

	return cmd
}
