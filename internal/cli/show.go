package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trafficpath/bfs"
	"github.com/katalvlaran/trafficpath/export"
)

func newShowCommand(a *app) *cobra.Command {
	var stats bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the network as an adjacency list",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			g, err := a.loadNetwork(false)
			if err != nil {
				return err
			}
			if err := export.WriteAdjacency(a.out, g); err != nil {
				return err
			}
			if stats {
				s := g.Stats()
				_, components := bfs.Components(g)
				_, err = fmt.Fprintf(a.out, "junctions=%d roads=%d arcs=%d self-loops=%d always-green=%d components=%d\n",
					s.Vertices, s.Roads, s.Arcs, s.SelfLoops, s.DegenerateLights, components)
			}

			return err
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "append network statistics")

	return cmd
}
