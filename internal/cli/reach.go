package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trafficpath/bfs"
)

var reachExample = `  # every junction reachable from Mumbai
  trafficpath reach --from Mumbai

  # only junctions at most two roads away
  trafficpath reach --from 0 --max-hops 2`

type reachOptions struct {
	from    string
	maxHops int
}

func (o *reachOptions) Validate() error {
	if o.from == "" {
		return errors.New("--from is required")
	}
	if o.maxHops < 0 {
		return fmt.Errorf("--max-hops must be non-negative, got %d", o.maxHops)
	}

	return nil
}

func newReachCommand(a *app) *cobra.Command {
	o := &reachOptions{}
	cmd := &cobra.Command{
		Use:     "reach --from JUNCTION",
		Short:   "List junctions reachable from a junction, ignoring lights",
		Example: reachExample,
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			g, err := a.loadNetwork(false)
			if err != nil {
				return err
			}
			start, err := resolveJunction(g, o.from)
			if err != nil {
				return err
			}

			res, err := bfs.BFS(g, start, bfs.WithContext(c.Context()), bfs.WithMaxDepth(o.maxHops))
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(a.out, "Reachable from %s: %d of %d junctions\n",
				g.Name(start), len(res.Order), g.VertexCount()); err != nil {
				return err
			}
			for _, id := range res.Order {
				if _, err := fmt.Fprintf(a.out, "  %d (%s) roads=%d\n", id, g.Name(id), res.Depth[id]); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&o.from, "from", "", "start junction id or name")
	cmd.Flags().IntVar(&o.maxHops, "max-hops", 0, "stop after this many roads, 0 for no limit")

	return cmd
}
