package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trafficpath/builder"
	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/light"
)

var generateExample = `  # 4x5 grid with random weights and lights, saved as YAML
  trafficpath generate grid --rows 4 --cols 5 --max-weight 20 --lights random --out grid.yaml

  # reproducible random network
  trafficpath generate random --n 30 --p 0.15 --seed 7`

var topologies = []string{"path", "cycle", "star", "wheel", "complete", "grid", "random"}

type generateOptions struct {
	n          int
	rows, cols int
	p          float64
	seed       int64
	minWeight  int64
	maxWeight  int64
	lights     string
	names      string
	out        string
}

func (o *generateOptions) constructor(kind string) (builder.Constructor, error) {
	switch kind {
	case "path":
		return builder.Path(o.n), nil
	case "cycle":
		return builder.Cycle(o.n), nil
	case "star":
		return builder.Star(o.n), nil
	case "wheel":
		return builder.Wheel(o.n), nil
	case "complete":
		return builder.Complete(o.n), nil
	case "grid":
		return builder.Grid(o.rows, o.cols), nil
	case "random":
		return builder.RandomSparse(o.n, o.p), nil
	default:
		return nil, fmt.Errorf("unknown topology %q, want one of %s", kind, strings.Join(topologies, ", "))
	}
}

func (o *generateOptions) builderOptions() ([]builder.BuilderOption, error) {
	if o.minWeight < 0 || o.maxWeight < o.minWeight {
		return nil, fmt.Errorf("need 0 <= --min-weight <= --max-weight, got %d..%d", o.minWeight, o.maxWeight)
	}
	opts := []builder.BuilderOption{
		builder.WithSeed(o.seed),
		builder.WithUniformWeight(o.minWeight, o.maxWeight),
	}

	switch o.lights {
	case "default":
	case "none":
		opts = append(opts, builder.WithLightFn(builder.NoLightFn))
	case "random":
		opts = append(opts, builder.WithRandomLights(2*light.DefaultRed, 2*light.DefaultGreen, 2*light.DefaultYellow))
	default:
		return nil, fmt.Errorf("unknown --lights %q, want default, none or random", o.lights)
	}

	switch o.names {
	case "junction":
	case "decimal":
		opts = append(opts, builder.WithIDScheme(builder.DecimalIDFn))
	case "letters":
		opts = append(opts, builder.WithIDScheme(builder.ExcelColumnIDFn))
	default:
		return nil, fmt.Errorf("unknown --names %q, want junction, decimal or letters", o.names)
	}

	return opts, nil
}

func newGenerateCommand(a *app) *cobra.Command {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:       "generate TOPOLOGY",
		Short:     "Write a synthetic network (" + strings.Join(topologies, "|") + ")",
		Example:   generateExample,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: topologies,
		RunE: func(_ *cobra.Command, args []string) error {
			cons, err := o.constructor(args[0])
			if err != nil {
				return err
			}
			bopts, err := o.builderOptions()
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithCapacity(a.cfg.Network.Capacity)},
				bopts,
				cons,
			)
			if err != nil {
				return err
			}

			out := o.out
			if out == "" {
				out = a.cfg.Network.DataFile
			}
			if err := a.saveNetwork(out, g); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "generated %s network: %d junctions, %d roads -> %s\n",
				args[0], g.VertexCount(), g.RoadCount(), out)

			return err
		},
	}

	f := cmd.Flags()
	f.IntVar(&o.n, "n", 10, "number of junctions (path, cycle, star, wheel, complete, random)")
	f.IntVar(&o.rows, "rows", 3, "grid rows")
	f.IntVar(&o.cols, "cols", 3, "grid columns")
	f.Float64Var(&o.p, "p", 0.3, "road probability for random networks")
	f.Int64Var(&o.seed, "seed", 1, "random seed")
	f.Int64Var(&o.minWeight, "min-weight", 1, "smallest road weight")
	f.Int64Var(&o.maxWeight, "max-weight", 10, "largest road weight")
	f.StringVar(&o.lights, "lights", "default", "default, none or random")
	f.StringVar(&o.names, "names", "junction", "junction (J0,J1,...), decimal or letters")
	f.StringVarP(&o.out, "out", "o", "", "destination file (defaults to the data file)")

	return cmd
}
