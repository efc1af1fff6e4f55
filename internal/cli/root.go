package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/trafficpath/internal/config"
	"github.com/katalvlaran/trafficpath/internal/logging"
)

// NewRootCommand returns the trafficpath command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	return newRootCommand(newApp(out, errOut), true)
}

// newRootCommand wires the tree around a; buildLogger false keeps a.logger.
func newRootCommand(a *app, buildLogger bool) *cobra.Command {
	root := &cobra.Command{
		Use:   "trafficpath",
		Short: "Time-dependent routing through signalised road networks",
		Long: `trafficpath finds the fastest route between two junctions of a road
network whose junctions run repeating red/green/yellow light cycles.
Arriving outside the green window costs a wait until the next cycle starts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.flags.envFiles...)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("data") {
				cfg.Network.DataFile = a.flags.dataFile
			}
			if flags.Changed("capacity") {
				cfg.Network.Capacity = a.flags.capacity
			}
			if flags.Changed("log-level") {
				cfg.Logging.Level = a.flags.logLevel
			}
			if flags.Changed("log-format") {
				cfg.Logging.Format = a.flags.logFormat
			}
			if cfg.Network.Capacity <= 0 {
				return errCapacity(cfg.Network.Capacity)
			}
			if err := cfg.Logging.Validate(); err != nil {
				return err
			}
			a.cfg = cfg

			if buildLogger {
				logger, err := logging.New(cfg.Logging)
				if err != nil {
					return err
				}
				a.logger = logger.With(zap.String("command", cmd.Name()))
			}

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringSliceVar(&a.flags.envFiles, "env-file", nil, "dotenv files read before the environment (default .env)")
	pf.StringVarP(&a.flags.dataFile, "data", "d", "", "network file, legacy text or .yaml (overrides TRAFFIC_DATA_FILE)")
	pf.IntVar(&a.flags.capacity, "capacity", 0, "maximum number of junctions (overrides TRAFFIC_CAPACITY)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "console or json (overrides LOG_FORMAT)")

	root.AddCommand(
		newShowCommand(a),
		newRouteCommand(a),
		newReachCommand(a),
		newExportCommand(a),
		newGenerateCommand(a),
		newConvertCommand(a),
		newJunctionCommand(a),
		newRoadCommand(a),
		newNeo4jCommand(a),
	)

	return root
}

func errCapacity(n int) error {
	return fmt.Errorf("capacity must be positive, got %d", n)
}
