package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trafficpath/export"
)

func newExportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the network for Graphviz or a browser",
	}
	cmd.AddCommand(newExportDOTCommand(a), newExportMapCommand(a))

	return cmd
}

func newExportDOTCommand(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Write an undirected Graphviz DOT file",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			g, err := a.loadNetwork(false)
			if err != nil {
				return err
			}
			if out == "" {
				out = a.cfg.Export.DOTFile
			}
			if err := a.withOutput(out, func(w io.Writer) error { return export.WriteDOT(w, g) }); err != nil {
				return err
			}
			if out == stdoutPath {
				return nil
			}
			_, err = fmt.Fprintf(a.out, "GraphViz DOT exported to %s\n", out)

			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", `destination file, "-" for stdout (overrides TRAFFIC_DOT_FILE)`)

	return cmd
}

func newExportMapCommand(a *app) *cobra.Command {
	var out, from, to, title string
	var depart int64
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Write an interactive Leaflet map, optionally with a route",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if (from == "") != (to == "") {
				return errors.New("--from and --to must be given together")
			}
			g, err := a.loadNetwork(false)
			if err != nil {
				return err
			}

			var route []int
			if from != "" {
				res, _, err := a.route(g, from, to, depart)
				if err != nil {
					return err
				}
				route = res.Path
			}

			if out == "" {
				out = a.cfg.Export.MapFile
			}
			opts := []export.MapOption{}
			if title != "" {
				opts = append(opts, export.WithTitle(title))
			}
			if err := a.withOutput(out, func(w io.Writer) error {
				return export.WriteLeafletMap(w, g, route, opts...)
			}); err != nil {
				return err
			}
			if out == stdoutPath {
				return nil
			}
			_, err = fmt.Fprintf(a.out, "Interactive map exported to %s\n", out)

			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "", `destination file, "-" for stdout (overrides TRAFFIC_MAP_FILE)`)
	f.StringVar(&from, "from", "", "route source junction id or name")
	f.StringVar(&to, "to", "", "route destination junction id or name")
	f.Int64Var(&depart, "depart", 0, "clock value at departure")
	f.StringVar(&title, "title", "", "page title")

	return cmd
}
