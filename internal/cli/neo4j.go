package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newNeo4jCommand(a *app) *cobra.Command {
	var network string
	cmd := &cobra.Command{
		Use:   "neo4j",
		Short: "Synchronise networks with a Neo4j database (GRAPH_URI)",
	}
	cmd.PersistentFlags().StringVar(&network, "network", "", "network name (overrides TRAFFIC_NETWORK)")
	name := func() string {
		if network != "" {
			return network
		}
		return a.cfg.Network.Name
	}

	push := &cobra.Command{
		Use:   "push",
		Short: "Replace the stored network with the data file",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			g, err := a.loadNetwork(false)
			if err != nil {
				return err
			}
			repo, closeFn, err := a.repository(c.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			if err := repo.Save(c.Context(), name(), g); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "pushed %s: %d junctions, %d roads\n", name(), g.VertexCount(), g.RoadCount())

			return err
		},
	}

	var out string
	pull := &cobra.Command{
		Use:   "pull",
		Short: "Write the stored network to the data file",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			repo, closeFn, err := a.repository(c.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			g, err := repo.Load(c.Context(), name())
			if err != nil {
				return err
			}
			if out == "" {
				out = a.cfg.Network.DataFile
			}
			if err := a.saveNetwork(out, g); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "pulled %s: %d junctions, %d roads -> %s\n", name(), g.VertexCount(), g.RoadCount(), out)

			return err
		},
	}
	pull.Flags().StringVarP(&out, "out", "o", "", "destination file (defaults to the data file)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored network names",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			repo, closeFn, err := a.repository(c.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			names, err := repo.Networks(c.Context())
			if err != nil {
				return err
			}
			if len(names) == 0 {
				return nil
			}
			_, err = fmt.Fprintln(a.out, strings.Join(names, "\n"))

			return err
		},
	}

	del := &cobra.Command{
		Use:   "delete",
		Short: "Remove the stored network",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			repo, closeFn, err := a.repository(c.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			if err := repo.Delete(c.Context(), name()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "deleted %s\n", name())

			return err
		},
	}

	cmd.AddCommand(push, pull, list, del)

	return cmd
}
