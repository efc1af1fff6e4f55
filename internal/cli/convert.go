package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trafficpath/store"
)

func newConvertCommand(a *app) *cobra.Command {
	var out, format string
	cmd := &cobra.Command{
		Use:   "convert --out FILE",
		Short: "Re-encode the network as legacy text or YAML",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if out == "" {
				return errors.New("--out is required")
			}
			f := store.FormatFor(out)
			if format != "" {
				var err error
				if f, err = store.ParseFormat(format); err != nil {
					return err
				}
			}

			g, err := a.loadNetwork(false)
			if err != nil {
				return err
			}
			if err := a.withOutput(out, func(w io.Writer) error { return store.Write(w, g, f) }); err != nil {
				return err
			}
			if out == stdoutPath {
				return nil
			}
			_, err = fmt.Fprintf(a.out, "converted %s -> %s (%s)\n", a.cfg.Network.DataFile, out, f)

			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", `destination file, "-" for stdout`)
	cmd.Flags().StringVar(&format, "format", "", "legacy or yaml (default: from the --out extension)")

	return cmd
}
