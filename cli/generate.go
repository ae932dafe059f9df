package cli

import (
	"github.com/spf13/cobra"
)

func newGenerateCommand(root *rootOptions) *cobra.Command {
	var (
		out    string
		format string
		bf     *brickFlags
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single brick and export it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bf.resolve()
			if err != nil {
				return err
			}
			e, err := root.engine()
			if err != nil {
				return err
			}
			defer e.Shutdown()

			b, err := e.Generate(cfg)
			if err != nil {
				return err
			}
			if out == "-" {
				return e.ExportTo(b, cmd.OutOrStdout(), format)
			}
			return e.Export(b, out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "brick.obj", "output file, or - for stdout")
	cmd.Flags().StringVar(&format, "format", "obj", "format used when writing to stdout")
	bf = addBrickFlags(cmd.Flags())
	return cmd
}
