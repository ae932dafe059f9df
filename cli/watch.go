package cli

import (
	"github.com/spf13/cobra"
)

func newWatchCommand(root *rootOptions) *cobra.Command {
	var (
		out string
		bf  *brickFlags
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate a brick every time its config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := root.engine()
			if err != nil {
				return err
			}
			defer e.Shutdown()
			return e.Watch(cmd.Context(), bf.configPath, out, bf.apply)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "brick.obj", "output file")
	bf = addBrickFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
