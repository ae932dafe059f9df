package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/brickforge/engine/geometry"
)

func newInfoCommand(root *rootOptions) *cobra.Command {
	var bf *brickFlags

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the counts and bounds of a brick without writing it",
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

			pv, pf := geometry.Counts(b.Config)
			ext := b.Mesh.Extents()
			size := ext.Size()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:      %s\n", b.Name)
			fmt.Fprintf(out, "id:        %s\n", b.ID)
			fmt.Fprintf(out, "size:      %dx%dx%d\n", b.Config.Width, b.Config.Depth, b.Config.Height)
			fmt.Fprintf(out, "vertices:  %d (predicted %d)\n", b.Mesh.VertexCount(), pv)
			fmt.Fprintf(out, "faces:     %d (predicted %d)\n", b.Mesh.FaceCount(), pf)
			fmt.Fprintf(out, "triangles: %d\n", b.Mesh.TriangleCount())
			fmt.Fprintf(out, "extents:   %.4f x %.4f x %.4f\n", size.X, size.Y, size.Z)
			fmt.Fprintf(out, "elapsed:   %s\n", b.Elapsed)
			return nil
		},
	}

	bf = addBrickFlags(cmd.Flags())
	return cmd
}
