package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/brickforge/engine/core"
	"github.com/spaghettifunk/brickforge/engine/geometry"
)

// parseSize reads a "WxDxH" triple such as 2x4x1.
func parseSize(s string) (w, d, h int, err error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("size %q is not WxDxH: %w", s, core.ErrDegenerateInput)
	}
	var dims [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("size %q: %w", s, err)
		}
		dims[i] = v
	}
	return dims[0], dims[1], dims[2], nil
}

func newBatchCommand(root *rootOptions) *cobra.Command {
	var (
		sizes  []string
		outDir string
		format string
		bf     *brickFlags
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate several brick sizes concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := bf.resolve()
			if err != nil {
				return err
			}

			cfgs := make([]geometry.BrickConfig, 0, len(sizes))
			for _, s := range sizes {
				w, d, h, err := parseSize(s)
				if err != nil {
					return err
				}
				cfg := base
				cfg.Width, cfg.Depth, cfg.Height = w, d, h
				cfg.Name = fmt.Sprintf("%s_%dx%dx%d", base.Name, w, d, h)
				cfgs = append(cfgs, cfg)
			}

			e, err := root.engine()
			if err != nil {
				return err
			}
			defer e.Shutdown()

			bricks, genErr := e.GenerateBatch(cmd.Context(), cfgs)
			for _, b := range bricks {
				if b == nil {
					continue
				}
				path := filepath.Join(outDir, b.Name+"."+strings.TrimPrefix(format, "."))
				if err := e.Export(b, path); err != nil {
					return err
				}
			}
			return genErr
		},
	}

	cmd.Flags().StringSliceVar(&sizes, "sizes", []string{"1x1x1", "2x2x1", "2x4x1"}, "comma separated WxDxH sizes")
	cmd.Flags().StringVar(&outDir, "out-dir", "bricks", "output directory")
	cmd.Flags().StringVar(&format, "format", "obj", "export format (obj, stl, json)")
	bf = addBrickFlags(cmd.Flags())
	return cmd
}
