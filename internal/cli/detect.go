package cli

import (
	"fmt"

	diimaging "github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/ironsheep/edgedraw/internal/imaging"
)

func newDetectCommand(a *app) *cobra.Command {
	var region []int

	cmd := &cobra.Command{
		Use:   "detect <input> <output>",
		Short: "Write the edge map of an image file",
		Long: `Run edge detection on <input> and save the binary edge map (white edges
on black) to <output>. The output format follows the extension: png, jpg,
gif, tif or bmp.`,
		Example: `  edgedraw detect photo.jpg edges.png
  edgedraw detect --operator scharr --blur 1.2 scan.png edges.png
  edgedraw detect --region 0,0,320,240 photo.jpg corner.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.cfg.EdgeOptions()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("region") {
				r, err := regionFromFlag(region)
				if err != nil {
					return err
				}
				opts.Region = &r
			}

			img, err := imaging.NewImageCache().Load(args[0])
			if err != nil {
				return err
			}

			edges, err := imaging.DetectEdges(img, opts)
			if err != nil {
				return err
			}

			if err := diimaging.Save(edges.ToGray(), args[1]); err != nil {
				return fmt.Errorf("failed to save %s: %w", args[1], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d, %d edge pixels (%s, %s)\n",
				args[1], edges.Width, edges.Height, imaging.CountEdges(edges),
				opts.Method, opts.Operator)
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&region, "region", nil, "restrict detection to x1,y1,x2,y2")
	return cmd
}

func regionFromFlag(v []int) (imaging.Region, error) {
	if len(v) != 4 {
		return imaging.Region{}, fmt.Errorf("region needs 4 values x1,y1,x2,y2, got %d", len(v))
	}
	return imaging.Region{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}
