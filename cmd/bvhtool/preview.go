package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bvh-pose-merger/internal/preview"
)

func newPreviewCmd() *cobra.Command {
	var (
		frame    int
		rest     bool
		output   string
		size     int
		yaw      float64
		pitch    float64
		backdrop string
	)

	cmd := &cobra.Command{
		Use:   "preview <file.bvh>",
		Short: "Render a stick-figure WebP preview of one frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pc := cfg.Preview
			if size > 0 {
				pc.Size = size
			}
			if cmd.Flags().Changed("yaw") {
				pc.Yaw = yaw
			}
			if cmd.Flags().Changed("pitch") {
				pc.Pitch = pitch
			}
			if backdrop != "" {
				pc.Backdrop = backdrop
			}

			skel, _, pose, n, err := loadPose(args[0], frame, rest)
			if err != nil {
				return err
			}

			opts := preview.Options{
				Size:        pc.Size,
				Supersample: pc.Supersample,
				Yaw:         pc.Yaw,
				Pitch:       pc.Pitch,
				FillRatio:   pc.FillRatio,
			}
			if pc.Backdrop != "" {
				bg, err := preview.LoadBackdrop(pc.Backdrop)
				if err != nil {
					return err
				}
				opts.Backdrop = bg
			}

			if output == "" {
				output = defaultPreviewPath(args[0], n)
			}
			img := preview.Render(skel, pose, opts)
			if err := preview.WriteFile(output, img); err != nil {
				return err
			}
			logger.Info().Str("output", output).Int("size", pc.Size).Msg("preview written")
			return nil
		},
	}

	cmd.Flags().IntVar(&frame, "frame", 0, "Frame index to render")
	cmd.Flags().BoolVar(&rest, "rest", false, "Render the rest pose instead of a frame")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output .webp path (default: next to the input)")
	cmd.Flags().IntVar(&size, "size", 0, "Image size in pixels (default: preview.size)")
	cmd.Flags().Float64Var(&yaw, "yaw", 0, "View yaw in degrees")
	cmd.Flags().Float64Var(&pitch, "pitch", 0, "View pitch in degrees")
	cmd.Flags().StringVar(&backdrop, "backdrop", "", "Backdrop image (png, jpeg or tga)")

	return cmd
}

func defaultPreviewPath(in string, frame int) string {
	base := strings.TrimSuffix(in, filepath.Ext(in))
	if frame < 0 {
		return base + ".rest.webp"
	}
	return fmt.Sprintf("%s.%d.webp", base, frame)
}
