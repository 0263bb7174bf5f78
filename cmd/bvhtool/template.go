package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bvh-pose-merger/internal/template"
)

func newTemplateCmd() *cobra.Command {
	var (
		frames    int
		frameTime float64
		variant   string
		bare      bool
	)

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print the built-in template skeleton as a BVH document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := template.Variant(cfg.Template.Variant)
			if variant != "" {
				v = template.Variant(variant)
			}
			if frameTime <= 0 {
				frameTime = cfg.Merge.FrameTime
			}
			if frames < 1 {
				return fmt.Errorf("--frames must be at least 1")
			}

			tmpl, err := template.Get(v)
			if err != nil {
				return err
			}
			out := tmpl.Model(frameTime, frames)
			if bare {
				out = tmpl.ModelWithoutAngles(frameTime, frames)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 1, "Frame count announced in the MOTION header")
	cmd.Flags().Float64Var(&frameTime, "frame-time", 0, "Seconds per frame (default: merge.frameTime)")
	cmd.Flags().StringVar(&variant, "variant", "", "Template skeleton: plain or dummy")
	cmd.Flags().BoolVar(&bare, "bare", false, "Omit the T-pose frame line")

	return cmd
}
