package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"bvh-pose-merger/internal/export"
)

func newPoseCmd() *cobra.Command {
	var (
		frame  int
		rest   bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "pose <file.bvh>",
		Short: "Evaluate world positions and rotations of every joint for one frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			skel, motion, pose, n, err := loadPose(args[0], frame, rest)
			if err != nil {
				return err
			}
			doc := export.Document{
				Source: filepath.Base(args[0]),
				Frame:  n,
				Joints: export.Records(skel, pose),
			}
			if motion != nil {
				doc.FrameTime = motion.FrameTime
			}
			return export.Write(cmd.OutOrStdout(), f, doc)
		},
	}

	cmd.Flags().IntVar(&frame, "frame", 0, "Frame index to evaluate")
	cmd.Flags().BoolVar(&rest, "rest", false, "Evaluate the rest pose instead of a frame")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: json, yaml or text")

	return cmd
}
