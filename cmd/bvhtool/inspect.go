package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bvh-pose-merger/internal/bvh"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.bvh>",
		Short: "Print the skeleton tree and motion summary of a BVH file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			skel, motion, err := bvh.ParseFile(args[0], bvh.WithLogger(logger))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printTree(w, skel.Root, 0)
			fmt.Fprintf(w, "\njoints: %d  nodes: %d  channels: %d\n", len(skel.Joints), len(skel.Nodes), skel.ChannelCount)
			if motion == nil {
				fmt.Fprintln(w, "motion: none")
				return nil
			}
			fmt.Fprintf(w, "frames: %d  frame time: %s\n", motion.Len(), bvh.FormatValue(motion.FrameTime))
			return nil
		},
	}
}

func printTree(w io.Writer, j *bvh.Joint, depth int) {
	names := make([]string, len(j.Channels))
	for i, ch := range j.Channels {
		names[i] = ch.String()
	}
	fmt.Fprintf(w, "%s%s  offset %s %s %s",
		strings.Repeat("  ", depth), j.Name,
		bvh.FormatValue(j.Offset[0]), bvh.FormatValue(j.Offset[1]), bvh.FormatValue(j.Offset[2]))
	if len(names) > 0 {
		fmt.Fprintf(w, "  [%s]", strings.Join(names, " "))
	}
	fmt.Fprintln(w)
	for _, c := range j.Children {
		printTree(w, c, depth+1)
	}
}
