package bvh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatValue renders v with six decimals and no trailing zeros, never in
// scientific notation: 83 -> "83", 0.5 -> "0.5", 1e-7 -> "0".
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

// WriteFrame writes one motion line.
func WriteFrame(w io.Writer, f Frame) error {
	var sb strings.Builder
	for i, v := range f {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(FormatValue(v))
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// MotionHeader returns the MOTION section header for n frames.
func MotionHeader(frameTime float64, frames int) string {
	return fmt.Sprintf("MOTION\nFrames: %d\nFrame Time: %.7f\n", frames, frameTime)
}

// Encode writes skel and motion back as BVH text. A nil motion omits the
// MOTION section.
//
// Leaf nodes are always written as End Site blocks. A JOINT declared without
// children therefore comes back as a non-addressable end site: Nodes and
// ChannelCount survive the round trip, Joints and NameToIndex lose it. A
// leaf that carries channels cannot be written this way and is an error.
func Encode(w io.Writer, skel *Skeleton, motion *Motion) error {
	for _, n := range skel.Nodes {
		if n.IsEndSite() && len(n.Channels) > 0 {
			return fmt.Errorf("bvh: encode: leaf node %d under %q has %d channels", n.ID, parentName(skel, n), len(n.Channels))
		}
	}

	bw := bufio.NewWriter(w)
	bw.WriteString("HIERARCHY\n")
	writeJoint(bw, skel.Root, 0)

	if motion != nil {
		bw.WriteString(MotionHeader(motion.FrameTime, len(motion.Frames)))
		for _, f := range motion.Frames {
			if err := WriteFrame(bw, f); err != nil {
				return fmt.Errorf("bvh: encode: %w", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("bvh: encode: %w", err)
	}
	return nil
}

func writeJoint(bw *bufio.Writer, j *Joint, depth int) {
	indent := strings.Repeat("\t", depth)
	switch {
	case j.IsRoot:
		fmt.Fprintf(bw, "%sROOT %s\n", indent, j.Name)
	case j.IsEndSite():
		fmt.Fprintf(bw, "%sEnd Site\n", indent)
	default:
		fmt.Fprintf(bw, "%sJOINT %s\n", indent, j.Name)
	}
	fmt.Fprintf(bw, "%s{\n", indent)

	fmt.Fprintf(bw, "%s\tOFFSET %s %s %s\n", indent,
		FormatValue(j.Offset[0]), FormatValue(j.Offset[1]), FormatValue(j.Offset[2]))
	if len(j.Channels) > 0 {
		names := make([]string, len(j.Channels))
		for i, ch := range j.Channels {
			names[i] = ch.String()
		}
		fmt.Fprintf(bw, "%s\tCHANNELS %d %s\n", indent, len(j.Channels), strings.Join(names, " "))
	}
	for _, c := range j.Children {
		writeJoint(bw, c, depth+1)
	}
	fmt.Fprintf(bw, "%s}\n", indent)
}

func parentName(skel *Skeleton, n *Joint) string {
	if p := skel.Parent(n.ID); p != nil {
		return p.Name
	}
	return ""
}
