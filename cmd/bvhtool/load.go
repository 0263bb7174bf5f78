package main

import (
	"fmt"

	"bvh-pose-merger/internal/bvh"
	"bvh-pose-merger/internal/skeleton"
)

// loadPose parses path and evaluates frame n, or the rest pose when rest is
// set. The returned frame index is -1 for the rest pose.
func loadPose(path string, n int, rest bool) (*bvh.Skeleton, *bvh.Motion, skeleton.Pose, int, error) {
	skel, motion, err := bvh.ParseFile(path, bvh.WithLogger(logger))
	if err != nil {
		return nil, nil, skeleton.Pose{}, 0, err
	}
	if rest {
		return skel, motion, skeleton.Rest(skel), -1, nil
	}
	f, ok := motion.Frame(n)
	if !ok {
		return nil, nil, skeleton.Pose{}, 0, fmt.Errorf("%s: frame %d out of range (%d frames)", path, n, motion.Len())
	}
	return skel, motion, skeleton.Evaluate(skel, f), n, nil
}
