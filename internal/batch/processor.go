package batch

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"bvh-pose-merger/internal/bvh"
	"bvh-pose-merger/internal/ipimocap"
	"bvh-pose-merger/internal/template"
)

// Config holds all shared resources for a merge run.
type Config struct {
	Template        *template.Template
	OutputName      string
	PoseGlob        string
	FrameTime       float64
	Workers         int
	UseCapturedRoot bool
	Verify          bool
	Logger          zerolog.Logger
	ProgressEvery   time.Duration
}

// Result holds the outcome of merging one capture directory.
type Result struct {
	Dir     string
	Output  string
	Poses   int
	Frames  int
	Success bool
	Error   string
}

// FindCaptureDirs lists the immediate subdirectories of root, sorted.
func FindCaptureDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("batch: list %s: %w", root, err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(root, e.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// Run merges every directory using a bounded worker pool. Results are in
// the order of dirs. Cancelling ctx stops dirs that have not started yet;
// they are reported with the context error.
func Run(ctx context.Context, cfg Config, dirs []string) []Result {
	total := len(dirs)
	results := make([]Result, total)
	var processed atomic.Int64
	log := cfg.Logger

	start := time.Now()
	every := cfg.ProgressEvery
	if every <= 0 {
		every = 2 * time.Second
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					log.Info().Int64("done", p).Int("total", total).Float64("dirsPerSec", rate).Msg("merge progress")
				}
			}
		}
	}()

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, dir := range dirs {
		if err := gctx.Err(); err != nil {
			results[i] = Result{Dir: dir, Error: err.Error()}
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{Dir: dir, Error: err.Error()}
				return nil
			}
			results[i] = processDir(cfg, dir)
			processed.Add(1)
			return nil
		})
	}
	_ = g.Wait()
	close(done)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	log.Info().Int("dirs", total).Int("failed", failed).Dur("elapsed", time.Since(start)).Msg("merge finished")
	return results
}

func processDir(cfg Config, dir string) Result {
	log := cfg.Logger.With().Str("dir", dir).Logger()
	res := Result{Dir: dir, Output: filepath.Join(dir, cfg.OutputName)}

	files, err := filepath.Glob(filepath.Join(dir, cfg.PoseGlob))
	if err != nil {
		res.Error = fmt.Sprintf("glob %s: %v", cfg.PoseGlob, err)
		return res
	}
	sort.Strings(files)
	res.Poses = len(files)

	frames := make([]bvh.Frame, 0, len(files))
	remap := ipimocap.NewRemapper(cfg.Template, cfg.UseCapturedRoot)
	for _, f := range files {
		pose, err := ipimocap.DecodeFile(f)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		frame, err := remap.Frame(pose)
		if err != nil {
			res.Error = fmt.Sprintf("%s: %v", filepath.Base(f), err)
			return res
		}
		frames = append(frames, frame)
	}

	if err := writeOutput(res.Output, cfg, frames); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Frames = len(frames) + 1

	if cfg.Verify {
		if err := verify(res.Output, cfg.Template.ChannelCount(), res.Frames); err != nil {
			res.Error = err.Error()
			return res
		}
	}

	log.Debug().Int("poses", res.Poses).Str("output", res.Output).Msg("merged")
	res.Success = true
	return res
}

// writeOutput writes the template model (dummy T-pose frame first) followed
// by one line per remapped pose. The clip is written to a temporary file
// beside path and renamed into place, so a failed write leaves no partial
// output behind.
func writeOutput(path string, cfg Config, frames []bvh.Frame) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(cfg.Template.Model(cfg.FrameTime, len(frames)+1)); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	for _, fr := range frames {
		if err := bvh.WriteFrame(w, fr); err != nil {
			return fmt.Errorf("batch: write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	return nil
}

func verify(path string, channels, frames int) error {
	skel, motion, err := bvh.ParseFile(path)
	if err != nil {
		return fmt.Errorf("batch: verify: %w", err)
	}
	if skel.ChannelCount != channels {
		return fmt.Errorf("batch: verify %s: %d channels, want %d", path, skel.ChannelCount, channels)
	}
	if motion.Len() != frames {
		return fmt.Errorf("batch: verify %s: %d frames, want %d", path, motion.Len(), frames)
	}
	return nil
}
