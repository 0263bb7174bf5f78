package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"bvh-pose-merger/internal/batch"
	"bvh-pose-merger/internal/config"
	"bvh-pose-merger/internal/template"
)

func newMergeCmd() *cobra.Command {
	var (
		workers      int
		frameTime    float64
		variant      string
		capturedRoot bool
		noVerify     bool
		manifest     string
	)

	cmd := &cobra.Command{
		Use:   "merge [root]",
		Short: "Merge every capture directory under root into one BVH clip each",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := config.Flags{Workers: workers, FrameTime: frameTime, Variant: variant}
			if len(args) == 1 {
				flags.Root = args[0]
			}
			if cmd.Flags().Changed("captured-root") {
				cfg.Merge.UseCapturedRoot = capturedRoot
			}
			if noVerify {
				cfg.Merge.Verify = false
			}
			if manifest != "" {
				cfg.Merge.Manifest = manifest
			}
			cfg.Resolve(flags)
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Merge.Root == "" {
				return fmt.Errorf("no capture root: pass it as an argument or set merge.root")
			}

			tmpl, err := template.Get(template.Variant(cfg.Template.Variant))
			if err != nil {
				return err
			}
			dirs, err := batch.FindCaptureDirs(cfg.Merge.Root)
			if err != nil {
				return err
			}
			logger.Info().
				Str("root", cfg.Merge.Root).
				Int("dirs", len(dirs)).
				Int("workers", cfg.Merge.Workers).
				Str("variant", string(tmpl.Variant())).
				Msg("merging captures")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			start := time.Now()
			results := batch.Run(ctx, batch.Config{
				Template:        tmpl,
				OutputName:      cfg.Merge.OutputName,
				PoseGlob:        cfg.Merge.PoseGlob,
				FrameTime:       cfg.Merge.FrameTime,
				Workers:         cfg.Merge.Workers,
				UseCapturedRoot: cfg.Merge.UseCapturedRoot,
				Verify:          cfg.Merge.Verify,
				Logger:          logger,
			}, dirs)

			var ok, failed int
			for _, r := range results {
				if r.Success {
					ok++
					continue
				}
				failed++
				logger.Error().Str("dir", filepath.Base(r.Dir)).Str("error", r.Error).Msg("merge failed")
			}

			if path := cfg.Merge.ManifestPath(); path != "" {
				if err := batch.WriteManifest(path, results); err != nil {
					return fmt.Errorf("write manifest: %w", err)
				}
				logger.Info().Str("path", path).Msg("manifest written")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Done: %d merged, %d failed in %s\n", ok, failed, time.Since(start).Round(time.Millisecond))
			if failed > 0 {
				return fmt.Errorf("%d of %d capture directories failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "Number of worker goroutines (default: NumCPU)")
	cmd.Flags().Float64Var(&frameTime, "frame-time", 0, "Seconds per frame (default: merge.frameTime)")
	cmd.Flags().StringVar(&variant, "variant", "", "Template skeleton: plain or dummy")
	cmd.Flags().BoolVar(&capturedRoot, "captured-root", false, "Use the captured root translation instead of the T-pose height")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip re-parsing each written clip")
	cmd.Flags().StringVar(&manifest, "manifest", "", "Write a JSON manifest of the run to this path")

	return cmd
}
