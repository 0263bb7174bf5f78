package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every tunable of bvhtool.
type Config struct {
	LogLevel string         `mapstructure:"logLevel"`
	Merge    MergeConfig    `mapstructure:"merge"`
	Template TemplateConfig `mapstructure:"template"`
	Preview  PreviewConfig  `mapstructure:"preview"`
}

// MergeConfig drives the capture-directory batch merge.
type MergeConfig struct {
	Root            string  `mapstructure:"root"`
	OutputName      string  `mapstructure:"outputName"`
	PoseGlob        string  `mapstructure:"poseGlob"`
	FrameTime       float64 `mapstructure:"frameTime"`
	Workers         int     `mapstructure:"workers"`
	UseCapturedRoot bool    `mapstructure:"useCapturedRoot"`
	Verify          bool    `mapstructure:"verify"`
	Manifest        string  `mapstructure:"manifest"`
}

// TemplateConfig picks the built-in skeleton written into merged clips.
type TemplateConfig struct {
	Variant string `mapstructure:"variant"`
}

// PreviewConfig controls the stick-figure renderer.
type PreviewConfig struct {
	Size        int     `mapstructure:"size"`
	Supersample int     `mapstructure:"supersample"`
	Yaw         float64 `mapstructure:"yaw"`   // degrees about +Y
	Pitch       float64 `mapstructure:"pitch"` // degrees about +X
	FillRatio   float64 `mapstructure:"fillRatio"`
	Backdrop    string  `mapstructure:"backdrop"`
}

// ManifestPath returns where the merge manifest goes: relative paths are
// taken against Root. Empty means no manifest.
func (m MergeConfig) ManifestPath() string {
	if m.Manifest == "" || filepath.IsAbs(m.Manifest) || m.Root == "" {
		return m.Manifest
	}
	return filepath.Join(m.Root, m.Manifest)
}

// EnvPrefix prefixes environment overrides, e.g. BVHTOOL_MERGE_WORKERS.
const EnvPrefix = "BVHTOOL"

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("merge.root", "")
	v.SetDefault("merge.outputName", "output.bvh")
	v.SetDefault("merge.poseGlob", "*.pose.xml")
	v.SetDefault("merge.frameTime", 0.5)
	v.SetDefault("merge.workers", 0)
	v.SetDefault("merge.useCapturedRoot", false)
	v.SetDefault("merge.verify", true)
	v.SetDefault("merge.manifest", "")

	v.SetDefault("template.variant", "plain")

	v.SetDefault("preview.size", 256)
	v.SetDefault("preview.supersample", 2)
	v.SetDefault("preview.yaw", 30.0)
	v.SetDefault("preview.pitch", -10.0)
	v.SetDefault("preview.fillRatio", 0.8)
	v.SetDefault("preview.backdrop", "")
}

// Load reads an optional config file (JSON, YAML or TOML by extension) over
// the built-in defaults, then applies BVHTOOL_* environment overrides.
// An empty path loads defaults and environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Root      string
	Workers   int
	FrameTime float64
	Variant   string
	LogLevel  string
}

// Resolve applies non-zero flags and fills derived defaults. It only fills
// zero values, so calling it again with the same flags changes nothing.
func (c *Config) Resolve(flags Flags) {
	if flags.Root != "" {
		c.Merge.Root = flags.Root
	}
	if flags.Workers > 0 {
		c.Merge.Workers = flags.Workers
	}
	if flags.FrameTime > 0 {
		c.Merge.FrameTime = flags.FrameTime
	}
	if flags.Variant != "" {
		c.Template.Variant = flags.Variant
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	if c.Merge.Workers <= 0 {
		c.Merge.Workers = runtime.NumCPU()
	}
	if c.Merge.OutputName == "" {
		c.Merge.OutputName = "output.bvh"
	}
	if c.Merge.PoseGlob == "" {
		c.Merge.PoseGlob = "*.pose.xml"
	}
	if c.Merge.FrameTime <= 0 {
		c.Merge.FrameTime = 0.5
	}

	if c.Preview.Size <= 0 {
		c.Preview.Size = 256
	}
	if c.Preview.Supersample <= 0 {
		c.Preview.Supersample = 2
	}
	if c.Preview.FillRatio <= 0 || c.Preview.FillRatio > 1 {
		c.Preview.FillRatio = 0.8
	}
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	var errs []error
	if _, err := filepath.Match(c.Merge.PoseGlob, "x"); err != nil {
		errs = append(errs, fmt.Errorf("merge.poseGlob %q: %w", c.Merge.PoseGlob, err))
	}
	if strings.ContainsAny(c.Merge.OutputName, `/\`) {
		errs = append(errs, fmt.Errorf("merge.outputName %q must be a file name", c.Merge.OutputName))
	}
	switch c.Template.Variant {
	case "plain", "dummy":
	default:
		errs = append(errs, fmt.Errorf("template.variant %q: want plain or dummy", c.Template.Variant))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
