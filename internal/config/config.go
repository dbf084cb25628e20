package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Variant selects how each sensor's orientation is written.
type Variant int

const (
	// Matrix writes an explicit 4×4 to_world matrix per camera.
	Matrix Variant = iota
	// LookAt writes a target/origin/up triple per camera.
	LookAt
)

func (v Variant) String() string {
	if v == LookAt {
		return "lookat"
	}
	return "matrix"
}

// Config holds the camera array parameters and output settings.
type Config struct {
	Variant Variant `json:"-"`

	// Array geometry
	Rows           int     `json:"rows"`
	Cols           int     `json:"cols"`
	Offset         float64 `json:"offset"`
	ToWorld        string  `json:"to_world"`
	Name           string  `json:"name"`
	ApertureRadius float64 `json:"radius"`
	FOV            float64 `json:"fov"`
	FocusDistance  float64 `json:"distance"`
	ViewCone       float64 `json:"viewcone"` // lookat only

	// Output
	OutputDir   string `json:"output_dir"`
	Preview     string `json:"preview"`
	PreviewSize int    `json:"preview_size"`
	Supersample int    `json:"supersample"`
	Manifest    bool   `json:"manifest"`
}

// Cameras returns the total number of cameras in the array.
func (c Config) Cameras() int {
	return c.Rows * c.Cols
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI flags over the loaded values and fills output defaults.
// CLI flags take priority when non-zero/non-empty. Geometry has no defaults.
func (c *Config) Resolve(flags Flags) {
	c.Variant = flags.Variant

	if flags.Rows != 0 {
		c.Rows = flags.Rows
	}
	if flags.Cols != 0 {
		c.Cols = flags.Cols
	}
	if flags.Offset != 0 {
		c.Offset = flags.Offset
	}
	if flags.ToWorld != "" {
		c.ToWorld = flags.ToWorld
	}
	if flags.Name != "" {
		c.Name = flags.Name
	}
	if flags.ApertureRadius != 0 {
		c.ApertureRadius = flags.ApertureRadius
	}
	if flags.FOV != 0 {
		c.FOV = flags.FOV
	}
	if flags.FocusDistance != 0 {
		c.FocusDistance = flags.FocusDistance
	}
	if flags.ViewCone != 0 {
		c.ViewCone = flags.ViewCone
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Preview != "" {
		c.Preview = flags.Preview
	}
	if flags.PreviewSize > 0 {
		c.PreviewSize = flags.PreviewSize
	}
	if flags.Manifest {
		c.Manifest = true
	}

	if c.Variant != LookAt {
		c.ViewCone = 0
	}

	// Defaults for output settings
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.PreviewSize <= 0 {
		c.PreviewSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Variant Variant

	ConfigFile string

	Rows           int
	Cols           int
	Offset         float64
	ToWorld        string
	Name           string
	ApertureRadius float64
	FOV            float64
	FocusDistance  float64
	ViewCone       float64

	OutputDir   string
	Preview     string
	PreviewSize int
	Manifest    bool
}

// FromFlags loads flags.ConfigFile when set and resolves the flags over it.
func FromFlags(flags Flags) (Config, error) {
	var cfg Config
	if flags.ConfigFile != "" {
		var err error
		cfg, err = Load(flags.ConfigFile)
		if err != nil {
			return Config{}, err
		}
	}
	cfg.Resolve(flags)
	return cfg, nil
}
