// Package config builds a grpol.Config from a TOML/YAML/JSON file and
// command-line flags, the same viper+pflag combination the teacher used
// for its own configuration surface (config.go's smdConfig), generalized
// from a package-level singleton into a plain constructor that returns an
// error instead of panicking.
package config

import (
	"fmt"

	"github.com/rittickrr/raptor"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileConfig mirrors the fields of grpol.Config plus the run parameters
// (black hole mass, camera geometry, frequency list) that live outside the
// CORE's scope but are needed to wire up a render.
type FileConfig struct {
	Core grpol.Config

	MassGrams    float64
	Spin         float64
	Inclination  float64 // radians
	CameraSizeX  float64
	CameraSizeY  float64
	ImageWidth   int
	ImageHeight  int
	Frequencies  []float64
}

// Load reads configuration from path (if non-empty) and from the given
// command-line args, with flags taking precedence over file values.
func Load(path string, args []string) (FileConfig, error) {
	fc := FileConfig{Core: grpol.DefaultConfig()}

	flags := pflag.NewFlagSet("grtrace", pflag.ContinueOnError)
	mass := flags.Float64("mass-grams", 0, "black hole mass in grams")
	spin := flags.Float64("spin", 0, "dimensionless spin parameter a")
	inclination := flags.Float64("inclination-deg", 0, "observer inclination in degrees")
	width := flags.Int("width", 0, "image width in pixels")
	height := flags.Int("height", 0, "image height in pixels")
	step := flags.Float64("step", 0, "geodesic step scale")
	maxSteps := flags.Int("max-steps", 0, "hard cap on recorded samples per path")
	polarized := flags.Bool("polarized", true, "run the polarized transfer pass")
	method := flags.String("method", "", "integrator: rk4, rk2, or verlet")
	if err := flags.Parse(args); err != nil {
		return fc, fmt.Errorf("grtrace: parsing flags: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fc, fmt.Errorf("grtrace: reading config %s: %w", path, err)
		}
	}
	v.SetDefault("mass_grams", 8.54e38) // ~ M87* mass in grams
	v.SetDefault("spin", 0.9375)
	v.SetDefault("inclination_deg", 17.0)
	v.SetDefault("image_width", 64)
	v.SetDefault("image_height", 64)
	v.SetDefault("camera_size_x", 40.0)
	v.SetDefault("camera_size_y", 40.0)
	v.SetDefault("frequencies_hz", []float64{230e9})

	fc.MassGrams = v.GetFloat64("mass_grams")
	fc.Spin = v.GetFloat64("spin")
	fc.Inclination = v.GetFloat64("inclination_deg") * 3.141592653589793 / 180
	fc.CameraSizeX = v.GetFloat64("camera_size_x")
	fc.CameraSizeY = v.GetFloat64("camera_size_y")
	fc.ImageWidth = v.GetInt("image_width")
	fc.ImageHeight = v.GetInt("image_height")
	fc.Frequencies = v.GetFloat64Slice("frequencies_hz")

	if v.IsSet("step") {
		fc.Core.Step = v.GetFloat64("step")
	}
	if v.IsSet("max_steps") {
		fc.Core.MaxSteps = v.GetInt("max_steps")
	}
	if v.IsSet("polarization") {
		fc.Core.Polarization = v.GetBool("polarization")
	}

	if flags.Changed("mass-grams") {
		fc.MassGrams = *mass
	}
	if flags.Changed("spin") {
		fc.Spin = *spin
	}
	if flags.Changed("inclination-deg") {
		fc.Inclination = *inclination * 3.141592653589793 / 180
	}
	if flags.Changed("width") {
		fc.ImageWidth = *width
	}
	if flags.Changed("height") {
		fc.ImageHeight = *height
	}
	if flags.Changed("step") {
		fc.Core.Step = *step
	}
	if flags.Changed("max-steps") {
		fc.Core.MaxSteps = *maxSteps
	}
	if flags.Changed("polarized") {
		fc.Core.Polarization = *polarized
	}
	if flags.Changed("method") {
		switch *method {
		case "rk2":
			fc.Core.Method = grpol.MethodRK2
		case "verlet":
			fc.Core.Method = grpol.MethodVerlet
		default:
			fc.Core.Method = grpol.MethodRK4
		}
	}

	return fc, nil
}
