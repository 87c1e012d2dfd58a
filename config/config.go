// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Coastline interaction policies.
const (
	CoastlineNone             = "none"
	CoastlineStranding        = "stranding"
	CoastlinePartialStranding = "partial_stranding"
)

// ConfigError reports a parameter outside its valid domain. All values are
// checked once at load time; the step loop never re-validates configuration.
type ConfigError struct {
	Key string
	Msg string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Key, e.Msg)
}

// Config holds all simulation configuration parameters.
type Config struct {
	Physics      PhysicsConfig      `yaml:"physics"`
	Seed         SeedConfig         `yaml:"seed"`
	Microplastic MicroplasticConfig `yaml:"microplastic"`
	Environment  EnvironmentConfig  `yaml:"environment"`
	Population   PopulationConfig   `yaml:"population"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`
	Materials    []MaterialConfig   `yaml:"materials"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// PhysicsConfig holds the numerical parameters of the buoyancy calculation.
type PhysicsConfig struct {
	DT                  float64 `yaml:"dt"`                    // seconds per step
	Gravity             float64 `yaml:"gravity"`               // m/s2
	MaxTerminalVelocity float64 `yaml:"max_terminal_velocity"` // m/s, safety clamp, not a physical law
	BiofilmDensity      float64 `yaml:"biofilm_density"`       // kg/m3, must exceed seawater
	MinDiameter         float64 `yaml:"min_diameter"`          // mm, degradation floor
}

// SeedConfig holds default particle properties applied at seeding when a
// material preset leaves a field unset.
type SeedConfig struct {
	Diameter    float64 `yaml:"diameter"`     // mm
	Density     float64 `yaml:"density"`      // kg/m3
	ShapeFactor float64 `yaml:"shape_factor"` // 1.0 for sphere
}

// MicroplasticConfig holds the process rate parameters. Rates are fractions
// per day, scaled by dt inside each process.
type MicroplasticConfig struct {
	BiofoulingRate       float64 `yaml:"biofouling_rate"`
	DegradationRate      float64 `yaml:"degradation_rate"`
	ResuspensionRate     float64 `yaml:"resuspension_rate"`
	CoastlineInteraction string  `yaml:"coastline_interaction"`
	StrandingProbability float64 `yaml:"stranding_probability"`
}

// EnvironmentConfig holds ambient-field fallbacks and depth-layer factors.
type EnvironmentConfig struct {
	WaterDensity            float64 `yaml:"water_density"`             // kg/m3
	Viscosity               float64 `yaml:"viscosity"`                 // Pa.s
	SurfaceLayerDepth       float64 `yaml:"surface_layer_depth"`       // m
	SurfaceBiofoulingFactor float64 `yaml:"surface_biofouling_factor"` // biological activity boost
	UVLayerDepth            float64 `yaml:"uv_layer_depth"`            // m
	UVDegradationFactor     float64 `yaml:"uv_degradation_factor"`     // UV exposure boost
	ResuspensionLift        float64 `yaml:"resuspension_lift"`         // m off the bed
}

// PopulationConfig holds ensemble sizing parameters.
type PopulationConfig struct {
	Initial int `yaml:"initial"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// MaterialConfig defines a seeding preset resolved into concrete particle
// properties at creation time. Presets are a flat table, not a hierarchy.
type MaterialConfig struct {
	Name        string  `yaml:"name"`
	Density     float64 `yaml:"density"`  // kg/m3
	Diameter    float64 `yaml:"diameter"` // mm
	ShapeFactor float64 `yaml:"shape_factor"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DTDays        float64          // Physics.DT as a fraction of a day
	MaterialIndex map[string]uint8 // name -> preset index
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. The returned config has
// passed validation.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every parameter against its valid domain. Violations are
// ConfigErrors surfaced before the first step, never at runtime.
func (c *Config) Validate() error {
	if c.Physics.DT <= 0 {
		return &ConfigError{Key: "physics.dt", Msg: "must be positive"}
	}
	if c.Physics.MaxTerminalVelocity <= 0 {
		return &ConfigError{Key: "physics.max_terminal_velocity", Msg: "must be positive"}
	}
	if c.Physics.BiofilmDensity <= c.Environment.WaterDensity {
		return &ConfigError{Key: "physics.biofilm_density", Msg: "must exceed seawater density"}
	}
	if c.Physics.MinDiameter <= 0 {
		return &ConfigError{Key: "physics.min_diameter", Msg: "must be positive"}
	}

	if c.Seed.Diameter < 0.001 || c.Seed.Diameter > 100 {
		return &ConfigError{Key: "seed.diameter", Msg: "must be in [0.001, 100] mm"}
	}
	if c.Seed.Density < 800 || c.Seed.Density > 2500 {
		return &ConfigError{Key: "seed.density", Msg: "must be in [800, 2500] kg/m3"}
	}
	if c.Seed.ShapeFactor < 0.1 || c.Seed.ShapeFactor > 10 {
		return &ConfigError{Key: "seed.shape_factor", Msg: "must be in [0.1, 10]"}
	}

	rates := []struct {
		key string
		val float64
	}{
		{"microplastic.biofouling_rate", c.Microplastic.BiofoulingRate},
		{"microplastic.degradation_rate", c.Microplastic.DegradationRate},
		{"microplastic.resuspension_rate", c.Microplastic.ResuspensionRate},
	}
	for _, r := range rates {
		if r.val < 0 || r.val > 1 {
			return &ConfigError{Key: r.key, Msg: "must be in [0, 1] per day"}
		}
	}

	switch c.Microplastic.CoastlineInteraction {
	case CoastlineNone, CoastlineStranding, CoastlinePartialStranding:
	default:
		return &ConfigError{
			Key: "microplastic.coastline_interaction",
			Msg: fmt.Sprintf("unknown policy %q", c.Microplastic.CoastlineInteraction),
		}
	}
	if p := c.Microplastic.StrandingProbability; p < 0 || p > 1 {
		return &ConfigError{Key: "microplastic.stranding_probability", Msg: "must be in [0, 1]"}
	}

	if c.Environment.WaterDensity <= 0 {
		return &ConfigError{Key: "environment.water_density", Msg: "must be positive"}
	}
	if c.Environment.Viscosity <= 0 {
		return &ConfigError{Key: "environment.viscosity", Msg: "must be positive"}
	}

	for i, mat := range c.Materials {
		key := fmt.Sprintf("materials[%d]", i)
		if mat.Name == "" {
			return &ConfigError{Key: key + ".name", Msg: "must not be empty"}
		}
		if mat.Density < 800 || mat.Density > 2500 {
			return &ConfigError{Key: key + ".density", Msg: "must be in [800, 2500] kg/m3"}
		}
		if mat.Diameter < 0.001 || mat.Diameter > 100 {
			return &ConfigError{Key: key + ".diameter", Msg: "must be in [0.001, 100] mm"}
		}
		if mat.ShapeFactor < 0.1 || mat.ShapeFactor > 10 {
			return &ConfigError{Key: key + ".shape_factor", Msg: "must be in [0.1, 10]"}
		}
	}

	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DTDays = c.Physics.DT / 86400.0

	// Synthesize default material presets if none specified
	if len(c.Materials) == 0 {
		c.Materials = []MaterialConfig{
			{Name: "ldpe", Density: 920, Diameter: c.Seed.Diameter, ShapeFactor: c.Seed.ShapeFactor},
			{Name: "ps", Density: 1050, Diameter: c.Seed.Diameter, ShapeFactor: c.Seed.ShapeFactor},
			{Name: "pet", Density: 1380, Diameter: c.Seed.Diameter, ShapeFactor: c.Seed.ShapeFactor},
		}
	}

	// Apply seed defaults to presets that don't specify all fields
	for i := range c.Materials {
		mat := &c.Materials[i]
		if mat.Diameter == 0 {
			mat.Diameter = c.Seed.Diameter
		}
		if mat.ShapeFactor == 0 {
			mat.ShapeFactor = c.Seed.ShapeFactor
		}
	}

	// Build preset index for fast lookup
	c.Derived.MaterialIndex = make(map[string]uint8, len(c.Materials))
	for i, mat := range c.Materials {
		c.Derived.MaterialIndex[mat.Name] = uint8(i)
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
